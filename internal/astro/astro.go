// Package astro computes the solar positions needed by observation-based
// calendars.
//
// Two day counts appear here. Day numbers, as returned by DayNumber, are
// 0-based: 0001-01-01 is day 0. Moments are fractional and 1-based: midnight
// starting 0001-01-01 is moment 1, in universal time. A day number n therefore
// starts at moment n+1.
package astro

import (
	"math"
	"time"
)

const (
	fullCircleDegrees = 360.0
	halfCircleDegrees = 180.0
	twelveHours       = 0.5 // in days
	secondsPerDay     = 86400.0

	// noon2000Jan01 is the moment of 2000-01-01T12:00 UT (J2000.0).
	noon2000Jan01 = 730120.5

	daysPerJulianCentury = 36525.0

	// MeanTropicalYearInDays is the mean length of the tropical year.
	MeanTropicalYearInDays = 365.242189
	meanSpeedOfSun         = MeanTropicalYearInDays / fullCircleDegrees

	// PersianLongitude is the longitude, in degrees east, of the meridian
	// (52.5 E, Tehran standard time) on which the Persian new year is observed.
	PersianLongitude = 52.5

	// maxDayNumber is the day number of 9999-12-31.
	maxDayNumber = 3652058
)

var (
	dayOne          = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	startOf1810     = DayNumber(1810, time.January, 1)
	startOf1900     = DayNumber(1900, time.January, 1)
	persianMeridian = initLongitude(PersianLongitude)
)

// DayNumber returns the 0-based day number of the given date, the number of
// days elapsed since 0001-01-01.
func DayNumber(year int, month time.Month, day int) int {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return int((d.Unix() - dayOne.Unix()) / secondsPerDay)
}

// gregorianYear returns the Gregorian year of the day containing moment.
func gregorianYear(moment float64) int {
	n := min(int(math.Floor(moment))-1, maxDayNumber)
	return dayOne.AddDate(0, 0, n).Year()
}

func angle(degrees, minutes int, seconds float64) float64 {
	return (seconds/60+float64(minutes))/60 + float64(degrees)
}

func radians(degrees float64) float64 { return degrees * math.Pi / 180 }

func sinDegrees(degrees float64) float64 { return math.Sin(radians(degrees)) }
func cosDegrees(degrees float64) float64 { return math.Cos(radians(degrees)) }
func tanDegrees(degrees float64) float64 { return math.Tan(radians(degrees)) }

// polynomial evaluates c[0] + c[1]x + c[2]x² + ...
func polynomial(c []float64, x float64) float64 {
	sum := c[0]
	pow := 1.0
	for _, k := range c[1:] {
		pow *= x
		sum += k * pow
	}
	return sum
}

// remainder is the floored modulo: the result has the sign of divisor.
func remainder(dividend, divisor float64) float64 {
	return dividend - divisor*math.Floor(dividend/divisor)
}

func normalizeLongitude(longitude float64) float64 {
	longitude = remainder(longitude, fullCircleDegrees)
	if longitude < 0 {
		longitude += fullCircleDegrees
	}
	return longitude
}

// initLongitude maps a longitude into [-180, 180).
func initLongitude(longitude float64) float64 {
	return normalizeLongitude(longitude+halfCircleDegrees) - halfCircleDegrees
}

func asSeason(longitude float64) float64 {
	if longitude < 0 {
		return longitude + fullCircleDegrees
	}
	return longitude
}

func centuriesFrom1900(year int) float64 {
	july1st := DayNumber(year, time.July, 1)
	return float64(july1st-startOf1900) / daysPerJulianCentury
}

// EphemerisCorrection returns the difference between dynamical and universal
// time, in days, for the year containing moment. Each historical period uses
// its own fit.
func EphemerisCorrection(moment float64) float64 {
	year := gregorianYear(moment)
	switch {
	case year >= 2020:
		// Falls through to the parabolic fit below.
	case year >= 1988:
		return float64(year-1933) / secondsPerDay
	case year >= 1900:
		return polynomial(coefficients1900to1987[:], centuriesFrom1900(year))
	case year >= 1800:
		return polynomial(coefficients1800to1899[:], centuriesFrom1900(year))
	case year >= 1700:
		return polynomial(coefficients1700to1799[:], float64(year-1700)) / secondsPerDay
	case year >= 1620:
		return polynomial(coefficients1620to1699[:], float64(year-1600)) / secondsPerDay
	}
	x := twelveHours + float64(DayNumber(year, time.January, 1)-startOf1810)
	return (x*x/41048480 - 15) / secondsPerDay
}

// JulianCenturies converts a universal moment to dynamical Julian centuries
// from J2000.0.
func JulianCenturies(moment float64) float64 {
	dynamical := moment + EphemerisCorrection(moment)
	return (dynamical - noon2000Jan01) / daysPerJulianCentury
}

// EquationOfTime returns apparent minus mean solar time, in days, capped at
// twelve hours.
func EquationOfTime(moment float64) float64 {
	c := JulianCenturies(moment)
	lambda := polynomial(lambdaCoefficients[:], c)
	anomaly := polynomial(anomalyCoefficients[:], c)
	eccentricity := polynomial(eccentricityCoefficients[:], c)
	epsilon := polynomial(obliquityCoefficients[:], c)

	tanHalf := tanDegrees(epsilon / 2)
	y := tanHalf * tanHalf

	dividend := y*sinDegrees(2*lambda) -
		2*eccentricity*sinDegrees(anomaly) +
		4*eccentricity*y*sinDegrees(anomaly)*cosDegrees(2*lambda) -
		0.5*y*y*sinDegrees(4*lambda) -
		1.25*eccentricity*eccentricity*sinDegrees(2*anomaly)
	equation := dividend / (2 * math.Pi)
	return math.Copysign(math.Min(math.Abs(equation), twelveHours), equation)
}

func asLocalTime(apparentMidday, longitude float64) float64 {
	universal := apparentMidday - longitude/fullCircleDegrees
	return apparentMidday - EquationOfTime(universal)
}

// Midday returns the universal moment of apparent noon on day date at longitude.
func Midday(date, longitude float64) float64 {
	return asLocalTime(date+twelveHours, longitude) - longitude/fullCircleDegrees
}

// SolarLongitude returns the apparent geocentric longitude of the sun, in
// degrees in [-180, 180), at a universal moment.
func SolarLongitude(moment float64) float64 {
	c := JulianCenturies(moment)
	sum := 0.0
	for _, t := range solarLongitudeTerms {
		sum += t.amplitude * sinDegrees(t.phase+t.frequency*c)
	}
	longitude := 282.7771834 + 36000.76953744*c + 0.000005729577951308232*sum
	aberration := 0.0000974*cosDegrees(177.63+35999.01848*c) - 0.005575
	nutation := -0.004778*sinDegrees(polynomial(nutationACoefficients[:], c)) -
		0.0003667*sinDegrees(polynomial(nutationBCoefficients[:], c))
	return initLongitude(longitude + aberration + nutation)
}

// estimatePrior returns a moment no later than moment and close before the
// latest time the sun reached longitude.
func estimatePrior(longitude, moment float64) float64 {
	rough := moment - meanSpeedOfSun*asSeason(initLongitude(SolarLongitude(moment)-longitude))
	delta := initLongitude(SolarLongitude(rough) - longitude)
	return math.Min(moment, rough-meanSpeedOfSun*delta)
}

// PersianNewYearOnOrBefore takes a 1-based day count (a whole moment) and
// returns the 0-based day number of the Persian new year on or before it: the
// day whose Tehran noon follows the vernal equinox.
func PersianNewYearOnOrBefore(numberOfDays int) int {
	approx := estimatePrior(0, Midday(float64(numberOfDays), persianMeridian))
	lower := int(math.Floor(approx)) - 1
	// The equinox always lies in this three-day window.
	for day := lower; day < lower+3; day++ {
		l := SolarLongitude(Midday(float64(day), persianMeridian))
		if l >= 0 && l <= 2 {
			return day - 1
		}
	}
	return lower + 2
}
