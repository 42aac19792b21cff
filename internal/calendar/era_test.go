package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/calendar"
)

func TestEras(t *testing.T) {
	japanese := mustCalendar(t, calendar.Japanese)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, japanese.Eras())
	assert.Len(t, japanese.EraInfos(), 5)
	assert.Equal(t, "Reiwa", calendar.JapaneseEraName(5))
	assert.Equal(t, "Meiji", calendar.JapaneseEraName(1))
	assert.Empty(t, calendar.JapaneseEraName(6))

	assert.Equal(t, []int{1}, mustCalendar(t, calendar.Hebrew).Eras())
	assert.Equal(t, []int{1}, mustCalendar(t, calendar.ChineseLunisolar).Eras())
	assert.Equal(t, []int{5, 4, 3}, mustCalendar(t, calendar.JapaneseLunisolar).Eras())
}

func TestEraYearSpillOver(t *testing.T) {
	// Heisei ended in its 31st year; year 32 carries over into Reiwa.
	lenient := mustCalendar(t, calendar.Japanese)
	got, err := lenient.ToInstant(32, 1, 1, 0, 0, 0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 2020, 1, 1), got)

	// Taisho ended in its 15th year, so Taisho 16 is Showa 2.
	got, err = lenient.ToInstant(16, 6, 1, 0, 0, 0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 1927, 6, 1), got)

	b := calendar.NewBuilder(calendar.Japanese)
	require.NoError(t, b.SetEnforceEraYearRanges(true))
	strict, err := b.Build()
	require.NoError(t, err)
	assert.True(t, strict.EnforcesEraYearRanges())

	_, err = strict.ToInstant(32, 1, 1, 0, 0, 0, 0, 4)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
	_, err = strict.ToInstant(31, 4, 30, 0, 0, 0, 0, 4)
	assert.NoError(t, err)
}

func TestEraErrors(t *testing.T) {
	japanese := mustCalendar(t, calendar.Japanese)
	_, err := japanese.DaysInYear(1, 9)
	assert.ErrorIs(t, err, calendar.ErrInvalidEra)

	hebrew := mustCalendar(t, calendar.Hebrew)
	_, err = hebrew.DaysInYear(5784, 2)
	assert.ErrorIs(t, err, calendar.ErrInvalidEra)

	// Year 0 never exists.
	_, err = japanese.ToInstant(0, 1, 1, 0, 0, 0, 0, calendar.CurrentEra)
	assert.Error(t, err)
}

func TestSexagenaryYear(t *testing.T) {
	cal := mustCalendar(t, calendar.ChineseLunisolar)

	tests := []struct {
		name       string
		date       calendar.Instant
		want       int
		wantStem   int
		wantBranch int
	}{
		{"Wood Dragon", mustDate(t, 2024, 2, 10), 41, 1, 5},
		{"Water Rabbit eve", mustDate(t, 2024, 2, 9), 40, 10, 4},
		{"Metal Rat", mustDate(t, 2020, 6, 1), 37, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.SexagenaryYear(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stem, err := calendar.CelestialStem(got)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStem, stem)

			branch, err := calendar.TerrestrialBranch(got)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBranch, branch)
		})
	}

	_, err := mustCalendar(t, calendar.Gregorian).SexagenaryYear(mustDate(t, 2024, 2, 10))
	assert.ErrorIs(t, err, calendar.ErrUnsupported)
	_, err = cal.SexagenaryYear(mustDate(t, 1900, 1, 1))
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
	_, err = calendar.CelestialStem(0)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
	_, err = calendar.TerrestrialBranch(61)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestLunisolarTwoDigitYears(t *testing.T) {
	// Era-relative lunisolar calendars keep a 99 window; the others follow
	// the lunar year containing 2049-01-01.
	assert.Equal(t, 99, mustCalendar(t, calendar.JapaneseLunisolar).TwoDigitYearMax())
	assert.Equal(t, 99, mustCalendar(t, calendar.TaiwanLunisolar).TwoDigitYearMax())
	assert.Equal(t, 2048, mustCalendar(t, calendar.ChineseLunisolar).TwoDigitYearMax())
}
