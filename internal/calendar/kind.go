package calendar

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported calendar systems.
type Kind int

const (
	Gregorian Kind = iota + 1
	Japanese
	Taiwan
	Korean
	ThaiBuddhist
	Hijri
	UmAlQura
	Hebrew
	Persian
	ChineseLunisolar
	TaiwanLunisolar
	KoreanLunisolar
	JapaneseLunisolar
)

var kindNames = map[Kind]string{
	Gregorian:         "gregorian",
	Japanese:          "japanese",
	Taiwan:            "taiwan",
	Korean:            "korean",
	ThaiBuddhist:      "thai",
	Hijri:             "hijri",
	UmAlQura:          "umalqura",
	Hebrew:            "hebrew",
	Persian:           "persian",
	ChineseLunisolar:  "chinese",
	TaiwanLunisolar:   "taiwan-lunisolar",
	KoreanLunisolar:   "korean-lunisolar",
	JapaneseLunisolar: "japanese-lunisolar",
}

// Kinds lists every calendar kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := Gregorian; k <= JapaneseLunisolar; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k names a supported calendar.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a case-insensitive calendar name as produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown calendar %q", ErrInvalidConfig, s)
}

// CurrentEra selects the calendar's current era wherever an era is accepted.
const CurrentEra = 0

// WeekRule selects how the first week of a year is determined.
type WeekRule int

const (
	// FirstDay starts week 1 on January 1st, whatever day of the week it is.
	FirstDay WeekRule = iota
	// FirstFullWeek starts week 1 on the first full week of the year.
	FirstFullWeek
	// FirstFourDayWeek starts week 1 on the first week with at least four days
	// in the new year.
	FirstFourDayWeek
)

func (r WeekRule) String() string {
	switch r {
	case FirstDay:
		return "first-day"
	case FirstFullWeek:
		return "first-full-week"
	case FirstFourDayWeek:
		return "first-four-day-week"
	}
	return fmt.Sprintf("WeekRule(%d)", int(r))
}

// GregorianType is the localized flavor of the Gregorian calendar. It affects
// naming only, never arithmetic.
type GregorianType int

const (
	Localized GregorianType = iota + 1
	USEnglish
	MiddleEastFrench
	Arabic
	TransliteratedEnglish
	TransliteratedFrench
)

func (g GregorianType) valid() bool {
	return g >= Localized && g <= TransliteratedFrench
}
