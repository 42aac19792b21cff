package calendar_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/calendar"
)

// stubDefaults answers every locale query with fixed values.
type stubDefaults struct {
	twoDigit int
	hijri    int
	calls    int
	mu       sync.Mutex
}

func (d *stubDefaults) TwoDigitYearMax(calendar.Kind) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return d.twoDigit, d.twoDigit != 0
}

func (d *stubDefaults) HijriAdjustment() (int, bool) { return d.hijri, true }

func TestBuilder_ReadOnlyAfterBuild(t *testing.T) {
	b := calendar.NewBuilder(calendar.Gregorian)
	assert.False(t, b.ReadOnly())

	_, err := b.Build()
	require.NoError(t, err)
	assert.True(t, b.ReadOnly())

	setters := map[string]func() error{
		"TwoDigitYearMax":      func() error { return b.SetTwoDigitYearMax(2029) },
		"EnforceEraYearRanges": func() error { return b.SetEnforceEraYearRanges(true) },
		"GregorianType":        func() error { return b.SetGregorianType(calendar.USEnglish) },
		"Defaults":             func() error { return b.SetDefaults(nil) },
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			err := set()
			assert.ErrorIs(t, err, calendar.ErrReadOnly)
			assert.ErrorIs(t, err, calendar.ErrInvalidConfig)
		})
	}
}

func TestBuilder_Clone(t *testing.T) {
	b := calendar.NewBuilder(calendar.Gregorian)
	require.NoError(t, b.SetTwoDigitYearMax(2029))
	cal, err := b.Build()
	require.NoError(t, err)

	clone := cal.Clone()
	assert.False(t, clone.ReadOnly())
	require.NoError(t, clone.SetTwoDigitYearMax(2099))
	variant, err := clone.Build()
	require.NoError(t, err)

	assert.Equal(t, 2029, cal.TwoDigitYearMax())
	assert.Equal(t, 2099, variant.TwoDigitYearMax())

	year, err := cal.ToFourDigitYear(30)
	require.NoError(t, err)
	assert.Equal(t, 1930, year)
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		kind    calendar.Kind
		set     func(b *calendar.Builder) error
		wantErr error
	}{
		{"Two-digit max below 99", calendar.Gregorian, func(b *calendar.Builder) error { return b.SetTwoDigitYearMax(98) }, calendar.ErrOutOfRange},
		{"Two-digit max past calendar", calendar.Gregorian, func(b *calendar.Builder) error { return b.SetTwoDigitYearMax(10000) }, calendar.ErrOutOfRange},
		{"Hijri adjustment on Gregorian", calendar.Gregorian, func(b *calendar.Builder) error { return b.SetHijriAdjustment(1) }, calendar.ErrInvalidConfig},
		{"Hijri adjustment too large", calendar.Hijri, func(b *calendar.Builder) error { return b.SetHijriAdjustment(3) }, calendar.ErrOutOfRange},
		{"Gregorian type on Japanese", calendar.Japanese, func(b *calendar.Builder) error { return b.SetGregorianType(calendar.Arabic) }, calendar.ErrInvalidConfig},
		{"Unknown Gregorian type", calendar.Gregorian, func(b *calendar.Builder) error { return b.SetGregorianType(calendar.GregorianType(42)) }, calendar.ErrOutOfRange},
		{"Unknown kind", calendar.Kind(99), func(b *calendar.Builder) error { _, err := b.Build(); return err }, calendar.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set(calendar.NewBuilder(tt.kind))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuilder_GregorianType(t *testing.T) {
	cal, err := calendar.New(calendar.Gregorian)
	require.NoError(t, err)
	assert.Equal(t, calendar.Localized, cal.GregorianType())

	b := calendar.NewBuilder(calendar.Gregorian)
	require.NoError(t, b.SetGregorianType(calendar.TransliteratedFrench))
	cal, err = b.Build()
	require.NoError(t, err)
	assert.Equal(t, calendar.TransliteratedFrench, cal.GregorianType())
}

func TestDefaults_ResolvedOnce(t *testing.T) {
	d := &stubDefaults{twoDigit: 2035}
	b := calendar.NewBuilder(calendar.Gregorian)
	require.NoError(t, b.SetDefaults(d))
	cal, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2035, cal.TwoDigitYearMax())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 2035, cal.TwoDigitYearMax())
		}()
	}
	wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Equal(t, 1, d.calls)
}

func TestDefaults_InvalidValuesIgnored(t *testing.T) {
	d := &stubDefaults{twoDigit: 50, hijri: 5}

	b := calendar.NewBuilder(calendar.Gregorian)
	require.NoError(t, b.SetDefaults(d))
	greg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2049, greg.TwoDigitYearMax())

	b = calendar.NewBuilder(calendar.Hijri)
	require.NoError(t, b.SetDefaults(d))
	hijri, err := b.Build()
	require.NoError(t, err)
	adj, err := hijri.HijriAdjustment()
	require.NoError(t, err)
	assert.Equal(t, 0, adj)
}

func TestHijriAdjustment(t *testing.T) {
	base := mustCalendar(t, calendar.Hijri)
	d := mustDate(t, 2024, 3, 20)

	tests := []struct {
		name     string
		explicit *int
		defaults calendar.Defaults
		wantDay  int
	}{
		{"None", nil, nil, 11},
		{"From defaults", nil, &stubDefaults{hijri: -1}, 10},
		{"Explicit wins", ptr(2), &stubDefaults{hijri: -1}, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := calendar.NewBuilder(calendar.Hijri)
			require.NoError(t, b.SetDefaults(tt.defaults))
			if tt.explicit != nil {
				require.NoError(t, b.SetHijriAdjustment(*tt.explicit))
			}
			cal, err := b.Build()
			require.NoError(t, err)

			f, err := cal.Fields(d)
			require.NoError(t, err)
			assert.Equal(t, 1445, f.Year)
			assert.Equal(t, 9, f.Month)
			assert.Equal(t, tt.wantDay, f.Day)

			back, err := cal.FromFields(f)
			require.NoError(t, err)
			assert.Equal(t, d, back)
		})
	}

	_, err := mustCalendar(t, calendar.Gregorian).HijriAdjustment()
	assert.ErrorIs(t, err, calendar.ErrUnsupported)
	adj, err := base.HijriAdjustment()
	require.NoError(t, err)
	assert.Equal(t, 0, adj)
}

// TestHijriAdjustment_FirstSupportedDay checks that a negative adjustment moves
// the lower bound so that it still decomposes as 1 Muharram 1.
func TestHijriAdjustment_FirstSupportedDay(t *testing.T) {
	epoch := mustDate(t, 622, 7, 18)

	for _, adj := range []int{0, -1, -2, 1} {
		t.Run(fmt.Sprint(adj), func(t *testing.T) {
			b := calendar.NewBuilder(calendar.Hijri)
			require.NoError(t, b.SetHijriAdjustment(adj))
			cal, err := b.Build()
			require.NoError(t, err)

			first := cal.MinSupported()
			wantMin := epoch + calendar.Instant(int64(max(-adj, 0))*calendar.TicksPerDay)
			assert.Equal(t, wantMin, first)

			f, err := cal.Fields(first)
			require.NoError(t, err)
			assert.Equal(t, 1, f.Year)
			assert.Equal(t, 1, f.Month)
			assert.Equal(t, 1+max(adj, 0), f.Day)

			year, err := cal.Year(first)
			require.NoError(t, err)
			assert.Equal(t, 1, year)

			week, err := cal.WeekOfYear(first, calendar.FirstDay, time.Sunday)
			require.NoError(t, err)
			assert.Equal(t, 1, week)

			if adj <= 0 {
				got, err := cal.ToInstant(1, 1, 1, 0, 0, 0, 0, calendar.CurrentEra)
				require.NoError(t, err)
				assert.Equal(t, first, got)
			}

			_, err = cal.AddDays(first, -1)
			assert.ErrorIs(t, err, calendar.ErrOutOfRange)
		})
	}
}

func TestError_Format(t *testing.T) {
	cal := mustCalendar(t, calendar.Gregorian)
	_, err := cal.AddMonths(mustDate(t, 2024, 1, 1), 200_000)

	var calErr *calendar.Error
	require.True(t, errors.As(err, &calErr))
	assert.Equal(t, "AddMonths", calErr.Op)
	assert.Equal(t, "months", calErr.Param)
	assert.Equal(t, int64(200_000), calErr.Value)
	assert.Equal(t, "AddMonths: months=200000: value out of range", err.Error())

	// Errors raised below the public API carry the public operation name.
	_, err = cal.DaysInMonth(2024, 13, calendar.CurrentEra)
	require.True(t, errors.As(err, &calErr))
	assert.Equal(t, "DaysInMonth", calErr.Op)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func ptr[T any](v T) *T { return &v }
