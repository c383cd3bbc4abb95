package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

func TestPackageType_Rule(t *testing.T) {
	tests := []struct {
		name     string
		pkg      domain.PackageType
		nights   int
		weekdays []time.Weekday
	}{
		{"weekend", domain.PackageThreeDayWeekend, 3, []time.Weekday{time.Friday}},
		{"extended", domain.PackageFiveDayExtended, 5, []time.Weekday{time.Wednesday, time.Thursday}},
		{"experience", domain.PackageTenDayExperience, 10, []time.Weekday{time.Wednesday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := tt.pkg.Rule()
			require.NoError(t, err)
			assert.Equal(t, tt.nights, rule.DurationNights)
			assert.Equal(t, tt.weekdays, rule.AllowedStartWeekdays)
		})
	}
}

func TestPackageType_RuleIsNotShared(t *testing.T) {
	rule, err := domain.PackageFiveDayExtended.Rule()
	require.NoError(t, err)
	rule.AllowedStartWeekdays[0] = time.Sunday

	again, err := domain.PackageFiveDayExtended.Rule()
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, again.AllowedStartWeekdays[0])
}

func TestPackageType_Unknown(t *testing.T) {
	_, err := domain.PackageType("weekly").Rule()
	assert.True(t, errors.Is(err, domain.ErrUnknownPackageType))

	_, err = domain.ParsePackageType("")
	assert.True(t, errors.Is(err, domain.ErrUnknownPackageType))

	_, err = domain.ComputeEndDate("weekly", types.MustParseDate("2026-06-12"))
	assert.True(t, errors.Is(err, domain.ErrUnknownPackageType))

	_, err = domain.IsValidStartDay("weekly", types.MustParseDate("2026-06-12"))
	assert.True(t, errors.Is(err, domain.ErrUnknownPackageType))
}

func TestParsePackageType(t *testing.T) {
	for _, p := range domain.AllPackageTypes() {
		parsed, err := domain.ParsePackageType(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestComputeEndDate_AddsDurationNights(t *testing.T) {
	start := types.MustParseDate("2026-01-01")
	for _, p := range domain.AllPackageTypes() {
		nights, err := domain.DurationNights(p)
		require.NoError(t, err)

		// покрываем два года, включая переходы на летнее время
		for i := 0; i < 730; i++ {
			d := start.AddDays(i)
			end, err := domain.ComputeEndDate(p, d)
			require.NoError(t, err)
			require.Equal(t, nights, domain.CalendarDayGap(d, end), "%s from %s", p, d)
		}
	}
}

func TestIsValidStartDay_MatchesWeekdayTable(t *testing.T) {
	start := types.MustParseDate("2026-06-01")
	for _, p := range domain.AllPackageTypes() {
		rule, err := p.Rule()
		require.NoError(t, err)

		for i := 0; i < 14; i++ {
			d := start.AddDays(i)
			ok, err := domain.IsValidStartDay(p, d)
			require.NoError(t, err)

			expected := false
			for _, w := range rule.AllowedStartWeekdays {
				if d.Weekday() == w {
					expected = true
				}
			}
			assert.Equal(t, expected, ok, "%s on %s", p, d)
		}
	}
}

func TestIsValidStartDay_WeekendBoundary(t *testing.T) {
	ok, err := domain.IsValidStartDay(domain.PackageThreeDayWeekend, types.MustParseDate("2026-06-12"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = domain.IsValidStartDay(domain.PackageThreeDayWeekend, types.MustParseDate("2026-06-13"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComputePrepTeardown(t *testing.T) {
	start := types.MustParseDate("2026-06-11")

	t.Run("extended has two prep and two teardown days", func(t *testing.T) {
		w, err := domain.ComputePrepTeardown(start, domain.PackageFiveDayExtended)
		require.NoError(t, err)
		assert.Equal(t, []types.Date{
			types.MustParseDate("2026-06-11"),
			types.MustParseDate("2026-06-12"),
		}, w.PrepDays)
		assert.Equal(t, []types.Date{
			types.MustParseDate("2026-06-14"),
			types.MustParseDate("2026-06-15"),
		}, w.TeardownDays)
	})

	for _, p := range []domain.PackageType{domain.PackageThreeDayWeekend, domain.PackageTenDayExperience} {
		t.Run(string(p)+" has none", func(t *testing.T) {
			for i := 0; i < 30; i++ {
				w, err := domain.ComputePrepTeardown(start.AddDays(i), p)
				require.NoError(t, err)
				assert.NotNil(t, w.PrepDays)
				assert.NotNil(t, w.TeardownDays)
				assert.Empty(t, w.PrepDays)
				assert.Empty(t, w.TeardownDays)
			}
		})
	}

	t.Run("extended count holds for any start", func(t *testing.T) {
		for i := 0; i < 366; i++ {
			w, err := domain.ComputePrepTeardown(start.AddDays(i), domain.PackageFiveDayExtended)
			require.NoError(t, err)
			require.Len(t, w.PrepDays, 2)
			require.Len(t, w.TeardownDays, 2)
		}
	})
}
