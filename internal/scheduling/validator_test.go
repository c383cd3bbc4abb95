package scheduling_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/scheduling"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

func day(s string) types.Date {
	return types.MustParseDate(s)
}

func ref(id int64, start, end string) domain.ExistingBookingRef {
	return domain.ExistingBookingRef{ID: id, StartDate: day(start), EndDate: day(end)}
}

func newContext(existing ...domain.ExistingBookingRef) scheduling.Context {
	return scheduling.Context{
		Settings: domain.DefaultVenueSettings(),
		Existing: existing,
		Today:    day("2026-01-15"),
	}
}

func TestValidateBooking_FiveDayEndToEnd(t *testing.T) {
	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageFiveDayExtended,
		StartDate:   day("2026-06-11"),
	}, newContext())
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.True(t, result.IsBookable())
	assert.False(t, result.IsLastMinute)
	assert.Equal(t, day("2026-06-16"), result.Window.EndDate)
	assert.Equal(t, []types.Date{day("2026-06-11"), day("2026-06-12")}, result.PrepTeardown.PrepDays)
	assert.Equal(t, []types.Date{day("2026-06-14"), day("2026-06-15")}, result.PrepTeardown.TeardownDays)
}

func TestValidateBooking_ResetGapBoundary(t *testing.T) {
	ctx := newContext(ref(7, "2026-06-12", "2026-06-15"))

	t.Run("day after checkout is free", func(t *testing.T) {
		result, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageFiveDayExtended,
			StartDate:   day("2026-06-16"),
		}, ctx)
		require.NoError(t, err)
		assert.False(t, result.HasCode(domain.CodeDateConflict))
	})

	t.Run("checkout day is the reset day", func(t *testing.T) {
		result, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageFiveDayExtended,
			StartDate:   day("2026-06-15"),
		}, ctx)
		require.NoError(t, err)
		require.True(t, result.HasCode(domain.CodeDateConflict))
	})

	t.Run("legal start right after the gap is bookable", func(t *testing.T) {
		result, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageFiveDayExtended,
			StartDate:   day("2026-06-17"),
		}, newContext(ref(8, "2026-06-13", "2026-06-16")))
		require.NoError(t, err)
		assert.Empty(t, result.Errors)
	})

	t.Run("gap applies before an existing booking too", func(t *testing.T) {
		result, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageThreeDayWeekend,
			StartDate:   day("2026-06-12"),
		}, newContext(ref(3, "2026-06-15", "2026-06-18")))
		require.NoError(t, err)
		assert.Equal(t, []domain.ValidationCode{domain.CodeDateConflict}, result.Codes())

		result, err = scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageThreeDayWeekend,
			StartDate:   day("2026-06-12"),
		}, newContext(ref(3, "2026-06-16", "2026-06-19")))
		require.NoError(t, err)
		assert.Empty(t, result.Errors)
	})
}

func TestValidateBooking_ConfiguredResetGap(t *testing.T) {
	ctx := newContext(ref(1, "2026-06-12", "2026-06-15"))
	ctx.Settings.MinResetGapDays = 3

	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageFiveDayExtended,
		StartDate:   day("2026-06-18"),
	}, ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	result, err = scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageFiveDayExtended,
		StartDate:   day("2026-06-17"),
	}, ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ValidationCode{domain.CodeDateConflict}, result.Codes())
}

func TestValidateBooking_StartDayBoundary(t *testing.T) {
	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-06-12"),
	}, newContext())
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	result, err = scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-06-13"),
	}, newContext())
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.CodeInvalidStartDay, result.Errors[0].Code)
	assert.Equal(t, []string{"Friday"}, result.Errors[0].AllowedWeekdays)
}

func TestValidateBooking_Overlap(t *testing.T) {
	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-06-12"),
	}, newContext(ref(42, "2026-06-10", "2026-06-13")))
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.CodeDateConflict, result.Errors[0].Code)
	require.NotNil(t, result.Errors[0].ConflictingBookingID)
	assert.Equal(t, int64(42), *result.Errors[0].ConflictingBookingID)
}

func TestValidateBooking_OneConflictPerExistingBooking(t *testing.T) {
	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageTenDayExperience,
		StartDate:   day("2026-06-10"),
	}, newContext(
		ref(1, "2026-06-05", "2026-06-08"),
		ref(2, "2026-06-12", "2026-06-15"),
		ref(3, "2026-06-19", "2026-06-22"),
		ref(4, "2026-07-01", "2026-07-04"),
	))
	require.NoError(t, err)

	ids := make([]int64, 0)
	for _, e := range result.Errors {
		require.Equal(t, domain.CodeDateConflict, e.Code)
		ids = append(ids, *e.ConflictingBookingID)
	}
	assert.Equal(t, []int64{2, 3}, ids)
}

func TestValidateBooking_CollectsAllErrors(t *testing.T) {
	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-04-25"),
		Guests:      scheduling.Guests{Reception: 200},
	}, newContext(ref(5, "2026-04-24", "2026-04-27")))
	require.NoError(t, err)

	assert.Equal(t, []domain.ValidationCode{
		domain.CodeInvalidStartDay,
		domain.CodeOutOfSeason,
		domain.CodeGuestCapExceeded,
		domain.CodeDateConflict,
	}, result.Codes())
}

func TestValidateBooking_PastStart(t *testing.T) {
	ctx := newContext()
	ctx.Today = day("2026-06-20")

	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-06-12"),
	}, ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ValidationCode{domain.CodePastStartDate}, result.Codes())
	assert.False(t, result.IsLastMinute)
}

func TestValidateBooking_Season(t *testing.T) {
	tests := []struct {
		name    string
		pkg     domain.PackageType
		start   string
		inRange bool
	}{
		{"ends on last season day", domain.PackageThreeDayWeekend, "2026-10-23", true},
		{"runs past season end", domain.PackageTenDayExperience, "2026-10-28", false},
		{"checkout after season end", domain.PackageThreeDayWeekend, "2026-10-30", false},
		{"starts before season", domain.PackageThreeDayWeekend, "2026-04-24", false},
		{"starts on first season day", domain.PackageThreeDayWeekend, "2026-05-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scheduling.ValidateBooking(scheduling.Proposal{
				PackageType: tt.pkg,
				StartDate:   day(tt.start),
			}, newContext())
			require.NoError(t, err)
			assert.Equal(t, !tt.inRange, result.HasCode(domain.CodeOutOfSeason))
		})
	}
}

func TestValidateBooking_SeasonAcrossNewYear(t *testing.T) {
	ctx := newContext()
	ctx.Today = day("2026-06-01")
	ctx.Settings.SeasonStart = types.MonthDay{Month: 11, Day: 1}
	ctx.Settings.SeasonEnd = types.MonthDay{Month: 3, Day: 31}

	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageTenDayExperience,
		StartDate:   day("2026-12-30"),
	}, ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	result, err = scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageTenDayExperience,
		StartDate:   day("2027-03-24"),
	}, ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ValidationCode{domain.CodeOutOfSeason}, result.Codes())
}

func TestValidateBooking_GuestOveragesAreWarnings(t *testing.T) {
	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-06-12"),
		Guests:      scheduling.Guests{Reception: 150, Camping: 70, RvSites: 20},
	}, newContext())
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	assert.Len(t, result.Warnings, 2)
}

func TestValidateBooking_LastMinute(t *testing.T) {
	tests := []struct {
		today    string
		expected bool
	}{
		{"2026-06-12", true},
		{"2026-06-01", true},
		{"2026-05-30", true},
		{"2026-05-29", false},
		{"2026-01-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			ctx := newContext()
			ctx.Today = day(tt.today)
			result, err := scheduling.ValidateBooking(scheduling.Proposal{
				PackageType: domain.PackageThreeDayWeekend,
				StartDate:   day("2026-06-12"),
			}, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.IsLastMinute)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestValidateBooking_IgnoresBookingBeingRescheduled(t *testing.T) {
	ctx := newContext(ref(9, "2026-06-12", "2026-06-15"))
	id := int64(9)
	ctx.IgnoreBookingID = &id

	result, err := scheduling.ValidateBooking(scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-06-12"),
	}, ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestValidateBooking_Idempotent(t *testing.T) {
	proposal := scheduling.Proposal{
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   day("2026-06-13"),
		Guests:      scheduling.Guests{Reception: 180, Camping: 90},
	}
	ctx := newContext(ref(1, "2026-06-12", "2026-06-15"))

	first, err := scheduling.ValidateBooking(proposal, ctx)
	require.NoError(t, err)
	second, err := scheduling.ValidateBooking(proposal, ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []domain.ExistingBookingRef{ref(1, "2026-06-12", "2026-06-15")}, ctx.Existing)
}

func TestValidateBooking_Preconditions(t *testing.T) {
	t.Run("unknown package type", func(t *testing.T) {
		_, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: "weekly",
			StartDate:   day("2026-06-12"),
		}, newContext())
		assert.True(t, errors.Is(err, scheduling.ErrPrecondition))
		assert.True(t, errors.Is(err, domain.ErrUnknownPackageType))
	})

	t.Run("inconsistent window", func(t *testing.T) {
		_, err := scheduling.ValidateWindow(domain.BookingWindow{
			StartDate:   day("2026-06-12"),
			EndDate:     day("2026-06-11"),
			PackageType: domain.PackageThreeDayWeekend,
		}, scheduling.Guests{}, newContext())
		assert.True(t, errors.Is(err, scheduling.ErrPrecondition))
	})

	t.Run("existing booking ends before it starts", func(t *testing.T) {
		_, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageThreeDayWeekend,
			StartDate:   day("2026-06-12"),
		}, newContext(ref(1, "2026-06-20", "2026-06-18")))
		assert.True(t, errors.Is(err, scheduling.ErrPrecondition))
	})

	t.Run("negative guests", func(t *testing.T) {
		_, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageThreeDayWeekend,
			StartDate:   day("2026-06-12"),
			Guests:      scheduling.Guests{Camping: -1},
		}, newContext())
		assert.True(t, errors.Is(err, scheduling.ErrPrecondition))
	})

	t.Run("today not set", func(t *testing.T) {
		ctx := newContext()
		ctx.Today = types.Date{}
		_, err := scheduling.ValidateBooking(scheduling.Proposal{
			PackageType: domain.PackageThreeDayWeekend,
			StartDate:   day("2026-06-12"),
		}, ctx)
		assert.True(t, errors.Is(err, scheduling.ErrPrecondition))
	})
}

// Две заявки на пересекающиеся даты, проверенные по одному снимку, обе проходят:
// ядро не может предотвратить гонку, это делает хранилище.
func TestValidateBooking_StaleSnapshotRace(t *testing.T) {
	snapshot := newContext()
	proposals := []scheduling.Proposal{
		{PackageType: domain.PackageThreeDayWeekend, StartDate: day("2026-06-12")},
		{PackageType: domain.PackageFiveDayExtended, StartDate: day("2026-06-11")},
	}

	results := make([]domain.ValidationResult, len(proposals))
	var wg sync.WaitGroup
	for i, p := range proposals {
		wg.Add(1)
		go func(i int, p scheduling.Proposal) {
			defer wg.Done()
			res, err := scheduling.ValidateBooking(p, snapshot)
			assert.NoError(t, err)
			results[i] = res
		}(i, p)
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, r.IsBookable())
	}

	// после записи первой заявки свежий снимок отклоняет вторую
	fresh := newContext(domain.ExistingBookingRef{
		ID:        1,
		StartDate: results[0].Window.StartDate,
		EndDate:   results[0].Window.EndDate,
	})
	res, err := scheduling.ValidateBooking(proposals[1], fresh)
	require.NoError(t, err)
	assert.Equal(t, []domain.ValidationCode{domain.CodeDateConflict}, res.Codes())
}

func TestConflicts(t *testing.T) {
	assert.True(t, scheduling.Conflicts(day("2026-06-12"), day("2026-06-15"), day("2026-06-10"), day("2026-06-13"), 1))
	assert.True(t, scheduling.Conflicts(day("2026-06-15"), day("2026-06-18"), day("2026-06-12"), day("2026-06-15"), 1))
	assert.False(t, scheduling.Conflicts(day("2026-06-16"), day("2026-06-19"), day("2026-06-12"), day("2026-06-15"), 1))
	assert.False(t, scheduling.Conflicts(day("2026-06-15"), day("2026-06-18"), day("2026-06-12"), day("2026-06-15"), 0))
}
