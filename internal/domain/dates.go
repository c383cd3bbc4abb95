package domain

import "github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"

// ComputeEndDate returns the checkout date: start plus the package duration in calendar days
func ComputeEndDate(p PackageType, start types.Date) (types.Date, error) {
	nights, err := DurationNights(p)
	if err != nil {
		return types.Date{}, err
	}
	return start.AddDays(nights), nil
}

// ComputeWindow builds a BookingWindow whose end date is derived from the package
func ComputeWindow(p PackageType, start types.Date) (BookingWindow, error) {
	end, err := ComputeEndDate(p, start)
	if err != nil {
		return BookingWindow{}, err
	}
	return BookingWindow{StartDate: start, EndDate: end, PackageType: p}, nil
}

// ComputePrepTeardown returns the vendor setup and breakdown nights.
// Only the 5-day package reserves them: its first two and last two nights.
func ComputePrepTeardown(start types.Date, p PackageType) (PrepTeardownWindow, error) {
	end, err := ComputeEndDate(p, start)
	if err != nil {
		return PrepTeardownWindow{}, err
	}

	if !p.HasPrepTeardown() {
		return PrepTeardownWindow{
			PrepDays:     []types.Date{},
			TeardownDays: []types.Date{},
		}, nil
	}

	return PrepTeardownWindow{
		PrepDays:     []types.Date{start, start.AddDays(1)},
		TeardownDays: []types.Date{end.AddDays(-2), end.AddDays(-1)},
	}, nil
}

// CalendarDayGap returns the whole-day difference from one date to another
func CalendarDayGap(from, to types.Date) int {
	return from.DaysUntil(to)
}

// IsValidStartDay returns true if the candidate falls on an allowed start weekday of the package
func IsValidStartDay(p PackageType, candidate types.Date) (bool, error) {
	rule, err := p.Rule()
	if err != nil {
		return false, err
	}
	return rule.AllowsStartOn(candidate.Weekday()), nil
}
