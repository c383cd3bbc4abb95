// Package scheduling decides whether a proposed booking window may be confirmed
// on the venue's single bookable unit.
//
// Everything here is pure: inputs are snapshots supplied by the caller and
// nothing is persisted. Mutual exclusion between concurrent writers belongs
// to the storage layer.
package scheduling

import (
	"fmt"
	"strings"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// Guests holds the head counts of a proposal
type Guests struct {
	Reception int
	Camping   int
	RvSites   int
}

// Proposal is a booking request before its end date is derived
type Proposal struct {
	PackageType domain.PackageType
	StartDate   types.Date
	Guests      Guests
}

// Context is the read-only snapshot a proposal is validated against
type Context struct {
	Settings domain.VenueSettings
	Existing []domain.ExistingBookingRef
	Today    types.Date
	// IgnoreBookingID excludes a booking from conflict checks, used when it is being rescheduled
	IgnoreBookingID *int64
}

// ValidateBooking computes the window of the proposal and validates it.
// Business-rule violations are reported in the result; the error is reserved for precondition faults.
func ValidateBooking(p Proposal, c Context) (domain.ValidationResult, error) {
	if p.StartDate.IsZero() {
		return domain.ValidationResult{}, fmt.Errorf("%w: start date is required", ErrPrecondition)
	}

	window, err := domain.ComputeWindow(p.PackageType, p.StartDate)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}

	return ValidateWindow(window, p.Guests, c)
}

// ValidateWindow validates an already computed window.
// The window end date must equal the end date derived from its package.
func ValidateWindow(w domain.BookingWindow, g Guests, c Context) (domain.ValidationResult, error) {
	rule, prep, err := checkPreconditions(w, g, c)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	settings := c.Settings
	result := domain.ValidationResult{
		Window:       w,
		PrepTeardown: prep,
		Errors:       []domain.ValidationError{},
		Warnings:     []string{},
	}

	// 1. start weekday
	if !rule.AllowsStartOn(w.StartDate.Weekday()) {
		names := domain.WeekdayNames(rule.AllowedStartWeekdays)
		result.Errors = append(result.Errors, domain.ValidationError{
			Code: domain.CodeInvalidStartDay,
			Message: fmt.Sprintf("%s bookings must start on %s, %s is a %s",
				w.PackageType, strings.Join(names, " or "), w.StartDate, w.StartDate.Weekday()),
			AllowedWeekdays: names,
		})
	}

	// 2. past start
	if w.StartDate.Before(c.Today) {
		result.Errors = append(result.Errors, domain.ValidationError{
			Code:    domain.CodePastStartDate,
			Message: fmt.Sprintf("start date %s is in the past", w.StartDate),
		})
	}

	// 3. season, every day through checkout
	if day, ok := firstDayOutOfSeason(w, settings); ok {
		result.Errors = append(result.Errors, domain.ValidationError{
			Code: domain.CodeOutOfSeason,
			Message: fmt.Sprintf("%s is outside the operating season %s to %s",
				day, settings.SeasonStart, settings.SeasonEnd),
		})
	}

	// 4. guest caps
	if g.Reception > settings.MaxReceptionGuests {
		result.Errors = append(result.Errors, domain.ValidationError{
			Code: domain.CodeGuestCapExceeded,
			Message: fmt.Sprintf("%d reception guests exceed the venue maximum of %d",
				g.Reception, settings.MaxReceptionGuests),
		})
	}
	if g.Camping > settings.IncludedCampingGuests {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%d camping guests exceed the %d included, the overage is billable",
			g.Camping, settings.IncludedCampingGuests))
	}
	if g.RvSites > settings.IncludedRvSites {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%d RV sites exceed the %d included, the overage is billable",
			g.RvSites, settings.IncludedRvSites))
	}

	// 5. single inventory
	gap := settings.ResetGapDays()
	for _, e := range c.Existing {
		if c.IgnoreBookingID != nil && e.ID == *c.IgnoreBookingID {
			continue
		}
		if !Conflicts(w.StartDate, w.EndDate, e.StartDate, e.EndDate, gap) {
			continue
		}
		id := e.ID
		result.Errors = append(result.Errors, domain.ValidationError{
			Code: domain.CodeDateConflict,
			Message: fmt.Sprintf("dates conflict with booking %d (%s to %s) including the %d-day reset gap",
				e.ID, e.StartDate, e.EndDate, gap),
			ConflictingBookingID: &id,
		})
	}

	// 6. last minute
	daysAhead := domain.CalendarDayGap(c.Today, w.StartDate)
	if daysAhead >= 0 && daysAhead < settings.LastMinuteDays() {
		result.IsLastMinute = true
	}

	return result, nil
}

// Conflicts reports whether two [start, end) ranges overlap or sit closer than gap days apart, in either order
func Conflicts(aStart, aEnd, bStart, bEnd types.Date, gap int) bool {
	return aStart.Before(bEnd.AddDays(gap)) && bStart.Before(aEnd.AddDays(gap))
}

func checkPreconditions(w domain.BookingWindow, g Guests, c Context) (domain.PackageRule, domain.PrepTeardownWindow, error) {
	rule, err := w.PackageType.Rule()
	if err != nil {
		return domain.PackageRule{}, domain.PrepTeardownWindow{}, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}

	if c.Today.IsZero() {
		return rule, domain.PrepTeardownWindow{}, fmt.Errorf("%w: today is not set", ErrPrecondition)
	}

	expectedEnd := w.StartDate.AddDays(rule.DurationNights)
	if w.EndDate != expectedEnd {
		return rule, domain.PrepTeardownWindow{}, fmt.Errorf("%w: window %s..%s does not match %s duration",
			ErrPrecondition, w.StartDate, w.EndDate, w.PackageType)
	}

	if g.Reception < 0 || g.Camping < 0 || g.RvSites < 0 {
		return rule, domain.PrepTeardownWindow{}, fmt.Errorf("%w: negative guest count", ErrPrecondition)
	}

	for _, e := range c.Existing {
		if e.EndDate.Before(e.StartDate) {
			return rule, domain.PrepTeardownWindow{}, fmt.Errorf("%w: existing booking %d ends %s before it starts %s",
				ErrPrecondition, e.ID, e.EndDate, e.StartDate)
		}
	}

	prep, err := domain.ComputePrepTeardown(w.StartDate, w.PackageType)
	if err != nil {
		return rule, domain.PrepTeardownWindow{}, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}

	return rule, prep, nil
}

func firstDayOutOfSeason(w domain.BookingWindow, s domain.VenueSettings) (types.Date, bool) {
	for d := w.StartDate; !d.After(w.EndDate); d = d.AddDays(1) {
		if !s.InSeason(d) {
			return d, true
		}
	}
	return types.Date{}, false
}
