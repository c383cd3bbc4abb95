package scheduling

import (
	"fmt"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// LegalStartDates returns every date in [from, to] on which the package validates without errors for an empty party
func LegalStartDates(p domain.PackageType, from, to types.Date, c Context) ([]types.Date, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range %s..%s is reversed", ErrPrecondition, from, to)
	}

	dates := make([]types.Date, 0)
	for d := from; !d.After(to); d = d.AddDays(1) {
		result, err := ValidateBooking(Proposal{PackageType: p, StartDate: d}, c)
		if err != nil {
			return nil, err
		}
		if result.IsBookable() {
			dates = append(dates, d)
		}
	}

	return dates, nil
}

// BuildCalendar marks every day in [from, to] with what blocks it.
// Only active bookings are drawn. Booking nights win over season, season wins over reset buffers.
func BuildCalendar(from, to types.Date, bookings []*domain.Booking, s domain.VenueSettings) ([]domain.CalendarDay, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range %s..%s is reversed", ErrPrecondition, from, to)
	}

	days := make([]domain.CalendarDay, 0, from.DaysUntil(to)+1)
	index := make(map[types.Date]int, cap(days))
	for d := from; !d.After(to); d = d.AddDays(1) {
		status := domain.DayFree
		if !s.InSeason(d) {
			status = domain.DayOutOfSeason
		}
		index[d] = len(days)
		days = append(days, domain.CalendarDay{Date: d, Status: status})
	}

	mark := func(d types.Date, status domain.DayStatus, id int64, onlyFree bool) {
		i, ok := index[d]
		if !ok || (onlyFree && days[i].Status != domain.DayFree) {
			return
		}
		days[i].Status = status
		days[i].BookingID = &id
	}

	gap := s.ResetGapDays()
	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}

	// буферы рисуем первыми, ночи бронирований их перекрывают
	for _, b := range active {
		for i := 0; i < gap; i++ {
			mark(b.StartDate.AddDays(-1-i), domain.DayResetBuffer, b.ID, true)
			mark(b.EndDate.AddDays(i), domain.DayResetBuffer, b.ID, true)
		}
	}

	for _, b := range active {
		prep, err := domain.ComputePrepTeardown(b.StartDate, b.PackageType)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d: %w", ErrPrecondition, b.ID, err)
		}

		for d := b.StartDate; d.Before(b.EndDate); d = d.AddDays(1) {
			mark(d, domain.DayOccupied, b.ID, false)
		}
		for _, d := range prep.PrepDays {
			mark(d, domain.DayPrep, b.ID, false)
		}
		for _, d := range prep.TeardownDays {
			mark(d, domain.DayTeardown, b.ID, false)
		}
	}

	return days, nil
}
