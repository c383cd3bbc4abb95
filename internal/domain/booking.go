package domain

import (
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusInquiry   BookingStatus = "inquiry"
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a venue booking in the system
type Booking struct {
	ID          int64
	PackageType PackageType
	StartDate   types.Date
	EndDate     types.Date // checkout day, exclusive
	Status      BookingStatus

	ClientName  string
	ClientEmail string
	ClientPhone *string

	ReceptionGuests int
	CampingGuests   int
	RvSites         int
	IsLastMinute    bool
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// allowedTransitions lists the statuses each status may move to
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusInquiry:   {StatusPending, StatusConfirmed, StatusCancelled},
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Valid returns true if s is a known status
func (s BookingStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanTransitionTo returns true if a booking in status s may move to next.
// Completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive returns true if the booking occupies the calendar
func (b *Booking) IsActive() bool {
	return b.Status == StatusInquiry ||
		b.Status == StatusPending ||
		b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanBeRescheduled returns true if the booking dates can still be moved
func (b *Booking) CanBeRescheduled() bool {
	return b.IsActive()
}

// Window returns the booking window of the booking
func (b *Booking) Window() BookingWindow {
	return BookingWindow{
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		PackageType: b.PackageType,
	}
}

// Ref returns the read-only projection used by the scheduling validator
func (b *Booking) Ref() ExistingBookingRef {
	return ExistingBookingRef{
		ID:        b.ID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

// Refs projects bookings into ExistingBookingRef values
func Refs(bookings []*Booking) []ExistingBookingRef {
	refs := make([]ExistingBookingRef, 0, len(bookings))
	for _, b := range bookings {
		refs = append(refs, b.Ref())
	}
	return refs
}

// BookingWindow is the date range a booking occupies: [StartDate, EndDate)
type BookingWindow struct {
	StartDate   types.Date  `json:"startDate"`
	EndDate     types.Date  `json:"endDate"`
	PackageType PackageType `json:"packageType"`
}

// PrepTeardownWindow holds nights reserved for vendor setup and breakdown
type PrepTeardownWindow struct {
	PrepDays     []types.Date `json:"prepDays"`
	TeardownDays []types.Date `json:"teardownDays"`
}

// ExistingBookingRef is a read-only projection of a persisted booking
type ExistingBookingRef struct {
	ID        int64
	StartDate types.Date
	EndDate   types.Date
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	From            *types.Date    // Начало периода (включительно), nil - без ограничения
	To              *types.Date    // Конец периода (исключительно), nil - без ограничения
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и завершенные бронирования
}
