package domain

import "github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"

// DayStatus describes how a calendar day is used
type DayStatus string

const (
	DayFree        DayStatus = "free"
	DayOccupied    DayStatus = "occupied"
	DayPrep        DayStatus = "prep"
	DayTeardown    DayStatus = "teardown"
	DayResetBuffer DayStatus = "reset_buffer"
	DayOutOfSeason DayStatus = "out_of_season"
)

// CalendarDay represents a single day of the availability calendar
type CalendarDay struct {
	Date      types.Date `json:"date"`
	Status    DayStatus  `json:"status"`
	BookingID *int64     `json:"bookingId,omitempty"`
}

// IsFree returns true if nothing blocks the day
func (d CalendarDay) IsFree() bool {
	return d.Status == DayFree
}
