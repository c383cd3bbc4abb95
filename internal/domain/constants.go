package domain

import (
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// Default venue settings
const (
	DefaultMaxReceptionGuests      = 150
	DefaultIncludedCampingGuests   = 60
	DefaultIncludedRvSites         = 15
	DefaultMinResetGapDays         = 1
	DefaultLastMinuteThresholdDays = 14
)

// Default season bounds: May 1 through October 31
var (
	DefaultSeasonStart = types.MonthDay{Month: time.May, Day: 1}
	DefaultSeasonEnd   = types.MonthDay{Month: time.October, Day: 31}
)

// Business validation constants
const (
	MinResetGapDays             = 1
	MaxResetGapDays             = 30
	MaxLastMinuteThresholdDays  = 180
	MaxGuestCap                 = 5000
	MaxNotesLength              = 1000
	MaxCancellationReasonLength = 500
	MaxClientNameLength         = 200
	MaxAvailabilityRangeDays    = 366
)

// DateFormat календарная дата YYYY-MM-DD
const DateFormat = types.DateLayout

// InactiveStatuses statuses that no longer occupy the calendar
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses statuses that occupy the calendar
var ActiveStatuses = []BookingStatus{
	StatusInquiry,
	StatusPending,
	StatusConfirmed,
}

// AllStatuses every known booking status
var AllStatuses = []BookingStatus{
	StatusInquiry,
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
