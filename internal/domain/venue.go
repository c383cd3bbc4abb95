package domain

import (
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// VenueSettings represents the operating configuration of the venue
type VenueSettings struct {
	SeasonStart             types.MonthDay
	SeasonEnd               types.MonthDay
	MaxReceptionGuests      int
	IncludedCampingGuests   int
	IncludedRvSites         int
	MinResetGapDays         int
	LastMinuteThresholdDays int
	UpdatedAt               time.Time
}

// DefaultVenueSettings returns settings used when nothing is stored
func DefaultVenueSettings() VenueSettings {
	return VenueSettings{
		SeasonStart:             DefaultSeasonStart,
		SeasonEnd:               DefaultSeasonEnd,
		MaxReceptionGuests:      DefaultMaxReceptionGuests,
		IncludedCampingGuests:   DefaultIncludedCampingGuests,
		IncludedRvSites:         DefaultIncludedRvSites,
		MinResetGapDays:         DefaultMinResetGapDays,
		LastMinuteThresholdDays: DefaultLastMinuteThresholdDays,
	}
}

// ResetGapDays returns the effective reset gap, never below one day
func (s VenueSettings) ResetGapDays() int {
	if s.MinResetGapDays < MinResetGapDays {
		return DefaultMinResetGapDays
	}
	return s.MinResetGapDays
}

// LastMinuteDays returns the effective last-minute threshold
func (s VenueSettings) LastMinuteDays() int {
	if s.LastMinuteThresholdDays < 0 {
		return DefaultLastMinuteThresholdDays
	}
	return s.LastMinuteThresholdDays
}

// InSeason returns true if the date falls within the season.
// The season is year-agnostic and wraps across the new year when SeasonStart > SeasonEnd.
func (s VenueSettings) InSeason(d types.Date) bool {
	md := types.MonthDayOf(d)
	if s.SeasonStart.Compare(s.SeasonEnd) <= 0 {
		return md.Compare(s.SeasonStart) >= 0 && md.Compare(s.SeasonEnd) <= 0
	}
	return md.Compare(s.SeasonStart) >= 0 || md.Compare(s.SeasonEnd) <= 0
}

// WrapsYearBoundary returns true if the season spans December 31
func (s VenueSettings) WrapsYearBoundary() bool {
	return s.SeasonStart.Compare(s.SeasonEnd) > 0
}
