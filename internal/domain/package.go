package domain

import (
	"fmt"
	"time"
)

// PackageType represents a venue rental offering
type PackageType string

const (
	PackageThreeDayWeekend  PackageType = "3_day_weekend"
	PackageFiveDayExtended  PackageType = "5_day_extended"
	PackageTenDayExperience PackageType = "10_day_experience"
)

// PackageRule is the fixed scheduling rule of a package type
type PackageRule struct {
	DurationNights       int
	AllowedStartWeekdays []time.Weekday
}

// AllPackageTypes returns every package type in display order
func AllPackageTypes() []PackageType {
	return []PackageType{
		PackageThreeDayWeekend,
		PackageFiveDayExtended,
		PackageTenDayExperience,
	}
}

// ParsePackageType converts a string into a known PackageType
func ParsePackageType(s string) (PackageType, error) {
	p := PackageType(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPackageType, s)
	}
	return p, nil
}

// Valid returns true if p is one of the known package types
func (p PackageType) Valid() bool {
	_, err := p.Rule()
	return err == nil
}

// Rule returns the scheduling rule of the package type.
// A fresh slice is returned on every call so callers cannot mutate the table.
func (p PackageType) Rule() (PackageRule, error) {
	switch p {
	case PackageThreeDayWeekend:
		return PackageRule{
			DurationNights:       3,
			AllowedStartWeekdays: []time.Weekday{time.Friday},
		}, nil
	case PackageFiveDayExtended:
		return PackageRule{
			DurationNights:       5,
			AllowedStartWeekdays: []time.Weekday{time.Wednesday, time.Thursday},
		}, nil
	case PackageTenDayExperience:
		return PackageRule{
			DurationNights:       10,
			AllowedStartWeekdays: []time.Weekday{time.Wednesday},
		}, nil
	default:
		return PackageRule{}, fmt.Errorf("%w: %q", ErrUnknownPackageType, string(p))
	}
}

// HasPrepTeardown returns true if the package reserves nights for vendor setup and breakdown
func (p PackageType) HasPrepTeardown() bool {
	return p == PackageFiveDayExtended
}

// DurationNights returns the number of nights of the package
func DurationNights(p PackageType) (int, error) {
	rule, err := p.Rule()
	if err != nil {
		return 0, err
	}
	return rule.DurationNights, nil
}

// AllowedStartWeekdays returns the weekdays on which the package may start
func AllowedStartWeekdays(p PackageType) ([]time.Weekday, error) {
	rule, err := p.Rule()
	if err != nil {
		return nil, err
	}
	return rule.AllowedStartWeekdays, nil
}

// AllowsStartOn returns true if weekday is one of the allowed start weekdays
func (r PackageRule) AllowsStartOn(weekday time.Weekday) bool {
	for _, allowed := range r.AllowedStartWeekdays {
		if allowed == weekday {
			return true
		}
	}
	return false
}
