package domain

import "time"

// ValidationCode identifies a business-rule violation
type ValidationCode string

const (
	CodeInvalidStartDay  ValidationCode = "InvalidStartDay"
	CodePastStartDate    ValidationCode = "PastStartDate"
	CodeOutOfSeason      ValidationCode = "OutOfSeason"
	CodeGuestCapExceeded ValidationCode = "GuestCapExceeded"
	CodeDateConflict     ValidationCode = "DateConflict"
)

// ValidationError is a recoverable business-rule violation
type ValidationError struct {
	Code                 ValidationCode `json:"code"`
	Message              string         `json:"message"`
	AllowedWeekdays      []string       `json:"allowedWeekdays,omitempty"`
	ConflictingBookingID *int64         `json:"conflictingBookingId,omitempty"`
}

// ValidationResult is the outcome of a scheduling validation.
// Errors and Warnings are never nil.
type ValidationResult struct {
	Window       BookingWindow      `json:"window"`
	PrepTeardown PrepTeardownWindow `json:"prepTeardown"`
	Errors       []ValidationError  `json:"errors"`
	Warnings     []string           `json:"warnings"`
	IsLastMinute bool               `json:"isLastMinute"`
}

// IsBookable returns true if no blocking error was found
func (r ValidationResult) IsBookable() bool {
	return len(r.Errors) == 0
}

// HasCode returns true if an error with the code is present
func (r ValidationResult) HasCode(code ValidationCode) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Codes returns the error codes in order
func (r ValidationResult) Codes() []ValidationCode {
	codes := make([]ValidationCode, 0, len(r.Errors))
	for _, e := range r.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}

// WeekdayNames converts weekdays to their English names
func WeekdayNames(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return names
}
