package models

import (
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// UpdateSettingsRequest запрос на обновление настроек площадки.
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	UserID                  int64           `json:"userId"`
	SeasonStart             *types.MonthDay `json:"seasonStart,omitempty"` // "05-01"
	SeasonEnd               *types.MonthDay `json:"seasonEnd,omitempty"`   // "10-31"
	MaxReceptionGuests      *int            `json:"maxReceptionGuests,omitempty"`
	IncludedCampingGuests   *int            `json:"includedCampingGuests,omitempty"`
	IncludedRvSites         *int            `json:"includedRvSites,omitempty"`
	MinResetGapDays         *int            `json:"minResetGapDays,omitempty"`
	LastMinuteThresholdDays *int            `json:"lastMinuteThresholdDays,omitempty"`
}

// ApplyTo накладывает переданные значения на текущие настройки
func (r *UpdateSettingsRequest) ApplyTo(current domain.VenueSettings) domain.VenueSettings {
	updated := current
	if r.SeasonStart != nil {
		updated.SeasonStart = *r.SeasonStart
	}
	if r.SeasonEnd != nil {
		updated.SeasonEnd = *r.SeasonEnd
	}
	if r.MaxReceptionGuests != nil {
		updated.MaxReceptionGuests = *r.MaxReceptionGuests
	}
	if r.IncludedCampingGuests != nil {
		updated.IncludedCampingGuests = *r.IncludedCampingGuests
	}
	if r.IncludedRvSites != nil {
		updated.IncludedRvSites = *r.IncludedRvSites
	}
	if r.MinResetGapDays != nil {
		updated.MinResetGapDays = *r.MinResetGapDays
	}
	if r.LastMinuteThresholdDays != nil {
		updated.LastMinuteThresholdDays = *r.LastMinuteThresholdDays
	}
	return updated
}

// SettingsResponse ответ с настройками площадки
type SettingsResponse struct {
	SeasonStart             string     `json:"seasonStart"`
	SeasonEnd               string     `json:"seasonEnd"`
	SeasonWrapsYear         bool       `json:"seasonWrapsYear"`
	MaxReceptionGuests      int        `json:"maxReceptionGuests"`
	IncludedCampingGuests   int        `json:"includedCampingGuests"`
	IncludedRvSites         int        `json:"includedRvSites"`
	MinResetGapDays         int        `json:"minResetGapDays"`
	LastMinuteThresholdDays int        `json:"lastMinuteThresholdDays"`
	IsDefault               bool       `json:"isDefault"` // true, если настройки еще не сохранялись
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.VenueSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		SeasonStart:             s.SeasonStart.String(),
		SeasonEnd:               s.SeasonEnd.String(),
		SeasonWrapsYear:         s.WrapsYearBoundary(),
		MaxReceptionGuests:      s.MaxReceptionGuests,
		IncludedCampingGuests:   s.IncludedCampingGuests,
		IncludedRvSites:         s.IncludedRvSites,
		MinResetGapDays:         s.MinResetGapDays,
		LastMinuteThresholdDays: s.LastMinuteThresholdDays,
		IsDefault:               s.UpdatedAt.IsZero(),
	}

	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
