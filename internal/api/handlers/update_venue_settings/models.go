package update_venue_settings

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/service/venue/models"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// UpdateVenueSettingsRequest HTTP request model. Все поля опциональны
type UpdateVenueSettingsRequest struct {
	SeasonStart             *types.MonthDay `json:"seasonStart,omitempty"` // "05-01"
	SeasonEnd               *types.MonthDay `json:"seasonEnd,omitempty"`   // "10-31"
	MaxReceptionGuests      *int            `json:"maxReceptionGuests,omitempty"`
	IncludedCampingGuests   *int            `json:"includedCampingGuests,omitempty"`
	IncludedRvSites         *int            `json:"includedRvSites,omitempty"`
	MinResetGapDays         *int            `json:"minResetGapDays,omitempty"`
	LastMinuteThresholdDays *int            `json:"lastMinuteThresholdDays,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateVenueSettingsRequest) ToServiceRequest(userID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:                  userID,
		SeasonStart:             r.SeasonStart,
		SeasonEnd:               r.SeasonEnd,
		MaxReceptionGuests:      r.MaxReceptionGuests,
		IncludedCampingGuests:   r.IncludedCampingGuests,
		IncludedRvSites:         r.IncludedRvSites,
		MinResetGapDays:         r.MinResetGapDays,
		LastMinuteThresholdDays: r.LastMinuteThresholdDays,
	}
}
