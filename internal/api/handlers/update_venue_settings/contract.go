package update_venue_settings

import (
	"context"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/service/venue/models"
)

type VenueService interface {
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
