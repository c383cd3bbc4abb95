package cancel_booking

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/service/bookings/models"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/ptr"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: ptr.Deref(r.CancellationReason),
	}
}
