package reschedule_booking

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/service/bookings/models"
	rescheduleBooking "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/reschedule_booking"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	StartDate   string  `json:"startDate"`
	PackageType *string `json:"packageType,omitempty"` // по умолчанию текущий пакет
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	Booking  *models.BookingResponse `json:"booking"`
	Previous domain.BookingWindow    `json:"previous"`
	Warnings []string                `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(userID, bookingID int64) (*rescheduleBooking.Request, error) {
	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &rescheduleBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		StartDate: startDate,
	}
	if r.PackageType != nil {
		packageType := domain.PackageType(*r.PackageType)
		req.PackageType = &packageType
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &RescheduleBookingResponse{
		Booking:  models.FromDomainBooking(resp.Booking),
		Previous: resp.Previous,
		Warnings: warnings,
	}
}
