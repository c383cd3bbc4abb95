package create_booking

import (
	"fmt"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/service/bookings/models"
	createBooking "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/create_booking"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PackageType     string  `json:"packageType"` // "5_day_extended"
	StartDate       string  `json:"startDate"`   // "2026-06-11"
	ReceptionGuests int     `json:"receptionGuests"`
	CampingGuests   int     `json:"campingGuests"`
	RvSites         int     `json:"rvSites"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Status          *string `json:"status,omitempty"` // inquiry (по умолчанию), pending, confirmed
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking  *models.BookingResponse `json:"booking"`
	Warnings []string                `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		UserID:          userID,
		PackageType:     domain.PackageType(r.PackageType),
		StartDate:       startDate,
		ReceptionGuests: r.ReceptionGuests,
		CampingGuests:   r.CampingGuests,
		RvSites:         r.RvSites,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		Notes:           r.Notes,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status %q", *r.Status)
		}
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &CreateBookingResponse{
		Booking:  models.FromDomainBooking(resp.Booking),
		Warnings: warnings,
	}
}
