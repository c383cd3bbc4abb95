package validate_booking

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	validateBooking "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/validate_booking"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	PackageType     string `json:"packageType"`
	StartDate       string `json:"startDate"` // "2026-06-11"
	ReceptionGuests int    `json:"receptionGuests"`
	CampingGuests   int    `json:"campingGuests"`
	RvSites         int    `json:"rvSites"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingRequest) ToUseCaseRequest() (*validateBooking.Request, error) {
	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	return &validateBooking.Request{
		PackageType:     domain.PackageType(r.PackageType),
		StartDate:       startDate,
		ReceptionGuests: r.ReceptionGuests,
		CampingGuests:   r.CampingGuests,
		RvSites:         r.RvSites,
	}, nil
}
