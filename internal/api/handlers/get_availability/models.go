package get_availability

import (
	"fmt"
	"net/url"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	getAvailability "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/get_availability"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	From       types.Date                 `json:"from"`
	To         types.Date                 `json:"to"`
	Today      types.Date                 `json:"today"`
	Days       []domain.CalendarDay       `json:"days"`
	StartDates []PackageStartDatesResponse `json:"startDates"`
}

// PackageStartDatesResponse допустимые дни заезда для пакета
type PackageStartDatesResponse struct {
	PackageType    string       `json:"packageType"`
	DurationNights int          `json:"durationNights"`
	Dates          []types.Date `json:"dates"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(query url.Values) (*getAvailability.Request, error) {
	from, err := types.ParseDate(query.Get("from"))
	if err != nil {
		return nil, fmt.Errorf("invalid from: %w", err)
	}

	to, err := types.ParseDate(query.Get("to"))
	if err != nil {
		return nil, fmt.Errorf("invalid to: %w", err)
	}

	req := &getAvailability.Request{From: from, To: to}
	if packageType := query.Get("packageType"); packageType != "" {
		p := domain.PackageType(packageType)
		req.PackageType = &p
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	startDates := make([]PackageStartDatesResponse, 0, len(resp.StartDates))
	for _, s := range resp.StartDates {
		dates := s.Dates
		if dates == nil {
			dates = []types.Date{}
		}
		startDates = append(startDates, PackageStartDatesResponse{
			PackageType:    string(s.PackageType),
			DurationNights: s.DurationNights,
			Dates:          dates,
		})
	}

	return &AvailabilityResponse{
		From:       resp.From,
		To:         resp.To,
		Today:      resp.Today,
		Days:       resp.Days,
		StartDates: startDates,
	}
}
