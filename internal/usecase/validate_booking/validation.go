package validate_booking

import (
	"fmt"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.PackageType.Valid() {
		return fmt.Errorf("%w: unknown packageType %q", ErrInvalidInput, req.PackageType)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.ReceptionGuests < 0 || req.CampingGuests < 0 || req.RvSites < 0 {
		return fmt.Errorf("%w: guest counts must not be negative", ErrInvalidInput)
	}

	if req.ReceptionGuests > domain.MaxGuestCap || req.CampingGuests > domain.MaxGuestCap || req.RvSites > domain.MaxGuestCap {
		return fmt.Errorf("%w: guest counts must not exceed %d", ErrInvalidInput, domain.MaxGuestCap)
	}

	return nil
}

// codeStrings коды ошибок для метрик
func codeStrings(codes []domain.ValidationCode) []string {
	result := make([]string, 0, len(codes))
	for _, c := range codes {
		result = append(result, string(c))
	}
	return result
}
