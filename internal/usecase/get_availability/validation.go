package get_availability

import (
	"fmt"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	// Обе границы включены в период
	if req.From.DaysUntil(req.To)+1 > domain.MaxAvailabilityRangeDays {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, domain.MaxAvailabilityRangeDays)
	}

	if req.PackageType != nil && !req.PackageType.Valid() {
		return fmt.Errorf("%w: unknown packageType %q", ErrInvalidInput, *req.PackageType)
	}

	return nil
}

// requestedPackages пакеты, для которых считаются дни заезда
func requestedPackages(req *Request) []domain.PackageType {
	if req.PackageType != nil {
		return []domain.PackageType{*req.PackageType}
	}
	return domain.AllPackageTypes()
}

// longestStay максимальная длительность среди пакетов в ночах
func longestStay(packages []domain.PackageType) int {
	longest := 0
	for _, p := range packages {
		if nights, err := domain.DurationNights(p); err == nil && nights > longest {
			longest = nights
		}
	}
	return longest
}
