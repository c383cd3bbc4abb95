package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

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

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		return fmt.Errorf("%w: invalid clientEmail: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Создать можно только бронирование, занимающее календарь
	if req.Status != nil && !isActiveStatus(*req.Status) {
		return fmt.Errorf("%w: initial status must be one of %v", ErrInvalidInput, domain.ActiveStatuses)
	}

	return nil
}

func isActiveStatus(status domain.BookingStatus) bool {
	for _, s := range domain.ActiveStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// codeStrings коды ошибок для метрик
func codeStrings(codes []domain.ValidationCode) []string {
	result := make([]string, 0, len(codes))
	for _, c := range codes {
		result = append(result, string(c))
	}
	return result
}
