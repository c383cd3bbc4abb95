package reschedule_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.PackageType != nil && !req.PackageType.Valid() {
		return fmt.Errorf("%w: unknown packageType %q", ErrInvalidInput, *req.PackageType)
	}

	return nil
}
