package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCannotReschedule возвращается для отмененных и завершенных бронирований
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrRejected возвращается, когда новые даты нарушают правила площадки
	ErrRejected = errors.New("reschedule_booking: new dates rejected by scheduling rules")

	// ErrDateConflict возвращается, когда даты заняли параллельно
	ErrDateConflict = errors.New("reschedule_booking: dates were taken concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)

// RejectedError несет полный результат проверки новых дат
type RejectedError struct {
	Result domain.ValidationResult
	Cause  error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%v: %v", e.Cause, e.Result.Codes())
}

func (e *RejectedError) Unwrap() []error {
	if e.Cause == nil || e.Cause == ErrRejected {
		return []error{ErrRejected}
	}
	return []error{ErrRejected, e.Cause}
}
