package create_booking

import (
	"errors"
	"fmt"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

var (
	// ErrRejected возвращается, когда бронирование нарушает правила площадки
	ErrRejected = errors.New("create_booking: booking rejected by scheduling rules")

	// ErrDateConflict возвращается, когда даты заняли параллельно (ограничение БД или конфликт сериализации)
	ErrDateConflict = errors.New("create_booking: dates were taken concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectedError несет полный результат проверки отклоненного бронирования
type RejectedError struct {
	Result domain.ValidationResult
	Cause  error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%v: %v", e.Cause, e.Result.Codes())
}

// Unwrap позволяет errors.Is находить ErrRejected и причину (ErrDateConflict при гонке)
func (e *RejectedError) Unwrap() []error {
	if e.Cause == nil || e.Cause == ErrRejected {
		return []error{ErrRejected}
	}
	return []error{ErrRejected, e.Cause}
}

func rejected(result domain.ValidationResult) error {
	return &RejectedError{Result: result, Cause: ErrRejected}
}

// concurrentConflict дополняет успешный результат проверки конфликтом, обнаруженным при записи
func concurrentConflict(result domain.ValidationResult) error {
	result.Errors = append(result.Errors, domain.ValidationError{
		Code:    domain.CodeDateConflict,
		Message: fmt.Sprintf("dates %s..%s were booked concurrently", result.Window.StartDate, result.Window.EndDate),
	})
	return &RejectedError{Result: result, Cause: ErrDateConflict}
}
