package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDateConflict возвращается, когда ограничение bookings_no_overlap отклонило запись
	ErrDateConflict = errors.New("booking.repository: dates conflict with an active booking")

	// ErrSerialization возвращается, когда сериализуемая транзакция не может быть завершена
	ErrSerialization = errors.New("booking.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Коды SQLSTATE PostgreSQL
const (
	sqlStateExclusionViolation   = "23P01"
	sqlStateSerializationFailure = "40001"
)

// classifyPQError переводит ошибки PostgreSQL, важные для бизнес-логики, в sentinel ошибки пакета.
// Остальные ошибки возвращает как есть.
func classifyPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case sqlStateExclusionViolation:
		return ErrDateConflict
	case sqlStateSerializationFailure:
		return ErrSerialization
	default:
		return nil
	}
}
