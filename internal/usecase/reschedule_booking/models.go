package reschedule_booking

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	UserID      int64               // ID менеджера
	BookingID   int64               // ID бронирования
	StartDate   types.Date          // Новый день заезда
	PackageType *domain.PackageType // Новый пакет (опционально, по умолчанию текущий)
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	Booking  *domain.Booking
	Previous domain.BookingWindow // Окно до переноса
	Warnings []string
}
