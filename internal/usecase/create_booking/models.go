package create_booking

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64              // ID менеджера, создающего бронирование
	PackageType domain.PackageType // Тип пакета
	StartDate   types.Date         // День заезда

	ReceptionGuests int
	CampingGuests   int
	RvSites         int

	ClientName  string
	ClientEmail string
	ClientPhone *string // опционально
	Notes       *string // опционально

	Status *domain.BookingStatus // Начальный статус, по умолчанию inquiry
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking  *domain.Booking
	Warnings []string // Предупреждения проверки (доплата за кемпинг, автодома)
}
