package validate_booking

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// Request модель запроса на предварительную проверку бронирования
type Request struct {
	PackageType     domain.PackageType // Тип пакета
	StartDate       types.Date         // День заезда
	ReceptionGuests int                // Гости на церемонии
	CampingGuests   int                // Гости с палатками
	RvSites         int                // Места для автодомов
}

// Response результат проверки
type Response struct {
	Result domain.ValidationResult
	Today  types.Date // Дата, относительно которой выполнена проверка
}
