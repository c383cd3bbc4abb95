package get_availability

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// Request модель запроса календаря доступности
type Request struct {
	From        types.Date          // Первый день периода
	To          types.Date          // Последний день периода (включительно)
	PackageType *domain.PackageType // Фильтр по пакету (опционально, по умолчанию все)
}

// Response модель ответа с календарем
type Response struct {
	From       types.Date
	To         types.Date
	Today      types.Date
	Days       []domain.CalendarDay // Статус каждого дня периода
	StartDates []PackageStartDates  // Допустимые дни заезда по пакетам
}

// PackageStartDates допустимые дни заезда для пакета
type PackageStartDates struct {
	PackageType    domain.PackageType
	DurationNights int
	Dates          []types.Date
}
