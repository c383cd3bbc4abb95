package validate_booking

import (
	"context"
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveInRange(ctx context.Context, from, to types.Date) ([]*domain.Booking, error)
}

// SettingsProvider источник действующих настроек площадки
type SettingsProvider interface {
	GetSettings(ctx context.Context) (*domain.VenueSettings, error)
}

// MetricsRecorder метрики результатов проверки
type MetricsRecorder interface {
	IncValidation(packageType string, bookable bool, codes []string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production.
// "Сегодня" определяется в часовом поясе площадки
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
