package venue

import (
	"context"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек площадки
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.VenueSettings, error)
	Upsert(ctx context.Context, settings *domain.VenueSettings) (*domain.VenueSettings, error)
}

// SettingsCache интерфейс кэша настроек (опционально)
type SettingsCache interface {
	Get(ctx context.Context) (*domain.VenueSettings, error)
	Set(ctx context.Context, settings *domain.VenueSettings) error
	Invalidate(ctx context.Context) error
}

// MetricsRecorder метрики кэша
type MetricsRecorder interface {
	IncCacheLookup(cache string, hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
