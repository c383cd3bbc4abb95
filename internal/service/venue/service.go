package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	cacheVenue "github.com/KrisWemet/customer-connection-hub-sub001/internal/infra/cache/venue"
	venueRepo "github.com/KrisWemet/customer-connection-hub-sub001/internal/infra/storage/venue"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/service/venue/models"
)

const cacheName = "venue_settings"

// Service сервис настроек площадки
type Service struct {
	repo     SettingsRepository
	cache    SettingsCache
	metrics  MetricsRecorder
	defaults domain.VenueSettings
	logger   Logger
}

// NewService создает новый экземпляр сервиса настроек.
// cache и metrics могут быть nil. defaults используются, пока настройки не сохранены
func NewService(
	repo SettingsRepository,
	cache SettingsCache,
	metrics MetricsRecorder,
	defaults domain.VenueSettings,
	logger Logger,
) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		metrics:  metrics,
		defaults: defaults,
		logger:   logger,
	}
}

// GetSettings возвращает действующие настройки: кэш, затем БД, затем значения по умолчанию
func (s *Service) GetSettings(ctx context.Context) (*domain.VenueSettings, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		switch {
		case err == nil:
			s.recordCache(true)
			return cached, nil
		case errors.Is(err, cacheVenue.ErrCacheMiss):
			s.recordCache(false)
		default:
			// Кэш недоступен - идем в БД
			s.recordCache(false)
			s.logger.Warn("GetSettings: cache unavailable: %v", err)
		}
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, venueRepo.ErrSettingsNotFound) {
			s.logger.Info("GetSettings: settings not stored, using defaults")
			defaults := s.defaults
			return &defaults, nil
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, settings); err != nil {
			s.logger.Warn("GetSettings: failed to cache settings: %v", err)
		}
	}

	return settings, nil
}

// Get возвращает настройки площадки для API
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// Update обновляет настройки площадки.
// Уже созданные бронирования не перепроверяются
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating venue settings by user=%d", req.UserID)

	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	updated := req.ApplyTo(*current)
	if err := validateSettings(updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Update: failed to invalidate cache: %v", err)
		}
	}

	s.logger.Info("Update: venue settings saved, season=%s..%s, reset gap=%d days",
		saved.SeasonStart, saved.SeasonEnd, saved.MinResetGapDays)
	return models.FromDomainSettings(saved), nil
}

func (s *Service) recordCache(hit bool) {
	if s.metrics != nil {
		s.metrics.IncCacheLookup(cacheName, hit)
	}
}

// validateSettings валидирует параметры площадки
func validateSettings(v domain.VenueSettings) error {
	if v.SeasonStart.IsZero() || v.SeasonEnd.IsZero() {
		return fmt.Errorf("%w: season bounds are required", ErrInvalidInput)
	}
	if v.SeasonStart == v.SeasonEnd {
		return fmt.Errorf("%w: season must span more than one day", ErrInvalidInput)
	}
	for name, value := range map[string]int{
		"maxReceptionGuests":    v.MaxReceptionGuests,
		"includedCampingGuests": v.IncludedCampingGuests,
		"includedRvSites":       v.IncludedRvSites,
	} {
		if value < 0 || value > domain.MaxGuestCap {
			return fmt.Errorf("%w: %s must be between 0 and %d", ErrInvalidInput, name, domain.MaxGuestCap)
		}
	}
	if v.MinResetGapDays < domain.MinResetGapDays || v.MinResetGapDays > domain.MaxResetGapDays {
		return fmt.Errorf("%w: minResetGapDays must be between %d and %d",
			ErrInvalidInput, domain.MinResetGapDays, domain.MaxResetGapDays)
	}
	if v.LastMinuteThresholdDays < 0 || v.LastMinuteThresholdDays > domain.MaxLastMinuteThresholdDays {
		return fmt.Errorf("%w: lastMinuteThresholdDays must be between 0 and %d",
			ErrInvalidInput, domain.MaxLastMinuteThresholdDays)
	}
	return nil
}
