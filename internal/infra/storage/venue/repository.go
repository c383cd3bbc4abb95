package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/dbmetrics"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/psqlbuilder"
)

// settingsRowID единственная строка таблицы venue_settings
const settingsRowID = 1

// Repository репозиторий настроек площадки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает сохраненные настройки площадки
func (r *Repository) Get(ctx context.Context) (*domain.VenueSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"season_start",
		"season_end",
		"max_reception_guests",
		"included_camping_guests",
		"included_rv_sites",
		"min_reset_gap_days",
		"last_minute_threshold_days",
		"updated_at",
	).
		From("venue_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.VenueSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.SeasonStart,
		&settings.SeasonEnd,
		&settings.MaxReceptionGuests,
		&settings.IncludedCampingGuests,
		&settings.IncludedRvSites,
		&settings.MinResetGapDays,
		&settings.LastMinuteThresholdDays,
		&settings.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &settings, nil
}

// Upsert сохраняет настройки площадки, создавая строку при первом вызове
func (r *Repository) Upsert(ctx context.Context, settings *domain.VenueSettings) (*domain.VenueSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venue_settings").
		Columns(
			"id",
			"season_start",
			"season_end",
			"max_reception_guests",
			"included_camping_guests",
			"included_rv_sites",
			"min_reset_gap_days",
			"last_minute_threshold_days",
		).
		Values(
			settingsRowID,
			settings.SeasonStart,
			settings.SeasonEnd,
			settings.MaxReceptionGuests,
			settings.IncludedCampingGuests,
			settings.IncludedRvSites,
			settings.MinResetGapDays,
			settings.LastMinuteThresholdDays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			season_start = EXCLUDED.season_start,
			season_end = EXCLUDED.season_end,
			max_reception_guests = EXCLUDED.max_reception_guests,
			included_camping_guests = EXCLUDED.included_camping_guests,
			included_rv_sites = EXCLUDED.included_rv_sites,
			min_reset_gap_days = EXCLUDED.min_reset_gap_days,
			last_minute_threshold_days = EXCLUDED.last_minute_threshold_days,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&settings.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute: %v", ErrExecQuery, err)
	}

	return settings, nil
}
