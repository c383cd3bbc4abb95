package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/scheduling"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// UseCase use case для получения календаря доступности площадки
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute строит календарь за период и список допустимых дней заезда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: from=%s, to=%s", req.From, req.To)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки площадки
	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get venue settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get venue settings: %v", ErrInternal, err)
	}

	packages := requestedPackages(req)
	gap := settings.ResetGapDays()

	// 3. Бронирования, влияющие на период: с учетом промежутка и длительности самого длинного пакета
	bookings, err := uc.bookingRepo.ListActiveInRange(ctx,
		req.From.AddDays(-gap),
		req.To.AddDays(longestStay(packages)+gap+1),
	)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Календарь по дням
	days, err := scheduling.BuildCalendar(req.From, req.To, bookings, *settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Допустимые дни заезда
	today := types.DateOf(uc.timeProvider.Now())
	snapshot := scheduling.Context{
		Settings: *settings,
		Existing: domain.Refs(bookings),
		Today:    today,
	}

	startDates := make([]PackageStartDates, 0, len(packages))
	for _, p := range packages {
		dates, err := scheduling.LegalStartDates(p, req.From, req.To, snapshot)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to compute start dates for %s: %v", p, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		nights, _ := domain.DurationNights(p)
		startDates = append(startDates, PackageStartDates{
			PackageType:    p,
			DurationNights: nights,
			Dates:          dates,
		})
	}

	uc.logger.Info("GetAvailability: %d days, %d active bookings, from=%s, to=%s",
		len(days), len(bookings), req.From, req.To)

	return &Response{
		From:       req.From,
		To:         req.To,
		Today:      today,
		Days:       days,
		StartDates: startDates,
	}, nil
}
