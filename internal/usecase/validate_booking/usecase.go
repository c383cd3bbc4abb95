package validate_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/scheduling"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// UseCase use case для предварительной проверки бронирования (без сохранения)
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute проверяет предложенное бронирование по текущему состоянию календаря.
// Результат не гарантирует, что создание пройдет: календарь может измениться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateBooking: package=%s, start=%s, reception=%d",
		req.PackageType, req.StartDate, req.ReceptionGuests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно бронирования
	window, err := domain.ComputeWindow(req.PackageType, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Настройки площадки
	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to get venue settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get venue settings: %v", ErrInternal, err)
	}

	// 4. Активные бронирования, способные конфликтовать с окном
	gap := settings.ResetGapDays()
	existing, err := uc.bookingRepo.ListActiveInRange(ctx, window.StartDate.AddDays(-gap), window.EndDate.AddDays(gap))
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	today := types.DateOf(uc.timeProvider.Now())

	// 5. Проверка правил
	result, err := scheduling.ValidateWindow(window, scheduling.Guests{
		Reception: req.ReceptionGuests,
		Camping:   req.CampingGuests,
		RvSites:   req.RvSites,
	}, scheduling.Context{
		Settings: *settings,
		Existing: domain.Refs(existing),
		Today:    today,
	})
	if err != nil {
		uc.logger.Error("ValidateBooking: scheduling precondition failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncValidation(string(req.PackageType), result.IsBookable(), codeStrings(result.Codes()))
	}

	uc.logger.Info("ValidateBooking: package=%s, start=%s, bookable=%t, errors=%v, warnings=%d",
		req.PackageType, req.StartDate, result.IsBookable(), result.Codes(), len(result.Warnings))

	return &Response{Result: result, Today: today}, nil
}
