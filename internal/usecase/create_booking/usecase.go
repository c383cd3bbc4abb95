package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	bookingRepo "github.com/KrisWemet/customer-connection-hub-sub001/internal/infra/storage/booking"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/scheduling"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/txmanager"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка и запись выполняются в сериализуемой транзакции с блокировкой соседних бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, package=%s, start=%s, reception=%d",
		req.UserID, req.PackageType, req.StartDate, req.ReceptionGuests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	window, err := domain.ComputeWindow(req.PackageType, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Настройки площадки (из кэша, вне транзакции)
	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get venue settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get venue settings: %v", ErrInternal, err)
	}

	today := types.DateOf(uc.timeProvider.Now())
	gap := settings.ResetGapDays()

	// Окно известно до проверки, чтобы конфликт при ранней ошибке сериализации тоже его содержал
	var created *domain.Booking
	result := domain.ValidationResult{
		Window:   window,
		Errors:   []domain.ValidationError{},
		Warnings: []string{},
	}
	if prep, err := domain.ComputePrepTeardown(window.StartDate, window.PackageType); err == nil {
		result.PrepTeardown = prep
	}

	// 3. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Активные соседние бронирования с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.ListActiveInRange(txCtx, window.StartDate.AddDays(-gap), window.EndDate.AddDays(gap))
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		// 3.2. Проверка правил
		result, err = scheduling.ValidateWindow(window, scheduling.Guests{
			Reception: req.ReceptionGuests,
			Camping:   req.CampingGuests,
			RvSites:   req.RvSites,
		}, scheduling.Context{
			Settings: *settings,
			Existing: domain.Refs(existing),
			Today:    today,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		uc.recordValidation(req.PackageType, result)

		if !result.IsBookable() {
			return rejected(result)
		}

		// 3.3. Сохраняем бронирование
		booking := &domain.Booking{
			PackageType:     window.PackageType,
			StartDate:       window.StartDate,
			EndDate:         window.EndDate,
			Status:          initialStatus(req),
			ClientName:      strings.TrimSpace(req.ClientName),
			ClientEmail:     strings.TrimSpace(req.ClientEmail),
			ClientPhone:     req.ClientPhone,
			ReceptionGuests: req.ReceptionGuests,
			CampingGuests:   req.CampingGuests,
			RvSites:         req.RvSites,
			IsLastMinute:    result.IsLastMinute,
			Notes:           req.Notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, uc.mapError(err, result)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(string(created.PackageType), created.IsLastMinute)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, %s..%s, last_minute=%t",
		created.ID, created.StartDate, created.EndDate, created.IsLastMinute)

	return &Response{Booking: created, Warnings: result.Warnings}, nil
}

// mapError переводит ошибки транзакции в ошибки usecase
func (uc *UseCase) mapError(err error, result domain.ValidationResult) error {
	switch {
	case errors.Is(err, ErrRejected):
		uc.logger.Warn("CreateBooking: rejected: %v", err)
		return err

	case errors.Is(err, bookingRepo.ErrDateConflict),
		errors.Is(err, bookingRepo.ErrSerialization),
		errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("CreateBooking: concurrent booking for %s..%s: %v",
			result.Window.StartDate, result.Window.EndDate, err)
		return concurrentConflict(result)

	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateBooking: %v", err)
		return err

	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (uc *UseCase) recordValidation(p domain.PackageType, result domain.ValidationResult) {
	if uc.metrics != nil {
		uc.metrics.IncValidation(string(p), result.IsBookable(), codeStrings(result.Codes()))
	}
}

func initialStatus(req *Request) domain.BookingStatus {
	if req.Status != nil {
		return *req.Status
	}
	return domain.StatusInquiry
}
