package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	bookingRepo "github.com/KrisWemet/customer-connection-hub-sub001/internal/infra/storage/booking"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/scheduling"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/txmanager"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// UseCase use case для переноса бронирования на другие даты
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute переносит бронирование. Само бронирование не считается конфликтом для новых дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: user=%d, booking=%d, new start=%s", req.UserID, req.BookingID, req.StartDate)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get venue settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get venue settings: %v", ErrInternal, err)
	}

	today := types.DateOf(uc.timeProvider.Now())
	gap := settings.ResetGapDays()

	var (
		booking  *domain.Booking
		previous domain.BookingWindow
		result   domain.ValidationResult
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Бронирование с блокировкой строки
		var err error
		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if !booking.CanBeRescheduled() {
			return fmt.Errorf("%w: status is %s", ErrCannotReschedule, booking.Status)
		}

		previous = booking.Window()

		packageType := booking.PackageType
		if req.PackageType != nil {
			packageType = *req.PackageType
		}

		window, err := domain.ComputeWindow(packageType, req.StartDate)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		result.Window = window

		// 2. Соседние активные бронирования
		existing, err := uc.bookingRepo.ListActiveInRange(txCtx, window.StartDate.AddDays(-gap), window.EndDate.AddDays(gap))
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		// 3. Проверка новых дат без учета самого бронирования
		result, err = scheduling.ValidateWindow(window, scheduling.Guests{
			Reception: booking.ReceptionGuests,
			Camping:   booking.CampingGuests,
			RvSites:   booking.RvSites,
		}, scheduling.Context{
			Settings:        *settings,
			Existing:        domain.Refs(existing),
			Today:           today,
			IgnoreBookingID: &booking.ID,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if !result.IsBookable() {
			return &RejectedError{Result: result, Cause: ErrRejected}
		}

		// 4. Сохраняем новое окно
		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, window, result.IsLastMinute); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to reschedule booking: %w", err)
		}

		booking.PackageType = window.PackageType
		booking.StartDate = window.StartDate
		booking.EndDate = window.EndDate
		booking.IsLastMinute = result.IsLastMinute
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err, req, result)
	}

	uc.logger.Info("RescheduleBooking: booking id=%d moved from %s..%s to %s..%s",
		booking.ID, previous.StartDate, previous.EndDate, booking.StartDate, booking.EndDate)

	return &Response{Booking: booking, Previous: previous, Warnings: result.Warnings}, nil
}

// mapError переводит ошибки транзакции в ошибки usecase
func (uc *UseCase) mapError(err error, req *Request, result domain.ValidationResult) error {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
		return err

	case errors.Is(err, ErrCannotReschedule), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrRejected):
		uc.logger.Warn("RescheduleBooking: booking id=%d: %v", req.BookingID, err)
		return err

	case errors.Is(err, bookingRepo.ErrDateConflict),
		errors.Is(err, bookingRepo.ErrSerialization),
		errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("RescheduleBooking: concurrent booking for id=%d: %v", req.BookingID, err)
		if result.Errors == nil {
			result.Errors = []domain.ValidationError{}
		}
		if result.Warnings == nil {
			result.Warnings = []string{}
		}
		result.Errors = append(result.Errors, domain.ValidationError{
			Code:    domain.CodeDateConflict,
			Message: fmt.Sprintf("dates starting %s were booked concurrently", req.StartDate),
		})
		return &RejectedError{Result: result, Cause: ErrDateConflict}

	case errors.Is(err, ErrInternal):
		uc.logger.Error("RescheduleBooking: %v", err)
		return err

	default:
		uc.logger.Error("RescheduleBooking: transaction failed for id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
