package create_booking

import (
	"errors"
	"net/http"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/api/middleware"
	createBooking "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты заезда, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgRejected           = "бронирование нарушает правила площадки"
	msgDateConflict       = "выбранные даты только что заняты другим бронированием"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejected *createBooking.RejectedError

		switch {
		case errors.Is(err, createBooking.ErrDateConflict) && errors.As(err, &rejected):
			h.logger.Warn("POST /bookings - Date conflict on write: user_id=%d, package=%s, start=%s",
				userID, req.PackageType, req.StartDate)
			handlers.RespondJSON(w, http.StatusConflict, handlers.NewValidationResponse(rejected.Result, msgDateConflict))

		case errors.As(err, &rejected):
			h.logger.Warn("POST /bookings - Rejected: user_id=%d, package=%s, start=%s, codes=%v",
				userID, req.PackageType, req.StartDate, rejected.Result.Codes())
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, handlers.NewValidationResponse(rejected.Result, msgRejected))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d",
		result.Booking.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
