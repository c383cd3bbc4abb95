package get_availability

import (
	"errors"
	"net/http"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers"
	getAvailability "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/get_availability"
)

const (
	msgInvalidParams = "некорректные параметры запроса, ожидаются from и to в формате YYYY-MM-DD"
	msgInvalidInput  = "некорректный период или тип пакета"
	msgRangeTooLarge = "запрошенный период слишком длинный"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from, to (включительно), packageType (опционально)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrRangeTooLarge):
			h.logger.Warn("GET /availability - Range too large: from=%s, to=%s", useCaseReq.From, useCaseReq.To)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to build calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Calendar built: from=%s, to=%s, days=%d",
		result.From, result.To, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
