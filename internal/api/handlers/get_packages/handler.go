package get_packages

import (
	"net/http"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

// PackageResponse правила пакета
type PackageResponse struct {
	PackageType          string   `json:"packageType"`
	DurationNights       int      `json:"durationNights"`
	AllowedStartWeekdays []string `json:"allowedStartWeekdays"`
	HasPrepTeardown      bool     `json:"hasPrepTeardown"`
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/packages
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	packages := domain.AllPackageTypes()
	response := make([]PackageResponse, 0, len(packages))

	for _, p := range packages {
		rule, err := p.Rule()
		if err != nil {
			h.logger.Error("GET /packages - Missing rule for package %s: %v", p, err)
			handlers.RespondInternalError(w)
			return
		}

		response = append(response, PackageResponse{
			PackageType:          string(p),
			DurationNights:       rule.DurationNights,
			AllowedStartWeekdays: domain.WeekdayNames(rule.AllowedStartWeekdays),
			HasPrepTeardown:      p.HasPrepTeardown(),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
