package handlers

import (
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

// ValidationResponse ответ с результатом проверки правил площадки.
// Используется для 200 (проверка), 409 и 422 (создание, перенос)
type ValidationResponse struct {
	Error    string                  `json:"error,omitempty"`
	Bookable bool                    `json:"bookable"`
	Result   domain.ValidationResult `json:"result"`
}

// NewValidationResponse формирует ответ с результатом проверки
func NewValidationResponse(result domain.ValidationResult, message string) *ValidationResponse {
	if result.Errors == nil {
		result.Errors = []domain.ValidationError{}
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	return &ValidationResponse{
		Error:    message,
		Bookable: result.IsBookable(),
		Result:   result,
	}
}
