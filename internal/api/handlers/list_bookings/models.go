package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/service/bookings/models"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(userID int64, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		UserID:          userID,
		IncludeInactive: false, // По умолчанию только активные
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := types.ParseDate(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := types.ParseDate(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		req.To = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
