package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	getAvailability "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/get_availability"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

type mockUseCase struct {
	req  *getAvailability.Request
	resp *getAvailability.Response
	err  error
}

func (m *mockUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	m.req = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Calendar(t *testing.T) {
	bookingID := int64(3)
	uc := &mockUseCase{resp: &getAvailability.Response{
		From:  types.MustParseDate("2026-06-11"),
		To:    types.MustParseDate("2026-06-12"),
		Today: types.MustParseDate("2026-01-15"),
		Days: []domain.CalendarDay{
			{Date: types.MustParseDate("2026-06-11"), Status: domain.DayResetBuffer, BookingID: &bookingID},
			{Date: types.MustParseDate("2026-06-12"), Status: domain.DayOccupied, BookingID: &bookingID},
		},
		StartDates: []getAvailability.PackageStartDates{
			{PackageType: domain.PackageThreeDayWeekend, DurationNights: 3},
		},
	}}
	rec := doRequest(NewHandler(uc, nopLogger{}), "from=2026-06-11&to=2026-06-12&packageType=3_day_weekend")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	require.NotNil(t, uc.req.PackageType)
	assert.Equal(t, domain.PackageThreeDayWeekend, *uc.req.PackageType)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 2)
	assert.Equal(t, domain.DayOccupied, resp.Days[1].Status)
	require.Len(t, resp.StartDates, 1)
	assert.NotNil(t, resp.StartDates[0].Dates)
	assert.Contains(t, rec.Body.String(), `"dates":[]`)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
	}{
		{name: "missing from", query: "to=2026-06-30"},
		{name: "bad to", query: "from=2026-06-01&to=30.06.2026"},
		{name: "reversed range", query: "from=2026-06-30&to=2026-06-01", err: getAvailability.ErrInvalidInput},
		{name: "range too large", query: "from=2026-01-01&to=2027-12-31", err: getAvailability.ErrRangeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(NewHandler(&mockUseCase{err: tt.err}, nopLogger{}), tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(NewHandler(&mockUseCase{err: getAvailability.ErrInternal}, nopLogger{}), "from=2026-06-01&to=2026-06-30")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
