package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/ptr"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
	from, to types.Date
}

func (m *mockBookingRepo) ListActiveInRange(_ context.Context, from, to types.Date) ([]*domain.Booking, error) {
	m.from, m.to = from, to
	return m.bookings, m.err
}

type mockSettings struct{}

func (mockSettings) GetSettings(context.Context) (*domain.VenueSettings, error) {
	s := domain.DefaultVenueSettings()
	return &s, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *mockBookingRepo) *UseCase {
	uc := NewUseCase(repo, mockSettings{}, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}
	return uc
}

func juneWeekendBooking() *domain.Booking {
	return &domain.Booking{
		ID:          5,
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   types.MustParseDate("2026-06-12"),
		EndDate:     types.MustParseDate("2026-06-15"),
		Status:      domain.StatusConfirmed,
	}
}

func dayStatus(t *testing.T, days []domain.CalendarDay, date string) domain.DayStatus {
	t.Helper()
	d := types.MustParseDate(date)
	for _, day := range days {
		if day.Date == d {
			return day.Status
		}
	}
	t.Fatalf("day %s not in calendar", date)
	return ""
}

func TestExecute_JuneCalendar(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{juneWeekendBooking()}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		From:        types.MustParseDate("2026-06-01"),
		To:          types.MustParseDate("2026-06-30"),
		PackageType: ptr.Ptr(domain.PackageThreeDayWeekend),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 30)
	assert.Equal(t, domain.DayFree, dayStatus(t, resp.Days, "2026-06-01"))
	assert.Equal(t, domain.DayResetBuffer, dayStatus(t, resp.Days, "2026-06-11"))
	assert.Equal(t, domain.DayOccupied, dayStatus(t, resp.Days, "2026-06-12"))
	assert.Equal(t, domain.DayOccupied, dayStatus(t, resp.Days, "2026-06-14"))
	assert.Equal(t, domain.DayResetBuffer, dayStatus(t, resp.Days, "2026-06-15"))
	assert.Equal(t, domain.DayFree, dayStatus(t, resp.Days, "2026-06-16"))

	require.Len(t, resp.StartDates, 1)
	assert.Equal(t, 3, resp.StartDates[0].DurationNights)
	assert.Equal(t, []types.Date{
		types.MustParseDate("2026-06-05"),
		types.MustParseDate("2026-06-19"),
		types.MustParseDate("2026-06-26"),
	}, resp.StartDates[0].Dates)

	// выборка захватывает бронирования, начинающиеся после периода
	assert.Equal(t, types.MustParseDate("2026-05-31"), repo.from)
	assert.Equal(t, types.MustParseDate("2026-07-05"), repo.to)
}

func TestExecute_AllPackagesByDefault(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		From: types.MustParseDate("2026-06-08"),
		To:   types.MustParseDate("2026-06-14"),
	})
	require.NoError(t, err)

	require.Len(t, resp.StartDates, len(domain.AllPackageTypes()))
	byType := make(map[domain.PackageType][]types.Date)
	for _, s := range resp.StartDates {
		byType[s.PackageType] = s.Dates
	}

	assert.Equal(t, []types.Date{types.MustParseDate("2026-06-12")}, byType[domain.PackageThreeDayWeekend])
	assert.Equal(t, []types.Date{types.MustParseDate("2026-06-10"), types.MustParseDate("2026-06-11")}, byType[domain.PackageFiveDayExtended])
	assert.Equal(t, []types.Date{types.MustParseDate("2026-06-10")}, byType[domain.PackageTenDayExperience])
}

func TestExecute_OutOfSeason(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		From: types.MustParseDate("2026-12-01"),
		To:   types.MustParseDate("2026-12-31"),
	})
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.Equal(t, domain.DayOutOfSeason, day.Status)
	}
	for _, s := range resp.StartDates {
		assert.Empty(t, s.Dates)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"missing bounds", Request{}, ErrInvalidInput},
		{"reversed", Request{From: types.MustParseDate("2026-06-10"), To: types.MustParseDate("2026-06-01")}, ErrInvalidInput},
		{"too large", Request{From: types.MustParseDate("2026-01-01"), To: types.MustParseDate("2027-01-02")}, ErrRangeTooLarge},
		{"unknown package", Request{
			From:        types.MustParseDate("2026-06-01"),
			To:          types.MustParseDate("2026-06-30"),
			PackageType: ptr.Ptr(domain.PackageType("weekly")),
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockBookingRepo{})
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_MaxRangeAllowed(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		From: types.MustParseDate("2026-01-01"),
		To:   types.MustParseDate("2027-01-01"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 366)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{err: errors.New("boom")})

	_, err := uc.Execute(context.Background(), &Request{
		From: types.MustParseDate("2026-06-01"),
		To:   types.MustParseDate("2026-06-30"),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
