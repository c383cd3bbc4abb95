package validate_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
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

type mockSettings struct {
	settings domain.VenueSettings
	err      error
}

func (m *mockSettings) GetSettings(context.Context) (*domain.VenueSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

type mockMetrics struct {
	calls    int
	bookable bool
	codes    []string
}

func (m *mockMetrics) IncValidation(_ string, bookable bool, codes []string) {
	m.calls++
	m.bookable = bookable
	m.codes = codes
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *mockBookingRepo, settings *mockSettings, m *mockMetrics) *UseCase {
	uc := NewUseCase(repo, settings, nil, time.UTC, nopLogger{})
	if m != nil {
		uc.metrics = m
	}
	uc.timeProvider = fixedTime{now: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_FiveDayExtendedOnEmptyCalendar(t *testing.T) {
	repo := &mockBookingRepo{}
	m := &mockMetrics{}
	uc := newTestUseCase(repo, &mockSettings{settings: domain.DefaultVenueSettings()}, m)

	resp, err := uc.Execute(context.Background(), &Request{
		PackageType:     domain.PackageFiveDayExtended,
		StartDate:       types.MustParseDate("2026-06-11"),
		ReceptionGuests: 120,
	})
	require.NoError(t, err)

	result := resp.Result
	assert.True(t, result.IsBookable())
	assert.Equal(t, types.MustParseDate("2026-06-16"), result.Window.EndDate)
	assert.Equal(t, []types.Date{types.MustParseDate("2026-06-11"), types.MustParseDate("2026-06-12")}, result.PrepTeardown.PrepDays)
	assert.Equal(t, []types.Date{types.MustParseDate("2026-06-14"), types.MustParseDate("2026-06-15")}, result.PrepTeardown.TeardownDays)
	assert.False(t, result.IsLastMinute)
	assert.Equal(t, types.MustParseDate("2026-01-15"), resp.Today)

	// соседи ищутся с учетом промежутка на сброс
	assert.Equal(t, types.MustParseDate("2026-06-10"), repo.from)
	assert.Equal(t, types.MustParseDate("2026-06-17"), repo.to)

	assert.Equal(t, 1, m.calls)
	assert.True(t, m.bookable)
	assert.Empty(t, m.codes)
}

func TestExecute_ConflictWithExistingBooking(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{{
		ID:          7,
		PackageType: domain.PackageThreeDayWeekend,
		StartDate:   types.MustParseDate("2026-06-12"),
		EndDate:     types.MustParseDate("2026-06-15"),
		Status:      domain.StatusConfirmed,
	}}}
	m := &mockMetrics{}
	uc := newTestUseCase(repo, &mockSettings{settings: domain.DefaultVenueSettings()}, m)

	resp, err := uc.Execute(context.Background(), &Request{
		PackageType: domain.PackageFiveDayExtended,
		StartDate:   types.MustParseDate("2026-06-11"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Result.Errors, 1)
	assert.Equal(t, domain.CodeDateConflict, resp.Result.Errors[0].Code)
	require.NotNil(t, resp.Result.Errors[0].ConflictingBookingID)
	assert.Equal(t, int64(7), *resp.Result.Errors[0].ConflictingBookingID)
	assert.False(t, m.bookable)
	assert.Equal(t, []string{"DateConflict"}, m.codes)
}

func TestExecute_CollectsBusinessErrors(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockSettings{settings: domain.DefaultVenueSettings()}, nil)

	// Суббота в апреле: неверный день заезда и вне сезона
	resp, err := uc.Execute(context.Background(), &Request{
		PackageType:     domain.PackageThreeDayWeekend,
		StartDate:       types.MustParseDate("2026-04-25"),
		ReceptionGuests: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.ValidationCode{
		domain.CodeInvalidStartDay,
		domain.CodeOutOfSeason,
		domain.CodeGuestCapExceeded,
	}, resp.Result.Codes())
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"unknown package", Request{PackageType: "weekly", StartDate: types.MustParseDate("2026-06-12")}},
		{"missing start", Request{PackageType: domain.PackageThreeDayWeekend}},
		{"negative guests", Request{PackageType: domain.PackageThreeDayWeekend, StartDate: types.MustParseDate("2026-06-12"), CampingGuests: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			uc := newTestUseCase(repo, &mockSettings{settings: domain.DefaultVenueSettings()}, nil)

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.True(t, repo.from.IsZero())
		})
	}
}

func TestExecute_DependencyErrors(t *testing.T) {
	req := &Request{PackageType: domain.PackageThreeDayWeekend, StartDate: types.MustParseDate("2026-06-12")}

	t.Run("settings", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockSettings{err: errors.New("boom")}, nil)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("bookings", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{err: errors.New("boom")}, &mockSettings{settings: domain.DefaultVenueSettings()}, nil)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
