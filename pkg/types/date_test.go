package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

func TestParseDate(t *testing.T) {
	d, err := types.ParseDate("2026-06-12")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 12, d.Day())
	assert.Equal(t, time.Friday, d.Weekday())
	assert.Equal(t, "2026-06-12", d.String())

	_, err = types.ParseDate("2026-13-01")
	assert.ErrorIs(t, err, types.ErrInvalidDate)

	_, err = types.ParseDate("12.06.2026")
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		days  int
		want  string
	}{
		{name: "same month", start: "2026-06-11", days: 5, want: "2026-06-16"},
		{name: "month rollover", start: "2026-06-28", days: 3, want: "2026-07-01"},
		{name: "year rollover", start: "2026-12-30", days: 10, want: "2027-01-09"},
		{name: "leap day", start: "2028-02-28", days: 1, want: "2028-02-29"},
		{name: "negative", start: "2026-03-01", days: -1, want: "2026-02-28"},
		// переход на летнее время в США 8 марта 2026
		{name: "across DST change", start: "2026-03-06", days: 3, want: "2026-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types.MustParseDate(tt.start).AddDays(tt.days)
			assert.Equal(t, types.MustParseDate(tt.want), got)
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	from := types.MustParseDate("2026-06-15")

	assert.Equal(t, 1, from.DaysUntil(types.MustParseDate("2026-06-16")))
	assert.Equal(t, 0, from.DaysUntil(from))
	assert.Equal(t, -5, from.DaysUntil(types.MustParseDate("2026-06-10")))
	assert.Equal(t, 365, types.MustParseDate("2026-01-01").DaysUntil(types.MustParseDate("2027-01-01")))
}

func TestDate_DateOfIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*60*60)
	late := time.Date(2026, 6, 12, 23, 30, 0, 0, loc)

	assert.Equal(t, types.NewDate(2026, time.June, 12), types.DateOf(late))
}

func TestDate_Compare(t *testing.T) {
	a := types.MustParseDate("2026-06-15")
	b := types.MustParseDate("2026-06-16")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.Equal(t, 0, a.Compare(types.NewDate(2026, time.June, 15)))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Start types.Date `json:"start"`
		End   types.Date `json:"end"`
	}

	data, err := json.Marshal(payload{Start: types.MustParseDate("2026-06-11")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2026-06-11","end":null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2026-06-11","end":"2026-06-16"}`), &decoded))
	assert.Equal(t, types.MustParseDate("2026-06-16"), decoded.End)

	assert.Error(t, json.Unmarshal([]byte(`{"start":"11/06/2026"}`), &decoded))
}

func TestDate_Scan(t *testing.T) {
	var d types.Date

	require.NoError(t, d.Scan(time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-06-11", d.String())

	require.NoError(t, d.Scan([]byte("2026-07-01")))
	assert.Equal(t, "2026-07-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.ErrorIs(t, d.Scan(42), types.ErrUnsupportedScanType)
}

func TestMonthDay(t *testing.T) {
	md, err := types.ParseMonthDay("05-01")
	require.NoError(t, err)
	assert.Equal(t, types.MonthDay{Month: time.May, Day: 1}, md)
	assert.Equal(t, "05-01", md.String())

	_, err = types.ParseMonthDay("02-29")
	assert.NoError(t, err)

	for _, bad := range []string{"13-01", "04-31", "5-1", "00-10", "aa-bb"} {
		_, err := types.ParseMonthDay(bad)
		assert.ErrorIs(t, err, types.ErrInvalidMonthDay, bad)
	}

	assert.Equal(t, -1, types.MonthDay{Month: time.May, Day: 1}.Compare(types.MonthDay{Month: time.October, Day: 31}))
	assert.Equal(t, types.MonthDay{Month: time.June, Day: 11}, types.MonthDayOf(types.MustParseDate("2026-06-11")))
}
