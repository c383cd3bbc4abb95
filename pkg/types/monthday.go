package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonthDay возвращается при некорректной строке MM-DD
var ErrInvalidMonthDay = errors.New("invalid month-day string format")

// MonthDay день в году без привязки к году (границы сезона)
type MonthDay struct {
	Month time.Month
	Day   int
}

// NewMonthDay создает MonthDay с проверкой диапазона. 29 февраля допустимо.
func NewMonthDay(month time.Month, day int) (MonthDay, error) {
	if month < time.January || month > time.December {
		return MonthDay{}, fmt.Errorf("%w: month %d", ErrInvalidMonthDay, month)
	}
	// 2000 високосный, поэтому 29 февраля проходит проверку
	maxDay := time.Date(2000, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day < 1 || day > maxDay {
		return MonthDay{}, fmt.Errorf("%w: day %d of %s", ErrInvalidMonthDay, day, month)
	}
	return MonthDay{Month: month, Day: day}, nil
}

// ParseMonthDay парсит строку формата MM-DD
func ParseMonthDay(s string) (MonthDay, error) {
	var m, d int
	if n, err := fmt.Sscanf(s, "%2d-%2d", &m, &d); err != nil || n != 2 || len(s) != 5 {
		return MonthDay{}, fmt.Errorf("%w: %q", ErrInvalidMonthDay, s)
	}
	return NewMonthDay(time.Month(m), d)
}

// MonthDayOf возвращает MonthDay календарной даты
func MonthDayOf(d Date) MonthDay {
	return MonthDay{Month: d.Month(), Day: d.Day()}
}

// Compare возвращает -1, 0 или +1
func (md MonthDay) Compare(other MonthDay) int {
	if md.Month != other.Month {
		return cmpInt(int(md.Month), int(other.Month))
	}
	return cmpInt(md.Day, other.Day)
}

// IsZero возвращает true для нулевого значения
func (md MonthDay) IsZero() bool {
	return md.Month == 0 && md.Day == 0
}

// String возвращает MM-DD
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// MarshalJSON сериализует как "MM-DD"
func (md MonthDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(md.String())
}

// UnmarshalJSON парсит "MM-DD"
func (md *MonthDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMonthDay, err)
	}
	parsed, err := ParseMonthDay(s)
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

// UnmarshalText позволяет задавать MonthDay строкой в TOML
func (md *MonthDay) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthDay(string(text))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

// Value хранит MonthDay в БД как текст MM-DD
func (md MonthDay) Value() (driver.Value, error) {
	return md.String(), nil
}

// Scan читает MonthDay из текстовой колонки
func (md *MonthDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return md.UnmarshalText([]byte(v))
	case []byte:
		return md.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}
