package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты YYYY-MM-DD
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("invalid date string format")

	// ErrUnsupportedScanType возвращается, когда драйвер БД отдал неподдерживаемый тип
	ErrUnsupportedScanType = errors.New("unsupported scan type for Date")
)

// Date календарная дата без времени и часового пояса.
// Арифметика выполняется по календарным дням, поэтому переходы на летнее время
// и время суток не смещают границы.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate создает дату, нормализуя переполнение (например, 32 января -> 1 февраля)
func NewDate(year int, month time.Month, day int) Date {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf возвращает календарную дату момента t в его собственном часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return fromTime(t), nil
}

// MustParseDate как ParseDate, но паникует при ошибке. Для тестов и констант.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fromTime(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Year возвращает год
func (d Date) Year() int { return d.year }

// Month возвращает месяц
func (d Date) Month() time.Month { return d.month }

// Day возвращает день месяца
func (d Date) Day() int { return d.day }

// IsZero возвращает true для нулевого значения Date{}
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Time возвращает полночь даты в UTC
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays сдвигает дату на n календарных дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return fromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil возвращает количество целых дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Weekday возвращает день недели (0=Sunday..6=Saturday)
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before возвращает true, если d раньше other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After возвращает true, если d позже other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Compare возвращает -1, 0 или +1
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalJSON сериализует дату как "YYYY-MM-DD", нулевая дата -> null
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON парсит "YYYY-MM-DD", null оставляет нулевую дату
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer для колонок типа DATE
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner. lib/pq отдает DATE как time.Time
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}
