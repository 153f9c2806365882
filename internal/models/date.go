package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DateFormat = "2006-01-02"

// Date is a calendar date with no time-of-day or zone component. The server
// transmits dates as bare YYYY-MM-DD strings; parsing them through a
// zone-aware constructor shifts the day for viewers west of UTC, so Date only
// ever compares and formats the calendar triple.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD string. Timestamps with a time component are
// rejected; the server never sends them for date fields.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// Today returns the current date in the viewer's local calendar.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Display formats the date for human-readable output, e.g. "Jun 1, 2024".
func (d Date) Display() string {
	return d.time().Format("Jan 2, 2006")
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	y, m, day := d.time().AddDate(0, 0, n).Date()
	return Date{Year: y, Month: m, Day: day}
}

func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// DaysUntil returns the number of calendar days from d to other. Negative
// when other is in the past relative to d.
func (d Date) DaysUntil(other Date) int {
	return int(other.time().Sub(d.time()).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	// Some endpoints serialize dates with an appended midnight timestamp.
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
