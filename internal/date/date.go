package date

import (
	"fmt"
	"time"
)

// Format is the ISO-8601 layout used everywhere dates appear as text.
// Zero-padded, so lexicographic order matches chronological order.
const Format = "2006-01-02"

// Date is a calendar date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date. Out-of-range components roll over the
// way time.Date rolls them over (e.g. Feb 31 becomes early March).
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Parse reads an ISO "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return New(t.Date()), nil
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return New(t.Date())
}

func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string { return d.time().Format(Format) }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date { return New(d.y, d.m, d.d+n) }

// AddMonths returns d shifted by n calendar months, normalizing
// day-of-month overflow (Jan 31 + 1 month = Mar 2 or Mar 3).
func (d Date) AddMonths(n int) Date { return New(d.y, d.m+time.Month(n), d.d) }

// AddYears returns d shifted by n calendar years (Feb 29 + 1 year = Mar 1).
func (d Date) AddYears(n int) Date { return New(d.y+n, d.m, d.d) }

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO string; null and "" leave the date zero.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal: %s", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
