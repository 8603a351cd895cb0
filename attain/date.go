package attain

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Day-granular calendar date (this IS a daily reporting system)
// =============================================================================

// Date is a calendar date normalized to UTC midnight. All comparisons and
// arithmetic happen on whole days; there is no time-of-day component.
//
// Dates are parsed by decomposing the "YYYY-MM-DD" string into components
// and reconstructing, never through a locale-sensitive parser. This keeps
// "2025-03-24" meaning March 24 regardless of the host timezone.
type Date struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict "YYYY-MM-DD" string. It rejects anything that
// is not exactly ten characters of digits and dashes, and rejects
// out-of-range components such as "2025-02-30".
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, &DateParseError{Input: s, Reason: "expected YYYY-MM-DD"}
	}

	year, ok1 := parseDigits(s[0:4])
	month, ok2 := parseDigits(s[5:7])
	day, ok3 := parseDigits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, &DateParseError{Input: s, Reason: "non-numeric component"}
	}

	if month < 1 || month > 12 {
		return Date{}, &DateParseError{Input: s, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return Date{}, &DateParseError{Input: s, Reason: fmt.Sprintf("day %d out of range", day)}
	}

	return NewDate(year, time.Month(month), day), nil
}

// MustParseDate is ParseDate for compile-time-known literals (tests, seeds).
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current calendar date. The engine itself never calls
// this; callers resolve "now" once at the boundary and pass it in.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// =============================================================================
// DATE UTILITIES
// =============================================================================

func DaysBetween(from, to Date) int { return int(to.t.Sub(from.t).Hours() / 24) }

func StartOfMonth(d Date) Date { return NewDate(d.Year(), d.Month(), 1) }

func EndOfMonth(d Date) Date {
	t := time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return Date{t: t}
}

func StartOfYear(d Date) Date { return NewDate(d.Year(), time.January, 1) }

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}
