package attain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/lumen/attainment-engine/attain"
)

// =============================================================================
// PARSING TESTS
// =============================================================================

func TestParseDate_Valid(t *testing.T) {
	d, err := attain.ParseDate("2025-03-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 24 {
		t.Errorf("expected 2025-03-24, got %s", d)
	}
	if d.Weekday() != time.Monday {
		t.Errorf("expected Monday, got %s", d.Weekday())
	}
}

func TestParseDate_RoundTripsThroughString(t *testing.T) {
	d, err := attain.ParseDate("2024-02-29") // leap day
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("expected 2024-02-29, got %s", d)
	}
}

func TestParseDate_Malformed(t *testing.T) {
	cases := []string{
		"",
		"2025-3-24",    // missing zero padding
		"24-03-2025",   // wrong field order
		"2025/03/24",   // wrong separator
		"2025-13-01",   // month out of range
		"2025-02-30",   // day out of range for February
		"2025-04-31",   // day out of range for April
		"2025-0a-01",   // non-numeric
		"2025-03-24T0", // trailing garbage
	}

	for _, input := range cases {
		_, err := attain.ParseDate(input)
		if err == nil {
			t.Errorf("expected error for %q, got none", input)
			continue
		}
		if !errors.Is(err, attain.ErrMalformedDate) {
			t.Errorf("expected ErrMalformedDate for %q, got %v", input, err)
		}
		if !attain.IsClientError(err) {
			t.Errorf("expected %q to classify as client error", input)
		}
	}
}

// =============================================================================
// ARITHMETIC TESTS
// =============================================================================

func TestDate_MonthBoundaries(t *testing.T) {
	d := attain.NewDate(2025, time.March, 15)

	if got := attain.StartOfMonth(d); got.String() != "2025-03-01" {
		t.Errorf("expected 2025-03-01, got %s", got)
	}
	if got := attain.EndOfMonth(d); got.String() != "2025-03-31" {
		t.Errorf("expected 2025-03-31, got %s", got)
	}
	if got := attain.StartOfYear(d); got.String() != "2025-01-01" {
		t.Errorf("expected 2025-01-01, got %s", got)
	}
	if got := attain.EndOfMonth(attain.NewDate(2024, time.February, 1)); got.Day() != 29 {
		t.Errorf("expected leap February to end on 29, got %d", got.Day())
	}
}

func TestDate_AddDaysCrossesMonths(t *testing.T) {
	d := attain.NewDate(2025, time.March, 30).AddDays(3)
	if d.String() != "2025-04-02" {
		t.Errorf("expected 2025-04-02, got %s", d)
	}

	back := d.AddDays(-3)
	if back.String() != "2025-03-30" {
		t.Errorf("expected 2025-03-30, got %s", back)
	}
}

func TestDaysBetween(t *testing.T) {
	a := attain.NewDate(2025, time.March, 24)
	b := attain.NewDate(2025, time.March, 28)
	if got := attain.DaysBetween(a, b); got != 4 {
		t.Errorf("expected 4 days, got %d", got)
	}
	if got := attain.DaysBetween(a, a); got != 0 {
		t.Errorf("expected 0 days, got %d", got)
	}
}
