/*
Package attain computes revenue-attainment metrics for a two-location
business against a hierarchical daily-target configuration.

PURPOSE:
  This package is the calculation core of the reporting dashboard. It takes
  raw daily revenue records plus a target configuration (a default daily
  target, overridden per calendar month and restricted to an explicit
  working-day set) and produces per-day, per-week, per-month and "on-pace"
  attainment percentages across several time-frame selections.

KEY CONCEPTS IN THIS FILE (types.go):
  - RevenueRecord: One day's revenue per location
  - DailyTargetPair: The default per-working-day goal per location
  - MonthlyAdjustment: Per-(year, month) override of working days / targets
  - TargetConfig: Default target + the set of monthly adjustments
  - LocationMetric / PeriodMetrics: Computed attainment outputs

DESIGN PRINCIPLES:
  1. Purity: every function is a synchronous transformation of its inputs;
     no I/O, no clock reads, no mutation of caller-owned slices
  2. Precision: decimal.Decimal for all money values and percentages
  3. Explicit time: "now" is always an injected Date parameter, so results
     are reproducible and testable with fixed dates
  4. Totality: malformed data is rejected at the boundary (see errors.go);
     past that point every function returns a defined zero-valued result
     instead of panicking or dividing by zero

SEE ALSO:
  - target.go: Override-precedence resolution per date
  - timeframe.go: Time-frame filtering with "today" always excluded
  - aggregate.go: Weekly/monthly bucketing and pace-adjusted metrics
*/
package attain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// REVENUE RECORD - One row per calendar date
// =============================================================================

// RevenueRecord holds one calendar day's revenue for both locations.
// Dates are unique within a series; the persistence layer resolves
// duplicate writes last-write-wins before records reach this package.
type RevenueRecord struct {
	Date      Date
	LocationA decimal.Decimal
	LocationB decimal.Decimal
}

// CombinedRevenue returns the sum of both locations' revenue.
func (r RevenueRecord) CombinedRevenue() decimal.Decimal {
	return r.LocationA.Add(r.LocationB)
}

// SortRecords orders records ascending by date, in place.
func SortRecords(records []RevenueRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}

// =============================================================================
// TARGET CONFIGURATION
// =============================================================================

// DailyTargetPair is the per-working-day revenue goal for each location.
// Both values are >= 0.
type DailyTargetPair struct {
	LocationA decimal.Decimal
	LocationB decimal.Decimal
}

// DaySet is a set of calendar days-of-month (1..31). For a month carrying an
// adjustment it enumerates exactly which days count as working days.
type DaySet map[int]struct{}

func NewDaySet(days ...int) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

func (s DaySet) Contains(day int) bool {
	_, ok := s[day]
	return ok
}

// Days returns the members in ascending order.
func (s DaySet) Days() []int {
	days := make([]int, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// MonthlyAdjustment overrides target behavior for one (year, month):
// WorkingDays replaces the generic weekday rule for that month, and the
// optional per-location overrides replace (not add to) the default daily
// target. At most one adjustment exists per (year, month); the config
// factory enforces this before a TargetConfig is constructed.
type MonthlyAdjustment struct {
	Year        int
	Month       time.Month
	WorkingDays DaySet

	// nil means "keep the default daily target for this location"
	LocationAOverride *decimal.Decimal
	LocationBOverride *decimal.Decimal
}

// TargetConfig is the complete target ruleset: a default daily target pair
// plus zero or more monthly adjustments, conceptually keyed by (year, month).
type TargetConfig struct {
	DefaultDailyTarget DailyTargetPair
	MonthlyAdjustments []MonthlyAdjustment
}

// AdjustmentFor returns the adjustment covering (year, month), or nil.
func (c TargetConfig) AdjustmentFor(year int, month time.Month) *MonthlyAdjustment {
	for i := range c.MonthlyAdjustments {
		adj := &c.MonthlyAdjustments[i]
		if adj.Year == year && adj.Month == month {
			return adj
		}
	}
	return nil
}

// =============================================================================
// RESOLVED TARGET - Output of the target resolver for one date
// =============================================================================

// ResolvedTarget is the effective daily target for one specific date.
// A zero value for both locations means "non-working day": the date carries
// no target and contributes nothing to target-bearing aggregates.
type ResolvedTarget struct {
	LocationA decimal.Decimal
	LocationB decimal.Decimal
}

// IsWorkingDay reports whether the resolved target marks the date as
// target-bearing.
func (t ResolvedTarget) IsWorkingDay() bool {
	return t.LocationA.IsPositive() || t.LocationB.IsPositive()
}

// Combined returns the sum of both location targets.
func (t ResolvedTarget) Combined() decimal.Decimal {
	return t.LocationA.Add(t.LocationB)
}

// =============================================================================
// METRICS - Computed attainment outputs
// =============================================================================

// LocationMetric pairs revenue with its target and the resulting attainment
// percentage. AttainmentPct is 0 when Target is 0 and is unbounded above
// (no clamp at 100).
type LocationMetric struct {
	Revenue       decimal.Decimal
	Target        decimal.Decimal
	AttainmentPct decimal.Decimal
}

// PeriodMetrics is the aggregate for one week or month bucket.
type PeriodMetrics struct {
	Label     string
	LocationA LocationMetric
	LocationB LocationMetric
	Combined  LocationMetric
}

// DailyAttainment is the attainment breakdown for a single record.
type DailyAttainment struct {
	Date      Date
	LocationA LocationMetric
	LocationB LocationMetric
	Combined  LocationMetric
}

// LocationSummary is the pace-adjusted month-to-date summary.
type LocationSummary struct {
	LocationA LocationMetric
	LocationB LocationMetric
	Total     LocationMetric
}

// =============================================================================
// LOCATION FILTER
// =============================================================================

// LocationFilter restricts metrics to a single location. An indexed
// enumeration rather than string keys guarantees exhaustive handling.
type LocationFilter int

const (
	LocationBoth LocationFilter = iota
	LocationAOnly
	LocationBOnly
)

func (f LocationFilter) String() string {
	switch f {
	case LocationAOnly:
		return "location_a"
	case LocationBOnly:
		return "location_b"
	default:
		return "both"
	}
}
