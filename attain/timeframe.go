/*
timeframe.go - Time-frame selection over a revenue series

PURPOSE:
  Narrows a raw record series to the dates a dashboard view cares about.
  Every frame is anchored on an explicit AsOf date injected by the caller;
  the engine never reads the clock, so two calls with the same inputs are
  bit-identical.

THE "TODAY" RULE:
  The AsOf date itself is always excluded - a day in progress has partial
  revenue and would drag every aggregate down. Each frame's upper bound is
  yesterday (AsOf - 1), including AllTime. Only a Custom frame whose
  caller-supplied end IS today can include it.

FRAMES:
  MonthToDate   same (year, month) as AsOf, through yesterday
  ThisWeek      the 5 most recent working days ending at yesterday
  Last30Days    [yesterday-29, yesterday]
  Last90Days    [yesterday-89, yesterday]
  YearToDate    [Jan 1 of AsOf's year, yesterday]
  AllTime       everything through yesterday
  Custom        [start, end] inclusive, both caller-supplied

  ThisWeek is derived from AsOf rather than pinned to calendar-week
  literals, so it can never go stale; timeframe_test.go pins this.

LOCATION FILTER:
  Restricting to one location zeroes the other location's revenue on the
  returned copies instead of dropping fields - downstream per-date target
  resolution still sees one record per date.

SEE ALSO:
  - aggregate.go: Consumes the sorted, filtered output
*/
package attain

import "github.com/shopspring/decimal"

// =============================================================================
// TIME FRAME - Closed enumeration of dashboard views
// =============================================================================

type TimeFrame string

const (
	FrameMonthToDate TimeFrame = "month_to_date"
	FrameThisWeek    TimeFrame = "this_week"
	FrameLast30Days  TimeFrame = "last_30_days"
	FrameLast90Days  TimeFrame = "last_90_days"
	FrameYearToDate  TimeFrame = "year_to_date"
	FrameAllTime     TimeFrame = "all_time"
	FrameCustom      TimeFrame = "custom"
)

// ParseTimeFrame maps a selector string onto the enumeration.
func ParseTimeFrame(s string) (TimeFrame, error) {
	switch TimeFrame(s) {
	case FrameMonthToDate, FrameThisWeek, FrameLast30Days, FrameLast90Days,
		FrameYearToDate, FrameAllTime, FrameCustom:
		return TimeFrame(s), nil
	}
	return "", ErrUnknownTimeFrame
}

// Query bundles a frame selection with its anchor date and optional
// custom bounds / location restriction.
type Query struct {
	Frame TimeFrame

	// AsOf anchors every relative frame. Production callers pass the real
	// current date; tests pass fixed dates.
	AsOf Date

	// Custom bounds; required when Frame == FrameCustom, ignored otherwise.
	CustomStart *Date
	CustomEnd   *Date

	Location LocationFilter
}

// =============================================================================
// FILTER
// =============================================================================

// FilterByTimeFrame returns the records in scope for the query, sorted
// ascending by date. Input order does not matter and the input slice is
// never mutated. An empty result is an empty slice, not an error; the only
// error condition is a malformed custom range.
func FilterByTimeFrame(records []RevenueRecord, q Query) ([]RevenueRecord, error) {
	keep, err := datePredicate(q)
	if err != nil {
		return nil, err
	}

	filtered := make([]RevenueRecord, 0, len(records))
	for _, rec := range records {
		if !keep(rec.Date) {
			continue
		}
		filtered = append(filtered, applyLocationFilter(rec, q.Location))
	}

	SortRecords(filtered)
	return filtered, nil
}

func datePredicate(q Query) (func(Date) bool, error) {
	yesterday := q.AsOf.AddDays(-1)

	switch q.Frame {
	case FrameMonthToDate:
		return func(d Date) bool {
			return d.SameMonth(q.AsOf) && d.BeforeOrEqual(yesterday)
		}, nil

	case FrameThisWeek:
		window := recentWorkingDays(yesterday, 5)
		return func(d Date) bool {
			_, ok := window[d]
			return ok
		}, nil

	case FrameLast30Days:
		return rangePredicate(yesterday.AddDays(-29), yesterday), nil

	case FrameLast90Days:
		return rangePredicate(yesterday.AddDays(-89), yesterday), nil

	case FrameYearToDate:
		return rangePredicate(StartOfYear(q.AsOf), yesterday), nil

	case FrameAllTime:
		return func(d Date) bool { return d.BeforeOrEqual(yesterday) }, nil

	case FrameCustom:
		if q.CustomStart == nil || q.CustomEnd == nil {
			return nil, ErrInvalidRange
		}
		if q.CustomStart.After(*q.CustomEnd) {
			return nil, ErrInvalidRange
		}
		return rangePredicate(*q.CustomStart, *q.CustomEnd), nil

	default:
		return nil, ErrUnknownTimeFrame
	}
}

func rangePredicate(start, end Date) func(Date) bool {
	return func(d Date) bool {
		return d.AfterOrEqual(start) && d.BeforeOrEqual(end)
	}
}

// recentWorkingDays collects the n most recent generic working days ending
// at (or before) the given date, walking backwards over weekends.
func recentWorkingDays(end Date, n int) map[Date]struct{} {
	window := make(map[Date]struct{}, n)
	for d := end; len(window) < n; d = d.AddDays(-1) {
		if d.IsWorkingDay() {
			window[d] = struct{}{}
		}
	}
	return window
}

func applyLocationFilter(rec RevenueRecord, f LocationFilter) RevenueRecord {
	switch f {
	case LocationAOnly:
		rec.LocationB = decimal.Zero
	case LocationBOnly:
		rec.LocationA = decimal.Zero
	}
	return rec
}
