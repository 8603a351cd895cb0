/*
aggregate.go - Weekly/monthly bucketing and pace-adjusted metrics

PURPOSE:
  Two aggregation modes over a date-sorted, already-filtered series:

  BucketIntoPeriods:
    Partitions the span into consecutive 7-day windows anchored at the
    first record's date (NOT aligned to calendar weeks; the dashboard's
    week starts wherever the data starts). Each window sums revenue and
    per-date resolved targets, then derives attainment from the SUMS -
    never by averaging daily percentages, which would weight a slow
    Monday the same as a strong Friday. A whole-span bucket labeled by
    the span's calendar month is produced alongside.

  ComputeLocationMetrics:
    The "month-to-date vs. on-pace" summary. Actual revenue is compared
    against the fraction of the full monthly target envelope proportional
    to elapsed working days:

      envelope = defaultDailyTarget x workingDaysInMonth
      on-pace  = envelope x elapsed / total

    On the last working day of the month, on-pace equals the full
    envelope. A month with zero working days yields a zero on-pace target
    and zero attainment, never NaN.

EDGE CASES:
  - Windows with no records are omitted, not emitted as 0/0 buckets
  - The final window is truncated to the last record's date
  - Today is never an elapsed working day (revenue for it is incomplete)

SEE ALSO:
  - target.go: Per-date resolution used for window target sums
  - calendar.go: Working-day counts for the envelope
*/
package attain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// WEEKLY / MONTHLY BUCKETING
// =============================================================================

type bucketAccumulator struct {
	start, end Date
	revenueA   decimal.Decimal
	revenueB   decimal.Decimal
	targetA    decimal.Decimal
	targetB    decimal.Decimal
	count      int
}

func (b *bucketAccumulator) add(rec RevenueRecord, target ResolvedTarget) {
	b.revenueA = b.revenueA.Add(rec.LocationA)
	b.revenueB = b.revenueB.Add(rec.LocationB)
	b.targetA = b.targetA.Add(target.LocationA)
	b.targetB = b.targetB.Add(target.LocationB)
	b.count++
}

func (b *bucketAccumulator) metrics(label string) PeriodMetrics {
	combinedRevenue := b.revenueA.Add(b.revenueB)
	combinedTarget := b.targetA.Add(b.targetB)
	return PeriodMetrics{
		Label: label,
		LocationA: LocationMetric{
			Revenue:       b.revenueA,
			Target:        b.targetA,
			AttainmentPct: AttainmentPct(b.revenueA, b.targetA),
		},
		LocationB: LocationMetric{
			Revenue:       b.revenueB,
			Target:        b.targetB,
			AttainmentPct: AttainmentPct(b.revenueB, b.targetB),
		},
		Combined: LocationMetric{
			Revenue:       combinedRevenue,
			Target:        combinedTarget,
			AttainmentPct: AttainmentPct(combinedRevenue, combinedTarget),
		},
	}
}

// BucketIntoPeriods partitions a date-sorted series into 7-day windows
// anchored at the first record's date and aggregates each non-empty window.
// The second return value is the whole-span bucket, labeled by the span's
// calendar month; it is nil when the input is empty.
func BucketIntoPeriods(records []RevenueRecord, config TargetConfig) ([]PeriodMetrics, *PeriodMetrics) {
	if len(records) == 0 {
		return nil, nil
	}

	first := records[0].Date
	last := records[len(records)-1].Date

	windows := make(map[int]*bucketAccumulator)
	span := &bucketAccumulator{start: first, end: last}

	for _, rec := range records {
		target := ResolveTarget(rec.Date, config)

		idx := DaysBetween(first, rec.Date) / 7
		w, ok := windows[idx]
		if !ok {
			start := first.AddDays(idx * 7)
			end := start.AddDays(6)
			if end.After(last) {
				end = last
			}
			w = &bucketAccumulator{start: start, end: end}
			windows[idx] = w
		}

		w.add(rec, target)
		span.add(rec, target)
	}

	maxIdx := DaysBetween(first, last) / 7
	weekly := make([]PeriodMetrics, 0, len(windows))
	for idx := 0; idx <= maxIdx; idx++ {
		w, ok := windows[idx]
		if !ok {
			continue
		}
		weekly = append(weekly, w.metrics(weekLabel(w.start, w.end)))
	}

	spanMetrics := span.metrics(monthLabel(first))
	return weekly, &spanMetrics
}

func weekLabel(start, end Date) string {
	return fmt.Sprintf("%s %d - %s %d",
		start.Month().String()[:3], start.Day(),
		end.Month().String()[:3], end.Day())
}

func monthLabel(d Date) string {
	return fmt.Sprintf("%s %d", d.Month(), d.Year())
}

// =============================================================================
// PACE-ADJUSTED MONTH-TO-DATE METRICS
// =============================================================================

// ComputeLocationMetrics sums actual revenue and compares it to the on-pace
// target for AsOf's calendar month. The on-pace target scales the full
// monthly envelope (default daily target x working days in month) by the
// fraction of working days elapsed through yesterday.
//
// With a single-location filter the other location's target is reported as
// zero while its revenue sum is left untouched.
func ComputeLocationMetrics(records []RevenueRecord, config TargetConfig, filter LocationFilter, asOf Date) LocationSummary {
	revenueA := decimal.Zero
	revenueB := decimal.Zero
	for _, rec := range records {
		revenueA = revenueA.Add(rec.LocationA)
		revenueB = revenueB.Add(rec.LocationB)
	}

	monthStart := StartOfMonth(asOf)
	monthEnd := EndOfMonth(asOf)
	totalWorkingDays := CountWorkingDays(monthStart, monthEnd)

	yesterday := asOf.AddDays(-1)
	if yesterday.After(monthEnd) {
		yesterday = monthEnd
	}
	elapsedWorkingDays := CountWorkingDays(monthStart, yesterday)

	paceA := onPaceTarget(config.DefaultDailyTarget.LocationA, totalWorkingDays, elapsedWorkingDays)
	paceB := onPaceTarget(config.DefaultDailyTarget.LocationB, totalWorkingDays, elapsedWorkingDays)

	switch filter {
	case LocationAOnly:
		paceB = decimal.Zero
	case LocationBOnly:
		paceA = decimal.Zero
	}

	totalRevenue := revenueA.Add(revenueB)
	totalPace := paceA.Add(paceB)

	return LocationSummary{
		LocationA: LocationMetric{
			Revenue:       revenueA,
			Target:        paceA,
			AttainmentPct: AttainmentPct(revenueA, paceA),
		},
		LocationB: LocationMetric{
			Revenue:       revenueB,
			Target:        paceB,
			AttainmentPct: AttainmentPct(revenueB, paceB),
		},
		Total: LocationMetric{
			Revenue:       totalRevenue,
			Target:        totalPace,
			AttainmentPct: AttainmentPct(totalRevenue, totalPace),
		},
	}
}

// onPaceTarget computes envelope x elapsed/total, defined as 0 for a month
// with no working days.
func onPaceTarget(dailyTarget decimal.Decimal, totalWorkingDays, elapsedWorkingDays int) decimal.Decimal {
	if totalWorkingDays <= 0 || elapsedWorkingDays <= 0 {
		return decimal.Zero
	}
	envelope := dailyTarget.Mul(decimal.NewFromInt(int64(totalWorkingDays)))
	ratio := decimal.NewFromInt(int64(elapsedWorkingDays)).Div(decimal.NewFromInt(int64(totalWorkingDays)))
	return envelope.Mul(ratio).Round(2)
}
