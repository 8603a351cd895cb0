package attain

import "github.com/shopspring/decimal"

// =============================================================================
// ATTAINMENT CALCULATOR - Revenue vs. resolved target for one record
// =============================================================================

var hundred = decimal.NewFromInt(100)

// AttainmentPct computes revenue/target as a percentage, rounded to two
// decimal places. A zero target yields 0, never a division error: a zero
// target is the resolver's signal for a non-working day, and such days
// contribute zero attainment rather than an undefined value.
func AttainmentPct(revenue, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return revenue.Div(target).Mul(hundred).Round(2)
}

// ComputeAttainment converts one revenue record plus its resolved target
// into per-location and combined metrics. The combined target is the sum of
// both location targets; the combined revenue the sum of both revenues.
func ComputeAttainment(rec RevenueRecord, target ResolvedTarget) DailyAttainment {
	combinedRevenue := rec.CombinedRevenue()
	combinedTarget := target.Combined()

	return DailyAttainment{
		Date: rec.Date,
		LocationA: LocationMetric{
			Revenue:       rec.LocationA,
			Target:        target.LocationA,
			AttainmentPct: AttainmentPct(rec.LocationA, target.LocationA),
		},
		LocationB: LocationMetric{
			Revenue:       rec.LocationB,
			Target:        target.LocationB,
			AttainmentPct: AttainmentPct(rec.LocationB, target.LocationB),
		},
		Combined: LocationMetric{
			Revenue:       combinedRevenue,
			Target:        combinedTarget,
			AttainmentPct: AttainmentPct(combinedRevenue, combinedTarget),
		},
	}
}
