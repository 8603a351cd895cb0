package attain

// =============================================================================
// BUSINESS-DAY CALENDAR - Generic weekday rule
// =============================================================================

// IsWorkingDay reports whether the date counts as a working day under the
// generic rule: every day except Saturday and Sunday.
//
// This is deliberately NOT consulted for dates inside a month that has a
// MonthlyAdjustment - that adjustment's working-day set is authoritative for
// its month and may include weekends (inventory weekends) or exclude
// ordinary weekdays (holidays). See ResolveTarget.
func (d Date) IsWorkingDay() bool {
	return !d.IsWeekend()
}

// CountWorkingDays counts working days in [start, end] inclusive under the
// generic weekday rule. Monthly adjustments are not consulted here; this
// counter exists to size a month's weekday-based target envelope.
//
// A reversed range (start after end) yields 0.
func CountWorkingDays(start, end Date) int {
	count := 0
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if d.IsWorkingDay() {
			count++
		}
	}
	return count
}
