/*
target.go - Per-date target resolution with monthly-override precedence

PURPOSE:
  Answers "what was the goal on this date?" for each location. The answer
  depends on whether the date's month carries a MonthlyAdjustment:

    month HAS an adjustment:
      day not in the adjustment's working-day set  -> {0, 0} (non-working)
      day in the set, override present             -> override value
      day in the set, no override                  -> default daily target

    month has NO adjustment:
      -> default daily target, unconditionally

PRECEDENCE:
  The working-day set governs whether a day counts at all; override values,
  when present, replace (never add to) the default for their location.

WEEKENDS:
  In a month without an adjustment, every date - weekends included -
  inherits the default target. The generic weekday rule is NOT applied
  here. This is intentional: weekend exclusion is a filtering concern and
  lives in the time-frame filter, not in target resolution, so the two
  code paths cannot disagree. Callers that need weekend-free months supply
  an adjustment enumerating the weekdays.

SEE ALSO:
  - calendar.go: The generic weekday rule used for envelope sizing
  - aggregate.go: Applies ResolveTarget per record date when summing
*/
package attain

// ResolveTarget returns the effective daily target for one date.
// Total over well-formed inputs: no side effects, no failure modes.
func ResolveTarget(date Date, config TargetConfig) ResolvedTarget {
	adj := config.AdjustmentFor(date.Year(), date.Month())
	if adj == nil {
		return ResolvedTarget{
			LocationA: config.DefaultDailyTarget.LocationA,
			LocationB: config.DefaultDailyTarget.LocationB,
		}
	}

	if !adj.WorkingDays.Contains(date.Day()) {
		// Non-working day for this month, regardless of weekday.
		return ResolvedTarget{}
	}

	resolved := ResolvedTarget{
		LocationA: config.DefaultDailyTarget.LocationA,
		LocationB: config.DefaultDailyTarget.LocationB,
	}
	if adj.LocationAOverride != nil {
		resolved.LocationA = *adj.LocationAOverride
	}
	if adj.LocationBOverride != nil {
		resolved.LocationB = *adj.LocationBOverride
	}
	return resolved
}
