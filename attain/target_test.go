package attain_test

import (
	"testing"
	"time"

	"github.com/lumen/attainment-engine/attain"
)

// =============================================================================
// OVERRIDE PRECEDENCE TESTS
// =============================================================================

func TestResolveTarget_NoAdjustment_DefaultApplies(t *testing.T) {
	// GIVEN: No adjustment for the month
	// THEN: Every date inherits the default daily target
	config := defaultConfig()

	resolved := attain.ResolveTarget(date(2025, time.March, 12), config)
	if !equalMoney(resolved.LocationA, 53000) || !equalMoney(resolved.LocationB, 62500) {
		t.Errorf("expected default target, got %v / %v", resolved.LocationA, resolved.LocationB)
	}
	if !resolved.IsWorkingDay() {
		t.Error("expected a target-bearing day")
	}
}

func TestResolveTarget_NoAdjustment_WeekendStillInheritsDefault(t *testing.T) {
	// GIVEN: No adjustment for the month
	// WHEN: Resolving a Saturday
	// THEN: The default target applies - the generic weekday rule is a
	//       filtering concern, not a resolution concern
	config := defaultConfig()
	saturday := date(2025, time.March, 29)

	resolved := attain.ResolveTarget(saturday, config)
	if !equalMoney(resolved.LocationA, 53000) || !equalMoney(resolved.LocationB, 62500) {
		t.Errorf("expected weekend to inherit default target, got %v / %v",
			resolved.LocationA, resolved.LocationB)
	}
}

func TestResolveTarget_DayOutsideWorkingSet_IsNonWorking(t *testing.T) {
	// GIVEN: March 2025 adjustment with working days {1, 3, 5}
	// WHEN: Resolving March 2 (not in the set)
	// THEN: {0, 0} regardless of weekday status
	config := defaultConfig()
	config.MonthlyAdjustments = []attain.MonthlyAdjustment{{
		Year:              2025,
		Month:             time.March,
		WorkingDays:       attain.NewDaySet(1, 3, 5),
		LocationAOverride: moneyPtr(40000),
	}}

	resolved := attain.ResolveTarget(date(2025, time.March, 2), config)
	if !resolved.LocationA.IsZero() || !resolved.LocationB.IsZero() {
		t.Errorf("expected {0, 0}, got %v / %v", resolved.LocationA, resolved.LocationB)
	}
	if resolved.IsWorkingDay() {
		t.Error("expected non-working day")
	}
}

func TestResolveTarget_DayInSet_OverrideReplacesDefault(t *testing.T) {
	// GIVEN: March 2025 adjustment with working days {1, 3, 5} and a
	//        location A override of 40000
	// WHEN: Resolving March 3 (in the set)
	// THEN: A gets the override, B keeps the default
	config := defaultConfig()
	config.MonthlyAdjustments = []attain.MonthlyAdjustment{{
		Year:              2025,
		Month:             time.March,
		WorkingDays:       attain.NewDaySet(1, 3, 5),
		LocationAOverride: moneyPtr(40000),
	}}

	resolved := attain.ResolveTarget(date(2025, time.March, 3), config)
	if !equalMoney(resolved.LocationA, 40000) {
		t.Errorf("expected override 40000 for A, got %v", resolved.LocationA)
	}
	if !equalMoney(resolved.LocationB, 62500) {
		t.Errorf("expected default 62500 for B, got %v", resolved.LocationB)
	}
}

func TestResolveTarget_DayInSet_NoOverrides_DefaultApplies(t *testing.T) {
	config := defaultConfig()
	config.MonthlyAdjustments = []attain.MonthlyAdjustment{{
		Year:        2025,
		Month:       time.March,
		WorkingDays: attain.NewDaySet(10),
	}}

	resolved := attain.ResolveTarget(date(2025, time.March, 10), config)
	if !equalMoney(resolved.LocationA, 53000) || !equalMoney(resolved.LocationB, 62500) {
		t.Errorf("expected defaults, got %v / %v", resolved.LocationA, resolved.LocationB)
	}
}

func TestResolveTarget_AdjustmentCanIncludeWeekend(t *testing.T) {
	// GIVEN: An adjustment whose working-day set includes Saturday the 29th
	// THEN: The weekend day is target-bearing for that month
	config := defaultConfig()
	config.MonthlyAdjustments = []attain.MonthlyAdjustment{{
		Year:        2025,
		Month:       time.March,
		WorkingDays: attain.NewDaySet(29),
	}}

	saturday := date(2025, time.March, 29)
	resolved := attain.ResolveTarget(saturday, config)
	if !resolved.IsWorkingDay() {
		t.Error("expected Saturday in the working-day set to be target-bearing")
	}

	// And an ordinary weekday outside the set is not
	weekday := date(2025, time.March, 25)
	if attain.ResolveTarget(weekday, config).IsWorkingDay() {
		t.Error("expected Tuesday outside the working-day set to be non-working")
	}
}

func TestResolveTarget_AdjustmentOnlyCoversItsOwnMonth(t *testing.T) {
	// GIVEN: A March 2025 adjustment
	// WHEN: Resolving a date in April 2025 and in March 2026
	// THEN: The default applies; the adjustment is keyed by (year, month)
	config := defaultConfig()
	config.MonthlyAdjustments = []attain.MonthlyAdjustment{{
		Year:              2025,
		Month:             time.March,
		WorkingDays:       attain.NewDaySet(3),
		LocationAOverride: moneyPtr(40000),
	}}

	for _, d := range []attain.Date{date(2025, time.April, 3), date(2026, time.March, 3)} {
		resolved := attain.ResolveTarget(d, config)
		if !equalMoney(resolved.LocationA, 53000) {
			t.Errorf("%s: expected default 53000, got %v", d, resolved.LocationA)
		}
	}
}
