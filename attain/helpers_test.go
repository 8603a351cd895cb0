package attain_test

import (
	"time"

	"github.com/lumen/attainment-engine/attain"
	"github.com/shopspring/decimal"
)

// =============================================================================
// SHARED TEST HELPERS
// =============================================================================

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func moneyPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func date(year int, month time.Month, day int) attain.Date {
	return attain.NewDate(year, month, day)
}

func record(d attain.Date, a, b float64) attain.RevenueRecord {
	return attain.RevenueRecord{Date: d, LocationA: money(a), LocationB: money(b)}
}

// defaultConfig mirrors the production default: 53k / 62.5k per working day,
// no monthly adjustments.
func defaultConfig() attain.TargetConfig {
	return attain.TargetConfig{
		DefaultDailyTarget: attain.DailyTargetPair{
			LocationA: money(53000),
			LocationB: money(62500),
		},
	}
}

func equalMoney(a decimal.Decimal, v float64) bool {
	return a.Equal(money(v))
}
