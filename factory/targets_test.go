package factory_test

import (
	"testing"
	"time"

	"github.com/lumen/attainment-engine/attain"
	"github.com/lumen/attainment-engine/factory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidConfig(t *testing.T) {
	f := factory.NewTargetFactory()

	config, err := f.Parse(`{
		"default_daily_target": {"location_a": 53000, "location_b": 62500},
		"monthly_adjustments": [
			{
				"year": 2025,
				"month": 3,
				"working_days": [3, 4, 5],
				"location_a_override": 40000
			}
		]
	}`)
	require.NoError(t, err)

	assert.True(t, config.DefaultDailyTarget.LocationA.Equal(money(53000)))
	assert.True(t, config.DefaultDailyTarget.LocationB.Equal(money(62500)))

	require.Len(t, config.MonthlyAdjustments, 1)
	adj := config.MonthlyAdjustments[0]
	assert.Equal(t, 2025, adj.Year)
	assert.Equal(t, time.March, adj.Month)
	assert.True(t, adj.WorkingDays.Contains(3))
	assert.False(t, adj.WorkingDays.Contains(6))
	require.NotNil(t, adj.LocationAOverride)
	assert.True(t, adj.LocationAOverride.Equal(money(40000)))
	assert.Nil(t, adj.LocationBOverride)
}

func TestParse_MonthOutOfRange(t *testing.T) {
	f := factory.NewTargetFactory()

	for _, month := range []int{0, 13, -1} {
		_, err := f.FromJSON(factory.TargetConfigJSON{
			MonthlyAdjustments: []factory.MonthlyAdjustmentJSON{
				{Year: 2025, Month: month, WorkingDays: []int{1}},
			},
		})
		require.Error(t, err, "month %d", month)
		assert.ErrorIs(t, err, attain.ErrInvalidAdjustment)
	}
}

func TestParse_DayOutOfRangeForMonth(t *testing.T) {
	f := factory.NewTargetFactory()

	// February 2025 has 28 days
	_, err := f.FromJSON(factory.TargetConfigJSON{
		MonthlyAdjustments: []factory.MonthlyAdjustmentJSON{
			{Year: 2025, Month: 2, WorkingDays: []int{28, 29}},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, attain.ErrInvalidAdjustment)

	// But 29 is fine in a leap year
	_, err = f.FromJSON(factory.TargetConfigJSON{
		MonthlyAdjustments: []factory.MonthlyAdjustmentJSON{
			{Year: 2024, Month: 2, WorkingDays: []int{29}},
		},
	})
	assert.NoError(t, err)
}

func TestParse_DuplicateMonthRejected(t *testing.T) {
	f := factory.NewTargetFactory()

	_, err := f.FromJSON(factory.TargetConfigJSON{
		MonthlyAdjustments: []factory.MonthlyAdjustmentJSON{
			{Year: 2025, Month: 3, WorkingDays: []int{1}},
			{Year: 2025, Month: 3, WorkingDays: []int{2}},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, attain.ErrDuplicateAdjustment)

	// Same month in different years is fine
	_, err = f.FromJSON(factory.TargetConfigJSON{
		MonthlyAdjustments: []factory.MonthlyAdjustmentJSON{
			{Year: 2025, Month: 3, WorkingDays: []int{1}},
			{Year: 2026, Month: 3, WorkingDays: []int{2}},
		},
	})
	assert.NoError(t, err)
}

func TestParse_NegativeValuesRejected(t *testing.T) {
	f := factory.NewTargetFactory()

	_, err := f.FromJSON(factory.TargetConfigJSON{
		DefaultDailyTarget: factory.DailyTargetJSON{LocationA: -1},
	})
	assert.ErrorIs(t, err, attain.ErrInvalidAdjustment)

	override := -500.0
	_, err = f.FromJSON(factory.TargetConfigJSON{
		MonthlyAdjustments: []factory.MonthlyAdjustmentJSON{
			{Year: 2025, Month: 3, WorkingDays: []int{1}, LocationBOverride: &override},
		},
	})
	assert.ErrorIs(t, err, attain.ErrInvalidAdjustment)
}

func TestParse_MalformedJSON(t *testing.T) {
	f := factory.NewTargetFactory()
	_, err := f.Parse(`{not json`)
	assert.Error(t, err)
}

func TestToJSON_RoundTrip(t *testing.T) {
	f := factory.NewTargetFactory()

	original := factory.TargetConfigJSON{
		DefaultDailyTarget: factory.DailyTargetJSON{LocationA: 53000, LocationB: 62500},
		MonthlyAdjustments: []factory.MonthlyAdjustmentJSON{
			{Year: 2025, Month: 3, WorkingDays: []int{5, 3, 4}, LocationAOverride: ptr(40000.0)},
		},
	}

	config, err := f.FromJSON(original)
	require.NoError(t, err)

	back := f.ToJSON(config)
	assert.Equal(t, original.DefaultDailyTarget, back.DefaultDailyTarget)
	require.Len(t, back.MonthlyAdjustments, 1)
	assert.Equal(t, []int{3, 4, 5}, back.MonthlyAdjustments[0].WorkingDays) // normalized ascending
	require.NotNil(t, back.MonthlyAdjustments[0].LocationAOverride)
	assert.Equal(t, 40000.0, *back.MonthlyAdjustments[0].LocationAOverride)
}

// helpers

func money(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func ptr(v float64) *float64 { return &v }
