/*
Package factory provides JSON to Go target-configuration conversion.

PURPOSE:
  Converts JSON target definitions into attain.TargetConfig. This is the
  boundary where external data (API payloads, database rows) enters the
  calculation engine, so it is also where malformed data fails fast:
  out-of-range months or days, negative targets, and duplicate
  (year, month) adjustments are all rejected here with descriptive
  errors. Past this point the engine assumes well-formed input.

WHY JSON?
  - Managers adjust targets without code changes
  - Easy integration with the dashboard's target dialog
  - Database storage of the full configuration as one document

JSON SCHEMA:
  {
    "default_daily_target": {"location_a": 53000, "location_b": 62500},
    "monthly_adjustments": [
      {
        "year": 2025,
        "month": 3,
        "working_days": [3, 4, 5, 10, 11, 12],
        "location_a_override": 40000
      }
    ]
  }

  Months are 1-12 (time.Month), working days 1-31 and bounded by the
  month's actual length.

USAGE:
  f := factory.NewTargetFactory()
  config, err := f.Parse(jsonString)        // from raw JSON
  config, err := f.FromJSON(payload)        // from a decoded payload
  payload := f.ToJSON(config)               // back out for persistence

SEE ALSO:
  - attain/types.go: TargetConfig definition
  - attain/errors.go: The validation error types returned here
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lumen/attainment-engine/attain"
	"github.com/shopspring/decimal"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// TargetConfigJSON is the JSON representation of a target configuration.
type TargetConfigJSON struct {
	DefaultDailyTarget DailyTargetJSON         `json:"default_daily_target"`
	MonthlyAdjustments []MonthlyAdjustmentJSON `json:"monthly_adjustments,omitempty"`
}

// DailyTargetJSON is the per-working-day goal pair.
type DailyTargetJSON struct {
	LocationA float64 `json:"location_a"`
	LocationB float64 `json:"location_b"`
}

// MonthlyAdjustmentJSON is one month's override.
type MonthlyAdjustmentJSON struct {
	Year              int      `json:"year"`
	Month             int      `json:"month"` // 1-12
	WorkingDays       []int    `json:"working_days"`
	LocationAOverride *float64 `json:"location_a_override,omitempty"`
	LocationBOverride *float64 `json:"location_b_override,omitempty"`
}

// =============================================================================
// TARGET FACTORY
// =============================================================================

// TargetFactory converts JSON target configurations to engine structs.
type TargetFactory struct{}

func NewTargetFactory() *TargetFactory {
	return &TargetFactory{}
}

// Parse decodes and validates a raw JSON document.
func (f *TargetFactory) Parse(raw string) (attain.TargetConfig, error) {
	var payload TargetConfigJSON
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return attain.TargetConfig{}, fmt.Errorf("decode target config: %w", err)
	}
	return f.FromJSON(payload)
}

// FromJSON validates a decoded payload and builds the engine configuration.
func (f *TargetFactory) FromJSON(payload TargetConfigJSON) (attain.TargetConfig, error) {
	if payload.DefaultDailyTarget.LocationA < 0 || payload.DefaultDailyTarget.LocationB < 0 {
		return attain.TargetConfig{}, fmt.Errorf("%w: default daily target must be >= 0", attain.ErrInvalidAdjustment)
	}

	config := attain.TargetConfig{
		DefaultDailyTarget: attain.DailyTargetPair{
			LocationA: decimal.NewFromFloat(payload.DefaultDailyTarget.LocationA),
			LocationB: decimal.NewFromFloat(payload.DefaultDailyTarget.LocationB),
		},
	}

	seen := make(map[monthKey]bool, len(payload.MonthlyAdjustments))
	for _, adj := range payload.MonthlyAdjustments {
		parsed, err := parseAdjustment(adj)
		if err != nil {
			return attain.TargetConfig{}, err
		}

		k := monthKey{year: parsed.Year, month: parsed.Month}
		if seen[k] {
			return attain.TargetConfig{}, fmt.Errorf("%w: %s %d appears twice",
				attain.ErrDuplicateAdjustment, parsed.Month, parsed.Year)
		}
		seen[k] = true

		config.MonthlyAdjustments = append(config.MonthlyAdjustments, parsed)
	}

	return config, nil
}

// ToJSON converts an engine configuration back to its JSON payload shape.
func (f *TargetFactory) ToJSON(config attain.TargetConfig) TargetConfigJSON {
	defaultA, _ := config.DefaultDailyTarget.LocationA.Float64()
	defaultB, _ := config.DefaultDailyTarget.LocationB.Float64()

	payload := TargetConfigJSON{
		DefaultDailyTarget: DailyTargetJSON{LocationA: defaultA, LocationB: defaultB},
	}

	for _, adj := range config.MonthlyAdjustments {
		out := MonthlyAdjustmentJSON{
			Year:        adj.Year,
			Month:       int(adj.Month),
			WorkingDays: adj.WorkingDays.Days(),
		}
		if adj.LocationAOverride != nil {
			v, _ := adj.LocationAOverride.Float64()
			out.LocationAOverride = &v
		}
		if adj.LocationBOverride != nil {
			v, _ := adj.LocationBOverride.Float64()
			out.LocationBOverride = &v
		}
		payload.MonthlyAdjustments = append(payload.MonthlyAdjustments, out)
	}

	return payload
}

type monthKey struct {
	year  int
	month time.Month
}

func parseAdjustment(adj MonthlyAdjustmentJSON) (attain.MonthlyAdjustment, error) {
	if adj.Month < 1 || adj.Month > 12 {
		return attain.MonthlyAdjustment{}, &attain.AdjustmentError{
			Year: adj.Year, Month: time.Month(adj.Month),
			Reason: fmt.Sprintf("month %d out of range 1-12", adj.Month),
		}
	}
	month := time.Month(adj.Month)

	if adj.Year < 1 {
		return attain.MonthlyAdjustment{}, &attain.AdjustmentError{
			Year: adj.Year, Month: month,
			Reason: fmt.Sprintf("year %d out of range", adj.Year),
		}
	}

	maxDay := attain.DaysInMonth(adj.Year, month)
	for _, day := range adj.WorkingDays {
		if day < 1 || day > maxDay {
			return attain.MonthlyAdjustment{}, &attain.AdjustmentError{
				Year: adj.Year, Month: month,
				Reason: fmt.Sprintf("working day %d out of range 1-%d", day, maxDay),
			}
		}
	}

	parsed := attain.MonthlyAdjustment{
		Year:        adj.Year,
		Month:       month,
		WorkingDays: attain.NewDaySet(adj.WorkingDays...),
	}

	if adj.LocationAOverride != nil {
		if *adj.LocationAOverride < 0 {
			return attain.MonthlyAdjustment{}, &attain.AdjustmentError{
				Year: adj.Year, Month: month, Reason: "location A override must be >= 0",
			}
		}
		v := decimal.NewFromFloat(*adj.LocationAOverride)
		parsed.LocationAOverride = &v
	}
	if adj.LocationBOverride != nil {
		if *adj.LocationBOverride < 0 {
			return attain.MonthlyAdjustment{}, &attain.AdjustmentError{
				Year: adj.Year, Month: month, Reason: "location B override must be >= 0",
			}
		}
		v := decimal.NewFromFloat(*adj.LocationBOverride)
		parsed.LocationBOverride = &v
	}

	return parsed, nil
}
