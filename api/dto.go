/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY REPRESENTATION:
  Internally everything is decimal.Decimal; on the wire amounts are JSON
  numbers, which is what charting clients expect. The conversion happens
  only here at the edge.

TYPES:
  Records:
    RecordDTO, UpsertRecordRequest

  Targets:
    factory.TargetConfigJSON is used directly as the wire shape

  Summary:
    SummaryDTO, DailyAttainmentDTO, PeriodMetricsDTO, MetricDTO,
    LocationSummaryDTO

SEE ALSO:
  - handlers.go: Uses these types
  - factory/targets.go: TargetConfigJSON type
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/lumen/attainment-engine/attain"
)

// =============================================================================
// RECORD TYPES
// =============================================================================

// RecordDTO represents one day's revenue entry in API responses.
type RecordDTO struct {
	Date      string  `json:"date"`
	LocationA float64 `json:"location_a"`
	LocationB float64 `json:"location_b"`
	Combined  float64 `json:"combined"`
}

// UpsertRecordRequest is the request to create or replace a day's entry.
// The date comes from the URL path.
type UpsertRecordRequest struct {
	LocationA float64 `json:"location_a"`
	LocationB float64 `json:"location_b"`
}

// =============================================================================
// SUMMARY TYPES
// =============================================================================

// MetricDTO is one revenue/target/attainment triple.
type MetricDTO struct {
	Revenue       float64 `json:"revenue"`
	Target        float64 `json:"target"`
	AttainmentPct float64 `json:"attainment_pct"`
}

// DailyAttainmentDTO is the per-day attainment breakdown.
type DailyAttainmentDTO struct {
	Date      string    `json:"date"`
	LocationA MetricDTO `json:"location_a"`
	LocationB MetricDTO `json:"location_b"`
	Combined  MetricDTO `json:"combined"`
}

// PeriodMetricsDTO is one week or month bucket.
type PeriodMetricsDTO struct {
	Label     string    `json:"label"`
	LocationA MetricDTO `json:"location_a"`
	LocationB MetricDTO `json:"location_b"`
	Combined  MetricDTO `json:"combined"`
}

// LocationSummaryDTO is the pace-adjusted month-to-date block.
type LocationSummaryDTO struct {
	LocationA MetricDTO `json:"location_a"`
	LocationB MetricDTO `json:"location_b"`
	Total     MetricDTO `json:"total"`
}

// SummaryDTO is the full dashboard payload.
type SummaryDTO struct {
	AsOf        string               `json:"as_of"`
	Frame       string               `json:"frame"`
	Records     []RecordDTO          `json:"records"`
	Daily       []DailyAttainmentDTO `json:"daily"`
	Weekly      []PeriodMetricsDTO   `json:"weekly"`
	Span        *PeriodMetricsDTO    `json:"span,omitempty"`
	MonthToDate LocationSummaryDTO   `json:"month_to_date"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toRecordDTO(rec attain.RevenueRecord) RecordDTO {
	return RecordDTO{
		Date:      rec.Date.String(),
		LocationA: toFloat(rec.LocationA),
		LocationB: toFloat(rec.LocationB),
		Combined:  toFloat(rec.CombinedRevenue()),
	}
}

func toMetricDTO(m attain.LocationMetric) MetricDTO {
	return MetricDTO{
		Revenue:       toFloat(m.Revenue),
		Target:        toFloat(m.Target),
		AttainmentPct: toFloat(m.AttainmentPct),
	}
}

func toDailyDTO(d attain.DailyAttainment) DailyAttainmentDTO {
	return DailyAttainmentDTO{
		Date:      d.Date.String(),
		LocationA: toMetricDTO(d.LocationA),
		LocationB: toMetricDTO(d.LocationB),
		Combined:  toMetricDTO(d.Combined),
	}
}

func toPeriodDTO(p attain.PeriodMetrics) PeriodMetricsDTO {
	return PeriodMetricsDTO{
		Label:     p.Label,
		LocationA: toMetricDTO(p.LocationA),
		LocationB: toMetricDTO(p.LocationB),
		Combined:  toMetricDTO(p.Combined),
	}
}

func toLocationSummaryDTO(s attain.LocationSummary) LocationSummaryDTO {
	return LocationSummaryDTO{
		LocationA: toMetricDTO(s.LocationA),
		LocationB: toMetricDTO(s.LocationB),
		Total:     toMetricDTO(s.Total),
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
