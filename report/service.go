/*
Package report assembles dashboard summaries from the attainment engine.

PURPOSE:
  The service layer between persistence and the pure calculation core.
  It loads the revenue series and target configuration from a Store,
  resolves "now" exactly once per request, runs the engine, and hands a
  complete Summary (filtered records, daily attainment, weekly/monthly
  buckets, pace metrics) to the API layer.

CLOCK INJECTION:
  The engine takes an explicit as-of date everywhere. The service owns
  the one place where the real clock is read; tests swap it with
  WithClock for reproducible output.

SEE ALSO:
  - attain: The calculation engine
  - report/store: In-memory Store for tests and development
  - store/sqlite: Production Store
*/
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen/attainment-engine/attain"
)

// =============================================================================
// DASHBOARD SERVICE
// =============================================================================

// DashboardService computes dashboard metrics over a Store.
type DashboardService struct {
	store Store
	now   func() attain.Date
}

func NewDashboardService(store Store) *DashboardService {
	return &DashboardService{store: store, now: attain.Today}
}

// WithClock replaces the clock. Tests pass a fixed date.
func (s *DashboardService) WithClock(now func() attain.Date) *DashboardService {
	s.now = now
	return s
}

// SummaryQuery selects the view to compute.
type SummaryQuery struct {
	Frame       attain.TimeFrame
	CustomStart *attain.Date
	CustomEnd   *attain.Date
	Location    attain.LocationFilter
}

// Summary is everything one dashboard render needs.
type Summary struct {
	AsOf  attain.Date
	Frame attain.TimeFrame

	// Records in scope for the frame, sorted ascending
	Records []attain.RevenueRecord

	// Per-record attainment against the resolved daily target
	Daily []attain.DailyAttainment

	// 7-day buckets over the filtered span, plus the whole-span bucket
	Weekly []attain.PeriodMetrics
	Span   *attain.PeriodMetrics

	// Pace-adjusted month-to-date summary (always for the current month,
	// independent of the selected frame)
	MonthToDate attain.LocationSummary
}

// Summary computes the full dashboard payload for one query.
func (s *DashboardService) Summary(ctx context.Context, q SummaryQuery) (*Summary, error) {
	config, err := s.targetConfigOrZero(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	asOf := s.now()

	filtered, err := attain.FilterByTimeFrame(all, attain.Query{
		Frame:       q.Frame,
		AsOf:        asOf,
		CustomStart: q.CustomStart,
		CustomEnd:   q.CustomEnd,
		Location:    q.Location,
	})
	if err != nil {
		return nil, err
	}

	daily := make([]attain.DailyAttainment, 0, len(filtered))
	for _, rec := range filtered {
		target := attain.ResolveTarget(rec.Date, config)
		daily = append(daily, attain.ComputeAttainment(rec, target))
	}

	weekly, span := attain.BucketIntoPeriods(filtered, config)

	// Pace metrics always cover the current month, whatever frame the
	// charts are showing.
	monthToDate, err := attain.FilterByTimeFrame(all, attain.Query{
		Frame:    attain.FrameMonthToDate,
		AsOf:     asOf,
		Location: q.Location,
	})
	if err != nil {
		return nil, err
	}
	pace := attain.ComputeLocationMetrics(monthToDate, config, q.Location, asOf)

	return &Summary{
		AsOf:        asOf,
		Frame:       q.Frame,
		Records:     filtered,
		Daily:       daily,
		Weekly:      weekly,
		Span:        span,
		MonthToDate: pace,
	}, nil
}

// FilteredRecords returns only the records in scope for the query's
// frame, sorted ascending.
func (s *DashboardService) FilteredRecords(ctx context.Context, q SummaryQuery) ([]attain.RevenueRecord, error) {
	all, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return attain.FilterByTimeFrame(all, attain.Query{
		Frame:       q.Frame,
		AsOf:        s.now(),
		CustomStart: q.CustomStart,
		CustomEnd:   q.CustomEnd,
		Location:    q.Location,
	})
}

// =============================================================================
// RECORD MANAGEMENT
// =============================================================================

// UpsertRecord validates and writes one day's revenue entry. Writing an
// existing date replaces it.
func (s *DashboardService) UpsertRecord(ctx context.Context, rec attain.RevenueRecord) error {
	if rec.Date.IsZero() {
		return &attain.DateParseError{Input: "", Reason: "record date is required"}
	}
	if rec.LocationA.IsNegative() || rec.LocationB.IsNegative() {
		return fmt.Errorf("%w: %s", attain.ErrNegativeRevenue, rec.Date)
	}
	return s.store.UpsertRecord(ctx, rec)
}

func (s *DashboardService) DeleteRecord(ctx context.Context, d attain.Date) error {
	return s.store.DeleteRecord(ctx, d)
}

// ListRecords returns the raw series sorted ascending by date.
func (s *DashboardService) ListRecords(ctx context.Context) ([]attain.RevenueRecord, error) {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	attain.SortRecords(records)
	return records, nil
}

// =============================================================================
// TARGET CONFIGURATION
// =============================================================================

// TargetConfig returns the saved configuration, or a zero configuration
// when none has been saved yet.
func (s *DashboardService) TargetConfig(ctx context.Context) (attain.TargetConfig, error) {
	return s.targetConfigOrZero(ctx)
}

// SaveTargetConfig persists a configuration that has already passed
// factory validation.
func (s *DashboardService) SaveTargetConfig(ctx context.Context, config attain.TargetConfig) error {
	return s.store.SaveTargetConfig(ctx, config)
}

func (s *DashboardService) targetConfigOrZero(ctx context.Context) (attain.TargetConfig, error) {
	config, err := s.store.LoadTargetConfig(ctx)
	if err != nil {
		if errors.Is(err, ErrNoTargetConfig) {
			return attain.TargetConfig{}, nil
		}
		return attain.TargetConfig{}, fmt.Errorf("load target config: %w", err)
	}
	return config, nil
}
