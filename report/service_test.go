package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumen/attainment-engine/attain"
	"github.com/lumen/attainment-engine/report"
	"github.com/lumen/attainment-engine/report/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func money(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func fixedClock(year int, month time.Month, day int) func() attain.Date {
	d := attain.NewDate(year, month, day)
	return func() attain.Date { return d }
}

func newTestService(t *testing.T, asOf func() attain.Date) (*report.DashboardService, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := report.NewDashboardService(mem).WithClock(asOf)
	return svc, mem
}

func seedWeek(t *testing.T, svc *report.DashboardService) {
	t.Helper()
	ctx := context.Background()
	seed := []struct {
		date string
		a, b float64
	}{
		{"2025-03-24", 53000, 62500},
		{"2025-03-25", 50000, 56000},
		{"2025-03-26", 52000, 57000},
		{"2025-03-27", 54000, 57000},
		{"2025-03-28", 60000, 70000},
	}
	for _, s := range seed {
		require.NoError(t, svc.UpsertRecord(ctx, attain.RevenueRecord{
			Date:      attain.MustParseDate(s.date),
			LocationA: money(s.a),
			LocationB: money(s.b),
		}))
	}
}

func seedTargets(t *testing.T, svc *report.DashboardService) {
	t.Helper()
	require.NoError(t, svc.SaveTargetConfig(context.Background(), attain.TargetConfig{
		DefaultDailyTarget: attain.DailyTargetPair{
			LocationA: money(53000),
			LocationB: money(62500),
		},
	}))
}

// =============================================================================
// SUMMARY TESTS
// =============================================================================

func TestSummary_ThisWeek(t *testing.T) {
	svc, _ := newTestService(t, fixedClock(2025, time.March, 29))
	seedWeek(t, svc)
	seedTargets(t, svc)

	summary, err := svc.Summary(context.Background(), report.SummaryQuery{
		Frame: attain.FrameThisWeek,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-29", summary.AsOf.String())
	require.Len(t, summary.Records, 5)
	require.Len(t, summary.Daily, 5)
	require.Len(t, summary.Weekly, 1)
	require.NotNil(t, summary.Span)

	week := summary.Weekly[0]
	assert.True(t, week.Combined.Revenue.Equal(money(571500)),
		"combined revenue: %v", week.Combined.Revenue)
	assert.True(t, week.Combined.Target.Equal(money(577500)),
		"combined target: %v", week.Combined.Target)
	assert.True(t, week.Combined.AttainmentPct.Equal(money(98.96)),
		"combined attainment: %v", week.Combined.AttainmentPct)

	// March pace through Friday the 28th: 20 of 21 working days elapsed
	assert.True(t, summary.MonthToDate.LocationA.Target.Equal(money(53000*20)),
		"pace target: %v", summary.MonthToDate.LocationA.Target)
	assert.True(t, summary.MonthToDate.Total.Revenue.Equal(money(571500)))
}

func TestSummary_NoTargetConfigYieldsZeroTargets(t *testing.T) {
	// A fresh store has no configuration; the dashboard still renders,
	// with zero targets and zero attainment
	svc, _ := newTestService(t, fixedClock(2025, time.March, 29))
	seedWeek(t, svc)

	summary, err := svc.Summary(context.Background(), report.SummaryQuery{
		Frame: attain.FrameThisWeek,
	})
	require.NoError(t, err)

	require.Len(t, summary.Weekly, 1)
	assert.True(t, summary.Weekly[0].Combined.Target.IsZero())
	assert.True(t, summary.Weekly[0].Combined.AttainmentPct.IsZero())
	assert.True(t, summary.Weekly[0].Combined.Revenue.Equal(money(571500)))
}

func TestSummary_LocationFilterFlowsThrough(t *testing.T) {
	svc, _ := newTestService(t, fixedClock(2025, time.March, 29))
	seedWeek(t, svc)
	seedTargets(t, svc)

	summary, err := svc.Summary(context.Background(), report.SummaryQuery{
		Frame:    attain.FrameThisWeek,
		Location: attain.LocationAOnly,
	})
	require.NoError(t, err)

	for _, rec := range summary.Records {
		assert.True(t, rec.LocationB.IsZero(), "%s: location B not zeroed", rec.Date)
	}
	assert.True(t, summary.MonthToDate.LocationB.Target.IsZero())
}

func TestSummary_InvalidCustomRange(t *testing.T) {
	svc, _ := newTestService(t, fixedClock(2025, time.March, 29))
	seedWeek(t, svc)

	_, err := svc.Summary(context.Background(), report.SummaryQuery{
		Frame: attain.FrameCustom,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, attain.ErrInvalidRange)
	assert.True(t, attain.IsClientError(err))
}

// =============================================================================
// RECORD MANAGEMENT TESTS
// =============================================================================

func TestUpsertRecord_LastWriteWins(t *testing.T) {
	svc, _ := newTestService(t, fixedClock(2025, time.March, 29))
	ctx := context.Background()
	d := attain.MustParseDate("2025-03-24")

	require.NoError(t, svc.UpsertRecord(ctx, attain.RevenueRecord{
		Date: d, LocationA: money(100), LocationB: money(200),
	}))
	require.NoError(t, svc.UpsertRecord(ctx, attain.RevenueRecord{
		Date: d, LocationA: money(300), LocationB: money(400),
	}))

	records, err := svc.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].LocationA.Equal(money(300)))
}

func TestUpsertRecord_NegativeRevenueRejected(t *testing.T) {
	svc, _ := newTestService(t, fixedClock(2025, time.March, 29))

	err := svc.UpsertRecord(context.Background(), attain.RevenueRecord{
		Date:      attain.MustParseDate("2025-03-24"),
		LocationA: money(-1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, attain.ErrNegativeRevenue)
}

func TestDeleteRecord(t *testing.T) {
	svc, _ := newTestService(t, fixedClock(2025, time.March, 29))
	ctx := context.Background()
	seedWeek(t, svc)

	require.NoError(t, svc.DeleteRecord(ctx, attain.MustParseDate("2025-03-26")))

	records, err := svc.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}
