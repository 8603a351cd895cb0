package report

import (
	"context"
	"errors"

	"github.com/lumen/attainment-engine/attain"
)

// =============================================================================
// STORAGE INTERFACES - The calculation engine never sees these
// =============================================================================

// ErrNoTargetConfig is returned by a TargetStore that has never been
// written to. The service substitutes an all-zero configuration so the
// dashboard renders before targets are set up.
var ErrNoTargetConfig = errors.New("no target configuration saved")

// RecordStore persists the daily revenue series. One row per calendar
// date; writing an existing date replaces it (last write wins).
type RecordStore interface {
	UpsertRecord(ctx context.Context, rec attain.RevenueRecord) error
	DeleteRecord(ctx context.Context, d attain.Date) error
	ListRecords(ctx context.Context) ([]attain.RevenueRecord, error)
}

// TargetStore persists the single active target configuration.
type TargetStore interface {
	LoadTargetConfig(ctx context.Context) (attain.TargetConfig, error)
	SaveTargetConfig(ctx context.Context, config attain.TargetConfig) error
}

// Store is the combined interface the dashboard service needs.
type Store interface {
	RecordStore
	TargetStore
}
