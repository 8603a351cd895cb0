// Package store provides an in-memory report.Store for tests and dev.
package store

import (
	"context"
	"sync"

	"github.com/lumen/attainment-engine/attain"
	"github.com/lumen/attainment-engine/report"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records map[string]attain.RevenueRecord // keyed by ISO date
	config  *attain.TargetConfig
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]attain.RevenueRecord)}
}

// UpsertRecord writes one day's entry. Last write wins.
func (m *Memory) UpsertRecord(_ context.Context, rec attain.RevenueRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.Date.String()] = rec
	return nil
}

func (m *Memory) DeleteRecord(_ context.Context, d attain.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, d.String())
	return nil
}

func (m *Memory) ListRecords(_ context.Context) ([]attain.RevenueRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]attain.RevenueRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, rec)
	}
	attain.SortRecords(records)
	return records, nil
}

func (m *Memory) LoadTargetConfig(_ context.Context) (attain.TargetConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return attain.TargetConfig{}, report.ErrNoTargetConfig
	}
	return *m.config, nil
}

func (m *Memory) SaveTargetConfig(_ context.Context, config attain.TargetConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = &config
	return nil
}
