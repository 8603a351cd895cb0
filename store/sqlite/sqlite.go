/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:
  Implements report.Store (RecordStore + TargetStore) using SQLite. In
  production, the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

KEY TABLES:
  revenue_records:     One row per calendar date; upserts replace in place
  target_config:       Single-row table holding the default daily targets
  monthly_adjustments: Per-month working-day sets and target overrides,
                       UNIQUE(year, month)

MONEY REPRESENTATION:
  Amounts are stored as decimal strings, never floats. They round-trip
  through shopspring/decimal without drift.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/attainment.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  svc := report.NewDashboardService(store)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - report/storage.go: Interface definitions
  - report/store: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/lumen/attainment-engine/attain"
	"github.com/lumen/attainment-engine/report"
)

// Store implements report.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Daily revenue series, one row per date
	CREATE TABLE IF NOT EXISTS revenue_records (
		date TEXT PRIMARY KEY,
		location_a TEXT NOT NULL,
		location_b TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Default daily targets. Single row, id pinned to 1.
	CREATE TABLE IF NOT EXISTS target_config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		location_a TEXT NOT NULL,
		location_b TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Per-month overrides of the default calendar and targets
	CREATE TABLE IF NOT EXISTS monthly_adjustments (
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		working_days_json TEXT NOT NULL,
		location_a_override TEXT,
		location_b_override TEXT,
		UNIQUE(year, month)
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RECORD STORE
// =============================================================================

// UpsertRecord writes one day's revenue entry. Writing an existing date
// replaces it.
func (s *Store) UpsertRecord(ctx context.Context, rec attain.RevenueRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO revenue_records (date, location_a, location_b, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			location_a = excluded.location_a,
			location_b = excluded.location_b,
			updated_at = excluded.updated_at
	`, rec.Date.String(), rec.LocationA.String(), rec.LocationB.String(),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert record %s: %w", rec.Date, err)
	}
	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, d attain.Date) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM revenue_records WHERE date = ?`, d.String())
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", d, err)
	}
	return nil
}

// ListRecords returns the whole revenue series sorted ascending by date.
func (s *Store) ListRecords(ctx context.Context) ([]attain.RevenueRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, location_a, location_b
		FROM revenue_records
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []attain.RevenueRecord
	for rows.Next() {
		var dateStr, aStr, bStr string
		if err := rows.Scan(&dateStr, &aStr, &bStr); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		rec, err := recordFromRow(dateStr, aStr, bStr)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func recordFromRow(dateStr, aStr, bStr string) (attain.RevenueRecord, error) {
	d, err := attain.ParseDate(dateStr)
	if err != nil {
		return attain.RevenueRecord{}, fmt.Errorf("corrupt record date %q: %w", dateStr, err)
	}
	a, err := decimal.NewFromString(aStr)
	if err != nil {
		return attain.RevenueRecord{}, fmt.Errorf("corrupt amount %q for %s: %w", aStr, dateStr, err)
	}
	b, err := decimal.NewFromString(bStr)
	if err != nil {
		return attain.RevenueRecord{}, fmt.Errorf("corrupt amount %q for %s: %w", bStr, dateStr, err)
	}
	return attain.RevenueRecord{Date: d, LocationA: a, LocationB: b}, nil
}

// =============================================================================
// TARGET STORE
// =============================================================================

// LoadTargetConfig reads the default targets and all monthly adjustments.
// Returns report.ErrNoTargetConfig when nothing has been saved yet.
func (s *Store) LoadTargetConfig(ctx context.Context) (attain.TargetConfig, error) {
	var aStr, bStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT location_a, location_b FROM target_config WHERE id = 1`,
	).Scan(&aStr, &bStr)
	if err == sql.ErrNoRows {
		return attain.TargetConfig{}, report.ErrNoTargetConfig
	}
	if err != nil {
		return attain.TargetConfig{}, fmt.Errorf("failed to load target config: %w", err)
	}

	defaultA, err := decimal.NewFromString(aStr)
	if err != nil {
		return attain.TargetConfig{}, fmt.Errorf("corrupt default target %q: %w", aStr, err)
	}
	defaultB, err := decimal.NewFromString(bStr)
	if err != nil {
		return attain.TargetConfig{}, fmt.Errorf("corrupt default target %q: %w", bStr, err)
	}

	config := attain.TargetConfig{
		DefaultDailyTarget: attain.DailyTargetPair{LocationA: defaultA, LocationB: defaultB},
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT year, month, working_days_json, location_a_override, location_b_override
		FROM monthly_adjustments
		ORDER BY year ASC, month ASC
	`)
	if err != nil {
		return attain.TargetConfig{}, fmt.Errorf("failed to query adjustments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			year, month  int
			daysJSON     string
			overA, overB sql.NullString
		)
		if err := rows.Scan(&year, &month, &daysJSON, &overA, &overB); err != nil {
			return attain.TargetConfig{}, fmt.Errorf("failed to scan adjustment: %w", err)
		}

		adj, err := adjustmentFromRow(year, month, daysJSON, overA, overB)
		if err != nil {
			return attain.TargetConfig{}, err
		}
		config.MonthlyAdjustments = append(config.MonthlyAdjustments, adj)
	}
	if err := rows.Err(); err != nil {
		return attain.TargetConfig{}, err
	}

	return config, nil
}

func adjustmentFromRow(year, month int, daysJSON string, overA, overB sql.NullString) (attain.MonthlyAdjustment, error) {
	var days []int
	if err := json.Unmarshal([]byte(daysJSON), &days); err != nil {
		return attain.MonthlyAdjustment{}, fmt.Errorf("corrupt working days for %d-%02d: %w", year, month, err)
	}

	adj := attain.MonthlyAdjustment{
		Year:        year,
		Month:       time.Month(month),
		WorkingDays: attain.NewDaySet(days...),
	}

	if overA.Valid {
		v, err := decimal.NewFromString(overA.String)
		if err != nil {
			return attain.MonthlyAdjustment{}, fmt.Errorf("corrupt override for %d-%02d: %w", year, month, err)
		}
		adj.LocationAOverride = &v
	}
	if overB.Valid {
		v, err := decimal.NewFromString(overB.String)
		if err != nil {
			return attain.MonthlyAdjustment{}, fmt.Errorf("corrupt override for %d-%02d: %w", year, month, err)
		}
		adj.LocationBOverride = &v
	}

	return adj, nil
}

// SaveTargetConfig replaces the stored configuration atomically. The
// adjustment rows are rewritten wholesale so removed months disappear.
func (s *Store) SaveTargetConfig(ctx context.Context, config attain.TargetConfig) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO target_config (id, location_a, location_b, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			location_a = excluded.location_a,
			location_b = excluded.location_b,
			updated_at = excluded.updated_at
	`, config.DefaultDailyTarget.LocationA.String(),
		config.DefaultDailyTarget.LocationB.String(),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save defaults: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM monthly_adjustments`); err != nil {
		return fmt.Errorf("failed to clear adjustments: %w", err)
	}

	for _, adj := range config.MonthlyAdjustments {
		daysJSON, err := json.Marshal(adj.WorkingDays.Days())
		if err != nil {
			return fmt.Errorf("failed to encode working days: %w", err)
		}

		var overA, overB sql.NullString
		if adj.LocationAOverride != nil {
			overA = sql.NullString{String: adj.LocationAOverride.String(), Valid: true}
		}
		if adj.LocationBOverride != nil {
			overB = sql.NullString{String: adj.LocationBOverride.String(), Valid: true}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO monthly_adjustments
				(year, month, working_days_json, location_a_override, location_b_override)
			VALUES (?, ?, ?, ?, ?)
		`, adj.Year, int(adj.Month), string(daysJSON), overA, overB)
		if err != nil {
			return fmt.Errorf("failed to save adjustment %d-%02d: %w", adj.Year, int(adj.Month), err)
		}
	}

	return tx.Commit()
}
