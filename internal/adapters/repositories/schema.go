package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the roster and route tables. The statements are kept to
// the SQL subset both SQLite and Postgres accept, so one schema serves
// both store flavors. Idempotent: safe to run on every startup.
//
// Roster rows keep their sheet order through the pos key; cells stay
// TEXT so the stores round-trip records exactly like the CSV adapters
// (typed conversion happens once, at ingestion). The column holding
// the input ordering key is named ord because ORDER is reserved.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		pos INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		boxes TEXT NOT NULL
	);
	`

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		pos INTEGER PRIMARY KEY,
		client TEXT NOT NULL,
		address TEXT NOT NULL,
		phone TEXT NOT NULL,
		boxes TEXT NOT NULL,
		ord TEXT NOT NULL,
		notes TEXT NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		pos INTEGER PRIMARY KEY,
		run_id TEXT NOT NULL,
		route TEXT NOT NULL,
		driver TEXT NOT NULL,
		email TEXT NOT NULL,
		client TEXT NOT NULL,
		address TEXT NOT NULL,
		phone TEXT NOT NULL,
		boxes TEXT NOT NULL,
		boxes_remaining TEXT NOT NULL,
		ord TEXT NOT NULL,
		notes TEXT NOT NULL
	);
	`

	createRunIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_routes_run_id
	ON routes(run_id);
	`

	statements := []string{
		createDriversQuery,
		createDeliveriesQuery,
		createRoutesQuery,
		createRunIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
