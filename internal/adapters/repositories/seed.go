package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"delivery-assignment-service/internal/adapters/tabular"
	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/ports"
)

// Roster seeding: import the driver and delivery sheets from CSV files
// into the store, replacing whatever roster was there. Rows flow
// through the same CSV source adapter the one-shot pipeline uses, so
// blank-row and BOM handling stay in one place.

const (
	sqliteDriverInsert   = `INSERT INTO drivers (pos, name, email, boxes) VALUES (?, ?, ?, ?);`
	sqliteDeliveryInsert = `INSERT INTO deliveries (pos, client, address, phone, boxes, ord, notes) VALUES (?, ?, ?, ?, ?, ?, ?);`

	sqlDriverInsert   = `INSERT INTO drivers (pos, name, email, boxes) VALUES ($1, $2, $3, $4);`
	sqlDeliveryInsert = `INSERT INTO deliveries (pos, client, address, phone, boxes, ord, notes) VALUES ($1, $2, $3, $4, $5, $6, $7);`
)

// SeedSqliteFromCSV loads both roster CSVs into a SQLite store.
func SeedSqliteFromCSV(ctx context.Context, db *sql.DB, driversPath, deliveriesPath string) error {
	return seedRoster(ctx, db, driversPath, deliveriesPath, sqliteDriverInsert, sqliteDeliveryInsert)
}

// SeedSQLFromCSV loads both roster CSVs into a Postgres store.
func SeedSQLFromCSV(ctx context.Context, db *sql.DB, driversPath, deliveriesPath string) error {
	return seedRoster(ctx, db, driversPath, deliveriesPath, sqlDriverInsert, sqlDeliveryInsert)
}

func seedRoster(ctx context.Context, db *sql.DB, driversPath, deliveriesPath, driverInsert, deliveryInsert string) error {
	driverRecs, err := tabular.NewCSVSource(driversPath).ReadRecords(ctx)
	if err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}

	deliveryRecs, err := tabular.NewCSVSource(deliveriesPath).ReadRecords(ctx)
	if err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed roster: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM drivers;`); err != nil {
		return fmt.Errorf("seed roster: clear drivers table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM deliveries;`); err != nil {
		return fmt.Errorf("seed roster: clear deliveries table: %w", err)
	}

	if err := insertDrivers(ctx, tx, driverInsert, driverRecs); err != nil {
		return err
	}
	if err := insertDeliveries(ctx, tx, deliveryInsert, deliveryRecs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed roster: commit tx: %w", err)
	}

	return nil
}

func insertDrivers(ctx context.Context, tx *sql.Tx, query string, recs []ports.Record) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed roster: prepare driver insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range recs {
		_, err := stmt.ExecContext(ctx,
			i+1,
			rec.Get(domain.ColDriver),
			rec.Get(domain.ColEmail),
			rec.Get(domain.ColBoxes),
		)
		if err != nil {
			return fmt.Errorf("seed roster: insert driver row %d: %w", i+1, err)
		}
	}

	return nil
}

func insertDeliveries(ctx context.Context, tx *sql.Tx, query string, recs []ports.Record) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed roster: prepare delivery insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range recs {
		_, err := stmt.ExecContext(ctx,
			i+1,
			rec.Get(domain.ColClient),
			rec.Get(domain.ColAddress),
			rec.Get(domain.ColPhone),
			rec.Get(domain.ColBoxes),
			rec.Get(domain.ColOrder),
			rec.Get(domain.ColNotes),
		)
		if err != nil {
			return fmt.Errorf("seed roster: insert delivery row %d: %w", i+1, err)
		}
	}

	return nil
}
