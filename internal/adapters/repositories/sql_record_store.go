package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/platform/obs"
	"delivery-assignment-service/internal/ports"
)

// Postgres-backed twins of the SQLite record stores, for deployments
// where the rosters live in a shared database. Same tables, same
// record shapes; Postgres placeholder syntax.

type SQLDriverSource struct{ DB *sql.DB }

func NewSQLDriverSource(db *sql.DB) *SQLDriverSource {
	return &SQLDriverSource{DB: db}
}

func (s *SQLDriverSource) ReadRecords(ctx context.Context) (_ []ports.Record, err error) {
	defer obs.Time(ctx, "drivers.sql.read")(&err)

	if s.DB == nil {
		return nil, errors.New("sql driver source: DB is nil")
	}

	query := `
	SELECT name, email, boxes
	FROM drivers
	ORDER BY pos;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	recs := make([]ports.Record, 0, 16)
	for rows.Next() {
		var name, email, boxes string
		if err := rows.Scan(&name, &email, &boxes); err != nil {
			return nil, fmt.Errorf("read drivers: scan row: %w", err)
		}

		rec := ports.NewRecord()
		rec.Set(domain.ColDriver, name)
		rec.Set(domain.ColEmail, email)
		rec.Set(domain.ColBoxes, boxes)
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read drivers: row iteration: %w", err)
	}

	return recs, nil
}

type SQLDeliverySource struct{ DB *sql.DB }

func NewSQLDeliverySource(db *sql.DB) *SQLDeliverySource {
	return &SQLDeliverySource{DB: db}
}

func (s *SQLDeliverySource) ReadRecords(ctx context.Context) (_ []ports.Record, err error) {
	defer obs.Time(ctx, "deliveries.sql.read")(&err)

	if s.DB == nil {
		return nil, errors.New("sql delivery source: DB is nil")
	}

	query := `
	SELECT client, address, phone, boxes, ord, notes
	FROM deliveries
	ORDER BY pos;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read deliveries: query deliveries table: %w", err)
	}
	defer rows.Close()

	recs := make([]ports.Record, 0, 64)
	for rows.Next() {
		var client, address, phone, boxes, ord, notes string
		if err := rows.Scan(&client, &address, &phone, &boxes, &ord, &notes); err != nil {
			return nil, fmt.Errorf("read deliveries: scan row: %w", err)
		}

		rec := ports.NewRecord()
		rec.Set(domain.ColClient, client)
		rec.Set(domain.ColAddress, address)
		rec.Set(domain.ColPhone, phone)
		rec.Set(domain.ColBoxes, boxes)
		rec.Set(domain.ColOrder, ord)
		rec.Set(domain.ColNotes, notes)
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read deliveries: row iteration: %w", err)
	}

	return recs, nil
}

type SQLRouteSink struct{ DB *sql.DB }

func NewSQLRouteSink(db *sql.DB) *SQLRouteSink {
	return &SQLRouteSink{DB: db}
}

func (s *SQLRouteSink) WriteRecords(ctx context.Context, recs []ports.Record) (err error) {
	defer obs.Time(ctx, "routes.sql.write")(&err)

	if s.DB == nil {
		return errors.New("sql route sink: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write routes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM routes;`); err != nil {
		return fmt.Errorf("write routes: clear routes table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO routes (
		pos, run_id, route, driver, email, client,
		address, phone, boxes, boxes_remaining, ord, notes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`)
	if err != nil {
		return fmt.Errorf("write routes: prepare insert: %w", err)
	}
	defer stmt.Close()

	runID := obs.RunID(ctx)
	for i, rec := range recs {
		_, err := stmt.ExecContext(ctx,
			i+1, runID,
			rec.Get(domain.ColRoute),
			rec.Get(domain.ColDriver),
			rec.Get(domain.ColEmail),
			rec.Get(domain.ColClient),
			rec.Get(domain.ColAddress),
			rec.Get(domain.ColPhone),
			rec.Get(domain.ColBoxes),
			rec.Get(domain.ColBoxesRemaining),
			rec.Get(domain.ColOrder),
			rec.Get(domain.ColNotes),
		)
		if err != nil {
			return fmt.Errorf("write routes: insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write routes: commit tx: %w", err)
	}

	return nil
}

type SQLRouteSource struct{ DB *sql.DB }

func NewSQLRouteSource(db *sql.DB) *SQLRouteSource {
	return &SQLRouteSource{DB: db}
}

func (s *SQLRouteSource) ReadRecords(ctx context.Context) (_ []ports.Record, err error) {
	defer obs.Time(ctx, "routes.sql.read")(&err)

	if s.DB == nil {
		return nil, errors.New("sql route source: DB is nil")
	}

	query := `
	SELECT route, driver, email, client, address, phone,
		boxes, boxes_remaining, ord, notes
	FROM routes
	ORDER BY pos;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read routes: query routes table: %w", err)
	}
	defer rows.Close()

	recs := make([]ports.Record, 0, 64)
	for rows.Next() {
		var route, driver, email, client, address, phone string
		var boxes, remaining, ord, notes string
		err := rows.Scan(&route, &driver, &email, &client, &address, &phone,
			&boxes, &remaining, &ord, &notes)
		if err != nil {
			return nil, fmt.Errorf("read routes: scan row: %w", err)
		}

		rec := ports.NewRecord()
		rec.Set(domain.ColRoute, route)
		rec.Set(domain.ColDriver, driver)
		rec.Set(domain.ColEmail, email)
		rec.Set(domain.ColClient, client)
		rec.Set(domain.ColAddress, address)
		rec.Set(domain.ColPhone, phone)
		rec.Set(domain.ColBoxes, boxes)
		rec.Set(domain.ColBoxesRemaining, remaining)
		rec.Set(domain.ColOrder, ord)
		rec.Set(domain.ColNotes, notes)
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read routes: row iteration: %w", err)
	}

	return recs, nil
}
