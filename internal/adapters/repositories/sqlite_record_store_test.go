package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/platform/obs"
	"delivery-assignment-service/internal/ports"
)

func routeRows(route, driver string) []ports.Record {
	rec := ports.NewRecord()
	rec.Set(domain.ColRoute, route)
	rec.Set(domain.ColDriver, driver)
	return []ports.Record{rec}
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := InitSchema(db); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestSeedAndReadRoster(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	drivers := writeCSV(t, dir, "drivers.csv",
		"Driver,Email,Boxes\nAna,ana@example.org,12\nBen,ben@example.org,8\n")
	deliveries := writeCSV(t, dir, "deliveries.csv",
		"Client,Address,Phone,Boxes,Order,Notes\nM. Alvarez,101 Birch Ln,555-0101,4,1,porch\n")

	if err := SeedSqliteFromCSV(ctx, db, drivers, deliveries); err != nil {
		t.Fatalf("seed: %v", err)
	}

	driverRecs, err := NewSqliteDriverSource(db).ReadRecords(ctx)
	if err != nil {
		t.Fatalf("read drivers: %v", err)
	}
	if len(driverRecs) != 2 {
		t.Fatalf("expected 2 driver records, got %d", len(driverRecs))
	}
	if driverRecs[0].Get(domain.ColDriver) != "Ana" || driverRecs[1].Get(domain.ColBoxes) != "8" {
		t.Errorf("driver cells wrong: %q, %q",
			driverRecs[0].Get(domain.ColDriver), driverRecs[1].Get(domain.ColBoxes))
	}

	deliveryRecs, err := NewSqliteDeliverySource(db).ReadRecords(ctx)
	if err != nil {
		t.Fatalf("read deliveries: %v", err)
	}
	if len(deliveryRecs) != 1 {
		t.Fatalf("expected 1 delivery record, got %d", len(deliveryRecs))
	}
	if deliveryRecs[0].Get(domain.ColNotes) != "porch" {
		t.Errorf("notes = %q, want porch", deliveryRecs[0].Get(domain.ColNotes))
	}

	// Reseeding replaces the roster rather than appending.
	if err := SeedSqliteFromCSV(ctx, db, drivers, deliveries); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	driverRecs, err = NewSqliteDriverSource(db).ReadRecords(ctx)
	if err != nil {
		t.Fatalf("read drivers after reseed: %v", err)
	}
	if len(driverRecs) != 2 {
		t.Errorf("reseed appended: %d driver records, want 2", len(driverRecs))
	}
}

func TestRouteSinkReplacesAndKeepsRunID(t *testing.T) {
	db := newTestDB(t)
	ctx := obs.WithRunID(context.Background(), "run-123")

	first := routeRows("1", "Ana")
	second := routeRows("2", "Ben")

	sink := NewSqliteRouteSink(db)
	if err := sink.WriteRecords(ctx, first); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := sink.WriteRecords(ctx, second); err != nil {
		t.Fatalf("second write: %v", err)
	}

	recs, err := NewSqliteRouteSource(db).ReadRecords(ctx)
	if err != nil {
		t.Fatalf("read routes: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected the second write to replace the first, got %d rows", len(recs))
	}
	if recs[0].Get(domain.ColDriver) != "Ben" {
		t.Errorf("driver = %q, want Ben", recs[0].Get(domain.ColDriver))
	}

	var runID string
	if err := db.QueryRow(`SELECT run_id FROM routes;`).Scan(&runID); err != nil {
		t.Fatalf("scan run id: %v", err)
	}
	if runID != "run-123" {
		t.Errorf("run_id = %q, want run-123", runID)
	}
}
