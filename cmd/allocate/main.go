package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"delivery-assignment-service/internal/adapters/lock"
	"delivery-assignment-service/internal/adapters/tabular"
	"delivery-assignment-service/internal/config"
	"delivery-assignment-service/internal/services"
)

// One-shot CSV-to-CSV allocation run, for cron jobs and operators who
// keep the rosters in plain files. Reads the run config, executes the
// pipeline once, and prints the summary.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	configPath := flag.String("config", "allocate.yaml", "path to the YAML run config")
	flag.Parse()

	cfg, err := config.LoadRunConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	deps := services.RunDeps{
		Drivers:    tabular.NewCSVSource(cfg.DriversCSV),
		Deliveries: tabular.NewCSVSource(cfg.DeliveriesCSV),
		Routes:     tabular.NewCSVSink(cfg.RoutesCSV),
		Lock:       lock.NewLocalRunLock(),
		LockWait:   time.Duration(cfg.LockWaitMS) * time.Millisecond,
	}

	summary, err := services.RunAllocation(context.Background(), deps)
	if errors.Is(err, services.ErrRunInProgress) {
		log.Fatal("another allocation run is in progress; not queuing")
	}
	if err != nil {
		log.Fatal(err)
	}

	log.Printf(
		"Wrote %s: run_id=%s routes=%d stops=%d unassigned_deliveries=%d unassigned_drivers=%d",
		cfg.RoutesCSV, summary.RunID, summary.Routes, summary.AssignedStops,
		summary.UnassignedDeliveries, summary.UnassignedDrivers,
	)
}
