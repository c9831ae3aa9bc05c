package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"delivery-assignment-service/internal/platform/obs"
	"delivery-assignment-service/internal/ports"
)

// ErrRunInProgress is returned when another allocation run holds the
// lock. The run is aborted and reported to the caller, never queued.
var ErrRunInProgress = errors.New("allocation run already in progress")

// RunDeps carries the ports a full allocation run needs. The pipeline
// stays unaware of concrete adapters: CSV files, SQL stores and Redis
// locks all wire in the same way.
type RunDeps struct {
	Drivers    ports.RecordSource
	Deliveries ports.RecordSource
	Routes     ports.RecordSink
	Lock       ports.RunLock
	LockWait   time.Duration
}

// RunSummary reports what one allocation run produced.
type RunSummary struct {
	RunID                string
	Routes               int
	AssignedStops        int
	UnassignedDeliveries int
	UnassignedDrivers    int
}

// RunAllocation executes the full pipeline: acquire the run lock, read
// both rosters, allocate, write the route sheet, release. The lock is
// released on every exit path. The context applies to the I/O ports
// only; the allocation itself is a pure in-memory pass.
func RunAllocation(ctx context.Context, deps RunDeps) (_ RunSummary, err error) {
	runID := uuid.New().String()
	ctx = obs.WithRunID(ctx, runID)

	defer obs.Time(ctx, "allocation.run")(&err)

	ok, err := deps.Lock.TryAcquire(ctx, deps.LockWait)
	if err != nil {
		return RunSummary{}, fmt.Errorf("run allocation: acquire run lock: %w", err)
	}
	if !ok {
		return RunSummary{}, ErrRunInProgress
	}
	defer func() {
		if relErr := deps.Lock.Release(ctx); relErr != nil && err == nil {
			err = fmt.Errorf("run allocation: release run lock: %w", relErr)
		}
	}()

	driverRecs, err := deps.Drivers.ReadRecords(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("run allocation: read drivers: %w", err)
	}

	deliveryRecs, err := deps.Deliveries.ReadRecords(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("run allocation: read deliveries: %w", err)
	}

	res := AllocateRoutes(ParseDrivers(driverRecs), ParseDeliveries(deliveryRecs))

	if err := deps.Routes.WriteRecords(ctx, RouteRecords(res)); err != nil {
		return RunSummary{}, fmt.Errorf("run allocation: write routes: %w", err)
	}

	summary := RunSummary{
		RunID:                runID,
		Routes:               len(res.Routes),
		UnassignedDeliveries: len(res.UnassignedDeliveries),
		UnassignedDrivers:    len(res.UnassignedDrivers),
	}
	for _, r := range res.Routes {
		summary.AssignedStops += len(r.Stops)
	}

	log.Printf(
		"run_id=%s routes=%d stops=%d unassigned_deliveries=%d unassigned_drivers=%d",
		runID, summary.Routes, summary.AssignedStops,
		summary.UnassignedDeliveries, summary.UnassignedDrivers,
	)

	return summary, nil
}
