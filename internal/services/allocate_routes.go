package services

import (
	"slices"

	"delivery-assignment-service/internal/domain"
)

// AllocateRoutes assigns deliveries to drivers using a simple greedy heuristic.
//
// Deliveries are placed largest-first (hardest to fit later) into per-driver
// accumulators under two hard limits — remaining box capacity and the
// three-stop route cap — with a fairness gate that spreads load onto idle
// drivers instead of clustering everything on the first few. There is no
// backtracking: a single deterministic pass, predictable over optimal.
//
// It never fails. Blank rows (drivers without a name, deliveries without an
// address) are filtered out entirely; deliveries and drivers that cannot be
// matched come back as explicit unassigned entries in the result.
func AllocateRoutes(drivers []domain.Driver, deliveries []domain.Delivery) *domain.AllocationResult {
	validDrivers := make([]domain.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d.Valid() {
			validDrivers = append(validDrivers, d)
		}
	}

	validDeliveries := make([]domain.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if d.Valid() {
			validDeliveries = append(validDeliveries, d)
		}
	}

	// Sort indices, not the deliveries: unassigned rows are reported in
	// filtered input order, so the original sequence must survive.
	order := make([]int, len(validDeliveries))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return validDeliveries[b].Boxes - validDeliveries[a].Boxes
	})

	states := make([]*domain.DriverState, 0, len(validDrivers))
	for _, d := range validDrivers {
		states = append(states, domain.NewDriverState(d))
	}

	unassigned := make([]bool, len(validDeliveries))
	for _, i := range order {
		delivery := validDeliveries[i]

		target := selectDriver(states, delivery)
		if target == nil {
			unassigned[i] = true
			continue
		}

		// Cannot fail: selectDriver only returns states the delivery fits.
		_ = target.Assign(delivery)
	}

	return buildResult(states, validDeliveries, unassigned)
}

// selectDriver picks the driver state to receive a delivery, or nil when
// none qualifies. Evaluated fresh per delivery: earlier assignments change
// both the candidate set and the fairness gate.
func selectDriver(states []*domain.DriverState, delivery domain.Delivery) *domain.DriverState {
	numAssigned := 0
	for _, st := range states {
		if len(st.Assigned) > 0 {
			numAssigned++
		}
	}

	// With an odd number of active drivers and at least one idle driver,
	// only idle drivers may take this delivery. This forces every second
	// route onto a fresh driver rather than piling stops onto the first
	// drivers in the sheet. A lone driver is never gated.
	gateActive := numAssigned%2 == 1 && numAssigned < len(states)

	var best *domain.DriverState
	for _, st := range states {
		if !st.CanTake(delivery) {
			continue
		}
		if gateActive && len(st.Assigned) > 0 {
			continue
		}

		if best == nil {
			best = st
			continue
		}

		// Prefer consolidating onto a driver who already has a route;
		// among those, the first in input order wins.
		if len(best.Assigned) == 0 && len(st.Assigned) > 0 {
			best = st
		}
	}

	return best
}

func buildResult(states []*domain.DriverState, deliveries []domain.Delivery, unassigned []bool) *domain.AllocationResult {
	res := &domain.AllocationResult{
		Routes:               []domain.Route{},
		UnassignedDeliveries: []domain.Delivery{},
		UnassignedDrivers:    []domain.Driver{},
	}

	number := 0
	for _, st := range states {
		if len(st.Assigned) == 0 {
			res.UnassignedDrivers = append(res.UnassignedDrivers, st.Driver)
			continue
		}

		number++
		route := domain.Route{
			Number: number,
			Driver: st.Driver,
			Stops:  make([]domain.Stop, 0, len(st.Assigned)),
		}

		// Recompute the running remaining capacity stop by stop so the
		// printed column always matches the stop sequence.
		remaining := st.Driver.TotalBoxes
		for _, d := range st.Assigned {
			remaining -= d.Boxes
			route.Stops = append(route.Stops, domain.Stop{Delivery: d, BoxesRemaining: remaining})
		}

		res.Routes = append(res.Routes, route)
	}

	for i, d := range deliveries {
		if unassigned[i] {
			res.UnassignedDeliveries = append(res.UnassignedDeliveries, d)
		}
	}

	return res
}
