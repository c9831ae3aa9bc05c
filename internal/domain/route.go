package domain

// Markers written to the Route column for rows that carry a reported
// failure instead of an assignment. They are data, not errors: an
// allocation run never fails because a delivery or driver could not
// be matched.
const (
	RouteMarkerUnassignedDelivery = "unassigned-delivery"
	RouteMarkerUnassignedDriver   = "unassigned-driver"
)

// Represents one stop on a driver's route: the delivery plus the boxes
// the driver still has on board after making it. BoxesRemaining is
// recomputed from the driver's total by walking stops in assignment
// order, so it always agrees with the stop sequence as printed.
type Stop struct {
	Delivery       Delivery
	BoxesRemaining int
}

// Represents the planned route for a single driver: the ordered stops
// assigned in one allocation run. Numbers start at 1 and follow driver
// input order over drivers that received at least one delivery.
// It is immutable output data and contains no side effects.
type Route struct {
	Number int
	Driver Driver
	Stops  []Stop
}

// The complete outcome of one allocation run. Unassigned deliveries
// keep their filtered input order (pre-sort); unassigned drivers keep
// driver input order. Every valid input row appears in exactly one of
// the three lists.
type AllocationResult struct {
	Routes               []Route
	UnassignedDeliveries []Delivery
	UnassignedDrivers    []Driver
}
