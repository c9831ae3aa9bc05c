package domain

import "fmt"

// MaxRouteDeliveries caps the number of stops on a single route,
// independent of the driver's remaining box capacity.
const MaxRouteDeliveries = 3

// Working accumulator for one driver during an allocation run.
// Tracks the deliveries assigned so far (in assignment order) and the
// remaining box capacity. Invariant: Remaining equals
// Driver.TotalBoxes minus the sum of assigned quantities, never negative.
// A DriverState lives for exactly one allocation call.
type DriverState struct {
	Driver    Driver
	Assigned  []Delivery
	Remaining int
}

func NewDriverState(d Driver) *DriverState {
	return &DriverState{Driver: d, Remaining: d.TotalBoxes}
}

// CanTake reports whether the delivery fits this driver's remaining
// capacity and route length.
func (s *DriverState) CanTake(d Delivery) bool {
	return s.Remaining >= d.Boxes && len(s.Assigned) < MaxRouteDeliveries
}

// Assign a delivery to this driver, consuming capacity.
func (s *DriverState) Assign(d Delivery) error {
	if len(s.Assigned) >= MaxRouteDeliveries {
		return fmt.Errorf("assign delivery: driver %q already has %d stops", s.Driver.Name, len(s.Assigned))
	}
	if d.Boxes > s.Remaining {
		return fmt.Errorf("assign delivery: driver %q has %d boxes remaining, need %d", s.Driver.Name, s.Remaining, d.Boxes)
	}

	s.Assigned = append(s.Assigned, d)
	s.Remaining -= d.Boxes
	return nil
}
