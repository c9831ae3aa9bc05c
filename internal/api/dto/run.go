package dto

type RunRequest struct {
	// Optional override for how long the run waits on the lock.
	LockWaitMS *int `json:"lock_wait_ms"`
}

type RunResponse struct {
	RunID                string `json:"run_id"`
	Routes               int    `json:"routes"`
	AssignedStops        int    `json:"assigned_stops"`
	UnassignedDeliveries int    `json:"unassigned_deliveries"`
	UnassignedDrivers    int    `json:"unassigned_drivers"`
}

// One row of the route sheet, loosely typed exactly as stored: marker
// rows leave driver or delivery fields empty.
type RouteRowResponse struct {
	Route          string `json:"route"`
	Driver         string `json:"driver"`
	Email          string `json:"email"`
	Client         string `json:"client"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Boxes          string `json:"boxes"`
	BoxesRemaining string `json:"boxes_remaining"`
	Order          string `json:"order"`
	Notes          string `json:"notes"`
}

type ListRoutesResponse struct {
	Routes []RouteRowResponse `json:"routes"`
}
