package domain

import "strings"

// Represents a volunteer driver able to carry boxes on one route.
// Capacity is the total number of boxes the driver signed up for,
// not a per-stop limit.
type Driver struct {
	Name       string
	Email      string
	TotalBoxes int
}

// A driver row without a name is treated as blank and skipped.
func (d Driver) Valid() bool { return strings.TrimSpace(d.Name) != "" }
