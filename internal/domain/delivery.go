package domain

import "strings"

// Represents a single delivery order: a quantity of boxes bound for
// one client address. Order is the opaque ordering key from the input
// sheet and is carried through to the output untouched.
type Delivery struct {
	Client  string
	Address string
	Phone   string
	Boxes   int
	Order   string
	Notes   string
}

// A delivery row without an address is treated as blank and skipped.
func (d Delivery) Valid() bool { return strings.TrimSpace(d.Address) != "" }
