package domain

// Canonical sheet column names, shared by the roster inputs and the
// route output. The input sheets use a subset (drivers: Driver, Email,
// Boxes; deliveries: Client, Address, Phone, Boxes, Order, Notes); the
// output sheet uses all ten.
const (
	ColRoute          = "Route"
	ColDriver         = "Driver"
	ColEmail          = "Email"
	ColClient         = "Client"
	ColAddress        = "Address"
	ColPhone          = "Phone"
	ColBoxes          = "Boxes"
	ColBoxesRemaining = "Boxes Remaining"
	ColOrder          = "Order"
	ColNotes          = "Notes"
)
