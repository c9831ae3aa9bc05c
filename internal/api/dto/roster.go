package dto

type DriverResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalBoxes int    `json:"total_boxes"`
}

type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

type DeliveryResponse struct {
	Client  string `json:"client"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Boxes   int    `json:"boxes"`
	Order   string `json:"order"`
	Notes   string `json:"notes"`
}

type ListDeliveriesResponse struct {
	Deliveries []DeliveryResponse `json:"deliveries"`
}
