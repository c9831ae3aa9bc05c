package handlers

import (
	"log"
	"net/http"

	"delivery-assignment-service/internal/api/dto"
	"delivery-assignment-service/internal/ports"
	"delivery-assignment-service/internal/services"
)

// RosterHandler exposes read-only roster listing endpoints.
type RosterHandler struct {
	Drivers    ports.RecordSource
	Deliveries ports.RecordSource
}

func (h *RosterHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	recs, err := h.Drivers.ReadRecords(r.Context())
	if err != nil {
		log.Printf("list drivers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	drivers := services.ParseDrivers(recs)
	res := dto.ListDriversResponse{
		Drivers: make([]dto.DriverResponse, 0, len(drivers)),
	}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.DriverResponse{
			Name:       d.Name,
			Email:      d.Email,
			TotalBoxes: d.TotalBoxes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RosterHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	recs, err := h.Deliveries.ReadRecords(r.Context())
	if err != nil {
		log.Printf("list deliveries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	deliveries := services.ParseDeliveries(recs)
	res := dto.ListDeliveriesResponse{
		Deliveries: make([]dto.DeliveryResponse, 0, len(deliveries)),
	}
	for _, d := range deliveries {
		res.Deliveries = append(res.Deliveries, dto.DeliveryResponse{
			Client:  d.Client,
			Address: d.Address,
			Phone:   d.Phone,
			Boxes:   d.Boxes,
			Order:   d.Order,
			Notes:   d.Notes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
