package api

import (
	"net/http"

	"delivery-assignment-service/internal/api/handlers"
	"delivery-assignment-service/internal/platform/metrics"
	"delivery-assignment-service/internal/ports"
	"delivery-assignment-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps services.RunDeps, routes ports.RecordSource) http.Handler {
	mux := http.NewServeMux()

	rosterHandler := &handlers.RosterHandler{
		Drivers:    deps.Drivers,
		Deliveries: deps.Deliveries,
	}
	runHandler := &handlers.RunHandler{
		Deps:   deps,
		Routes: routes,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/drivers", rosterHandler.ListDrivers)
	mux.HandleFunc("/deliveries", rosterHandler.ListDeliveries)
	mux.HandleFunc("/routes", runHandler.ListRoutes)
	mux.HandleFunc("/runs", runHandler.Trigger)
	mux.Handle("/metrics", metrics.Handler())

	return loggingMiddleware(mux)
}
