package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"delivery-assignment-service/internal/api/dto"
	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/platform/metrics"
	"delivery-assignment-service/internal/ports"
	"delivery-assignment-service/internal/services"
)

// RunHandler triggers allocation runs and serves the stored route sheet.
type RunHandler struct {
	Deps   services.RunDeps
	Routes ports.RecordSource
}

// Trigger runs the full pipeline: lock, read rosters, allocate, write
// routes, release. A run already holding the lock yields 409; the
// caller is expected to retry manually, the service never queues.
func (h *RunHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	deps := h.Deps

	// The body is optional; when present it must be a single JSON object.
	if r.Body != nil && r.ContentLength != 0 {
		var req dto.RunRequest

		dec := json.NewDecoder(r.Body)
		defer r.Body.Close()
		dec.DisallowUnknownFields()

		if err := dec.Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}

		if req.LockWaitMS != nil {
			ms := *req.LockWaitMS
			if ms < 0 || ms > 60000 {
				writeError(w, r, http.StatusBadRequest, "lock_wait_ms must be between 0 and 60000")
				return
			}
			deps.LockWait = time.Duration(ms) * time.Millisecond
		}
	}

	summary, err := services.RunAllocation(r.Context(), deps)
	if errors.Is(err, services.ErrRunInProgress) {
		metrics.AllocationRuns.WithLabelValues("conflict").Inc()
		writeError(w, r, http.StatusConflict, "another allocation run is in progress")
		return
	}
	if err != nil {
		metrics.AllocationRuns.WithLabelValues("error").Inc()
		log.Printf("allocation run failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.AllocationRuns.WithLabelValues("ok").Inc()
	metrics.AllocationRows.WithLabelValues("assigned").Add(float64(summary.AssignedStops))
	metrics.AllocationRows.WithLabelValues(domain.RouteMarkerUnassignedDelivery).Add(float64(summary.UnassignedDeliveries))
	metrics.AllocationRows.WithLabelValues(domain.RouteMarkerUnassignedDriver).Add(float64(summary.UnassignedDrivers))

	writeJSON(w, r, http.StatusOK, dto.RunResponse{
		RunID:                summary.RunID,
		Routes:               summary.Routes,
		AssignedStops:        summary.AssignedStops,
		UnassignedDeliveries: summary.UnassignedDeliveries,
		UnassignedDrivers:    summary.UnassignedDrivers,
	})
}

// ListRoutes returns the stored route sheet from the latest run, row
// by row. Empty before any run has completed.
func (h *RunHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	recs, err := h.Routes.ReadRecords(r.Context())
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.RouteRowResponse, 0, len(recs)),
	}
	for _, rec := range recs {
		res.Routes = append(res.Routes, dto.RouteRowResponse{
			Route:          rec.Get(domain.ColRoute),
			Driver:         rec.Get(domain.ColDriver),
			Email:          rec.Get(domain.ColEmail),
			Client:         rec.Get(domain.ColClient),
			Address:        rec.Get(domain.ColAddress),
			Phone:          rec.Get(domain.ColPhone),
			Boxes:          rec.Get(domain.ColBoxes),
			BoxesRemaining: rec.Get(domain.ColBoxesRemaining),
			Order:          rec.Get(domain.ColOrder),
			Notes:          rec.Get(domain.ColNotes),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
