package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"delivery-assignment-service/internal/api/dto"
	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/ports"
	"delivery-assignment-service/internal/services"
)

type stubSource struct{ recs []ports.Record }

func (s *stubSource) ReadRecords(ctx context.Context) ([]ports.Record, error) {
	return s.recs, nil
}

type stubSink struct{ written []ports.Record }

func (s *stubSink) WriteRecords(ctx context.Context, recs []ports.Record) error {
	s.written = recs
	return nil
}

type stubLock struct{ held bool }

func (l *stubLock) TryAcquire(ctx context.Context, wait time.Duration) (bool, error) {
	if l.held {
		return false, nil
	}
	l.held = true
	return true, nil
}

func (l *stubLock) Release(ctx context.Context) error {
	l.held = false
	return nil
}

func rosterFixture() (drivers, deliveries *stubSource) {
	d := ports.NewRecord()
	d.Set(domain.ColDriver, "Ana")
	d.Set(domain.ColEmail, "ana@example.org")
	d.Set(domain.ColBoxes, "10")

	v := ports.NewRecord()
	v.Set(domain.ColClient, "M. Alvarez")
	v.Set(domain.ColAddress, "101 Birch Ln")
	v.Set(domain.ColBoxes, "4")

	return &stubSource{recs: []ports.Record{d}}, &stubSource{recs: []ports.Record{v}}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestListDrivers(t *testing.T) {
	drivers, deliveries := rosterFixture()
	h := &RosterHandler{Drivers: drivers, Deliveries: deliveries}

	req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
	rec := httptest.NewRecorder()
	h.ListDrivers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListDriversResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(res.Drivers) != 1 || res.Drivers[0].Name != "Ana" || res.Drivers[0].TotalBoxes != 10 {
		t.Errorf("drivers = %+v", res.Drivers)
	}
}

func TestTriggerRun(t *testing.T) {
	drivers, deliveries := rosterFixture()
	sink := &stubSink{}
	h := &RunHandler{
		Deps: services.RunDeps{
			Drivers:    drivers,
			Deliveries: deliveries,
			Routes:     sink,
			Lock:       &stubLock{},
			LockWait:   time.Second,
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/runs", nil)
	rec := httptest.NewRecorder()
	h.Trigger(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.RunResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if res.RunID == "" || res.Routes != 1 || res.AssignedStops != 1 {
		t.Errorf("response = %+v", res)
	}
	if len(sink.written) != 1 {
		t.Errorf("sink got %d rows, want 1", len(sink.written))
	}
}

func TestTriggerRunConflict(t *testing.T) {
	drivers, deliveries := rosterFixture()
	h := &RunHandler{
		Deps: services.RunDeps{
			Drivers:    drivers,
			Deliveries: deliveries,
			Routes:     &stubSink{},
			Lock:       &stubLock{held: true},
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/runs", nil)
	rec := httptest.NewRecorder()
	h.Trigger(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestTriggerRunRejectsUnknownFields(t *testing.T) {
	h := &RunHandler{}

	req := httptest.NewRequest(http.MethodPost, "/runs", strings.NewReader(`{"nope":1}`))
	rec := httptest.NewRecorder()
	h.Trigger(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTriggerRunMethodGuard(t *testing.T) {
	h := &RunHandler{}

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	h.Trigger(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Errorf("Allow = %q, want POST", rec.Header().Get("Allow"))
	}
}

func TestListRoutes(t *testing.T) {
	row := ports.NewRecord()
	row.Set(domain.ColRoute, "1")
	row.Set(domain.ColDriver, "Ana")
	row.Set(domain.ColBoxesRemaining, "6")

	h := &RunHandler{Routes: &stubSource{recs: []ports.Record{row}}}

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.ListRoutes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListRoutesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(res.Routes) != 1 || res.Routes[0].Driver != "Ana" || res.Routes[0].BoxesRemaining != "6" {
		t.Errorf("routes = %+v", res.Routes)
	}
}
