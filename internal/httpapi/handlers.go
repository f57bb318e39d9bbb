package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/brewos-io/app/internal/demostate"
	"github.com/brewos-io/app/internal/models"
	"github.com/brewos-io/app/internal/synth"
)

// MachineClient is the live-machine boundary: used when demo mode is off.
type MachineClient interface {
	FetchDataset(ctx context.Context) (*models.DemoDataset, error)
}

// Handler serves demo state and telemetry to the BrewOS frontend. Every
// telemetry route resolves demo state from the request's own query
// parameters first, so a shared ?demo=true link works on any view.
type Handler struct {
	demo    *demostate.Controller
	engine  *synth.Engine
	machine MachineClient // may be nil when no machine is configured
	logger  *zap.Logger
}

func NewHandler(demo *demostate.Controller, engine *synth.Engine, machine MachineClient, logger *zap.Logger) *Handler {
	return &Handler{demo: demo, engine: engine, machine: machine, logger: logger}
}

type demoStateModel struct {
	Active bool `json:"active"`
}

// GET /app/api/v1/demo/state
// Consumes demo/exitDemo query params; may clear or set the durable flag and
// return an X-Replace-Location header for the SPA to apply.
func (h *Handler) DemoState(w http.ResponseWriter, r *http.Request) {
	active := h.isActive(w, r)
	writeJSON(w, http.StatusOK, Ok(demoStateModel{Active: active}))
}

// POST /app/api/v1/demo/activate
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.demo.Activate(r.Context()); err != nil {
		h.logger.Error("activate demo mode failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to persist demo state"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(demoStateModel{Active: true}))
}

// POST /app/api/v1/demo/deactivate
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.demo.Deactivate(r.Context()); err != nil {
		h.logger.Error("deactivate demo mode failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to persist demo state"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(demoStateModel{Active: false}))
}

// GET /app/api/v1/demo/logs
// Fixed first-paint content for the log viewer; served regardless of demo
// state so the viewer never renders empty.
func (h *Handler) DemoLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(h.engine.LogFeed()))
}

// GET /app/api/v1/telemetry/dataset
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Ok(ds))
}

// GET /app/api/v1/telemetry/brews
func (h *Handler) Brews(w http.ResponseWriter, r *http.Request) {
	if h.isActive(w, r) {
		writeJSON(w, http.StatusOK, Ok(h.engine.BrewHistory()))
		return
	}
	ds, ok := h.liveDataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Ok(ds.BrewHistory))
}

// GET /app/api/v1/telemetry/power
func (h *Handler) Power(w http.ResponseWriter, r *http.Request) {
	if h.isActive(w, r) {
		writeJSON(w, http.StatusOK, Ok(h.engine.PowerHistory()))
		return
	}
	ds, ok := h.liveDataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Ok(ds.PowerHistory))
}

// GET /app/api/v1/telemetry/daily
func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	if h.isActive(w, r) {
		writeJSON(w, http.StatusOK, Ok(h.engine.DailyHistory()))
		return
	}
	ds, ok := h.liveDataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Ok(ds.DailyHistory))
}

// GET /app/api/v1/telemetry/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.isActive(w, r) {
		writeJSON(w, http.StatusOK, Ok(h.engine.Statistics()))
		return
	}
	ds, ok := h.liveDataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Ok(ds.Stats))
}

func (h *Handler) isActive(w http.ResponseWriter, r *http.Request) bool {
	return h.demo.IsActive(r.Context(), demostate.NewRequestNav(w, r))
}

func (h *Handler) dataset(w http.ResponseWriter, r *http.Request) (*models.DemoDataset, bool) {
	if h.isActive(w, r) {
		ds := h.engine.Dataset()
		return &ds, true
	}
	return h.liveDataset(w, r)
}

// liveDataset proxies to the machine; a 503 envelope tells the frontend to
// offer demo mode instead of rendering an error page.
func (h *Handler) liveDataset(w http.ResponseWriter, r *http.Request) (*models.DemoDataset, bool) {
	if h.machine == nil {
		writeJSON(w, http.StatusServiceUnavailable, Fail("no machine connected"))
		return nil, false
	}
	ds, err := h.machine.FetchDataset(r.Context())
	if err != nil {
		h.logger.Warn("live machine fetch failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, Fail("machine unreachable"))
		return nil, false
	}
	return ds, true
}
