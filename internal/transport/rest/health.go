package rest

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

// Pinger is anything /ready and /health can probe: the Postgres pool,
// the Redis rate limiter.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the root banner and the probe endpoints.
type HealthHandler struct {
	version string
	checks  map[string]Pinger
	names   []string
}

// NewHealthHandler registers named dependency checks. Nil checks are skipped.
func NewHealthHandler(version string, checks map[string]Pinger) *HealthHandler {
	h := &HealthHandler{version: version, checks: make(map[string]Pinger, len(checks))}
	for name, c := range checks {
		if c == nil {
			continue
		}
		h.checks[name] = c
		h.names = append(h.names, name)
	}
	sort.Strings(h.names)
	return h
}

type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Root answers GET / so a bare deployment can be checked by hand.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "ClearCare backend is running",
	})
}

// Live never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 503 as soon as any dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	for _, c := range components {
		if c.Status != "ok" {
			status, code = "down", http.StatusServiceUnavailable
			break
		}
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports every dependency with its ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	for _, c := range components {
		if c.Status != "ok" {
			status, code = "down", http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe pings all checks concurrently under one shared timeout.
func (h *HealthHandler) probe(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string]CompStatus, len(h.names))
	)
	for _, name := range h.names {
		wg.Add(1)
		go func(name string, c Pinger) {
			defer wg.Done()

			start := time.Now()
			err := c.Ping(ctx)
			latency := time.Since(start)

			st := CompStatus{Status: "ok", Latency: latency.String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}

			mu.Lock()
			out[name] = st
			mu.Unlock()
		}(name, h.checks[name])
	}
	wg.Wait()
	return out
}
