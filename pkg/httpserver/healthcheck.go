package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
)

// HealthCheckFunc reports the health of a single dependency.
type HealthCheckFunc func(context.Context) error

// HealthCheckHandler returns a handler that runs the given checks and
// responds 200 when all pass or 503 with the failing check names otherwise.
// Suitable for both liveness and readiness probes.
func HealthCheckHandler(checks map[string]HealthCheckFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		failed := make(map[string]string)
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				failed[name] = err.Error()
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if len(failed) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "unhealthy", "checks": failed})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	}
}
