package httpx

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.Database and events.EventBus both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies probed by the health endpoint.
// Database is required; EventBus may be nil.
type HealthChecks struct {
	Database HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	DBStatus string `json:"dbStatus"`
	Uptime   string `json:"uptime"`
}

// HealthHandler returns an http.HandlerFunc reporting store connectivity and
// process uptime. An unreachable store yields 503; an unreachable event bus
// only degrades status, since the CRUD surface keeps working without it.
func HealthHandler(checks HealthChecks, startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   "Server is working",
			DBStatus: "Connected",
			Uptime:   fmt.Sprintf("%ds", int(time.Since(startTime).Seconds())),
		}
		status := http.StatusOK

		if err := checks.Database.Ping(ctx); err != nil {
			resp.Status = "Server is degraded"
			resp.DBStatus = "Disconnected"
			status = http.StatusServiceUnavailable
		} else if checks.EventBus != nil {
			if err := checks.EventBus.Ping(ctx); err != nil {
				resp.Status = "Server is degraded"
			}
		}

		JSON(w, status, resp)
	}
}
