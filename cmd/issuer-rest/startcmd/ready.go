package startcmd

import (
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

const readinessEndpoint = "/ready"

type readinessStatus struct {
	Status string `json:"status"`
}

// readiness reports whether the instance accepts new issuance traffic. It is
// set once all routes are registered and cleared as soon as a shutdown signal
// arrives, so load balancers stop routing before in-flight requests drain.
type readiness struct {
	serving atomic.Bool
}

func registerReadiness(e *echo.Echo) *readiness {
	r := &readiness{}

	e.GET(readinessEndpoint, r.handle)

	return r
}

func (r *readiness) handle(c echo.Context) error {
	if !r.serving.Load() {
		return c.JSON(http.StatusServiceUnavailable, readinessStatus{Status: "draining"})
	}

	return c.JSON(http.StatusOK, readinessStatus{Status: "ready"})
}

func (r *readiness) markServing() {
	r.serving.Store(true)
}

func (r *readiness) markDraining() {
	if r != nil {
		r.serving.Store(false)
	}
}
