/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
)

var logger = log.New("healthcheck")

// Pinger is a dependency probed by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckResponse is the health check status.
type HealthCheckResponse struct {
	Status      string            `json:"status"`
	CurrentTime *time.Time        `json:"currentTime,omitempty"`
	Failures    map[string]string `json:"failures,omitempty"`
}

// Controller for health check API.
type Controller struct {
	// Dependencies are pinged on every check, keyed by the name reported on failure.
	Dependencies map[string]Pinger
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	currentTime := time.Now()

	failures := map[string]string{}

	for name, dep := range c.Dependencies {
		if err := dep.Ping(ctx.Request().Context()); err != nil {
			logger.Warnc(ctx.Request().Context(), "Health check dependency unavailable",
				logfields.WithService(name), log.WithError(err))

			failures[name] = err.Error()
		}
	}

	if len(failures) > 0 {
		return ctx.JSON(http.StatusServiceUnavailable,
			HealthCheckResponse{Status: "failure", CurrentTime: &currentTime, Failures: failures})
	}

	return ctx.JSON(http.StatusOK, HealthCheckResponse{Status: "success", CurrentTime: &currentTime})
}
