/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/restapi/resterr/issuance"
)

var logger = log.New("logapi")

const maxSpecLength = 4096

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Controller changes log levels of a running issuer.
type Controller struct{}

// NewController registers GET and POST /loglevels. auth guards both routes.
func NewController(r router, auth echo.MiddlewareFunc) *Controller {
	c := &Controller{}

	r.GET("/loglevels", c.GetLogLevels, auth)
	r.POST("/loglevels", c.PostLogLevels, auth)

	return c
}

// GetLogLevels returns the current spec, e.g. "issuance=DEBUG:INFO".
func (c *Controller) GetLogLevels(e echo.Context) error {
	return e.String(http.StatusOK, log.GetSpec())
}

// PostLogLevels replaces the log spec with the plain-text request body.
func (c *Controller) PostLogLevels(e echo.Context) error {
	b, err := io.ReadAll(io.LimitReader(e.Request().Body, maxSpecLength))
	if err != nil {
		return issuance.NewInvalidValueError(err).WithIncorrectValue("requestBody")
	}

	spec := strings.TrimSpace(string(b))
	if spec == "" {
		return issuance.NewInvalidValueError(errors.New("log spec is required")).WithIncorrectValue("requestBody")
	}

	if err = log.SetSpec(spec); err != nil {
		return issuance.NewInvalidValueError(err).WithIncorrectValue(spec)
	}

	logger.Infoc(e.Request().Context(), "Log levels changed", logfields.WithUserLogLevel(spec))

	return e.NoContent(http.StatusNoContent)
}
