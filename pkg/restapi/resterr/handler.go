/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/vcissuer/issuer/internal/logfields"
)

var logger = log.New("rest-err")

const serverErrorCode = "server_error"

// statusError is implemented by every RFCError instantiation.
type statusError interface {
	error
	json.Marshaler
	StatusCode() int
}

// errorBody is the OAuth style body used for errors that are not RFCErrors.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// HTTPErrorHandler writes err as an OAuth style error response. RFCErrors render
// themselves. Any other error becomes a server_error whose cause is only logged.
func HTTPErrorHandler(err error, c echo.Context) {
	code, body := toResponse(err)

	req := c.Request()
	fields := []zap.Field{log.WithURL(req.RequestURI), log.WithHTTPStatus(code), log.WithError(err)}

	if code >= http.StatusInternalServerError {
		logger.Errorc(req.Context(), "Request failed", fields...)
	} else {
		logger.Warnc(req.Context(), "Request rejected", fields...)
	}

	if c.Response().Committed {
		return
	}

	var writeErr error

	if req.Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, body)
	}

	if writeErr != nil {
		logger.Error("Write http response", log.WithError(writeErr),
			logfields.WithAdditionalMessage("error response was not sent"))
	}
}

func toResponse(err error) (int, interface{}) {
	var se statusError
	if errors.As(err, &se) {
		return se.StatusCode(), se
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorBody{
			Error:       httpErrorCode(he.Code),
			Description: fmt.Sprint(he.Message),
		}
	}

	return http.StatusInternalServerError, errorBody{
		Error:       serverErrorCode,
		Description: http.StatusText(http.StatusInternalServerError),
	}
}

// httpErrorCode names the errors echo raises itself (routing, body limits, timeouts).
func httpErrorCode(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusRequestEntityTooLarge:
		return "request_too_large"
	case http.StatusUnsupportedMediaType:
		return "unsupported_media_type"
	case http.StatusTooManyRequests:
		return "too_many_requests"
	}

	if status >= http.StatusInternalServerError {
		return serverErrorCode
	}

	return "invalid_request"
}
