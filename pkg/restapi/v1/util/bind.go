/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vcissuer/issuer/pkg/restapi/resterr/issuance"
)

// Bind decodes the request body into a new T. Decoding failures are reported as
// an invalid_value error pointing at the request body.
func Bind[T any](ctx echo.Context) (*T, error) {
	body := new(T)

	if err := ctx.Bind(body); err != nil {
		return nil, issuance.NewInvalidValueError(err).WithIncorrectValue("requestBody")
	}

	return body, nil
}

// RespondOpt adjusts a JSON response before it is written.
type RespondOpt func(h http.Header)

// NoStore marks a response as uncacheable, as required for token responses (RFC 6749 section 5.1).
func NoStore() RespondOpt {
	return func(h http.Header) {
		h.Set("Cache-Control", "no-store")
		h.Set("Pragma", "no-cache")
	}
}

// Respond writes v as JSON with the given status code.
func Respond(ctx echo.Context, code int, v interface{}, opts ...RespondOpt) error {
	for _, opt := range opts {
		opt(ctx.Response().Header())
	}

	return ctx.JSON(code, v)
}
