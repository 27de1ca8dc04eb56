/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rfc6749 holds the error codes of the token endpoint.
//
// https://datatracker.ietf.org/doc/html/rfc6749#section-5.2
package rfc6749

import (
	"net/http"

	"github.com/vcissuer/issuer/pkg/restapi/resterr"
)

type rfc6749ErrorCode string

const (
	invalidRequest       rfc6749ErrorCode = "invalid_request"
	invalidGrant         rfc6749ErrorCode = "invalid_grant"
	unsupportedGrantType rfc6749ErrorCode = "unsupported_grant_type"
	// invalidToken comes from RFC 6750 and is returned for bad bearer tokens.
	invalidToken rfc6749ErrorCode = "invalid_token"
)

var httpStatus = map[rfc6749ErrorCode]int{
	invalidRequest:       http.StatusBadRequest,
	invalidGrant:         http.StatusBadRequest,
	unsupportedGrantType: http.StatusBadRequest,
	invalidToken:         http.StatusUnauthorized,
}

// Error is a token endpoint error. The public response shape is always used,
// so only error and error_description reach the wallet.
type Error = resterr.RFCError[rfc6749ErrorCode]

func newError(code rfc6749ErrorCode, err error) *Error {
	e := &Error{
		ErrorCode:      code,
		ErrorComponent: resterr.TokenSvcComponent,
		Err:            err,
		HTTPStatus:     httpStatus[code],
	}

	return e.UsePublicAPIResponse()
}

// NewInvalidRequestError reports a missing or malformed form parameter.
func NewInvalidRequestError(err error) *Error {
	return newError(invalidRequest, err)
}

// NewInvalidGrantError reports an unknown or expired pre-authorized code, or a tx_code mismatch.
func NewInvalidGrantError(err error) *Error {
	return newError(invalidGrant, err)
}

// NewUnsupportedGrantTypeError reports any grant other than the pre-authorized code grant.
func NewUnsupportedGrantTypeError(err error) *Error {
	return newError(unsupportedGrantType, err)
}

// NewInvalidTokenError reports a bearer access token that failed verification.
func NewInvalidTokenError(err error) *Error {
	return newError(invalidToken, err)
}
