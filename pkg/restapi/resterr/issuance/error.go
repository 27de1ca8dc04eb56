/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"net/http"

	"github.com/vcissuer/issuer/pkg/restapi/resterr"
)

// issuanceErrorCode covers the issuer management API: credential offers,
// procedure creation and the signing pipeline.
type issuanceErrorCode string

const (
	// invalidCode - the transaction or continuation code is unknown or expired.
	invalidCode issuanceErrorCode = "invalid_code"

	// alreadyIssued - the transaction code was already redeemed for an offer.
	alreadyIssued issuanceErrorCode = "already_issued"

	// insufficientPermission - the caller credential does not grant the requested issuance.
	insufficientPermission issuanceErrorCode = "insufficient_permission"

	// parseError - the caller credential or the request payload could not be parsed.
	parseError issuanceErrorCode = "parse_error"

	// encodingError - a stage of the signing pipeline failed.
	encodingError issuanceErrorCode = "encoding_error"

	// invalidValue - a request parameter has an unsupported value.
	invalidValue issuanceErrorCode = "invalid_value"

	// conflict - the procedure is not in a state that allows the operation.
	conflict issuanceErrorCode = "conflict"
)

// Error represents an issuer management API error.
type Error = resterr.RFCError[issuanceErrorCode]

func NewInvalidCodeError(err error) *Error {
	return &Error{
		ErrorCode:  invalidCode,
		Err:        err,
		HTTPStatus: http.StatusNotFound,
	}
}

func NewAlreadyIssuedError(err error) *Error {
	return &Error{
		ErrorCode:  alreadyIssued,
		Err:        err,
		HTTPStatus: http.StatusConflict,
	}
}

func NewInsufficientPermissionError(err error) *Error {
	return &Error{
		ErrorCode:  insufficientPermission,
		Err:        err,
		HTTPStatus: http.StatusForbidden,
	}
}

func NewParseError(err error) *Error {
	return &Error{
		ErrorCode:  parseError,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewEncodingError(err error) *Error {
	return &Error{
		ErrorCode:  encodingError,
		Err:        err,
		HTTPStatus: http.StatusBadGateway,
	}
}

func NewInvalidValueError(err error) *Error {
	return &Error{
		ErrorCode:  invalidValue,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewConflictError(err error) *Error {
	return &Error{
		ErrorCode:  conflict,
		Err:        err,
		HTTPStatus: http.StatusConflict,
	}
}
