/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oidc4ci holds the error codes of the credential and deferred credential endpoints.
//
// https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0-ID1.html#section-7.3.1.2
package oidc4ci

import (
	"net/http"

	"github.com/vcissuer/issuer/pkg/restapi/resterr"
)

type oidc4ciErrorCode string

const (
	invalidCredentialRequest    oidc4ciErrorCode = "invalid_credential_request" //nolint:gosec
	unsupportedCredentialFormat oidc4ciErrorCode = "unsupported_credential_format"
	// invalidProof covers a missing proof and a proof not bound to a live c_nonce.
	invalidProof         oidc4ciErrorCode = "invalid_proof"
	issuancePending      oidc4ciErrorCode = "issuance_pending"
	invalidTransactionID oidc4ciErrorCode = "invalid_transaction_id"

	// Not defined by OIDC4VCI. Used by the caller-authenticated management API.
	unauthorized oidc4ciErrorCode = "unauthorized"
	notFound     oidc4ciErrorCode = "not_found"
)

var httpStatus = map[oidc4ciErrorCode]int{
	invalidCredentialRequest:    http.StatusBadRequest,
	unsupportedCredentialFormat: http.StatusBadRequest,
	invalidProof:                http.StatusBadRequest,
	issuancePending:             http.StatusBadRequest,
	invalidTransactionID:        http.StatusBadRequest,
	unauthorized:                http.StatusUnauthorized,
	notFound:                    http.StatusNotFound,
}

// Error represents an OIDC4VCI credential endpoint error.
type Error = resterr.RFCError[oidc4ciErrorCode]

func newError(code oidc4ciErrorCode, err error) *Error {
	return &Error{ErrorCode: code, Err: err, HTTPStatus: httpStatus[code]}
}

func NewInvalidCredentialRequestError(err error) *Error {
	return newError(invalidCredentialRequest, err)
}

func NewUnsupportedCredentialFormatError(err error) *Error {
	return newError(unsupportedCredentialFormat, err)
}

func NewInvalidProofError(err error) *Error {
	return newError(invalidProof, err)
}

// NewIssuancePendingError tells the wallet to retry the deferred credential request later.
func NewIssuancePendingError(err error) *Error {
	return newError(issuancePending, err)
}

func NewInvalidTransactionIDError(err error) *Error {
	return newError(invalidTransactionID, err)
}

func NewUnauthorizedError(err error) *Error {
	return newError(unauthorized, err)
}

func NewNotFoundError(err error) *Error {
	return newError(notFound, err)
}
