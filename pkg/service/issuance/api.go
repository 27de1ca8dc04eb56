/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/vcissuer/issuer/pkg/credential"
)

var (
	// ErrInvalidCredentialRequest covers malformed credential requests and
	// access tokens no longer bound to a pending procedure.
	ErrInvalidCredentialRequest = errors.New("invalid credential request")
	// ErrInvalidProof is returned when the proof nonce is not accepted.
	ErrInvalidProof = errors.New("invalid proof")
	// ErrIssuancePending is returned while a deferred credential is not signed yet.
	ErrIssuancePending = errors.New("issuance pending")
	// ErrInvalidTransactionID is returned for unknown or already redeemed deferred transactions.
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	// ErrNoDeferredIssuance is returned when a procedure has no deferred transaction.
	ErrNoDeferredIssuance = errors.New("procedure has no pending deferred issuance")
)

// ProofTypeJWT is the only accepted proof type.
const ProofTypeJWT = "jwt"

// CreateCredentialRequest asks for a credential to be issued to a holder.
type CreateCredentialRequest struct {
	Schema        string          `json:"schema"`
	OperationMode string          `json:"operation_mode,omitempty"`
	ResponseURI   string          `json:"response_uri,omitempty"`
	Email         string          `json:"email,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// CreateCredentialResult identifies the created procedure.
type CreateCredentialResult struct {
	ProcedureID  string `json:"procedure_id"`
	CredentialID string `json:"credential_id"`
}

// Proof is the proof of possession sent with a credential request.
type Proof struct {
	ProofType string `json:"proof_type"`
	JWT       string `json:"jwt"`
}

// CredentialRequest is the body of the credential endpoint.
type CredentialRequest struct {
	Format string `json:"format"`
	Proof  *Proof `json:"proof"`
}

// CredentialResponse carries either the signed credential or a deferred transaction id.
type CredentialResponse struct {
	Credential      string `json:"credential,omitempty"`
	TransactionID   string `json:"transaction_id,omitempty"`
	CNonce          string `json:"c_nonce"`
	CNonceExpiresIn int64  `json:"c_nonce_expires_in"`
}

// ProcedureSummary is a procedure as listed to its organization.
type ProcedureSummary struct {
	ProcedureID    string            `json:"procedure_id"`
	CredentialID   string            `json:"credential_id"`
	CredentialType string            `json:"credential_type"`
	Status         credential.Status `json:"status"`
	ValidUntil     time.Time         `json:"valid_until"`
	UpdatedAt      time.Time         `json:"updated"`
}
