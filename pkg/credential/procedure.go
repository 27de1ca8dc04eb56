/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"
	"time"
)

// Procedure is one issuance attempt of a credential.
type Procedure struct {
	ProcedureID            string
	CredentialID           string
	Type                   Type
	CredentialDecoded      string
	CredentialEncoded      string
	Status                 Status
	OrganizationIdentifier string
	ValidUntil             time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// OperationMode controls whether a credential is signed while the wallet waits.
type OperationMode string

const (
	OperationModeSync  OperationMode = "S"
	OperationModeAsync OperationMode = "A"
)

// ParseOperationMode validates s. An empty value defaults to synchronous signing.
func ParseOperationMode(s string) (OperationMode, error) {
	switch OperationMode(s) {
	case "":
		return OperationModeSync, nil
	case OperationModeSync, OperationModeAsync:
		return OperationMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperationMode, s)
	}
}

// OfferState is the position of a procedure in the credential offer workflow.
type OfferState string

const (
	OfferStateNoOffer               OfferState = "NO_OFFER"
	OfferStateTransactionCodeIssued OfferState = "TRANSACTION_CODE_ISSUED"
	OfferStatePreAuthBound          OfferState = "PRE_AUTH_BOUND"
	OfferStateOfferCached           OfferState = "OFFER_CACHED"
	OfferStateOfferRedeemed         OfferState = "OFFER_REDEEMED"
	OfferStateOfferRenewed          OfferState = "OFFER_RENEWED"
	OfferStateOfferRedeemedRenewed  OfferState = "OFFER_REDEEMED_RENEWED"
)

var offerTransitions = map[OfferState][]OfferState{
	OfferStateNoOffer:               {OfferStateTransactionCodeIssued},
	OfferStateTransactionCodeIssued: {OfferStatePreAuthBound},
	OfferStatePreAuthBound:          {OfferStateOfferCached, OfferStateOfferRenewed},
	OfferStateOfferCached:           {OfferStateOfferRedeemed, OfferStatePreAuthBound},
	OfferStateOfferRedeemed:         {OfferStatePreAuthBound},
	OfferStateOfferRenewed:          {OfferStateOfferRedeemedRenewed},
}

// CanTransitionTo reports whether the workflow may move from s to next.
func (s OfferState) CanTransitionTo(next OfferState) bool {
	for _, allowed := range offerTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// DeferredMetadata chains a procedure to its transaction code, pre-authorized
// code (auth server nonce), deferred transaction id and resulting credential.
type DeferredMetadata struct {
	ID              string
	ProcedureID     string
	TransactionCode string
	AuthServerNonce string
	TransactionID   string
	VC              string
	VCFormat        Format
	OperationMode   OperationMode
	ResponseURI     string
	State           OfferState
	// Renewed is set once the continuation code has been used.
	Renewed   bool
	UpdatedAt time.Time
}
