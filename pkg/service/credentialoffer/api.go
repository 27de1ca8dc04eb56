/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialoffer

import (
	"errors"

	"github.com/vcissuer/issuer/pkg/service/preauth"
)

var (
	// ErrInvalidCode is returned for transaction and continuation codes that are unknown or expired.
	ErrInvalidCode = errors.New("invalid transaction code")
	// ErrAlreadyIssued is returned when a code was already exchanged for an offer.
	ErrAlreadyIssued = errors.New("credential offer already issued")
	// ErrOfferNotFound is returned for unknown or expired offer nonces.
	ErrOfferNotFound = errors.New("credential offer not found")
)

// PreAuthorizedCodeGrantKey is the grants key of the pre-authorized code flow.
const PreAuthorizedCodeGrantKey = "urn:ietf:params:oauth:grant-type:pre-authorized_code"

// PreAuthorizationGrant is the pre-authorized code grant of an offer.
type PreAuthorizationGrant struct {
	PreAuthorizedCode string                  `json:"pre-authorized_code"`
	TxCode            *preauth.TxCodeMetadata `json:"tx_code,omitempty"`
}

// Grants of a credential offer.
type Grants struct {
	PreAuthorizationGrant *PreAuthorizationGrant `json:"urn:ietf:params:oauth:grant-type:pre-authorized_code,omitempty"` // nolint:lll
}

// CredentialOffer is the OIDC4VCI credential offer served to wallets.
type CredentialOffer struct {
	CredentialIssuer           string   `json:"credential_issuer"`
	CredentialConfigurationIDs []string `json:"credential_configuration_ids"`
	Grants                     Grants   `json:"grants"`
}

// CachedOffer is what an offer nonce resolves to.
type CachedOffer struct {
	Offer     CredentialOffer `json:"offer"`
	Email     string          `json:"email"`
	Name      string          `json:"name,omitempty"`
	PIN       string          `json:"pin"`
	ExpiresIn int64           `json:"expires_in"`
}

// OfferURI is the result of exchanging a transaction or continuation code.
type OfferURI struct {
	// CredentialOfferURI is the openid-credential-offer:// link for the wallet.
	CredentialOfferURI string `json:"credential_offer_uri"`
	// CTransactionCode rebuilds the offer once. Empty for a rebuilt offer.
	CTransactionCode string `json:"c_transaction_code,omitempty"`
	// ExpiresIn is the lifetime of the continuation code in seconds.
	ExpiresIn int64 `json:"c_transaction_code_expires_in,omitempty"`
}
