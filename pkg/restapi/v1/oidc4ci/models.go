/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4ci

// DeferredCredentialRequest is the body of the deferred credential endpoint.
type DeferredCredentialRequest struct {
	TransactionID string `json:"transaction_id"`
}

// DeferredCredentialResponse carries a credential signed after the credential request.
type DeferredCredentialResponse struct {
	Credential string `json:"credential"`
}

// NonceValidationResponse is returned by the nonce validation endpoint.
type NonceValidationResponse struct {
	IsNonceValid bool `json:"is_nonce_valid"`
}

// IssuerMetadata is the OIDC4VCI credential issuer metadata document.
type IssuerMetadata struct {
	CredentialIssuer                  string                             `json:"credential_issuer"`
	CredentialEndpoint                string                             `json:"credential_endpoint"`
	DeferredCredentialEndpoint        string                             `json:"deferred_credential_endpoint"`
	TokenEndpoint                     string                             `json:"token_endpoint"`
	CredentialConfigurationsSupported map[string]CredentialConfiguration `json:"credential_configurations_supported"`
}

// CredentialConfiguration describes one issuable credential.
type CredentialConfiguration struct {
	Format                               string                    `json:"format"`
	CryptographicBindingMethodsSupported []string                  `json:"cryptographic_binding_methods_supported"`
	CredentialSigningAlgValuesSupported  []string                  `json:"credential_signing_alg_values_supported"`
	CredentialDefinition                 CredentialDefinition      `json:"credential_definition"`
	ProofTypesSupported                  map[string]ProofTypeAlgos `json:"proof_types_supported"`
}

// CredentialDefinition lists the W3C types of a credential configuration.
type CredentialDefinition struct {
	Type []string `json:"type"`
}

// ProofTypeAlgos lists the algorithms accepted for a proof type.
type ProofTypeAlgos struct {
	ProofSigningAlgValuesSupported []string `json:"proof_signing_alg_values_supported"`
}
