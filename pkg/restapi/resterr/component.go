/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

//nolint:gosec
const (
	TokenSvcComponent           Component = "issuer.token-service"
	CredentialOfferSvcComponent Component = "issuer.credential-offer-service"
	IssuanceSvcComponent        Component = "issuer.issuance-service"
	ProofSvcComponent           Component = "issuer.proof-service"
	SigningSvcComponent         Component = "issuer.signing-service"
	PolicySvcComponent          Component = "issuer.vc-policy-service"
	NonceSvcComponent           Component = "issuer.nonce-service"

	ProcedureStoreComponent Component = "procedure-store"
	DeferredStoreComponent  Component = "deferred-metadata-store"
	CacheComponent          Component = "cache-store"
	RemoteSignerComponent   Component = "remote-signer"
	VerifierComponent       Component = "verifier"
)
