/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "issuer"

	// Signing pipeline.
	Signing                = "signing"
	SigningRemoteSignTime  = "remote_sign_seconds"
	SigningCWTEncodeTime   = "cwt_encode_seconds"
	SigningCredentialCount = "credentials_signed_total"

	// Token endpoint.
	Token              = "token"
	TokenIssuedCount   = "access_tokens_issued_total"
	TokenRejectedCount = "access_tokens_rejected_total"

	// Authorization policies.
	Policy            = "policy"
	PolicyDeniedCount = "denied_total"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	RemoteSignTime(value time.Duration)
	CWTEncodeTime(value time.Duration)
	CredentialSigned(format string)
	TokenIssued()
	TokenRejected()
	PolicyDenied(schema string)
}
