/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/vcissuer/issuer/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) RemoteSignTime(_ time.Duration) {}
func (n *NoMetrics) CWTEncodeTime(_ time.Duration)  {}
func (n *NoMetrics) CredentialSigned(_ string)      {}
func (n *NoMetrics) TokenIssued()                   {}
func (n *NoMetrics) TokenRejected()                 {}
func (n *NoMetrics) PolicyDenied(_ string)          {}
