/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
// When httpServer is set, Create serves it in the background.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("stop metrics HTTP server: %w", err)
	}

	return nil
}

// GetMetrics returns the metrics registered with the default registerer.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics(prometheus.DefaultRegisterer)
	})

	return instance
}

// PromMetrics manages the metrics of the issuer.
type PromMetrics struct {
	remoteSignTime   prometheus.Histogram
	cwtEncodeTime    prometheus.Histogram
	credentialSigned *prometheus.CounterVec
	tokenIssued      prometheus.Counter
	tokenRejected    prometheus.Counter
	policyDenied     *prometheus.CounterVec
}

// NewMetrics creates the prometheus metrics and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) *PromMetrics {
	pm := &PromMetrics{
		remoteSignTime: newHistogram(metrics.Signing, metrics.SigningRemoteSignTime,
			"The time (in seconds) it takes the remote signature service to sign a credential.", nil),
		cwtEncodeTime: newHistogram(metrics.Signing, metrics.SigningCWTEncodeTime,
			"The time (in seconds) it takes to run the CBOR, compression and Base45 stages.", nil),
		credentialSigned: newCounterVec(metrics.Signing, metrics.SigningCredentialCount,
			"The number of signed credentials by format.", []string{"format"}),
		tokenIssued: newCounter(metrics.Token, metrics.TokenIssuedCount,
			"The number of access tokens issued for pre-authorized codes.", nil),
		tokenRejected: newCounter(metrics.Token, metrics.TokenRejectedCount,
			"The number of rejected token requests.", nil),
		policyDenied: newCounterVec(metrics.Policy, metrics.PolicyDeniedCount,
			"The number of issuance requests denied by authorization policies.", []string{"schema"}),
	}

	registerer.MustRegister(
		pm.remoteSignTime, pm.cwtEncodeTime, pm.credentialSigned,
		pm.tokenIssued, pm.tokenRejected, pm.policyDenied,
	)

	return pm
}

// RemoteSignTime records the round trip time of the remote signer.
func (pm *PromMetrics) RemoteSignTime(value time.Duration) {
	pm.remoteSignTime.Observe(value.Seconds())

	logger.Debug("remote sign time", log.WithDuration(value))
}

// CWTEncodeTime records the time of the local CWT encoding stages.
func (pm *PromMetrics) CWTEncodeTime(value time.Duration) {
	pm.cwtEncodeTime.Observe(value.Seconds())

	logger.Debug("cwt encode time", log.WithDuration(value))
}

func (pm *PromMetrics) CredentialSigned(format string) {
	pm.credentialSigned.WithLabelValues(format).Inc()
}

func (pm *PromMetrics) TokenIssued() {
	pm.tokenIssued.Inc()
}

func (pm *PromMetrics) TokenRejected() {
	pm.tokenRejected.Inc()
}

func (pm *PromMetrics) PolicyDenied(schema string) {
	pm.policyDenied.WithLabelValues(schema).Inc()
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
