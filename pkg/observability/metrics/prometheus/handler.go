/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vcissuer/issuer/internal/logfields"
)

// MetricsPath is where the scrape handler is mounted.
const MetricsPath = "/metrics"

const (
	maxConcurrentScrapes = 3
	scrapeTimeout        = 10 * time.Second
)

// NewHandler returns the scrape handler for gatherer (the default gatherer when nil).
// Collector failures are logged and the remaining metrics are still served. When
// scrapes is set, the handler also counts its own requests on it.
func NewHandler(gatherer prometheus.Gatherer, scrapes prometheus.Registerer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	h := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog:            scrapeErrorLog{},
		ErrorHandling:       promhttp.ContinueOnError,
		MaxRequestsInFlight: maxConcurrentScrapes,
		Timeout:             scrapeTimeout,
		EnableOpenMetrics:   true,
	})

	if scrapes == nil {
		return h
	}

	return promhttp.InstrumentMetricHandler(scrapes, h)
}

// NewServeMux mounts the scrape handler of the default registry on MetricsPath.
func NewServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, NewHandler(prometheus.DefaultGatherer, prometheus.DefaultRegisterer))

	return mux
}

type scrapeErrorLog struct{}

func (scrapeErrorLog) Println(v ...interface{}) {
	logger.Warn("metrics gathering failed", logfields.WithAdditionalMessage(fmt.Sprint(v...)))
}
