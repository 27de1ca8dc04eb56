/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type latency struct {
	last    time.Duration
	mean    time.Duration
	samples int64
}

// latencies records how long each dependency probe took. The checker runs
// probes concurrently with result writes, so access is guarded.
type latencies struct {
	mu sync.RWMutex
	m  map[string]latency
}

func newLatencies() *latencies {
	return &latencies{m: map[string]latency{}}
}

func (l *latencies) observe(name string, d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.m[name]
	cur.samples++
	cur.last = d
	cur.mean += (d - cur.mean) / time.Duration(cur.samples)

	l.m[name] = cur
}

func (l *latencies) get(name string) (latency, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v, ok := l.m[name]

	return v, ok
}

func (l *latencies) interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			defer func() { l.observe(name, time.Since(start)) }()

			return next(ctx, name, state)
		}
	}
}

type componentStatus struct {
	health.CheckResult
	LastMillis float64 `json:"last_probe_ms,omitempty"`
	MeanMillis float64 `json:"mean_probe_ms,omitempty"`
	Probes     int64   `json:"probes,omitempty"`
}

type statusBody struct {
	Status     health.AvailabilityStatus  `json:"status"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

// resultWriter renders checker results with the probe latencies of each dependency.
type resultWriter struct {
	lat *latencies
}

func (rw *resultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error {
	body := statusBody{Status: result.Status}

	if result.Details != nil {
		body.Components = make(map[string]componentStatus, len(*result.Details))

		for name, cr := range *result.Details {
			c := componentStatus{CheckResult: cr}

			if l, ok := rw.lat.get(name); ok {
				c.LastMillis = millis(l.last)
				c.MeanMillis = millis(l.mean)
				c.Probes = l.samples
			}

			body.Components[name] = c
		}
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal health status: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000 //nolint:gomnd
}
