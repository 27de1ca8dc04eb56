/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package health

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/alexliesenfeld/health"
)

const defaultCheckTimeout = 5 * time.Second

// Pinger is a backing service that can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checks builds one health check per backing service.
func Checks(deps map[string]Pinger) []health.Check {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}

	sort.Strings(names)

	checks := make([]health.Check, 0, len(names))

	for _, name := range names {
		name, dep := name, deps[name]

		checks = append(checks, health.Check{
			Name: name,
			Check: func(ctx context.Context) error {
				if err := dep.Ping(ctx); err != nil {
					return fmt.Errorf("failed to ping %s: %w", name, err)
				}

				return nil
			},
			Timeout:            defaultCheckTimeout,
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	return checks
}

// NewHandler returns the readiness handler reporting the state of deps.
func NewHandler(deps map[string]Pinger) http.Handler {
	lat := newLatencies()

	opts := []health.CheckerOption{
		health.WithTimeout(defaultCheckTimeout),
		health.WithInterceptors(lat.interceptor()),
	}

	for _, check := range Checks(deps) {
		opts = append(opts, health.WithCheck(check))
	}

	return health.NewHandler(
		health.NewChecker(opts...),
		health.WithResultWriter(&resultWriter{lat: lat}),
	)
}
