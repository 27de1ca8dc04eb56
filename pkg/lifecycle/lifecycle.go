/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lifecycle

import (
	"errors"
	"sync/atomic"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
)

var logger = log.New("lifecycle")

// ErrNotStarted is returned by services used before Start or after Stop.
var ErrNotStarted = errors.New("service has not started")

// State is the state of a service.
type State = uint32

const (
	StateNotStarted State = iota
	StateStarting
	StateStarted
	StateStopped
)

type options struct {
	start func()
	stop  func()
}

// Opt sets a Lifecycle option.
type Opt func(opts *options)

// WithStart sets the function invoked by Start.
func WithStart(start func()) Opt {
	return func(opts *options) {
		opts.start = start
	}
}

// WithStop sets the function invoked by Stop.
func WithStop(stop func()) Opt {
	return func(opts *options) {
		opts.stop = stop
	}
}

// Lifecycle runs start and stop hooks at most once each.
type Lifecycle struct {
	opts  options
	name  string
	state atomic.Uint32
}

func New(name string, opts ...Opt) *Lifecycle {
	l := &Lifecycle{
		name: name,
		opts: options{
			start: func() {},
			stop:  func() {},
		},
	}

	for _, opt := range opts {
		opt(&l.opts)
	}

	return l
}

func (l *Lifecycle) Start() {
	if !l.state.CompareAndSwap(StateNotStarted, StateStarting) {
		logger.Debug("service already started", logfields.WithService(l.name))

		return
	}

	l.opts.start()

	l.state.Store(StateStarted)

	logger.Debug("service started", logfields.WithService(l.name))
}

func (l *Lifecycle) Stop() {
	if !l.state.CompareAndSwap(StateStarted, StateStopped) {
		logger.Debug("service not running", logfields.WithService(l.name))

		return
	}

	l.opts.stop()

	logger.Debug("service stopped", logfields.WithService(l.name))
}

func (l *Lifecycle) State() State {
	return l.state.Load()
}
