/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultConnectTimeout = 15 * time.Second
	defaultKeyPrefix      = "vcissuer"
)

type clientOpts struct {
	masterName     string
	password       string
	tlsConfig      *tls.Config
	connectTimeout time.Duration
	keyPrefix      string
	traceProvider  trace.TracerProvider
}

// ClientOpt configures the redis client.
type ClientOpt func(opts *clientOpts)

// WithTraceProvider enables otel tracing of redis commands.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

// WithMasterName selects a sentinel-backed failover client.
func WithMasterName(masterName string) ClientOpt {
	return func(opts *clientOpts) {
		opts.masterName = masterName
	}
}

func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}

// WithConnectTimeout bounds the ping New runs before returning.
func WithConnectTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.connectTimeout = timeout
	}
}

// WithKeyPrefix namespaces every key built with Key, so several issuers can share one redis.
func WithKeyPrefix(prefix string) ClientOpt {
	return func(opts *clientOpts) {
		if prefix != "" {
			opts.keyPrefix = prefix
		}
	}
}

// Client wraps the redis.UniversalClient shared by the redis-backed stores.
type Client struct {
	client    redis.UniversalClient
	keyPrefix string
}

// New connects to redis and verifies the connection with a ping.
// A sentinel failover client is created when a master name is set, a cluster
// client when two or more addresses are given, and a single node client otherwise.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	if len(addrs) == 0 {
		return nil, errors.New("at least one redis address is required")
	}

	opt := &clientOpts{
		connectTimeout: defaultConnectTimeout,
		keyPrefix:      defaultKeyPrefix,
	}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		ContextTimeoutEnabled: true,
		MasterName:            opt.masterName,
		Password:              opt.password,
		TLSConfig:             opt.tlsConfig,
	})

	if opt.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider)); err != nil {
			_ = client.Close()

			return nil, fmt.Errorf("instrument redis tracing: %w", err)
		}
	}

	c := &Client{client: client, keyPrefix: opt.keyPrefix}

	ctx, cancel := context.WithTimeout(context.Background(), opt.connectTimeout)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("connect to redis %s: %w", strings.Join(addrs, ","), err)
	}

	return c, nil
}

// API returns the underlying redis client.
func (c *Client) API() redis.UniversalClient {
	return c.client
}

// Key joins parts under the client key prefix, e.g. "vcissuer:cache:<id>".
func (c *Client) Key(parts ...string) string {
	return c.keyPrefix + ":" + strings.Join(parts, ":")
}

// Ping reports whether redis answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.client.Close()
}
