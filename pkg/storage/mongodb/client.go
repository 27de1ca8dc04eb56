/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultMaxPoolSize = 200
)

type clientOpts struct {
	timeout       time.Duration
	maxPoolSize   uint64
	readPref      *readpref.ReadPref
	traceProvider trace.TracerProvider
}

// ClientOpt configures the mongo client.
type ClientOpt func(opts *clientOpts)

// WithTimeout bounds connecting, index creation and disconnecting.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

func WithMaxPoolSize(size uint64) ClientOpt {
	return func(opts *clientOpts) {
		opts.maxPoolSize = size
	}
}

// WithReadPref overrides the read preference. Procedure state is read back
// right after it is written, so the default is the primary.
func WithReadPref(readPref *readpref.ReadPref) ClientOpt {
	return func(opts *clientOpts) {
		opts.readPref = readPref
	}
}

// WithTraceProvider adds an otelmongo command monitor.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

// Client is a mongo client bound to the issuer database.
type Client struct {
	client       *mongo.Client
	databaseName string
	timeout      time.Duration
}

// New connects to the deployment at connString. The connection is lazy; use
// Ping to check reachability.
func New(connString, databaseName string, opts ...ClientOpt) (*Client, error) {
	op := &clientOpts{
		timeout:     defaultTimeout,
		maxPoolSize: defaultMaxPoolSize,
		readPref:    readpref.Primary(),
	}

	for _, fn := range opts {
		fn(op)
	}

	mongoOpts := mongooptions.Client().
		ApplyURI(connString).
		SetReadPreference(op.readPref).
		SetMaxPoolSize(op.maxPoolSize).
		SetAppName(databaseName)

	if op.traceProvider != nil {
		mongoOpts.SetMonitor(otelmongo.NewMonitor(otelmongo.WithTracerProvider(op.traceProvider)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), op.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return Wrap(client, databaseName, op.timeout), nil
}

// Wrap binds an already connected mongo client to databaseName.
func Wrap(client *mongo.Client, databaseName string, timeout time.Duration) *Client {
	return &Client{
		client:       client,
		databaseName: databaseName,
		timeout:      lo.Ternary(timeout > 0, timeout, defaultTimeout),
	}
}

func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.databaseName)
}

// Collection returns a collection of the issuer database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// EnsureIndexes creates the missing indexes of a collection. Existing indexes with
// the same keys and options are left untouched.
func (c *Client) EnsureIndexes(ctx context.Context, collection string, models ...mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create %s indexes: %w", collection, err)
	}

	return nil
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}
