/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/storage/cache"
	cachememory "github.com/vcissuer/issuer/pkg/storage/cache/memory"
	"github.com/vcissuer/issuer/pkg/storage/memory"
	"github.com/vcissuer/issuer/pkg/storage/mongodb"
	"github.com/vcissuer/issuer/pkg/storage/mongodb/deferredstore"
	"github.com/vcissuer/issuer/pkg/storage/mongodb/procedurestore"
	"github.com/vcissuer/issuer/pkg/storage/redis"
	"github.com/vcissuer/issuer/pkg/storage/redis/cachestore"
)

const (
	// DatabaseURLFlagName is the database url.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "Database URL with credentials if required." +
		" Format must be <driver>:[//]<driver-specific-dsn>." +
		" Examples: 'mem://test', 'mongodb://mongodb.example.com:27017'." +
		" Supported drivers are [mem, mongodb]." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the database url.
	DatabaseURLEnvKey = "DATABASE_URL"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Number of one second retries until the datasource is available before giving up." +
		" Default: 30." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "DATABASE_TIMEOUT"

	// DatabasePrefixFlagName is the storage prefix.
	DatabasePrefixFlagName = "database-prefix"
	// DatabasePrefixEnvKey is the storage prefix.
	DatabasePrefixEnvKey = "DATABASE_PREFIX"
	// DatabasePrefixFlagUsage describes the usage.
	DatabasePrefixFlagUsage = "An optional prefix to be used when creating and retrieving underlying databases. " +
		"Alternatively, this can be set with the following environment variable: " + DatabasePrefixEnvKey

	// CacheURLsFlagName lists the cache servers.
	CacheURLsFlagName = "cache-urls"
	// CacheURLsEnvKey lists the cache servers.
	CacheURLsEnvKey = "CACHE_URLS"
	// CacheURLsFlagUsage describes the usage.
	CacheURLsFlagUsage = "Comma-separated list of cache URLs. Format must be <driver>://<host:port>." +
		" Examples: 'mem://', 'redis://redis1:6379,redis://redis2:6379'. Supported drivers are [mem, redis]." +
		" Defaults to mem. Alternatively, this can be set with the following environment variable: " + CacheURLsEnvKey

	// CachePasswordFlagName is the redis password.
	CachePasswordFlagName = "cache-password" //nolint:gosec
	// CachePasswordEnvKey is the redis password.
	CachePasswordEnvKey = "CACHE_PASSWORD" //nolint:gosec
	// CachePasswordFlagUsage describes the usage.
	CachePasswordFlagUsage = "Password of the redis cache. " +
		"Alternatively, this can be set with the following environment variable: " + CachePasswordEnvKey

	// CacheMasterNameFlagName is the redis sentinel master.
	CacheMasterNameFlagName = "cache-master-name"
	// CacheMasterNameEnvKey is the redis sentinel master.
	CacheMasterNameEnvKey = "CACHE_MASTER_NAME"
	// CacheMasterNameFlagUsage describes the usage.
	CacheMasterNameFlagUsage = "Redis sentinel master name. When set, a failover client is used. " +
		"Alternatively, this can be set with the following environment variable: " + CacheMasterNameEnvKey

	// DatabaseTimeoutDefault is the default number of connection retries.
	DatabaseTimeoutDefault = 30

	databaseName = "issuer"
)

// DBParameters holds database configuration.
type DBParameters struct {
	URL     string
	Prefix  string
	Timeout uint64
}

// CacheParameters holds cache configuration.
type CacheParameters struct {
	Driver     string
	Addrs      []string
	Password   string
	MasterName string
}

// ProcedureStore persists credential procedures.
type ProcedureStore interface {
	Create(ctx context.Context, p *credential.Procedure) error
	FindByProcedureID(ctx context.Context, procedureID string) (*credential.Procedure, error)
	FindByCredentialID(ctx context.Context, credentialID string) (*credential.Procedure, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*credential.Procedure, error)
	UpdateDecoded(ctx context.Context, procedureID, decoded string) error
	UpdateEncoded(ctx context.Context, procedureID, encoded string) error
	UpdateStatus(ctx context.Context, procedureID string, expected, next credential.Status) error
}

// DeferredStore persists deferred credential metadata.
type DeferredStore interface {
	Create(ctx context.Context, md *credential.DeferredMetadata) error
	FindByProcedureID(ctx context.Context, procedureID string) (*credential.DeferredMetadata, error)
	FindByTransactionCode(ctx context.Context, code string) (*credential.DeferredMetadata, error)
	FindByAuthServerNonce(ctx context.Context, nonce string) (*credential.DeferredMetadata, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*credential.DeferredMetadata, error)
	Update(ctx context.Context, md *credential.DeferredMetadata, expected credential.OfferState) error
	Delete(ctx context.Context, procedureID string) error
}

// PingFunc adapts a function to a health check dependency.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Stores are the durable repositories.
type Stores struct {
	Procedures ProcedureStore
	Deferred   DeferredStore
	// Ping probes the backing database. Nil for in-memory stores.
	Ping  PingFunc
	Close func() error
}

// Cache is the single-use value cache.
type Cache struct {
	Store cache.Store
	// Ping probes the cache server. Nil for the in-memory cache.
	Ping  PingFunc
	Close func() error
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabasePrefixFlagName, "", "", DatabasePrefixFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
	cmd.Flags().StringSliceP(CacheURLsFlagName, "", []string{}, CacheURLsFlagUsage)
	cmd.Flags().StringP(CachePasswordFlagName, "", "", CachePasswordFlagUsage)
	cmd.Flags().StringP(CacheMasterNameFlagName, "", "", CacheMasterNameFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{}

	params.URL, err = cmdutils.GetUserSetVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbURL: %w", err)
	}

	params.Prefix = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabasePrefixFlagName, DatabasePrefixEnvKey)

	timeout, err := cmdutils.GetUserSetVarFromString(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey, true)
	if err != nil && !strings.Contains(err.Error(), "value is empty") {
		return nil, fmt.Errorf("failed to configure dbTimeout: %w", err)
	}

	if timeout == "" {
		timeout = strconv.Itoa(DatabaseTimeoutDefault)
	}

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dbTimeout %s: %w", timeout, err)
	}

	return params, nil
}

// CacheParams fetches the cache parameters configured for this command.
func CacheParams(cmd *cobra.Command) (*CacheParameters, error) {
	urls := cmdutils.GetUserSetOptionalCSVVar(cmd, CacheURLsFlagName, CacheURLsEnvKey)

	params := &CacheParameters{
		Driver:     "mem",
		Password:   cmdutils.GetUserSetOptionalVarFromString(cmd, CachePasswordFlagName, CachePasswordEnvKey),
		MasterName: cmdutils.GetUserSetOptionalVarFromString(cmd, CacheMasterNameFlagName, CacheMasterNameEnvKey),
	}

	for i, u := range urls {
		driver, addr, err := parseURL(u)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cache url %s: %w", u, err)
		}

		if i > 0 && driver != params.Driver {
			return nil, fmt.Errorf("mixed cache drivers: %s and %s", params.Driver, driver)
		}

		params.Driver = driver

		if addr != "" {
			params.Addrs = append(params.Addrs, addr)
		}
	}

	switch params.Driver {
	case "mem":
	case "redis":
		if len(params.Addrs) == 0 {
			return nil, fmt.Errorf("redis cache requires at least one address")
		}
	default:
		return nil, fmt.Errorf("unsupported cache driver: %s", params.Driver)
	}

	return params, nil
}

// InitStores opens the procedure and deferred metadata repositories.
func InitStores(
	ctx context.Context,
	params *DBParameters,
	tracerProvider trace.TracerProvider,
	logger *log.Log,
) (*Stores, error) {
	driver, url, err := parseURL(params.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", params.URL, err)
	}

	switch driver {
	case "mem":
		return &Stores{
			Procedures: memory.NewProcedureStore(),
			Deferred:   memory.NewDeferredStore(),
			Close:      func() error { return nil },
		}, nil
	case "mongodb":
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}

	var client *mongodb.Client

	err = retry(
		func() error {
			var openErr error
			client, openErr = mongodb.New(url, params.Prefix+databaseName,
				mongodb.WithTraceProvider(tracerProvider))
			return openErr
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	procedures, err := procedurestore.New(ctx, client)
	if err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("create procedure store: %w", err)
	}

	deferred, err := deferredstore.New(ctx, client)
	if err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("create deferred store: %w", err)
	}

	return &Stores{
		Procedures: procedures,
		Deferred:   deferred,
		Ping:       client.Ping,
		Close:      client.Close,
	}, nil
}

// InitCache creates the cache store.
func InitCache(params *CacheParameters, tracerProvider trace.TracerProvider, logger *log.Log) (*Cache, error) {
	if params.Driver != "redis" {
		return &Cache{
			Store: cachememory.New(),
			Close: func() error { return nil },
		}, nil
	}

	opts := []redis.ClientOpt{
		redis.WithPassword(params.Password),
		redis.WithMasterName(params.MasterName),
		redis.WithTraceProvider(tracerProvider),
	}

	var client *redis.Client

	err := retry(
		func() error {
			var openErr error
			client, openErr = redis.New(params.Addrs, opts...)
			return openErr
		},
		DatabaseTimeoutDefault,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{
		Store: cachestore.New(client),
		Ping:  client.Ping,
		Close: client.Close,
	}, nil
}

func parseURL(u string) (string, string, error) {
	const urlParts = 2

	parsed := strings.SplitN(u, ":", urlParts)

	if len(parsed) != urlParts {
		return "", "", fmt.Errorf("invalid url %s", u)
	}

	driver := parsed[0]

	if driver == "mongodb" || driver == "mongodb+srv" {
		// The MongoDB driver needs the full connection string.
		return "mongodb", u, nil
	}

	dsn := strings.TrimPrefix(parsed[1], "//")

	return driver, dsn, nil
}

func retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
