/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vcissuer/issuer/cmd/common"
	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/client/remotesigner"
	"github.com/vcissuer/issuer/pkg/client/verifier"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/did/didkey"
	"github.com/vcissuer/issuer/pkg/event"
	"github.com/vcissuer/issuer/pkg/event/spi"
	"github.com/vcissuer/issuer/pkg/notification"
	"github.com/vcissuer/issuer/pkg/observability/health"
	"github.com/vcissuer/issuer/pkg/observability/metrics"
	metricsProvider "github.com/vcissuer/issuer/pkg/observability/metrics/noop"
	promMetricsProvider "github.com/vcissuer/issuer/pkg/observability/metrics/prometheus"
	"github.com/vcissuer/issuer/pkg/observability/tracing"
	issuancetracing "github.com/vcissuer/issuer/pkg/observability/tracing/wrappers/issuance"
	"github.com/vcissuer/issuer/pkg/otp"
	"github.com/vcissuer/issuer/pkg/restapi/resterr"
	"github.com/vcissuer/issuer/pkg/restapi/v1/healthcheck"
	issuerv1 "github.com/vcissuer/issuer/pkg/restapi/v1/issuer"
	"github.com/vcissuer/issuer/pkg/restapi/v1/logapi"
	"github.com/vcissuer/issuer/pkg/restapi/v1/mw"
	oidc4civ1 "github.com/vcissuer/issuer/pkg/restapi/v1/oidc4ci"
	"github.com/vcissuer/issuer/pkg/restapi/v1/version"
	"github.com/vcissuer/issuer/pkg/service/credentialoffer"
	"github.com/vcissuer/issuer/pkg/service/issuance"
	"github.com/vcissuer/issuer/pkg/service/nonce"
	"github.com/vcissuer/issuer/pkg/service/preauth"
	"github.com/vcissuer/issuer/pkg/service/proof"
	"github.com/vcissuer/issuer/pkg/service/signing"
	"github.com/vcissuer/issuer/pkg/service/token"
	"github.com/vcissuer/issuer/pkg/service/vcpolicy"
)

var logger = log.New("issuer-rest")

const (
	healthCheckEndpoint = "/healthcheck"
	healthEndpoint      = "/health"
	shutdownTimeout     = 10 * time.Second
	serviceName         = "issuer-rest"
)

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
	Shutdown(ctx context.Context) error
}

type startOpts struct {
	server        httpServer
	version       string
	serverVersion string
	handler       http.Handler
	signals       chan os.Signal
	readiness     *readiness
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets the server the API is served on.
func WithHTTPServer(server httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = server
	}
}

// WithVersion sets the version reported by the version endpoint.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the server version reported by the version endpoint.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.serverVersion = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start issuer-rest",
		Long:  "Start the OIDC4VCI credential issuer REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			if params.logLevel != "" {
				common.SetDefaultLogLevel(logger, params.logLevel)
			}

			o := &startOpts{}
			for _, opt := range opts {
				opt(o)
			}

			tr, err := tracing.Initialize(tracing.Config{
				Exporter:       params.tracingParams.exporter,
				ServiceName:    params.tracingParams.serviceName,
				ServiceVersion: o.version,
				SampleRatio:    params.tracingParams.sampleRatio,
			})
			if err != nil {
				return fmt.Errorf("initialize tracing: %w", err)
			}

			defer func() {
				if shutdownErr := tr.Shutdown(context.Background()); shutdownErr != nil {
					logger.Warn("Failed to flush spans", log.WithError(shutdownErr))
				}
			}()

			e, cleanup, err := buildEchoHandler(cmd.Context(), params, o, tr.Provider, tr.Tracer)
			if err != nil {
				return fmt.Errorf("failed to build echo handler: %w", err)
			}

			defer cleanup()

			o.handler = e

			if o.server == nil {
				o.server = &http.Server{
					Addr:              params.hostURL,
					Handler:           e,
					ReadHeaderTimeout: 10 * time.Second,
				}
			}

			return runServer(params, o)
		},
	}
}

func runServer(params *startupParameters, o *startOpts) error {
	signals := o.signals
	if signals == nil {
		signals = make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

		defer signal.Stop(signals)
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("Starting issuer-rest server", log.WithURL(params.hostURL))

		var err error

		if params.tlsParameters.serveCertPath != "" && params.tlsParameters.serveKeyPath != "" {
			err = o.server.ListenAndServeTLS(params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath)
		} else {
			err = o.server.ListenAndServe()
		}

		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	case sig := <-signals:
		logger.Info("Shutting down issuer-rest server", logfields.WithAdditionalMessage(sig.String()))

		o.readiness.markDraining()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := o.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		return nil
	}
}

// nolint:funlen,gocyclo
func buildEchoHandler(
	ctx context.Context,
	params *startupParameters,
	o *startOpts,
	tracerProvider trace.TracerProvider,
	tracer trace.Tracer,
) (*echo.Echo, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	fail := func(err error) (*echo.Echo, func(), error) {
		cleanup()

		return nil, nil, err
	}

	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return fail(err)
	}

	httpClient := &http.Client{
		Timeout: params.httpTimeout,
		Transport: otelhttp.NewTransport(
			&http.Transport{TLSClientConfig: &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}},
			otelhttp.WithTracerProvider(tracerProvider),
		),
	}

	stores, err := common.InitStores(ctx, params.dbParameters, tracerProvider, logger)
	if err != nil {
		return fail(fmt.Errorf("init stores: %w", err))
	}

	closers = append(closers, func() {
		if closeErr := stores.Close(); closeErr != nil {
			logger.Warn("Failed to close stores", log.WithError(closeErr))
		}
	})

	cacheStore, err := common.InitCache(params.cacheParameters, tracerProvider, logger)
	if err != nil {
		return fail(fmt.Errorf("init cache: %w", err))
	}

	closers = append(closers, func() {
		if closeErr := cacheStore.Close(); closeErr != nil {
			logger.Warn("Failed to close cache", log.WithError(closeErr))
		}
	})

	serviceMetrics, err := createMetrics(params, &closers)
	if err != nil {
		return fail(err)
	}

	eventBus := event.NewEventBus()

	closers = append(closers, func() {
		if closeErr := eventBus.Close(); closeErr != nil {
			logger.Warn("Failed to close event bus", log.WithError(closeErr))
		}
	})

	if err = startNotifications(params.smtpParams, eventBus, &closers); err != nil {
		return fail(err)
	}

	pins, err := otp.NewPinGenerator(params.pinLength)
	if err != nil {
		return fail(fmt.Errorf("create pin generator: %w", err))
	}

	preAuthSvc := preauth.NewService(&preauth.Config{
		Store: cacheStore.Store,
		TTL:   params.ttlParams.preAuthCode,
		Pins:  pins,
	})

	nonceSvc := nonce.NewService(cacheStore.Store, params.ttlParams.nonce)

	tokenSvc, err := token.NewService(&token.Config{
		PreAuth:  preAuthSvc,
		Nonces:   nonceSvc,
		Issuer:   params.issuerURL,
		Secret:   []byte(params.tokenSecret),
		TokenTTL: params.ttlParams.accessToken,
		Metrics:  serviceMetrics,
	})
	if err != nil {
		return fail(fmt.Errorf("create token service: %w", err))
	}

	verifierClient := verifier.New(&verifier.Config{
		HTTPClient:         httpClient,
		NonceValidationURL: params.verifierNonceURL,
		JWKSURL:            params.verifierJWKSURL,
	})

	proofSvc := proof.NewService(&proof.Config{
		Nonces:      verifierClient,
		KeyResolver: didkey.Resolve,
	})

	signingSvc := signing.NewService(&signing.Config{
		Signer:  remotesigner.New(params.signerURL, httpClient),
		Metrics: serviceMetrics,
	})

	policySvc := vcpolicy.NewService(&vcpolicy.Config{
		AllowedSigner: params.allowedSigner,
		Verifier:      verifierClient,
		Metrics:       serviceMetrics,
	})

	offerSvc := credentialoffer.NewService(&credentialoffer.Config{
		DeferredStore:      stores.Deferred,
		ProcedureStore:     stores.Procedures,
		PreAuth:            preAuthSvc,
		EventPublisher:     eventBus,
		Cache:              cacheStore.Store,
		IssuerURL:          params.issuerURL,
		OfferTTL:           params.ttlParams.offer,
		TransactionCodeTTL: params.ttlParams.txCode,
	})

	issuanceSvc := issuancetracing.Wrap(issuance.NewService(&issuance.Config{
		Policy:         policySvc,
		ProcedureStore: stores.Procedures,
		DeferredStore:  stores.Deferred,
		Offers:         offerSvc,
		Tokens:         tokenSvc,
		Proofs:         proofSvc,
		Nonces:         nonceSvc,
		Signer:         signingSvc,
		PreAuth:        preAuthSvc,
		EventPublisher: eventBus,
		HTTPClient:     httpClient,
		IssuerDID:      params.issuerDID,
		WalletURL:      params.walletURL,
		CredentialTTL:  params.ttlParams.credential,
	}), tracer)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodHead},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderAccept, echo.HeaderContentType,
			echo.HeaderAuthorization, issuerv1.IDTokenHeader, mw.APIKeyHeader},
	}))

	deps := map[string]healthcheck.Pinger{}
	healthDeps := map[string]health.Pinger{}

	if stores.Ping != nil {
		deps["database"] = stores.Ping
		healthDeps["database"] = stores.Ping
	}

	if cacheStore.Ping != nil {
		deps["cache"] = cacheStore.Ping
		healthDeps["cache"] = cacheStore.Ping
	}

	hc := &healthcheck.Controller{Dependencies: deps}
	e.GET(healthCheckEndpoint, hc.GetHealthcheck)
	e.GET(healthEndpoint, echo.WrapHandler(health.NewHandler(healthDeps)))

	version.Register(e, version.Config{
		Name:          serviceName,
		Version:       o.version,
		ServerVersion: o.serverVersion,
		Formats:       []string{credential.FormatJWTVCJSON.String(), credential.FormatCWTVC.String()},
	})

	oidc4civ1.NewController(&oidc4civ1.Config{
		TokenService:    tokenSvc,
		OfferService:    offerSvc,
		IssuanceService: issuanceSvc,
		NonceService:    nonceSvc,
		Tracer:          tracer,
		IssuerURL:       params.issuerURL,
	}).RegisterHandlers(e)

	apiKeyAuth := mw.APIKeyAuth(params.apiKeys...)

	issuerv1.NewController(&issuerv1.Config{
		IssuanceService: issuanceSvc,
		CallerAuth:      mw.CallerTokenAuth(verifierClient),
		APIKeyAuth:      apiKeyAuth,
		Tracer:          tracer,
	}).RegisterHandlers(e)

	logapi.NewController(e, apiKeyAuth)

	o.readiness = registerReadiness(e)
	o.readiness.markServing()

	return e, cleanup, nil
}

func createMetrics(params *startupParameters, closers *[]func()) (metrics.Metrics, error) {
	if params.metricsProviderName != metricsProviderPrometheus {
		return metricsProvider.GetMetrics(), nil
	}

	provider := promMetricsProvider.NewPrometheusProvider(&http.Server{
		Addr:              params.prometheusMetricsProviderParams.url,
		Handler:           promMetricsProvider.NewServeMux(),
		ReadHeaderTimeout: 10 * time.Second,
	})

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	*closers = append(*closers, func() {
		if err := provider.Destroy(); err != nil {
			logger.Warn("Failed to stop metrics provider", log.WithError(err))
		}
	})

	return provider.Metrics(), nil
}

func startNotifications(params *smtpParameters, bus *event.Bus, closers *[]func()) error {
	if params.host == "" {
		logger.Warn("SMTP host is not configured, holder notifications are disabled")

		return nil
	}

	svc, err := notification.NewService(notification.NewSMTPSender(notification.SMTPConfig{
		Host:     params.host,
		Port:     params.port,
		Username: params.username,
		Password: params.password,
		From:     params.from,
	}))
	if err != nil {
		return fmt.Errorf("create notification service: %w", err)
	}

	subscriber, err := event.NewEventSubscriber(bus, spi.NotificationTopic, svc.HandleEvent)
	if err != nil {
		return fmt.Errorf("create notification subscriber: %w", err)
	}

	subscriber.Start()

	*closers = append(*closers, subscriber.Stop)

	return nil
}
