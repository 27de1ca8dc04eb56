/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/vcissuer/issuer/cmd/common"
	"github.com/vcissuer/issuer/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the issuer-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "ISSUER_REST_HOST_URL"

	issuerURLFlagName      = "issuer-url"
	issuerURLFlagShorthand = "x"
	issuerURLFlagUsage     = "Public URL of the credential issuer as seen by wallets. Format: https://<HOST>:<PORT>. " +
		commonEnvVarUsageText + issuerURLEnvKey
	issuerURLEnvKey = "ISSUER_REST_ISSUER_URL"

	walletURLFlagName  = "wallet-url"
	walletURLFlagUsage = "Wallet URL that receives the activation link of new procedures. " +
		commonEnvVarUsageText + walletURLEnvKey
	walletURLEnvKey = "ISSUER_REST_WALLET_URL"

	issuerDIDFlagName  = "issuer-did"
	issuerDIDFlagUsage = "DID of the credential issuer. " + commonEnvVarUsageText + issuerDIDEnvKey
	issuerDIDEnvKey    = "ISSUER_REST_ISSUER_DID"

	tokenSecretFlagName  = "token-secret"
	tokenSecretFlagUsage = "Secret used to sign access tokens. " + commonEnvVarUsageText + tokenSecretEnvKey
	tokenSecretEnvKey    = "ISSUER_REST_TOKEN_SECRET" //nolint: gosec

	apiKeyFlagName  = "api-key"
	apiKeyFlagUsage = "API keys accepted from the remote signer and operators. Repeat the flag or pass a " +
		"comma-separated list to rotate keys. " + commonEnvVarUsageText + apiKeyEnvKey
	apiKeyEnvKey = "ISSUER_REST_API_KEY" //nolint: gosec

	signerURLFlagName  = "signer-url"
	signerURLFlagUsage = "URL of the remote signing service. " + commonEnvVarUsageText + signerURLEnvKey
	signerURLEnvKey    = "ISSUER_REST_SIGNER_URL"

	allowedSignerFlagName  = "allowed-signer"
	allowedSignerFlagUsage = "Organization identifier of the platform signer. " +
		commonEnvVarUsageText + allowedSignerEnvKey
	allowedSignerEnvKey = "ISSUER_REST_ALLOWED_SIGNER"

	verifierNonceURLFlagName  = "verifier-nonce-url"
	verifierNonceURLFlagUsage = "Verifier endpoint that validates proof nonces. " +
		commonEnvVarUsageText + verifierNonceURLEnvKey
	verifierNonceURLEnvKey = "ISSUER_REST_VERIFIER_NONCE_URL"

	verifierJWKSURLFlagName  = "verifier-jwks-url"
	verifierJWKSURLFlagUsage = "JWKS endpoint of the verifier that signs caller tokens. " +
		commonEnvVarUsageText + verifierJWKSURLEnvKey
	verifierJWKSURLEnvKey = "ISSUER_REST_VERIFIER_JWKS_URL"

	offerTTLFlagName  = "offer-ttl"
	offerTTLFlagUsage = "Lifetime of a credential offer nonce. Defaults to 10m. " + commonEnvVarUsageText + offerTTLEnvKey
	offerTTLEnvKey    = "ISSUER_REST_OFFER_TTL"

	preAuthTTLFlagName  = "pre-auth-code-ttl"
	preAuthTTLFlagUsage = "Lifetime of a pre-authorized code. Defaults to 5m. " + commonEnvVarUsageText + preAuthTTLEnvKey
	preAuthTTLEnvKey    = "ISSUER_REST_PRE_AUTH_CODE_TTL"

	nonceTTLFlagName  = "nonce-ttl"
	nonceTTLFlagUsage = "Lifetime of a c_nonce. Defaults to 10m. " + commonEnvVarUsageText + nonceTTLEnvKey
	nonceTTLEnvKey    = "ISSUER_REST_NONCE_TTL"

	txCodeTTLFlagName  = "transaction-code-ttl"
	txCodeTTLFlagUsage = "Lifetime of a transaction code. Defaults to 72h. " + commonEnvVarUsageText + txCodeTTLEnvKey
	txCodeTTLEnvKey    = "ISSUER_REST_TRANSACTION_CODE_TTL"

	accessTokenTTLFlagName  = "access-token-ttl"
	accessTokenTTLFlagUsage = "Lifetime of an access token. Defaults to 24h. " +
		commonEnvVarUsageText + accessTokenTTLEnvKey
	accessTokenTTLEnvKey = "ISSUER_REST_ACCESS_TOKEN_TTL" //nolint: gosec

	credentialTTLFlagName  = "credential-ttl"
	credentialTTLFlagUsage = "Validity period of issued credentials. Defaults to 8760h. " +
		commonEnvVarUsageText + credentialTTLEnvKey
	credentialTTLEnvKey = "ISSUER_REST_CREDENTIAL_TTL"

	pinLengthFlagName  = "pin-length"
	pinLengthFlagUsage = "Number of digits of the transaction PIN. Defaults to 4. " +
		commonEnvVarUsageText + pinLengthEnvKey
	pinLengthEnvKey = "ISSUER_REST_PIN_LENGTH"

	smtpHostFlagName  = "smtp-host"
	smtpHostFlagUsage = "SMTP relay used for holder notifications. " + commonEnvVarUsageText + smtpHostEnvKey
	smtpHostEnvKey    = "ISSUER_REST_SMTP_HOST"

	smtpPortFlagName  = "smtp-port"
	smtpPortFlagUsage = "SMTP relay port. Defaults to 587. " + commonEnvVarUsageText + smtpPortEnvKey
	smtpPortEnvKey    = "ISSUER_REST_SMTP_PORT"

	smtpUsernameFlagName  = "smtp-username"
	smtpUsernameFlagUsage = "SMTP username. " + commonEnvVarUsageText + smtpUsernameEnvKey
	smtpUsernameEnvKey    = "ISSUER_REST_SMTP_USERNAME"

	smtpPasswordFlagName  = "smtp-password"
	smtpPasswordFlagUsage = "SMTP password. " + commonEnvVarUsageText + smtpPasswordEnvKey
	smtpPasswordEnvKey    = "ISSUER_REST_SMTP_PASSWORD" //nolint: gosec

	smtpFromFlagName  = "smtp-from"
	smtpFromFlagUsage = "Sender address of holder notifications. " + commonEnvVarUsageText + smtpFromEnvKey
	smtpFromEnvKey    = "ISSUER_REST_SMTP_FROM"

	httpTimeoutFlagName  = "http-timeout"
	httpTimeoutFlagUsage = "Timeout of outgoing HTTP requests. Defaults to 20s. " +
		commonEnvVarUsageText + httpTimeoutEnvKey
	httpTimeoutEnvKey = "ISSUER_REST_HTTP_TIMEOUT"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "ISSUER_REST_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "ISSUER_REST_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for issuer server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "ISSUER_REST_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for issuer server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "ISSUER_REST_TLS_KEY"

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "ISSUER_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName             = "prom-http-url"
	promHTTPURLEnvKey               = "ISSUER_PROM_HTTP_URL"
	allowedPromHTTPURLFlagNameUsage = "URL that exposes the prometheus metrics endpoint. Format: HostName:Port. "

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "ISSUER_TRACING_EXPORTER"
	tracingExporterFlagUsage = "Span exporter of the tracer provider. Supported: JAEGER, STDOUT. " +
		commonEnvVarUsageText + tracingExporterEnvKey

	tracingSampleRatioFlagName  = "tracing-sample-ratio"
	tracingSampleRatioEnvKey    = "ISSUER_TRACING_SAMPLE_RATIO"
	tracingSampleRatioFlagUsage = "Share of traces recorded, between 0 and 1. Defaults to recording every trace. " +
		commonEnvVarUsageText + tracingSampleRatioEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "ISSUER_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "Service name reported with every span. Defaults to issuer-rest. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	metricsProviderPrometheus = "prometheus"
	defaultTracingServiceName = "issuer-rest"

	defaultOfferTTL       = 10 * time.Minute
	defaultPreAuthTTL     = 5 * time.Minute
	defaultNonceTTL       = 10 * time.Minute
	defaultTxCodeTTL      = 72 * time.Hour
	defaultAccessTokenTTL = 24 * time.Hour
	defaultCredentialTTL  = 365 * 24 * time.Hour
	defaultHTTPTimeout    = 20 * time.Second
	defaultPINLength      = 4
	defaultSMTPPort       = 587
)

type startupParameters struct {
	hostURL          string
	issuerURL        string
	walletURL        string
	issuerDID        string
	tokenSecret      string
	apiKeys          []string
	signerURL        string
	allowedSigner    string
	verifierNonceURL string
	verifierJWKSURL  string
	logLevel         string
	ttlParams        *ttlParameters
	pinLength        int
	smtpParams       *smtpParameters
	httpTimeout      time.Duration
	tlsParameters    *tlsParameters
	dbParameters     *common.DBParameters
	cacheParameters  *common.CacheParameters

	metricsProviderName             string
	prometheusMetricsProviderParams *prometheusMetricsProviderParams
	tracingParams                   *tracingParams
}

type ttlParameters struct {
	offer       time.Duration
	preAuthCode time.Duration
	nonce       time.Duration
	txCode      time.Duration
	accessToken time.Duration
	credential  time.Duration
}

type smtpParameters struct {
	host     string
	port     int
	username string
	password string
	from     string
}

type prometheusMetricsProviderParams struct {
	url string
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
	sampleRatio float64
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

// nolint: gocyclo,funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	issuerURL, err := cmdutils.GetUserSetVarFromString(cmd, issuerURLFlagName, issuerURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	issuerDID, err := cmdutils.GetUserSetVarFromString(cmd, issuerDIDFlagName, issuerDIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	tokenSecret, err := cmdutils.GetUserSetVarFromString(cmd, tokenSecretFlagName, tokenSecretEnvKey, false)
	if err != nil {
		return nil, err
	}

	apiKeys, err := cmdutils.GetUserSetCSVVar(cmd, apiKeyFlagName, apiKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	signerURL, err := cmdutils.GetUserSetVarFromString(cmd, signerURLFlagName, signerURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	allowedSigner, err := cmdutils.GetUserSetVarFromString(cmd, allowedSignerFlagName, allowedSignerEnvKey, false)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(allowedSigner) == "" {
		return nil, fmt.Errorf("%s must not be blank", allowedSignerFlagName)
	}

	verifierJWKSURL, err := cmdutils.GetUserSetVarFromString(cmd, verifierJWKSURLFlagName,
		verifierJWKSURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	verifierNonceURL := cmdutils.GetUserSetOptionalVarFromString(cmd, verifierNonceURLFlagName,
		verifierNonceURLEnvKey)

	walletURL := cmdutils.GetUserSetOptionalVarFromString(cmd, walletURLFlagName, walletURLEnvKey)

	loggingLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	ttlParams, err := getTTLParameters(cmd)
	if err != nil {
		return nil, err
	}

	pinLength, err := getInt(cmd, pinLengthFlagName, pinLengthEnvKey, defaultPINLength)
	if err != nil {
		return nil, err
	}

	smtpParams, err := getSMTPParameters(cmd)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := getDuration(cmd, httpTimeoutFlagName, httpTimeoutEnvKey, defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	cacheParams, err := common.CacheParams(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)

	var promParams *prometheusMetricsProviderParams

	if metricsProviderName == metricsProviderPrometheus {
		promParams, err = getPrometheusMetricsProviderParams(cmd)
		if err != nil {
			return nil, err
		}
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:                         hostURL,
		issuerURL:                       issuerURL,
		walletURL:                       walletURL,
		issuerDID:                       issuerDID,
		tokenSecret:                     tokenSecret,
		apiKeys:                         apiKeys,
		signerURL:                       signerURL,
		allowedSigner:                   allowedSigner,
		verifierNonceURL:                verifierNonceURL,
		verifierJWKSURL:                 verifierJWKSURL,
		logLevel:                        loggingLevel,
		ttlParams:                       ttlParams,
		pinLength:                       pinLength,
		smtpParams:                      smtpParams,
		httpTimeout:                     httpTimeout,
		tlsParameters:                   tlsParams,
		dbParameters:                    dbParams,
		cacheParameters:                 cacheParams,
		metricsProviderName:             metricsProviderName,
		prometheusMetricsProviderParams: promParams,
		tracingParams:                   tracingParams,
	}, nil
}

func getTTLParameters(cmd *cobra.Command) (*ttlParameters, error) {
	var (
		params = &ttlParameters{}
		err    error
	)

	for _, d := range []struct {
		flagName, envKey string
		defaultValue     time.Duration
		target           *time.Duration
	}{
		{offerTTLFlagName, offerTTLEnvKey, defaultOfferTTL, &params.offer},
		{preAuthTTLFlagName, preAuthTTLEnvKey, defaultPreAuthTTL, &params.preAuthCode},
		{nonceTTLFlagName, nonceTTLEnvKey, defaultNonceTTL, &params.nonce},
		{txCodeTTLFlagName, txCodeTTLEnvKey, defaultTxCodeTTL, &params.txCode},
		{accessTokenTTLFlagName, accessTokenTTLEnvKey, defaultAccessTokenTTL, &params.accessToken},
		{credentialTTLFlagName, credentialTTLEnvKey, defaultCredentialTTL, &params.credential},
	} {
		*d.target, err = getDuration(cmd, d.flagName, d.envKey, d.defaultValue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.flagName, err)
		}
	}

	return params, nil
}

func getSMTPParameters(cmd *cobra.Command) (*smtpParameters, error) {
	port, err := getInt(cmd, smtpPortFlagName, smtpPortEnvKey, defaultSMTPPort)
	if err != nil {
		return nil, err
	}

	return &smtpParameters{
		host:     cmdutils.GetUserSetOptionalVarFromString(cmd, smtpHostFlagName, smtpHostEnvKey),
		port:     port,
		username: cmdutils.GetUserSetOptionalVarFromString(cmd, smtpUsernameFlagName, smtpUsernameEnvKey),
		password: cmdutils.GetUserSetOptionalVarFromString(cmd, smtpPasswordFlagName, smtpPasswordEnvKey),
		from:     cmdutils.GetUserSetOptionalVarFromString(cmd, smtpFromFlagName, smtpFromEnvKey),
	}, nil
}

func getPrometheusMetricsProviderParams(cmd *cobra.Command) (*prometheusMetricsProviderParams, error) {
	promMetricsURL, err := cmdutils.GetUserSetVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &prometheusMetricsProviderParams{url: promMetricsURL}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPoolString := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey)

	tlsSystemCertPool := false

	if tlsSystemCertPoolString != "" {
		var err error

		tlsSystemCertPool, err = strconv.ParseBool(tlsSystemCertPoolString)
		if err != nil {
			return nil, err
		}
	}

	tlsCACerts := cmdutils.GetUserSetOptionalCSVVar(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	tlsServeCertPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey)

	tlsServeKeyPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey)

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        tlsCACerts,
		serveCertPath:  tlsServeCertPath,
		serveKeyPath:   tlsServeKeyPath,
	}, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey)

	if !tracing.IsExporterSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing exporter: %s", exporter)
	}

	var sampleRatio float64

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingSampleRatioFlagName,
		tracingSampleRatioEnvKey); v != "" {
		var err error

		sampleRatio, err = strconv.ParseFloat(v, 64)
		if err != nil || sampleRatio <= 0 || sampleRatio > 1 {
			return nil, fmt.Errorf("invalid value [%s] for %s: must be in (0, 1]", v, tracingSampleRatioFlagName)
		}
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
		sampleRatio: sampleRatio,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func getInt(cmd *cobra.Command, flagName, envKey string, defaultValue int) (int, error) {
	str := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if str == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(str)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s] for %s: %w", str, flagName, err)
	}

	return value, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(issuerURLFlagName, issuerURLFlagShorthand, "", issuerURLFlagUsage)
	startCmd.Flags().String(walletURLFlagName, "", walletURLFlagUsage)
	startCmd.Flags().String(issuerDIDFlagName, "", issuerDIDFlagUsage)
	startCmd.Flags().String(tokenSecretFlagName, "", tokenSecretFlagUsage)
	startCmd.Flags().StringSlice(apiKeyFlagName, []string{}, apiKeyFlagUsage)
	startCmd.Flags().String(signerURLFlagName, "", signerURLFlagUsage)
	startCmd.Flags().String(allowedSignerFlagName, "", allowedSignerFlagUsage)
	startCmd.Flags().String(verifierNonceURLFlagName, "", verifierNonceURLFlagUsage)
	startCmd.Flags().String(verifierJWKSURLFlagName, "", verifierJWKSURLFlagUsage)
	startCmd.Flags().String(offerTTLFlagName, "", offerTTLFlagUsage)
	startCmd.Flags().String(preAuthTTLFlagName, "", preAuthTTLFlagUsage)
	startCmd.Flags().String(nonceTTLFlagName, "", nonceTTLFlagUsage)
	startCmd.Flags().String(txCodeTTLFlagName, "", txCodeTTLFlagUsage)
	startCmd.Flags().String(accessTokenTTLFlagName, "", accessTokenTTLFlagUsage)
	startCmd.Flags().String(credentialTTLFlagName, "", credentialTTLFlagUsage)
	startCmd.Flags().String(pinLengthFlagName, "", pinLengthFlagUsage)
	startCmd.Flags().String(smtpHostFlagName, "", smtpHostFlagUsage)
	startCmd.Flags().String(smtpPortFlagName, "", smtpPortFlagUsage)
	startCmd.Flags().String(smtpUsernameFlagName, "", smtpUsernameFlagUsage)
	startCmd.Flags().String(smtpPasswordFlagName, "", smtpPasswordFlagUsage)
	startCmd.Flags().String(smtpFromFlagName, "", smtpFromFlagUsage)
	startCmd.Flags().String(httpTimeoutFlagName, "", httpTimeoutFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", allowedPromHTTPURLFlagNameUsage)
	startCmd.Flags().StringP(tracingExporterFlagName, "", "", tracingExporterFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)
	startCmd.Flags().String(tracingSampleRatioFlagName, "", tracingSampleRatioFlagUsage)

	common.Flags(startCmd)
}
