/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package oidc4ci_test -source=controller.go -mock_names tokenService=MockTokenService,offerService=MockOfferService,issuanceService=MockIssuanceService,nonceService=MockNonceService

package oidc4ci

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/observability/tracing/attributeutil"
	"github.com/vcissuer/issuer/pkg/restapi/resterr"
	issuanceerr "github.com/vcissuer/issuer/pkg/restapi/resterr/issuance"
	oidc4cierr "github.com/vcissuer/issuer/pkg/restapi/resterr/oidc4ci"
	"github.com/vcissuer/issuer/pkg/restapi/resterr/rfc6749"
	"github.com/vcissuer/issuer/pkg/restapi/v1/util"
	"github.com/vcissuer/issuer/pkg/service/credentialoffer"
	"github.com/vcissuer/issuer/pkg/service/issuance"
	"github.com/vcissuer/issuer/pkg/service/proof"
	"github.com/vcissuer/issuer/pkg/service/signing"
	"github.com/vcissuer/issuer/pkg/service/token"
)

var logger = log.New("oidc4ci-controller")

const (
	tokenPath              = "/token"
	credentialPath         = "/credential"
	deferredCredentialPath = "/deferred_credential"
	nonceValidationPath    = "/nonce-valid"
	wellKnownPath          = "/.well-known/openid-credential-issuer"
	credentialOfferPath    = "/credential-offer"
)

type router interface {
	GET(path string, h echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

type tokenService interface {
	IssueToken(ctx context.Context, grantType, preAuthorizedCode, txCode string) (*token.Response, error)
	ParseAccessToken(accessToken string) (*token.AccessClaims, error)
}

type offerService interface {
	BuildCredentialOfferURI(ctx context.Context, transactionCode string) (*credentialoffer.OfferURI, error)
	BuildNewCredentialOfferURI(ctx context.Context, cTransactionCode string) (*credentialoffer.OfferURI, error)
	GetCustomCredentialOffer(ctx context.Context, nonce string) (*credentialoffer.CredentialOffer, error)
}

type issuanceService interface {
	IssueCredential(ctx context.Context, accessToken string,
		req *issuance.CredentialRequest) (*issuance.CredentialResponse, error)
	GetDeferredCredential(ctx context.Context, transactionID string) (string, error)
}

type nonceService interface {
	IsValid(ctx context.Context, nonce string) (bool, error)
}

// Config holds configuration options for Controller.
type Config struct {
	TokenService    tokenService
	OfferService    offerService
	IssuanceService issuanceService
	NonceService    nonceService
	Tracer          trace.Tracer
	// IssuerURL is the external URL wallets reach the issuer on.
	IssuerURL string
}

// Controller for the wallet facing OIDC4VCI API.
type Controller struct {
	tokens    tokenService
	offers    offerService
	issuance  issuanceService
	nonces    nonceService
	tracer    trace.Tracer
	issuerURL string
}

// NewController creates a new Controller instance.
func NewController(config *Config) *Controller {
	c := &Controller{
		tokens:    config.TokenService,
		offers:    config.OfferService,
		issuance:  config.IssuanceService,
		nonces:    config.NonceService,
		tracer:    config.Tracer,
		issuerURL: config.IssuerURL,
	}

	if c.tracer == nil {
		c.tracer = trace.NewNoopTracerProvider().Tracer("")
	}

	return c
}

// RegisterHandlers adds the controller routes to r.
func (c *Controller) RegisterHandlers(r router) {
	r.POST(tokenPath, c.OidcToken)
	r.POST(credentialPath, c.OidcCredential)
	r.POST(deferredCredentialPath, c.OidcDeferredCredential)
	r.POST(nonceValidationPath, c.ValidateNonce)
	r.GET(wellKnownPath, c.IssuerMetadata)
	r.GET(credentialOfferPath+"/transaction-code/:code", c.CredentialOfferByTransactionCode)
	r.GET(credentialOfferPath+"/c-transaction-code/:code", c.CredentialOfferByContinuationCode)
	r.GET(credentialOfferPath+"/:nonce", c.CredentialOffer)
}

// OidcToken exchanges a pre-authorized code for an access token (POST /token).
//
// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0.html#section-6
func (c *Controller) OidcToken(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "OidcToken")
	defer span.End()

	if err := req.ParseForm(); err != nil {
		return rfc6749.NewInvalidRequestError(err)
	}

	span.SetAttributes(attributeutil.FormParams("form", req.PostForm,
		attributeutil.WithRedacted("pre-authorized_code", "tx_code")))

	grantType := req.PostForm.Get("grant_type")
	if grantType == "" {
		return rfc6749.NewInvalidRequestError(errors.New("grant_type is required"))
	}

	preAuthorizedCode := req.PostForm.Get("pre-authorized_code")
	if grantType == token.PreAuthorizedCodeGrantType && preAuthorizedCode == "" {
		return rfc6749.NewInvalidRequestError(errors.New("pre-authorized_code is required"))
	}

	resp, err := c.tokens.IssueToken(ctx, grantType, preAuthorizedCode, req.PostForm.Get("tx_code"))
	if err != nil {
		switch {
		case errors.Is(err, token.ErrUnsupportedGrantType):
			return rfc6749.NewUnsupportedGrantTypeError(err)
		case errors.Is(err, token.ErrInvalidGrant):
			return rfc6749.NewInvalidGrantError(err)
		default:
			return err
		}
	}

	return util.Respond(e, http.StatusOK, resp, util.NoStore())
}

// OidcCredential issues the credential bound to the access token (POST /credential).
//
// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0.html#section-7
func (c *Controller) OidcCredential(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "OidcCredential")
	defer span.End()

	accessToken := util.BearerToken(req)
	if accessToken == "" {
		return rfc6749.NewInvalidTokenError(errors.New("missing access token"))
	}

	var credentialReq issuance.CredentialRequest

	if err := e.Bind(&credentialReq); err != nil {
		return oidc4cierr.NewInvalidCredentialRequestError(err).UsePublicAPIResponse()
	}

	if credentialReq.Format == "" {
		return oidc4cierr.NewInvalidCredentialRequestError(errors.New("format is required")).
			UsePublicAPIResponse()
	}

	span.SetAttributes(attribute.String("format", credentialReq.Format))

	resp, err := c.issuance.IssueCredential(ctx, accessToken, &credentialReq)
	if err != nil {
		return toRFCError(err, "IssueCredential")
	}

	if resp.TransactionID != "" {
		return util.Respond(e, http.StatusAccepted, resp)
	}

	return util.Respond(e, http.StatusOK, resp)
}

// OidcDeferredCredential returns a credential signed after the credential request
// (POST /deferred_credential).
//
// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0.html#section-9
func (c *Controller) OidcDeferredCredential(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "OidcDeferredCredential")
	defer span.End()

	if err := c.authenticateWallet(req); err != nil {
		return err
	}

	var deferredReq DeferredCredentialRequest

	if err := e.Bind(&deferredReq); err != nil {
		return oidc4cierr.NewInvalidCredentialRequestError(err).UsePublicAPIResponse()
	}

	vc, err := c.issuance.GetDeferredCredential(ctx, deferredReq.TransactionID)
	if err != nil {
		return toRFCError(err, "GetDeferredCredential")
	}

	return util.Respond(e, http.StatusOK, &DeferredCredentialResponse{Credential: vc})
}

// ValidateNonce reports whether a c_nonce is alive (POST /nonce-valid).
func (c *Controller) ValidateNonce(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "ValidateNonce")
	defer span.End()

	if err := c.authenticateWallet(req); err != nil {
		return err
	}

	nonce := e.FormValue("nonce")
	if nonce == "" {
		return rfc6749.NewInvalidRequestError(errors.New("nonce is required"))
	}

	valid, err := c.nonces.IsValid(ctx, nonce)
	if err != nil {
		return err
	}

	return util.Respond(e, http.StatusOK, &NonceValidationResponse{IsNonceValid: valid})
}

// CredentialOfferByTransactionCode redeems an activation code for a credential offer URI
// (GET /credential-offer/transaction-code/:code).
func (c *Controller) CredentialOfferByTransactionCode(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "CredentialOfferByTransactionCode")
	defer span.End()

	offerURI, err := c.offers.BuildCredentialOfferURI(ctx, e.Param("code"))
	if err != nil {
		return toRFCError(err, "BuildCredentialOfferURI")
	}

	return util.Respond(e, http.StatusOK, offerURI)
}

// CredentialOfferByContinuationCode rebuilds a credential offer URI from a continuation code
// (GET /credential-offer/c-transaction-code/:code).
func (c *Controller) CredentialOfferByContinuationCode(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "CredentialOfferByContinuationCode")
	defer span.End()

	offerURI, err := c.offers.BuildNewCredentialOfferURI(ctx, e.Param("code"))
	if err != nil {
		return toRFCError(err, "BuildNewCredentialOfferURI")
	}

	return util.Respond(e, http.StatusOK, offerURI)
}

// CredentialOffer returns the credential offer referenced by a credential_offer_uri
// (GET /credential-offer/:nonce).
func (c *Controller) CredentialOffer(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "CredentialOffer")
	defer span.End()

	offer, err := c.offers.GetCustomCredentialOffer(ctx, e.Param("nonce"))
	if err != nil {
		return toRFCError(err, "GetCustomCredentialOffer")
	}

	return util.Respond(e, http.StatusOK, offer)
}

// IssuerMetadata serves the credential issuer metadata (GET /.well-known/openid-credential-issuer).
//
// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0.html#section-11.2
func (c *Controller) IssuerMetadata(e echo.Context) error {
	metadata, err := c.issuerMetadata()
	if err != nil {
		return err
	}

	return util.Respond(e, http.StatusOK, metadata)
}

func (c *Controller) issuerMetadata() (*IssuerMetadata, error) {
	endpoint := func(path string) (string, error) {
		u, err := url.JoinPath(c.issuerURL, path)
		if err != nil {
			return "", fmt.Errorf("build %s endpoint: %w", path, err)
		}

		return u, nil
	}

	metadata := &IssuerMetadata{
		CredentialIssuer:                  c.issuerURL,
		CredentialConfigurationsSupported: map[string]CredentialConfiguration{},
	}

	var err error

	for dst, path := range map[*string]string{
		&metadata.CredentialEndpoint:         credentialPath,
		&metadata.DeferredCredentialEndpoint: deferredCredentialPath,
		&metadata.TokenEndpoint:              tokenPath,
	} {
		if *dst, err = endpoint(path); err != nil {
			return nil, err
		}
	}

	for _, t := range credential.Types() {
		d := t.Descriptor()

		metadata.CredentialConfigurationsSupported[d.ConfigurationID] = CredentialConfiguration{
			Format:                               string(credential.FormatJWTVCJSON),
			CryptographicBindingMethodsSupported: []string{"did:key"},
			CredentialSigningAlgValuesSupported:  []string{"ES256"},
			CredentialDefinition: CredentialDefinition{
				Type: []string{"VerifiableCredential", d.W3CType},
			},
			ProofTypesSupported: map[string]ProofTypeAlgos{
				issuance.ProofTypeJWT: {ProofSigningAlgValuesSupported: proof.SupportedAlgorithms()},
			},
		}
	}

	return metadata, nil
}

func (c *Controller) authenticateWallet(req *http.Request) error {
	accessToken := util.BearerToken(req)
	if accessToken == "" {
		return rfc6749.NewInvalidTokenError(errors.New("missing access token"))
	}

	if _, err := c.tokens.ParseAccessToken(accessToken); err != nil {
		return rfc6749.NewInvalidTokenError(err)
	}

	return nil
}

// toRFCError maps service errors to the error responses of the wallet API.
// Errors with no mapping are reported as internal errors.
func toRFCError(err error, operation string) error {
	var (
		proofErr    *proof.ProofValidationError
		encodingErr *signing.EncodingError
	)

	switch {
	case errors.Is(err, token.ErrInvalidAccessToken):
		return rfc6749.NewInvalidTokenError(err).WithOperation(operation)
	case errors.Is(err, credential.ErrUnsupportedFormat):
		return oidc4cierr.NewUnsupportedCredentialFormatError(err).WithOperation(operation).UsePublicAPIResponse()
	case errors.As(err, &proofErr), errors.Is(err, issuance.ErrInvalidProof):
		return oidc4cierr.NewInvalidProofError(err).
			WithComponent(resterr.ProofSvcComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.Is(err, issuance.ErrInvalidTransactionID):
		return oidc4cierr.NewInvalidTransactionIDError(err).WithOperation(operation).UsePublicAPIResponse()
	case errors.Is(err, issuance.ErrIssuancePending):
		return oidc4cierr.NewIssuancePendingError(err).WithOperation(operation).UsePublicAPIResponse()
	case errors.Is(err, issuance.ErrInvalidCredentialRequest):
		return oidc4cierr.NewInvalidCredentialRequestError(err).WithOperation(operation).UsePublicAPIResponse()
	case errors.Is(err, credentialoffer.ErrInvalidCode):
		return issuanceerr.NewInvalidCodeError(err).
			WithComponent(resterr.CredentialOfferSvcComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.Is(err, credentialoffer.ErrAlreadyIssued):
		return issuanceerr.NewAlreadyIssuedError(err).
			WithComponent(resterr.CredentialOfferSvcComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.Is(err, credentialoffer.ErrOfferNotFound):
		return oidc4cierr.NewNotFoundError(err).
			WithComponent(resterr.CredentialOfferSvcComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.As(err, &encodingErr):
		logger.Error("Signing pipeline failed", logfields.WithStage(encodingErr.Stage), log.WithError(err))

		return issuanceerr.NewEncodingError(err).
			WithComponent(resterr.SigningSvcComponent).
			WithOperation(operation).
			WithIncorrectValue(encodingErr.Stage).
			UsePublicAPIResponse()
	default:
		return err
	}
}
