/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination token_service_mocks_test.go -self_package mocks -package token_test -source=token_service.go -mock_names preAuthLookup=MockPreAuthLookup,nonceMinter=MockNonceMinter

package token

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/observability/metrics"
	"github.com/vcissuer/issuer/pkg/observability/metrics/noop"
	"github.com/vcissuer/issuer/pkg/service/preauth"
)

const (
	// PreAuthorizedCodeGrantType is the only grant accepted by the token endpoint.
	PreAuthorizedCodeGrantType = "urn:ietf:params:oauth:grant-type:pre-authorized_code"

	// TokenTypeBearer is the type of issued access tokens.
	TokenTypeBearer = "bearer"

	defaultTokenTTL = 24 * time.Hour
	minSecretLength = 32
	verifyLeeway    = 5 * time.Second
)

var logger = log.New("token")

var (
	// ErrInvalidGrant covers a wrong grant type, an unknown or expired code and a wrong tx code.
	ErrInvalidGrant = errors.New("invalid grant")
	// ErrUnsupportedGrantType is returned for grants other than the pre-authorized code.
	// It wraps ErrInvalidGrant.
	ErrUnsupportedGrantType = fmt.Errorf("%w: unsupported grant type", ErrInvalidGrant)
	// ErrInvalidAccessToken is returned for access tokens that fail verification.
	ErrInvalidAccessToken = errors.New("invalid access token")
)

type preAuthLookup interface {
	Lookup(ctx context.Context, code string) (*preauth.Binding, error)
}

type nonceMinter interface {
	Mint(ctx context.Context) (string, error)
	TTL() time.Duration
}

// Response is the token endpoint response.
type Response struct {
	AccessToken    string `json:"access_token"`
	TokenType      string `json:"token_type"`
	ExpiresIn      int64  `json:"expires_in"`
	Nonce          string `json:"nonce"`
	NonceExpiresIn int64  `json:"nonce_expires_in"`
}

// AccessClaims are the verified claims of an access token.
type AccessClaims struct {
	Issuer            string
	PreAuthorizedCode string
	IssuedAt          time.Time
	Expiry            time.Time
}

// Config holds the service dependencies.
type Config struct {
	PreAuth  preAuthLookup
	Nonces   nonceMinter
	Issuer   string
	Secret   []byte
	TokenTTL time.Duration
	Metrics  metrics.Metrics
	Now      func() time.Time
}

// Service redeems pre-authorized codes for access tokens.
type Service struct {
	preAuth  preAuthLookup
	nonces   nonceMinter
	issuer   string
	secret   []byte
	signer   jose.Signer
	tokenTTL time.Duration
	metrics  metrics.Metrics
	now      func() time.Time
}

// NewService creates a token service signing access tokens with HS256.
func NewService(config *Config) (*Service, error) {
	if len(config.Secret) < minSecretLength {
		return nil, fmt.Errorf("access token secret must be at least %d bytes", minSecretLength)
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: config.Secret},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	s := &Service{
		preAuth:  config.PreAuth,
		nonces:   config.Nonces,
		issuer:   config.Issuer,
		secret:   config.Secret,
		signer:   signer,
		tokenTTL: config.TokenTTL,
		metrics:  config.Metrics,
		now:      config.Now,
	}

	if s.tokenTTL == 0 {
		s.tokenTTL = defaultTokenTTL
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s, nil
}

// IssueToken exchanges a pre-authorized code and its tx code for an access token
// and a fresh nonce. The code binding is left in place: the credential offer
// workflow still needs it to correlate the procedure.
func (s *Service) IssueToken(ctx context.Context, grantType, preAuthorizedCode, txCode string) (*Response, error) {
	if grantType != PreAuthorizedCodeGrantType {
		s.metrics.TokenRejected()

		return nil, fmt.Errorf("%w %q", ErrUnsupportedGrantType, grantType)
	}

	binding, err := s.preAuth.Lookup(ctx, preAuthorizedCode)
	if err != nil {
		s.metrics.TokenRejected()

		if errors.Is(err, preauth.ErrCodeNotFound) {
			return nil, fmt.Errorf("%w: invalid pre-authorized code", ErrInvalidGrant)
		}

		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(binding.TxCode), []byte(txCode)) != 1 {
		s.metrics.TokenRejected()

		logger.Infoc(ctx, "tx code mismatch", logfields.WithCode(preAuthorizedCode))

		return nil, fmt.Errorf("%w: invalid tx code", ErrInvalidGrant)
	}

	nonce, err := s.nonces.Mint(ctx)
	if err != nil {
		return nil, fmt.Errorf("mint nonce: %w", err)
	}

	now := s.now().UTC()

	accessToken, err := jwt.Signed(s.signer).Claims(jwt.Claims{
		Issuer:   s.issuer,
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(s.tokenTTL)),
		ID:       preAuthorizedCode,
	}).CompactSerialize()
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	s.metrics.TokenIssued()

	logger.Debugc(ctx, "access token issued",
		logfields.WithCredentialID(binding.CredentialID), logfields.WithCode(preAuthorizedCode))

	return &Response{
		AccessToken:    accessToken,
		TokenType:      TokenTypeBearer,
		ExpiresIn:      int64(s.tokenTTL.Seconds()),
		Nonce:          nonce,
		NonceExpiresIn: int64(s.nonces.TTL().Seconds()),
	}, nil
}

// ParseAccessToken verifies an access token issued by this service.
func (s *Service) ParseAccessToken(accessToken string) (*AccessClaims, error) {
	tok, err := jwt.ParseSigned(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}

	for _, h := range tok.Headers {
		if h.Algorithm != string(jose.HS256) {
			return nil, fmt.Errorf("%w: unexpected algorithm %q", ErrInvalidAccessToken, h.Algorithm)
		}
	}

	var claims jwt.Claims

	if err = tok.Claims(s.secret, &claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}

	if err = claims.ValidateWithLeeway(jwt.Expected{
		Issuer: s.issuer,
		Time:   s.now(),
	}, verifyLeeway); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing jti", ErrInvalidAccessToken)
	}

	return &AccessClaims{
		Issuer:            claims.Issuer,
		PreAuthorizedCode: claims.ID,
		IssuedAt:          claims.IssuedAt.Time(),
		Expiry:            claims.Expiry.Time(),
	}, nil
}
