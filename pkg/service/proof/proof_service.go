/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination proof_service_mocks_test.go -self_package mocks -package proof_test -source=proof_service.go -mock_names nonceValidator=MockNonceValidator

package proof

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/pkg/did/didkey"
)

// TypHeader is the media type wallets must declare on key proofs.
const TypHeader = "openid4vci-proof+jwt"

var logger = log.New("proof")

// ErrInvalidProof marks proofs rejected on their own content.
var ErrInvalidProof = errors.New("invalid proof")

var supportedAlgorithms = []string{string(jose.ES256), string(jose.EdDSA)}

// SupportedAlgorithms returns the JWS algorithms accepted on key proofs.
func SupportedAlgorithms() []string {
	return append([]string(nil), supportedAlgorithms...)
}

// ProofValidationError wraps every failure raised while validating a proof.
type ProofValidationError struct {
	Err error
}

func (e *ProofValidationError) Error() string {
	return "proof validation: " + e.Err.Error()
}

func (e *ProofValidationError) Unwrap() error {
	return e.Err
}

type nonceValidator interface {
	ValidateNonce(ctx context.Context, nonce, accessToken string) (bool, error)
}

// KeyResolver returns the public key of a DID.
type KeyResolver func(did string) (crypto.PublicKey, error)

type Config struct {
	Nonces      nonceValidator
	KeyResolver KeyResolver
	Now         func() time.Time
}

// Result of a proof validation.
type Result struct {
	Valid     bool
	HolderDID string
	Nonce     string
}

type Service struct {
	nonces      nonceValidator
	keyResolver KeyResolver
	now         func() time.Time
}

type proofClaims struct {
	jwt.Claims
	Nonce string `json:"nonce"`
}

func NewService(config *Config) *Service {
	s := &Service{
		nonces:      config.Nonces,
		keyResolver: config.KeyResolver,
		now:         config.Now,
	}

	if s.keyResolver == nil {
		s.keyResolver = didkey.Resolve
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// IsProofValid reports whether the proof is well formed, signed by the key in its
// kid and carries a nonce the verifier still considers alive.
func (s *Service) IsProofValid(ctx context.Context, jwtProof, accessToken string) (bool, error) {
	res, err := s.Validate(ctx, jwtProof, accessToken)
	if err != nil {
		return false, err
	}

	return res.Valid, nil
}

// Validate runs the proof checks and returns the holder DID taken from the kid.
func (s *Service) Validate(ctx context.Context, jwtProof, accessToken string) (*Result, error) {
	res, err := s.validate(ctx, jwtProof, accessToken)
	if err != nil {
		logger.Infoc(ctx, "proof rejected", log.WithError(err))

		return nil, &ProofValidationError{Err: err}
	}

	return res, nil
}

func (s *Service) validate(ctx context.Context, jwtProof, accessToken string) (*Result, error) {
	tok, err := jwt.ParseSigned(jwtProof)
	if err != nil {
		return nil, fmt.Errorf("%w: parse jwt: %w", ErrInvalidProof, err)
	}

	if len(tok.Headers) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one signature", ErrInvalidProof)
	}

	header := tok.Headers[0]

	if !lo.Contains(supportedAlgorithms, header.Algorithm) {
		return nil, fmt.Errorf("%w: unsupported alg %q", ErrInvalidProof, header.Algorithm)
	}

	if typ, _ := header.ExtraHeaders[jose.HeaderType].(string); typ != TypHeader {
		return nil, fmt.Errorf("%w: invalid typ", ErrInvalidProof)
	}

	if header.KeyID == "" {
		return nil, fmt.Errorf("%w: missing kid", ErrInvalidProof)
	}

	holderDID, _, _ := strings.Cut(header.KeyID, "#")

	key, err := s.keyResolver(holderDID)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve kid: %w", ErrInvalidProof, err)
	}

	var claims proofClaims

	if err = tok.Claims(key, &claims); err != nil {
		return nil, fmt.Errorf("%w: signature: %w", ErrInvalidProof, err)
	}

	if err = s.checkClaims(&claims); err != nil {
		return nil, err
	}

	valid, err := s.nonces.ValidateNonce(ctx, claims.Nonce, accessToken)
	if err != nil {
		return nil, fmt.Errorf("validate nonce: %w", err)
	}

	return &Result{
		Valid:     valid,
		HolderDID: holderDID,
		Nonce:     claims.Nonce,
	}, nil
}

func (s *Service) checkClaims(claims *proofClaims) error {
	if len(claims.Audience) == 0 {
		return fmt.Errorf("%w: missing aud", ErrInvalidProof)
	}

	if claims.IssuedAt == nil {
		return fmt.Errorf("%w: missing iat", ErrInvalidProof)
	}

	if claims.Expiry != nil && s.now().After(claims.Expiry.Time()) {
		return fmt.Errorf("%w: proof expired", ErrInvalidProof)
	}

	if claims.Nonce == "" {
		return fmt.Errorf("%w: missing nonce", ErrInvalidProof)
	}

	return nil
}
