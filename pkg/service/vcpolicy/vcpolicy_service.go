/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination vcpolicy_service_mocks_test.go -self_package mocks -package vcpolicy_test -source=vcpolicy_service.go -mock_names tokenVerifier=MockTokenVerifier

package vcpolicy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/observability/metrics"
	"github.com/vcissuer/issuer/pkg/observability/metrics/noop"
)

var logger = log.New("vcpolicy")

var (
	// ErrInsufficientPermission is matched by every PermissionError.
	ErrInsufficientPermission = errors.New("insufficient permission")
	// ErrParse is returned when the caller credential or the request payload cannot be read.
	ErrParse = errors.New("parse error")
)

// PermissionError names the requirement the caller did not meet.
type PermissionError struct {
	Requirement string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInsufficientPermission, e.Requirement)
}

func (e *PermissionError) Is(target error) bool {
	return target == ErrInsufficientPermission
}

type tokenVerifier interface {
	VerifyTokenWithoutExpiration(ctx context.Context, token string) (map[string]interface{}, error)
}

type Config struct {
	// AllowedSigner is the organization identifier of the platform signer.
	AllowedSigner string
	Verifier      tokenVerifier
	Metrics       metrics.Metrics
}

// Service decides whether a caller may request issuance of a credential type.
type Service struct {
	allowedSigner string
	verifier      tokenVerifier
	metrics       metrics.Metrics
}

func NewService(config *Config) *Service {
	s := &Service{
		allowedSigner: config.AllowedSigner,
		verifier:      config.Verifier,
		metrics:       config.Metrics,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	return s
}

// Authorize checks the caller credential carried in callerToken against the
// policy of the requested credential type. payload is the requested credential
// content. idToken is only consulted for certification requests.
func (s *Service) Authorize(
	ctx context.Context,
	callerToken string,
	requested credential.Type,
	payload []byte,
	idToken string,
) error {
	err := s.authorize(ctx, callerToken, requested, payload, idToken)
	if err != nil {
		var permErr *PermissionError
		if errors.As(err, &permErr) {
			s.metrics.PolicyDenied(requested.String())

			logger.Infoc(ctx, "issuance denied", logfields.WithCredentialType(requested.String()),
				logfields.WithRequirement(permErr.Requirement))
		}

		return err
	}

	return nil
}

func (s *Service) authorize(
	ctx context.Context,
	callerToken string,
	requested credential.Type,
	payload []byte,
	idToken string,
) error {
	callerVC, err := vcFromToken(callerToken)
	if err != nil {
		return err
	}

	callerType, err := matchCallerType(callerVC, acceptedCallerTypes(requested))
	if err != nil {
		return err
	}

	caller, err := callerType.ParseMandate(callerVC)
	if err != nil {
		return fmt.Errorf("%w: caller mandate: %w", ErrParse, err)
	}

	switch requested {
	case credential.LEARCredentialEmployee, credential.LEARCredentialMachine:
		return s.authorizeMandate(caller, payload)
	case credential.VerifiableCertification:
		return s.authorizeCertification(ctx, caller, idToken)
	default:
		return fmt.Errorf("%w: %d", credential.ErrUnknownType, int(requested))
	}
}

func (s *Service) authorizeMandate(caller *credential.Mandate, payload []byte) error {
	if !caller.HasPower(functionOnboarding, actionExecute) {
		return &PermissionError{Requirement: RequirementOnboardingExecute}
	}

	if signerPolicy(caller, s.allowedSigner) {
		return nil
	}

	requested, err := credential.ParsePayloadMandate(payload)
	if err != nil {
		return fmt.Errorf("%w: requested mandate: %w", ErrParse, err)
	}

	if !mandatorPolicy(caller, requested) {
		return &PermissionError{Requirement: RequirementSignerOrMandator}
	}

	return nil
}

// authorizeCertification requires the Certification/Attest power on both the
// caller credential and the credential behind idToken. The id token is checked
// for signature only; its expiry is not enforced.
func (s *Service) authorizeCertification(ctx context.Context, caller *credential.Mandate, idToken string) error {
	if !certificationPolicy(caller) {
		return &PermissionError{Requirement: RequirementCertificationAttest}
	}

	if idToken == "" {
		return &PermissionError{Requirement: RequirementIDTokenAttest}
	}

	claims, err := s.verifier.VerifyTokenWithoutExpiration(ctx, idToken)
	if err != nil {
		logger.Infoc(ctx, "id token rejected", log.WithError(err))

		return &PermissionError{Requirement: RequirementIDTokenAttest}
	}

	vcBytes, err := vcClaim(claims)
	if err != nil {
		return err
	}

	idType, err := matchCallerType(vcBytes, []credential.Type{
		credential.LEARCredentialEmployee, credential.LEARCredentialMachine,
	})
	if err != nil {
		var permErr *PermissionError
		if errors.As(err, &permErr) {
			return &PermissionError{Requirement: RequirementIDTokenAttest}
		}

		return err
	}

	idMandate, err := idType.ParseMandate(vcBytes)
	if err != nil {
		return fmt.Errorf("%w: id token mandate: %w", ErrParse, err)
	}

	if !certificationPolicy(idMandate) {
		return &PermissionError{Requirement: RequirementIDTokenAttest}
	}

	return nil
}

// CallerMandate returns the mandate of a LEAR caller credential. The caller
// may be an employee or a machine.
func (s *Service) CallerMandate(callerToken string) (*credential.Mandate, error) {
	callerVC, err := vcFromToken(callerToken)
	if err != nil {
		return nil, err
	}

	callerType, err := matchCallerType(callerVC, []credential.Type{
		credential.LEARCredentialEmployee, credential.LEARCredentialMachine,
	})
	if err != nil {
		return nil, err
	}

	m, err := callerType.ParseMandate(callerVC)
	if err != nil {
		return nil, fmt.Errorf("%w: caller mandate: %w", ErrParse, err)
	}

	return m, nil
}

// vcFromToken returns the raw vc claim of a caller token. The token signature
// is verified by the transport layer before the policy runs.
func vcFromToken(token string) ([]byte, error) {
	tok, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, fmt.Errorf("%w: caller token: %w", ErrParse, err)
	}

	var claims map[string]interface{}

	if err = tok.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return nil, fmt.Errorf("%w: caller token claims: %w", ErrParse, err)
	}

	return vcClaim(claims)
}

func vcClaim(claims map[string]interface{}) ([]byte, error) {
	vc, ok := claims["vc"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: token has no vc claim", ErrParse)
	}

	b, err := json.Marshal(vc)
	if err != nil {
		return nil, fmt.Errorf("%w: vc claim: %w", ErrParse, err)
	}

	return b, nil
}

func matchCallerType(vc []byte, accepted []credential.Type) (credential.Type, error) {
	w3cTypes, err := credential.W3CTypes(vc)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}

	for _, w := range w3cTypes {
		t, typeErr := credential.TypeFromW3C(w)
		if typeErr != nil {
			continue
		}

		if lo.Contains(accepted, t) {
			return t, nil
		}
	}

	return 0, &PermissionError{Requirement: RequirementCallerType}
}
