/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination credentialoffer_service_mocks_test.go -self_package mocks -package credentialoffer_test -source=credentialoffer_service.go -mock_names deferredStore=MockDeferredStore,procedureStore=MockProcedureStore,preAuthIssuer=MockPreAuthIssuer,eventPublisher=MockEventPublisher

package credentialoffer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/event/spi"
	"github.com/vcissuer/issuer/pkg/otp"
	"github.com/vcissuer/issuer/pkg/service/preauth"
	"github.com/vcissuer/issuer/pkg/storage/cache"
)

const (
	// DefaultOfferTTL is the lifetime of a cached offer.
	DefaultOfferTTL = 10 * time.Minute
	// DefaultTransactionCodeTTL is the lifetime of activation and continuation codes.
	DefaultTransactionCodeTTL = 72 * time.Hour

	transactionCodePrefix  = "txcode"
	continuationCodePrefix = "ctxcode"
	offerPrefix            = "offer"

	offerScheme = "openid-credential-offer://"
	eventSource = "source://issuer/credential-offer"
)

var logger = log.New("credential-offer")

type deferredStore interface {
	Create(ctx context.Context, md *credential.DeferredMetadata) error
	FindByProcedureID(ctx context.Context, procedureID string) (*credential.DeferredMetadata, error)
	FindByTransactionCode(ctx context.Context, code string) (*credential.DeferredMetadata, error)
	FindByAuthServerNonce(ctx context.Context, nonce string) (*credential.DeferredMetadata, error)
	Update(ctx context.Context, md *credential.DeferredMetadata, expected credential.OfferState) error
}

type procedureStore interface {
	FindByProcedureID(ctx context.Context, procedureID string) (*credential.Procedure, error)
}

type preAuthIssuer interface {
	Generate(ctx context.Context, credentialID string) (*preauth.Grant, error)
	Revoke(ctx context.Context, code string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

// Config holds the service dependencies.
type Config struct {
	DeferredStore      deferredStore
	ProcedureStore     procedureStore
	PreAuth            preAuthIssuer
	EventPublisher     eventPublisher
	Cache              cache.Store
	IssuerURL          string
	OfferTTL           time.Duration
	TransactionCodeTTL time.Duration
}

// Service drives a procedure from its activation code to a redeemed credential offer.
type Service struct {
	deferred   deferredStore
	procedures procedureStore
	preAuth    preAuthIssuer
	events     eventPublisher
	issuerURL  string

	txCodes  *cache.Typed[string]
	cTxCodes *cache.Typed[string]
	offers   *cache.Typed[CachedOffer]
}

// NewService creates a credential offer service.
func NewService(config *Config) *Service {
	offerTTL := config.OfferTTL
	if offerTTL == 0 {
		offerTTL = DefaultOfferTTL
	}

	codeTTL := config.TransactionCodeTTL
	if codeTTL == 0 {
		codeTTL = DefaultTransactionCodeTTL
	}

	return &Service{
		deferred:   config.DeferredStore,
		procedures: config.ProcedureStore,
		preAuth:    config.PreAuth,
		events:     config.EventPublisher,
		issuerURL:  config.IssuerURL,
		txCodes:    cache.NewTyped[string](config.Cache, transactionCodePrefix, codeTTL),
		cTxCodes:   cache.NewTyped[string](config.Cache, continuationCodePrefix, codeTTL),
		offers:     cache.NewTyped[CachedOffer](config.Cache, offerPrefix, offerTTL),
	}
}

// CreateDeferredMetadata issues the activation code of a procedure and records
// the procedure's transaction chain.
func (s *Service) CreateDeferredMetadata(
	ctx context.Context,
	procedureID string,
	mode credential.OperationMode,
	responseURI string,
) (string, error) {
	code, err := otp.NewCode()
	if err != nil {
		return "", err
	}

	if _, err = s.txCodes.Add(ctx, code, procedureID); err != nil {
		return "", fmt.Errorf("store transaction code: %w", err)
	}

	md := &credential.DeferredMetadata{
		ProcedureID:     procedureID,
		TransactionCode: code,
		OperationMode:   mode,
		ResponseURI:     responseURI,
		State:           credential.OfferStateTransactionCodeIssued,
	}

	if err = s.deferred.Create(ctx, md); err != nil {
		if delErr := s.txCodes.Delete(ctx, code); delErr != nil {
			logger.Warnc(ctx, "Failed to drop transaction code", log.WithError(delErr))
		}

		return "", fmt.Errorf("create deferred metadata: %w", err)
	}

	logger.Debugc(ctx, "transaction code issued",
		logfields.WithProcedureID(procedureID),
		logfields.WithOperationMode(string(mode)),
		logfields.WithCode(code))

	return code, nil
}

// BuildCredentialOfferURI exchanges an activation code for a credential offer
// and a continuation code. The activation code is consumed.
func (s *Service) BuildCredentialOfferURI(ctx context.Context, transactionCode string) (*OfferURI, error) {
	procedureID, err := s.txCodes.Take(ctx, transactionCode)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, s.unknownTransactionCode(ctx, transactionCode)
		}

		return nil, fmt.Errorf("take transaction code: %w", err)
	}

	md, err := s.deferred.FindByProcedureID(ctx, procedureID)
	if err != nil {
		return nil, fmt.Errorf("find deferred metadata: %w", err)
	}

	if md.TransactionCode != transactionCode || md.State != credential.OfferStateTransactionCodeIssued {
		return nil, ErrAlreadyIssued
	}

	nonce, err := s.buildOffer(ctx, md, false)
	if err != nil {
		return nil, err
	}

	cCode, err := otp.NewCode()
	if err != nil {
		return nil, err
	}

	if _, err = s.cTxCodes.Add(ctx, cCode, transactionCode); err != nil {
		return nil, fmt.Errorf("store continuation code: %w", err)
	}

	offerURI, err := s.offerURI(nonce)
	if err != nil {
		return nil, err
	}

	return &OfferURI{
		CredentialOfferURI: offerURI,
		CTransactionCode:   cCode,
		ExpiresIn:          int64(s.cTxCodes.TTL().Seconds()),
	}, nil
}

// BuildNewCredentialOfferURI rebuilds the offer of a procedure from its
// continuation code. The previous pre-authorized code stops working.
func (s *Service) BuildNewCredentialOfferURI(ctx context.Context, cTransactionCode string) (*OfferURI, error) {
	transactionCode, err := s.cTxCodes.Take(ctx, cTransactionCode)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrInvalidCode
		}

		return nil, fmt.Errorf("take continuation code: %w", err)
	}

	md, err := s.deferred.FindByTransactionCode(ctx, transactionCode)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return nil, ErrInvalidCode
		}

		return nil, fmt.Errorf("find deferred metadata: %w", err)
	}

	if md.Renewed || !md.State.CanTransitionTo(credential.OfferStatePreAuthBound) {
		return nil, ErrAlreadyIssued
	}

	previous := md.AuthServerNonce

	nonce, err := s.buildOffer(ctx, md, true)
	if err != nil {
		return nil, err
	}

	if previous != "" {
		if err = s.preAuth.Revoke(ctx, previous); err != nil {
			logger.Warnc(ctx, "Failed to revoke previous pre-authorized code",
				logfields.WithProcedureID(md.ProcedureID), log.WithError(err))
		}
	}

	offerURI, err := s.offerURI(nonce)
	if err != nil {
		return nil, err
	}

	return &OfferURI{CredentialOfferURI: offerURI}, nil
}

// GetCustomCredentialOffer returns the offer cached under nonce and requests
// the PIN to be sent to the holder. The offer stays readable until it expires.
func (s *Service) GetCustomCredentialOffer(ctx context.Context, nonce string) (*CredentialOffer, error) {
	cached, err := s.offers.Get(ctx, nonce)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, fmt.Errorf("get credential offer: %w", err)
	}

	grant := cached.Offer.Grants.PreAuthorizationGrant
	if grant == nil {
		return nil, fmt.Errorf("credential offer %s has no pre-authorized code grant", nonce)
	}

	md, err := s.deferred.FindByAuthServerNonce(ctx, grant.PreAuthorizedCode)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			// superseded by a rebuilt offer
			if delErr := s.offers.Delete(ctx, nonce); delErr != nil {
				logger.Debugc(ctx, "stale credential offer not dropped", log.WithError(delErr))
			}

			return nil, ErrOfferNotFound
		}

		return nil, fmt.Errorf("find deferred metadata: %w", err)
	}

	s.markRedeemed(ctx, md)
	s.requestPin(ctx, md.ProcedureID, &cached)

	return &cached.Offer, nil
}

func (s *Service) buildOffer(ctx context.Context, md *credential.DeferredMetadata, renew bool) (string, error) {
	procedure, err := s.procedures.FindByProcedureID(ctx, md.ProcedureID)
	if err != nil {
		return "", fmt.Errorf("find procedure: %w", err)
	}

	if procedure.Status != credential.StatusIssued {
		return "", ErrAlreadyIssued
	}

	grant, err := s.preAuth.Generate(ctx, procedure.CredentialID)
	if err != nil {
		return "", fmt.Errorf("generate pre-authorized code: %w", err)
	}

	if err = s.transition(ctx, md, credential.OfferStatePreAuthBound, func(md *credential.DeferredMetadata) {
		md.AuthServerNonce = grant.PreAuthorizedCode
		md.Renewed = md.Renewed || renew
	}); err != nil {
		return "", err
	}

	email, name := holderContact(procedure)
	if email == "" {
		logger.Warnc(ctx, "Credential carries no holder email, PIN cannot be delivered",
			logfields.WithProcedureID(procedure.ProcedureID))
	}

	nonce, err := otp.NewCode()
	if err != nil {
		return "", err
	}

	if _, err = s.offers.Add(ctx, nonce, CachedOffer{
		Offer: CredentialOffer{
			CredentialIssuer:           s.issuerURL,
			CredentialConfigurationIDs: []string{procedure.Type.Descriptor().ConfigurationID},
			Grants: Grants{
				PreAuthorizationGrant: &PreAuthorizationGrant{
					PreAuthorizedCode: grant.PreAuthorizedCode,
					TxCode:            &grant.TxCode,
				},
			},
		},
		Email:     email,
		Name:      name,
		PIN:       grant.PIN,
		ExpiresIn: int64(s.offers.TTL().Seconds()),
	}); err != nil {
		return "", fmt.Errorf("cache credential offer: %w", err)
	}

	next := credential.OfferStateOfferCached
	if renew {
		next = credential.OfferStateOfferRenewed
	}

	if err = s.transition(ctx, md, next, nil); err != nil {
		return "", err
	}

	logger.Infoc(ctx, "credential offer built",
		logfields.WithProcedureID(procedure.ProcedureID),
		logfields.WithCredentialType(procedure.Type.String()),
		logfields.WithOfferState(string(next)))

	return nonce, nil
}

// transition moves md to next, conditional on the persisted state still being md.State.
func (s *Service) transition(
	ctx context.Context,
	md *credential.DeferredMetadata,
	next credential.OfferState,
	mutate func(md *credential.DeferredMetadata),
) error {
	expected := md.State

	if !expected.CanTransitionTo(next) {
		return fmt.Errorf("%w: offer state %s -> %s", ErrAlreadyIssued, expected, next)
	}

	updated := *md
	updated.State = next

	if mutate != nil {
		mutate(&updated)
	}

	if err := s.deferred.Update(ctx, &updated, expected); err != nil {
		if errors.Is(err, credential.ErrConcurrentUpdate) {
			return fmt.Errorf("%w: %w", ErrAlreadyIssued, err)
		}

		return fmt.Errorf("update deferred metadata: %w", err)
	}

	*md = updated

	return nil
}

func (s *Service) markRedeemed(ctx context.Context, md *credential.DeferredMetadata) {
	var next credential.OfferState

	switch md.State {
	case credential.OfferStateOfferCached:
		next = credential.OfferStateOfferRedeemed
	case credential.OfferStateOfferRenewed:
		next = credential.OfferStateOfferRedeemedRenewed
	default:
		return
	}

	if err := s.transition(ctx, md, next, nil); err != nil {
		logger.Debugc(ctx, "offer redemption not recorded",
			logfields.WithProcedureID(md.ProcedureID), log.WithError(err))
	}
}

func (s *Service) requestPin(ctx context.Context, procedureID string, cached *CachedOffer) {
	if cached.Email == "" {
		return
	}

	e, err := spi.NewEventWithPayload(uuid.NewString(), eventSource, spi.PinNotificationRequested,
		&spi.PinNotification{
			Email:     cached.Email,
			Name:      cached.Name,
			PIN:       cached.PIN,
			ExpiresIn: cached.ExpiresIn,
		})
	if err != nil {
		logger.Errorc(ctx, "Failed to create PIN notification event", log.WithError(err))

		return
	}

	if err = s.events.Publish(ctx, spi.NotificationTopic, e); err != nil {
		logger.Errorc(ctx, "Failed to publish PIN notification event",
			logfields.WithProcedureID(procedureID), log.WithError(err))
	}
}

func (s *Service) unknownTransactionCode(ctx context.Context, code string) error {
	md, err := s.deferred.FindByTransactionCode(ctx, code)
	if err == nil && md.State != credential.OfferStateTransactionCodeIssued {
		return ErrAlreadyIssued
	}

	return ErrInvalidCode
}

func (s *Service) offerURI(nonce string) (string, error) {
	u, err := url.JoinPath(s.issuerURL, "credential-offer", nonce)
	if err != nil {
		return "", fmt.Errorf("build credential offer uri: %w", err)
	}

	return offerScheme + "?" + url.Values{"credential_offer_uri": {u}}.Encode(), nil
}

// holderContact returns where the PIN of a procedure is sent.
func holderContact(p *credential.Procedure) (string, string) {
	if m, err := p.Type.ParseMandate([]byte(p.CredentialDecoded)); err == nil && m.Mandatee.Email != "" {
		return m.Mandatee.Email, m.Mandatee.Name()
	}

	subject := gjson.Get(p.CredentialDecoded, "credentialSubject")

	return subject.Get("email").String(), subject.Get("commonName").String()
}
