/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination issuance_service_mocks_test.go -self_package mocks -package issuance_test -source=issuance_service.go -mock_names policyAuthorizer=MockPolicyAuthorizer,procedureStore=MockProcedureStore,deferredStore=MockDeferredStore,offerWorkflow=MockOfferWorkflow,accessTokenParser=MockAccessTokenParser,proofValidator=MockProofValidator,nonceRotator=MockNonceRotator,credentialSigner=MockCredentialSigner,preAuthRevoker=MockPreAuthRevoker,eventPublisher=MockEventPublisher

package issuance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/event/spi"
	"github.com/vcissuer/issuer/pkg/service/credentialoffer"
	"github.com/vcissuer/issuer/pkg/service/nonce"
	"github.com/vcissuer/issuer/pkg/service/proof"
	"github.com/vcissuer/issuer/pkg/service/token"
)

const (
	// DefaultCredentialTTL is the validity period of issued credentials.
	DefaultCredentialTTL = 365 * 24 * time.Hour

	eventSource = "source://issuer/issuance"
)

var logger = log.New("issuance")

type policyAuthorizer interface {
	Authorize(ctx context.Context, callerToken string, requested credential.Type, payload []byte, idToken string) error
	CallerMandate(callerToken string) (*credential.Mandate, error)
}

type procedureStore interface {
	Create(ctx context.Context, p *credential.Procedure) error
	FindByProcedureID(ctx context.Context, procedureID string) (*credential.Procedure, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*credential.Procedure, error)
	UpdateDecoded(ctx context.Context, procedureID, decoded string) error
	UpdateEncoded(ctx context.Context, procedureID, encoded string) error
	UpdateStatus(ctx context.Context, procedureID string, expected, next credential.Status) error
}

type deferredStore interface {
	FindByProcedureID(ctx context.Context, procedureID string) (*credential.DeferredMetadata, error)
	FindByAuthServerNonce(ctx context.Context, nonce string) (*credential.DeferredMetadata, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*credential.DeferredMetadata, error)
	Update(ctx context.Context, md *credential.DeferredMetadata, expected credential.OfferState) error
}

type offerWorkflow interface {
	CreateDeferredMetadata(
		ctx context.Context,
		procedureID string,
		mode credential.OperationMode,
		responseURI string,
	) (string, error)
}

type accessTokenParser interface {
	ParseAccessToken(accessToken string) (*token.AccessClaims, error)
}

type proofValidator interface {
	Validate(ctx context.Context, jwtProof, accessToken string) (*proof.Result, error)
}

type nonceRotator interface {
	Rotate(ctx context.Context, old string) (string, error)
	TTL() time.Duration
}

type credentialSigner interface {
	Sign(ctx context.Context, unsignedCredential, format, token string) (string, error)
}

type preAuthRevoker interface {
	Revoke(ctx context.Context, code string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

// Config holds the service dependencies.
type Config struct {
	Policy         policyAuthorizer
	ProcedureStore procedureStore
	DeferredStore  deferredStore
	Offers         offerWorkflow
	Tokens         accessTokenParser
	Proofs         proofValidator
	Nonces         nonceRotator
	Signer         credentialSigner
	PreAuth        preAuthRevoker
	EventPublisher eventPublisher
	HTTPClient     httpClient
	// IssuerDID is the issuer of every credential.
	IssuerDID string
	// WalletURL receives the activation link of new procedures.
	WalletURL     string
	CredentialTTL time.Duration
	Now           func() time.Time
}

// Service runs credential procedures from creation to a signed credential.
type Service struct {
	policy        policyAuthorizer
	procedures    procedureStore
	deferred      deferredStore
	offers        offerWorkflow
	tokens        accessTokenParser
	proofs        proofValidator
	nonces        nonceRotator
	signer        credentialSigner
	preAuth       preAuthRevoker
	events        eventPublisher
	httpClient    httpClient
	issuerDID     string
	walletURL     string
	credentialTTL time.Duration
	now           func() time.Time
}

// NewService creates an issuance service.
func NewService(config *Config) *Service {
	s := &Service{
		policy:        config.Policy,
		procedures:    config.ProcedureStore,
		deferred:      config.DeferredStore,
		offers:        config.Offers,
		tokens:        config.Tokens,
		proofs:        config.Proofs,
		nonces:        config.Nonces,
		signer:        config.Signer,
		preAuth:       config.PreAuth,
		events:        config.EventPublisher,
		httpClient:    config.HTTPClient,
		issuerDID:     config.IssuerDID,
		walletURL:     config.WalletURL,
		credentialTTL: config.CredentialTTL,
		now:           config.Now,
	}

	if s.httpClient == nil {
		s.httpClient = http.DefaultClient
	}

	if s.credentialTTL == 0 {
		s.credentialTTL = DefaultCredentialTTL
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// CreateCredential authorizes the caller, registers a new procedure and sends
// its activation link to the holder.
func (s *Service) CreateCredential(
	ctx context.Context,
	callerToken, idToken string,
	req *CreateCredentialRequest,
) (*CreateCredentialResult, error) {
	typ, err := credential.ParseType(req.Schema)
	if err != nil {
		return nil, err
	}

	mode, err := credential.ParseOperationMode(req.OperationMode)
	if err != nil {
		return nil, err
	}

	if mode == credential.OperationModeAsync && req.ResponseURI != "" {
		if _, err = url.ParseRequestURI(req.ResponseURI); err != nil {
			return nil, fmt.Errorf("%w: response uri: %w", credential.ErrInvalidCredential, err)
		}
	}

	if err = s.policy.Authorize(ctx, callerToken, typ, req.Payload, idToken); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	credentialID := uuid.NewString()

	decoded, err := (&unsignedCredential{
		typ:          typ,
		credentialID: credentialID,
		issuer:       s.issuerDID,
		payload:      req.Payload,
		validFrom:    now,
		validUntil:   now.Add(s.credentialTTL),
	}).build()
	if err != nil {
		return nil, err
	}

	holder := holderOf(typ, req)
	if holder.organizationID == "" {
		if m, mErr := s.policy.CallerMandate(callerToken); mErr == nil {
			holder.organizationID = m.Mandator.OrganizationIdentifier
		}
	}

	procedure := &credential.Procedure{
		ProcedureID:            uuid.NewString(),
		CredentialID:           credentialID,
		Type:                   typ,
		CredentialDecoded:      decoded,
		Status:                 credential.StatusIssued,
		OrganizationIdentifier: holder.organizationID,
		ValidUntil:             now.Add(s.credentialTTL),
	}

	if err = s.procedures.Create(ctx, procedure); err != nil {
		return nil, fmt.Errorf("create procedure: %w", err)
	}

	code, err := s.offers.CreateDeferredMetadata(ctx, procedure.ProcedureID, mode, req.ResponseURI)
	if err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "credential procedure created",
		logfields.WithProcedureID(procedure.ProcedureID),
		logfields.WithCredentialID(credentialID),
		logfields.WithCredentialType(typ.String()),
		logfields.WithOrganizationID(procedure.OrganizationIdentifier),
		logfields.WithOperationMode(string(mode)))

	s.requestActivation(ctx, procedure.ProcedureID, holder, code)

	return &CreateCredentialResult{
		ProcedureID:  procedure.ProcedureID,
		CredentialID: credentialID,
	}, nil
}

// IssueCredential redeems an access token and a proof of possession for the
// credential bound to the token's pre-authorized code.
func (s *Service) IssueCredential(
	ctx context.Context,
	accessToken string,
	req *CredentialRequest,
) (*CredentialResponse, error) {
	claims, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	format, err := credential.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	if req.Proof == nil || req.Proof.ProofType != ProofTypeJWT || req.Proof.JWT == "" {
		return nil, fmt.Errorf("%w: a jwt proof is required", ErrInvalidCredentialRequest)
	}

	md, err := s.deferred.FindByAuthServerNonce(ctx, claims.PreAuthorizedCode)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: no procedure is bound to the access token", ErrInvalidCredentialRequest)
		}

		return nil, fmt.Errorf("find deferred metadata: %w", err)
	}

	procedure, err := s.procedures.FindByProcedureID(ctx, md.ProcedureID)
	if err != nil {
		return nil, fmt.Errorf("find procedure: %w", err)
	}

	if procedure.Status != credential.StatusIssued || md.TransactionID != "" {
		return nil, credentialoffer.ErrAlreadyIssued
	}

	res, err := s.proofs.Validate(ctx, req.Proof.JWT, accessToken)
	if err != nil {
		return nil, err
	}

	if !res.Valid {
		return nil, fmt.Errorf("%w: nonce is not valid", ErrInvalidProof)
	}

	// consuming the proof nonce is what makes the proof single use
	cNonce, err := s.nonces.Rotate(ctx, res.Nonce)
	if err != nil {
		if errors.Is(err, nonce.ErrNotAlive) {
			return nil, fmt.Errorf("%w: nonce already used or expired", ErrInvalidProof)
		}

		return nil, err
	}

	decoded, err := bindHolder(procedure.Type, procedure.CredentialDecoded, res.HolderDID)
	if err != nil {
		return nil, err
	}

	if err = s.procedures.UpdateDecoded(ctx, procedure.ProcedureID, decoded); err != nil {
		return nil, fmt.Errorf("update decoded credential: %w", err)
	}

	procedure.CredentialDecoded = decoded

	resp := &CredentialResponse{
		CNonce:          cNonce,
		CNonceExpiresIn: int64(s.nonces.TTL().Seconds()),
	}

	if md.OperationMode == credential.OperationModeAsync {
		resp.TransactionID, err = s.deferIssuance(ctx, md, format)
	} else {
		resp.Credential, err = s.signAndStore(ctx, procedure, res.HolderDID, format, accessToken)
	}

	if err != nil {
		return nil, err
	}

	if err = s.preAuth.Revoke(ctx, claims.PreAuthorizedCode); err != nil {
		logger.Warnc(ctx, "Failed to revoke pre-authorized code",
			logfields.WithProcedureID(procedure.ProcedureID), log.WithError(err))
	}

	logger.Infoc(ctx, "credential request served",
		logfields.WithProcedureID(procedure.ProcedureID),
		logfields.WithFormat(string(format)),
		logfields.WithOperationMode(string(md.OperationMode)),
		logfields.WithSubjectDID(res.HolderDID))

	return resp, nil
}

// GetDeferredCredential returns the credential of a deferred transaction once
// it is signed. The transaction id is cleared so the credential is delivered once.
func (s *Service) GetDeferredCredential(ctx context.Context, transactionID string) (string, error) {
	if transactionID == "" {
		return "", fmt.Errorf("%w: transaction id is required", ErrInvalidCredentialRequest)
	}

	md, err := s.deferred.FindByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return "", ErrInvalidTransactionID
		}

		return "", fmt.Errorf("find deferred metadata: %w", err)
	}

	if md.VC == "" {
		return "", ErrIssuancePending
	}

	vc := md.VC

	updated := *md
	updated.TransactionID = ""

	if err = s.deferred.Update(ctx, &updated, md.State); err != nil {
		return "", fmt.Errorf("update deferred metadata: %w", err)
	}

	logger.Infoc(ctx, "deferred credential delivered",
		logfields.WithProcedureID(md.ProcedureID), logfields.WithTransactionID(transactionID))

	return vc, nil
}

// SignDeferredCredential signs a pending asynchronous procedure with the
// signing pipeline. token authenticates the remote signer call.
func (s *Service) SignDeferredCredential(ctx context.Context, procedureID, signerToken string) error {
	procedure, md, err := s.pendingDeferred(ctx, procedureID)
	if err != nil {
		return err
	}

	holderDID := ""
	if path := procedure.Type.Descriptor().HolderPath; path != "" {
		holderDID = gjsonString(procedure.CredentialDecoded, path)
	}

	unsigned, err := signingPayload(procedure.CredentialDecoded, s.issuerDID, holderDID, s.now())
	if err != nil {
		return err
	}

	signed, err := s.signer.Sign(ctx, unsigned, string(md.VCFormat), signerToken)
	if err != nil {
		return err
	}

	return s.completeDeferred(ctx, procedure, md, signed)
}

// CompleteDeferredSigning stores a credential signed out of band for a pending
// asynchronous procedure.
func (s *Service) CompleteDeferredSigning(ctx context.Context, procedureID, signedCredential string) error {
	if signedCredential == "" {
		return fmt.Errorf("%w: signed credential is empty", ErrInvalidCredentialRequest)
	}

	procedure, md, err := s.pendingDeferred(ctx, procedureID)
	if err != nil {
		return err
	}

	return s.completeDeferred(ctx, procedure, md, signedCredential)
}

// UpdateStatus moves a procedure to a terminal status.
func (s *Service) UpdateStatus(ctx context.Context, procedureID string, next credential.Status) error {
	if !next.IsTerminal() {
		return fmt.Errorf("%w: %s can only be reached by signing", credential.ErrIllegalTransition, next)
	}

	procedure, err := s.procedures.FindByProcedureID(ctx, procedureID)
	if err != nil {
		return err
	}

	if err = s.procedures.UpdateStatus(ctx, procedureID, procedure.Status, next); err != nil {
		return err
	}

	logger.Infoc(ctx, "credential status updated",
		logfields.WithProcedureID(procedureID),
		logfields.WithAdditionalMessage(fmt.Sprintf("%s -> %s", procedure.Status, next)))

	return nil
}

// ListProcedures returns the procedures of the caller's organization.
func (s *Service) ListProcedures(ctx context.Context, callerToken string) ([]*ProcedureSummary, error) {
	mandate, err := s.policy.CallerMandate(callerToken)
	if err != nil {
		return nil, err
	}

	procedures, err := s.procedures.ListByOrganization(ctx, mandate.Mandator.OrganizationIdentifier)
	if err != nil {
		return nil, err
	}

	return lo.Map(procedures, func(p *credential.Procedure, _ int) *ProcedureSummary {
		return &ProcedureSummary{
			ProcedureID:    p.ProcedureID,
			CredentialID:   p.CredentialID,
			CredentialType: p.Type.String(),
			Status:         p.Status,
			ValidUntil:     p.ValidUntil,
			UpdatedAt:      p.UpdatedAt,
		}
	}), nil
}

func (s *Service) signAndStore(
	ctx context.Context,
	procedure *credential.Procedure,
	holderDID string,
	format credential.Format,
	accessToken string,
) (string, error) {
	unsigned, err := signingPayload(procedure.CredentialDecoded, s.issuerDID, holderDID, s.now())
	if err != nil {
		return "", err
	}

	signed, err := s.signer.Sign(ctx, unsigned, string(format), accessToken)
	if err != nil {
		return "", err
	}

	if err = s.procedures.UpdateEncoded(ctx, procedure.ProcedureID, signed); err != nil {
		return "", fmt.Errorf("update encoded credential: %w", err)
	}

	if err = s.procedures.UpdateStatus(ctx, procedure.ProcedureID,
		credential.StatusIssued, credential.StatusValid); err != nil {
		return "", fmt.Errorf("update credential status: %w", err)
	}

	return signed, nil
}

func (s *Service) deferIssuance(
	ctx context.Context,
	md *credential.DeferredMetadata,
	format credential.Format,
) (string, error) {
	updated := *md
	updated.TransactionID = uuid.NewString()
	updated.VCFormat = format

	if err := s.deferred.Update(ctx, &updated, md.State); err != nil {
		return "", fmt.Errorf("update deferred metadata: %w", err)
	}

	logger.Debugc(ctx, "credential issuance deferred",
		logfields.WithProcedureID(md.ProcedureID), logfields.WithTransactionID(updated.TransactionID))

	return updated.TransactionID, nil
}

func (s *Service) pendingDeferred(
	ctx context.Context,
	procedureID string,
) (*credential.Procedure, *credential.DeferredMetadata, error) {
	procedure, err := s.procedures.FindByProcedureID(ctx, procedureID)
	if err != nil {
		return nil, nil, err
	}

	md, err := s.deferred.FindByProcedureID(ctx, procedureID)
	if err != nil {
		return nil, nil, err
	}

	if md.TransactionID == "" || md.VC != "" {
		return nil, nil, ErrNoDeferredIssuance
	}

	if procedure.Status != credential.StatusIssued {
		return nil, nil, credentialoffer.ErrAlreadyIssued
	}

	return procedure, md, nil
}

func (s *Service) completeDeferred(
	ctx context.Context,
	procedure *credential.Procedure,
	md *credential.DeferredMetadata,
	signed string,
) error {
	if err := s.procedures.UpdateEncoded(ctx, procedure.ProcedureID, signed); err != nil {
		return fmt.Errorf("update encoded credential: %w", err)
	}

	if err := s.procedures.UpdateStatus(ctx, procedure.ProcedureID,
		credential.StatusIssued, credential.StatusValid); err != nil {
		return fmt.Errorf("update credential status: %w", err)
	}

	updated := *md
	updated.VC = signed

	if err := s.deferred.Update(ctx, &updated, md.State); err != nil {
		return fmt.Errorf("update deferred metadata: %w", err)
	}

	logger.Infoc(ctx, "deferred credential signed", logfields.WithProcedureID(procedure.ProcedureID))

	if md.ResponseURI == "" {
		return nil
	}

	if err := s.notifyResponseURI(ctx, md.ResponseURI, &deferredResult{
		ProcedureID: procedure.ProcedureID,
		Format:      string(md.VCFormat),
		Credential:  signed,
	}); err != nil {
		logger.Warnc(ctx, "Failed to deliver deferred credential to response uri",
			logfields.WithProcedureID(procedure.ProcedureID), log.WithURL(md.ResponseURI), log.WithError(err))
	}

	return nil
}

func (s *Service) requestActivation(ctx context.Context, procedureID string, holder *holderInfo, code string) {
	if holder.email == "" {
		logger.Warnc(ctx, "Procedure has no holder email, activation link not sent",
			logfields.WithProcedureID(procedureID))

		return
	}

	link, err := url.Parse(s.walletURL)
	if err != nil {
		logger.Errorc(ctx, "Invalid wallet url", log.WithError(err))

		return
	}

	q := link.Query()
	q.Set("transaction_code", code)
	link.RawQuery = q.Encode()

	e, err := spi.NewEventWithPayload(uuid.NewString(), eventSource, spi.ActivationNotificationRequested,
		&spi.ActivationNotification{
			Email:        holder.email,
			Name:         holder.name,
			Organization: holder.organization,
			Link:         link.String(),
		})
	if err != nil {
		logger.Errorc(ctx, "Failed to create activation event", log.WithError(err))

		return
	}

	if err = s.events.Publish(ctx, spi.NotificationTopic, e); err != nil {
		logger.Errorc(ctx, "Failed to publish activation event",
			logfields.WithProcedureID(procedureID), log.WithError(err))
	}
}
