/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -self_package mocks -package issuance -source=issuance_wrapper.go -mock_names Service=MockService

package issuance

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/observability/tracing/attributeutil"
	"github.com/vcissuer/issuer/pkg/service/issuance"
)

type Service interface {
	CreateCredential(ctx context.Context, callerToken, idToken string,
		req *issuance.CreateCredentialRequest) (*issuance.CreateCredentialResult, error)
	IssueCredential(ctx context.Context, accessToken string,
		req *issuance.CredentialRequest) (*issuance.CredentialResponse, error)
	GetDeferredCredential(ctx context.Context, transactionID string) (string, error)
	SignDeferredCredential(ctx context.Context, procedureID, signerToken string) error
	CompleteDeferredSigning(ctx context.Context, procedureID, signedCredential string) error
	UpdateStatus(ctx context.Context, procedureID string, next credential.Status) error
	ListProcedures(ctx context.Context, callerToken string) ([]*issuance.ProcedureSummary, error)
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) CreateCredential(
	ctx context.Context,
	callerToken, idToken string,
	req *issuance.CreateCredentialRequest,
) (*issuance.CreateCredentialResult, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.CreateCredential")
	defer span.End()

	span.SetAttributes(attribute.Bool("id_token_present", idToken != ""))
	span.SetAttributes(attributeutil.JSON("create_credential_request", req,
		attributeutil.WithRedacted("payload", "email")))

	res, err := w.svc.CreateCredential(ctx, callerToken, idToken, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("procedure_id", res.ProcedureID))

	return res, nil
}

func (w *Wrapper) IssueCredential(
	ctx context.Context,
	accessToken string,
	req *issuance.CredentialRequest,
) (*issuance.CredentialResponse, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.IssueCredential")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("credential_request", req, attributeutil.WithRedacted("proof.jwt")))

	res, err := w.svc.IssueCredential(ctx, accessToken, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Bool("deferred", res.TransactionID != ""))

	return res, nil
}

func (w *Wrapper) GetDeferredCredential(ctx context.Context, transactionID string) (string, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.GetDeferredCredential")
	defer span.End()

	return w.svc.GetDeferredCredential(ctx, transactionID)
}

func (w *Wrapper) SignDeferredCredential(ctx context.Context, procedureID, signerToken string) error {
	ctx, span := w.tracer.Start(ctx, "issuance.SignDeferredCredential")
	defer span.End()

	span.SetAttributes(attribute.String("procedure_id", procedureID))

	return w.svc.SignDeferredCredential(ctx, procedureID, signerToken)
}

func (w *Wrapper) CompleteDeferredSigning(ctx context.Context, procedureID, signedCredential string) error {
	ctx, span := w.tracer.Start(ctx, "issuance.CompleteDeferredSigning")
	defer span.End()

	span.SetAttributes(attribute.String("procedure_id", procedureID))

	return w.svc.CompleteDeferredSigning(ctx, procedureID, signedCredential)
}

func (w *Wrapper) UpdateStatus(ctx context.Context, procedureID string, next credential.Status) error {
	ctx, span := w.tracer.Start(ctx, "issuance.UpdateStatus")
	defer span.End()

	span.SetAttributes(attribute.String("procedure_id", procedureID), attribute.String("status", string(next)))

	return w.svc.UpdateStatus(ctx, procedureID, next)
}

func (w *Wrapper) ListProcedures(ctx context.Context, callerToken string) ([]*issuance.ProcedureSummary, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.ListProcedures")
	defer span.End()

	return w.svc.ListProcedures(ctx, callerToken)
}
