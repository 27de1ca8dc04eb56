/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package issuer_test -source=controller.go -mock_names issuanceService=MockIssuanceService

package issuer

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/restapi/resterr"
	issuanceerr "github.com/vcissuer/issuer/pkg/restapi/resterr/issuance"
	oidc4cierr "github.com/vcissuer/issuer/pkg/restapi/resterr/oidc4ci"
	"github.com/vcissuer/issuer/pkg/restapi/v1/mw"
	"github.com/vcissuer/issuer/pkg/restapi/v1/util"
	"github.com/vcissuer/issuer/pkg/service/credentialoffer"
	"github.com/vcissuer/issuer/pkg/service/issuance"
	"github.com/vcissuer/issuer/pkg/service/signing"
	"github.com/vcissuer/issuer/pkg/service/vcpolicy"
)

var logger = log.New("issuer-controller")

const (
	basePath = "/vci/v1"

	// IDTokenHeader carries the id_token of the requester on issuance requests.
	IDTokenHeader = "X-ID-Token"
)

type router interface {
	GET(path string, h echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

type issuanceService interface {
	CreateCredential(ctx context.Context, callerToken, idToken string,
		req *issuance.CreateCredentialRequest) (*issuance.CreateCredentialResult, error)
	SignDeferredCredential(ctx context.Context, procedureID, signerToken string) error
	CompleteDeferredSigning(ctx context.Context, procedureID, signedCredential string) error
	UpdateStatus(ctx context.Context, procedureID string, next credential.Status) error
	ListProcedures(ctx context.Context, callerToken string) ([]*issuance.ProcedureSummary, error)
}

// Config holds configuration options for Controller.
type Config struct {
	IssuanceService issuanceService
	// CallerAuth authenticates organizations calling the issuance API.
	CallerAuth echo.MiddlewareFunc
	// APIKeyAuth authenticates the remote signer and operators.
	APIKeyAuth echo.MiddlewareFunc
	Tracer     trace.Tracer
}

// Controller for the issuance management API.
type Controller struct {
	issuance   issuanceService
	callerAuth echo.MiddlewareFunc
	apiKeyAuth echo.MiddlewareFunc
	tracer     trace.Tracer
}

// SignResultRequest carries a credential signed out of band.
type SignResultRequest struct {
	Credential string `json:"credential"`
}

// UpdateStatusRequest moves a procedure to another status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// NewController creates a new controller for the issuance management API.
func NewController(config *Config) *Controller {
	c := &Controller{
		issuance:   config.IssuanceService,
		callerAuth: config.CallerAuth,
		apiKeyAuth: config.APIKeyAuth,
		tracer:     config.Tracer,
	}

	if c.tracer == nil {
		c.tracer = trace.NewNoopTracerProvider().Tracer("")
	}

	passThrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }

	if c.callerAuth == nil {
		c.callerAuth = passThrough
	}

	if c.apiKeyAuth == nil {
		c.apiKeyAuth = passThrough
	}

	return c
}

// RegisterHandlers adds the controller routes to r.
func (c *Controller) RegisterHandlers(r router) {
	r.POST(basePath+"/issuances", c.PostIssuance, c.callerAuth)
	r.GET(basePath+"/procedures", c.GetProcedures, c.callerAuth)
	r.POST(basePath+"/procedures/:id/sign", c.PostSignProcedure, c.callerAuth)
	r.POST(basePath+"/procedures/:id/sign-result", c.PostSignResult, c.apiKeyAuth)
	r.PUT(basePath+"/procedures/:id/status", c.PutProcedureStatus, c.apiKeyAuth)
}

// PostIssuance starts an issuance procedure (POST /vci/v1/issuances).
func (c *Controller) PostIssuance(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "PostIssuance")
	defer span.End()

	body, err := util.Bind[issuance.CreateCredentialRequest](e)
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.String("schema", body.Schema))

	result, err := c.issuance.CreateCredential(ctx, mw.CallerToken(e), e.Request().Header.Get(IDTokenHeader), body)
	if err != nil {
		return toRFCError(err, "CreateCredential")
	}

	logger.Infoc(ctx, "Issuance procedure created",
		logfields.WithProcedureID(result.ProcedureID), logfields.WithCredentialType(body.Schema))

	return util.Respond(e, http.StatusCreated, result)
}

// GetProcedures lists the procedures of the caller organization (GET /vci/v1/procedures).
func (c *Controller) GetProcedures(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "GetProcedures")
	defer span.End()

	procedures, err := c.issuance.ListProcedures(ctx, mw.CallerToken(e))
	if err != nil {
		return toRFCError(err, "ListProcedures")
	}

	return util.Respond(e, http.StatusOK, procedures)
}

// PostSignProcedure signs a deferred credential with the caller's authority
// (POST /vci/v1/procedures/:id/sign).
func (c *Controller) PostSignProcedure(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "PostSignProcedure")
	defer span.End()

	procedureID := e.Param("id")
	span.SetAttributes(attribute.String("procedure_id", procedureID))

	if err := c.issuance.SignDeferredCredential(ctx, procedureID, mw.CallerToken(e)); err != nil {
		return toRFCError(err, "SignDeferredCredential")
	}

	return e.NoContent(http.StatusNoContent)
}

// PostSignResult stores a credential signed by the remote signer
// (POST /vci/v1/procedures/:id/sign-result).
func (c *Controller) PostSignResult(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "PostSignResult")
	defer span.End()

	procedureID := e.Param("id")
	span.SetAttributes(attribute.String("procedure_id", procedureID))

	body, err := util.Bind[SignResultRequest](e)
	if err != nil {
		return err
	}

	if body.Credential == "" {
		return issuanceerr.NewInvalidValueError(errors.New("credential is required")).
			WithIncorrectValue("credential").
			UsePublicAPIResponse()
	}

	if err = c.issuance.CompleteDeferredSigning(ctx, procedureID, body.Credential); err != nil {
		return toRFCError(err, "CompleteDeferredSigning")
	}

	return e.NoContent(http.StatusNoContent)
}

// PutProcedureStatus moves a procedure to another lifecycle status
// (PUT /vci/v1/procedures/:id/status).
func (c *Controller) PutProcedureStatus(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "PutProcedureStatus")
	defer span.End()

	procedureID := e.Param("id")

	body, err := util.Bind[UpdateStatusRequest](e)
	if err != nil {
		return err
	}

	status, err := credential.ParseStatus(body.Status)
	if err != nil {
		return toRFCError(err, "ParseStatus")
	}

	span.SetAttributes(attribute.String("procedure_id", procedureID), attribute.String("status", string(status)))

	if err = c.issuance.UpdateStatus(ctx, procedureID, status); err != nil {
		return toRFCError(err, "UpdateStatus")
	}

	return e.NoContent(http.StatusNoContent)
}

func toRFCError(err error, operation string) error {
	var encodingErr *signing.EncodingError

	switch {
	case errors.Is(err, vcpolicy.ErrInsufficientPermission):
		return issuanceerr.NewInsufficientPermissionError(err).
			WithComponent(resterr.PolicySvcComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.Is(err, vcpolicy.ErrParse):
		return issuanceerr.NewParseError(err).
			WithComponent(resterr.PolicySvcComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.Is(err, credential.ErrUnknownType),
		errors.Is(err, credential.ErrUnknownOperationMode),
		errors.Is(err, credential.ErrInvalidCredential),
		errors.Is(err, credential.ErrInvalidStatus):
		return issuanceerr.NewInvalidValueError(err).WithOperation(operation).UsePublicAPIResponse()
	case errors.Is(err, credential.ErrIllegalTransition),
		errors.Is(err, issuance.ErrNoDeferredIssuance),
		errors.Is(err, credentialoffer.ErrAlreadyIssued):
		return issuanceerr.NewConflictError(err).
			WithComponent(resterr.IssuanceSvcComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.Is(err, credential.ErrDataNotFound):
		return oidc4cierr.NewNotFoundError(err).
			WithComponent(resterr.ProcedureStoreComponent).
			WithOperation(operation).
			UsePublicAPIResponse()
	case errors.As(err, &encodingErr):
		return issuanceerr.NewEncodingError(err).
			WithComponent(resterr.SigningSvcComponent).
			WithOperation(operation).
			WithIncorrectValue(encodingErr.Stage).
			UsePublicAPIResponse()
	default:
		return err
	}
}
