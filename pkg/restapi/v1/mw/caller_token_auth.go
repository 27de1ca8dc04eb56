/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination caller_token_auth_mocks_test.go -self_package mocks -package mw_test -source=caller_token_auth.go -mock_names tokenVerifier=MockTokenVerifier

package mw

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/pkg/restapi/resterr/oidc4ci"
	"github.com/vcissuer/issuer/pkg/restapi/v1/util"
)

var logger = log.New("rest-mw")

const callerTokenKey = "caller-token"

type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (map[string]interface{}, error)
}

// CallerTokenAuth accepts requests whose bearer token verifies against the
// verifier key set. The raw token is kept on the context for CallerToken.
func CallerTokenAuth(verifier tokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := util.BearerToken(c.Request())
			if token == "" {
				return oidc4ci.NewUnauthorizedError(errors.New("missing bearer token")).UsePublicAPIResponse()
			}

			if _, err := verifier.VerifyToken(c.Request().Context(), token); err != nil {
				logger.Debugc(c.Request().Context(), "Caller token rejected", log.WithError(err))

				return oidc4ci.NewUnauthorizedError(errors.New("invalid caller token")).UsePublicAPIResponse()
			}

			c.Set(callerTokenKey, token)

			return next(c)
		}
	}
}

// CallerToken returns the token verified by CallerTokenAuth.
func CallerToken(c echo.Context) string {
	token, _ := c.Get(callerTokenKey).(string) //nolint:errcheck

	return token
}
