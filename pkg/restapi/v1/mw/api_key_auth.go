/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/vcissuer/issuer/pkg/restapi/resterr/oidc4ci"
)

// APIKeyHeader carries the API key of the remote signer and operators.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth accepts requests carrying any of keys in the X-API-Key header.
// More than one key lets operators rotate keys without downtime. Empty keys are ignored.
func APIKeyAuth(keys ...string) echo.MiddlewareFunc {
	digests := make([][sha256.Size]byte, 0, len(keys))

	for _, k := range keys {
		if k != "" {
			digests = append(digests, sha256.Sum256([]byte(k)))
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			presented := c.Request().Header.Get(APIKeyHeader)
			if presented == "" {
				return oidc4ci.NewUnauthorizedError(errors.New("missing api key")).UsePublicAPIResponse()
			}

			// Digests have a fixed length, so the comparison time does not depend on the key.
			sum := sha256.Sum256([]byte(presented))

			match := 0
			for i := range digests {
				match |= subtle.ConstantTimeCompare(sum[:], digests[i][:])
			}

			if match != 1 {
				logger.Debugc(c.Request().Context(), "API key rejected")

				return oidc4ci.NewUnauthorizedError(errors.New("invalid api key")).UsePublicAPIResponse()
			}

			return next(c)
		}
	}
}
