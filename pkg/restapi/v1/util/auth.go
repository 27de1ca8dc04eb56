/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"net/http"
	"strings"
)

const bearerPrefix = "bearer "

// BearerToken returns the token of a "Bearer" Authorization header, or an empty string.
func BearerToken(req *http.Request) string {
	authHeader := req.Header.Get("Authorization")
	if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}
