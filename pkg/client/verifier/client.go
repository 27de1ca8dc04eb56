/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination client_mocks_test.go -self_package mocks -package verifier_test -source=client.go -mock_names httpClient=MockHTTPClient

package verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("verifier-client")

const clockSkew = 30 * time.Second

// ErrTokenVerification is returned when a token does not verify against the verifier key set.
var ErrTokenVerification = errors.New("token verification failed")

// httpClient covers the verifier endpoints (Do) and the key set fetch (Get).
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string) (*http.Response, error)
}

// Config holds the verifier endpoints.
type Config struct {
	HTTPClient         httpClient
	NonceValidationURL string
	JWKSURL            string
}

// Client talks to the external verifier.
type Client struct {
	httpClient         httpClient
	nonceValidationURL string
	jwksURL            string
}

type nonceValidationResponse struct {
	IsNonceValid bool `json:"is_nonce_valid"`
}

func New(config *Config) *Client {
	c := &Client{
		httpClient:         config.HTTPClient,
		nonceValidationURL: config.NonceValidationURL,
		jwksURL:            config.JWKSURL,
	}

	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	return c
}

// ValidateNonce asks the verifier whether nonce is still alive. The access token
// of the wallet authenticates the call.
func (c *Client) ValidateNonce(ctx context.Context, nonce, accessToken string) (bool, error) {
	form := url.Values{}
	form.Set("nonce", nonce)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.nonceValidationURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("send request: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Errorc(ctx, "Failed to close response body", log.WithError(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result nonceValidationResponse

	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	return result.IsNonceValid, nil
}

// VerifyToken checks the signature of token against the verifier key set
// together with its time based claims, and returns the claims.
func (c *Client) VerifyToken(ctx context.Context, token string) (map[string]interface{}, error) {
	return c.verify(ctx, token, true)
}

// VerifyTokenWithoutExpiration checks the signature of token against the verifier
// key set and returns its claims. Time based claims are left unchecked: id tokens
// presented for certification requests may outlive their exp claim.
func (c *Client) VerifyTokenWithoutExpiration(ctx context.Context, token string) (map[string]interface{}, error) {
	return c.verify(ctx, token, false)
}

func (c *Client) verify(ctx context.Context, token string, validate bool) (map[string]interface{}, error) {
	keySet, err := jwk.Fetch(ctx, c.jwksURL, jwk.WithHTTPClient(c.httpClient))
	if err != nil {
		return nil, fmt.Errorf("fetch verifier key set: %w", err)
	}

	parsed, err := jwt.ParseString(token,
		jwt.WithKeySet(keySet, jws.WithInferAlgorithmFromKey(true), jws.WithRequireKid(false)),
		jwt.WithValidate(validate),
		jwt.WithAcceptableSkew(clockSkew),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenVerification, err)
	}

	claims, err := parsed.AsMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token claims: %w", err)
	}

	return claims, nil
}
