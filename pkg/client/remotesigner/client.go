/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package remotesigner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("remote-signer-client")

// SignatureType selects the signature envelope produced by the remote signer.
type SignatureType string

const (
	SignatureTypeJADES SignatureType = "JADES"
	SignatureTypeCOSE  SignatureType = "COSE"
)

const maxErrorBody = 512

type Configuration struct {
	Type       SignatureType     `json:"type"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

type SignatureRequest struct {
	Configuration Configuration `json:"configuration"`
	Data          string        `json:"data"`
}

type SignedData struct {
	Type SignatureType `json:"type"`
	Data string        `json:"data"`
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the remote signature service.
type Client struct {
	httpClient httpClient
	signURL    string
}

func New(signURL string, httpClient httpClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		signURL:    signURL,
	}
}

// Sign sends one signature request. token is forwarded as bearer credential.
func (c *Client) Sign(ctx context.Context, signReq SignatureRequest, token string) (*SignedData, error) {
	body, err := json.Marshal(signReq)
	if err != nil {
		return nil, fmt.Errorf("encode signature request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.signURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	st := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Errorc(ctx, "Failed to close response body", log.WithError(closeErr))
		}
	}()

	logger.Debugc(ctx, "remote signer responded", log.WithDuration(time.Since(st)))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck

		return nil, fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, msg)
	}

	var signed SignedData

	if err = json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if signed.Data == "" {
		return nil, fmt.Errorf("remote signer returned no data")
	}

	return &signed, nil
}
