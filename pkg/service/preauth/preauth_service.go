/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination preauth_service_mocks_test.go -self_package mocks -package preauth_test -source=preauth_service.go -mock_names pinGenerator=MockPinGenerator

package preauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/otp"
	"github.com/vcissuer/issuer/pkg/storage/cache"
)

const (
	cachePrefix = "preauth"

	// DefaultTTL is the lifetime of a pre-authorized code binding.
	DefaultTTL = 5 * time.Minute

	inputModeNumeric = "numeric"
)

var logger = log.New("preauth")

// ErrCodeNotFound is returned when a pre-authorized code is unknown or expired.
var ErrCodeNotFound = errors.New("pre-authorized code not found")

type pinGenerator interface {
	Generate() (string, error)
	Length() int
}

// Binding pairs a credential with the PIN protecting its pre-authorized code.
type Binding struct {
	CredentialID string `json:"credentialId"`
	TxCode       string `json:"txCode"`
}

// TxCodeMetadata describes the PIN to the wallet.
type TxCodeMetadata struct {
	Length      int    `json:"length"`
	InputMode   string `json:"input_mode"`
	Description string `json:"description"`
}

// Grant is a freshly minted pre-authorized code.
type Grant struct {
	PreAuthorizedCode string
	PIN               string
	TxCode            TxCodeMetadata
}

// Service mints and resolves pre-authorized codes.
type Service struct {
	bindings    *cache.Typed[Binding]
	pins        pinGenerator
	description string
}

// Config holds the service dependencies.
type Config struct {
	Store       cache.Store
	TTL         time.Duration
	Pins        pinGenerator
	Description string
}

// NewService creates a pre-authorized code service.
func NewService(config *Config) *Service {
	ttl := config.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	description := config.Description
	if description == "" {
		description = "A PIN has been sent to your email. Enter it to continue."
	}

	return &Service{
		bindings:    cache.NewTyped[Binding](config.Store, cachePrefix, ttl),
		pins:        config.Pins,
		description: description,
	}
}

// Generate mints a pre-authorized code and PIN bound to credentialID. Nothing is
// stored unless both values were generated.
func (s *Service) Generate(ctx context.Context, credentialID string) (*Grant, error) {
	code, err := otp.NewCode()
	if err != nil {
		return nil, err
	}

	pin, err := s.pins.Generate()
	if err != nil {
		return nil, err
	}

	if _, err = s.bindings.Add(ctx, code, Binding{CredentialID: credentialID, TxCode: pin}); err != nil {
		return nil, fmt.Errorf("store pre-authorized code: %w", err)
	}

	logger.Debugc(ctx, "pre-authorized code issued",
		logfields.WithCredentialID(credentialID), logfields.WithCode(code))

	return &Grant{
		PreAuthorizedCode: code,
		PIN:               pin,
		TxCode: TxCodeMetadata{
			Length:      s.pins.Length(),
			InputMode:   inputModeNumeric,
			Description: s.description,
		},
	}, nil
}

// Lookup returns the binding of code without consuming it.
func (s *Service) Lookup(ctx context.Context, code string) (*Binding, error) {
	b, err := s.bindings.Get(ctx, code)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrCodeNotFound
		}

		return nil, fmt.Errorf("lookup pre-authorized code: %w", err)
	}

	return &b, nil
}

// Revoke removes the binding of code.
func (s *Service) Revoke(ctx context.Context, code string) error {
	return s.bindings.Delete(ctx, code)
}
