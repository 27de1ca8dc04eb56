/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination signing_service_mocks_test.go -self_package mocks -package signing_test -source=signing_service.go -mock_names remoteSigner=MockRemoteSigner

package signing

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
	"golang.org/x/sync/semaphore"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/client/remotesigner"
	"github.com/vcissuer/issuer/pkg/credential"
	"github.com/vcissuer/issuer/pkg/observability/metrics"
	"github.com/vcissuer/issuer/pkg/observability/metrics/noop"
)

var logger = log.New("signing")

// Stages of the CWT pipeline reported by EncodingError.
const (
	StageCBOR       = "cbor"
	StageRemoteSign = "remote_sign"
	StageCOSEDecode = "cose_decode"
	StageDeflate    = "deflate"
	StageBase45     = "base45"
)

// EncodingError reports the CWT pipeline stage that failed.
type EncodingError struct {
	Stage string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode cwt credential: %s: %s", e.Stage, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

type remoteSigner interface {
	Sign(ctx context.Context, req remotesigner.SignatureRequest, token string) (*remotesigner.SignedData, error)
}

type Config struct {
	Signer  remoteSigner
	Metrics metrics.Metrics
	// MaxConcurrentEncodes bounds CPU bound CBOR and compression work. Defaults to GOMAXPROCS.
	MaxConcurrentEncodes int
}

// Service turns decoded credentials into signed artifacts.
type Service struct {
	signer  remoteSigner
	metrics metrics.Metrics
	encodes *semaphore.Weighted
}

func NewService(config *Config) *Service {
	limit := config.MaxConcurrentEncodes
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	s := &Service{
		signer:  config.Signer,
		metrics: config.Metrics,
		encodes: semaphore.NewWeighted(int64(limit)),
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	return s
}

// Sign signs unsignedCredential in the requested format. token authenticates the
// call to the remote signer.
func (s *Service) Sign(ctx context.Context, unsignedCredential, format, token string) (string, error) {
	vcFormat, err := credential.ParseFormat(format)
	if err != nil {
		return "", err
	}

	var signed string

	switch vcFormat {
	case credential.FormatJWTVCJSON:
		signed, err = s.signJWT(ctx, unsignedCredential, token)
	case credential.FormatCWTVC:
		signed, err = s.signCWT(ctx, unsignedCredential, token)
	}

	if err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			logger.Warnc(ctx, "cwt encoding failed", logfields.WithStage(encErr.Stage), log.WithError(encErr.Err))
		}

		return "", err
	}

	s.metrics.CredentialSigned(string(vcFormat))

	logger.Debugc(ctx, "credential signed", logfields.WithFormat(string(vcFormat)))

	return signed, nil
}

func (s *Service) signJWT(ctx context.Context, unsignedCredential, token string) (string, error) {
	resp, err := s.remoteSign(ctx, remotesigner.SignatureTypeJADES, unsignedCredential, token)
	if err != nil {
		return "", fmt.Errorf("sign jwt credential: %w", err)
	}

	return resp.Data, nil
}

func (s *Service) signCWT(ctx context.Context, unsignedCredential, token string) (string, error) {
	var cborBytes []byte

	err := s.runEncode(ctx, func() error {
		var encErr error

		cborBytes, encErr = jsonToCBOR([]byte(unsignedCredential))

		return encErr
	})
	if err != nil {
		return "", &EncodingError{Stage: StageCBOR, Err: err}
	}

	resp, err := s.remoteSign(ctx, remotesigner.SignatureTypeCOSE,
		base64.StdEncoding.EncodeToString(cborBytes), token)
	if err != nil {
		return "", &EncodingError{Stage: StageRemoteSign, Err: err}
	}

	coseBytes, err := base64.StdEncoding.DecodeString(resp.Data)
	if err != nil {
		return "", &EncodingError{Stage: StageCOSEDecode, Err: err}
	}

	var encoded string

	err = s.runEncode(ctx, func() error {
		var encErr error

		encoded, encErr = EncodeCOSE(coseBytes)

		return encErr
	})
	if err != nil {
		return "", err
	}

	return encoded, nil
}

func (s *Service) remoteSign(
	ctx context.Context,
	typ remotesigner.SignatureType,
	data, token string,
) (*remotesigner.SignedData, error) {
	st := time.Now()

	defer func() {
		s.metrics.RemoteSignTime(time.Since(st))
	}()

	return s.signer.Sign(ctx, remotesigner.SignatureRequest{
		Configuration: remotesigner.Configuration{Type: typ},
		Data:          data,
	}, token)
}

// runEncode runs CPU bound work once an encode slot is free.
func (s *Service) runEncode(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.encodes.Acquire(ctx, 1); err != nil {
		return err
	}

	defer s.encodes.Release(1)

	st := time.Now()

	defer func() {
		s.metrics.CWTEncodeTime(time.Since(st))
	}()

	return fn()
}
