/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	// DefaultPinLength is the number of digits of a transaction PIN.
	DefaultPinLength = 4
	maxPinLength     = 18

	codeSize = 16
)

// PinGenerator generates numeric one-time PINs.
type PinGenerator struct {
	length int
	random io.Reader
}

// Opt configures the PinGenerator.
type Opt func(*PinGenerator)

// WithRandom replaces the source of randomness.
func WithRandom(r io.Reader) Opt {
	return func(p *PinGenerator) {
		p.random = r
	}
}

// NewPinGenerator creates a generator of length-digit PINs.
func NewPinGenerator(length int, opts ...Opt) (*PinGenerator, error) {
	if length < 1 || length > maxPinLength {
		return nil, fmt.Errorf("pin length must be between 1 and %d, got %d", maxPinLength, length)
	}

	p := &PinGenerator{
		length: length,
		random: rand.Reader,
	}

	for _, o := range opts {
		o(p)
	}

	return p, nil
}

// Length returns the number of digits of generated PINs.
func (p *PinGenerator) Length() int {
	return p.length
}

// Generate returns a uniformly random PIN in [10^(n-1), 10^n - 1], so it never
// starts with a zero digit.
func (p *PinGenerator) Generate() (string, error) {
	lower := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p.length-1)), nil) //nolint:gomnd
	upper := new(big.Int).Mul(lower, big.NewInt(10))                              //nolint:gomnd

	n, err := rand.Int(p.random, new(big.Int).Sub(upper, lower))
	if err != nil {
		return "", fmt.Errorf("generate pin: %w", err)
	}

	return n.Add(n, lower).String(), nil
}

// Validate compares a PIN in constant time.
func (p *PinGenerator) Validate(expected string, userInput string) bool {
	if expected == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(userInput)) == 1
}

// NewCode returns a 128-bit random value encoded as unpadded URL-safe base64.
func NewCode() (string, error) {
	return newCode(rand.Reader)
}

func newCode(r io.Reader) (string, error) {
	b := make([]byte, codeSize)

	if _, err := io.ReadFull(r, b); err != nil {
		return "", errors.Join(errors.New("generate code"), err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
