/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkey

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multicodec"
)

const prefix = "did:key:"

var (
	// ErrInvalidDID is returned for identifiers that are not well formed did:key DIDs.
	ErrInvalidDID = errors.New("invalid did:key")
	// ErrUnsupportedKey is returned for key types that cannot verify proofs.
	ErrUnsupportedKey = errors.New("unsupported did:key public key type")

	errInvalidPublicKeyLength = fmt.Errorf("%w: invalid public key length", ErrInvalidDID)
)

// Resolve returns the public key encoded in a did:key identifier. A key id
// fragment ("did:key:z...#z...") is ignored.
func Resolve(did string) (crypto.PublicKey, error) {
	did, _, _ = strings.Cut(did, "#")

	encodedKey, ok := strings.CutPrefix(did, prefix)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported DID method in %q", ErrInvalidDID, did)
	}

	if len(encodedKey) == 0 || encodedKey[0] != 'z' {
		return nil, fmt.Errorf("%w: identifier does not start with 'z'", ErrInvalidDID)
	}

	mcBytes, err := base58.Decode(encodedKey[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base58btc: %w", ErrInvalidDID, err)
	}

	reader := bytes.NewReader(mcBytes)

	keyType, err := binary.ReadUvarint(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid multicodec value: %w", ErrInvalidDID, err)
	}

	keyBytes, _ := io.ReadAll(reader) //nolint:errcheck

	switch multicodec.Code(keyType) { //nolint:exhaustive
	case multicodec.Ed25519Pub:
		if len(keyBytes) != ed25519.PublicKeySize {
			return nil, errInvalidPublicKeyLength
		}

		return ed25519.PublicKey(keyBytes), nil
	case multicodec.P256Pub:
		return unmarshalEC(elliptic.P256(), 33, keyBytes) //nolint:gomnd
	case multicodec.P384Pub:
		return unmarshalEC(elliptic.P384(), 49, keyBytes) //nolint:gomnd
	case multicodec.RsaPub:
		key, rsaErr := x509.ParsePKCS1PublicKey(keyBytes)
		if rsaErr != nil {
			return nil, fmt.Errorf("%w: invalid PKCS#1 encoded RSA public key: %w", ErrInvalidDID, rsaErr)
		}

		return key, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKey, keyType)
	}
}

// Encode builds the did:key identifier of a public key.
func Encode(pub crypto.PublicKey) (string, error) {
	var (
		code multicodec.Code
		raw  []byte
	)

	switch k := pub.(type) {
	case ed25519.PublicKey:
		code, raw = multicodec.Ed25519Pub, k
	case *ecdsa.PublicKey:
		switch k.Curve {
		case elliptic.P256():
			code = multicodec.P256Pub
		case elliptic.P384():
			code = multicodec.P384Pub
		default:
			return "", fmt.Errorf("%w: curve %s", ErrUnsupportedKey, k.Curve.Params().Name)
		}

		raw = elliptic.MarshalCompressed(k.Curve, k.X, k.Y)
	case *rsa.PublicKey:
		code, raw = multicodec.RsaPub, x509.MarshalPKCS1PublicKey(k)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, pub)
	}

	b := binary.AppendUvarint(nil, uint64(code))

	return prefix + "z" + base58.Encode(append(b, raw...)), nil
}

func unmarshalEC(curve elliptic.Curve, expectedLen int, pubKeyBytes []byte) (*ecdsa.PublicKey, error) {
	if len(pubKeyBytes) != expectedLen {
		return nil, errInvalidPublicKeyLength
	}

	x, y := elliptic.UnmarshalCompressed(curve, pubKeyBytes)
	if x == nil {
		return nil, fmt.Errorf("%w: point is not on curve %s", ErrInvalidDID, curve.Params().Name)
	}

	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}
