/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dasio/base45"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zlib"
)

var canonicalCBOR cbor.EncMode //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	var err error

	canonicalCBOR, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// EncodeCOSE compresses signed COSE bytes and renders them as Base45 text.
func EncodeCOSE(coseBytes []byte) (string, error) {
	compressed, err := deflate(coseBytes)
	if err != nil {
		return "", &EncodingError{Stage: StageDeflate, Err: err}
	}

	return base45.EncodeToString(compressed), nil
}

const base45Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// DecodeCOSE reverses EncodeCOSE.
func DecodeCOSE(encoded string) ([]byte, error) {
	if err := checkBase45(encoded); err != nil {
		return nil, &EncodingError{Stage: StageBase45, Err: err}
	}

	compressed, err := base45.DecodeString(encoded)
	if err != nil {
		return nil, &EncodingError{Stage: StageBase45, Err: err}
	}

	coseBytes, err := inflate(compressed)
	if err != nil {
		return nil, &EncodingError{Stage: StageDeflate, Err: err}
	}

	return coseBytes, nil
}

// checkBase45 rejects input the base45 decoder does not guard against: symbols
// outside the alphabet, a dangling single symbol and chunks that overflow.
func checkBase45(encoded string) error {
	if len(encoded)%3 == 1 {
		return fmt.Errorf("invalid base45 length %d", len(encoded))
	}

	for start := 0; start < len(encoded); start += 3 {
		end := start + 3
		if end > len(encoded) {
			end = len(encoded)
		}

		val, weight := 0, 1

		for i := start; i < end; i++ {
			digit := strings.IndexByte(base45Alphabet, encoded[i])
			if digit < 0 {
				return fmt.Errorf("illegal base45 symbol %q at offset %d", encoded[i], i)
			}

			val += digit * weight
			weight *= len(base45Alphabet)
		}

		limit := 0xFFFF
		if end-start == 2 {
			limit = 0xFF
		}

		if val > limit {
			return fmt.Errorf("base45 chunk at offset %d out of range", start)
		}
	}

	return nil
}

// jsonToCBOR re-encodes a JSON document as canonical CBOR. Integral numbers
// become CBOR integers, everything else keeps its JSON kind.
func jsonToCBOR(doc []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var v interface{}

	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse credential json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse credential json: trailing data")
	}

	b, err := canonicalCBOR.Marshal(normalizeNumbers(v))
	if err != nil {
		return nil, fmt.Errorf("marshal cbor: %w", err)
	}

	return b, nil
}

func normalizeNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalizeNumbers(val)
		}

		return t
	case []interface{}:
		for i, val := range t {
			t[i] = normalizeNumbers(val)
		}

		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}

		if f, err := t.Float64(); err == nil {
			return f
		}

		return t.String()
	default:
		return v
	}
}

func deflate(input []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}

	if _, err = w.Write(input); err != nil {
		return nil, err
	}

	if err = w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func inflate(input []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = r.Close()
	}()

	return io.ReadAll(r)
}
