/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

// Redacted replaces secret values in span attributes.
const Redacted = "[REDACTED]"

type options struct {
	redacted map[string]struct{}
}

// Opt configures attribute rendering.
type Opt func(*options)

// WithRedacted hides the values at paths. For JSON attributes a path uses gjson
// syntax, where a "#" segment expands to every element of an array. For form
// attributes a path is a parameter name.
func WithRedacted(paths ...string) Opt {
	return func(o *options) {
		for _, p := range paths {
			o.redacted[p] = struct{}{}
		}
	}
}

func newOptions(opts []Opt) *options {
	op := &options{redacted: map[string]struct{}{}}

	for _, opt := range opts {
		opt(op)
	}

	return op
}

// JSON renders value as a JSON string attribute. An empty attribute is returned
// when value cannot be marshaled.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := newOptions(opts)

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{Key: attribute.Key(key)}
	}

	for path := range op.redacted {
		b = redactJSON(b, path)
	}

	return attribute.String(key, string(b))
}

func redactJSON(doc []byte, path string) []byte {
	head, tail, expand := strings.Cut(path, "#")
	if !expand {
		if !gjson.GetBytes(doc, path).Exists() {
			return doc
		}

		out, err := sjson.SetBytes(doc, path, Redacted)
		if err != nil {
			return doc
		}

		return out
	}

	head = strings.TrimSuffix(head, ".")
	tail = strings.TrimPrefix(tail, ".")

	arr := gjson.ParseBytes(doc)
	if head != "" {
		arr = gjson.GetBytes(doc, head)
	}

	if !arr.IsArray() {
		return doc
	}

	for i := range arr.Array() {
		elem := strconv.Itoa(i)
		if head != "" {
			elem = head + "." + elem
		}

		if tail != "" {
			elem += "." + tail
		}

		doc = redactJSON(doc, elem)
	}

	return doc
}

// FormParams renders form parameters sorted by name, one name=value pair per value.
func FormParams(key string, params map[string][]string, opts ...Opt) attribute.KeyValue {
	op := newOptions(opts)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	pairs := make([]string, 0, len(names))

	for _, name := range names {
		_, secret := op.redacted[name]

		for _, v := range params[name] {
			if secret {
				v = Redacted
			}

			pairs = append(pairs, name+"="+v)
		}
	}

	return attribute.String(key, strings.Join(pairs, "&"))
}
