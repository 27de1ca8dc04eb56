/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/vcissuer/issuer/pkg/credential"
)

var defaultContexts = []string{
	"https://www.w3.org/ns/credentials/v2",
	"https://www.dome-marketplace.eu/2025/credentials/learcredential/v1",
}

type unsignedCredential struct {
	typ          credential.Type
	credentialID string
	issuer       string
	payload      []byte
	validFrom    time.Time
	validUntil   time.Time
}

// build returns the decoded W3C credential with the request payload placed
// where the credential type expects it.
func (u *unsignedCredential) build() (string, error) {
	if !gjson.ValidBytes(u.payload) || !gjson.ParseBytes(u.payload).IsObject() {
		return "", fmt.Errorf("%w: payload must be a JSON object", credential.ErrInvalidCredential)
	}

	d := u.typ.Descriptor()

	doc, err := setAll("{}", []field{
		{`\@context`, defaultContexts},
		{"id", "urn:uuid:" + u.credentialID},
		{"type", []string{"VerifiableCredential", d.W3CType}},
		{"issuer", u.issuer},
		{"validFrom", u.validFrom.UTC().Format(time.RFC3339)},
		{"validUntil", u.validUntil.UTC().Format(time.RFC3339)},
	})
	if err != nil {
		return "", err
	}

	doc, err = sjson.SetRaw(doc, d.PayloadPath, string(u.payload))
	if err != nil {
		return "", fmt.Errorf("set payload: %w", err)
	}

	return doc, nil
}

// bindHolder writes the holder DID into a decoded credential.
func bindHolder(typ credential.Type, decoded, holderDID string) (string, error) {
	path := typ.Descriptor().HolderPath
	if path == "" || holderDID == "" {
		return decoded, nil
	}

	doc, err := sjson.Set(decoded, path, holderDID)
	if err != nil {
		return "", fmt.Errorf("bind holder: %w", err)
	}

	return doc, nil
}

// signingPayload wraps a decoded credential into the claims set handed to the signer.
func signingPayload(decoded, issuer, holderDID string, now time.Time) (string, error) {
	vc := gjson.Parse(decoded)

	fields := []field{
		{"iss", issuer},
		{"jti", vc.Get("id").String()},
		{"iat", now.Unix()},
	}

	if holderDID != "" {
		fields = append(fields, field{"sub", holderDID})
	}

	if t, err := time.Parse(time.RFC3339, vc.Get("validFrom").String()); err == nil {
		fields = append(fields, field{"nbf", t.Unix()})
	}

	if t, err := time.Parse(time.RFC3339, vc.Get("validUntil").String()); err == nil {
		fields = append(fields, field{"exp", t.Unix()})
	}

	doc, err := setAll("{}", fields)
	if err != nil {
		return "", err
	}

	doc, err = sjson.SetRaw(doc, "vc", decoded)
	if err != nil {
		return "", fmt.Errorf("set vc claim: %w", err)
	}

	return doc, nil
}

type field struct {
	path  string
	value interface{}
}

func setAll(doc string, fields []field) (string, error) {
	var err error

	for _, f := range fields {
		if doc, err = sjson.Set(doc, f.path, f.value); err != nil {
			return "", fmt.Errorf("set %s: %w", f.path, err)
		}
	}

	return doc, nil
}

type holderInfo struct {
	email          string
	name           string
	organization   string
	organizationID string
}

// holderOf reads the contact and organization of the holder from a request.
func holderOf(typ credential.Type, req *CreateCredentialRequest) *holderInfo {
	h := &holderInfo{}

	if typ.Descriptor().ParseMandate != nil {
		if m, err := credential.ParsePayloadMandate(req.Payload); err == nil {
			h.email = m.Mandatee.Email
			h.name = m.Mandatee.Name()
			h.organization = m.Mandator.Organization
			h.organizationID = m.Mandator.OrganizationIdentifier
		}
	}

	if req.Email != "" {
		h.email = req.Email
	}

	return h
}

func gjsonString(doc, path string) string {
	return gjson.Get(doc, path).String()
}
