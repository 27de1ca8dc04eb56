/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Type is the closed set of credential types the issuer can produce.
type Type int

const (
	LEARCredentialEmployee Type = iota + 1
	LEARCredentialMachine
	VerifiableCertification
)

// Schema names as used in issuance requests and persisted procedures.
const (
	SchemaLEARCredentialEmployee  = "LEAR_CREDENTIAL_EMPLOYEE"
	SchemaLEARCredentialMachine   = "LEAR_CREDENTIAL_MACHINE"
	SchemaVerifiableCertification = "VERIFIABLE_CERTIFICATION"
)

// Descriptor holds everything that varies per credential type.
type Descriptor struct {
	Schema          string
	W3CType         string
	ConfigurationID string
	// PayloadPath is where an issuance request payload is placed in the credential.
	PayloadPath string
	// HolderPath is where the holder DID is bound. Empty when the type has no holder binding.
	HolderPath string
	// ParseMandate extracts the mandate from credential JSON. Nil for types
	// that carry no mandate.
	ParseMandate func(vc []byte) (*Mandate, error)
}

var descriptors = map[Type]Descriptor{
	LEARCredentialEmployee: {
		Schema:          SchemaLEARCredentialEmployee,
		W3CType:         "LEARCredentialEmployee",
		ConfigurationID: "LEARCredentialEmployee",
		PayloadPath:     "credentialSubject.mandate",
		HolderPath:      "credentialSubject.mandate.mandatee.id",
		ParseMandate:    parseSubjectMandate,
	},
	LEARCredentialMachine: {
		Schema:          SchemaLEARCredentialMachine,
		W3CType:         "LEARCredentialMachine",
		ConfigurationID: "LEARCredentialMachine",
		PayloadPath:     "credentialSubject.mandate",
		HolderPath:      "credentialSubject.mandate.mandatee.id",
		ParseMandate:    parseSubjectMandate,
	},
	VerifiableCertification: {
		Schema:          SchemaVerifiableCertification,
		W3CType:         "VerifiableCertification",
		ConfigurationID: "VerifiableCertification",
		PayloadPath:     "credentialSubject",
	},
}

// Types returns all known credential types.
func Types() []Type {
	return []Type{LEARCredentialEmployee, LEARCredentialMachine, VerifiableCertification}
}

// Descriptor returns the descriptor of t.
func (t Type) Descriptor() Descriptor {
	return descriptors[t]
}

// String returns the schema name.
func (t Type) String() string {
	d, ok := descriptors[t]
	if !ok {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return d.Schema
}

// ParseMandate parses the mandate carried by vc according to the type.
func (t Type) ParseMandate(vc []byte) (*Mandate, error) {
	d, ok := descriptors[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	if d.ParseMandate == nil {
		return nil, fmt.Errorf("%w: %s", ErrMandateNotSupported, d.Schema)
	}

	return d.ParseMandate(vc)
}

// MarshalJSON encodes the schema name.
func (t Type) MarshalJSON() ([]byte, error) {
	if _, ok := descriptors[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a schema name.
func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseType(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// ParseType resolves a schema name such as "LEAR_CREDENTIAL_EMPLOYEE".
func ParseType(schema string) (Type, error) {
	switch schema {
	case SchemaLEARCredentialEmployee:
		return LEARCredentialEmployee, nil
	case SchemaLEARCredentialMachine:
		return LEARCredentialMachine, nil
	case SchemaVerifiableCertification:
		return VerifiableCertification, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, schema)
	}
}

// TypeFromW3C resolves a W3C credential type such as "LEARCredentialMachine".
func TypeFromW3C(w3cType string) (Type, error) {
	switch w3cType {
	case "LEARCredentialEmployee":
		return LEARCredentialEmployee, nil
	case "LEARCredentialMachine":
		return LEARCredentialMachine, nil
	case "VerifiableCertification":
		return VerifiableCertification, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, w3cType)
	}
}

// W3CTypes reads the "type" member of a credential, accepting either a single
// string or an array of strings.
func W3CTypes(vc []byte) ([]string, error) {
	if !gjson.ValidBytes(vc) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidCredential)
	}

	t := gjson.GetBytes(vc, "type")

	switch {
	case t.Type == gjson.String:
		return []string{t.String()}, nil
	case t.IsArray():
		var types []string

		for _, v := range t.Array() {
			if v.Type != gjson.String {
				return nil, fmt.Errorf("%w: type entries must be strings", ErrInvalidCredential)
			}

			types = append(types, v.String())
		}

		return types, nil
	default:
		return nil, fmt.Errorf("%w: type must be a string or an array of strings", ErrInvalidCredential)
	}
}

type subjectMandate struct {
	CredentialSubject struct {
		Mandate *Mandate `json:"mandate"`
	} `json:"credentialSubject"`
}

func parseSubjectMandate(vc []byte) (*Mandate, error) {
	var s subjectMandate

	if err := json.Unmarshal(vc, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	if s.CredentialSubject.Mandate == nil {
		return nil, fmt.Errorf("%w: credentialSubject.mandate is missing", ErrInvalidCredential)
	}

	return s.CredentialSubject.Mandate, nil
}
