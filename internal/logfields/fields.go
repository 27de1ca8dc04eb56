/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldCredentialID      = "credentialID"
	FieldCredentialType    = "credentialType"
	FieldEvent             = "event"
	FieldFormat            = "format"
	FieldOfferState        = "offerState"
	FieldOperationMode     = "operationMode"
	FieldOrganizationID    = "organizationID"
	FieldProcedureID       = "procedureID"
	FieldRequirement       = "requirement"
	FieldService           = "service"
	FieldSleep             = "sleep"
	FieldStage             = "stage"
	FieldCodeHash          = "codeHash"
	FieldTransactionID     = "transactionID"
	FieldUserLogLevel      = "userLogLevel"
	FieldSubjectDID        = "subjectDID"
	FieldTotal             = "total"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.String(FieldAdditionalMessage, value)
}

// WithCredentialID sets the CredentialID field.
func WithCredentialID(value string) zap.Field {
	return zap.String(FieldCredentialID, value)
}

// WithCredentialType sets the CredentialType field.
func WithCredentialType(value string) zap.Field {
	return zap.String(FieldCredentialType, value)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithFormat sets the credential Format field.
func WithFormat(value string) zap.Field {
	return zap.String(FieldFormat, value)
}

// WithOfferState sets the OfferState field.
func WithOfferState(value string) zap.Field {
	return zap.String(FieldOfferState, value)
}

// WithOperationMode sets the OperationMode field.
func WithOperationMode(value string) zap.Field {
	return zap.String(FieldOperationMode, value)
}

// WithOrganizationID sets the OrganizationID field.
func WithOrganizationID(value string) zap.Field {
	return zap.String(FieldOrganizationID, value)
}

// WithProcedureID sets the ProcedureID field.
func WithProcedureID(value string) zap.Field {
	return zap.String(FieldProcedureID, value)
}

// WithRequirement sets the unmet policy Requirement field.
func WithRequirement(value string) zap.Field {
	return zap.String(FieldRequirement, value)
}

// WithService sets the Service field.
func WithService(value string) zap.Field {
	return zap.String(FieldService, value)
}

// WithTotal sets the Total field.
func WithTotal(n int) zap.Field {
	return zap.Int(FieldTotal, n)
}

// WithSleep sets the Sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithStage sets the pipeline Stage field.
func WithStage(value string) zap.Field {
	return zap.String(FieldStage, value)
}

// WithCode logs a one-time code as a truncated SHA-256 hash so it can be correlated
// across log lines without being replayable.
func WithCode(code string) zap.Field {
	sum := sha256.Sum256([]byte(code))

	return zap.String(FieldCodeHash, hex.EncodeToString(sum[:8]))
}

// WithTransactionID sets the TransactionID field.
func WithTransactionID(value string) zap.Field {
	return zap.String(FieldTransactionID, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithSubjectDID sets the SubjectDID field.
func WithSubjectDID(value string) zap.Field {
	return zap.String(FieldSubjectDID, value)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
