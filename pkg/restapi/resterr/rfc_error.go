/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RFCError is an error reported to clients in the RFC 6749 shape. T is the
// error code set of the protocol the error belongs to.
//
// Error() always carries the full context for logs. The JSON body depends on the
// audience: wallets get only error and error_description, while operator APIs
// also see component, operation and the offending value.
type RFCError[T ~string] struct {
	ErrorCode      T
	ErrorComponent Component
	Operation      string
	IncorrectValue string
	HTTPStatus     int
	Err            error
	public         bool
}

type publicBody[T ~string] struct {
	ErrorCode   T      `json:"error"`
	Description string `json:"error_description,omitempty"`
}

type internalBody[T ~string] struct {
	ErrorCode      T         `json:"error"`
	Description    string    `json:"error_description,omitempty"`
	Component      Component `json:"component,omitempty"`
	Operation      string    `json:"operation,omitempty"`
	IncorrectValue string    `json:"incorrect_value,omitempty"`
	HTTPStatus     int       `json:"http_status,omitempty"`
}

func (e *RFCError[T]) MarshalJSON() ([]byte, error) {
	if e.public {
		return json.Marshal(publicBody[T]{ErrorCode: e.ErrorCode, Description: e.cause()})
	}

	return json.Marshal(internalBody[T]{
		ErrorCode:      e.ErrorCode,
		Description:    e.cause(),
		Component:      e.ErrorComponent,
		Operation:      e.Operation,
		IncorrectValue: e.IncorrectValue,
		HTTPStatus:     e.StatusCode(),
	})
}

func (e *RFCError[T]) Error() string {
	var ctx []string

	for _, kv := range [][2]string{
		{"component", string(e.ErrorComponent)},
		{"operation", e.Operation},
		{"incorrect value", e.IncorrectValue},
	} {
		if kv[1] != "" {
			ctx = append(ctx, kv[0]+"="+kv[1])
		}
	}

	if len(ctx) == 0 {
		return fmt.Sprintf("%s: %s", e.ErrorCode, e.cause())
	}

	return fmt.Sprintf("%s (%s): %s", e.ErrorCode, strings.Join(ctx, ", "), e.cause())
}

func (e *RFCError[T]) cause() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

func (e *RFCError[T]) WithComponent(component Component) *RFCError[T] {
	e.ErrorComponent = component

	return e
}

func (e *RFCError[T]) WithOperation(operation string) *RFCError[T] {
	e.Operation = operation

	return e
}

func (e *RFCError[T]) WithIncorrectValue(incorrectValue string) *RFCError[T] {
	e.IncorrectValue = incorrectValue

	return e
}

// UsePublicAPIResponse limits the JSON body to error and error_description.
func (e *RFCError[T]) UsePublicAPIResponse() *RFCError[T] {
	e.public = true

	return e
}

// StatusCode is the HTTP status the error is reported with.
func (e *RFCError[T]) StatusCode() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}

	return e.HTTPStatus
}

func (e *RFCError[T]) Code() string {
	return string(e.ErrorCode)
}

func (e *RFCError[T]) Component() string {
	return string(e.ErrorComponent)
}

func (e *RFCError[T]) Unwrap() error {
	return e.Err
}
