/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import "errors"

var (
	ErrUnknownType          = errors.New("unknown credential type")
	ErrUnsupportedFormat    = errors.New("unsupported credential format")
	ErrInvalidCredential    = errors.New("invalid credential")
	ErrMandateNotSupported  = errors.New("credential type carries no mandate")
	ErrInvalidStatus        = errors.New("invalid credential status")
	ErrIllegalTransition    = errors.New("illegal credential status transition")
	ErrUnknownOperationMode = errors.New("unknown operation mode")
)

// Repository errors.
var (
	ErrDataNotFound     = errors.New("data not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrConcurrentUpdate = errors.New("record was modified concurrently")
)
