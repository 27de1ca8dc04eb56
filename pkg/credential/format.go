/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import "fmt"

// Format is the wire format of a signed credential.
type Format string

const (
	FormatJWTVCJSON Format = "jwt_vc_json"
	FormatCWTVC     Format = "cwt_vc"
)

// ParseFormat validates a requested credential format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJWTVCJSON, FormatCWTVC:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func (f Format) String() string {
	return string(f)
}
