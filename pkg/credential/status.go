/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import "fmt"

// Status is the lifecycle status of a credential procedure.
type Status string

const (
	StatusIssued    Status = "ISSUED"
	StatusValid     Status = "VALID"
	StatusWithdrawn Status = "WITHDRAWN"
	StatusRevoked   Status = "REVOKED"
	StatusExpired   Status = "EXPIRED"
)

// ParseStatus validates s as a known status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusIssued, StatusValid, StatusWithdrawn, StatusRevoked, StatusExpired:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusWithdrawn || s == StatusRevoked || s == StatusExpired
}

// CanTransitionTo reports whether s may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusIssued:
		return next == StatusValid || next.IsTerminal()
	case StatusValid:
		return next.IsTerminal()
	default:
		return false
	}
}

// CheckTransition returns ErrIllegalTransition when s cannot move to next.
func (s Status) CheckTransition(next Status) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, next)
	}

	return nil
}
