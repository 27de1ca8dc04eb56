/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Mandator is the organization on whose behalf a mandate is granted.
type Mandator struct {
	OrganizationIdentifier string `json:"organizationIdentifier,omitempty"`
	CommonName             string `json:"commonName,omitempty"`
	SerialNumber           string `json:"serialNumber,omitempty"`
	Organization           string `json:"organization,omitempty"`
	EmailAddress           string `json:"emailAddress,omitempty"`
	Country                string `json:"country,omitempty"`
}

// Mandatee is the natural person or machine holding the mandate.
type Mandatee struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	MobilePhone string `json:"mobile_phone,omitempty"`
	Domain      string `json:"domain,omitempty"`
	IPAddress   string `json:"ipAddress,omitempty"`
}

// Name returns a display name of the mandatee.
func (m Mandatee) Name() string {
	name := strings.TrimSpace(m.FirstName + " " + m.LastName)
	if name == "" {
		return m.Domain
	}

	return name
}

// Power describes what the mandatee may do within a business function.
type Power struct {
	ID       string    `json:"id,omitempty"`
	Type     string    `json:"type,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Function string    `json:"function"`
	Action   ActionSet `json:"action"`
}

type powerJSON struct {
	ID          string          `json:"id,omitempty"`
	Type        string          `json:"type,omitempty"`
	TmfType     string          `json:"tmf_type,omitempty"`
	Domain      string          `json:"domain,omitempty"`
	TmfDomain   json.RawMessage `json:"tmf_domain,omitempty"`
	Function    string          `json:"function,omitempty"`
	TmfFunction string          `json:"tmf_function,omitempty"`
	Action      json.RawMessage `json:"action,omitempty"`
	TmfAction   json.RawMessage `json:"tmf_action,omitempty"`
}

// UnmarshalJSON accepts both the current and the legacy tmf_* power layout.
func (p *Power) UnmarshalJSON(b []byte) error {
	var raw powerJSON

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	p.Type = lo.Ternary(raw.Type != "", raw.Type, raw.TmfType)
	p.Function = lo.Ternary(raw.Function != "", raw.Function, raw.TmfFunction)

	p.Domain = raw.Domain
	if p.Domain == "" && len(raw.TmfDomain) > 0 {
		var domains ActionSet
		if err := json.Unmarshal(raw.TmfDomain, &domains); err != nil {
			return fmt.Errorf("power domain: %w", err)
		}

		p.Domain = strings.Join(domains.Values(), ",")
	}

	action := raw.Action
	if len(action) == 0 {
		action = raw.TmfAction
	}

	p.Action = ActionSet{}

	if len(action) > 0 {
		if err := json.Unmarshal(action, &p.Action); err != nil {
			return fmt.Errorf("power action: %w", err)
		}
	}

	return nil
}

// Allows reports whether the power belongs to the given function and permits the given action.
func (p Power) Allows(function, action string) bool {
	return p.Function == function && p.Action.Contains(action)
}

// ActionSet is the normalized form of power.action, which may be encoded either
// as a single string or as an array of strings.
type ActionSet map[string]struct{}

// NewActionSet creates an ActionSet from the given values.
func NewActionSet(values ...string) ActionSet {
	s := make(ActionSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}

	return s
}

// Contains reports whether action is in the set.
func (s ActionSet) Contains(action string) bool {
	_, ok := s[action]

	return ok
}

// Values returns the set members in lexical order.
func (s ActionSet) Values() []string {
	values := lo.Keys(s)
	sort.Strings(values)

	return values
}

// UnmarshalJSON decodes a string or an array of strings.
func (s *ActionSet) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*s = NewActionSet(single)

		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("action must be a string or an array of strings: %w", err)
	}

	*s = NewActionSet(many...)

	return nil
}

// MarshalJSON always encodes an array.
func (s ActionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// Mandate is the mandate claim of a LEAR credential.
type Mandate struct {
	ID       string    `json:"id,omitempty"`
	Mandator Mandator  `json:"mandator"`
	Mandatee Mandatee  `json:"mandatee"`
	Power    []Power   `json:"power"`
	Signer   *Mandator `json:"signer,omitempty"`
}

// HasPower reports whether any power of the mandate allows action within function.
func (m *Mandate) HasPower(function, action string) bool {
	return lo.ContainsBy(m.Power, func(p Power) bool {
		return p.Allows(function, action)
	})
}

// AllPowersIn reports whether every power of the mandate belongs to function.
// A mandate without powers does not satisfy the check.
func (m *Mandate) AllPowersIn(function string) bool {
	if len(m.Power) == 0 {
		return false
	}

	return lo.EveryBy(m.Power, func(p Power) bool {
		return p.Function == function
	})
}

// ParsePayloadMandate reads the mandate of an issuance request payload. The
// payload is either the mandate itself or an object carrying it under "mandate".
func ParsePayloadMandate(payload []byte) (*Mandate, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: malformed payload", ErrInvalidCredential)
	}

	raw := payload
	if inner := gjson.GetBytes(payload, "mandate"); inner.IsObject() {
		raw = []byte(inner.Raw)
	}

	var m Mandate

	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	return &m, nil
}
