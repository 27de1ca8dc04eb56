/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package notification

import (
	"fmt"

	"github.com/cbroglie/mustache"
)

const (
	pinSubject        = "Your credential PIN"
	activationSubject = "Activate your credential"

	pinTemplate = `Hello{{#name}} {{{name}}}{{/name}},

your PIN to accept the credential offer is {{pin}}.
It expires in {{minutes}} minutes. Do not share it with anyone.
`

	activationTemplate = `Hello{{#name}} {{{name}}}{{/name}},

{{#organization}}{{{organization}}} has requested a credential for you.
{{/organization}}Open the following link with your wallet to receive it:

{{{link}}}
`
)

type templates struct {
	pin        *mustache.Template
	activation *mustache.Template
}

func parseTemplates() (*templates, error) {
	pin, err := mustache.ParseString(pinTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse pin template: %w", err)
	}

	activation, err := mustache.ParseString(activationTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse activation template: %w", err)
	}

	return &templates{pin: pin, activation: activation}, nil
}
