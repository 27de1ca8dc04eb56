/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcpolicy

import (
	"github.com/vcissuer/issuer/pkg/credential"
)

const (
	functionOnboarding      = "Onboarding"
	functionProductOffering = "ProductOffering"
	functionCertification   = "Certification"

	actionExecute = "Execute"
	actionAttest  = "Attest"
)

// Requirements reported in PermissionError.
const (
	RequirementCallerType          = "caller credential type"
	RequirementOnboardingExecute   = "power Onboarding/Execute"
	RequirementSignerOrMandator    = "allowed signer organization or matching mandator with ProductOffering powers"
	RequirementCertificationAttest = "power Certification/Attest"
	RequirementIDTokenAttest       = "id token with power Certification/Attest"
)

// acceptedCallerTypes lists the caller credential types allowed to request a schema.
func acceptedCallerTypes(requested credential.Type) []credential.Type {
	if requested == credential.VerifiableCertification {
		return []credential.Type{credential.LEARCredentialMachine}
	}

	return []credential.Type{credential.LEARCredentialEmployee, credential.LEARCredentialMachine}
}

// signerPolicy lets the platform signer onboard anyone. An unset signer
// identifier matches nobody.
func signerPolicy(caller *credential.Mandate, allowedSigner string) bool {
	return allowedSigner != "" &&
		caller.Mandator.OrganizationIdentifier == allowedSigner &&
		caller.HasPower(functionOnboarding, actionExecute)
}

// mandatorPolicy lets an onboarding employee issue ProductOffering mandates
// of its own organization only. The caller must name its organization.
func mandatorPolicy(caller, requested *credential.Mandate) bool {
	return caller.Mandator.OrganizationIdentifier != "" &&
		caller.HasPower(functionOnboarding, actionExecute) &&
		requested.Mandator == caller.Mandator &&
		requested.AllPowersIn(functionProductOffering)
}

func certificationPolicy(m *credential.Mandate) bool {
	return m.HasPower(functionCertification, actionAttest)
}
