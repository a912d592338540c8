package extension

import (
	"net/http"

	"netbound/internal/domain"
	"netbound/internal/validation"
)

// NetworkAdmission is the built-in extension that vets network payloads for
// semantic validity. It gives a fresh deployment a registered approver, since
// every mutation requires at least one extension to exist and approve.
type NetworkAdmission struct{}

// CanCreate vets a create-bound network.
func (NetworkAdmission) CanCreate(n domain.Network) int {
	return networkStatus(n)
}

// CanUpdate vets the delta of an update. Immutable fields are enforced by the
// orchestrator before extensions run, so only the mutable fields are checked.
func (NetworkAdmission) CanUpdate(delta, original domain.Network) int {
	return networkStatus(delta)
}

// CanDelete never objects; the in-use precondition belongs to the repository.
func (NetworkAdmission) CanDelete(n domain.Network) int {
	return http.StatusOK
}

func (NetworkAdmission) Created(n domain.Network) {}
func (NetworkAdmission) Updated(n domain.Network) {}
func (NetworkAdmission) Deleted(n domain.Network) {}

func networkStatus(n domain.Network) int {
	if validation.Network(n).HasErrors() {
		return http.StatusBadRequest
	}
	return http.StatusOK
}

// QosPolicyAdmission is the built-in extension that vets QoS policy payloads.
type QosPolicyAdmission struct{}

// CanCreate vets a create-bound policy.
func (QosPolicyAdmission) CanCreate(p domain.QosPolicy) int {
	return policyStatus(p)
}

// CanUpdate vets the delta of an update.
func (QosPolicyAdmission) CanUpdate(delta, original domain.QosPolicy) int {
	return policyStatus(delta)
}

// CanDelete never objects.
func (QosPolicyAdmission) CanDelete(p domain.QosPolicy) int {
	return http.StatusOK
}

func (QosPolicyAdmission) Created(p domain.QosPolicy) {}
func (QosPolicyAdmission) Updated(p domain.QosPolicy) {}
func (QosPolicyAdmission) Deleted(p domain.QosPolicy) {}

func policyStatus(p domain.QosPolicy) int {
	if validation.Policy(p).HasErrors() {
		return http.StatusBadRequest
	}
	return http.StatusOK
}
