package lifecycle

import "netbound/internal/domain"

// NetworkSpec wires the network resource into the generic orchestrator. The
// immutable set — identifier, owner, status — is declared here rather than
// inside the orchestrator so other resource types can declare their own.
func NetworkSpec() Spec[domain.Network] {
	return Spec[domain.Network]{
		Name:     "network",
		ID:       domain.Network.Identifier,
		Match:    domain.Network.Matches,
		Project:  domain.Network.Projected,
		Defaults: domain.Network.WithDefaults,
		Merge:    domain.Network.MergeWith,
		Immutable: func(delta domain.Network) []string {
			var fields []string
			if delta.ID != "" {
				fields = append(fields, "id")
			}
			if delta.TenantID != nil {
				fields = append(fields, "tenant_id")
			}
			if delta.Status != nil {
				fields = append(fields, "status")
			}
			return fields
		},
	}
}

// QosPolicySpec wires the QoS policy resource into the generic orchestrator.
// Policies carry no status field, so only identifier and owner are immutable.
func QosPolicySpec() Spec[domain.QosPolicy] {
	return Spec[domain.QosPolicy]{
		Name:     "qos policy",
		ID:       domain.QosPolicy.Identifier,
		Match:    domain.QosPolicy.Matches,
		Project:  domain.QosPolicy.Projected,
		Defaults: domain.QosPolicy.WithDefaults,
		Merge:    domain.QosPolicy.MergeWith,
		Immutable: func(delta domain.QosPolicy) []string {
			var fields []string
			if delta.ID != "" {
				fields = append(fields, "id")
			}
			if delta.TenantID != nil {
				fields = append(fields, "tenant_id")
			}
			return fields
		},
	}
}
