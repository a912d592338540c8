package domain

// QosPolicy is the external representation of a quality-of-service policy.
// Rule collections are one-to-many sub-resources; each rule carries its own
// identifier and owner. A nil collection was absent from the payload, which
// is distinct from an empty one.
type QosPolicy struct {
	ID                  string          `json:"id,omitempty"`
	TenantID            *string         `json:"tenant_id,omitempty"`
	Name                *string         `json:"name,omitempty"`
	Shared              *bool           `json:"shared,omitempty"`
	BandwidthLimitRules []BandwidthRule `json:"bandwidth_limit_rules,omitempty"`
	DSCPMarkingRules    []DSCPRule      `json:"dscp_marking_rules,omitempty"`
}

// BandwidthRule caps egress bandwidth for traffic under a policy.
type BandwidthRule struct {
	ID           string  `json:"id,omitempty"`
	TenantID     *string `json:"tenant_id,omitempty"`
	MaxKbps      *int64  `json:"max_kbps,omitempty"`
	MaxBurstKbps *int64  `json:"max_burst_kbps,omitempty"`
}

// DSCPRule rewrites the DSCP mark on traffic under a policy.
type DSCPRule struct {
	ID       string  `json:"id,omitempty"`
	TenantID *string `json:"tenant_id,omitempty"`
	DSCPMark *int    `json:"dscp_mark,omitempty"`
}

// QosPolicyEnvelope is the request/response wrapper for policy payloads. A
// request carries either a single policy or a bulk list, never both.
type QosPolicyEnvelope struct {
	Policy   *QosPolicy  `json:"policy,omitempty"`
	Policies []QosPolicy `json:"policies,omitempty"`
}

// IsSingleton reports whether the envelope carries a single policy.
func (e QosPolicyEnvelope) IsSingleton() bool {
	return e.Policy != nil
}

// Identifier returns the policy's unique id.
func (p QosPolicy) Identifier() string {
	return p.ID
}

// WithDefaults returns a copy with creation defaults applied to fields the
// client left absent.
func (p QosPolicy) WithDefaults() QosPolicy {
	if p.Shared == nil {
		p.Shared = ptr(false)
	}
	return p
}

// MergeWith returns a copy of p with every field present on the delta applied
// over it. A rule collection present on the delta replaces the stored one
// wholesale; rules are not merged element-wise.
func (p QosPolicy) MergeWith(delta QosPolicy) QosPolicy {
	if delta.Name != nil {
		p.Name = delta.Name
	}
	if delta.Shared != nil {
		p.Shared = delta.Shared
	}
	if delta.BandwidthLimitRules != nil {
		p.BandwidthLimitRules = delta.BandwidthLimitRules
	}
	if delta.DSCPMarkingRules != nil {
		p.DSCPMarkingRules = delta.DSCPMarkingRules
	}
	return p
}

// Matches reports whether the policy satisfies every condition in the filter
// set.
func (p QosPolicy) Matches(filters map[string]string) bool {
	for key, want := range filters {
		var ok bool
		switch key {
		case "id":
			ok = p.ID == want
		case "name":
			ok = matchString(want, p.Name)
		case "tenant_id":
			ok = matchString(want, p.TenantID)
		case "shared":
			ok = matchBool(want, p.Shared)
		default:
			ok = false
		}
		if !ok {
			return false
		}
	}
	return true
}

// Projected returns a copy reduced to the requested fields. The identifier is
// always retained.
func (p QosPolicy) Projected(fields []string) QosPolicy {
	if len(fields) == 0 {
		return p
	}
	out := QosPolicy{ID: p.ID}
	for _, f := range fields {
		switch f {
		case "tenant_id":
			out.TenantID = p.TenantID
		case "name":
			out.Name = p.Name
		case "shared":
			out.Shared = p.Shared
		case "bandwidth_limit_rules":
			out.BandwidthLimitRules = p.BandwidthLimitRules
		case "dscp_marking_rules":
			out.DSCPMarkingRules = p.DSCPMarkingRules
		}
	}
	return out
}
