package domain

import "strconv"

// Network statuses reported by the backing fabric.
const (
	StatusActive = "ACTIVE"
	StatusBuild  = "BUILD"
	StatusDown   = "DOWN"
	StatusError  = "ERROR"
)

// Network is the external (northbound) representation of a virtual network.
// Optional attributes are pointer-typed: a nil field was absent from the
// payload, which is not the same thing as an explicit zero value. Deltas rely
// on this to carry only the fields a client actually wants to change.
type Network struct {
	ID                      string  `json:"id,omitempty"`
	TenantID                *string `json:"tenant_id,omitempty"`
	Name                    *string `json:"name,omitempty"`
	AdminStateUp            *bool   `json:"admin_state_up,omitempty"`
	Status                  *string `json:"status,omitempty"`
	Shared                  *bool   `json:"shared,omitempty"`
	RouterExternal          *bool   `json:"router_external,omitempty"`
	ProviderNetworkType     *string `json:"provider_network_type,omitempty"`
	ProviderPhysicalNetwork *string `json:"provider_physical_network,omitempty"`
	ProviderSegmentationID  *int    `json:"provider_segmentation_id,omitempty"`
	QosPolicyID             *string `json:"qos_policy_id,omitempty"`
}

// NetworkEnvelope is the request/response wrapper for network payloads. A
// request carries either a single network or a bulk list, never both.
type NetworkEnvelope struct {
	Network  *Network  `json:"network,omitempty"`
	Networks []Network `json:"networks,omitempty"`
}

// IsSingleton reports whether the envelope carries a single network.
func (e NetworkEnvelope) IsSingleton() bool {
	return e.Network != nil
}

// Identifier returns the network's unique id.
func (n Network) Identifier() string {
	return n.ID
}

// WithDefaults returns a copy with creation defaults applied to fields the
// client left absent.
func (n Network) WithDefaults() Network {
	if n.AdminStateUp == nil {
		n.AdminStateUp = ptr(true)
	}
	if n.Status == nil {
		n.Status = ptr(StatusActive)
	}
	if n.Shared == nil {
		n.Shared = ptr(false)
	}
	if n.RouterExternal == nil {
		n.RouterExternal = ptr(false)
	}
	return n
}

// MergeWith returns a copy of n with every field present on the delta applied
// over it. Fields absent from the delta are untouched.
func (n Network) MergeWith(delta Network) Network {
	if delta.Name != nil {
		n.Name = delta.Name
	}
	if delta.AdminStateUp != nil {
		n.AdminStateUp = delta.AdminStateUp
	}
	if delta.Shared != nil {
		n.Shared = delta.Shared
	}
	if delta.RouterExternal != nil {
		n.RouterExternal = delta.RouterExternal
	}
	if delta.ProviderNetworkType != nil {
		n.ProviderNetworkType = delta.ProviderNetworkType
	}
	if delta.ProviderPhysicalNetwork != nil {
		n.ProviderPhysicalNetwork = delta.ProviderPhysicalNetwork
	}
	if delta.ProviderSegmentationID != nil {
		n.ProviderSegmentationID = delta.ProviderSegmentationID
	}
	if delta.QosPolicyID != nil {
		n.QosPolicyID = delta.QosPolicyID
	}
	return n
}

// Matches reports whether the network satisfies every condition in the filter
// set. Absent parameters never constrain; boolean and integer parameters are
// parsed from their string form before comparison.
func (n Network) Matches(filters map[string]string) bool {
	for key, want := range filters {
		var ok bool
		switch key {
		case "id":
			ok = n.ID == want
		case "name":
			ok = matchString(want, n.Name)
		case "admin_state_up":
			ok = matchBool(want, n.AdminStateUp)
		case "status":
			ok = matchString(want, n.Status)
		case "shared":
			ok = matchBool(want, n.Shared)
		case "tenant_id":
			ok = matchString(want, n.TenantID)
		case "router_external":
			ok = matchBool(want, n.RouterExternal)
		case "provider_network_type":
			ok = matchString(want, n.ProviderNetworkType)
		case "provider_physical_network":
			ok = matchString(want, n.ProviderPhysicalNetwork)
		case "provider_segmentation_id":
			ok = matchInt(want, n.ProviderSegmentationID)
		default:
			// Unknown filter keys never match anything.
			ok = false
		}
		if !ok {
			return false
		}
	}
	return true
}

// Projected returns a copy reduced to the requested fields. The identifier is
// always retained. Projection never mutates the receiver.
func (n Network) Projected(fields []string) Network {
	if len(fields) == 0 {
		return n
	}
	out := Network{ID: n.ID}
	for _, f := range fields {
		switch f {
		case "tenant_id":
			out.TenantID = n.TenantID
		case "name":
			out.Name = n.Name
		case "admin_state_up":
			out.AdminStateUp = n.AdminStateUp
		case "status":
			out.Status = n.Status
		case "shared":
			out.Shared = n.Shared
		case "router_external":
			out.RouterExternal = n.RouterExternal
		case "provider_network_type":
			out.ProviderNetworkType = n.ProviderNetworkType
		case "provider_physical_network":
			out.ProviderPhysicalNetwork = n.ProviderPhysicalNetwork
		case "provider_segmentation_id":
			out.ProviderSegmentationID = n.ProviderSegmentationID
		case "qos_policy_id":
			out.QosPolicyID = n.QosPolicyID
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func matchString(want string, have *string) bool {
	return have != nil && *have == want
}

func matchBool(want string, have *bool) bool {
	if have == nil {
		return false
	}
	b, err := strconv.ParseBool(want)
	if err != nil {
		b = false
	}
	return *have == b
}

func matchInt(want string, have *int) bool {
	if have == nil {
		return false
	}
	v, err := strconv.Atoi(want)
	if err != nil {
		return false
	}
	return *have == v
}
