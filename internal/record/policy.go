package record

// Policy is the persisted form of a QoS policy. A nil rule slice means the
// collection was never set, which is distinct from an empty one.
type Policy struct {
	UUID                UUID
	TenantID            UUID
	Name                *string
	Shared              *bool
	BandwidthLimitRules []BandwidthLimitRule
	DSCPMarkingRules    []DSCPMarkingRule
}

// BandwidthLimitRule is the persisted form of a bandwidth limit rule.
type BandwidthLimitRule struct {
	UUID         UUID
	TenantID     UUID
	MaxKbps      *int64
	MaxBurstKbps *int64
}

// DSCPMarkingRule is the persisted form of a DSCP marking rule.
type DSCPMarkingRule struct {
	UUID     UUID
	TenantID UUID
	DSCPMark *int
}
