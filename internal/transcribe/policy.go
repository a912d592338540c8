package transcribe

import (
	"log"

	"netbound/internal/domain"
	"netbound/internal/record"
)

// PolicyToRecord maps an external QoS policy onto the persisted schema. Rule
// collections are transcribed element-wise; each rule must carry a
// well-formed identifier and owner of its own. An absent collection maps to
// an absent collection, not an empty one.
func PolicyToRecord(p domain.QosPolicy) (record.Policy, error) {
	var rec record.Policy
	if p.ID != "" {
		u, err := record.ParseUUID(p.ID)
		if err != nil {
			return record.Policy{}, err
		}
		rec.UUID = u
	} else {
		log.Printf("transcribe: writing qos policy without uuid")
	}
	if p.TenantID != nil {
		u, err := record.ParseUUID(*p.TenantID)
		if err != nil {
			return record.Policy{}, err
		}
		rec.TenantID = u
	}
	if p.Name != nil {
		rec.Name = copyOf(*p.Name)
	}
	if p.Shared != nil {
		rec.Shared = copyOf(*p.Shared)
	}
	if p.BandwidthLimitRules != nil {
		rules := make([]record.BandwidthLimitRule, 0, len(p.BandwidthLimitRules))
		for _, r := range p.BandwidthLimitRules {
			rule, err := bandwidthRuleToRecord(r)
			if err != nil {
				return record.Policy{}, err
			}
			rules = append(rules, rule)
		}
		rec.BandwidthLimitRules = rules
	}
	if p.DSCPMarkingRules != nil {
		rules := make([]record.DSCPMarkingRule, 0, len(p.DSCPMarkingRules))
		for _, r := range p.DSCPMarkingRules {
			rule, err := dscpRuleToRecord(r)
			if err != nil {
				return record.Policy{}, err
			}
			rules = append(rules, rule)
		}
		rec.DSCPMarkingRules = rules
	}
	return rec, nil
}

// PolicyFromRecord maps a persisted QoS policy back to the external model.
func PolicyFromRecord(rec record.Policy) domain.QosPolicy {
	var p domain.QosPolicy
	if !rec.UUID.IsZero() {
		p.ID = rec.UUID.String()
	}
	if !rec.TenantID.IsZero() {
		p.TenantID = copyOf(rec.TenantID.String())
	}
	if rec.Name != nil {
		p.Name = copyOf(*rec.Name)
	}
	if rec.Shared != nil {
		p.Shared = copyOf(*rec.Shared)
	}
	if rec.BandwidthLimitRules != nil {
		rules := make([]domain.BandwidthRule, 0, len(rec.BandwidthLimitRules))
		for _, r := range rec.BandwidthLimitRules {
			rules = append(rules, bandwidthRuleFromRecord(r))
		}
		p.BandwidthLimitRules = rules
	}
	if rec.DSCPMarkingRules != nil {
		rules := make([]domain.DSCPRule, 0, len(rec.DSCPMarkingRules))
		for _, r := range rec.DSCPMarkingRules {
			rules = append(rules, dscpRuleFromRecord(r))
		}
		p.DSCPMarkingRules = rules
	}
	return p
}

func bandwidthRuleToRecord(r domain.BandwidthRule) (record.BandwidthLimitRule, error) {
	var rec record.BandwidthLimitRule
	if r.ID != "" {
		u, err := record.ParseUUID(r.ID)
		if err != nil {
			return record.BandwidthLimitRule{}, err
		}
		rec.UUID = u
	}
	if r.TenantID != nil {
		u, err := record.ParseUUID(*r.TenantID)
		if err != nil {
			return record.BandwidthLimitRule{}, err
		}
		rec.TenantID = u
	}
	if r.MaxKbps != nil {
		rec.MaxKbps = copyOf(*r.MaxKbps)
	}
	if r.MaxBurstKbps != nil {
		rec.MaxBurstKbps = copyOf(*r.MaxBurstKbps)
	}
	return rec, nil
}

func bandwidthRuleFromRecord(rec record.BandwidthLimitRule) domain.BandwidthRule {
	var r domain.BandwidthRule
	if !rec.UUID.IsZero() {
		r.ID = rec.UUID.String()
	}
	if !rec.TenantID.IsZero() {
		r.TenantID = copyOf(rec.TenantID.String())
	}
	if rec.MaxKbps != nil {
		r.MaxKbps = copyOf(*rec.MaxKbps)
	}
	if rec.MaxBurstKbps != nil {
		r.MaxBurstKbps = copyOf(*rec.MaxBurstKbps)
	}
	return r
}

func dscpRuleToRecord(r domain.DSCPRule) (record.DSCPMarkingRule, error) {
	var rec record.DSCPMarkingRule
	if r.ID != "" {
		u, err := record.ParseUUID(r.ID)
		if err != nil {
			return record.DSCPMarkingRule{}, err
		}
		rec.UUID = u
	}
	if r.TenantID != nil {
		u, err := record.ParseUUID(*r.TenantID)
		if err != nil {
			return record.DSCPMarkingRule{}, err
		}
		rec.TenantID = u
	}
	if r.DSCPMark != nil {
		rec.DSCPMark = copyOf(*r.DSCPMark)
	}
	return rec, nil
}

func dscpRuleFromRecord(rec record.DSCPMarkingRule) domain.DSCPRule {
	var r domain.DSCPRule
	if !rec.UUID.IsZero() {
		r.ID = rec.UUID.String()
	}
	if !rec.TenantID.IsZero() {
		r.TenantID = copyOf(rec.TenantID.String())
	}
	if rec.DSCPMark != nil {
		r.DSCPMark = copyOf(*rec.DSCPMark)
	}
	return r
}
