package validation

import (
	"strconv"

	"netbound/internal/domain"
)

// Network collects every validation failure on a network payload. Only fields
// present on the payload are checked; a delta carrying nothing is valid.
func Network(n domain.Network) ValidationErrors {
	var errs ValidationErrors
	if n.TenantID != nil {
		if err := ValidateUUID(*n.TenantID); err != nil {
			errs.Add("tenant_id", *n.TenantID, err.Error())
		}
	}
	if n.Name != nil {
		if err := ValidateName(*n.Name); err != nil {
			errs.Add("name", *n.Name, err.Error())
		}
	}
	if n.Status != nil {
		if err := ValidateStatus(*n.Status); err != nil {
			errs.Add("status", *n.Status, err.Error())
		}
	}
	if n.ProviderNetworkType != nil {
		if err := ValidateNetworkType(*n.ProviderNetworkType); err != nil {
			errs.Add("provider_network_type", *n.ProviderNetworkType, err.Error())
		} else if n.ProviderSegmentationID != nil {
			if err := ValidateSegmentationID(*n.ProviderNetworkType, *n.ProviderSegmentationID); err != nil {
				errs.Add("provider_segmentation_id", strconv.Itoa(*n.ProviderSegmentationID), err.Error())
			}
		}
	} else if n.ProviderSegmentationID != nil {
		// A segmentation id without a network type is meaningless.
		errs.Add("provider_segmentation_id", strconv.Itoa(*n.ProviderSegmentationID), "requires provider_network_type")
	}
	if n.QosPolicyID != nil {
		if err := ValidateUUID(*n.QosPolicyID); err != nil {
			errs.Add("qos_policy_id", *n.QosPolicyID, err.Error())
		}
	}
	return errs
}

// Policy collects every validation failure on a QoS policy payload.
func Policy(p domain.QosPolicy) ValidationErrors {
	var errs ValidationErrors
	if p.TenantID != nil {
		if err := ValidateUUID(*p.TenantID); err != nil {
			errs.Add("tenant_id", *p.TenantID, err.Error())
		}
	}
	if p.Name != nil {
		if err := ValidateName(*p.Name); err != nil {
			errs.Add("name", *p.Name, err.Error())
		}
	}
	for _, rule := range p.BandwidthLimitRules {
		if rule.MaxKbps != nil {
			if err := ValidateKbps(*rule.MaxKbps); err != nil {
				errs.Add("max_kbps", strconv.FormatInt(*rule.MaxKbps, 10), err.Error())
			}
		}
		if rule.MaxBurstKbps != nil {
			if err := ValidateKbps(*rule.MaxBurstKbps); err != nil {
				errs.Add("max_burst_kbps", strconv.FormatInt(*rule.MaxBurstKbps, 10), err.Error())
			}
		}
		if rule.TenantID != nil {
			if err := ValidateUUID(*rule.TenantID); err != nil {
				errs.Add("tenant_id", *rule.TenantID, err.Error())
			}
		}
	}
	for _, rule := range p.DSCPMarkingRules {
		if rule.DSCPMark != nil {
			if err := ValidateDSCPMark(*rule.DSCPMark); err != nil {
				errs.Add("dscp_mark", strconv.Itoa(*rule.DSCPMark), err.Error())
			}
		}
		if rule.TenantID != nil {
			if err := ValidateUUID(*rule.TenantID); err != nil {
				errs.Add("tenant_id", *rule.TenantID, err.Error())
			}
		}
	}
	return errs
}
