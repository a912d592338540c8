// Package transcribe converts between the external resource models and the
// internal persisted schema. Both directions copy only fields that are
// present: an absent external field leaves the record field unset, and an
// unset record field is skipped on the way back out, so partial objects
// survive the trip without corruption.
package transcribe

import (
	"log"

	"netbound/internal/domain"
	"netbound/internal/record"
)

// NetworkToRecord maps an external network onto the persisted schema. A
// missing identifier on a create-bound network is logged but tolerated;
// a malformed identifier is a mapping failure.
func NetworkToRecord(n domain.Network) (record.Network, error) {
	var rec record.Network
	if n.ID != "" {
		u, err := record.ParseUUID(n.ID)
		if err != nil {
			return record.Network{}, err
		}
		rec.UUID = u
	} else {
		log.Printf("transcribe: writing network without uuid")
	}
	if n.TenantID != nil {
		u, err := record.ParseUUID(*n.TenantID)
		if err != nil {
			return record.Network{}, err
		}
		rec.TenantID = u
	}
	if n.Name != nil {
		rec.Name = copyOf(*n.Name)
	}
	if n.AdminStateUp != nil {
		rec.AdminStateUp = copyOf(*n.AdminStateUp)
	}
	if n.Status != nil {
		rec.Status = copyOf(*n.Status)
	}
	if n.Shared != nil {
		rec.Shared = copyOf(*n.Shared)
	}
	if n.RouterExternal != nil {
		rec.External = copyOf(*n.RouterExternal)
	}
	if n.ProviderNetworkType != nil {
		rec.NetworkType = copyOf(*n.ProviderNetworkType)
	}
	if n.ProviderPhysicalNetwork != nil {
		rec.PhysicalNetwork = copyOf(*n.ProviderPhysicalNetwork)
	}
	if n.ProviderSegmentationID != nil {
		rec.SegmentationID = copyOf(*n.ProviderSegmentationID)
	}
	if n.QosPolicyID != nil {
		u, err := record.ParseUUID(*n.QosPolicyID)
		if err != nil {
			return record.Network{}, err
		}
		rec.QosPolicy = u
	}
	return rec, nil
}

// NetworkFromRecord maps a persisted network back to the external model.
// Unset record fields are skipped, not defaulted to sentinels.
func NetworkFromRecord(rec record.Network) domain.Network {
	var n domain.Network
	if !rec.UUID.IsZero() {
		n.ID = rec.UUID.String()
	}
	if !rec.TenantID.IsZero() {
		n.TenantID = copyOf(rec.TenantID.String())
	}
	if rec.Name != nil {
		n.Name = copyOf(*rec.Name)
	}
	if rec.AdminStateUp != nil {
		n.AdminStateUp = copyOf(*rec.AdminStateUp)
	}
	if rec.Status != nil {
		n.Status = copyOf(*rec.Status)
	}
	if rec.Shared != nil {
		n.Shared = copyOf(*rec.Shared)
	}
	if rec.External != nil {
		n.RouterExternal = copyOf(*rec.External)
	}
	if rec.NetworkType != nil {
		n.ProviderNetworkType = copyOf(*rec.NetworkType)
	}
	if rec.PhysicalNetwork != nil {
		n.ProviderPhysicalNetwork = copyOf(*rec.PhysicalNetwork)
	}
	if rec.SegmentationID != nil {
		n.ProviderSegmentationID = copyOf(*rec.SegmentationID)
	}
	if !rec.QosPolicy.IsZero() {
		n.QosPolicyID = copyOf(rec.QosPolicy.String())
	}
	return n
}

// copyOf returns a pointer to a fresh copy so records and external models
// never alias each other's fields.
func copyOf[T any](v T) *T {
	return &v
}
