// Package validation provides semantic validators for network resource
// attributes. The accepted value sets follow the conventions of the upstream
// networking API (provider network types, DSCP marks, VLAN/VNI ranges).
package validation

import (
	"fmt"

	"github.com/google/uuid"

	"netbound/internal/domain"
)

const maxNameLength = 255

// networkTypes are the provider network types a network may declare.
var networkTypes = map[string]bool{
	"flat":   true,
	"local":  true,
	"vlan":   true,
	"vxlan":  true,
	"gre":    true,
	"geneve": true,
}

// statuses are the operational states the fabric reports.
var statuses = map[string]bool{
	domain.StatusActive: true,
	domain.StatusBuild:  true,
	domain.StatusDown:   true,
	domain.StatusError:  true,
}

// dscpMarks are the DSCP codepoints a marking rule may set: CS0-CS7, the AF
// classes, and EF.
var dscpMarks = map[int]bool{
	0: true, 8: true, 10: true, 12: true, 14: true, 16: true,
	18: true, 20: true, 22: true, 24: true, 26: true, 28: true,
	30: true, 32: true, 34: true, 36: true, 38: true, 40: true,
	46: true, 48: true, 56: true,
}

// ValidateUUID checks that the value is a well-formed UUID.
func ValidateUUID(value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

// ValidateName checks resource name length. Empty names are allowed; the
// upstream API treats the name as purely informational.
func ValidateName(name string) error {
	if len(name) > maxNameLength {
		return fmt.Errorf("must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidateStatus checks that the value is a known operational status.
func ValidateStatus(status string) error {
	if !statuses[status] {
		return fmt.Errorf("must be one of ACTIVE, BUILD, DOWN, ERROR")
	}
	return nil
}

// ValidateNetworkType checks that the value is a known provider network type.
func ValidateNetworkType(networkType string) error {
	if !networkTypes[networkType] {
		return fmt.Errorf("unknown provider network type %q", networkType)
	}
	return nil
}

// ValidateSegmentationID checks the segmentation id against the range the
// network type supports: 1-4094 for VLAN, a 24-bit VNI for the tunnel types.
func ValidateSegmentationID(networkType string, id int) error {
	switch networkType {
	case "vlan":
		if id < 1 || id > 4094 {
			return fmt.Errorf("VLAN id must be between 1 and 4094")
		}
	case "vxlan", "gre", "geneve":
		if id < 1 || id > (1<<24)-1 {
			return fmt.Errorf("tunnel id must be between 1 and 16777215")
		}
	default:
		return fmt.Errorf("network type %q does not take a segmentation id", networkType)
	}
	return nil
}

// ValidateDSCPMark checks that the mark is a valid DSCP codepoint.
func ValidateDSCPMark(mark int) error {
	if !dscpMarks[mark] {
		return fmt.Errorf("%d is not a valid DSCP mark", mark)
	}
	return nil
}

// ValidateKbps checks a bandwidth figure.
func ValidateKbps(kbps int64) error {
	if kbps < 0 {
		return fmt.Errorf("bandwidth must not be negative")
	}
	return nil
}
