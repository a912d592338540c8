package validation

import (
	"strings"
	"testing"

	"netbound/internal/domain"
)

func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID("11111111-1111-1111-1111-111111111111"); err != nil {
		t.Errorf("valid uuid rejected: %v", err)
	}
	if err := ValidateUUID("not-a-uuid"); err == nil {
		t.Error("malformed uuid accepted")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName(""); err != nil {
		t.Errorf("empty name rejected: %v", err)
	}
	if err := ValidateName(strings.Repeat("x", 255)); err != nil {
		t.Errorf("255-char name rejected: %v", err)
	}
	if err := ValidateName(strings.Repeat("x", 256)); err == nil {
		t.Error("256-char name accepted")
	}
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []string{"ACTIVE", "BUILD", "DOWN", "ERROR"} {
		if err := ValidateStatus(s); err != nil {
			t.Errorf("status %s rejected: %v", s, err)
		}
	}
	if err := ValidateStatus("active"); err == nil {
		t.Error("lowercase status accepted")
	}
}

func TestValidateNetworkType(t *testing.T) {
	for _, nt := range []string{"flat", "local", "vlan", "vxlan", "gre", "geneve"} {
		if err := ValidateNetworkType(nt); err != nil {
			t.Errorf("network type %s rejected: %v", nt, err)
		}
	}
	if err := ValidateNetworkType("token-ring"); err == nil {
		t.Error("unknown network type accepted")
	}
}

func TestValidateSegmentationID(t *testing.T) {
	cases := []struct {
		networkType string
		id          int
		wantErr     bool
	}{
		{"vlan", 1, false},
		{"vlan", 4094, false},
		{"vlan", 0, true},
		{"vlan", 4095, true},
		{"vxlan", 16777215, false},
		{"vxlan", 16777216, true},
		{"gre", 1, false},
		{"geneve", 0, true},
		{"flat", 1, true},
		{"local", 1, true},
	}
	for _, tc := range cases {
		err := ValidateSegmentationID(tc.networkType, tc.id)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateSegmentationID(%s, %d) error = %v, wantErr %v", tc.networkType, tc.id, err, tc.wantErr)
		}
	}
}

func TestValidateDSCPMark(t *testing.T) {
	for _, mark := range []int{0, 8, 26, 46, 56} {
		if err := ValidateDSCPMark(mark); err != nil {
			t.Errorf("mark %d rejected: %v", mark, err)
		}
	}
	for _, mark := range []int{-1, 1, 27, 57, 63} {
		if err := ValidateDSCPMark(mark); err == nil {
			t.Errorf("mark %d accepted", mark)
		}
	}
}

func ptr[T any](v T) *T { return &v }

func TestNetworkCollectsEveryFailure(t *testing.T) {
	errs := Network(domain.Network{
		TenantID: ptr("not-a-uuid"),
		Status:   ptr("HALTED"),
	})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "tenant_id" || errs[1].Field != "status" {
		t.Errorf("unexpected fields: %v, %v", errs[0].Field, errs[1].Field)
	}

	if Network(domain.Network{}).HasErrors() {
		t.Error("empty payload must be valid")
	}

	msg := errs.Error()
	if !strings.Contains(msg, `tenant_id "not-a-uuid"`) || !strings.Contains(msg, "; ") {
		t.Errorf("expected one joined clause per attribute, got %q", msg)
	}
}

func TestNetworkSegmentationRequiresType(t *testing.T) {
	errs := Network(domain.Network{ProviderSegmentationID: ptr(100)})
	if !errs.HasErrors() {
		t.Error("segmentation id without network type must be invalid")
	}

	errs = Network(domain.Network{ProviderNetworkType: ptr("vlan"), ProviderSegmentationID: ptr(100)})
	if errs.HasErrors() {
		t.Errorf("valid vlan segment rejected: %v", errs)
	}
}

func TestPolicyChecksRules(t *testing.T) {
	errs := Policy(domain.QosPolicy{
		BandwidthLimitRules: []domain.BandwidthRule{{MaxKbps: ptr(int64(-5))}},
		DSCPMarkingRules:    []domain.DSCPRule{{DSCPMark: ptr(27)}},
	})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateKbps(t *testing.T) {
	if err := ValidateKbps(0); err != nil {
		t.Errorf("zero kbps rejected: %v", err)
	}
	if err := ValidateKbps(-1); err == nil {
		t.Error("negative kbps accepted")
	}
}
