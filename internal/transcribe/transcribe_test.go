package transcribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbound/internal/domain"
)

const (
	netID    = "11111111-1111-1111-1111-111111111111"
	tenantID = "22222222-2222-2222-2222-222222222222"
	ruleID   = "33333333-3333-3333-3333-333333333333"
)

func TestNetworkRoundTrip(t *testing.T) {
	in := domain.Network{
		ID:                     netID,
		TenantID:               copyOf(tenantID),
		Name:                   copyOf("blue"),
		AdminStateUp:           copyOf(true),
		Status:                 copyOf(domain.StatusActive),
		ProviderNetworkType:    copyOf("vlan"),
		ProviderSegmentationID: copyOf(42),
	}

	rec, err := NetworkToRecord(in)
	require.NoError(t, err)
	out := NetworkFromRecord(rec)

	assert.Equal(t, in, out)
}

func TestNetworkPartialSurvivesTrip(t *testing.T) {
	in := domain.Network{ID: netID, Name: copyOf("blue")}

	rec, err := NetworkToRecord(in)
	require.NoError(t, err)
	out := NetworkFromRecord(rec)

	assert.Equal(t, netID, out.ID)
	assert.Equal(t, "blue", *out.Name)
	assert.Nil(t, out.AdminStateUp)
	assert.Nil(t, out.Status)
	assert.Nil(t, out.TenantID)
}

func TestNetworkMalformedID(t *testing.T) {
	_, err := NetworkToRecord(domain.Network{ID: "not-a-uuid"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NetworkToRecord(domain.Network{ID: netID, TenantID: copyOf("nope")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NetworkToRecord(domain.Network{ID: netID, QosPolicyID: copyOf("nope")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNetworkRecordDoesNotAlias(t *testing.T) {
	name := "blue"
	in := domain.Network{ID: netID, Name: &name}

	rec, err := NetworkToRecord(in)
	require.NoError(t, err)

	name = "mutated"
	assert.Equal(t, "blue", *rec.Name)
}

func TestPolicyRoundTrip(t *testing.T) {
	in := domain.QosPolicy{
		ID:       netID,
		TenantID: copyOf(tenantID),
		Name:     copyOf("gold"),
		Shared:   copyOf(true),
		BandwidthLimitRules: []domain.BandwidthRule{
			{ID: ruleID, TenantID: copyOf(tenantID), MaxKbps: copyOf(int64(1000)), MaxBurstKbps: copyOf(int64(1200))},
		},
		DSCPMarkingRules: []domain.DSCPRule{
			{ID: ruleID, DSCPMark: copyOf(26)},
		},
	}

	rec, err := PolicyToRecord(in)
	require.NoError(t, err)
	out := PolicyFromRecord(rec)

	assert.Equal(t, in, out)
}

func TestPolicyAbsentRulesStayAbsent(t *testing.T) {
	rec, err := PolicyToRecord(domain.QosPolicy{ID: netID})
	require.NoError(t, err)
	assert.Nil(t, rec.BandwidthLimitRules)
	assert.Nil(t, rec.DSCPMarkingRules)

	out := PolicyFromRecord(rec)
	assert.Nil(t, out.BandwidthLimitRules)
	assert.Nil(t, out.DSCPMarkingRules)
}

func TestPolicyMalformedRuleID(t *testing.T) {
	_, err := PolicyToRecord(domain.QosPolicy{
		ID:                  netID,
		BandwidthLimitRules: []domain.BandwidthRule{{ID: "broken"}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
