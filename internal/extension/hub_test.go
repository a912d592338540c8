package extension

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbound/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestHubRegisterAndLookup(t *testing.T) {
	hub := NewHub[domain.Network]()

	exts, err := hub.Lookup(context.Background())
	require.NoError(t, err)
	assert.Empty(t, exts)

	hub.Register(NetworkAdmission{})
	exts, err = hub.Lookup(context.Background())
	require.NoError(t, err)
	assert.Len(t, exts, 1)
}

func TestHubDeregister(t *testing.T) {
	hub := NewHub[domain.Network]()
	hub.Register(NetworkAdmission{})
	hub.Deregister(NetworkAdmission{})

	exts, err := hub.Lookup(context.Background())
	require.NoError(t, err)
	assert.Empty(t, exts)
}

func TestHubLookupReturnsSnapshot(t *testing.T) {
	hub := NewHub[domain.Network]()
	hub.Register(NetworkAdmission{})

	exts, _ := hub.Lookup(context.Background())
	hub.Deregister(NetworkAdmission{})
	assert.Len(t, exts, 1)
}

func TestNetworkAdmission(t *testing.T) {
	ext := NetworkAdmission{}

	cases := []struct {
		name string
		n    domain.Network
		want int
	}{
		{"empty network", domain.Network{}, http.StatusOK},
		{"valid vlan", domain.Network{ProviderNetworkType: ptr("vlan"), ProviderSegmentationID: ptr(100)}, http.StatusOK},
		{"vlan id out of range", domain.Network{ProviderNetworkType: ptr("vlan"), ProviderSegmentationID: ptr(5000)}, http.StatusBadRequest},
		{"vxlan vni in range", domain.Network{ProviderNetworkType: ptr("vxlan"), ProviderSegmentationID: ptr(5000)}, http.StatusOK},
		{"unknown network type", domain.Network{ProviderNetworkType: ptr("token-ring")}, http.StatusBadRequest},
		{"segmentation id without type", domain.Network{ProviderSegmentationID: ptr(100)}, http.StatusBadRequest},
		{"flat with segmentation id", domain.Network{ProviderNetworkType: ptr("flat"), ProviderSegmentationID: ptr(1)}, http.StatusBadRequest},
		{"bad status", domain.Network{Status: ptr("HALTED")}, http.StatusBadRequest},
		{"bad tenant id", domain.Network{TenantID: ptr("not-a-uuid")}, http.StatusBadRequest},
		{"bad qos policy id", domain.Network{QosPolicyID: ptr("not-a-uuid")}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ext.CanCreate(tc.n))
		})
	}

	assert.Equal(t, http.StatusOK, ext.CanDelete(domain.Network{Status: ptr("HALTED")}))
}

func TestQosPolicyAdmission(t *testing.T) {
	ext := QosPolicyAdmission{}

	ok := domain.QosPolicy{
		BandwidthLimitRules: []domain.BandwidthRule{{MaxKbps: ptr(int64(1000))}},
		DSCPMarkingRules:    []domain.DSCPRule{{DSCPMark: ptr(26)}},
	}
	assert.Equal(t, http.StatusOK, ext.CanCreate(ok))

	negative := domain.QosPolicy{
		BandwidthLimitRules: []domain.BandwidthRule{{MaxKbps: ptr(int64(-1))}},
	}
	assert.Equal(t, http.StatusBadRequest, ext.CanCreate(negative))

	badMark := domain.QosPolicy{
		DSCPMarkingRules: []domain.DSCPRule{{DSCPMark: ptr(27)}},
	}
	assert.Equal(t, http.StatusBadRequest, ext.CanCreate(badMark))
}
