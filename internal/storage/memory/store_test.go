package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbound/internal/domain"
)

const (
	netID    = "11111111-1111-1111-1111-111111111111"
	policyID = "22222222-2222-2222-2222-222222222222"
)

func ptr[T any](v T) *T { return &v }

func TestNetworkInsertAndGet(t *testing.T) {
	store := New()
	repo := store.Networks()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.Network{ID: netID, Name: ptr("blue")}))

	got, err := repo.Get(ctx, netID)
	require.NoError(t, err)
	assert.Equal(t, netID, got.ID)
	assert.Equal(t, "blue", *got.Name)

	exists, err := repo.Exists(ctx, netID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNetworkInsertConflict(t *testing.T) {
	store := New()
	repo := store.Networks()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.Network{ID: netID}))
	err := repo.Insert(ctx, domain.Network{ID: netID})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestNetworkGetNotFound(t *testing.T) {
	store := New()
	repo := store.Networks()

	_, err := repo.Get(context.Background(), netID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNetworkInUseTracksAttachments(t *testing.T) {
	store := New()
	repo := store.Networks()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.Network{ID: netID}))

	inUse, err := repo.InUse(ctx, netID)
	require.NoError(t, err)
	assert.False(t, inUse)

	store.Attach(netID)
	inUse, err = repo.InUse(ctx, netID)
	require.NoError(t, err)
	assert.True(t, inUse)

	store.Detach(netID)
	inUse, err = repo.InUse(ctx, netID)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestNetworkUpdateAndRemove(t *testing.T) {
	store := New()
	repo := store.Networks()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.Network{ID: netID, Name: ptr("old")}))
	require.NoError(t, repo.Update(ctx, netID, domain.Network{ID: netID, Name: ptr("new")}))

	got, err := repo.Get(ctx, netID)
	require.NoError(t, err)
	assert.Equal(t, "new", *got.Name)

	require.NoError(t, repo.Remove(ctx, netID))
	require.ErrorIs(t, repo.Remove(ctx, netID), domain.ErrNotFound)
}

func TestNetworkGetAllSortedByID(t *testing.T) {
	store := New()
	repo := store.Networks()
	ctx := context.Background()

	ids := []string{
		"33333333-3333-3333-3333-333333333333",
		"11111111-1111-1111-1111-111111111111",
		"22222222-2222-2222-2222-222222222222",
	}
	for _, id := range ids {
		require.NoError(t, repo.Insert(ctx, domain.Network{ID: id}))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].ID < all[1].ID && all[1].ID < all[2].ID)
}

func TestPolicyInUseByNetworkReference(t *testing.T) {
	store := New()
	networks := store.Networks()
	policies := store.Policies()
	ctx := context.Background()

	require.NoError(t, policies.Insert(ctx, domain.QosPolicy{ID: policyID}))
	require.NoError(t, networks.Insert(ctx, domain.Network{ID: netID, QosPolicyID: ptr(policyID)}))

	inUse, err := policies.InUse(ctx, policyID)
	require.NoError(t, err)
	assert.True(t, inUse)

	require.NoError(t, networks.Remove(ctx, netID))
	inUse, err = policies.InUse(ctx, policyID)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestPolicyRulesSurviveStorage(t *testing.T) {
	store := New()
	repo := store.Policies()
	ctx := context.Background()

	in := domain.QosPolicy{
		ID: policyID,
		BandwidthLimitRules: []domain.BandwidthRule{
			{ID: "33333333-3333-3333-3333-333333333333", MaxKbps: ptr(int64(1000))},
		},
	}
	require.NoError(t, repo.Insert(ctx, in))

	got, err := repo.Get(ctx, policyID)
	require.NoError(t, err)
	require.Len(t, got.BandwidthLimitRules, 1)
	assert.Equal(t, int64(1000), *got.BandwidthLimitRules[0].MaxKbps)
}

func TestInsertRejectsMalformedID(t *testing.T) {
	store := New()
	repo := store.Networks()

	err := repo.Insert(context.Background(), domain.Network{ID: "not-a-uuid"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
