package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciganahub/cigana-hub/internal/market"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	items, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)

	saved := []market.CartItem{{ID: "i1", Name: "Malte", SellerID: "s1", Quantity: 2}}
	require.NoError(t, s.Save(ctx, "u1", saved))

	items, err = s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, saved, items)

	require.NoError(t, s.Clear(ctx, "u1"))
	items, err = s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStoreCopiesOnLoad(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "u1", []market.CartItem{{ID: "i1", Quantity: 1}}))

	items, _ := s.Load(ctx, "u1")
	items[0].Quantity = 99

	again, _ := s.Load(ctx, "u1")
	assert.Equal(t, 1, again[0].Quantity)
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "u1", []market.CartItem{{ID: "i1"}}))

	items, err := s.Load(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, items)
}
