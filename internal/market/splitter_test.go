package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(seller string, priceCents int64, qty int) CartItem {
	return CartItem{
		ID:         seller + "-item",
		Name:       "Pilsen Malt",
		PriceCents: priceCents,
		Quantity:   qty,
		Unit:       "kg",
		SellerID:   seller,
		Kind:       KindProduct,
	}
}

func TestSplitCartSingleSeller(t *testing.T) {
	orders, err := SplitCart("buyer-1", []CartItem{
		item("s1", 1000, 2),
		item("s1", 2000, 1),
	}, "", "")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "buyer-1", o.BuyerID)
	assert.Equal(t, "s1", o.SellerID)
	assert.Equal(t, 3, o.Quantity)
	assert.Equal(t, int64(4000), o.TotalCents)
	assert.Equal(t, StatusPending, o.Status)
	assert.NotEmpty(t, o.ID)
}

func TestSplitCartMultiSeller(t *testing.T) {
	orders, err := SplitCart("buyer-1", []CartItem{
		item("s1", 1000, 2),
		item("s2", 500, 4),
		item("s1", 2000, 1),
	}, "Rua Augusta 1000", "entregar à tarde")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	bySeller := map[string]Order{}
	var grand int64
	for _, o := range orders {
		bySeller[o.SellerID] = o
		grand += o.TotalCents
	}

	s1 := bySeller["s1"]
	assert.Equal(t, 3, s1.Quantity)
	assert.Equal(t, int64(1500), s1.UnitPriceCents)
	assert.Equal(t, int64(4000), s1.TotalCents)

	s2 := bySeller["s2"]
	assert.Equal(t, 4, s2.Quantity)
	assert.Equal(t, int64(500), s2.UnitPriceCents)
	assert.Equal(t, int64(2000), s2.TotalCents)

	// sum of per-seller totals equals the cart's grand total
	assert.Equal(t, int64(6000), grand)

	for _, o := range orders {
		assert.Equal(t, "Rua Augusta 1000", o.DeliveryAddress)
		assert.Equal(t, "entregar à tarde", o.Notes)
	}
}

// The group unit price is the plain mean of the item prices, not
// weighted by quantity: prices [10, 30] at quantities [1, 5] give 20.
func TestSplitCartUnitPriceIsUnweightedMean(t *testing.T) {
	orders, err := SplitCart("buyer-1", []CartItem{
		item("s1", 1000, 1),
		item("s1", 3000, 5),
	}, "", "")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, int64(2000), orders[0].UnitPriceCents)
	assert.Equal(t, int64(16000), orders[0].TotalCents)
}

func TestSplitCartRoundsMeanToWholeCent(t *testing.T) {
	orders, err := SplitCart("buyer-1", []CartItem{
		item("s1", 10, 1),
		item("s1", 15, 1),
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(13), orders[0].UnitPriceCents) // 12.5 rounds up
}

func TestSplitCartEmpty(t *testing.T) {
	_, err := SplitCart("buyer-1", nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSplitCartNeverMixesSellers(t *testing.T) {
	items := []CartItem{
		item("s1", 100, 1), item("s2", 200, 2), item("s3", 300, 3),
		item("s2", 400, 1), item("s1", 500, 2),
	}
	orders, err := SplitCart("buyer-1", items, "", "")
	require.NoError(t, err)
	require.Len(t, orders, 3)

	seen := map[string]bool{}
	for _, o := range orders {
		assert.False(t, seen[o.SellerID], "duplicate order for seller %s", o.SellerID)
		seen[o.SellerID] = true
	}
}
