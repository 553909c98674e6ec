package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciganahub/cigana-hub/internal/market"
)

func line(name, seller string, priceCents int64, qty int) market.CartItem {
	return market.CartItem{Name: name, SellerID: seller, PriceCents: priceCents, Quantity: qty}
}

func TestAddMergesSameNameAndSeller(t *testing.T) {
	items := Add(nil, line("Lúpulo Citra", "s1", 500, 2))
	items = Add(items, line("Lúpulo Citra", "s1", 500, 3))

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.NotEmpty(t, items[0].ID)
}

func TestAddKeepsDistinctSellersApart(t *testing.T) {
	items := Add(nil, line("Lúpulo Citra", "s1", 500, 1))
	items = Add(items, line("Lúpulo Citra", "s2", 450, 1))

	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
	items := Add(nil, line("Malte Pilsen", "s1", 1000, 2))
	id := items[0].ID

	items = UpdateQuantity(items, id, 7)
	assert.Equal(t, 7, items[0].Quantity)

	items = UpdateQuantity(items, id, 0)
	assert.Empty(t, items)
}

func TestRemove(t *testing.T) {
	items := Add(nil, line("Malte Pilsen", "s1", 1000, 2))
	items = Add(items, line("Lúpulo Citra", "s2", 500, 1))

	items = Remove(items, items[0].ID)
	require.Len(t, items, 1)
	assert.Equal(t, "Lúpulo Citra", items[0].Name)
}

func TestTotals(t *testing.T) {
	items := []market.CartItem{
		line("a", "s1", 1000, 2),
		line("b", "s2", 500, 3),
	}
	count, total := Totals(items)
	assert.Equal(t, 5, count)
	assert.Equal(t, int64(3500), total)
}
