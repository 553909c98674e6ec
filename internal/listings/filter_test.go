package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ciganahub/cigana-hub/internal/market"
)

var storefront = []market.MarketplaceItem{
	{ID: "p1", Kind: market.KindProduct, Name: "Malte Pilsen", Category: "Maltes", SellerName: "Maltes do Sul"},
	{ID: "p2", Kind: market.KindProduct, Name: "Lúpulo Citra", Category: "Lúpulos", SellerName: "Hop Brasil"},
	{ID: "r1", Kind: market.KindRecipe, Name: "IPA Tropical", Category: "IPA", SellerName: "Cervejaria Nômade"},
	{ID: "e1", Kind: market.KindEquipment, Name: "Tanque 1000L", Category: "Fermentação", SellerName: "Fábrica Una"},
}

func ids(items []market.MarketplaceItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilterNoCriteria(t *testing.T) {
	assert.Len(t, Filter(storefront, "", "", ""), 4)
	assert.Len(t, Filter(storefront, "", "all", "all"), 4)
}

func TestFilterSearchMatchesNameAndSeller(t *testing.T) {
	assert.Equal(t, []string{"p1"}, ids(Filter(storefront, "pilsen", "", "")))
	assert.Equal(t, []string{"r1"}, ids(Filter(storefront, "nômade", "", "")))
	assert.Empty(t, Filter(storefront, "stout", "", ""))
}

func TestFilterByCategory(t *testing.T) {
	assert.Equal(t, []string{"p2"}, ids(Filter(storefront, "", "Lúpulos", "")))
}

func TestFilterByKind(t *testing.T) {
	assert.Equal(t, []string{"p1", "p2"}, ids(Filter(storefront, "", "", market.KindProduct)))
	assert.Equal(t, []string{"e1"}, ids(Filter(storefront, "", "", market.KindEquipment)))
}

func TestFilterCombines(t *testing.T) {
	assert.Equal(t, []string{"p1"}, ids(Filter(storefront, "malte", "Maltes", market.KindProduct)))
	assert.Empty(t, Filter(storefront, "malte", "IPA", market.KindProduct))
}
