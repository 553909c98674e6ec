package cart

import (
	"github.com/google/uuid"

	"github.com/ciganahub/cigana-hub/internal/market"
)

// Add appends a line to the cart. A line with the same name and seller
// already present is merged by summing quantities instead.
func Add(items []market.CartItem, it market.CartItem) []market.CartItem {
	for i := range items {
		if items[i].Name == it.Name && items[i].SellerID == it.SellerID {
			items[i].Quantity += it.Quantity
			return items
		}
	}
	it.ID = uuid.NewString()
	return append(items, it)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func UpdateQuantity(items []market.CartItem, itemID string, qty int) []market.CartItem {
	if qty <= 0 {
		return Remove(items, itemID)
	}
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = qty
			break
		}
	}
	return items
}

func Remove(items []market.CartItem, itemID string) []market.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}

// Totals returns the item count and grand total of the cart.
func Totals(items []market.CartItem) (count int, totalCents int64) {
	for _, it := range items {
		count += it.Quantity
		totalCents += it.PriceCents * int64(it.Quantity)
	}
	return count, totalCents
}
