package market

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// SplitCart partitions a checkout cart by seller and emits one pending
// order draft per distinct seller. Per group:
//
//   - quantity     = sum of item quantities
//   - unit price   = plain mean of the item prices, NOT weighted by
//     quantity (kept as-is from the product rules; see DESIGN.md)
//   - total        = sum of price*quantity
//
// Delivery address and notes are shared across all resulting orders.
// Group order follows first appearance of each seller in the cart.
func SplitCart(buyerID string, items []CartItem, deliveryAddress, notes string) ([]Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	groups := make(map[string][]CartItem, len(items))
	sellers := make([]string, 0, len(items))
	for _, it := range items {
		if _, seen := groups[it.SellerID]; !seen {
			sellers = append(sellers, it.SellerID)
		}
		groups[it.SellerID] = append(groups[it.SellerID], it)
	}

	out := make([]Order, 0, len(sellers))
	for _, sellerID := range sellers {
		group := groups[sellerID]

		var qty int
		var priceSum, total int64
		for _, it := range group {
			qty += it.Quantity
			priceSum += it.PriceCents
			total += it.PriceCents * int64(it.Quantity)
		}

		out = append(out, Order{
			ID:              uuid.NewString(),
			BuyerID:         buyerID,
			SellerID:        sellerID,
			Quantity:        qty,
			UnitPriceCents:  meanCents(priceSum, int64(len(group))),
			TotalCents:      total,
			Status:          StatusPending,
			DeliveryAddress: deliveryAddress,
			Notes:           notes,
		})
	}
	return out, nil
}

// meanCents rounds half-up to a whole cent.
func meanCents(sum, n int64) int64 {
	return (sum + n/2) / n
}
