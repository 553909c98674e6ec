package market

// Counterparties derives the distinct "other side" of each order the
// user took part in, in discovery order. The user never appears in
// their own list.
func Counterparties(userID string, orders []Order) []string {
	seen := make(map[string]bool, len(orders))
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		other := o.SellerID
		if o.SellerID == userID {
			other = o.BuyerID
		}
		if other == userID || seen[other] {
			continue
		}
		seen[other] = true
		out = append(out, other)
	}
	return out
}
