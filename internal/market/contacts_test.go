package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterpartiesDistinct(t *testing.T) {
	orders := []Order{
		{BuyerID: "me", SellerID: "s1"},
		{BuyerID: "me", SellerID: "s2"},
		{BuyerID: "b1", SellerID: "me"},
		{BuyerID: "me", SellerID: "s1"}, // repeat seller
	}
	assert.Equal(t, []string{"s1", "s2", "b1"}, Counterparties("me", orders))
}

func TestCounterpartiesEmpty(t *testing.T) {
	assert.Empty(t, Counterparties("me", nil))
}

func TestCounterpartiesExcludesSelf(t *testing.T) {
	orders := []Order{{BuyerID: "me", SellerID: "me"}}
	assert.Empty(t, Counterparties("me", orders))
}
