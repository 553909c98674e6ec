package listings

import "time"

// Listing statuses follow the labels shown to sellers.
const (
	StatusAvailable   = "Disponível"
	StatusUnavailable = "Indisponível"
)

// Product is a supplier's raw-input listing (malt, hops, yeast...).
type Product struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	PriceCents int64     `json:"price_cents"`
	Stock      int       `json:"stock"`
	Unit       string    `json:"unit"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Recipe is a gypsy brewery's beer listing.
type Recipe struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Style      string    `json:"style"`
	ABV        float64   `json:"abv"`
	IBU        int       `json:"ibu"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Equipment is a factory's production-capacity listing. Priced by
// negotiation, so it carries no unit price.
type Equipment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
