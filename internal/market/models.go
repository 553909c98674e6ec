package market

import "time"

// UserType is the persona a profile registered as.
type UserType string

const (
	TypeCigano     UserType = "cigano"
	TypeFabrica    UserType = "fabrica"
	TypeFornecedor UserType = "fornecedor"
	TypeBar        UserType = "bar"
)

// DisplayLabel is the fallback contact name when a user has no
// registration row yet.
func (t UserType) DisplayLabel() string {
	switch t {
	case TypeCigano:
		return "Cigano"
	case TypeFabrica:
		return "Fábrica"
	case TypeFornecedor:
		return "Fornecedor"
	case TypeBar:
		return "Bar"
	}
	return "Usuário"
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Profile struct {
	ID        string
	UserID    string
	Type      UserType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemKind distinguishes what a cart line points at.
type ItemKind string

const (
	KindProduct   ItemKind = "product"
	KindRecipe    ItemKind = "recipe"
	KindEquipment ItemKind = "equipment"
)

type CartItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	Quantity   int      `json:"quantity"`
	Unit       string   `json:"unit"`
	SellerID   string   `json:"seller_id"`
	SellerName string   `json:"seller_name"`
	Kind       ItemKind `json:"kind"`
}

type Order struct {
	ID              string
	BuyerID         string
	SellerID        string
	Quantity        int
	UnitPriceCents  int64
	TotalCents      int64
	Status          Status
	DeliveryAddress string
	DeliveryDate    *time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Message struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_user_id"`
	ReceiverID     string    `json:"receiver_user_id"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	RelatedOrderID string    `json:"related_order_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Notification struct {
	ID             string
	UserID         string
	Title          string
	Body           string
	Type           string // info | success | error
	Read           bool
	RelatedOrderID string
	CreatedAt      time.Time
}

// ContactCandidate is derived by the contact resolver, never persisted.
type ContactCandidate struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name"`
	Type   UserType `json:"user_type"`
}

// MarketplaceItem is the read-side union of products, recipes and
// equipments offered for sale, with the seller's trade name resolved.
type MarketplaceItem struct {
	ID             string
	Kind           ItemKind
	Name           string
	Category       string
	UnitPriceCents int64
	Unit           string
	AvailableQty   int
	Status         string
	SellerID       string
	SellerName     string
	SellerType     UserType
	CreatedAt      time.Time
}
