package market

import (
	"encoding/json"
	"time"
)

const (
	EventOrderPlaced        = "OrderPlaced"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventMessageSent        = "MessageSent"
)

// Envelope wraps every event on the bus. Payload carries the
// event-specific body; CorrelationID is the order id (or message id for
// chat events) so consumers can trace a flow end to end.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID    string `json:"order_id"`
	BuyerID    string `json:"buyer_user_id"`
	SellerID   string `json:"seller_user_id"`
	ItemCount  int    `json:"item_count"`
	Quantity   int    `json:"quantity"`
	TotalCents int64  `json:"total_cents"`
}

type OrderStatusChangedPayload struct {
	OrderID  string `json:"order_id"`
	BuyerID  string `json:"buyer_user_id"`
	SellerID string `json:"seller_user_id"`
	From     Status `json:"from"`
	To       Status `json:"to"`
}

type MessageSentPayload struct {
	MessageID      string `json:"message_id"`
	SenderID       string `json:"sender_user_id"`
	ReceiverID     string `json:"receiver_user_id"`
	RelatedOrderID string `json:"related_order_id,omitempty"`
}
