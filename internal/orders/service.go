package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ciganahub/cigana-hub/internal/cart"
	kafkax "github.com/ciganahub/cigana-hub/internal/kafka"
	"github.com/ciganahub/cigana-hub/internal/market"
)

type store interface {
	CreateAll(ctx context.Context, os []market.Order) error
	ListByBuyer(ctx context.Context, userID string) ([]market.Order, error)
	ListBySeller(ctx context.Context, userID string) ([]market.Order, error)
	UpdateStatus(ctx context.Context, orderID, sellerID string, to market.Status) (market.Order, market.Status, error)
}

type publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service runs checkout and the seller-side order lifecycle.
type Service struct {
	Cart          cart.Store
	Repo          store
	Placed        publisher // order.placed
	StatusChanged publisher // order.status.changed
	ServiceName   string
	Log           *zap.Logger
}

// Checkout splits the buyer's cart into one pending order per seller,
// persists them all-or-nothing, then clears the cart. The cart stays
// intact on any failure so the buyer can retry.
func (s *Service) Checkout(ctx context.Context, buyerID, deliveryAddress, notes string) ([]market.Order, error) {
	items, err := s.Cart.Load(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	split, err := market.SplitCart(buyerID, items, deliveryAddress, notes)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.CreateAll(ctx, split); err != nil {
		return nil, err
	}

	itemsBySeller := make(map[string]int, len(split))
	for _, it := range items {
		itemsBySeller[it.SellerID]++
	}
	for _, o := range split {
		s.publishPlaced(o, itemsBySeller[o.SellerID])
	}

	if err := s.Cart.Clear(ctx, buyerID); err != nil {
		// orders exist; the stale cart is the lesser problem
		s.Log.Warn("clear cart after checkout", zap.String("buyer", buyerID), zap.Error(err))
	}
	return split, nil
}

func (s *Service) ListByBuyer(ctx context.Context, userID string) ([]market.Order, error) {
	return s.Repo.ListByBuyer(ctx, userID)
}

func (s *Service) ListBySeller(ctx context.Context, userID string) ([]market.Order, error) {
	return s.Repo.ListBySeller(ctx, userID)
}

// UpdateStatus transitions an order on behalf of its seller and raises
// the status-changed event for buyer notification fan-out.
func (s *Service) UpdateStatus(ctx context.Context, orderID, sellerID string, to market.Status) (market.Order, error) {
	o, from, err := s.Repo.UpdateStatus(ctx, orderID, sellerID, to)
	if err != nil {
		return market.Order{}, err
	}

	ev := market.Envelope{
		EventID:       uuid.NewString(),
		EventType:     market.EventOrderStatusChanged,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: o.ID,
		Payload: kafkax.MustMarshal(market.OrderStatusChangedPayload{
			OrderID:  o.ID,
			BuyerID:  o.BuyerID,
			SellerID: o.SellerID,
			From:     from,
			To:       o.Status,
		}),
	}
	s.StatusChanged.Publish(market.PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(market.EventOrderStatusChanged)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	return o, nil
}

func (s *Service) publishPlaced(o market.Order, itemCount int) {
	ev := market.Envelope{
		EventID:       uuid.NewString(),
		EventType:     market.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: o.ID,
		Payload: kafkax.MustMarshal(market.OrderPlacedPayload{
			OrderID:    o.ID,
			BuyerID:    o.BuyerID,
			SellerID:   o.SellerID,
			ItemCount:  itemCount,
			Quantity:   o.Quantity,
			TotalCents: o.TotalCents,
		}),
	}
	s.Placed.Publish(market.PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(market.EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
