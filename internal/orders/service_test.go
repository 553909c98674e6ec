package orders

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ciganahub/cigana-hub/internal/cart"
	"github.com/ciganahub/cigana-hub/internal/market"
)

type fakeRepo struct {
	created   []market.Order
	createErr error

	updated market.Order
	from    market.Status
}

func (f *fakeRepo) CreateAll(_ context.Context, os []market.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, os...)
	return nil
}

func (f *fakeRepo) ListByBuyer(context.Context, string) ([]market.Order, error)  { return nil, nil }
func (f *fakeRepo) ListBySeller(context.Context, string) ([]market.Order, error) { return nil, nil }

func (f *fakeRepo) UpdateStatus(_ context.Context, orderID, sellerID string, to market.Status) (market.Order, market.Status, error) {
	f.updated.ID = orderID
	f.updated.SellerID = sellerID
	f.updated.Status = to
	return f.updated, f.from, nil
}

type fakePub struct {
	keys   [][]byte
	values [][]byte
}

func (f *fakePub) Publish(key, value []byte, _ ...kafkago.Header) {
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
}

func (f *fakePub) envelope(t *testing.T, i int) market.Envelope {
	t.Helper()
	var ev market.Envelope
	require.NoError(t, json.Unmarshal(f.values[i], &ev))
	return ev
}

func newService(repo *fakeRepo, cs cart.Store) (*Service, *fakePub, *fakePub) {
	placed, changed := &fakePub{}, &fakePub{}
	return &Service{
		Cart:          cs,
		Repo:          repo,
		Placed:        placed,
		StatusChanged: changed,
		ServiceName:   "hub-api-test",
		Log:           zap.NewNop(),
	}, placed, changed
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	cs := cart.NewMemoryStore()
	require.NoError(t, cs.Save(ctx, "buyer-1", []market.CartItem{
		{ID: "i1", Name: "Malte", PriceCents: 1000, Quantity: 2, SellerID: "s1"},
		{ID: "i2", Name: "Lúpulo", PriceCents: 500, Quantity: 1, SellerID: "s1"},
		{ID: "i3", Name: "Levedura", PriceCents: 300, Quantity: 4, SellerID: "s2"},
	}))

	repo := &fakeRepo{}
	svc, placed, _ := newService(repo, cs)

	got, err := svc.Checkout(ctx, "buyer-1", "Rua X", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, got, repo.created)

	// one placed event per seller order
	require.Len(t, placed.values, 2)
	for i, o := range got {
		ev := placed.envelope(t, i)
		assert.Equal(t, market.EventOrderPlaced, ev.EventType)
		assert.Equal(t, o.ID, ev.CorrelationID)

		var p market.OrderPlacedPayload
		require.NoError(t, json.Unmarshal(ev.Payload, &p))
		assert.Equal(t, o.SellerID, p.SellerID)
		assert.Equal(t, "buyer-1", p.BuyerID)
	}

	// cart cleared after commit
	items, err := cs.Load(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckoutKeepsCartOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	cs := cart.NewMemoryStore()
	require.NoError(t, cs.Save(ctx, "buyer-1", []market.CartItem{
		{ID: "i1", Name: "Malte", PriceCents: 1000, Quantity: 2, SellerID: "s1"},
	}))

	repo := &fakeRepo{createErr: errors.New("db down")}
	svc, placed, _ := newService(repo, cs)

	_, err := svc.Checkout(ctx, "buyer-1", "", "")
	require.Error(t, err)
	assert.Empty(t, placed.values)

	items, _ := cs.Load(ctx, "buyer-1")
	assert.Len(t, items, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, placed, _ := newService(&fakeRepo{}, cart.NewMemoryStore())

	_, err := svc.Checkout(context.Background(), "buyer-1", "", "")
	assert.ErrorIs(t, err, market.ErrEmptyCart)
	assert.Empty(t, placed.values)
}

func TestUpdateStatusPublishesTransition(t *testing.T) {
	repo := &fakeRepo{
		updated: market.Order{BuyerID: "b1"},
		from:    market.StatusPending,
	}
	svc, _, changed := newService(repo, cart.NewMemoryStore())

	o, err := svc.UpdateStatus(context.Background(), "o1", "s1", market.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, market.StatusAccepted, o.Status)

	require.Len(t, changed.values, 1)
	ev := changed.envelope(t, 0)
	assert.Equal(t, market.EventOrderStatusChanged, ev.EventType)

	var p market.OrderStatusChangedPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &p))
	assert.Equal(t, "o1", p.OrderID)
	assert.Equal(t, "b1", p.BuyerID)
	assert.Equal(t, market.StatusPending, p.From)
	assert.Equal(t, market.StatusAccepted, p.To)
}
