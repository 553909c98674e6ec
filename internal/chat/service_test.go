package chat

import (
	"context"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/profiles"
)

type fakeMessages struct {
	thread     []market.Message
	inserted   []market.Message
	markedRead [][2]string
}

func (f *fakeMessages) Thread(context.Context, string, string) ([]market.Message, error) {
	return f.thread, nil
}

func (f *fakeMessages) MarkRead(_ context.Context, userID, contactID string) error {
	f.markedRead = append(f.markedRead, [2]string{userID, contactID})
	return nil
}

func (f *fakeMessages) Insert(_ context.Context, m market.Message) (market.Message, error) {
	m.CreatedAt = time.Now()
	f.inserted = append(f.inserted, m)
	return m, nil
}

type fakeOrders struct {
	byUser map[string][]market.Order
}

func (f *fakeOrders) ListInvolving(_ context.Context, userID string) ([]market.Order, error) {
	return f.byUser[userID], nil
}

type fakeDir struct {
	profiles map[string]market.Profile
	admins   map[string]bool
	names    map[string]string
	firstAdm string
}

func (f *fakeDir) Get(_ context.Context, userID string) (market.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return market.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}

func (f *fakeDir) ListExcept(_ context.Context, userID string) ([]market.Profile, error) {
	var out []market.Profile
	for _, p := range f.profiles {
		if p.UserID != userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeDir) IsAdmin(_ context.Context, userID string) (bool, error) {
	return f.admins[userID], nil
}

func (f *fakeDir) FirstAdmin(context.Context) (string, error) {
	if f.firstAdm == "" {
		return "", profiles.ErrNotFound
	}
	return f.firstAdm, nil
}

func (f *fakeDir) NameForType(_ context.Context, userID string, t market.UserType) string {
	if n, ok := f.names[userID]; ok {
		return n
	}
	return t.DisplayLabel()
}

func (f *fakeDir) ProbeName(_ context.Context, userID string) string {
	if n, ok := f.names[userID]; ok {
		return n
	}
	return "Usuário"
}

type fakeHub struct {
	pushed map[string][]market.Message
}

func (f *fakeHub) Push(userID string, m market.Message) {
	if f.pushed == nil {
		f.pushed = map[string][]market.Message{}
	}
	f.pushed[userID] = append(f.pushed[userID], m)
}

type fakeSent struct{ values [][]byte }

func (f *fakeSent) Publish(_, value []byte, _ ...kafkago.Header) {
	f.values = append(f.values, value)
}

func newChatService(ms *fakeMessages, os *fakeOrders, dir *fakeDir) (*Service, *fakeHub, *fakeSent) {
	hub, sent := &fakeHub{}, &fakeSent{}
	return &Service{
		Messages:    ms,
		Orders:      os,
		Dir:         dir,
		Hub:         hub,
		Sent:        sent,
		ServiceName: "hub-api-test",
		Log:         zap.NewNop(),
	}, hub, sent
}

func TestContactsWithoutOrders(t *testing.T) {
	svc, _, _ := newChatService(&fakeMessages{}, &fakeOrders{}, &fakeDir{
		profiles: map[string]market.Profile{"me": {UserID: "me", Type: market.TypeBar}},
		admins:   map[string]bool{},
	})

	got, err := svc.Contacts(context.Background(), "me")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContactsFromOrderHistory(t *testing.T) {
	dir := &fakeDir{
		profiles: map[string]market.Profile{
			"me": {UserID: "me", Type: market.TypeBar},
			"s1": {UserID: "s1", Type: market.TypeFornecedor},
			"s2": {UserID: "s2", Type: market.TypeCigano},
		},
		admins:   map[string]bool{"adm": true},
		names:    map[string]string{"s1": "Maltes do Sul"},
		firstAdm: "adm",
	}
	orders := &fakeOrders{byUser: map[string][]market.Order{
		"me": {
			{BuyerID: "me", SellerID: "s1"},
			{BuyerID: "me", SellerID: "s2"},
			{BuyerID: "me", SellerID: "s1"},
		},
	}}
	svc, _, _ := newChatService(&fakeMessages{}, orders, dir)

	got, err := svc.Contacts(context.Background(), "me")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// administrator always comes first
	assert.Equal(t, "adm", got[0].UserID)
	assert.Equal(t, "Administrador", got[0].Name)

	assert.Equal(t, "s1", got[1].UserID)
	assert.Equal(t, "Maltes do Sul", got[1].Name)

	assert.Equal(t, "s2", got[2].UserID)
	assert.Equal(t, "Cigano", got[2].Name)
}

func TestContactsSkipsMissingProfiles(t *testing.T) {
	dir := &fakeDir{
		profiles: map[string]market.Profile{"me": {UserID: "me", Type: market.TypeBar}},
		admins:   map[string]bool{},
	}
	orders := &fakeOrders{byUser: map[string][]market.Order{
		"me": {{BuyerID: "me", SellerID: "ghost"}},
	}}
	svc, _, _ := newChatService(&fakeMessages{}, orders, dir)

	got, err := svc.Contacts(context.Background(), "me")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContactsAdminSeesEveryone(t *testing.T) {
	dir := &fakeDir{
		profiles: map[string]market.Profile{
			"adm": {UserID: "adm", Type: market.TypeBar},
			"u1":  {UserID: "u1", Type: market.TypeCigano},
			"u2":  {UserID: "u2", Type: market.TypeFabrica},
		},
		admins: map[string]bool{"adm": true},
		names:  map[string]string{"u1": "Cervejaria Nômade"},
	}
	svc, _, _ := newChatService(&fakeMessages{}, &fakeOrders{}, dir)

	got, err := svc.Contacts(context.Background(), "adm")
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[string]market.ContactCandidate{}
	for _, c := range got {
		byID[c.UserID] = c
	}
	assert.Equal(t, "Cervejaria Nômade", byID["u1"].Name)
	assert.Equal(t, "Usuário", byID["u2"].Name)
}

func TestSendRejectsWhitespaceBeforeStore(t *testing.T) {
	ms := &fakeMessages{}
	svc, _, sent := newChatService(ms, &fakeOrders{}, &fakeDir{admins: map[string]bool{}})

	_, err := svc.Send(context.Background(), "me", "s1", "   \n\t ", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, ms.inserted)
	assert.Empty(t, sent.values)
}

func TestSendTrimsContent(t *testing.T) {
	ms := &fakeMessages{}
	orders := &fakeOrders{byUser: map[string][]market.Order{
		"me": {{BuyerID: "me", SellerID: "s1"}},
	}}
	svc, hub, sent := newChatService(ms, orders, &fakeDir{admins: map[string]bool{}})

	m, err := svc.Send(context.Background(), "me", "s1", "  olá  ", "")
	require.NoError(t, err)
	assert.Equal(t, "olá", m.Content)
	assert.NotEmpty(t, m.ID)

	require.Len(t, ms.inserted, 1)
	require.Len(t, hub.pushed["s1"], 1)
	assert.Len(t, sent.values, 1)
}

func TestSendBlocksStrangers(t *testing.T) {
	ms := &fakeMessages{}
	svc, hub, _ := newChatService(ms, &fakeOrders{}, &fakeDir{admins: map[string]bool{}})

	_, err := svc.Send(context.Background(), "me", "stranger", "oi", "")
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Empty(t, ms.inserted)
	assert.Empty(t, hub.pushed)
}

func TestSendToAdminAlwaysAllowed(t *testing.T) {
	ms := &fakeMessages{}
	svc, _, _ := newChatService(ms, &fakeOrders{}, &fakeDir{admins: map[string]bool{"adm": true}})

	_, err := svc.Send(context.Background(), "me", "adm", "preciso de ajuda", "")
	require.NoError(t, err)
	assert.Len(t, ms.inserted, 1)
}

func TestSendFromAdminAlwaysAllowed(t *testing.T) {
	ms := &fakeMessages{}
	svc, _, _ := newChatService(ms, &fakeOrders{}, &fakeDir{admins: map[string]bool{"adm": true}})

	_, err := svc.Send(context.Background(), "adm", "anyone", "olá", "")
	require.NoError(t, err)
	assert.Len(t, ms.inserted, 1)
}

func TestThreadMarksContactMessagesRead(t *testing.T) {
	now := time.Now()
	ms := &fakeMessages{thread: []market.Message{
		{ID: "m1", SenderID: "contact", ReceiverID: "me", Content: "oi", CreatedAt: now},
		{ID: "m2", SenderID: "me", ReceiverID: "contact", Content: "olá", CreatedAt: now.Add(time.Second)},
	}}
	svc, _, _ := newChatService(ms, &fakeOrders{}, &fakeDir{admins: map[string]bool{}})

	got, err := svc.Thread(context.Background(), "me", "contact")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, [][2]string{{"me", "contact"}}, ms.markedRead)
	assert.True(t, got[0].Read)
	assert.False(t, got[1].Read)
}
