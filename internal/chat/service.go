package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/ciganahub/cigana-hub/internal/kafka"
	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/profiles"
)

var (
	ErrEmptyMessage = errors.New("message content is empty")
	ErrNotAllowed   = errors.New("contact not allowed")
)

type messageStore interface {
	Thread(ctx context.Context, userID, contactID string) ([]market.Message, error)
	MarkRead(ctx context.Context, userID, contactID string) error
	Insert(ctx context.Context, m market.Message) (market.Message, error)
}

type orderStore interface {
	ListInvolving(ctx context.Context, userID string) ([]market.Order, error)
}

type directory interface {
	Get(ctx context.Context, userID string) (market.Profile, error)
	ListExcept(ctx context.Context, userID string) ([]market.Profile, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
	FirstAdmin(ctx context.Context) (string, error)
	NameForType(ctx context.Context, userID string, t market.UserType) string
	ProbeName(ctx context.Context, userID string) string
}

type pusher interface {
	Push(userID string, m market.Message)
}

type publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service owns contact eligibility and messaging.
type Service struct {
	Messages    messageStore
	Orders      orderStore
	Dir         directory
	Hub         pusher
	Sent        publisher // message.sent
	ServiceName string
	Log         *zap.Logger
}

// Contacts computes who the user may message. Admins see everyone.
// Everyone else sees the counterparties of their order history, with
// the platform administrator prepended; no orders means no contacts.
func (s *Service) Contacts(ctx context.Context, userID string) ([]market.ContactCandidate, error) {
	admin, err := s.Dir.IsAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}
	if admin {
		return s.allContacts(ctx, userID)
	}

	os, err := s.Orders.ListInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(os) == 0 {
		return nil, nil
	}

	var out []market.ContactCandidate
	for _, contactID := range market.Counterparties(userID, os) {
		p, err := s.Dir.Get(ctx, contactID)
		if err != nil {
			if errors.Is(err, profiles.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, market.ContactCandidate{
			UserID: contactID,
			Name:   s.Dir.NameForType(ctx, contactID, p.Type),
			Type:   p.Type,
		})
	}

	adminID, err := s.Dir.FirstAdmin(ctx)
	if err != nil && !errors.Is(err, profiles.ErrNotFound) {
		return nil, err
	}
	if adminID != "" {
		out = append([]market.ContactCandidate{{UserID: adminID, Name: "Administrador", Type: "admin"}}, out...)
	}
	return out, nil
}

func (s *Service) allContacts(ctx context.Context, userID string) ([]market.ContactCandidate, error) {
	ps, err := s.Dir.ListExcept(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]market.ContactCandidate, 0, len(ps))
	for _, p := range ps {
		out = append(out, market.ContactCandidate{
			UserID: p.UserID,
			Name:   s.Dir.ProbeName(ctx, p.UserID),
			Type:   p.Type,
		})
	}
	return out, nil
}

// Thread fetches the conversation and marks the contact's messages to
// the user as read.
func (s *Service) Thread(ctx context.Context, userID, contactID string) ([]market.Message, error) {
	ms, err := s.Messages.Thread(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if err := s.Messages.MarkRead(ctx, userID, contactID); err != nil {
		return nil, err
	}

	th := market.NewThread()
	th.AddAll(ms)
	th.MarkRead(contactID)
	return th.Messages(), nil
}

// Send validates, persists and fans out one message. Content is
// trimmed; whitespace-only content is rejected before any store call.
func (s *Service) Send(ctx context.Context, senderID, receiverID, content, relatedOrderID string) (market.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return market.Message{}, ErrEmptyMessage
	}

	ok, err := s.mayMessage(ctx, senderID, receiverID)
	if err != nil {
		return market.Message{}, err
	}
	if !ok {
		return market.Message{}, ErrNotAllowed
	}

	m, err := s.Messages.Insert(ctx, market.Message{
		ID:             uuid.NewString(),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
		RelatedOrderID: relatedOrderID,
	})
	if err != nil {
		return market.Message{}, err
	}

	if s.Hub != nil {
		s.Hub.Push(receiverID, m)
	}
	s.publishSent(m)
	return m, nil
}

// mayMessage holds the eligibility rule: both sides of an order may
// message each other, and anyone may reach (or be reached by) an admin.
func (s *Service) mayMessage(ctx context.Context, senderID, receiverID string) (bool, error) {
	if admin, err := s.Dir.IsAdmin(ctx, senderID); err != nil {
		return false, err
	} else if admin {
		return true, nil
	}
	if admin, err := s.Dir.IsAdmin(ctx, receiverID); err != nil {
		return false, err
	} else if admin {
		return true, nil
	}

	os, err := s.Orders.ListInvolving(ctx, senderID)
	if err != nil {
		return false, err
	}
	for _, id := range market.Counterparties(senderID, os) {
		if id == receiverID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) publishSent(m market.Message) {
	if s.Sent == nil {
		return
	}
	ev := market.Envelope{
		EventID:       uuid.NewString(),
		EventType:     market.EventMessageSent,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: m.ID,
		Payload: kafkax.MustMarshal(market.MessageSentPayload{
			MessageID:      m.ID,
			SenderID:       m.SenderID,
			ReceiverID:     m.ReceiverID,
			RelatedOrderID: m.RelatedOrderID,
		}),
	}
	s.Sent.Publish(market.PartitionKey(m.ReceiverID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(market.EventMessageSent)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
