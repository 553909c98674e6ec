package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/ciganahub/cigana-hub/internal/kafka"
	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/redisx"
)

type notificationStore interface {
	Insert(ctx context.Context, n market.Notification) (market.Notification, error)
}

// Service turns bus events into notification rows. Events are deduped
// by event id in Redis before acting, so redelivery is harmless.
type Service struct {
	Store       notificationStore
	Redis       *redis.Client
	ServiceName string
	Log         *zap.Logger
}

// HandleOrderEvent consumes order.placed and order.status.changed.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	env, fresh, err := s.decode(ctx, m)
	if err != nil || !fresh {
		return err
	}

	switch env.EventType {
	case market.EventOrderPlaced:
		p, err := kafkax.UnwrapPayload[market.OrderPlacedPayload](env.Payload)
		if err != nil {
			return err
		}
		_, err = s.Store.Insert(ctx, market.Notification{
			UserID:         p.SellerID,
			Title:          "Novo Pedido",
			Body:           fmt.Sprintf("Você recebeu um novo pedido de %d item(s)", p.ItemCount),
			Type:           "info",
			RelatedOrderID: p.OrderID,
		})
		return err

	case market.EventOrderStatusChanged:
		p, err := kafkax.UnwrapPayload[market.OrderStatusChangedPayload](env.Payload)
		if err != nil {
			return err
		}
		_, err = s.Store.Insert(ctx, market.Notification{
			UserID:         p.BuyerID,
			Title:          "Status do Pedido Atualizado",
			Body:           statusBody(p.To),
			Type:           statusType(p.To),
			RelatedOrderID: p.OrderID,
		})
		return err
	}
	return nil // ignore unknown types
}

// HandleMessageEvent consumes message.sent.
func (s *Service) HandleMessageEvent(ctx context.Context, m kafkago.Message) error {
	env, fresh, err := s.decode(ctx, m)
	if err != nil || !fresh {
		return err
	}
	if env.EventType != market.EventMessageSent {
		return nil
	}
	p, err := kafkax.UnwrapPayload[market.MessageSentPayload](env.Payload)
	if err != nil {
		return err
	}
	_, err = s.Store.Insert(ctx, market.Notification{
		UserID:         p.ReceiverID,
		Title:          "Nova Mensagem",
		Body:           "Você recebeu uma nova mensagem",
		Type:           "info",
		RelatedOrderID: p.RelatedOrderID,
	})
	return err
}

// decode unmarshals the envelope and claims the event id in Redis.
// fresh=false means this event was already processed.
func (s *Service) decode(ctx context.Context, m kafkago.Message) (market.Envelope, bool, error) {
	var env market.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return env, false, err
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	exists, err := redisx.Exists(ctx, s.Redis, dkey)
	if err != nil {
		s.Log.Warn("dedup check", zap.Error(err))
	}
	if exists {
		return env, false, nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	return env, true, nil
}

func statusBody(to market.Status) string {
	switch to {
	case market.StatusAccepted:
		return "Seu pedido foi aceito"
	case market.StatusRejected:
		return "Seu pedido foi rejeitado"
	default:
		return "Seu pedido foi atualizado"
	}
}

func statusType(to market.Status) string {
	switch to {
	case market.StatusAccepted:
		return "success"
	case market.StatusRejected:
		return "error"
	default:
		return "info"
	}
}
