package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciganahub/cigana-hub/internal/market"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Insert(ctx context.Context, n market.Notification) (market.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Type == "" {
		n.Type = "info"
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO notifications(id, user_id, title, message, type, related_order_id)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at`,
		n.ID, n.UserID, n.Title, n.Body, n.Type, nullable(n.RelatedOrderID),
	).Scan(&n.CreatedAt)
	return n, err
}

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]market.Notification, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, title, message, type, read, COALESCE(related_order_id,''), created_at
		FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []market.Notification
	for rows.Next() {
		var n market.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Type, &n.Read,
			&n.RelatedOrderID, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead is scoped to the owner so one user cannot ack another's.
func (r *Repo) MarkRead(ctx context.Context, notificationID, userID string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE notifications SET read=true, updated_at=now()
		WHERE id=$1 AND user_id=$2`, notificationID, userID)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
