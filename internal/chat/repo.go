package chat

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciganahub/cigana-hub/internal/market"
)

type Repo struct{ DB *pgxpool.Pool }

const messageCols = `id, sender_user_id, receiver_user_id, content, read,
	COALESCE(related_order_id,''), created_at`

// Thread returns every message between the pair, oldest first.
func (r *Repo) Thread(ctx context.Context, userID, contactID string) ([]market.Message, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT `+messageCols+` FROM messages
		WHERE (sender_user_id=$1 AND receiver_user_id=$2)
		   OR (sender_user_id=$2 AND receiver_user_id=$1)
		ORDER BY created_at ASC, id ASC`, userID, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []market.Message
	for rows.Next() {
		var m market.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Read,
			&m.RelatedOrderID, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead flips the unread messages from contact to user. Messages in
// the other direction are untouched.
func (r *Repo) MarkRead(ctx context.Context, userID, contactID string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE messages SET read=true, updated_at=now()
		WHERE sender_user_id=$1 AND receiver_user_id=$2 AND read=false`,
		contactID, userID)
	return err
}

func (r *Repo) Insert(ctx context.Context, m market.Message) (market.Message, error) {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO messages(id, sender_user_id, receiver_user_id, content, related_order_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		m.ID, m.SenderID, m.ReceiverID, m.Content, nullable(m.RelatedOrderID),
	).Scan(&m.CreatedAt)
	return m, err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
