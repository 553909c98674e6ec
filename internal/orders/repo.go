package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciganahub/cigana-hub/internal/market"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrBadTransition = errors.New("invalid status transition")
)

type Repo struct{ DB *pgxpool.Pool }

const orderCols = `id, buyer_user_id, seller_user_id, quantity, unit_price_cents, total_cents,
	status, COALESCE(delivery_address,''), delivery_date, COALESCE(notes,''), created_at, updated_at`

func scanOrder(row pgx.Row) (market.Order, error) {
	var o market.Order
	err := row.Scan(&o.ID, &o.BuyerID, &o.SellerID, &o.Quantity, &o.UnitPriceCents, &o.TotalCents,
		&o.Status, &o.DeliveryAddress, &o.DeliveryDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

// CreateAll inserts every per-seller order of one checkout in a single
// transaction. Either all of them land or none does.
func (r *Repo) CreateAll(ctx context.Context, os []market.Order) error {
	if len(os) == 0 {
		return market.ErrEmptyCart
	}
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, o := range os {
		_, err = tx.Exec(ctx, `
			INSERT INTO orders(id, buyer_user_id, seller_user_id, quantity, unit_price_cents,
			                   total_cents, status, delivery_address, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			o.ID, o.BuyerID, o.SellerID, o.Quantity, o.UnitPriceCents,
			o.TotalCents, o.Status, nullable(o.DeliveryAddress), nullable(o.Notes),
		)
		if err != nil {
			return fmt.Errorf("insert order for seller %s: %w", o.SellerID, err)
		}
	}
	return tx.Commit(ctx)
}

func (r *Repo) Get(ctx context.Context, orderID string) (market.Order, error) {
	o, err := scanOrder(r.DB.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return o, ErrNotFound
	}
	return o, err
}

func (r *Repo) ListByBuyer(ctx context.Context, userID string) ([]market.Order, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM orders WHERE buyer_user_id=$1 ORDER BY created_at DESC`, userID)
}

func (r *Repo) ListBySeller(ctx context.Context, userID string) ([]market.Order, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM orders WHERE seller_user_id=$1 ORDER BY created_at DESC`, userID)
}

// ListInvolving returns every order where the user is buyer or seller.
// Feeds contact resolution.
func (r *Repo) ListInvolving(ctx context.Context, userID string) ([]market.Order, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM orders
		WHERE buyer_user_id=$1 OR seller_user_id=$1 ORDER BY created_at`, userID)
}

func (r *Repo) list(ctx context.Context, q string, args ...any) ([]market.Order, error) {
	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []market.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateStatus moves an order along the status machine. Only the
// order's seller may transition it.
func (r *Repo) UpdateStatus(ctx context.Context, orderID, sellerID string, to market.Status) (o market.Order, from market.Status, err error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return market.Order{}, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o, err = scanOrder(tx.QueryRow(ctx,
		`SELECT `+orderCols+` FROM orders WHERE id=$1 AND seller_user_id=$2 FOR UPDATE`,
		orderID, sellerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return market.Order{}, "", ErrNotFound
	}
	if err != nil {
		return market.Order{}, "", err
	}
	from = o.Status
	if !market.CanTransition(from, to) {
		return market.Order{}, "", fmt.Errorf("%w: %s -> %s", ErrBadTransition, from, to)
	}

	row := tx.QueryRow(ctx, `UPDATE orders SET status=$2, updated_at=now()
		WHERE id=$1 RETURNING `+orderCols, orderID, to)
	o, err = scanOrder(row)
	if err != nil {
		return market.Order{}, "", err
	}
	return o, from, tx.Commit(ctx)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
