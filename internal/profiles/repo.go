package profiles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciganahub/cigana-hub/internal/market"
)

var ErrNotFound = errors.New("not found")

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Get(ctx context.Context, userID string) (market.Profile, error) {
	var p market.Profile
	err := r.DB.QueryRow(ctx,
		`SELECT id, user_id, user_type, created_at, updated_at FROM profiles WHERE user_id=$1`,
		userID).Scan(&p.ID, &p.UserID, &p.Type, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (r *Repo) Create(ctx context.Context, userID string, t market.UserType) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO profiles(user_id, user_type) VALUES ($1,$2) ON CONFLICT (user_id) DO NOTHING`,
		userID, t)
	return err
}

// ListExcept returns every profile but the given user's, newest first.
func (r *Repo) ListExcept(ctx context.Context, userID string) ([]market.Profile, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, user_type, created_at, updated_at FROM profiles
		 WHERE user_id <> $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []market.Profile
	for rows.Next() {
		var p market.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Type, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_roles WHERE user_id=$1 AND role='admin'`, userID).Scan(&n)
	return n > 0, err
}

// FirstAdmin returns the user id of the platform administrator contact.
func (r *Repo) FirstAdmin(ctx context.Context) (string, error) {
	var id string
	err := r.DB.QueryRow(ctx,
		`SELECT user_id FROM user_roles WHERE role='admin' ORDER BY created_at LIMIT 1`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return id, err
}

var regTableByType = map[market.UserType]string{
	market.TypeCigano:     "cigano_registrations",
	market.TypeFabrica:    "fabrica_registrations",
	market.TypeFornecedor: "fornecedor_registrations",
	market.TypeBar:        "bar_registrations",
}

// probe order when the persona is unknown
var regProbeOrder = []market.UserType{
	market.TypeCigano, market.TypeFabrica, market.TypeFornecedor, market.TypeBar,
}

// NameForType resolves a user's trade name from their persona's
// registration table, falling back to the persona label when no row
// exists yet.
func (r *Repo) NameForType(ctx context.Context, userID string, t market.UserType) string {
	if table, ok := regTableByType[t]; ok {
		if name := r.tradeName(ctx, table, userID); name != "" {
			return name
		}
	}
	return t.DisplayLabel()
}

// ProbeName tries all four registration tables in persona order; used
// for the admin's all-users view where a typed row may not exist.
func (r *Repo) ProbeName(ctx context.Context, userID string) string {
	for _, t := range regProbeOrder {
		if name := r.tradeName(ctx, regTableByType[t], userID); name != "" {
			return name
		}
	}
	return market.UserType("").DisplayLabel()
}

func wrapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *Repo) tradeName(ctx context.Context, table, userID string) string {
	var name string
	err := r.DB.QueryRow(ctx,
		`SELECT nome_razao_social FROM `+table+` WHERE user_id=$1`, userID).Scan(&name)
	if err != nil {
		return ""
	}
	return name
}
