package listings

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciganahub/cigana-hub/internal/market"
)

type Repo struct{ DB *pgxpool.Pool }

// Marketplace unions the three listing kinds into the shared storefront,
// newest first. Seller names come from the persona registration of the
// kind's natural seller; a seller without a registration shows their
// persona label client-side (name comes back empty here).
const marketplaceSQL = `
	SELECT p.id, 'product' AS kind, p.name, p.category, p.price_cents, p.unit, p.stock,
	       p.status, p.user_id, COALESCE(f.nome_razao_social,''), 'fornecedor', p.created_at
	FROM products p
	LEFT JOIN fornecedor_registrations f ON f.user_id = p.user_id
	WHERE p.status = $1
	UNION ALL
	SELECT r.id, 'recipe', r.name, r.style, r.price_cents, 'L', 0,
	       r.status, r.user_id, COALESCE(c.nome_razao_social,''), 'cigano', r.created_at
	FROM recipes r
	LEFT JOIN cigano_registrations c ON c.user_id = r.user_id
	WHERE r.status = $1
	UNION ALL
	SELECT e.id, 'equipment', e.name, e.type, 0, 'lote', e.capacity,
	       e.status, e.user_id, COALESCE(fb.nome_razao_social,''), 'fabrica', e.created_at
	FROM equipments e
	LEFT JOIN fabrica_registrations fb ON fb.user_id = e.user_id
	WHERE e.status = $1
	ORDER BY created_at DESC`

func (r *Repo) Marketplace(ctx context.Context) ([]market.MarketplaceItem, error) {
	rows, err := r.DB.Query(ctx, marketplaceSQL, StatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []market.MarketplaceItem
	for rows.Next() {
		var it market.MarketplaceItem
		if err := rows.Scan(&it.ID, &it.Kind, &it.Name, &it.Category, &it.UnitPriceCents,
			&it.Unit, &it.AvailableQty, &it.Status, &it.SellerID, &it.SellerName,
			&it.SellerType, &it.CreatedAt); err != nil {
			return nil, err
		}
		if it.SellerName == "" {
			it.SellerName = it.SellerType.DisplayLabel()
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Filter narrows marketplace items by a case-insensitive search term,
// category and kind; "all" (or empty) means no filter.
func Filter(items []market.MarketplaceItem, search, category string, kind market.ItemKind) []market.MarketplaceItem {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]market.MarketplaceItem, 0, len(items))
	for _, it := range items {
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.SellerName), search) {
			continue
		}
		if category != "" && category != "all" && it.Category != category {
			continue
		}
		if kind != "" && kind != "all" && it.Kind != kind {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (r *Repo) CreateProduct(ctx context.Context, p Product) (Product, error) {
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO products(id, user_id, name, category, price_cents, stock, unit, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.Name, p.Category, p.PriceCents, p.Stock, p.Unit, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *Repo) ListProductsBySeller(ctx context.Context, userID string) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, name, category, price_cents, stock, unit, status, created_at, updated_at
		FROM products WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Category, &p.PriceCents,
			&p.Stock, &p.Unit, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) CreateRecipe(ctx context.Context, rc Recipe) (Recipe, error) {
	rc.ID = uuid.NewString()
	if rc.Status == "" {
		rc.Status = StatusAvailable
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO recipes(id, user_id, name, style, abv, ibu, price_cents, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING created_at, updated_at`,
		rc.ID, rc.UserID, rc.Name, rc.Style, rc.ABV, rc.IBU, rc.PriceCents, rc.Status,
	).Scan(&rc.CreatedAt, &rc.UpdatedAt)
	return rc, err
}

func (r *Repo) ListRecipesBySeller(ctx context.Context, userID string) ([]Recipe, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, name, style, abv, ibu, price_cents, status, created_at, updated_at
		FROM recipes WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recipe
	for rows.Next() {
		var rc Recipe
		if err := rows.Scan(&rc.ID, &rc.UserID, &rc.Name, &rc.Style, &rc.ABV, &rc.IBU,
			&rc.PriceCents, &rc.Status, &rc.CreatedAt, &rc.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

func (r *Repo) CreateEquipment(ctx context.Context, e Equipment) (Equipment, error) {
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = StatusAvailable
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO equipments(id, user_id, name, type, capacity, status)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, updated_at`,
		e.ID, e.UserID, e.Name, e.Type, e.Capacity, e.Status,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *Repo) ListEquipmentsBySeller(ctx context.Context, userID string) ([]Equipment, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, name, type, capacity, status, created_at, updated_at
		FROM equipments WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Equipment
	for rows.Next() {
		var e Equipment
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Type, &e.Capacity, &e.Status,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
