package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ciganahub/cigana-hub/internal/listings"
	"github.com/ciganahub/cigana-hub/internal/market"
)

type MarketplaceHandler struct {
	Repo *listings.Repo
}

func (h *MarketplaceHandler) Register(r chi.Router) {
	r.Get("/marketplace", h.list)
	r.Post("/listings/products", h.createProduct)
	r.Get("/listings/products", h.myProducts)
	r.Post("/listings/recipes", h.createRecipe)
	r.Get("/listings/recipes", h.myRecipes)
	r.Post("/listings/equipments", h.createEquipment)
	r.Get("/listings/equipments", h.myEquipments)
}

func (h *MarketplaceHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.Marketplace(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	q := r.URL.Query()
	items = listings.Filter(items, q.Get("search"), q.Get("category"), market.ItemKind(q.Get("type")))
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *MarketplaceHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var p listings.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" || p.Unit == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	p.UserID = s.UserID

	created, err := h.Repo.CreateProduct(r.Context(), p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *MarketplaceHandler) myProducts(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	ps, err := h.Repo.ListProductsBySeller(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": ps})
}

func (h *MarketplaceHandler) createRecipe(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var rc listings.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rc); err != nil || rc.Name == "" || rc.Style == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	rc.UserID = s.UserID

	created, err := h.Repo.CreateRecipe(r.Context(), rc)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *MarketplaceHandler) myRecipes(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	rcs, err := h.Repo.ListRecipesBySeller(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": rcs})
}

func (h *MarketplaceHandler) createEquipment(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var e listings.Equipment
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil || e.Name == "" || e.Type == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	e.UserID = s.UserID

	created, err := h.Repo.CreateEquipment(r.Context(), e)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *MarketplaceHandler) myEquipments(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	es, err := h.Repo.ListEquipmentsBySeller(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"equipments": es})
}
