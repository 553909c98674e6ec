package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ciganahub/cigana-hub/internal/cart"
	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/orders"
)

type CartHandler struct {
	Store  cart.Store
	Orders *orders.Service
}

func (h *CartHandler) Register(r chi.Router) {
	r.Get("/cart", h.get)
	r.Post("/cart/items", h.addItem)
	r.Put("/cart/items/{id}", h.updateItem)
	r.Delete("/cart/items/{id}", h.removeItem)
	r.Delete("/cart", h.clear)
	r.Post("/checkout", h.checkout)
}

type cartResp struct {
	Items      []market.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalCents int64             `json:"total_cents"`
}

func (h *CartHandler) respond(w http.ResponseWriter, items []market.CartItem) {
	count, total := cart.Totals(items)
	if items == nil {
		items = []market.CartItem{}
	}
	writeJSON(w, http.StatusOK, cartResp{Items: items, TotalItems: count, TotalCents: total})
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	items, err := h.Store.Load(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.respond(w, items)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var it market.CartItem
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if it.Name == "" || it.SellerID == "" || it.Quantity <= 0 || it.PriceCents < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	if it.SellerID == s.UserID {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "cannot buy your own listing"})
		return
	}

	items, err := h.Store.Load(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	items = cart.Add(items, it)
	if err := h.Store.Save(r.Context(), s.UserID, items); err != nil {
		writeErr(w, err)
		return
	}
	h.respond(w, items)
}

func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	items, err := h.Store.Load(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	items = cart.UpdateQuantity(items, chi.URLParam(r, "id"), req.Quantity)
	if err := h.Store.Save(r.Context(), s.UserID, items); err != nil {
		writeErr(w, err)
		return
	}
	h.respond(w, items)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	items, err := h.Store.Load(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	items = cart.Remove(items, chi.URLParam(r, "id"))
	if err := h.Store.Save(r.Context(), s.UserID, items); err != nil {
		writeErr(w, err)
		return
	}
	h.respond(w, items)
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	if err := h.Store.Clear(r.Context(), s.UserID); err != nil {
		writeErr(w, err)
		return
	}
	h.respond(w, nil)
}

type checkoutReq struct {
	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

type checkoutResp struct {
	Orders []orderView `json:"orders"`
}

func (h *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var req checkoutReq
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
	}

	created, err := h.Orders.Checkout(r.Context(), s.UserID, req.DeliveryAddress, req.Notes)
	if err != nil {
		writeErr(w, err)
		return
	}
	views := make([]orderView, 0, len(created))
	for _, o := range created {
		views = append(views, toOrderView(o))
	}
	writeJSON(w, http.StatusCreated, checkoutResp{Orders: views})
}
