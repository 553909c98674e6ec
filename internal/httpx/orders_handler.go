package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/orders"
)

type OrdersHandler struct {
	Service *orders.Service
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Get("/orders/buyer", h.listBuyer)
	r.Get("/orders/seller", h.listSeller)
	r.Patch("/orders/{id}/status", h.updateStatus)
}

type orderView struct {
	ID              string     `json:"id"`
	BuyerID         string     `json:"buyer_user_id"`
	SellerID        string     `json:"seller_user_id"`
	Quantity        int        `json:"quantity"`
	UnitPriceCents  int64      `json:"unit_price_cents"`
	TotalCents      int64      `json:"total_cents"`
	Status          string     `json:"status"`
	DeliveryAddress string     `json:"delivery_address,omitempty"`
	DeliveryDate    *time.Time `json:"delivery_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toOrderView(o market.Order) orderView {
	return orderView{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		Quantity:        o.Quantity,
		UnitPriceCents:  o.UnitPriceCents,
		TotalCents:      o.TotalCents,
		Status:          string(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		DeliveryDate:    o.DeliveryDate,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (h *OrdersHandler) listBuyer(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	os, err := h.Service.ListByBuyer(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderViews(os))
}

func (h *OrdersHandler) listSeller(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	os, err := h.Service.ListBySeller(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderViews(os))
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var req struct {
		Status market.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !market.ValidStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	o, err := h.Service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), s.UserID, req.Status)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(o))
}

func toOrderViews(os []market.Order) []orderView {
	out := make([]orderView, 0, len(os))
	for _, o := range os {
		out = append(out, toOrderView(o))
	}
	return out
}
