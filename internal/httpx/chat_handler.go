package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ciganahub/cigana-hub/internal/chat"
	"github.com/ciganahub/cigana-hub/internal/ws"
)

type ChatHandler struct {
	Service *chat.Service
	Hub     *ws.Hub
}

func (h *ChatHandler) Register(r chi.Router) {
	r.Get("/chat/contacts", h.contacts)
	r.Get("/chat/messages/{contactID}", h.thread)
	r.Post("/chat/messages", h.send)
	r.Get("/chat/ws", h.socket)
}

func (h *ChatHandler) contacts(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	cs, err := h.Service.Contacts(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if cs == nil {
		// no order history: chat is unavailable, not an error
		writeJSON(w, http.StatusOK, map[string]any{"contacts": []any{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": cs})
}

func (h *ChatHandler) thread(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	ms, err := h.Service.Thread(r.Context(), s.UserID, chi.URLParam(r, "contactID"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": ms})
}

type sendReq struct {
	ReceiverID     string `json:"receiver_user_id"`
	Content        string `json:"content"`
	RelatedOrderID string `json:"related_order_id,omitempty"`
}

func (h *ChatHandler) send(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var req sendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReceiverID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	m, err := h.Service.Send(r.Context(), s.UserID, req.ReceiverID, req.Content, req.RelatedOrderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// socket subscribes the caller to messages addressed to them.
func (h *ChatHandler) socket(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	h.Hub.Serve(w, r, s.UserID)
}
