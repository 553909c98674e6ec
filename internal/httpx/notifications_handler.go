package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ciganahub/cigana-hub/internal/notifications"
)

type NotificationsHandler struct {
	Repo *notifications.Repo
}

func (h *NotificationsHandler) Register(r chi.Router) {
	r.Get("/notifications", h.list)
	r.Post("/notifications/{id}/read", h.markRead)
}

func (h *NotificationsHandler) list(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	ns, err := h.Repo.ListByUser(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": ns})
}

func (h *NotificationsHandler) markRead(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	if err := h.Repo.MarkRead(r.Context(), chi.URLParam(r, "id"), s.UserID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
