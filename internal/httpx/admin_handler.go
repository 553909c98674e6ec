package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ciganahub/cigana-hub/internal/profiles"
)

// AdminHandler is the back-office: every profile and all four
// registration tables, newest first. Mounted behind RequireAdmin.
type AdminHandler struct {
	Repo *profiles.Repo
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Get("/admin/profiles", h.listProfiles)
	r.Get("/admin/registrations", h.listRegistrations)
}

func (h *AdminHandler) listProfiles(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	ps, err := h.Repo.ListExcept(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": ps})
}

func (h *AdminHandler) listRegistrations(w http.ResponseWriter, r *http.Request) {
	ciganos, err := h.Repo.ListCiganos(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	fabricas, err := h.Repo.ListFabricas(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	fornecedores, err := h.Repo.ListFornecedores(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	bars, err := h.Repo.ListBars(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ciganos":      ciganos,
		"fabricas":     fabricas,
		"fornecedores": fornecedores,
		"bars":         bars,
	})
}
