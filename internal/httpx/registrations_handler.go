package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/profiles"
	"github.com/ciganahub/cigana-hub/internal/storage"
)

type RegistrationsHandler struct {
	Repo  *profiles.Repo
	Logos storage.Store
}

func (h *RegistrationsHandler) Register(r chi.Router) {
	r.Get("/profile", h.profile)
	r.Post("/registrations/cigano", h.upsertCigano)
	r.Get("/registrations/cigano/me", h.getCigano)
	r.Post("/registrations/fabrica", h.upsertFabrica)
	r.Get("/registrations/fabrica/me", h.getFabrica)
	r.Post("/registrations/fornecedor", h.upsertFornecedor)
	r.Get("/registrations/fornecedor/me", h.getFornecedor)
	r.Post("/registrations/bar", h.upsertBar)
	r.Get("/registrations/bar/me", h.getBar)
	r.Post("/registrations/logo", h.uploadLogo)
}

func (h *RegistrationsHandler) profile(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	p, err := h.Repo.Get(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": p.UserID, "user_type": p.Type, "admin": s.Admin,
	})
}

func (h *RegistrationsHandler) upsertCigano(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var reg profiles.CiganoRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil || reg.NomeRazaoSocial == "" || reg.CNPJCPF == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	reg.UserID = s.UserID

	if err := h.Repo.Create(r.Context(), s.UserID, market.TypeCigano); err != nil {
		writeErr(w, err)
		return
	}
	if err := h.Repo.UpsertCigano(r.Context(), reg); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *RegistrationsHandler) getCigano(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	reg, err := h.Repo.GetCigano(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *RegistrationsHandler) upsertFabrica(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var reg profiles.FabricaRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil || reg.NomeRazaoSocial == "" || reg.CNPJ == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	reg.UserID = s.UserID

	if err := h.Repo.Create(r.Context(), s.UserID, market.TypeFabrica); err != nil {
		writeErr(w, err)
		return
	}
	if err := h.Repo.UpsertFabrica(r.Context(), reg); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *RegistrationsHandler) getFabrica(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	reg, err := h.Repo.GetFabrica(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *RegistrationsHandler) upsertFornecedor(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var reg profiles.FornecedorRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil || reg.NomeRazaoSocial == "" || reg.CNPJ == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	reg.UserID = s.UserID

	if err := h.Repo.Create(r.Context(), s.UserID, market.TypeFornecedor); err != nil {
		writeErr(w, err)
		return
	}
	if err := h.Repo.UpsertFornecedor(r.Context(), reg); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *RegistrationsHandler) getFornecedor(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	reg, err := h.Repo.GetFornecedor(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *RegistrationsHandler) upsertBar(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	var reg profiles.BarRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil || reg.NomeRazaoSocial == "" || reg.CNPJ == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	reg.UserID = s.UserID

	if err := h.Repo.Create(r.Context(), s.UserID, market.TypeBar); err != nil {
		writeErr(w, err)
		return
	}
	if err := h.Repo.UpsertBar(r.Context(), reg); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *RegistrationsHandler) getBar(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())
	reg, err := h.Repo.GetBar(r.Context(), s.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

// uploadLogo stores the multipart "logo" file and returns its public
// URL; the client submits the URL back with the registration form.
func (h *RegistrationsHandler) uploadLogo(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFrom(r.Context())

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("logo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing logo file"})
		return
	}
	defer file.Close()

	path := fmt.Sprintf("logos/%s/%s%s", s.UserID, uuid.NewString(), filepath.Ext(header.Filename))
	if err := h.Logos.Upload(path, file); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"logo_url": h.Logos.PublicURL(path)})
}
