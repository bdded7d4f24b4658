package httpadapter

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/core/domain"
)

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// handleUpdateSettings replaces the whole settings document.
func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in domain.SystemSettings
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	s, err := h.svc.UpdateSettings(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.ResetSettings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	s, _ := domain.SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, s)
}
