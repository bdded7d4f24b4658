package httpadapter

import (
	"net/http"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// handleCatalogProducts serves the stored products in the catalog
// envelope so the console can act as its own catalog source.
func (h *Handler) handleCatalogProducts(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListProducts(r.Context(), productFilter(r.URL.Query(), port.Page{}))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	products := make([]domain.Product, len(out.Items))
	for i, row := range out.Items {
		products[i] = row.Record
	}
	writeJSON(w, http.StatusOK, dataBody{Data: products})
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataBody{Data: cats})
}

// handleSyncCatalog pulls the external catalog into the products store.
func (h *Handler) handleSyncCatalog(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.SyncCatalog(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"synced": n})
}
