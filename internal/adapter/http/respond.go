package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"backoffice/internal/core/port"
)

type errorBody struct {
	Error string `json:"error"`
}

// dataBody is the {"data": ...} envelope of the catalog endpoints.
type dataBody struct {
	Data any `json:"data"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail maps use case errors to HTTP statuses. Unexpected errors are
// logged and hidden from the client.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, port.ErrInvalidStatus), errors.Is(err, port.ErrInvalidSettings):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
