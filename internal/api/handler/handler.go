// Package handler implements the JSON HTTP handlers for the visibility API.
// Routing is plain chi; request and response bodies are the domain types.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Arjun0606/cabbageseo-sub003/internal/visibility"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

// Deps are the services the handlers dispatch to.
type Deps struct {
	Scanner visibility.Scanner
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts every API endpoint on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/scan", h.CreateScan)
	r.Post("/compare", h.CreateComparison)
	r.Get("/reports/{reportID}", h.GetReport)
	r.Get("/healthz", h.Healthz)

	return r
}

// Healthz reports process liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeJSON serializes v with the given status. Encoding failures are only
// logged; by then the status line is already on the wire.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "could not encode response", zap.Error(err))
	}
}

// writeError maps semantic error kinds onto HTTP statuses. Errors without a
// client-facing kind are logged and collapse into a generic 500 so internals
// never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *serrors.Error
	if errors.As(err, &serr) {
		if status := statusOf(serr.Kind()); status < http.StatusInternalServerError {
			writeJSON(w, r, status, errorResponse{Error: errorBody{
				Code:    serr.Kind().Error(),
				Message: serr.Message(),
			}})

			return
		}
	}

	logger.Error(r.Context(), "request failed", zap.Error(err))
	writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: errorBody{
		Code:    serrors.ErrInternal.Error(),
		Message: "internal error",
	}})
}

func statusOf(k serrors.Kind) int {
	switch k {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
