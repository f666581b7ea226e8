package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

// GetReport serves a previously persisted report by its shareable ID. An ID
// that is not even a UUID gets the same 404 as an unknown one, so the
// endpoint does not reveal which IDs are well-formed.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "reportID")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "report %s not found", raw))

		return
	}

	report, err := h.deps.Scanner.Report(r.Context(), domain.ReportID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, report)
}
