package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/controller"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

type scanRequest struct {
	Domain string `json:"domain"`
}

// CreateScan runs a full visibility scan for one domain and returns the
// report synchronously. The client IP keys the rate limit.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	report, err := h.deps.Scanner.Scan(r.Context(), controller.GetClientIP(r), req.Domain)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, report)
}
