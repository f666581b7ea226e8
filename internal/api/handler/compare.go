package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/controller"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

type compareRequest struct {
	Domain1 string `json:"domain1"`
	Domain2 string `json:"domain2"`
}

// CreateComparison scans two domains head to head. It costs the caller two
// rate-limit slots.
func (h *Handler) CreateComparison(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	comparison, err := h.deps.Scanner.Compare(r.Context(), controller.GetClientIP(r), req.Domain1, req.Domain2)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, comparison)
}
