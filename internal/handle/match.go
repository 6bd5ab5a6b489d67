package handle

import (
	"encoding/json"
	"net/http"

	"academy-ai/internal/diagram"
)

type MatchBatchRequest struct {
	Requirements []diagram.Requirement `json:"requirements"`
}

func (h *Handle) Match(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req diagram.Requirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Match(req))
}

func (h *Handle) MatchBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req MatchBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.MatchAll(req.Requirements))
}
