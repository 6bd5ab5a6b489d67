package handle

import (
	"context"
	"encoding/json"
	"net/http"

	"academy-ai/internal/ocr"
	"academy-ai/internal/util"
)

type AnalyzeRequest struct {
	ImageB64 string `json:"image_b64"`
	Provider string `json:"provider,omitempty"`
}

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	img, mimeHint, err := util.DecodeBase64MaybeDataURL(req.ImageB64)
	if err != nil || len(img) == 0 {
		writeErr(w, http.StatusBadRequest, "bad image_b64")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r))
	defer cancel()

	out, err := h.ocr.AnalyzeHandwriting(ctx, img, mimeHint, ocr.Provider(req.Provider))
	if err != nil {
		writeErr(w, http.StatusBadGateway, "analyze error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
