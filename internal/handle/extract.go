package handle

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"academy-ai/internal/ocr"
	"academy-ai/internal/store"
	"academy-ai/internal/util"
)

const cacheMaxAge = 24 * time.Hour

type ExtractRequest struct {
	ImageB64 string `json:"image_b64"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

type ExtractURLRequest struct {
	ImageURL string `json:"image_url"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

func (h *Handle) Extract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req ExtractRequest
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

	hash := util.SHA256Hex(img)
	if cached := h.cacheGet(ctx, hash, req.Provider, req.Model); cached != nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	out, err := h.ocr.ExtractText(ctx, img, mimeHint, ocr.Provider(req.Provider), req.Model)
	if err != nil {
		writeErr(w, http.StatusBadGateway, "extract error: "+err.Error())
		return
	}

	h.cachePut(ctx, hash, req.Provider, req.Model, out)
	writeJSON(w, http.StatusOK, out)
}

func (h *Handle) ExtractURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req ExtractURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		writeErr(w, http.StatusBadRequest, "image_url is empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r))
	defer cancel()

	out, err := h.ocr.ExtractTextFromURL(ctx, req.ImageURL, ocr.Provider(req.Provider), req.Model)
	if err != nil {
		writeErr(w, http.StatusBadGateway, "extract error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// cacheGet / cachePut wrap the optional repo; the cache key is the
// caller-requested provider/model pair, so "no preference" requests share
// one key. Any repo error is just a miss.
func (h *Handle) cacheGet(ctx context.Context, hash, provider, model string) *ocr.Result {
	if h.repo == nil {
		return nil
	}
	row, err := h.repo.FindByHash(ctx, hash, provider, model, cacheMaxAge)
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("ocr cache read: %v", err)
		}
		return nil
	}
	return &row.Result
}

func (h *Handle) cachePut(ctx context.Context, hash, provider, model string, res ocr.Result) {
	if h.repo == nil {
		return
	}
	if err := h.repo.Upsert(ctx, hash, provider, model, res); err != nil {
		log.Printf("ocr cache write: %v", err)
	}
}
