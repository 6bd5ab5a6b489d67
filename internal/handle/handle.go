// Package handle is the JSON-over-HTTP surface of the service.
package handle

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"academy-ai/internal/diagram"
	"academy-ai/internal/ocr"
	"academy-ai/internal/store"
)

type Handle struct {
	ocr     *ocr.Client
	catalog *diagram.Catalog
	repo    *store.OcrRepo // nil when the cache is off
}

func New(client *ocr.Client, catalog *diagram.Catalog, repo *store.OcrRepo) *Handle {
	return &Handle{ocr: client, catalog: catalog, repo: repo}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// requestDeadline honors X-Request-Timeout (seconds) or ?timeoutSec, default
// 180s. This is the only timeout the service imposes; the aggregator itself
// does not.
func requestDeadline(r *http.Request) time.Duration {
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return 180 * time.Second
}
