package handle

import (
	"net/http"

	"academy-ai/internal/ocr"
)

// Providers lets a caller build provider-selection UI without attempting a
// call. "all" is the closed set of requestable providers.
func (h *Handle) Providers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"available": h.ocr.AvailableProviders(),
		"all": []ocr.Provider{
			ocr.ProviderOpenAI,
			ocr.ProviderAnthropic,
			ocr.ProviderGemini,
			ocr.ProviderVision,
		},
	})
}
