package handle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"academy-ai/internal/diagram"
	"academy-ai/internal/ocr"
)

func newTestHandle(t *testing.T) *Handle {
	t.Helper()
	catalog, err := diagram.Load("")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return New(ocr.New(ocr.NewEngines()), catalog, nil)
}

func TestMatchEndpoint(t *testing.T) {
	h := newTestHandle(t)
	body := `{"needed":true,"category":"circle","subcategory":"tangent"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/template/match", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Match(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res diagram.MatchResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Sample == nil || res.Score != 1.0 {
		t.Errorf("got %+v, want exact match", res)
	}
}

func TestMatchEndpointRejectsBadJSON(t *testing.T) {
	h := newTestHandle(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/template/match", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.Match(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestMatchEndpointMethod(t *testing.T) {
	h := newTestHandle(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/template/match", nil)
	rec := httptest.NewRecorder()

	h.Match(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestMatchBatchEndpoint(t *testing.T) {
	h := newTestHandle(t)
	body := `{"requirements":[{"needed":false},{"needed":true,"category":"triangle"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/template/match-batch", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.MatchBatch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res []diagram.MatchResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("len = %d, want 2", len(res))
	}
	if res[0].Sample != nil {
		t.Errorf("not-needed requirement matched: %+v", res[0])
	}
	if res[1].Sample == nil || res[1].Score != 0.7 {
		t.Errorf("category match missing: %+v", res[1])
	}
}

func TestProvidersEndpoint(t *testing.T) {
	h := newTestHandle(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/providers", nil)
	rec := httptest.NewRecorder()

	h.Providers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res struct {
		Available []string `json:"available"`
		All       []string `json:"all"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.All) != 4 {
		t.Errorf("all = %v", res.All)
	}
	if len(res.Available) != 0 {
		t.Errorf("available = %v, want none without credentials", res.Available)
	}
}
