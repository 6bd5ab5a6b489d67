// Package vision is the Google Cloud Vision client: document text detection
// with structured annotations, no prompt. The MIME-hint, prompt and model
// arguments of Recognize are ignored on purpose; both entry points share the
// one Engine contract and the annotate API takes bare base64 content.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"academy-ai/internal/ocr"
)

type Engine struct {
	APIKey string
	httpc  *http.Client
	base   string
}

func New(key string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(key),
		httpc:  &http.Client{Timeout: 60 * time.Second},
		base:   "https://vision.googleapis.com",
	}
}

func (e *Engine) Name() ocr.Provider { return ocr.ProviderVision }
func (e *Engine) Available() bool    { return e.APIKey != "" }

type annotateRequest struct {
	Requests []annotateItem `json:"requests"`
}

type annotateItem struct {
	Image        imageContent `json:"image"`
	Features     []feature    `json:"features"`
	ImageContext imageContext `json:"imageContext"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type string `json:"type"`
}

type imageContext struct {
	LanguageHints []string `json:"languageHints,omitempty"`
}

type annotateResponse struct {
	Responses []struct {
		FullTextAnnotation *struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
		TextAnnotations []struct {
			Description  string `json:"description"`
			BoundingPoly struct {
				Vertices []struct {
					X int `json:"x"`
					Y int `json:"y"`
				} `json:"vertices"`
			} `json:"boundingPoly"`
		} `json:"textAnnotations"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

func (e *Engine) Recognize(ctx context.Context, img []byte, _, _, _ string) (ocr.RawResult, error) {
	if e.APIKey == "" {
		return ocr.RawResult{}, fmt.Errorf("GOOGLE_VISION_API_KEY is empty")
	}

	reqBody := annotateRequest{Requests: []annotateItem{{
		Image:        imageContent{Content: base64.StdEncoding.EncodeToString(img)},
		Features:     []feature{{Type: "DOCUMENT_TEXT_DETECTION"}},
		ImageContext: imageContext{LanguageHints: []string{"ko", "en"}},
	}}}
	payload, _ := json.Marshal(reqBody)
	req, _ := http.NewRequestWithContext(ctx, "POST",
		e.base+"/v1/images:annotate?key="+e.APIKey, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpc.Do(req)
	if err != nil {
		return ocr.RawResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return ocr.RawResult{}, fmt.Errorf("vision %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var out annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ocr.RawResult{}, err
	}
	if len(out.Responses) == 0 {
		return ocr.RawResult{}, fmt.Errorf("vision: empty response")
	}
	r := out.Responses[0]
	if r.Error != nil {
		return ocr.RawResult{}, fmt.Errorf("vision: %s", r.Error.Message)
	}

	raw := ocr.RawResult{Kind: ocr.RawAnnotations, Model: "document-text-detection"}
	if r.FullTextAnnotation != nil {
		raw.FullText = strings.TrimSpace(r.FullTextAnnotation.Text)
	}
	// textAnnotations[0] is the whole page; the rest are individual blocks
	for i, ta := range r.TextAnnotations {
		if i == 0 {
			if raw.FullText == "" {
				raw.FullText = strings.TrimSpace(ta.Description)
			}
			continue
		}
		a := ocr.RawAnnotation{Text: ta.Description}
		for _, v := range ta.BoundingPoly.Vertices {
			a.Vertices = append(a.Vertices, ocr.Vertex{X: v.X, Y: v.Y})
		}
		raw.Annotations = append(raw.Annotations, a)
	}
	return raw, nil
}
