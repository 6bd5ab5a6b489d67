package openai

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
	"academy-ai/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
	httpc  *http.Client
	base   string // override for tests
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(key),
		Model:  model,
		httpc:  &http.Client{Timeout: 60 * time.Second},
		base:   "https://api.openai.com",
	}
}

func (e *Engine) Name() ocr.Provider { return ocr.ProviderOpenAI }
func (e *Engine) Available() bool    { return e.APIKey != "" }

func (e *Engine) Recognize(ctx context.Context, img []byte, mimeHint, prompt, modelOverride string) (ocr.RawResult, error) {
	if e.APIKey == "" {
		return ocr.RawResult{}, fmt.Errorf("OPENAI_API_KEY is empty")
	}
	model := e.Model
	if modelOverride != "" {
		model = modelOverride
	}

	mime := util.PickMIME("", mimeHint, img)
	dataURL := util.MakeDataURL(mime, base64.StdEncoding.EncodeToString(img))

	body := map[string]any{
		"model": model,
		"messages": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "text", "text": prompt},
					map[string]any{"type": "image_url", "image_url": map[string]any{"url": dataURL, "detail": "high"}},
				},
			},
		},
		"temperature": 0,
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", e.base+"/v1/chat/completions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return ocr.RawResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return ocr.RawResult{}, fmt.Errorf("openai %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return ocr.RawResult{}, err
	}
	if len(raw.Choices) == 0 {
		return ocr.RawResult{}, fmt.Errorf("openai: empty response")
	}

	return ocr.RawResult{
		Kind:    ocr.RawText,
		Content: strings.TrimSpace(raw.Choices[0].Message.Content),
		Model:   model,
	}, nil
}
