package anthropic

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
	base   string
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(key),
		Model:  model,
		httpc:  &http.Client{Timeout: 60 * time.Second},
		base:   "https://api.anthropic.com",
	}
}

func (e *Engine) Name() ocr.Provider { return ocr.ProviderAnthropic }
func (e *Engine) Available() bool    { return e.APIKey != "" }

func (e *Engine) Recognize(ctx context.Context, img []byte, mimeHint, prompt, modelOverride string) (ocr.RawResult, error) {
	if e.APIKey == "" {
		return ocr.RawResult{}, fmt.Errorf("ANTHROPIC_API_KEY is empty")
	}
	model := e.Model
	if modelOverride != "" {
		model = modelOverride
	}

	mime := util.PickMIME("", mimeHint, img)
	b64 := base64.StdEncoding.EncodeToString(img)

	body := map[string]any{
		"model":      model,
		"max_tokens": 4096,
		"messages": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "image", "source": map[string]any{
						"type":       "base64",
						"media_type": mime,
						"data":       b64,
					}},
					map[string]any{"type": "text", "text": prompt},
				},
			},
		},
		"temperature": 0,
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", e.base+"/v1/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", e.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := e.httpc.Do(req)
	if err != nil {
		return ocr.RawResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return ocr.RawResult{}, fmt.Errorf("anthropic %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return ocr.RawResult{}, err
	}
	var text string
	for _, c := range raw.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	if strings.TrimSpace(text) == "" {
		return ocr.RawResult{}, fmt.Errorf("anthropic: empty response")
	}

	return ocr.RawResult{
		Kind:    ocr.RawText,
		Content: strings.TrimSpace(text),
		Model:   model,
	}, nil
}
