package gemini

import (
	"context"
	"fmt"
	"strings"

	"academy-ai/internal/ocr"
	"academy-ai/internal/util"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() ocr.Provider { return ocr.ProviderGemini }
func (e *Engine) Available() bool    { return e.APIKey != "" }

func (e *Engine) Recognize(ctx context.Context, img []byte, mimeHint, prompt, modelOverride string) (ocr.RawResult, error) {
	if e.APIKey == "" {
		return ocr.RawResult{}, fmt.Errorf("GEMINI_API_KEY is empty")
	}
	model := e.Model
	if modelOverride != "" {
		model = modelOverride
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return ocr.RawResult{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}

	mime := util.PickMIME("", mimeHint, img)
	resp, err := m.GenerateContent(ctx,
		genai.Text(prompt),
		&genai.Blob{MIMEType: mime, Data: img},
	)
	if err != nil {
		return ocr.RawResult{}, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ocr.RawResult{}, fmt.Errorf("gemini: empty response")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return ocr.RawResult{}, fmt.Errorf("gemini: no text parts")
	}

	return ocr.RawResult{
		Kind:    ocr.RawText,
		Content: out,
		Model:   model,
	}, nil
}

func ptrFloat32(v float32) *float32 { return &v }
