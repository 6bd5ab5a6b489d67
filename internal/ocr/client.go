// Package ocr aggregates heterogeneous vision/OCR providers behind one
// result shape. Each top-level call issues at most one outbound request;
// fallback across providers and the credential-free mock mode are handled
// here, provider call failures propagate to the caller.
package ocr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"academy-ai/internal/ocr/prompt"
)

type Client struct {
	engines *Engines
	httpc   *http.Client // image URL fetches only
}

func New(engines *Engines) *Client {
	return &Client{
		engines: engines,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// ExtractText runs single-shot OCR over an image. provider may be empty (no
// preference) or one of the closed set; mimeHint and modelOverride may be
// empty.
func (c *Client) ExtractText(ctx context.Context, img []byte, mimeHint string, provider Provider, modelOverride string) (Result, error) {
	start := time.Now()

	eng, err := c.engines.resolve(provider)
	if err != nil {
		return Result{}, err
	}
	if eng == nil {
		out := mockExtract(ctx)
		out.ProcessingTimeMs = time.Since(start).Milliseconds()
		return out, nil
	}

	raw, err := eng.Recognize(ctx, img, mimeHint, prompt.ExtractText, modelOverride)
	if err != nil {
		return Result{}, err
	}

	out := normalizeExtract(raw)
	out.Provider = eng.Name()
	out.Model = raw.Model
	out.ProcessingTimeMs = time.Since(start).Milliseconds()
	return out, nil
}

// ExtractTextFromURL fetches the image and delegates to ExtractText.
func (c *Client) ExtractTextFromURL(ctx context.Context, url string, provider Provider, modelOverride string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("image url: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("image url: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("image url: status %d", resp.StatusCode)
	}
	img, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return Result{}, fmt.Errorf("image url: %w", err)
	}
	if len(img) == 0 {
		return Result{}, fmt.Errorf("image url: empty body")
	}
	hint, _, _ := strings.Cut(resp.Header.Get("Content-Type"), ";")
	return c.ExtractText(ctx, img, strings.TrimSpace(hint), provider, modelOverride)
}

// AnalyzeHandwriting runs the structured handwriting path: text blocks with
// bounding boxes plus extracted math expressions.
func (c *Client) AnalyzeHandwriting(ctx context.Context, img []byte, mimeHint string, provider Provider) (AnalyzeResult, error) {
	start := time.Now()

	eng, err := c.engines.resolve(provider)
	if err != nil {
		return AnalyzeResult{}, err
	}
	if eng == nil {
		out := mockAnalyze(ctx)
		out.ProcessingTimeMs = time.Since(start).Milliseconds()
		return out, nil
	}

	raw, err := eng.Recognize(ctx, img, mimeHint, prompt.AnalyzeHandwriting, "")
	if err != nil {
		return AnalyzeResult{}, err
	}

	out := normalizeAnalyze(raw)
	out.Provider = eng.Name()
	out.Model = raw.Model
	out.ProcessingTimeMs = time.Since(start).Milliseconds()
	return out, nil
}

// IsProviderAvailable and AvailableProviders expose availability without
// attempting a call.
func (c *Client) IsProviderAvailable(p Provider) bool { return c.engines.IsAvailable(p) }
func (c *Client) AvailableProviders() []Provider      { return c.engines.Available() }
