package ocr

import (
	"context"
	"time"
)

// Provider is the closed set of recognition backends. "mock" only ever
// appears in results produced without credentials; it cannot be requested.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
	ProviderVision    Provider = "vision"
	ProviderMock      Provider = "mock"
)

// ProblemType classifies one extracted problem.
type ProblemType string

const (
	TypeMultipleChoice ProblemType = "multiple_choice"
	TypeShortAnswer    ProblemType = "short_answer"
	TypeEssay          ProblemType = "essay"
)

// Problem is one numbered item segmented from a page. Number stays a string:
// source pages number items as "1", "3)", "문제 2" and renumbering is not
// allowed.
type Problem struct {
	Number  string      `json:"number"`
	Content string      `json:"content"`
	Type    ProblemType `json:"type"`
	Choices []string    `json:"choices,omitempty"`
}

// Result of a single-shot text extraction.
type Result struct {
	Text             string    `json:"text"`
	Confidence       float64   `json:"confidence"`
	Problems         []Problem `json:"problems"`
	Provider         Provider  `json:"provider"`
	Model            string    `json:"model"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
}

// BoundingBox is the axis-aligned box of one text block, pixel coordinates.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type TextBlock struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Box        BoundingBox `json:"bounding_box"`
}

// AnalyzeResult of the structured handwriting path. Expressions is absent
// (nil) when no math was found, never an empty list.
type AnalyzeResult struct {
	Text             string      `json:"text"`
	Confidence       float64     `json:"confidence"`
	Blocks           []TextBlock `json:"blocks"`
	Expressions      []string    `json:"expressions,omitempty"`
	Provider         Provider    `json:"provider"`
	Model            string      `json:"model"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
}

// RawKind says which half of RawResult an engine filled in.
type RawKind string

const (
	RawText        RawKind = "text"        // chat providers: free text, maybe fenced JSON
	RawAnnotations RawKind = "annotations" // cloud OCR: structured blocks with vertices
)

type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RawAnnotation struct {
	Text       string
	Confidence float64
	Vertices   []Vertex
}

// RawResult is the provider-shaped payload before normalization. One shared
// normalization stage downstream turns it into Result / AnalyzeResult.
type RawResult struct {
	Kind        RawKind
	Content     string // RawText
	FullText    string // RawAnnotations
	Annotations []RawAnnotation
	Model       string // model that actually served the call
}

// Engine is one recognition backend. Recognize issues exactly one outbound
// call; no retries, no timeout of its own (callers bound ctx). mimeHint is
// the content type the caller already knows (data-URL prefix, Content-Type
// header) and may be empty; engines sniff the bytes when it is.
type Engine interface {
	Name() Provider
	Available() bool
	Recognize(ctx context.Context, img []byte, mimeHint, prompt, modelOverride string) (RawResult, error)
}

// Default confidences when a provider supplies none: structured parse vs
// degraded plain-text fallback. Downstream always gets a number.
const (
	defaultConfidenceStructured = 0.85
	defaultConfidenceDegraded   = 0.75
)

const mockDelay = 150 * time.Millisecond
