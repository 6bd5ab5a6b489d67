package ocr

import (
	"encoding/json"

	"academy-ai/internal/mathtext"
	"academy-ai/internal/util"
)

// modelPayload is the JSON shape chat providers are prompted to return.
// LLMs are not guaranteed to emit it, so parse failure is never an error;
// the raw content degrades to the plain-text path instead.
type modelPayload struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Problems   []Problem   `json:"problems"`
	Blocks     []TextBlock `json:"blocks"`
}

// normalizeExtract turns a provider-shaped payload into a Result. Shared by
// every engine; math-symbol normalization runs here so downstream formatting
// is uniform no matter which provider produced the text.
func normalizeExtract(raw RawResult) Result {
	if raw.Kind == RawAnnotations {
		text := mathtext.NormalizeMathSymbols(raw.FullText)
		return Result{
			Text:       text,
			Confidence: annotationConfidence(raw.Annotations),
			Problems:   ExtractProblemsFromText(text),
		}
	}

	if p, ok := parsePayload(raw.Content); ok {
		text := mathtext.NormalizeMathSymbols(p.Text)
		conf := confidenceOrDefault(p.Confidence, defaultConfidenceStructured)
		problems := p.Problems
		if problems == nil {
			problems = []Problem{}
		}
		for i := range problems {
			problems[i].Content = mathtext.NormalizeMathSymbols(problems[i].Content)
			if problems[i].Choices == nil {
				problems[i].Choices = []string{}
			}
			if problems[i].Type == "" {
				if len(problems[i].Choices) > 0 {
					problems[i].Type = TypeMultipleChoice
				} else {
					problems[i].Type = TypeShortAnswer
				}
			}
		}
		return Result{Text: text, Confidence: conf, Problems: problems}
	}

	// degraded plain-text path
	text := mathtext.NormalizeMathSymbols(raw.Content)
	return Result{
		Text:       text,
		Confidence: defaultConfidenceDegraded,
		Problems:   ExtractProblemsFromText(text),
	}
}

// normalizeAnalyze is the handwriting-path counterpart: bounding boxes for
// structured annotations, math expression extraction on the final text.
func normalizeAnalyze(raw RawResult) AnalyzeResult {
	var out AnalyzeResult

	switch raw.Kind {
	case RawAnnotations:
		out.Text = mathtext.NormalizeMathSymbols(raw.FullText)
		out.Confidence = annotationConfidence(raw.Annotations)
		out.Blocks = make([]TextBlock, 0, len(raw.Annotations))
		for _, a := range raw.Annotations {
			out.Blocks = append(out.Blocks, TextBlock{
				Text:       a.Text,
				Confidence: confidenceOrDefault(a.Confidence, defaultConfidenceStructured),
				Box:        boundsOf(a.Vertices),
			})
		}
	default:
		if p, ok := parsePayload(raw.Content); ok {
			out.Text = mathtext.NormalizeMathSymbols(p.Text)
			out.Confidence = confidenceOrDefault(p.Confidence, defaultConfidenceStructured)
			out.Blocks = p.Blocks
			if out.Blocks == nil {
				out.Blocks = []TextBlock{}
			}
			for i := range out.Blocks {
				out.Blocks[i].Confidence = confidenceOrDefault(out.Blocks[i].Confidence, defaultConfidenceStructured)
			}
		} else {
			out.Text = mathtext.NormalizeMathSymbols(raw.Content)
			out.Confidence = defaultConfidenceDegraded
			out.Blocks = []TextBlock{}
		}
	}

	out.Expressions = mathtext.ExtractExpressions(out.Text)
	return out
}

func parsePayload(content string) (modelPayload, bool) {
	candidate := util.ExtractJSONCandidate(content)
	var p modelPayload
	if err := json.Unmarshal([]byte(candidate), &p); err != nil {
		return modelPayload{}, false
	}
	return p, true
}

// boundsOf computes the axis-aligned box of a vertex polygon.
func boundsOf(vs []Vertex) BoundingBox {
	if len(vs) == 0 {
		return BoundingBox{}
	}
	minX, minY := vs[0].X, vs[0].Y
	maxX, maxY := vs[0].X, vs[0].Y
	for _, v := range vs[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// confidenceOrDefault treats anything outside (0, 1] as not supplied, so a
// provider claiming 1.5 or -0.3 never reaches callers.
func confidenceOrDefault(v, def float64) float64 {
	if v <= 0 || v > 1 {
		return def
	}
	return v
}

func annotationConfidence(as []RawAnnotation) float64 {
	if len(as) == 0 {
		return defaultConfidenceStructured
	}
	sum := 0.0
	n := 0
	for _, a := range as {
		if a.Confidence > 0 && a.Confidence <= 1 {
			sum += a.Confidence
			n++
		}
	}
	if n == 0 {
		return defaultConfidenceStructured
	}
	return sum / float64(n)
}
