package ocr

import "testing"

func TestNormalizeExtractFencedJSON(t *testing.T) {
	raw := RawResult{Kind: RawText, Content: "```json\n{\"text\":\"hi\",\"problems\":[]}\n```"}
	out := normalizeExtract(raw)
	if out.Text != "hi" {
		t.Errorf("text = %q, want hi", out.Text)
	}
	if out.Problems == nil || len(out.Problems) != 0 {
		t.Errorf("problems = %v, want empty (no plain-text fallback)", out.Problems)
	}
	if out.Confidence != defaultConfidenceStructured {
		t.Errorf("confidence = %v, want %v", out.Confidence, defaultConfidenceStructured)
	}
}

func TestNormalizeExtractExplicitConfidence(t *testing.T) {
	raw := RawResult{Kind: RawText, Content: `{"text":"x","confidence":0.6,"problems":[]}`}
	out := normalizeExtract(raw)
	if out.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", out.Confidence)
	}
}

func TestNormalizeExtractConfidenceOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"above one", `{"text":"hi","confidence":1.5,"problems":[]}`},
		{"negative", `{"text":"hi","confidence":-0.3,"problems":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := normalizeExtract(RawResult{Kind: RawText, Content: tt.in})
			if out.Confidence != defaultConfidenceStructured {
				t.Errorf("confidence = %v, want default %v", out.Confidence, defaultConfidenceStructured)
			}
		})
	}
}

func TestNormalizeAnalyzeConfidenceOutOfRange(t *testing.T) {
	raw := RawResult{Kind: RawText,
		Content: `{"text":"x = 1","confidence":2.0,"blocks":[{"text":"x = 1","bounding_box":{"x":1,"y":2,"width":3,"height":4}}]}`}
	out := normalizeAnalyze(raw)
	if out.Confidence != defaultConfidenceStructured {
		t.Errorf("confidence = %v, want default %v", out.Confidence, defaultConfidenceStructured)
	}
	if len(out.Blocks) != 1 {
		t.Fatalf("blocks = %+v", out.Blocks)
	}
	// omitted block confidence gets the structured default, same as the
	// annotations path
	if out.Blocks[0].Confidence != defaultConfidenceStructured {
		t.Errorf("block confidence = %v, want %v", out.Blocks[0].Confidence, defaultConfidenceStructured)
	}
}

func TestNormalizeExtractDegradedPlainText(t *testing.T) {
	raw := RawResult{Kind: RawText, Content: "1. 3*4를 계산하시오\n2. x^2 = 9를 풀어라"}
	out := normalizeExtract(raw)
	if out.Confidence != defaultConfidenceDegraded {
		t.Errorf("confidence = %v, want %v", out.Confidence, defaultConfidenceDegraded)
	}
	if len(out.Problems) != 2 {
		t.Fatalf("problems = %+v", out.Problems)
	}
	// symbol normalization runs before segmentation
	if out.Problems[0].Content != "3×4를 계산하시오" {
		t.Errorf("content = %q", out.Problems[0].Content)
	}
	if out.Problems[1].Content != "x² = 9를 풀어라" {
		t.Errorf("content = %q", out.Problems[1].Content)
	}
}

func TestNormalizeExtractStructuredDefaults(t *testing.T) {
	raw := RawResult{Kind: RawText, Content: `{"text":"t","problems":[{"number":"1","content":"c","choices":["a","b"]}]}`}
	out := normalizeExtract(raw)
	p := out.Problems[0]
	if p.Type != TypeMultipleChoice {
		t.Errorf("type = %q, want multiple_choice inferred from choices", p.Type)
	}
}

func TestNormalizeExtractAnnotations(t *testing.T) {
	raw := RawResult{
		Kind:     RawAnnotations,
		FullText: "1. 12 : 3을 계산하시오",
		Annotations: []RawAnnotation{
			{Text: "12", Confidence: 0.9},
			{Text: ":", Confidence: 0.7},
		},
	}
	out := normalizeExtract(raw)
	if out.Text != "1. 12 ÷ 3을 계산하시오" {
		t.Errorf("text = %q", out.Text)
	}
	if out.Confidence != 0.8 {
		t.Errorf("confidence = %v, want mean 0.8", out.Confidence)
	}
	if len(out.Problems) != 1 {
		t.Errorf("problems = %+v", out.Problems)
	}
}

func TestNormalizeAnalyzeBoundingBoxes(t *testing.T) {
	raw := RawResult{
		Kind:     RawAnnotations,
		FullText: "x + 3 = 7",
		Annotations: []RawAnnotation{
			{Text: "x", Vertices: []Vertex{{X: 10, Y: 20}, {X: 50, Y: 20}, {X: 50, Y: 44}, {X: 10, Y: 44}}},
		},
	}
	out := normalizeAnalyze(raw)
	if len(out.Blocks) != 1 {
		t.Fatalf("blocks = %+v", out.Blocks)
	}
	b := out.Blocks[0].Box
	if b.X != 10 || b.Y != 20 || b.Width != 40 || b.Height != 24 {
		t.Errorf("box = %+v", b)
	}
	// no confidence from the provider -> fixed default
	if out.Blocks[0].Confidence != defaultConfidenceStructured {
		t.Errorf("confidence = %v", out.Blocks[0].Confidence)
	}
	if len(out.Expressions) != 1 || out.Expressions[0] != "x + 3 = 7" {
		t.Errorf("expressions = %v", out.Expressions)
	}
}

func TestNormalizeAnalyzeNoMathMeansAbsent(t *testing.T) {
	raw := RawResult{Kind: RawText, Content: "수식이 없는 손글씨 메모"}
	out := normalizeAnalyze(raw)
	if out.Expressions != nil {
		t.Errorf("expressions = %v, want nil", out.Expressions)
	}
	if out.Blocks == nil {
		t.Error("blocks must be non-nil")
	}
}

func TestBoundsOfSkewedPolygon(t *testing.T) {
	b := boundsOf([]Vertex{{X: 5, Y: 9}, {X: 40, Y: 3}, {X: 44, Y: 30}, {X: 2, Y: 28}})
	want := BoundingBox{X: 2, Y: 3, Width: 42, Height: 27}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}
