package ocr

import (
	"context"
	"time"
)

// Mock mode: with no provider credentials configured at all, every call
// returns this fixed sample after a short artificial delay, so the rest of
// the system stays usable and testable without live API keys. Two calls with
// the same arguments are structurally identical; only the measured
// processing time varies.

const mockText = `1. 다음을 계산하시오. 3 × 4 + 2 = ?
2. x² = 9일 때 x의 값을 모두 구하시오.
3. 삼각형의 내각의 합이 180°인 이유를 설명하시오.`

func mockProblems() []Problem {
	return []Problem{
		{Number: "1", Content: "다음을 계산하시오. 3 × 4 + 2 = ?", Type: TypeShortAnswer, Choices: []string{}},
		{Number: "2", Content: "x² = 9일 때 x의 값을 모두 구하시오.", Type: TypeShortAnswer, Choices: []string{}},
		{Number: "3", Content: "삼각형의 내각의 합이 180°인 이유를 설명하시오.", Type: TypeEssay, Choices: []string{}},
	}
}

func mockExtract(ctx context.Context) Result {
	mockSleep(ctx)
	return Result{
		Text:       mockText,
		Confidence: 0.99,
		Problems:   mockProblems(),
		Provider:   ProviderMock,
		Model:      "mock",
	}
}

func mockAnalyze(ctx context.Context) AnalyzeResult {
	mockSleep(ctx)
	text := "x + 3 = 7\nx = 4"
	return AnalyzeResult{
		Text:       text,
		Confidence: 0.99,
		Blocks: []TextBlock{
			{Text: "x + 3 = 7", Confidence: 0.99, Box: BoundingBox{X: 40, Y: 32, Width: 180, Height: 36}},
			{Text: "x = 4", Confidence: 0.99, Box: BoundingBox{X: 40, Y: 88, Width: 96, Height: 34}},
		},
		Expressions: []string{"x + 3 = 7", "x = 4"},
		Provider:    ProviderMock,
		Model:       "mock",
	}
}

func mockSleep(ctx context.Context) {
	t := time.NewTimer(mockDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
