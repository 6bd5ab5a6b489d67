package ocr

import (
	"regexp"
	"strings"
)

// Numbered-item marker: digit followed by "." / ")" / "]", optionally
// preceded by 문제, at line start.
var problemMarkerRe = regexp.MustCompile(`(?m)^[ \t]*(?:문제\s*)?(\d{1,3})[.)\]][ \t]*`)

// Circled-digit option glyphs used in Korean workbooks.
var circledChoiceRe = regexp.MustCompile(`[①②③④⑤⑥⑦⑧⑨⑩]\s*([^①②③④⑤⑥⑦⑧⑨⑩\n]*)`)

// Inline "N)" option markers; only trusted when at least two are present.
var parenChoiceMarkRe = regexp.MustCompile(`(?:^|\s)(\d)\)\s*`)

// Instructional verbs that mark an essay-type problem.
var essayVerbs = []string{
	"설명하", "서술하", "증명하", "이유를",
	"explain", "prove", "describe", "give reason",
}

// ExtractProblemsFromText segments plain OCR text into numbered problems.
// Deterministic; used whenever a provider did not hand back structured JSON.
// Non-empty input never yields an empty list: with no recognizable marker the
// whole text becomes a single problem.
func ExtractProblemsFromText(text string) []Problem {
	problems := []Problem{}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return problems
	}

	marks := problemMarkerRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range marks {
		number := text[m[2]:m[3]]
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		content := strings.TrimSpace(text[m[1]:end])
		problems = append(problems, buildProblem(number, content))
	}

	if len(problems) == 0 {
		problems = append(problems, buildProblem("1", trimmed))
	}
	return problems
}

func buildProblem(number, content string) Problem {
	p := Problem{Number: number, Content: content, Type: TypeShortAnswer, Choices: []string{}}

	if choices := extractChoices(content); len(choices) >= 2 {
		p.Type = TypeMultipleChoice
		p.Choices = choices
		// keep only the question part ahead of the first option marker
		if idx := firstChoiceIndex(content); idx > 0 {
			p.Content = strings.TrimSpace(content[:idx])
		}
		return p
	}

	lower := strings.ToLower(content)
	for _, v := range essayVerbs {
		if strings.Contains(lower, v) {
			p.Type = TypeEssay
			break
		}
	}
	return p
}

func extractChoices(content string) []string {
	if ms := circledChoiceRe.FindAllStringSubmatch(content, -1); len(ms) >= 2 {
		out := make([]string, 0, len(ms))
		for _, m := range ms {
			out = append(out, strings.TrimSpace(m[1]))
		}
		return out
	}
	marks := parenChoiceMarkRe.FindAllStringSubmatchIndex(content, -1)
	if len(marks) < 2 {
		return nil
	}
	out := make([]string, 0, len(marks))
	for i, m := range marks {
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		out = append(out, strings.TrimSpace(content[m[1]:end]))
	}
	return out
}

func firstChoiceIndex(content string) int {
	if loc := circledChoiceRe.FindStringIndex(content); loc != nil {
		return loc[0]
	}
	if loc := parenChoiceMarkRe.FindStringIndex(content); loc != nil {
		return loc[0]
	}
	return -1
}
