package util

import "strings"

func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractJSONCandidate pulls the JSON payload out of a model reply.
// If the reply carries a ```json fenced block the block content is returned,
// otherwise the whole reply (minus stray fences) is the candidate. The result
// is not guaranteed to parse; callers fall back to plain text when it doesn't.
func ExtractJSONCandidate(s string) string {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "```json"); start >= 0 {
		rest := s[start+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	return StripCodeFences(s)
}
