package mathtext

import (
	"regexp"
	"strings"
)

// Fixed pattern list for pulling math expressions out of handwriting text.
// Applied in listed order; matches are deduplicated by exact string while
// keeping first-seen order.
var exprPatterns = []*regexp.Regexp{
	// equation-like assignments: x + 3 = 7, y=2x+1
	regexp.MustCompile(`[0-9a-zA-Z][0-9a-zA-Z²³ +\-×÷*/^().]*=\s*[0-9a-zA-Z²³ +\-×÷*/^().]+`),
	// fractions
	regexp.MustCompile(`\d+\s*/\s*\d+`),
	// roots
	regexp.MustCompile(`√\s*\(?[0-9a-zA-Z+\-× ]+\)?`),
	regexp.MustCompile(`sqrt\([^)]*\)`),
	// exponents
	regexp.MustCompile(`[a-zA-Z0-9]+[²³]`),
	regexp.MustCompile(`[a-zA-Z0-9]+\^[0-9]+`),
	// trig / log calls
	regexp.MustCompile(`(?:sin|cos|tan|log|ln)\s*\(?[0-9a-zA-Zθπ°]+\)?`),
	// integral / summation notation
	regexp.MustCompile(`[∫∑][^\n]{0,40}`),
	// lone constants
	regexp.MustCompile(`[π∞]`),
}

// ExtractExpressions returns the math expressions found in normalized text.
// Returns nil when nothing matches so callers can distinguish "no math found"
// from an empty-but-present list.
func ExtractExpressions(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, re := range exprPatterns {
		for _, m := range re.FindAllString(s, -1) {
			m = strings.TrimSpace(m)
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
