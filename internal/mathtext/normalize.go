// Package mathtext holds the deterministic text post-processing shared by
// every OCR provider path: math symbol normalization and math expression
// extraction. Everything here is pure string work, no I/O.
package mathtext

import "regexp"

// rule is one pattern -> replacement step. Rules run in listed order; the
// order matters (caret exponents must be rewritten before the bare
// digit-after-letter rule sees the text).
type rule struct {
	re   *regexp.Regexp
	repl string
}

var normalizeRules = []rule{
	// multiplication / division glyphs
	{regexp.MustCompile(`\*`), "×"},
	{regexp.MustCompile(`(\d)\s*:\s*(\d)`), "$1 ÷ $2"},

	// caret exponents
	{regexp.MustCompile(`\^2`), "²"},
	{regexp.MustCompile(`\^3`), "³"},

	// bare digit after a letter is assumed to be an exponent (known
	// ambiguity, kept on purpose)
	{regexp.MustCompile(`([a-zA-Z])2`), "$1²"},
	{regexp.MustCompile(`([a-zA-Z])3`), "$1³"},

	// ASCII inequality sequences
	{regexp.MustCompile(`<=`), "≤"},
	{regexp.MustCompile(`>=`), "≥"},
	{regexp.MustCompile(`!=`), "≠"},

	// Korean words for Greek letters
	{regexp.MustCompile(`알파`), "α"},
	{regexp.MustCompile(`베타`), "β"},
	{regexp.MustCompile(`감마`), "γ"},
	{regexp.MustCompile(`델타`), "δ"},
	{regexp.MustCompile(`세타`), "θ"},
	{regexp.MustCompile(`파이`), "π"},

	// collapse repeated whitespace / blank lines
	{regexp.MustCompile(`[ \t]{2,}`), " "},
	{regexp.MustCompile(`[ \t]+\n`), "\n"},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

// NormalizeMathSymbols rewrites raw OCR text into uniform math notation.
// The rule list is fixed and order-sensitive; running the function on already
// normalized text is a no-op, so it is safe to apply defensively.
func NormalizeMathSymbols(s string) string {
	for _, r := range normalizeRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
