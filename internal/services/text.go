package services

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	latexCommandRe = regexp.MustCompile(`\\[a-zA-Z]+\*?`)
	latexBraceRe   = regexp.MustCompile(`[{}]`)
	// The whitespace class matches \v, \x1c-\x1f and Unicode spaces too.
	difficultyRe = regexp.MustCompile(`(?i)Difficulty Level[\s\v\p{Z}\x1c-\x1f\x85]*:[\s\v\p{Z}\x1c-\x1f\x85]*(Easy|Medium|Hard)`)
)

// CleanLatex strips backslash commands, braces and dollar signs from a
// question. It is a heuristic, not a LaTeX parser.
func CleanLatex(text string) string {
	text = latexCommandRe.ReplaceAllString(text, "")
	text = latexBraceRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "$", "")
	return trimSpace(text)
}

// ExtractDifficulty returns the first "Difficulty Level: <label>" found in
// the reply, title-cased, or nil when there is none.
func ExtractDifficulty(reply string) *string {
	m := difficultyRe.FindStringSubmatch(reply)
	if m == nil {
		return nil
	}
	label := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
	return &label
}

// trimSpace is strings.TrimSpace that also drops the \x1c-\x1f separators.
func trimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	})
}
