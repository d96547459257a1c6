// Package collect turns raw shape text into the candidate-token stream
// consumed by the classifier.
package collect

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// tokenRe captures maximal word-boundary-delimited runs of word characters,
// slashes, ampersands and hyphens, so compound tokens like L/TA, I&T and
// X-RAY survive as single candidates.
var tokenRe = regexp.MustCompile(`\b[\w/&-]+\b`)

// Tokens extracts candidate tokens from one shape's text. Slide text runs
// frequently carry full-width or ligature glyphs from copy-pasted content;
// NFKC folding maps those onto the ASCII forms the classifier patterns
// expect.
func Tokens(text string) []string {
	return tokenRe.FindAllString(norm.NFKC.String(text), -1)
}
