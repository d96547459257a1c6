// Package definition infers an acronym's expansion from nearby text using an
// ordered table of pattern strategies. The first strategy that matches
// anywhere in the text wins.
package definition

import (
	"regexp"
	"strings"
)

// capture matches one definition phrase: word characters, whitespace, commas,
// slashes and hyphens. It stops at unrelated punctuation such as a period or
// a closing parenthesis.
const capture = `([\w\s,/-]+)`

// strategies are tried in order. Each builds a case-insensitive pattern
// around the already-escaped acronym; the definition is the first capture
// group.
var strategies = []struct {
	name  string
	build func(acronym string) string
}{
	{"parenthetical", func(a string) string { return a + `\s*\(` + capture + `\)` }},         // ABC (American Broadcasting Company)
	{"reverse-parenthetical", func(a string) string { return `\(` + capture + `\)\s*` + a }}, // (American Broadcasting Company) ABC
	{"preceding-phrase", func(a string) string { return capture + `\s*\(` + a + `\)` }},      // American Broadcasting Company (ABC)
	{"colon", func(a string) string { return a + `:\s*` + capture }},                         // ABC: American Broadcasting Company
	{"dash", func(a string) string { return a + `\s*-\s*` + capture }},                       // ABC - American Broadcasting Company
	{"stands-for", func(a string) string { return a + `\s+stands\s+for\s+` + capture }},
	{"means", func(a string) string { return a + `\s+means\s+` + capture }},
}

// Find searches text for a definition of acronym. Matching is
// case-insensitive, and the acronym is escaped so tokens containing slash,
// hyphen or ampersand match literally. The returned definition is trimmed of
// surrounding whitespace. Find never fails; ok is false when no strategy
// matched.
func Find(text, acronym string) (definition string, ok bool) {
	escaped := regexp.QuoteMeta(acronym)
	for _, s := range strategies {
		re, err := regexp.Compile(`(?i)` + s.build(escaped))
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
