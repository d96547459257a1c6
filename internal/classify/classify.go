package classify

import (
	"regexp"
	"strings"
)

// defaultExclusions are short English words and abbreviations that satisfy an
// acceptance pattern but are never acronyms. They apply regardless of any
// user-supplied exclusion table.
var defaultExclusions = []string{"I", "A", "OK", "ID", "NO", "AM", "PM", "THE"}

// rejectRules run before the acceptance patterns. A token matching any of
// them is never a candidate, even when an acceptance pattern would also
// match (identifier codes like ABC-12345 overlap the hyphen pattern).
var rejectRules = []struct {
	name string
	re   *regexp.Regexp
}{
	{"all-digits", regexp.MustCompile(`^\d+$`)},
	{"letter-numeric-code", regexp.MustCompile(`^[A-Z]+-\d{2,5}$`)},
	{"numeric-range", regexp.MustCompile(`^(\d+-)+\d+$`)},
}

// acceptPatterns each describe one valid acronym shape. A token passing the
// reject rules is a candidate iff it fully matches at least one of them.
var acceptPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"uppercase", regexp.MustCompile(`^[A-Z]{2,6}$`)},             // NASA
	{"digit-prefixed", regexp.MustCompile(`^[0-9][A-Z]{1,5}$`)},   // 4CYC
	{"ampersand", regexp.MustCompile(`^[A-Z]&[A-Z]$`)},            // I&T
	{"slash", regexp.MustCompile(`^[A-Z]+/[A-Z]+$`)},              // L/TA
	{"hyphen", regexp.MustCompile(`^[A-Z0-9]+-[A-Z0-9]+$`)},       // X-RAY
}

// Classifier decides whether a token looks like an acronym. It is a pure
// predicate: construction fixes the exclusion set and IsCandidate never
// fails for any input.
type Classifier struct {
	exclusions map[string]struct{}
}

// New builds a Classifier. The supplied exclusions are uppercased and
// unioned with the built-in defaults.
func New(exclusions map[string]struct{}) *Classifier {
	set := make(map[string]struct{}, len(exclusions)+len(defaultExclusions))
	for _, w := range defaultExclusions {
		set[w] = struct{}{}
	}
	for w := range exclusions {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return &Classifier{exclusions: set}
}

// IsCandidate reports whether token could be an acronym. Precedence is
// exclusion, then numeric-code rejection, then pattern acceptance; the first
// matching rule decides.
func (c *Classifier) IsCandidate(token string) bool {
	w := strings.ToUpper(token)
	if _, excluded := c.exclusions[w]; excluded {
		return false
	}
	for _, r := range rejectRules {
		if r.re.MatchString(w) {
			return false
		}
	}
	for _, p := range acceptPatterns {
		if p.re.MatchString(w) {
			return true
		}
	}
	return false
}
