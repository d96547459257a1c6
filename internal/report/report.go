// Package report projects the acronym registry into render-ready rows and
// renders them to the supported output formats.
package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hyperifyio/goacronyms/internal/aggregate"
)

// UnknownDefinition is rendered when no definition was supplied or found.
const UnknownDefinition = "Unknown"

// Row is one line of the final report.
type Row struct {
	Acronym    string
	Definition string
	Slides     string // ascending slide numbers, comma-and-space joined
}

// Build flattens the registry into rows sorted ascending by acronym.
func Build(registry map[string]*aggregate.Record) []Row {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		rec := registry[k]
		def := rec.Definition
		if def == "" {
			def = UnknownDefinition
		}
		rows = append(rows, Row{Acronym: k, Definition: def, Slides: joinSlides(rec.Slides)})
	}
	return rows
}

func joinSlides(set map[int]struct{}) string {
	nums := make([]int, 0, len(set))
	for n := range set {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// Markdown renders the rows as a titled Markdown table.
func Markdown(title string, rows []Row) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString("| Acronym | Definition | Slide Numbers |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, r := range rows {
		b.WriteString("| ")
		b.WriteString(escapePipes(r.Acronym))
		b.WriteString(" | ")
		b.WriteString(escapePipes(r.Definition))
		b.WriteString(" | ")
		b.WriteString(r.Slides)
		b.WriteString(" |\n")
	}
	return b.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
