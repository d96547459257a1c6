package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/goacronyms/internal/aggregate"
)

func sampleRegistry() map[string]*aggregate.Record {
	return map[string]*aggregate.Record{
		"ZEBRA": {Slides: map[int]struct{}{12: {}, 3: {}, 1: {}}},
		"ABC": {
			Definition: "American Broadcasting Company",
			Slides:     map[int]struct{}{2: {}},
		},
	}
}

func TestBuild_SortedWithDefaults(t *testing.T) {
	rows := Build(sampleRegistry())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Acronym != "ABC" || rows[1].Acronym != "ZEBRA" {
		t.Fatalf("rows must sort ascending by acronym, got %v", rows)
	}
	if rows[0].Definition != "American Broadcasting Company" {
		t.Fatalf("unexpected definition %q", rows[0].Definition)
	}
	if rows[1].Definition != UnknownDefinition {
		t.Fatalf("missing definition must render %q, got %q", UnknownDefinition, rows[1].Definition)
	}
	if rows[1].Slides != "1, 3, 12" {
		t.Fatalf("slides must be ascending and comma-joined, got %q", rows[1].Slides)
	}
}

func TestBuild_EmptyRegistry(t *testing.T) {
	if rows := Build(map[string]*aggregate.Record{}); len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown("Acronyms Found", Build(sampleRegistry()))
	if !strings.HasPrefix(out, "# Acronyms Found\n") {
		t.Fatalf("missing title: %q", out)
	}
	for _, want := range []string{
		"| Acronym | Definition | Slide Numbers |",
		"| ABC | American Broadcasting Company | 2 |",
		"| ZEBRA | Unknown | 1, 3, 12 |",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q in:\n%s", want, out)
		}
	}
}

func TestWritePDF(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDF("Acronyms Found", Build(sampleRegistry()), outPath); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("output does not look like a PDF")
	}
}
