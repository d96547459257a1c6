package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_HTMLDeckToMarkdown(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.html")
	deckHTML := `<html><body>
<section><p>NASA (National Aeronautics and Space Administration) leads the mission.</p></section>
<section><p>NASA and ESA split the budget.</p></section>
</body></html>`
	if err := os.WriteFile(deckPath, []byte(deckHTML), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	knownPath := filepath.Join(dir, "known.csv")
	if err := os.WriteFile(knownPath, []byte("Acronym,Definition\nESA,European Space Agency\n"), 0o644); err != nil {
		t.Fatalf("write known: %v", err)
	}
	mdPath := filepath.Join(dir, "report.md")

	a := New(Config{
		InputPath:    deckPath,
		KnownCSVPath: knownPath,
		MarkdownPath: mdPath,
		ReportTitle:  DefaultReportTitle,
	})
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"# Acronyms Found",
		"| ESA | European Space Agency | 2 |",
		"| NASA | National Aeronautics and Space Administration | 1, 2 |",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	// ESA must sort before NASA
	if strings.Index(out, "| ESA |") > strings.Index(out, "| NASA |") {
		t.Fatalf("rows must sort by acronym:\n%s", out)
	}
}

func TestRun_MissingDeckIsFatal(t *testing.T) {
	a := New(Config{
		InputPath:    filepath.Join(t.TempDir(), "nope.html"),
		MarkdownPath: filepath.Join(t.TempDir(), "r.md"),
		ReportTitle:  DefaultReportTitle,
	})
	if err := a.Run(); err == nil {
		t.Fatalf("expected fatal error for unreadable deck")
	}
}

func TestRun_BadReferenceTablesDegrade(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.html")
	if err := os.WriteFile(deckPath, []byte(`<html><body><section><p>NASA flies.</p></section></body></html>`), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	mdPath := filepath.Join(dir, "report.md")

	a := New(Config{
		InputPath:      deckPath,
		KnownCSVPath:   filepath.Join(dir, "missing-known.csv"),
		ExcludeCSVPath: filepath.Join(dir, "missing-exclude.csv"),
		MarkdownPath:   mdPath,
		ReportTitle:    DefaultReportTitle,
	})
	if err := a.Run(); err != nil {
		t.Fatalf("bad reference tables must not be fatal: %v", err)
	}
	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "| NASA | Unknown | 1 |") {
		t.Fatalf("expected best-effort report, got:\n%s", data)
	}
}
