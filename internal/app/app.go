// Package app wires the scan pipeline together: reference tables feed the
// classifier, a deck source feeds the aggregator, and the final registry is
// rendered to the requested outputs.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goacronyms/internal/aggregate"
	"github.com/hyperifyio/goacronyms/internal/classify"
	"github.com/hyperifyio/goacronyms/internal/deck"
	"github.com/hyperifyio/goacronyms/internal/htmldeck"
	"github.com/hyperifyio/goacronyms/internal/pptx"
	"github.com/hyperifyio/goacronyms/internal/refdata"
	"github.com/hyperifyio/goacronyms/internal/report"
)

type App struct {
	cfg Config
}

func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run performs one full document scan. Reference-table problems and
// per-shape extraction problems degrade with a log entry; only
// document-level failures (unreadable deck, unwritable output) return an
// error.
func (a *App) Run() error {
	known := refdata.LoadKnownAcronyms(a.cfg.KnownCSVPath)
	classifier := classify.New(refdata.LoadExclusions(a.cfg.ExcludeCSVPath))
	agg := aggregate.New(classifier, known)

	src, err := a.source()
	if err != nil {
		return err
	}
	slides, err := src.Slides()
	if err != nil {
		return fmt.Errorf("scan %s: %w", a.cfg.InputPath, err)
	}

	for _, sl := range slides {
		log.Debug().Int("slide", sl.Number).Int("shapes", len(sl.Shapes)).Msg("processing slide")
		for _, sh := range sl.Shapes {
			if sh.Warn != "" {
				log.Warn().Int("slide", sl.Number).Str("warn", sh.Warn).Msg("shape extraction degraded")
			}
			agg.ObserveShape(sl.Number, sh.Text)
		}
	}

	rows := report.Build(agg.Registry())
	log.Info().Int("slides", len(slides)).Int("acronyms", len(rows)).Msg("scan complete")

	return a.render(rows)
}

// render fans the report out to every configured output.
func (a *App) render(rows []report.Row) error {
	if a.cfg.AppendSlide && a.isPptx() {
		summary := make([]pptx.SummaryRow, len(rows))
		for i, r := range rows {
			summary[i] = pptx.SummaryRow{Acronym: r.Acronym, Definition: r.Definition, Slides: r.Slides}
		}
		outPath, err := pptx.AppendSummary(a.cfg.InputPath, a.cfg.ReportTitle, summary)
		if err != nil {
			return fmt.Errorf("append summary slide: %w", err)
		}
		log.Info().Str("out", outPath).Msg("saved deck with acronym slide")
	}
	if a.cfg.MarkdownPath != "" {
		md := report.Markdown(a.cfg.ReportTitle, rows)
		if err := os.WriteFile(a.cfg.MarkdownPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}
		log.Info().Str("out", a.cfg.MarkdownPath).Msg("wrote markdown report")
	}
	if a.cfg.PDFPath != "" {
		if err := report.WritePDF(a.cfg.ReportTitle, rows, a.cfg.PDFPath); err != nil {
			return fmt.Errorf("write pdf report: %w", err)
		}
		log.Info().Str("out", a.cfg.PDFPath).Msg("wrote pdf report")
	}
	return nil
}

func (a *App) isPptx() bool {
	return strings.EqualFold(filepath.Ext(a.cfg.InputPath), ".pptx")
}

func (a *App) source() (deck.Source, error) {
	switch ext := strings.ToLower(filepath.Ext(a.cfg.InputPath)); ext {
	case ".pptx":
		return &pptx.Source{Path: a.cfg.InputPath}, nil
	case ".html", ".htm":
		return &htmldeck.Source{Path: a.cfg.InputPath}, nil
	default:
		return nil, fmt.Errorf("unsupported input type %q", ext)
	}
}
