package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goacronyms/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		knownCSV    string
		excludeCSV  string
		appendSlide bool
		mdPath      string
		pdfPath     string
		title       string
		configPath  string
		verbose     bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the slide deck to scan (.pptx, .html or .htm)")
	flag.StringVar(&knownCSV, "known", os.Getenv("GOACRONYMS_KNOWN"), "Path to CSV of known acronyms (Acronym,Definition columns)")
	flag.StringVar(&excludeCSV, "exclude", os.Getenv("GOACRONYMS_EXCLUDE"), "Path to CSV of acronyms to exclude (Exclusion column)")
	flag.BoolVar(&appendSlide, "out.slide", true, "Save a copy of a .pptx deck with the summary slide appended")
	flag.StringVar(&mdPath, "out.md", "", "Optional path for a Markdown report")
	flag.StringVar(&pdfPath, "out.pdf", "", "Optional path for a PDF report")
	flag.StringVar(&title, "title", app.DefaultReportTitle, "Report and summary slide title")
	flag.StringVar(&configPath, "config", os.Getenv("GOACRONYMS_CONFIG"), "Optional YAML/JSON config file; flags win over file values")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:      inputPath,
		KnownCSVPath:   knownCSV,
		ExcludeCSVPath: excludeCSV,
		AppendSlide:    appendSlide,
		MarkdownPath:   mdPath,
		PDFPath:        pdfPath,
		ReportTitle:    title,
		Verbose:        verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("cannot load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(1)
	}

	if err := app.New(cfg).Run(); err != nil {
		log.Error().Err(err).Msg("scan failed")
		os.Exit(1)
	}
}
