package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema (YAML or JSON).
type FileConfig struct {
	Input   string `yaml:"input" json:"input"`
	Known   string `yaml:"known" json:"known"`
	Exclude string `yaml:"exclude" json:"exclude"`

	Output struct {
		Slide    *bool  `yaml:"slide" json:"slide"`
		Markdown string `yaml:"markdown" json:"markdown"`
		PDF      string `yaml:"pdf" json:"pdf"`
	} `yaml:"output" json:"output"`

	Report struct {
		Title string `yaml:"title" json:"title"`
	} `yaml:"report" json:"report"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their flag defaults, so file config supplies defaults while
// explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.KnownCSVPath == "" && fc.Known != "" {
		cfg.KnownCSVPath = fc.Known
	}
	if cfg.ExcludeCSVPath == "" && fc.Exclude != "" {
		cfg.ExcludeCSVPath = fc.Exclude
	}
	if fc.Output.Slide != nil {
		cfg.AppendSlide = *fc.Output.Slide
	}
	if cfg.MarkdownPath == "" && fc.Output.Markdown != "" {
		cfg.MarkdownPath = fc.Output.Markdown
	}
	if cfg.PDFPath == "" && fc.Output.PDF != "" {
		cfg.PDFPath = fc.Output.PDF
	}
	if (cfg.ReportTitle == "" || cfg.ReportTitle == DefaultReportTitle) && fc.Report.Title != "" {
		cfg.ReportTitle = fc.Report.Title
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	switch ext := strings.ToLower(filepath.Ext(cfg.InputPath)); ext {
	case ".pptx":
	case ".html", ".htm":
		if cfg.MarkdownPath == "" && cfg.PDFPath == "" {
			return errors.New("config: html decks cannot receive an appended slide; set a markdown or pdf output")
		}
	default:
		return fmt.Errorf("config: unsupported input type %q (want .pptx, .html or .htm)", ext)
	}
	if strings.TrimSpace(cfg.ReportTitle) == "" {
		return errors.New("config: report title must not be empty")
	}
	return nil
}
