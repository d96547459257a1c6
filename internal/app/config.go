package app

// Defaults shared by flag registration and file-config overlay.
const (
	DefaultReportTitle = "Acronyms Found"
)

// Config holds runtime configuration for one scan.
type Config struct {
	// InputPath is the deck to scan: .pptx, or .html/.htm for
	// section-per-slide HTML decks.
	InputPath string

	// Reference tables (optional)
	KnownCSVPath   string
	ExcludeCSVPath string

	// Outputs. AppendSlide saves a copy of a .pptx deck with the summary
	// slide appended; MarkdownPath and PDFPath write standalone reports.
	AppendSlide  bool
	MarkdownPath string
	PDFPath      string

	ReportTitle string
	Verbose     bool
}
