// Package deck defines the document model shared by slide-deck sources.
package deck

// ShapeText is the outcome of extracting one shape's text. A failed
// extraction degrades to empty text and carries the diagnostic in Warn, so
// one bad shape or cell never discards the rest of the scan.
type ShapeText struct {
	Text string
	Warn string
}

// Slide is one slide's extracted content. Number is 1-based and follows the
// deck's presentation order.
type Slide struct {
	Number int
	Shapes []ShapeText
}

// Source yields a deck's slides in presentation order. A Source returns an
// error only for document-level failures; per-shape problems are reported via
// ShapeText.Warn.
type Source interface {
	Slides() ([]Slide, error)
}
