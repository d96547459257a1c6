// Package aggregate accumulates acronym observations across a whole deck
// into a single registry.
package aggregate

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goacronyms/internal/classify"
	"github.com/hyperifyio/goacronyms/internal/collect"
	"github.com/hyperifyio/goacronyms/internal/definition"
)

// Record tracks one acronym. Definition stays empty until discovered (or
// seeded from the known-acronyms table) and is never overwritten once set.
// Slides holds the 1-based slide numbers where the acronym was observed.
type Record struct {
	Definition string
	Slides     map[int]struct{}
}

// Aggregator owns the registry for one document scan. Construct a fresh one
// per run so concurrent or repeated scans cannot cross-contaminate.
type Aggregator struct {
	classifier *classify.Classifier
	known      map[string]string
	registry   map[string]*Record
}

// New builds an Aggregator. known maps canonical (uppercase) acronyms to
// their definitions and is consulted only when a record is first created.
func New(classifier *classify.Classifier, known map[string]string) *Aggregator {
	return &Aggregator{
		classifier: classifier,
		known:      known,
		registry:   make(map[string]*Record),
	}
}

// ObserveShape records all candidate acronyms in one shape's text, observed
// on the given 1-based slide number. Repeated observations on the same slide
// are idempotent. When a record's definition is still unknown, only the text
// of the shape currently being scanned is searched for one; a definition
// living in another shape or on a later slide is found only if that text is
// itself scanned while the definition is still missing.
func (a *Aggregator) ObserveShape(slide int, text string) {
	for _, token := range collect.Tokens(text) {
		if !a.classifier.IsCandidate(token) {
			continue
		}
		key := strings.ToUpper(token)
		rec, ok := a.registry[key]
		if !ok {
			rec = &Record{Definition: a.known[key], Slides: make(map[int]struct{})}
			a.registry[key] = rec
		}
		rec.Slides[slide] = struct{}{}
		if rec.Definition == "" {
			if def, found := definition.Find(text, key); found {
				rec.Definition = def
				log.Info().Str("acronym", key).Str("definition", def).Msg("found definition")
			}
		}
	}
}

// Registry returns the accumulated acronym records.
func (a *Aggregator) Registry() map[string]*Record {
	return a.registry
}
