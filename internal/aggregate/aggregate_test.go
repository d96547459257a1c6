package aggregate

import (
	"testing"

	"github.com/hyperifyio/goacronyms/internal/classify"
)

func newAggregator(known map[string]string) *Aggregator {
	return New(classify.New(nil), known)
}

func TestObserveShape_SlideSetIdempotent(t *testing.T) {
	a := newAggregator(nil)
	a.ObserveShape(3, "NASA on this slide")
	a.ObserveShape(3, "NASA again on the same slide")

	rec, ok := a.Registry()["NASA"]
	if !ok {
		t.Fatalf("expected NASA record")
	}
	if len(rec.Slides) != 1 {
		t.Fatalf("expected one slide entry, got %d", len(rec.Slides))
	}
	if _, ok := rec.Slides[3]; !ok {
		t.Fatalf("expected slide 3 in slide set")
	}
}

func TestObserveShape_DefinitionNeverOverwritten(t *testing.T) {
	a := newAggregator(nil)
	a.ObserveShape(1, "NASA (National Aeronautics and Space Administration) leads")
	a.ObserveShape(2, "NASA (Not A Space Agency) claims otherwise")

	rec := a.Registry()["NASA"]
	if rec == nil || rec.Definition != "National Aeronautics and Space Administration" {
		t.Fatalf("first definition must win, got %+v", rec)
	}
}

func TestObserveShape_KnownAcronymsSeedDefinition(t *testing.T) {
	a := newAggregator(map[string]string{"ESA": "European Space Agency"})
	a.ObserveShape(1, "ESA (Entirely Spurious Alternative) is mentioned here")

	rec := a.Registry()["ESA"]
	if rec == nil || rec.Definition != "European Space Agency" {
		t.Fatalf("known-acronym seed must win over in-text discovery, got %+v", rec)
	}
}

func TestObserveShape_CanonicalizesCase(t *testing.T) {
	a := newAggregator(nil)
	a.ObserveShape(1, "x-ray equipment")
	a.ObserveShape(2, "X-RAY equipment inspection")

	reg := a.Registry()
	if len(reg) != 1 {
		t.Fatalf("expected one canonical record, got %d", len(reg))
	}
	rec := reg["X-RAY"]
	if rec == nil || len(rec.Slides) != 2 {
		t.Fatalf("expected X-RAY on two slides, got %+v", rec)
	}
}

func TestObserveShape_NonCandidatesIgnored(t *testing.T) {
	a := newAggregator(nil)
	a.ObserveShape(1, "42 123-456 ABC-12345 presentation 2026-01")
	if len(a.Registry()) != 0 {
		t.Fatalf("expected empty registry, got %v", a.Registry())
	}
}

func TestObserveShape_TwoSlideDocument(t *testing.T) {
	a := newAggregator(nil)
	a.ObserveShape(1, "NASA (National Aeronautics and Space Administration) leads the mission")
	a.ObserveShape(2, "NASA")

	rec := a.Registry()["NASA"]
	if rec == nil {
		t.Fatalf("expected a NASA registry entry")
	}
	if rec.Definition != "National Aeronautics and Space Administration" {
		t.Fatalf("unexpected definition %q", rec.Definition)
	}
	for _, n := range []int{1, 2} {
		if _, ok := rec.Slides[n]; !ok {
			t.Fatalf("expected slide %d in slide set %v", n, rec.Slides)
		}
	}
	if len(rec.Slides) != 2 {
		t.Fatalf("expected slide set of size 2, got %v", rec.Slides)
	}
}
