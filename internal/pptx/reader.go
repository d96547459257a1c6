// Package pptx reads and writes PowerPoint decks directly as OOXML: a .pptx
// file is a ZIP archive of XML parts, so slides are enumerated through
// ppt/presentation.xml and its relationships, and shape text is pulled from
// each slide part with a streaming decoder.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/hyperifyio/goacronyms/internal/deck"
)

const (
	nsDrawing      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentation = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRelationship = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Source reads slides from a .pptx file.
type Source struct {
	Path string
}

// Slides returns the deck's slides in presentation order. Failure to open or
// to resolve the slide list is a document-level error; problems inside a
// single slide part degrade to a warning shape on that slide.
func (s *Source) Slides() ([]deck.Slide, error) {
	r, err := zip.OpenReader(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open pptx: %w", err)
	}
	defer r.Close()

	parts, err := slideParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	slides := make([]deck.Slide, 0, len(parts))
	for i, part := range parts {
		sl := deck.Slide{Number: i + 1}
		data, err := readZipFile(&r.Reader, part)
		if err != nil {
			sl.Shapes = []deck.ShapeText{{Warn: fmt.Sprintf("read %s: %v", part, err)}}
		} else {
			sl.Shapes = parseSlideShapes(data)
		}
		slides = append(slides, sl)
	}
	return slides, nil
}

// relationships mirrors the OPC .rels part.
type relationships struct {
	Rels []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// slideParts resolves the ordered slide part names: sldIdLst gives the
// relationship ids in presentation order, the presentation rels map those to
// part targets. Decks whose presentation part is unreadable fall back to the
// numeric order of the slide entries themselves.
func slideParts(z *zip.Reader) ([]string, error) {
	rids, ridErr := slideOrder(z)
	if ridErr == nil && len(rids) > 0 {
		relData, err := readZipFile(z, "ppt/_rels/presentation.xml.rels")
		if err != nil {
			return nil, fmt.Errorf("read presentation rels: %w", err)
		}
		var rels relationships
		if err := xml.Unmarshal(relData, &rels); err != nil {
			return nil, fmt.Errorf("parse presentation rels: %w", err)
		}
		targets := make(map[string]string, len(rels.Rels))
		for _, rel := range rels.Rels {
			targets[rel.ID] = rel.Target
		}
		parts := make([]string, 0, len(rids))
		for _, rid := range rids {
			t, ok := targets[rid]
			if !ok {
				return nil, fmt.Errorf("presentation references unknown relationship %s", rid)
			}
			parts = append(parts, path.Join("ppt", t))
		}
		return parts, nil
	}

	var parts []string
	for _, f := range z.File {
		if slidePartRe.MatchString(f.Name) {
			parts = append(parts, f.Name)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no slides found in archive")
	}
	sort.Slice(parts, func(i, j int) bool { return slidePartNumber(parts[i]) < slidePartNumber(parts[j]) })
	return parts, nil
}

// slideOrder extracts the r:id sequence from sldIdLst.
func slideOrder(z *zip.Reader) ([]string, error) {
	data, err := readZipFile(z, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	var rids []string
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse presentation.xml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "sldId" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "id" && attr.Name.Space == nsRelationship {
				rids = append(rids, attr.Value)
			}
		}
	}
	return rids, nil
}

// parseSlideShapes walks one slide part and extracts per-shape text. Text
// shapes concatenate their runs with paragraph breaks; a table becomes a
// single shape whose text is all cell texts in row-major order, space
// joined. A decode failure mid-slide appends a warning shape and keeps the
// shapes extracted before the failure.
func parseSlideShapes(data []byte) []deck.ShapeText {
	var (
		shapes  []deck.ShapeText
		shape   strings.Builder
		cell    strings.Builder
		cells   []string
		inShape bool
		inTable bool
		inCell  bool
		inRun   bool
	)

	flushText := func(s string) {
		if t := strings.TrimSpace(s); t != "" {
			shapes = append(shapes, deck.ShapeText{Text: t})
		}
	}

	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			shapes = append(shapes, deck.ShapeText{Warn: fmt.Sprintf("parse slide: %v", err)})
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "sp" && t.Name.Space == nsPresentation:
				inShape = true
				shape.Reset()
			case t.Name.Local == "tbl" && t.Name.Space == nsDrawing:
				inTable = true
				cells = cells[:0]
			case t.Name.Local == "tc" && inTable:
				inCell = true
				cell.Reset()
			case t.Name.Local == "t" && t.Name.Space == nsDrawing:
				inRun = true
			}

		case xml.CharData:
			if !inRun {
				break
			}
			if inCell {
				cell.Write(t)
			} else if inShape {
				shape.Write(t)
			}

		case xml.EndElement:
			switch {
			case t.Name.Local == "t" && t.Name.Space == nsDrawing:
				inRun = false
			case t.Name.Local == "p" && t.Name.Space == nsDrawing:
				// Paragraph break inside the active text body
				if inCell {
					cell.WriteByte('\n')
				} else if inShape {
					shape.WriteByte('\n')
				}
			case t.Name.Local == "tc" && inTable:
				inCell = false
				if c := strings.TrimSpace(cell.String()); c != "" {
					cells = append(cells, c)
				}
			case t.Name.Local == "tbl" && t.Name.Space == nsDrawing:
				inTable = false
				flushText(strings.Join(cells, " "))
			case t.Name.Local == "sp" && t.Name.Space == nsPresentation:
				inShape = false
				flushText(shape.String())
			}
		}
	}
	return shapes
}

func readZipFile(z *zip.Reader, name string) ([]byte, error) {
	for _, f := range z.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}
