package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// English Metric Units, the coordinate space of OOXML drawing.
const (
	emuPerInch  = 914400
	emuMargin   = emuPerInch / 2 // 0.5" slide margins
	emuRowH     = emuPerInch / 3
	emuTitleH   = emuPerInch / 2
	defaultCx   = 12192000 // 16:9 default slide size
	slideCT     = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	slideRelTyp = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
)

// Summary slide column weights: acronym 15%, definition 60%, slides 25%.
var columnWeights = [3]float64{0.15, 0.60, 0.25}

var (
	slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
	sldIDRe     = regexp.MustCompile(`<p:sldId[^>]*\sid="(\d+)"`)
	relIDRe     = regexp.MustCompile(`Id="rId(\d+)"`)
	sldSzRe     = regexp.MustCompile(`<p:sldSz[^>]*\scx="(\d+)"`)
)

// SummaryRow is one table row of the appended slide.
type SummaryRow struct {
	Acronym    string
	Definition string
	Slides     string
}

// OutputPath derives the saved copy's name: original stem plus a
// _with_acronyms tag, same extension, same directory.
func OutputPath(srcPath string) string {
	ext := filepath.Ext(srcPath)
	stem := strings.TrimSuffix(filepath.Base(srcPath), ext)
	return filepath.Join(filepath.Dir(srcPath), stem+"_with_acronyms"+ext)
}

// AppendSummary writes a copy of the deck at srcPath with one new slide
// appended: a title and a three-column table with a header row plus one row
// per entry. It returns the path of the saved copy. Any failure here is
// document-level and therefore fatal to the caller.
func AppendSummary(srcPath, title string, rows []SummaryRow) (string, error) {
	r, err := zip.OpenReader(srcPath)
	if err != nil {
		return "", fmt.Errorf("open pptx: %w", err)
	}
	defer r.Close()

	contentTypes, err := readZipFile(&r.Reader, "[Content_Types].xml")
	if err != nil {
		return "", err
	}
	presentation, err := readZipFile(&r.Reader, "ppt/presentation.xml")
	if err != nil {
		return "", err
	}
	presRels, err := readZipFile(&r.Reader, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return "", err
	}

	slideNum := nextSlideNumber(&r.Reader)
	slidePart := fmt.Sprintf("ppt/slides/slide%d.xml", slideNum)
	relID := fmt.Sprintf("rId%d", maxMatchedInt(relIDRe, string(presRels))+1)
	sldID := maxMatchedInt(sldIDRe, string(presentation)) + 1
	if sldID < 256 {
		sldID = 256 // sldId values start at 256 per the PresentationML schema
	}

	updatedTypes, err := insertBefore(string(contentTypes), "</Types>",
		fmt.Sprintf(`<Override PartName="/%s" ContentType="%s"/>`, slidePart, slideCT))
	if err != nil {
		return "", fmt.Errorf("update content types: %w", err)
	}
	updatedRels, err := insertBefore(string(presRels), "</Relationships>",
		fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="slides/slide%d.xml"/>`, relID, slideRelTyp, slideNum))
	if err != nil {
		return "", fmt.Errorf("update presentation rels: %w", err)
	}
	updatedPres, err := insertBefore(string(presentation), "</p:sldIdLst>",
		fmt.Sprintf(`<p:sldId id="%d" r:id="%s"/>`, sldID, relID))
	if err != nil {
		return "", fmt.Errorf("update slide list: %w", err)
	}

	slideXML := summarySlideXML(title, rows, slideWidth(string(presentation)))
	slideRels := slideRelsXML(layoutTarget(&r.Reader))

	replaced := map[string]string{
		"[Content_Types].xml":             updatedTypes,
		"ppt/presentation.xml":            updatedPres,
		"ppt/_rels/presentation.xml.rels": updatedRels,
	}
	added := map[string]string{
		slidePart: slideXML,
		fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum): slideRels,
	}

	outPath := OutputPath(srcPath)
	if err := writeArchive(outPath, &r.Reader, replaced, added); err != nil {
		return "", err
	}
	return outPath, nil
}

// nextSlideNumber is one past the highest existing slideN part.
func nextSlideNumber(z *zip.Reader) int {
	max := 0
	for _, f := range z.File {
		if n := slidePartNumber(f.Name); n > max {
			max = n
		}
	}
	return max + 1
}

func slidePartNumber(name string) int {
	m := slidePartRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func maxMatchedInt(re *regexp.Regexp, s string) int {
	max := 0
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max
}

func slideWidth(presentation string) int64 {
	if m := sldSzRe.FindStringSubmatch(presentation); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultCx
}

// layoutTarget borrows the slide layout of an existing slide so the new
// slide inherits the deck's look. Falls back to the first layout part name.
func layoutTarget(z *zip.Reader) string {
	for _, f := range z.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/_rels/") {
			continue
		}
		data, err := readZipFile(z, f.Name)
		if err != nil {
			continue
		}
		var rels relationships
		if err := xml.Unmarshal(data, &rels); err != nil {
			continue
		}
		for _, rel := range rels.Rels {
			if strings.HasSuffix(rel.Type, "/slideLayout") {
				return rel.Target
			}
		}
	}
	return "../slideLayouts/slideLayout1.xml"
}

func insertBefore(doc, marker, insert string) (string, error) {
	idx := strings.LastIndex(doc, marker)
	if idx < 0 {
		return "", fmt.Errorf("marker %s not found", marker)
	}
	return doc[:idx] + insert + doc[idx:], nil
}

// summarySlideXML builds the appended slide: a bold title textbox and a
// table sized to the usable width (slide width minus the margins).
func summarySlideXML(title string, rows []SummaryRow, slideCx int64) string {
	usable := slideCx - 2*emuMargin
	w0 := int64(float64(usable) * columnWeights[0])
	w1 := int64(float64(usable) * columnWeights[1])
	w2 := usable - w0 - w1
	tableH := int64(len(rows)+1) * emuRowH

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<p:sld xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelationship + `" xmlns:p="` + nsPresentation + `">`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)

	// Title textbox
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="2800" b="1"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		emuMargin, emuMargin, usable, emuTitleH, escapeXML(title))

	// Acronym table
	fmt.Fprintf(&b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="3" name="Acronym Table"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>`+
		`<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl>`+
		`<a:tblPr firstRow="1" bandRow="1"/>`+
		`<a:tblGrid><a:gridCol w="%d"/><a:gridCol w="%d"/><a:gridCol w="%d"/></a:tblGrid>`,
		emuMargin, emuMargin+emuTitleH+emuRowH, usable, tableH, w0, w1, w2)

	writeRow(&b, true, "Acronym", "Definition", "Slide Numbers")
	for _, r := range rows {
		writeRow(&b, false, r.Acronym, r.Definition, r.Slides)
	}

	b.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

func writeRow(b *strings.Builder, header bool, cells ...string) {
	bold := ""
	if header {
		bold = ` b="1"`
	}
	fmt.Fprintf(b, `<a:tr h="%d">`, emuRowH)
	for _, c := range cells {
		fmt.Fprintf(b, `<a:tc><a:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"%s/><a:t>%s</a:t></a:r></a:p></a:txBody><a:tcPr/></a:tc>`,
			bold, escapeXML(c))
	}
	b.WriteString(`</a:tr>`)
}

func slideRelsXML(layout string) string {
	return xml.Header +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="` + escapeXML(layout) + `"/>` +
		`</Relationships>`
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// writeArchive copies every entry of src into a new zip at outPath,
// substituting replaced parts and appending added ones.
func writeArchive(outPath string, src *zip.Reader, replaced, added map[string]string) (err error) {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	w := zip.NewWriter(out)
	for _, f := range src.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		dst, werr := w.Create(f.Name)
		if werr != nil {
			return fmt.Errorf("write %s: %w", f.Name, werr)
		}
		if content, ok := replaced[f.Name]; ok {
			if _, werr := io.WriteString(dst, content); werr != nil {
				return fmt.Errorf("write %s: %w", f.Name, werr)
			}
			continue
		}
		rc, rerr := f.Open()
		if rerr != nil {
			return fmt.Errorf("read %s: %w", f.Name, rerr)
		}
		_, werr = io.Copy(dst, rc)
		rc.Close()
		if werr != nil {
			return fmt.Errorf("copy %s: %w", f.Name, werr)
		}
	}
	for name, content := range added {
		dst, werr := w.Create(name)
		if werr != nil {
			return fmt.Errorf("write %s: %w", name, werr)
		}
		if _, werr := io.WriteString(dst, content); werr != nil {
			return fmt.Errorf("write %s: %w", name, werr)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}
