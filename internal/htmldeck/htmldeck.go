// Package htmldeck reads HTML slide decks of the reveal.js family, where
// each <section> element is one slide.
package htmldeck

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/hyperifyio/goacronyms/internal/deck"
)

// Source reads slides from an HTML file.
type Source struct {
	Path string
}

// Slides returns one slide per leaf <section> element in document order.
// Nested sections (vertical slide stacks) contribute their leaves. A deck
// with no sections is treated as a single slide holding the whole body text.
func (s *Source) Slides() ([]deck.Slide, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read html deck: %w", err)
	}
	root, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parse html deck: %w", err)
	}

	body := findFirst(root, "body")
	if body == nil {
		body = root
	}
	sections := leafSections(body)

	var slides []deck.Slide
	if len(sections) == 0 {
		slides = append(slides, deck.Slide{
			Number: 1,
			Shapes: []deck.ShapeText{{Text: nodeText(body)}},
		})
		return slides, nil
	}
	for i, sec := range sections {
		slides = append(slides, deck.Slide{
			Number: i + 1,
			Shapes: []deck.ShapeText{{Text: nodeText(sec)}},
		})
	}
	return slides, nil
}

// leafSections returns the <section> elements that contain no nested
// sections, in document order.
func leafSections(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "section") {
			if inner := childSections(cur); len(inner) > 0 {
				for _, c := range inner {
					walk(c)
				}
			} else {
				out = append(out, cur)
			}
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func childSections(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && strings.EqualFold(c.Data, "section") {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, tag); res != nil {
			return res
		}
	}
	return nil
}

// nodeText collects the visible text under n, separating block elements with
// newlines and skipping script, style and navigation chrome.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			switch strings.ToLower(cur.Data) {
			case "script", "style", "noscript", "nav", "footer", "aside":
				return
			case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "br", "tr", "div":
				b.WriteByte('\n')
			}
		}
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if cur.Type == html.ElementNode {
			switch strings.ToLower(cur.Data) {
			case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "td", "th":
				b.WriteByte('\n')
			}
		}
	}
	walk(n)
	return collapseWhitespace(b.String())
}

// collapseWhitespace trims lines, collapses internal space runs and drops
// blank lines.
func collapseWhitespace(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return strings.Join(out, "\n")
}
