// Package goquery renders resdesk output into the blog's HTML pages.
package goquery

import (
	"bytes"
	"html"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/resdesk"
	nethtml "golang.org/x/net/html"
)

// Ensure Surface implements resdesk.DisplaySurface at compile time.
var _ resdesk.DisplaySurface = (*Surface)(nil)

// Surface is a DisplaySurface backed by a parsed HTML page. Targets are
// looked up by element id; unknown ids are ignored.
type Surface struct {
	doc *goquery.Document
}

// NewSurface parses page and returns a Surface over it.
func NewSurface(page io.Reader) (*Surface, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, resdesk.Errorf(resdesk.EINVALID, "failed to parse page: %v", err)
	}
	return &Surface{doc: doc}, nil
}

// NewSurfaceFromString is a convenience wrapper around NewSurface.
func NewSurfaceFromString(page string) (*Surface, error) {
	return NewSurface(strings.NewReader(page))
}

// SetText replaces the text content of the element with the target id.
func (s *Surface) SetText(target resdesk.Target, text string) {
	sel := s.find(target)
	if sel.Length() == 0 {
		return
	}
	sel.SetText(text)
}

// RenderList replaces the children of the element with the target id by
// one <li> per item. Items with an href are rendered as links.
func (s *Surface) RenderList(target resdesk.Target, items []resdesk.ListItem) {
	sel := s.find(target)
	if sel.Length() == 0 {
		return
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString("<li>")
		if item.Href != "" {
			b.WriteString(`<a href="`)
			b.WriteString(html.EscapeString(item.Href))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(item.Text))
			b.WriteString("</a>")
		} else {
			b.WriteString(html.EscapeString(item.Text))
		}
		b.WriteString("</li>")
	}
	sel.Empty()
	sel.AppendHtml(b.String())
}

// Text returns the text content of the element with the target id.
func (s *Surface) Text(target resdesk.Target) string {
	return s.find(target).Text()
}

// Items returns the text of every <li> under the target element.
func (s *Surface) Items(target resdesk.Target) []string {
	var items []string
	s.find(target).Find("li").Each(func(_ int, li *goquery.Selection) {
		items = append(items, strings.TrimSpace(li.Text()))
	})
	return items
}

// WriteTo writes the full page, doctype included.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, n := range s.doc.Nodes {
		if err := nethtml.Render(&buf, n); err != nil {
			return 0, err
		}
	}
	return buf.WriteTo(w)
}

// HTML returns the full page as a string.
func (s *Surface) HTML() (string, error) {
	var b strings.Builder
	if _, err := s.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *Surface) find(target resdesk.Target) *goquery.Selection {
	return s.doc.Find(`[id="` + string(target) + `"]`).First()
}
