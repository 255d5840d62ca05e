package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gdndoc"
	"golang.org/x/net/html"
)

// Ensure Extractor implements gdndoc.ContentExtractor at compile time.
var _ gdndoc.ContentExtractor = (*Extractor)(nil)

// Extractor locates the documentation content region of an item page.
// Pages render a fixed structure: a #box5 container holding a .entry
// wrapper whose first direct div is the sidebar and whose second
// direct div is the content. Anything else (error pages, placeholder
// pages, a site redesign) resolves to an ENOTFOUND error.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the content region of the page as an HTML fragment.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", gdndoc.Errorf(gdndoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", gdndoc.Errorf(gdndoc.EINVALID, "failed to parse HTML: %v", err)
	}

	entry := doc.Find("div#box5 div.entry").First()
	if entry.Length() == 0 {
		return "", gdndoc.Errorf(gdndoc.ENOTFOUND, "content node not found: missing #box5 entry wrapper")
	}

	// Direct div children only: the sidebar is the first, the content
	// the second. Descendant divs of either must not shift the index.
	children := entry.ChildrenFiltered("div")
	if children.Length() < 2 {
		return "", gdndoc.Errorf(gdndoc.ENOTFOUND, "content node not found: entry wrapper has %d div children", children.Length())
	}

	node := children.Get(1)
	return renderNode(node)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
