// Package goquery provides DOM-based implementations of
// gdndoc.LinkDiscoverer and gdndoc.ContentExtractor using CSS
// selectors over parsed HTML documents.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gdndoc"
)

// itemScopeSelector scopes item discovery to the expanded sidebar
// entry of the currently selected category. Listing pages render the
// selected category as li.selected with a nested ul of item links.
const itemScopeSelector = "li.selected ul a[href]"

// Ensure Discoverer implements gdndoc.LinkDiscoverer at compile time.
var _ gdndoc.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer enumerates documentation pages by matching anchor hrefs
// against the site's two query schemes (class for script pages,
// function for engine pages). Anchors matching neither scheme are
// ignored, so navigation chrome never leaks into the work list.
type Discoverer struct {
	base *url.URL
}

// NewDiscoverer creates a Discoverer that resolves relative hrefs
// against baseURL.
func NewDiscoverer(baseURL string) (*Discoverer, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, gdndoc.Errorf(gdndoc.EINVALID, "invalid base URL: %v", err)
	}
	return &Discoverer{base: base}, nil
}

// DiscoverCategories parses the landing page and returns category
// entries in first-seen order, deduplicated by (version, category key).
func (d *Discoverer) DiscoverCategories(html string) ([]gdndoc.CategoryRef, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gdndoc.Errorf(gdndoc.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var refs []gdndoc.CategoryRef

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		link, ok := d.parseDocLink(sel)
		if !ok {
			return
		}

		key := string(link.version) + "\x00" + link.category
		if seen[key] {
			return
		}
		seen[key] = true

		refs = append(refs, gdndoc.CategoryRef{
			Version: link.version,
			Key:     link.category,
			Name:    link.text,
			URL:     link.url,
		})
	})

	return refs, nil
}

// DiscoverItems parses a category listing page and returns the work
// units nested under ref in first-seen order. Only links of ref's
// version are accepted; an empty result means the category entry page
// is itself the content.
func (d *Discoverer) DiscoverItems(html string, ref gdndoc.CategoryRef) ([]gdndoc.WorkUnit, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gdndoc.Errorf(gdndoc.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var units []gdndoc.WorkUnit

	doc.Find(itemScopeSelector).Each(func(_ int, sel *goquery.Selection) {
		link, ok := d.parseDocLink(sel)
		if !ok {
			return
		}
		if link.version != ref.Version {
			return
		}
		if seen[link.url] {
			return
		}
		seen[link.url] = true

		units = append(units, gdndoc.WorkUnit{
			Version:  link.version,
			Category: ref.Name,
			Item:     link.text,
			URL:      link.url,
		})
	})

	return units, nil
}

// docLink is an anchor that matched one of the two query schemes.
type docLink struct {
	version  gdndoc.DocVersion
	category string
	text     string
	url      string
}

// parseDocLink validates an anchor against the query schemes. A match
// requires version, category, and the item parameter appropriate for
// the version: class for script, function for engine, either for
// foundation.
func (d *Discoverer) parseDocLink(sel *goquery.Selection) (docLink, bool) {
	href, exists := sel.Attr("href")
	if !exists || href == "" {
		return docLink{}, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return docLink{}, false
	}
	resolved := d.base.ResolveReference(ref)
	if resolved.Host != d.base.Host {
		return docLink{}, false
	}

	q := resolved.Query()
	version, err := gdndoc.ParseDocVersion(q.Get("version"))
	if err != nil {
		return docLink{}, false
	}
	category := q.Get("category")
	if category == "" {
		return docLink{}, false
	}

	switch version {
	case gdndoc.VersionScript:
		if q.Get("class") == "" {
			return docLink{}, false
		}
	case gdndoc.VersionEngine:
		if q.Get("function") == "" {
			return docLink{}, false
		}
	case gdndoc.VersionFoundation:
		if q.Get("class") == "" && q.Get("function") == "" {
			return docLink{}, false
		}
	}

	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return docLink{}, false
	}

	return docLink{
		version:  version,
		category: category,
		text:     text,
		url:      resolved.String(),
	}, true
}
