package mock

import "github.com/fwojciec/gdndoc"

var _ gdndoc.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of gdndoc.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverCategoriesFn func(html string) ([]gdndoc.CategoryRef, error)
	DiscoverItemsFn      func(html string, ref gdndoc.CategoryRef) ([]gdndoc.WorkUnit, error)
}

func (d *LinkDiscoverer) DiscoverCategories(html string) ([]gdndoc.CategoryRef, error) {
	return d.DiscoverCategoriesFn(html)
}

func (d *LinkDiscoverer) DiscoverItems(html string, ref gdndoc.CategoryRef) ([]gdndoc.WorkUnit, error) {
	return d.DiscoverItemsFn(html, ref)
}
