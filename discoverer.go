package gdndoc

// LinkDiscoverer enumerates documentation pages from listing pages.
// Discovery is driven entirely by hyperlinks matching the site's two
// query schemes:
//
//	?version=script&category=<Category>&class=<Item>
//	?version=engine&category=<Category>&function=<Item>
//
// Foundation pages use one of the two schemes depending on the site's
// own classification. Links matching neither scheme are ignored.
type LinkDiscoverer interface {
	// DiscoverCategories parses the landing page and returns category
	// entries in first-seen order, deduplicated by (version, key).
	DiscoverCategories(html string) ([]CategoryRef, error)

	// DiscoverItems parses a category listing page and returns the work
	// units nested under ref, in first-seen order. An empty result means
	// the category has no nested items and the entry page itself should
	// be treated as the single item (see CategoryRef.Unit).
	DiscoverItems(html string, ref CategoryRef) ([]WorkUnit, error)
}
