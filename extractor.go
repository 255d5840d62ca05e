package gdndoc

// ContentExtractor locates the documentation content region within a
// fetched item page and returns it as an HTML fragment.
type ContentExtractor interface {
	// Extract returns the content region of the page.
	// Returns an ENOTFOUND error when the expected DOM path does not
	// resolve (site structure changed, error/placeholder page), which is
	// distinct from a fetch failure so callers can report "fetched but
	// malformed" separately from "unreachable".
	Extract(html string) (fragment string, err error)
}
