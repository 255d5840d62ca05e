package gdndoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown, preserving
	// headings, emphasis, lists, inline and block code, tables and link
	// targets. The transform is pure: no network or filesystem access.
	Convert(html string) (string, error)
}
