package gdndoc

// CategoryRef represents a category entry discovered on the landing
// page. Key is the raw category query parameter; Name is the link text
// shown in the sidebar and is what the output directory is named after.
// URL points at the category listing page.
type CategoryRef struct {
	Version DocVersion
	Key     string
	Name    string
	URL     string
}

// Unit returns the work unit for the category entry itself. Categories
// whose listing page exposes no nested items are documented directly on
// their entry page, so the entry doubles as the single item.
func (r CategoryRef) Unit() WorkUnit {
	return WorkUnit{
		Version:  r.Version,
		Category: r.Name,
		Item:     r.Name,
		URL:      r.URL,
	}
}

// WorkUnit is one discovered documentation page: a class (script) or
// function (engine/foundation) within a category. Work units are
// created during discovery and consumed once; they are never mutated.
type WorkUnit struct {
	Version  DocVersion
	Category string
	Item     string
	URL      string
}

// Validate returns an error if the work unit contains invalid fields.
func (u WorkUnit) Validate() error {
	if !u.Version.Valid() {
		return Errorf(EINVALID, "work unit version required")
	}
	if u.Category == "" {
		return Errorf(EINVALID, "work unit category required")
	}
	if u.Item == "" {
		return Errorf(EINVALID, "work unit item required")
	}
	if u.URL == "" {
		return Errorf(EINVALID, "work unit URL required")
	}
	return nil
}
