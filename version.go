package gdndoc

// DocVersion identifies one of the documentation trees on the source
// site. It selects both the URL query scheme used during discovery and
// the top-level output subdirectory.
type DocVersion string

// Documentation versions published by the source site.
const (
	VersionScript     DocVersion = "script"
	VersionEngine     DocVersion = "engine"
	VersionFoundation DocVersion = "foundation"
)

// ParseDocVersion converts a raw query parameter value to a DocVersion.
// Returns EINVALID for values outside the known set.
func ParseDocVersion(s string) (DocVersion, error) {
	switch v := DocVersion(s); v {
	case VersionScript, VersionEngine, VersionFoundation:
		return v, nil
	default:
		return "", Errorf(EINVALID, "unknown documentation version %q", s)
	}
}

// Valid reports whether v is one of the known documentation versions.
func (v DocVersion) Valid() bool {
	_, err := ParseDocVersion(string(v))
	return err == nil
}
