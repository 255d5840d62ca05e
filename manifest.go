package gdndoc

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Manifest is the machine-readable index of all files produced by a
// run. It is built once, at the end, from the accumulated output
// records; an interrupted run simply leaves no manifest and the next
// run regenerates it from scratch.
type Manifest struct {
	Metadata ManifestMetadata            `json:"metadata"`
	Versions map[string]*ManifestVersion `json:"versions"`

	// Failures lists work units that produced no file. They are
	// excluded from TotalFiles and from the index.
	Failures []ManifestFailure `json:"failures,omitempty"`
}

// ManifestMetadata carries run-level information.
type ManifestMetadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	SourceURL   string    `json:"source_url"`
	TotalFiles  int       `json:"total_files"`
	RunID       string    `json:"run_id,omitempty"`
}

// ManifestVersion groups categories under one documentation version.
type ManifestVersion struct {
	Categories map[string]*ManifestCategory `json:"categories"`
}

// ManifestCategory lists the items of one category in discovery order.
type ManifestCategory struct {
	Items []ManifestItem `json:"items"`
}

// ManifestItem is one produced file.
type ManifestItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Hash string `json:"hash,omitempty"`
}

// ManifestFailure describes a work unit that produced no file.
type ManifestFailure struct {
	Version  DocVersion `json:"version"`
	Category string     `json:"category"`
	Item     string     `json:"item"`
	Error    string     `json:"error"`
}

// BuildManifest folds output records into a manifest. Written and
// skipped records count toward TotalFiles; failed records are listed
// separately. Item order within a category follows record order, which
// is discovery order, so the manifest is deterministic across runs
// against an unchanged site.
func BuildManifest(records []OutputRecord, sourceURL string, generatedAt time.Time) *Manifest {
	m := &Manifest{
		Metadata: ManifestMetadata{
			GeneratedAt: generatedAt,
			SourceURL:   sourceURL,
		},
		Versions: make(map[string]*ManifestVersion),
	}

	for _, rec := range records {
		if rec.Status == StatusFailed {
			errMsg := "unknown error"
			if rec.Err != nil {
				errMsg = rec.Err.Error()
			}
			m.Failures = append(m.Failures, ManifestFailure{
				Version:  rec.Version,
				Category: rec.Category,
				Item:     rec.Item,
				Error:    errMsg,
			})
			continue
		}

		version, ok := m.Versions[string(rec.Version)]
		if !ok {
			version = &ManifestVersion{Categories: make(map[string]*ManifestCategory)}
			m.Versions[string(rec.Version)] = version
		}

		category, ok := version.Categories[rec.Category]
		if !ok {
			category = &ManifestCategory{}
			version.Categories[rec.Category] = category
		}

		category.Items = append(category.Items, ManifestItem{
			Name: rec.Item,
			Path: rec.Path,
			Hash: rec.ContentHash,
		})
		m.Metadata.TotalFiles++
	}

	return m
}

// RenderIndex renders the human-readable companion document to the
// manifest: a table of contents linking to each version section, and
// within each version a per-category listing of items with relative
// links to their files. Versions, categories and items are sorted
// alphabetically for stable, scannable output.
func RenderIndex(m *Manifest) string {
	var b strings.Builder

	b.WriteString("# FS25 Documentation Index\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", m.Metadata.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Source:** %s\n", m.Metadata.SourceURL)
	fmt.Fprintf(&b, "**Total Files:** %d\n\n", m.Metadata.TotalFiles)
	b.WriteString("---\n\n")

	versions := sortedKeys(m.Versions)

	b.WriteString("## Table of Contents\n\n")
	for _, version := range versions {
		fmt.Fprintf(&b, "- [%s](#%s)\n", strings.ToUpper(version), version)
	}
	b.WriteString("\n---\n\n")

	for _, version := range versions {
		fmt.Fprintf(&b, "## %s\n\n", strings.ToUpper(version))

		categories := m.Versions[version].Categories
		for _, category := range sortedKeys(categories) {
			items := make([]ManifestItem, len(categories[category].Items))
			copy(items, categories[category].Items)
			sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

			fmt.Fprintf(&b, "### %s (%d items)\n\n", category, len(items))
			for _, item := range items {
				fmt.Fprintf(&b, "- [%s](%s)\n", item.Name, item.Path)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
