// Package gdndoc provides an offline mirror tool for the GIANTS
// Developer Network scripting documentation. It crawls the
// documentation site, extracts the content region of each class and
// function page, converts it to markdown, and persists it to a
// deterministic file layout together with a machine-readable manifest
// and a human-readable index.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// htmltomarkdown/, fs/).
package gdndoc
