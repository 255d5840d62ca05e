package gdndoc

// Status describes the outcome of persisting one work unit.
type Status string

// Persistence outcomes.
const (
	// StatusWritten means the page was fetched, converted and written.
	StatusWritten Status = "written"

	// StatusSkipped means a file already existed at the target path and
	// was left untouched (resume semantics).
	StatusSkipped Status = "skipped-existing"

	// StatusFailed means the page produced no file. Err holds the cause.
	StatusFailed Status = "failed"
)

// OutputRecord is the durable outcome of processing one work unit. The
// accumulated records of a run are the sole input to manifest and index
// generation.
type OutputRecord struct {
	Version  DocVersion
	Category string
	Item     string

	// Path is relative to the output directory, using forward slashes,
	// so it can be embedded directly in the manifest and index links.
	Path string

	Status Status

	// ContentHash is the xxhash of the markdown body, set only for
	// written records (skipped files are never read back).
	ContentHash string

	// Err is the underlying failure for StatusFailed records. It is
	// retained for reporting and never re-consulted by the pipeline.
	Err error
}
