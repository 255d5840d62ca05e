package mock

import "github.com/fwojciec/gdndoc"

var _ gdndoc.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of gdndoc.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *ContentExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
