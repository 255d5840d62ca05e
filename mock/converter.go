package mock

import "github.com/fwojciec/gdndoc"

var _ gdndoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of gdndoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
