package mock

import "github.com/fwojciec/clipvault"

var _ clipvault.Converter = (*Converter)(nil)

// Converter is a mock implementation of clipvault.Converter.
type Converter struct {
	ConvertFn func(html, sourceURL string) (string, error)
}

func (c *Converter) Convert(html, sourceURL string) (string, error) {
	return c.ConvertFn(html, sourceURL)
}
