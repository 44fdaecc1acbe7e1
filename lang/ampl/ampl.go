// Package ampl is a placeholder for an AMPL dialect parser. AMPL's
// grammar is large enough that no subset of it is implemented yet;
// Parse always reports cnvx.ErrUnsupported.
package ampl

import (
	"fmt"

	"github.com/cnvxlabs/cnvx"
)

// Language recognizes the .ampl extension but cannot parse it yet.
type Language struct{}

// New returns a Language parser.
func New() Language {
	return Language{}
}

// Parse implements lang.Parser. It always fails: see the package doc.
func (Language) Parse(src string) (*cnvx.Model, error) {
	return nil, fmt.Errorf("ampl: %w", cnvx.ErrUnsupported)
}
