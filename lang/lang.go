// Package lang defines the shared parser contract implemented by each
// input format cnvx understands (lang/gmpl, lang/mps, lang/ampl).
package lang

import "github.com/cnvxlabs/cnvx"

// Parser turns source text in some modelling language into a Model.
type Parser interface {
	Parse(src string) (*cnvx.Model, error)
}
