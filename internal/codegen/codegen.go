// Package codegen emits a small Go source file that registers a
// pattern for eager compilation at package-init time, rather than at
// first use. It sits outside the matching core; nothing in /nfa or
// /syntax imports it.
package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
)

// Pattern is one compiled-pattern registration to emit.
type Pattern struct {
	VarName string // exported Go identifier for the generated *tnfa.Regexp
	Regex   string
	Dotall  bool
}

const tnfaPkg = "github.com/ashgrove/tnfa"

// Generate renders a Go source file, in package pkgName, that imports
// the root tnfa package and declares one package-level *tnfa.Regexp
// per Pattern, each in its own var declaration compiled via
// MustCompile, so that a
// bad pattern panics at program init instead of at first use.
func Generate(pkgName string, patterns []Pattern) (string, error) {
	if len(patterns) == 0 {
		return "", fmt.Errorf("codegen: no patterns given")
	}

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by internal/codegen. DO NOT EDIT.")

	for _, p := range patterns {
		f.Var().Id(p.VarName).Op("=").Qual(tnfaPkg, "MustCompile").Call(
			jen.Lit(p.Regex),
			jen.Qual(tnfaPkg, "Options").Values(jen.Dict{
				jen.Id("Dotall"): jen.Lit(p.Dotall),
			}),
		)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
