// Package routegen compiles a declarative route table into the imperative
// Go code that constructs the router. The pipeline is a single deterministic
// pass: tokenize, parse to a RouteTable, then fold the table into a chained
// builder expression. Nothing is retained between invocations.
package routegen

import (
	"github.com/rohanthewiz/routegen/core/ast"
	"github.com/rohanthewiz/routegen/core/gen"
	"github.com/rohanthewiz/routegen/core/parse"
)

// Parse parses route-table source into its intermediate representation.
// The returned table is immutable by convention: it is built here and only
// ever read afterwards.
func Parse(src string) (*ast.RouteTable, error) {
	return parse.Parse(src)
}

// Compile parses src and returns the builder-chain expression alone,
// without any file wrapping. Callers splice the result themselves.
func Compile(src string, cfg Config) (string, error) {
	cfg.LoadDefaults()

	table, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	return gen.Generate(table, gen.Config{RouterAlias: cfg.Router.Alias}), nil
}
