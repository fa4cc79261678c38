package routegen

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rohanthewiz/routegen/core/ast"
	"github.com/rohanthewiz/routegen/core/gen"
	"github.com/rohanthewiz/routegen/core/parse"
	"github.com/rohanthewiz/serr"
)

// CompileFile reads cfg.Source and renders a complete generated Go file:
// header, package clause, imports, and one function returning the built
// router. The table itself is compiled exactly as Compile would.
func CompileFile(cfg Config) ([]byte, error) {
	cfg.LoadDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Source == "" {
		return nil, serr.New("config source: a route-table file is required")
	}
	if cfg.Package == "" {
		return nil, serr.New("config package: required for file output")
	}
	if cfg.Router.Import == "" {
		return nil, serr.New("config router.import: required for file output")
	}

	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		return nil, serr.Wrap(err, "reading route source")
	}

	table, err := parse.Parse(string(data))
	if err != nil {
		return nil, err
	}

	return renderFile(table, cfg), nil
}

// WriteFile compiles cfg.Source and writes the result to cfg.Output.
// On any failure nothing is written; there is no partial output.
func WriteFile(cfg Config) error {
	cfg.LoadDefaults()

	out, err := CompileFile(cfg)
	if err != nil {
		return err
	}
	if err = os.WriteFile(cfg.Output, out, 0644); err != nil {
		return serr.Wrap(err, "writing generated file")
	}
	return nil
}

func renderFile(table *ast.RouteTable, cfg Config) []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, "// Code generated by routegen from %s. DO NOT EDIT.\n\n",
		filepath.Base(cfg.Source))
	fmt.Fprintf(&sb, "package %s\n\n", cfg.Package)

	writeImports(&sb, cfg)

	fmt.Fprintf(&sb, "func %s() *%s.%s {\n", cfg.Func, cfg.Router.Alias, cfg.Router.Type)
	sb.WriteString("\treturn ")
	sb.WriteString(gen.Generate(table, gen.Config{RouterAlias: cfg.Router.Alias, Indent: "\t\t"}))
	sb.WriteString("\n}\n")

	return []byte(sb.String())
}

func writeImports(sb *strings.Builder, cfg Config) {
	sb.WriteString("import (\n")

	if cfg.Router.Alias == path.Base(cfg.Router.Import) {
		fmt.Fprintf(sb, "\t%q\n", cfg.Router.Import)
	} else {
		fmt.Fprintf(sb, "\t%s %q\n", cfg.Router.Alias, cfg.Router.Import)
	}

	if len(cfg.Imports) > 0 {
		extra := append([]string(nil), cfg.Imports...)
		sort.Strings(extra)
		sb.WriteString("\n")
		for _, imp := range extra {
			fmt.Fprintf(sb, "\t%q\n", imp)
		}
	}

	sb.WriteString(")\n\n")
}
