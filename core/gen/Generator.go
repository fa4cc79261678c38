// Package gen emits the imperative builder chain for a parsed route table.
// Generation is a pure left fold over the table: each entry appends exactly
// one chained operation to the accumulator, in source order, so identical
// tables always produce byte-identical output.
package gen

import (
	"strconv"
	"strings"

	"github.com/rohanthewiz/routegen/core/ast"
)

// Config controls the rendered Go text.
type Config struct {
	// RouterAlias is the package identifier the emitted code uses for the
	// router constructor and the per-method binding constructors,
	// e.g. "routing" in routing.New() and routing.Get(h).
	RouterAlias string

	// Indent prefixes each chained operation's line.
	Indent string
}

const defaultAlias = "routing"

func (c Config) alias() string {
	if c.RouterAlias == "" {
		return defaultAlias
	}
	return c.RouterAlias
}

func (c Config) indent() string {
	if c.Indent == "" {
		return "\t"
	}
	return c.Indent
}

// Generate renders the builder-chain expression for table. The chain starts
// from table.Base when present, else from the fresh-router default, and
// applies one operation per entry in table order:
//
//	routing.New().
//		At("/", routing.Get(get_index)).
//		Nest("/admin", adminRoutes())
//
// An empty table renders the start expression alone.
func Generate(table *ast.RouteTable, cfg Config) string {
	var sb strings.Builder

	if table.Base != "" {
		sb.WriteString(table.Base)
	} else {
		sb.WriteString(cfg.alias())
		sb.WriteString(".New()")
	}

	for _, entry := range table.Routes {
		sb.WriteString(".\n")
		sb.WriteString(cfg.indent())
		switch rt := entry.(type) {
		case ast.NormalRoute:
			writeAt(&sb, rt, cfg)
		case ast.NestedRoute:
			writeNest(&sb, rt)
		}
	}

	return sb.String()
}

// writeAt renders At(path, <method chain>). The first method uses the
// constructor form routing.Get(h); each following method chains .Post(h)
// onto the same entry, preserving source order.
func writeAt(sb *strings.Builder, rt ast.NormalRoute, cfg Config) {
	sb.WriteString("At(")
	sb.WriteString(strconv.Quote(rt.Path))
	sb.WriteString(", ")

	for i, m := range rt.Methods {
		if i == 0 {
			sb.WriteString(cfg.alias())
			sb.WriteByte('.')
		} else {
			sb.WriteByte('.')
		}
		sb.WriteString(bindName(m))
		sb.WriteByte('(')
		sb.WriteString(handlerRef(rt.Template, m))
		sb.WriteByte(')')
	}

	sb.WriteByte(')')
}

// writeNest renders Nest(path, <endpoint>), splicing the captured endpoint
// text verbatim.
func writeNest(sb *strings.Builder, rt ast.NestedRoute) {
	sb.WriteString("Nest(")
	sb.WriteString(strconv.Quote(rt.MountPath))
	sb.WriteString(", ")
	sb.WriteString(rt.Endpoint)
	sb.WriteByte(')')
}

// handlerRef renders the derived handler reference for one method:
// template segments join with "." and the last segment gains the
// lowercased-method prefix, e.g. paste::paste + POST -> paste.post_paste.
func handlerRef(template ast.PathTemplate, m ast.Method) string {
	return strings.Join(template.Derive(m), ".")
}

// bindName maps a method keyword to the builder's binding call: GET -> Get.
func bindName(m ast.Method) string {
	lower := m.Lower()
	return strings.ToUpper(lower[:1]) + lower[1:]
}
