package routegen

import (
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/routegen/core/ast"
)

// RouteDocs renders an HTML summary of a parsed route table: one row per
// entry, in table order, with the handler names each method derives to.
// Handy as a quick reference page for the generated router.
func RouteDocs(table *ast.RouteTable, title string) string {
	b := element.NewBuilder()
	element.RenderComponents(b, docPage{Title: title, Table: table})
	return b.String()
}

type docPage struct {
	Title string
	Table *ast.RouteTable
}

func (p docPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: Arial, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px; }
				table { border-collapse: collapse; width: 100%; }
				th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
				th { background: #e9ecef; }
				code { background: #f6f8fa; padding: 1px 4px; }
			`),
		),
		b.Body().R(
			b.H1().T(p.Title),
			element.RenderComponents(b, baseNote{Base: p.Table.Base}),
			b.Table().R(
				b.Tr().R(
					b.Th().T("Path"),
					b.Th().T("Methods"),
					b.Th().T("Handlers"),
				),
				element.RenderComponents(b, p.rows()...),
			),
		),
	)
	return nil
}

func (p docPage) rows() (rows []element.Component) {
	for _, entry := range p.Table.Routes {
		switch rt := entry.(type) {
		case ast.NormalRoute:
			handlers := make([]string, len(rt.Methods))
			methods := make([]string, len(rt.Methods))
			for i, m := range rt.Methods {
				methods[i] = string(m)
				handlers[i] = rt.Template.Derive(m).String()
			}
			rows = append(rows, docRow{
				Path:     rt.Path,
				Methods:  strings.Join(methods, ", "),
				Handlers: strings.Join(handlers, ", "),
			})
		case ast.NestedRoute:
			rows = append(rows, docRow{
				Path:     rt.MountPath,
				Methods:  "(nested)",
				Handlers: rt.Endpoint,
			})
		}
	}
	return rows
}

// baseNote shows a non-default base expression above the table.
type baseNote struct {
	Base string
}

func (n baseNote) Render(b *element.Builder) any {
	if n.Base != "" {
		b.P().R(
			b.T("Base expression: "),
			b.Code().T(n.Base),
		)
	}
	return nil
}

type docRow struct {
	Path     string
	Methods  string
	Handlers string
}

func (r docRow) Render(b *element.Builder) any {
	b.Tr().R(
		b.Td().R(b.Code().T(r.Path)),
		b.Td().T(r.Methods),
		b.Td().R(b.Code().T(r.Handlers)),
	)
	return nil
}
