// Package ast holds the parsed representation of a route table. The model is
// built once by the parser and consumed once by the code generator; nothing
// mutates it after parse.
package ast

import (
	"strings"

	"github.com/rohanthewiz/routegen/consts"
)

// Method is an HTTP method keyword as it appears in the route source.
type Method string

const (
	GET    Method = consts.MethodGet
	POST   Method = consts.MethodPost
	PUT    Method = consts.MethodPut
	DELETE Method = consts.MethodDelete
)

// MethodFromKeyword maps a source identifier to a Method.
// ok is false for anything that is not a recognized method keyword.
func MethodFromKeyword(s string) (m Method, ok bool) {
	switch s {
	case consts.MethodGet:
		return GET, true
	case consts.MethodPost:
		return POST, true
	case consts.MethodPut:
		return PUT, true
	case consts.MethodDelete:
		return DELETE, true
	}
	return "", false
}

// Lower returns the lowercase form used in derived handler names.
func (m Method) Lower() string {
	switch m {
	case GET:
		return consts.LowerGet
	case POST:
		return consts.LowerPost
	case PUT:
		return consts.LowerPut
	case DELETE:
		return consts.LowerDelete
	}
	return strings.ToLower(string(m))
}

// PathTemplate is the module-qualified handler name from the route source,
// one identifier per segment. The last segment is the one rewritten per
// method when deriving handler names.
type PathTemplate []string

// Derive returns a new template with the last segment s replaced by
// "<lower(method)>_<s>". The receiver is never modified.
func (t PathTemplate) Derive(m Method) PathTemplate {
	derived := make(PathTemplate, len(t))
	copy(derived, t)
	last := len(derived) - 1
	derived[last] = m.Lower() + "_" + derived[last]
	return derived
}

// String joins the segments with "::" as they appeared in the source.
func (t PathTemplate) String() string {
	return strings.Join(t, consts.PathSep)
}

// RouteEntry is one parsed route. It is a closed union: the only
// implementations are NormalRoute and NestedRoute.
type RouteEntry interface {
	routeEntry()
}

// NormalRoute binds one exact path to handlers derived from Template,
// one per method, in source order.
type NormalRoute struct {
	Path     string
	Template PathTemplate
	Methods  []Method
}

func (NormalRoute) routeEntry() {}

// NestedRoute mounts an opaque endpoint expression under a path prefix.
// Endpoint is the captured block text, spliced into the output verbatim.
type NestedRoute struct {
	MountPath string
	Endpoint  string
}

func (NestedRoute) routeEntry() {}

// RouteTable is the full parsed table. Base is the optional leading
// expression the builder chain starts from; empty means the generator
// supplies the default fresh-router expression. Routes keep source order,
// which the generator preserves in the emitted chain.
type RouteTable struct {
	Base   string
	Routes []RouteEntry
}
