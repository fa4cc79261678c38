package gen_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/routegen/core/ast"
	"github.com/rohanthewiz/routegen/core/gen"
)

func canonicalTable() *ast.RouteTable {
	return &ast.RouteTable{
		Routes: []ast.RouteEntry{
			ast.NormalRoute{Path: "/", Template: ast.PathTemplate{"index"}, Methods: []ast.Method{ast.GET}},
			ast.NormalRoute{Path: "/pastes", Template: ast.PathTemplate{"paste", "pastes"}, Methods: []ast.Method{ast.GET}},
			ast.NormalRoute{Path: "/pastes/:id", Template: ast.PathTemplate{"paste", "paste"}, Methods: []ast.Method{ast.GET, ast.POST}},
			ast.NestedRoute{MountPath: "/admin", Endpoint: "admin.BuildRoutes()"},
		},
	}
}

func TestGenerateCanonical(t *testing.T) {
	out := gen.Generate(canonicalTable(), gen.Config{})

	expected := "routing.New().\n" +
		"\tAt(\"/\", routing.Get(get_index)).\n" +
		"\tAt(\"/pastes\", routing.Get(paste.get_pastes)).\n" +
		"\tAt(\"/pastes/:id\", routing.Get(paste.get_paste).Post(paste.post_paste)).\n" +
		"\tNest(\"/admin\", admin.BuildRoutes())"
	assert.Equal(t, out, expected)
}

func TestGenerateOrderPreservation(t *testing.T) {
	out := gen.Generate(canonicalTable(), gen.Config{})

	// Emitted operations appear in source order.
	idx := []int{
		strings.Index(out, `At("/"`),
		strings.Index(out, `At("/pastes"`),
		strings.Index(out, `At("/pastes/:id"`),
		strings.Index(out, `Nest("/admin"`),
	}
	for i := 1; i < len(idx); i++ {
		assert.True(t, idx[i-1] >= 0)
		assert.True(t, idx[i] > idx[i-1])
	}
}

func TestGenerateDefaultBase(t *testing.T) {
	out := gen.Generate(&ast.RouteTable{}, gen.Config{})
	assert.Equal(t, out, "routing.New()")

	out = gen.Generate(&ast.RouteTable{}, gen.Config{RouterAlias: "web"})
	assert.Equal(t, out, "web.New()")
}

func TestGenerateExplicitBase(t *testing.T) {
	table := &ast.RouteTable{
		Base: "existing.Clone()",
		Routes: []ast.RouteEntry{
			ast.NormalRoute{Path: "/x", Template: ast.PathTemplate{"x"}, Methods: []ast.Method{ast.DELETE}},
		},
	}
	out := gen.Generate(table, gen.Config{})
	assert.True(t, strings.HasPrefix(out, "existing.Clone()."))
	assert.True(t, strings.Contains(out, `At("/x", routing.Delete(delete_x))`))
}

func TestGenerateEmptyTableWithBase(t *testing.T) {
	// An empty table emits the base expression untouched.
	out := gen.Generate(&ast.RouteTable{Base: "r"}, gen.Config{})
	assert.Equal(t, out, "r")
}

func TestGenerateMethodOrder(t *testing.T) {
	table := &ast.RouteTable{
		Routes: []ast.RouteEntry{
			ast.NormalRoute{
				Path:     "/bar",
				Template: ast.PathTemplate{"bar"},
				Methods:  []ast.Method{ast.POST, ast.GET, ast.PUT},
			},
		},
	}
	out := gen.Generate(table, gen.Config{})
	// First method takes the constructor form; the rest chain in order.
	assert.True(t, strings.Contains(out, `At("/bar", routing.Post(post_bar).Get(get_bar).Put(put_bar))`))
}

func TestGenerateIndent(t *testing.T) {
	table := &ast.RouteTable{
		Routes: []ast.RouteEntry{
			ast.NormalRoute{Path: "/", Template: ast.PathTemplate{"index"}, Methods: []ast.Method{ast.GET}},
		},
	}
	out := gen.Generate(table, gen.Config{Indent: "\t\t"})
	assert.True(t, strings.Contains(out, ".\n\t\tAt("))
}

func TestGenerateQuotesPaths(t *testing.T) {
	table := &ast.RouteTable{
		Routes: []ast.RouteEntry{
			ast.NormalRoute{Path: `/q"uote`, Template: ast.PathTemplate{"q"}, Methods: []ast.Method{ast.GET}},
		},
	}
	out := gen.Generate(table, gen.Config{})
	assert.True(t, strings.Contains(out, `At("/q\"uote"`))
}

func TestGenerateIdempotent(t *testing.T) {
	table := canonicalTable()
	first := gen.Generate(table, gen.Config{})
	second := gen.Generate(table, gen.Config{})
	assert.Equal(t, first, second)
}
