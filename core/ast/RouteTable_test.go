package ast_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/routegen/core/ast"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		template ast.PathTemplate
		method   ast.Method
		expected string
	}{
		{"qualified POST", ast.PathTemplate{"s3", "bucket"}, ast.POST, "s3::post_bucket"},
		{"single GET", ast.PathTemplate{"index"}, ast.GET, "get_index"},
		{"qualified GET", ast.PathTemplate{"paste", "pastes"}, ast.GET, "paste::get_pastes"},
		{"PUT", ast.PathTemplate{"bar"}, ast.PUT, "put_bar"},
		{"DELETE deep", ast.PathTemplate{"a", "b", "c"}, ast.DELETE, "a::b::delete_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.template.Derive(tt.method).String(), tt.expected)
		})
	}
}

func TestDeriveDoesNotMutate(t *testing.T) {
	template := ast.PathTemplate{"paste", "paste"}
	_ = template.Derive(ast.POST)
	assert.Equal(t, template.String(), "paste::paste")

	// Independent derivations from the same template must not interfere.
	get := template.Derive(ast.GET)
	post := template.Derive(ast.POST)
	assert.Equal(t, get.String(), "paste::get_paste")
	assert.Equal(t, post.String(), "paste::post_paste")
}

func TestMethodFromKeyword(t *testing.T) {
	for _, kw := range []string{"GET", "POST", "PUT", "DELETE"} {
		m, ok := ast.MethodFromKeyword(kw)
		assert.True(t, ok)
		assert.Equal(t, string(m), kw)
	}

	for _, kw := range []string{"get", "PATCH", "FETCH", "", "Get"} {
		_, ok := ast.MethodFromKeyword(kw)
		assert.Equal(t, ok, false)
	}
}

func TestMethodLower(t *testing.T) {
	assert.Equal(t, ast.GET.Lower(), "get")
	assert.Equal(t, ast.POST.Lower(), "post")
	assert.Equal(t, ast.PUT.Lower(), "put")
	assert.Equal(t, ast.DELETE.Lower(), "delete")
}
