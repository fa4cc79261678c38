// Package parse turns route-table source into an ast.RouteTable. It is a
// single-pass recursive-descent parser with one token of lookahead; the
// leading token of each route ("*" vs a string literal) picks the route
// form, so no backtracking is ever needed.
package parse

import (
	"fmt"

	"github.com/rohanthewiz/routegen/consts"
	"github.com/rohanthewiz/routegen/core/ast"
	"github.com/rohanthewiz/routegen/core/lex"
)

// SyntaxError reports the first point where the source stops matching the
// grammar. Errors are fatal to the whole invocation: there is no recovery
// and no partial table.
type SyntaxError struct {
	Pos      lex.Position
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Pos, e.Expected, e.Got)
}

// Parse consumes the whole source and returns the parsed table, or the
// first *SyntaxError encountered.
func Parse(src string) (*ast.RouteTable, error) {
	p := &parser{lx: lex.New(src)}
	return p.parseTable()
}

type parser struct {
	lx     *lex.Lexer
	buf    lex.Token
	buffed bool
}

// next returns the lookahead token if one is buffered, else scans.
func (p *parser) next() lex.Token {
	if p.buffed {
		p.buffed = false
		return p.buf
	}
	return p.lx.Next()
}

func (p *parser) peek() lex.Token {
	if !p.buffed {
		p.buf = p.lx.Next()
		p.buffed = true
	}
	return p.buf
}

// errAt builds a SyntaxError for tok. Lexer error tokens carry their own
// message, which wins over the caller's description of tok.
func errAt(tok lex.Token, expected string) *SyntaxError {
	if tok.Kind == lex.Error {
		return &SyntaxError{Pos: tok.Pos, Expected: tok.Value}
	}
	return &SyntaxError{Pos: tok.Pos, Expected: expected, Got: tok.Describe()}
}

// parseTable handles: body = [ EXPR "," ] "{" route { route } "}"
func (p *parser) parseTable() (*ast.RouteTable, error) {
	table := &ast.RouteTable{}

	// A body that does not open with a brace starts with a base expression.
	// The expression is raw-captured up to the separating comma, so it must
	// be detected by byte peeking rather than by tokenizing.
	b, ok := p.lx.PeekByte()
	if !ok {
		return nil, &SyntaxError{Pos: lex.Position{Line: 1, Col: 1}, Expected: `expected "{" or a base expression`, Got: "end of input"}
	}
	if b != consts.RuneBraceOpen {
		tok := p.lx.CaptureExpr()
		if tok.Kind == lex.Error {
			return nil, errAt(tok, "")
		}
		// The grammar has no empty-expression production: a leading bare
		// comma is not "no base", it is a syntax error.
		if tok.Value == "" {
			return nil, &SyntaxError{Pos: tok.Pos, Expected: `expected a base expression before ","`}
		}
		table.Base = tok.Value
	}

	if tok := p.next(); tok.Kind != lex.LBrace {
		return nil, errAt(tok, `"{" to open the route table`)
	}

	for {
		tok := p.peek()
		switch tok.Kind {
		case lex.RBrace:
			p.next()
			if trailing := p.next(); trailing.Kind != lex.EOF {
				return nil, errAt(trailing, "end of input after the route table")
			}
			return table, nil
		case lex.EOF, lex.Error:
			return nil, errAt(p.next(), `"}" to close the route table`)
		}

		route, err := p.parseRoute()
		if err != nil {
			return nil, err
		}
		table.Routes = append(table.Routes, route)
	}
}

// parseRoute handles: route = "*" STRING BLOCK | STRING path methods
func (p *parser) parseRoute() (ast.RouteEntry, error) {
	switch tok := p.peek(); tok.Kind {
	case lex.Star:
		p.next()
		return p.parseNested()
	case lex.String:
		return p.parseNormal()
	default:
		return nil, errAt(p.next(), `a route ("*" for a nested route, or a path string literal)`)
	}
}

func (p *parser) parseNested() (ast.RouteEntry, error) {
	path := p.next()
	if path.Kind != lex.String {
		return nil, errAt(path, "a mount path string literal after \"*\"")
	}

	// The endpoint block is opaque: captured verbatim, never re-parsed.
	// Raw capture is only legal here because the path token above emptied
	// the lookahead buffer.
	block := p.lx.CaptureBlock()
	if block.Kind == lex.Error {
		return nil, errAt(block, "")
	}

	return ast.NestedRoute{MountPath: path.Value, Endpoint: block.Value}, nil
}

func (p *parser) parseNormal() (ast.RouteEntry, error) {
	path := p.next() // string literal, already peeked

	template, err := p.parseTemplate()
	if err != nil {
		return nil, err
	}

	methods, err := p.parseMethods()
	if err != nil {
		return nil, err
	}

	return ast.NormalRoute{Path: path.Value, Template: template, Methods: methods}, nil
}

// parseTemplate handles: path = IDENT { "::" IDENT }
func (p *parser) parseTemplate() (ast.PathTemplate, error) {
	seg := p.next()
	if seg.Kind != lex.Ident {
		return nil, errAt(seg, "a handler name (identifier)")
	}
	template := ast.PathTemplate{seg.Value}

	for p.peek().Kind == lex.PathSep {
		p.next()
		seg = p.next()
		if seg.Kind != lex.Ident {
			return nil, errAt(seg, `an identifier after "::"`)
		}
		template = append(template, seg.Value)
	}

	return template, nil
}

// parseMethods handles: methods = method { method }. The list runs greedily
// until the lookahead is not a recognized method keyword; that token is left
// buffered for the next route.
func (p *parser) parseMethods() ([]ast.Method, error) {
	var methods []ast.Method
	seen := map[ast.Method]bool{}

	for {
		tok := p.peek()
		if tok.Kind != lex.Ident {
			break
		}
		m, ok := ast.MethodFromKeyword(tok.Value)
		if !ok {
			break
		}
		if seen[m] {
			return nil, &SyntaxError{Pos: tok.Pos, Expected: fmt.Sprintf("method %s bound twice on one route", m)}
		}
		seen[m] = true
		methods = append(methods, m)
		p.next()
	}

	if len(methods) == 0 {
		return nil, errAt(p.peek(), "at least one method keyword (GET, POST, PUT or DELETE)")
	}
	return methods, nil
}
