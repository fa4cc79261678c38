package lex

import "fmt"

// Kind classifies a scanned token.
type Kind uint8

const (
	EOF Kind = iota
	Error
	String  // "..." literal; Value holds the unquoted content
	Ident   // plain identifier (method keywords are contextual identifiers)
	PathSep // ::
	LBrace
	RBrace
	Star
	Comma
	Block // raw balanced { ... } capture; Value holds the inner text
	Expr  // raw base-expression capture; Value holds the text
)

// String returns a reader-facing name for the token kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Error:
		return "error"
	case String:
		return "string literal"
	case Ident:
		return "identifier"
	case PathSep:
		return `"::"`
	case LBrace:
		return `"{"`
	case RBrace:
		return `"}"`
	case Star:
		return `"*"`
	case Comma:
		return `","`
	case Block:
		return "code block"
	case Expr:
		return "expression"
	}
	return "unknown token"
}

// Position is a 1-based line:column location in the source.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a single scanned unit handed to the parser.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
}

// Describe renders the token for diagnostics, quoting its text where useful.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier %q", t.Value)
	case String:
		return fmt.Sprintf("string literal %q", t.Value)
	case Error:
		return t.Value
	default:
		return t.Kind.String()
	}
}
