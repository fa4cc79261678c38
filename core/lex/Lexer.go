package lex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rohanthewiz/routegen/consts"
)

// Lexer scans route-table source into typed tokens. The parser drives it:
// ordinary tokens come from Next, while the two raw-capture entry points
// (CaptureExpr, CaptureBlock) hand back verbatim text that is never re-scanned.
type Lexer struct {
	src  string
	off  int
	line int
	col  int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Next scans and returns the next token. Scan failures are reported as a
// token of kind Error carrying the position and a message; Next never
// panics and keeps returning EOF once the input is exhausted.
func (l *Lexer) Next() Token {
	l.skipSpace()
	pos := l.pos()

	if l.off >= len(l.src) {
		return Token{Kind: EOF, Pos: pos}
	}

	c := l.src[l.off]
	switch {
	case c == consts.RuneQuote:
		return l.scanString(pos)
	case isIdentStart(c):
		return l.scanIdent(pos)
	}

	switch c {
	case consts.RuneBraceOpen:
		l.advance()
		return Token{Kind: LBrace, Pos: pos}
	case consts.RuneBraceClose:
		l.advance()
		return Token{Kind: RBrace, Pos: pos}
	case consts.RuneStar:
		l.advance()
		return Token{Kind: Star, Pos: pos}
	case consts.RuneComma:
		l.advance()
		return Token{Kind: Comma, Pos: pos}
	case consts.RuneColon:
		l.advance()
		if l.off < len(l.src) && l.src[l.off] == consts.RuneColon {
			l.advance()
			return Token{Kind: PathSep, Pos: pos}
		}
		return Token{Kind: Error, Value: `unexpected ":" (path segments are separated by "::")`, Pos: pos}
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	l.advance()
	return Token{Kind: Error, Value: fmt.Sprintf("unexpected character %q", r), Pos: pos}
}

// PeekByte reports the first significant byte without consuming it.
// Leading whitespace and comments are skipped. ok is false at end of input.
func (l *Lexer) PeekByte() (b byte, ok bool) {
	l.skipSpace()
	if l.off >= len(l.src) {
		return 0, false
	}
	return l.src[l.off], true
}

// CaptureExpr captures a raw base expression up to the first comma at
// bracket depth zero, consuming the comma. The expression text is kept
// verbatim (trimmed) and never re-scanned.
func (l *Lexer) CaptureExpr() Token {
	l.skipSpace()
	pos := l.pos()
	start := l.off

	depth := 0
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch c {
		case consts.RuneComma:
			if depth == 0 {
				text := strings.TrimSpace(l.src[start:l.off])
				l.advance() // consume the comma
				return Token{Kind: Expr, Value: text, Pos: pos}
			}
			l.advance()
		case '(', '[', consts.RuneBraceOpen:
			depth++
			l.advance()
		case ')', ']', consts.RuneBraceClose:
			depth--
			l.advance()
		case consts.RuneQuote, '\'', '`':
			if tok, ok := l.skipQuoted(c, pos); !ok {
				return tok
			}
		case consts.RuneSlash:
			l.skipIfComment()
		default:
			l.advance()
		}
	}

	return Token{Kind: Error, Value: `expected "," after base expression`, Pos: pos}
}

// CaptureBlock captures a raw balanced { ... } region and returns its inner
// text trimmed. String literals and comments inside the block do not affect
// brace balancing.
func (l *Lexer) CaptureBlock() Token {
	l.skipSpace()
	pos := l.pos()

	if l.off >= len(l.src) || l.src[l.off] != consts.RuneBraceOpen {
		got := "end of input"
		if l.off < len(l.src) {
			r, _ := utf8.DecodeRuneInString(l.src[l.off:])
			got = fmt.Sprintf("%q", r)
		}
		return Token{Kind: Error, Value: fmt.Sprintf(`expected "{" to open the endpoint block, got %s`, got), Pos: pos}
	}
	l.advance()
	start := l.off

	depth := 1
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch c {
		case consts.RuneBraceOpen:
			depth++
			l.advance()
		case consts.RuneBraceClose:
			depth--
			if depth == 0 {
				text := strings.TrimSpace(l.src[start:l.off])
				l.advance()
				return Token{Kind: Block, Value: text, Pos: pos}
			}
			l.advance()
		case consts.RuneQuote, '\'', '`':
			if tok, ok := l.skipQuoted(c, pos); !ok {
				return tok
			}
		case consts.RuneSlash:
			l.skipIfComment()
		default:
			l.advance()
		}
	}

	return Token{Kind: Error, Value: "unterminated code block", Pos: pos}
}

func (l *Lexer) scanString(pos Position) Token {
	l.advance() // opening quote
	var sb strings.Builder

	for l.off < len(l.src) {
		c := l.src[l.off]
		switch c {
		case consts.RuneQuote:
			l.advance()
			return Token{Kind: String, Value: sb.String(), Pos: pos}
		case consts.RuneBackslash:
			l.advance()
			if l.off >= len(l.src) {
				break
			}
			esc := l.src[l.off]
			// Only \" and \\ are meaningful in a path literal. Anything
			// else is rejected outright: passing it through would get
			// re-escaped when the generator quotes the path, so the
			// intended character could never reach the emitted literal.
			if esc != consts.RuneQuote && esc != consts.RuneBackslash {
				return Token{Kind: Error, Value: fmt.Sprintf(`unsupported escape \%c in string literal`, esc), Pos: pos}
			}
			sb.WriteByte(esc)
			l.advance()
		case '\n':
			return Token{Kind: Error, Value: "unterminated string literal", Pos: pos}
		default:
			sb.WriteByte(c)
			l.advance()
		}
	}

	return Token{Kind: Error, Value: "unterminated string literal", Pos: pos}
}

func (l *Lexer) scanIdent(pos Position) Token {
	start := l.off
	for l.off < len(l.src) && isIdentPart(l.src[l.off]) {
		l.advance()
	}
	return Token{Kind: Ident, Value: l.src[start:l.off], Pos: pos}
}

// skipQuoted consumes a quoted literal opened by quote during raw capture.
// Returns ok=false with an Error token when the literal never closes.
func (l *Lexer) skipQuoted(quote byte, pos Position) (Token, bool) {
	l.advance() // opening quote
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == consts.RuneBackslash && quote != '`' {
			l.advance()
			if l.off < len(l.src) {
				l.advance()
			}
			continue
		}
		l.advance()
		if c == quote {
			return Token{}, true
		}
	}
	return Token{Kind: Error, Value: "unterminated string literal", Pos: pos}, false
}

// skipIfComment consumes a // comment to end of line, or a single slash
// when no comment starts here.
func (l *Lexer) skipIfComment() {
	if l.off+1 < len(l.src) && l.src[l.off+1] == consts.RuneSlash {
		for l.off < len(l.src) && l.src[l.off] != '\n' {
			l.advance()
		}
		return
	}
	l.advance()
}

func (l *Lexer) skipSpace() {
	for l.off < len(l.src) {
		switch l.src[l.off] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case consts.RuneSlash:
			if l.off+1 < len(l.src) && l.src[l.off+1] == consts.RuneSlash {
				l.skipIfComment()
				continue
			}
			return
		default:
			return
		}
	}
}

func (l *Lexer) advance() {
	if l.off >= len(l.src) {
		return
	}
	if l.src[l.off] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.off++
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Col: l.col}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
