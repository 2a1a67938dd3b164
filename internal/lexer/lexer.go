package lexer

import (
	"fmt"

	"mockable/internal/diag"
	"mockable/internal/source"
	"mockable/internal/token"
)

// Lexer scans a definition file into tokens. Newlines are significant (they
// separate protocol members) and are emitted as tokens; all other whitespace
// and line comments are skipped.
type Lexer struct {
	file *source.File
	bag  *diag.Bag
	off  int
}

func New(file *source.File, bag *diag.Bag) *Lexer {
	return &Lexer{
		file: file,
		bag:  bag,
	}
}

// Scan tokenizes the whole file, always ending with an EOF token.
func Scan(file *source.File, bag *diag.Bag) []token.Token {
	lx := New(file, bag)

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next returns the next token, skipping insignificant input. After the end
// of the file it always returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipInsignificant()

	if lx.eof() {
		return token.Token{
			Kind: token.EOF,
			Span: source.NewSpan(lx.off, lx.off),
		}
	}

	ch := lx.peek()
	switch {
	case ch == '\n':
		return lx.scanNewline()
	case isIdentStart(ch):
		return lx.scanIdent()
	default:
		return lx.scanPunct()
	}
}

func (lx *Lexer) scanNewline() token.Token {
	start := lx.off
	for !lx.eof() && lx.peek() == '\n' {
		lx.off++
		lx.skipInsignificant()
	}

	return token.Token{
		Kind: token.Newline,
		Span: source.NewSpan(start, start+1),
		Text: "\n",
	}
}

func (lx *Lexer) scanIdent() token.Token {
	start := lx.off
	for !lx.eof() && isIdentContinue(lx.peek()) {
		lx.off++
	}

	span := source.NewSpan(start, lx.off)
	text := lx.file.Text(span)

	return token.Token{
		Kind: token.Lookup(text),
		Span: span,
		Text: text,
	}
}

var puncts = map[byte]token.Kind{
	'@': token.At,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'?': token.Question,
	'.': token.Dot,
	'=': token.Equals,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.off
	ch := lx.peek()

	if ch == '-' && lx.peekAt(1) == '>' {
		lx.off += 2

		return token.Token{
			Kind: token.Arrow,
			Span: source.NewSpan(start, lx.off),
			Text: "->",
		}
	}

	lx.off++
	span := source.NewSpan(start, lx.off)

	kind, ok := puncts[ch]
	if !ok {
		lx.bag.Add(diag.NewError(
			diag.SynUnknownChar,
			span,
			fmt.Sprintf("unknown character %q", ch),
		))

		return token.Token{
			Kind: token.Invalid,
			Span: span,
			Text: string(ch),
		}
	}

	return token.Token{
		Kind: kind,
		Span: span,
		Text: lx.file.Text(span),
	}
}

// skipInsignificant consumes spaces, tabs, carriage returns, and line
// comments, but never newlines.
func (lx *Lexer) skipInsignificant() {
	for !lx.eof() {
		switch ch := lx.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r':
			lx.off++
		case ch == '/' && lx.peekAt(1) == '/':
			for !lx.eof() && lx.peek() != '\n' {
				lx.off++
			}
		default:
			return
		}
	}
}

func (lx *Lexer) eof() bool {
	return lx.off >= len(lx.file.Content)
}

func (lx *Lexer) peek() byte {
	return lx.file.Content[lx.off]
}

func (lx *Lexer) peekAt(n int) byte {
	if lx.off+n >= len(lx.file.Content) {
		return 0
	}

	return lx.file.Content[lx.off+n]
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || ch >= '0' && ch <= '9'
}
