package token

import (
	"mockable/internal/source"
)

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Newline
	Ident

	// keywords
	KwProtocol
	KwFunc
	KwVar
	KwAsync
	KwThrows
	KwPublic
	KwInternal
	KwPrivate
	KwStatic

	// punctuation
	At        // @
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Question  // ?
	Arrow     // ->
	Dot       // .
	Equals    // =
	Underscore
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	EOF:        "end of file",
	Newline:    "newline",
	Ident:      "identifier",
	KwProtocol: "'protocol'",
	KwFunc:     "'func'",
	KwVar:      "'var'",
	KwAsync:    "'async'",
	KwThrows:   "'throws'",
	KwPublic:   "'public'",
	KwInternal: "'internal'",
	KwPrivate:  "'private'",
	KwStatic:   "'static'",
	At:         "'@'",
	LParen:     "'('",
	RParen:     "')'",
	LBracket:   "'['",
	RBracket:   "']'",
	LBrace:     "'{'",
	RBrace:     "'}'",
	Comma:      "','",
	Colon:      "':'",
	Semicolon:  "';'",
	Question:   "'?'",
	Arrow:      "'->'",
	Dot:        "'.'",
	Equals:     "'='",
	Underscore: "'_'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

var keywords = map[string]Kind{
	"protocol": KwProtocol,
	"func":     KwFunc,
	"var":      KwVar,
	"async":    KwAsync,
	"throws":   KwThrows,
	"public":   KwPublic,
	"internal": KwInternal,
	"private":  KwPrivate,
	"static":   KwStatic,
}

// Lookup maps an identifier to its keyword kind, or Ident if it is not a
// keyword. A bare "_" is its own token.
func Lookup(ident string) Kind {
	if ident == "_" {
		return Underscore
	}
	if kind, ok := keywords[ident]; ok {
		return kind
	}

	return Ident
}

// Token is a single lexeme with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsAccess reports whether the token is an access-level keyword.
func (t Token) IsAccess() bool {
	switch t.Kind {
	case KwPublic, KwInternal, KwPrivate:
		return true
	default:
		return false
	}
}
