package syntax

import (
	"fmt"

	"mockable/internal/diag"
	"mockable/internal/lexer"
	"mockable/internal/source"
	"mockable/internal/token"
)

// Parse scans and parses one definition file. Syntax errors are collected in
// the bag; the parser recovers at the next line or declaration, so a single
// malformed member does not hide the rest of the file.
func Parse(file *source.File, bag *diag.Bag) *File {
	p := &parser{
		file: file,
		toks: lexer.Scan(file, bag),
		bag:  bag,
	}

	return p.parseFile()
}

type parser struct {
	file *source.File
	toks []token.Token
	pos  int
	bag  *diag.Bag
}

func (p *parser) parseFile() *File {
	f := &File{
		Source: p.file,
	}

	for {
		p.skipSeparators()
		if p.at(token.EOF) {
			return f
		}

		decl := p.parseDecl()
		if decl != nil {
			f.Decls = append(f.Decls, decl)
		}
	}
}

func (p *parser) parseDecl() Decl {
	var attrs []Attr
	for p.at(token.At) {
		atTok := p.next()
		nameTok, ok := p.expect(token.Ident)
		if !ok {
			p.skipLine()
			return nil
		}

		attrs = append(attrs, Attr{
			Name: nameTok.Text,
			Span: source.Span{Start: atTok.Span.Start, End: nameTok.Span.End},
		})
		p.skipSeparators()
	}

	access := p.parseAccess()

	switch p.cur().Kind {
	case token.KwProtocol:
		return p.parseProtocol(attrs, access)
	case token.Ident, token.KwFunc, token.KwVar:
		return p.parseOtherDecl(attrs)
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur().Span,
			"unexpected %s at top level", p.cur().Kind)
		p.next()
		return nil
	}
}

func (p *parser) parseOtherDecl(attrs []Attr) Decl {
	kwTok := p.next()

	decl := &OtherDecl{
		Attrs:       attrs,
		Keyword:     kwTok.Text,
		KeywordSpan: kwTok.Span,
	}
	if p.at(token.Ident) {
		decl.Name = p.next().Text
	}

	for !p.at(token.Newline) && !p.at(token.EOF) {
		if p.at(token.LBrace) {
			p.skipBalancedBraces()
			continue
		}
		p.next()
	}

	decl.Span = source.Span{Start: kwTok.Span.Start, End: p.prevEnd()}

	return decl
}

func (p *parser) parseAccess() Access {
	if !p.cur().IsAccess() {
		return AccessInternal
	}

	tok := p.next()
	switch tok.Kind {
	case token.KwPublic:
		return AccessPublic
	case token.KwPrivate:
		return AccessPrivate
	default:
		return AccessInternal
	}
}

func (p *parser) parseProtocol(attrs []Attr, access Access) Decl {
	kwTok := p.next()

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.skipLine()
		return nil
	}

	p.skipSeparators()
	if _, ok := p.expect(token.LBrace); !ok {
		p.skipLine()
		return nil
	}

	decl := &ProtocolDecl{
		Attrs:       attrs,
		Access:      access,
		Name:        nameTok.Text,
		NameSpan:    nameTok.Span,
		KeywordSpan: kwTok.Span,
	}

	for {
		p.skipSeparators()
		if p.at(token.RBrace) {
			closeTok := p.next()
			decl.Span = source.Span{Start: kwTok.Span.Start, End: closeTok.Span.End}
			return decl
		}
		if p.at(token.EOF) {
			p.errorf(diag.SynUnclosedBrace, kwTok.Span,
				"protocol %q is missing a closing brace", decl.Name)
			decl.Span = source.Span{Start: kwTok.Span.Start, End: p.cur().Span.End}
			return decl
		}

		member := p.parseMember()
		if member != nil {
			decl.Members = append(decl.Members, member)
		}
	}
}

func (p *parser) parseMember() Member {
	access := p.parseAccess()

	if p.at(token.KwFunc) {
		fn := p.parseFunc(access)
		if fn == nil {
			return nil
		}

		return &FuncMember{Func: fn}
	}

	// Anything else is a non-method member: record its introducing keyword
	// and name, then skip to the end of the line (or over a nested body).
	kwTok := p.next()
	member := &OtherMember{
		Keyword: kwTok.Text,
	}
	if p.at(token.Ident) {
		member.Name = p.next().Text
	}

	for !p.at(token.Newline) && !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.LBrace) {
			p.skipBalancedBraces()
			continue
		}
		p.next()
	}

	member.Span = source.Span{Start: kwTok.Span.Start, End: p.prevEnd()}

	return member
}

func (p *parser) parseFunc(access Access) *FuncDecl {
	kwTok := p.next()

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.skipLine()
		return nil
	}

	fn := &FuncDecl{
		Access:   access,
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
	}

	if _, ok := p.expect(token.LParen); !ok {
		p.skipLine()
		return nil
	}

	p.skipSeparators()
	for !p.at(token.RParen) {
		param, ok := p.parseParam()
		if !ok {
			p.skipLine()
			return nil
		}

		fn.Params = append(fn.Params, param)
		if !p.accept(token.Comma) {
			break
		}
		p.skipSeparators()
	}
	p.skipSeparators()
	if _, ok := p.expect(token.RParen); !ok {
		p.skipLine()
		return nil
	}

	fn.Async = p.accept(token.KwAsync)
	fn.Throws = p.accept(token.KwThrows)

	if p.accept(token.Arrow) {
		fn.Result = p.parseType()
	}

	fn.Span = source.Span{Start: kwTok.Span.Start, End: p.prevEnd()}

	if !p.at(token.Newline) && !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		p.errorf(diag.SynUnexpectedToken, p.cur().Span,
			"unexpected %s after method signature", p.cur().Kind)
		p.skipLine()
	}

	return fn
}

func (p *parser) parseParam() (Param, bool) {
	first := p.cur()
	if first.Kind != token.Ident && first.Kind != token.Underscore {
		p.errorf(diag.SynUnexpectedToken, first.Span,
			"expected parameter name, found %s", first.Kind)
		return Param{}, false
	}
	p.next()

	param := Param{
		Name: first.Text,
	}
	if p.at(token.Ident) {
		param.Label = first.Text
		param.Name = p.next().Text
	} else if first.Kind == token.Underscore {
		p.errorf(diag.SynUnexpectedToken, p.cur().Span,
			"expected parameter name after '_', found %s", p.cur().Kind)
		return Param{}, false
	}

	if _, ok := p.expect(token.Colon); !ok {
		return Param{}, false
	}

	param.Type = p.parseType()
	param.Span = source.Span{Start: first.Span.Start, End: p.prevEnd()}

	return param, true
}

func (p *parser) parseType() TypeExpr {
	t := p.parsePrimaryType()

	for p.accept(token.Question) {
		t = &Optional{Elem: t}
	}

	return t
}

func (p *parser) parsePrimaryType() TypeExpr {
	switch p.cur().Kind {
	case token.Ident:
		name := p.next().Text
		for p.accept(token.Dot) {
			seg, ok := p.expect(token.Ident)
			if !ok {
				break
			}
			name += "." + seg.Text
		}

		return &Named{Name: name}

	case token.LBracket:
		p.next()
		key := p.parseType()
		if p.accept(token.Colon) {
			value := p.parseType()
			p.expect(token.RBracket)

			return &Dictionary{Key: key, Value: value}
		}
		p.expect(token.RBracket)

		return &Array{Elem: key}

	case token.LParen:
		p.next()
		var elems []TypeExpr
		for !p.at(token.RParen) && !p.at(token.EOF) {
			elems = append(elems, p.parseType())
			if !p.accept(token.Comma) {
				break
			}
		}
		p.expect(token.RParen)

		if p.at(token.KwAsync) || p.at(token.KwThrows) || p.at(token.Arrow) {
			fn := &Function{
				Params: elems,
				Async:  p.accept(token.KwAsync),
				Throws: p.accept(token.KwThrows),
			}
			p.expect(token.Arrow)
			fn.Result = p.parseType()

			return fn
		}
		if len(elems) == 1 {
			return elems[0]
		}

		return &Tuple{Elems: elems}

	default:
		p.errorf(diag.SynExpectType, p.cur().Span,
			"expected a type, found %s", p.cur().Kind)
		p.next()

		return &Named{Name: "<error>"}
	}
}

func (p *parser) skipBalancedBraces() {
	openTok := p.next()
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		case token.EOF:
			p.errorf(diag.SynUnclosedBrace, openTok.Span, "unclosed brace")
			return
		}
		p.next()
	}
}

// skipLine advances past the current logical line, balancing any braces it
// opens, so parsing can resume at the next member or declaration.
func (p *parser) skipLine() {
	for !p.at(token.Newline) && !p.at(token.EOF) {
		if p.at(token.LBrace) {
			p.skipBalancedBraces()
			continue
		}
		p.next()
	}
}

func (p *parser) skipSeparators() {
	for p.at(token.Newline) || p.at(token.Semicolon) {
		p.next()
	}
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) next() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}

	return tok
}

func (p *parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *parser) accept(kind token.Kind) bool {
	if !p.at(kind) {
		return false
	}
	p.next()

	return true
}

func (p *parser) expect(kind token.Kind) (token.Token, bool) {
	if !p.at(kind) {
		p.errorf(diag.SynUnexpectedToken, p.cur().Span,
			"expected %s, found %s", kind, p.cur().Kind)
		return p.cur(), false
	}

	return p.next(), true
}

func (p *parser) prevEnd() uint32 {
	if p.pos == 0 {
		return 0
	}

	return p.toks[p.pos-1].Span.End
}

func (p *parser) errorf(code diag.Code, span source.Span, format string, args ...interface{}) {
	p.bag.Add(diag.NewError(code, span, fmt.Sprintf(format, args...)))
}
