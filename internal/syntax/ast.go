package syntax

import (
	"strings"

	"mockable/internal/source"
)

// File is the parse result of one definition file.
type File struct {
	Source *source.File
	Decls  []Decl
}

// Access is a declaration's access level. The zero value is the implicit
// "internal" level, which is never printed.
type Access uint8

const (
	AccessInternal Access = iota
	AccessPublic
	AccessPrivate
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessPrivate:
		return "private"
	}

	return ""
}

// Attr is an attribute marker preceding a declaration, e.g. "@Mockable".
type Attr struct {
	Name string
	Span source.Span
}

// Decl is a top-level declaration.
type Decl interface {
	DeclSpan() source.Span
}

// ProtocolDecl is a protocol declaration with its member list. It is
// read-only input to the transformation and never mutated.
type ProtocolDecl struct {
	Attrs       []Attr
	Access      Access
	Name        string
	NameSpan    source.Span
	KeywordSpan source.Span
	Members     []Member
	Span        source.Span
}

func (d *ProtocolDecl) DeclSpan() source.Span { return d.Span }

// HasAttr reports whether the declaration carries the named attribute.
func (d *ProtocolDecl) HasAttr(name string) bool {
	for _, a := range d.Attrs {
		if a.Name == name {
			return true
		}
	}

	return false
}

// OtherDecl is any non-protocol top-level declaration. Its body is skipped;
// only the introducing keyword and name are kept for diagnostics.
type OtherDecl struct {
	Attrs       []Attr
	Keyword     string
	KeywordSpan source.Span
	Name        string
	Span        source.Span
}

func (d *OtherDecl) DeclSpan() source.Span { return d.Span }

// HasAttr reports whether the declaration carries the named attribute.
func (d *OtherDecl) HasAttr(name string) bool {
	for _, a := range d.Attrs {
		if a.Name == name {
			return true
		}
	}

	return false
}

// Member is one protocol member. There are exactly two variants: FuncMember
// for method requirements and OtherMember for everything else. The variant
// is decided once, during parsing; later stages switch over it exhaustively.
type Member interface {
	MemberSpan() source.Span
}

// FuncMember is a method requirement.
type FuncMember struct {
	Func *FuncDecl
}

func (m *FuncMember) MemberSpan() source.Span { return m.Func.Span }

// OtherMember is a non-method member (property requirement, nested
// declaration, ...). It is reported and then dropped.
type OtherMember struct {
	Keyword string
	Name    string
	Span    source.Span
}

func (m *OtherMember) MemberSpan() source.Span { return m.Span }

// FuncDecl is a method requirement's signature. A nil Result means the
// method returns no value.
type FuncDecl struct {
	Access   Access
	Name     string
	NameSpan source.Span
	Params   []Param
	Async    bool
	Throws   bool
	Result   TypeExpr
	Span     source.Span
}

// Param is one declared parameter. Label is stored exactly as written: empty
// when omitted (the external label then defaults to the internal name), or
// "_" for an explicitly unlabeled parameter.
type Param struct {
	Label string
	Name  string
	Type  TypeExpr
	Span  source.Span
}

// ExternalLabel returns the effective external label, or "" for an unlabeled
// parameter.
func (p Param) ExternalLabel() string {
	switch p.Label {
	case "":
		return p.Name
	case "_":
		return ""
	default:
		return p.Label
	}
}

// String renders the parameter as declared.
func (p Param) String() string {
	var sb strings.Builder
	if p.Label != "" {
		sb.WriteString(p.Label)
		sb.WriteString(" ")
	}
	sb.WriteString(p.Name)
	sb.WriteString(": ")
	sb.WriteString(p.Type.String())

	return sb.String()
}
