package mockable

import (
	"strings"

	"mockable/internal/source"
	"mockable/internal/syntax"
)

// MethodSig is the canonical descriptor of one mocked method: the declared
// signature plus the derived storage-field name. The field name is prefixed
// with "_" so it can never collide with the method itself.
type MethodSig struct {
	Name      string
	Params    []syntax.Param
	Async     bool
	Throws    bool
	Result    syntax.TypeExpr // nil means the method returns no value
	FieldName string
	Span      source.Span
	NameSpan  source.Span
}

func normalize(fn *syntax.FuncDecl) MethodSig {
	return MethodSig{
		Name:      fn.Name,
		Params:    fn.Params,
		Async:     fn.Async,
		Throws:    fn.Throws,
		Result:    fn.Result,
		FieldName: "_" + fn.Name,
		Span:      fn.Span,
		NameSpan:  fn.NameSpan,
	}
}

// FuncType derives the method's function-type descriptor: the parameter
// types without labels, the same effect qualifiers, the same result type.
// It types both the stored field and the matching initializer parameter.
func (m MethodSig) FuncType() *syntax.Function {
	params := make([]syntax.TypeExpr, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, p.Type)
	}

	return &syntax.Function{
		Params: params,
		Async:  m.Async,
		Throws: m.Throws,
		Result: m.Result,
	}
}

// FuncTypeString renders the function-type descriptor.
func (m MethodSig) FuncTypeString() string {
	return m.FuncType().String()
}

// Signature renders the method head as declared: name, parameter list,
// effect qualifiers, and result type.
func (m MethodSig) Signature() string {
	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, p.String())
	}

	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(")")
	if m.Async {
		sb.WriteString(" async")
	}
	if m.Throws {
		sb.WriteString(" throws")
	}
	if m.Result != nil {
		sb.WriteString(" -> ")
		sb.WriteString(m.Result.String())
	}

	return sb.String()
}

// CallExpr renders the trampoline body: the stored field called with the
// arguments in declaration order, labels stripped. The call is wrapped in
// "await" when the method is async and then in "try" when it throws, so an
// async throwing method reads "try await _name(...)".
func (m MethodSig) CallExpr() string {
	args := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		args = append(args, p.Name)
	}

	call := m.FieldName + "(" + strings.Join(args, ", ") + ")"
	if m.Async {
		call = "await " + call
	}
	if m.Throws {
		call = "try " + call
	}

	return call
}
