package mockable

import (
	"fmt"

	"mockable/internal/diag"
	"mockable/internal/syntax"
)

// extract confirms the attributed declaration is a protocol and splits its
// member list into the retained methods. A non-protocol target is fatal;
// each non-method member is reported as a warning and dropped.
func extract(decl syntax.Decl, bag *diag.Bag) (*syntax.ProtocolDecl, []*syntax.FuncDecl, bool) {
	var proto *syntax.ProtocolDecl
	switch d := decl.(type) {
	case *syntax.ProtocolDecl:
		proto = d
	case *syntax.OtherDecl:
		msg := fmt.Sprintf("@%s can only be applied to protocols; %q is a %s declaration",
			Attribute, d.Name, d.Keyword)
		if d.Name == "" {
			msg = fmt.Sprintf("@%s can only be applied to protocols", Attribute)
		}
		bag.Add(diag.NewError(diag.OnlyApplicableToProtocols, d.KeywordSpan, msg))

		return nil, nil, false
	default:
		bag.Add(diag.NewError(diag.OnlyApplicableToProtocols, decl.DeclSpan(),
			fmt.Sprintf("@%s can only be applied to protocols", Attribute)))

		return nil, nil, false
	}

	var funcs []*syntax.FuncDecl
	for _, member := range proto.Members {
		switch m := member.(type) {
		case *syntax.FuncMember:
			funcs = append(funcs, m.Func)
		case *syntax.OtherMember:
			name := m.Name
			if name == "" {
				name = m.Keyword
			}
			bag.Add(diag.NewWarning(diag.ContainsNonFunctions, m.Span,
				fmt.Sprintf("member %q is not a method and will not be mocked", name)))
		}
	}

	return proto, funcs, true
}
