package mockable

import (
	"fmt"
	"strings"

	"mockable/internal/syntax"
)

// MockType is the synthesized concrete type conforming to the protocol: one
// stored field and one initializer parameter per method, in declaration
// order, plus one trampoline method per method.
type MockType struct {
	Name        string
	Access      syntax.Access
	Conformance string
	Methods     []MethodSig
	Helper      string
}

func synthesizeMock(proto *syntax.ProtocolDecl, methods []MethodSig, helper string) *MockType {
	return &MockType{
		Name:        "Mock" + proto.Name,
		Access:      proto.Access,
		Conformance: proto.Name,
		Methods:     methods,
		Helper:      helper,
	}
}

// AccessPrefix renders the propagated access level, followed by a space, or
// nothing for the implicit internal level.
func (t *MockType) AccessPrefix() string {
	if s := t.Access.String(); s != "" {
		return s + " "
	}

	return ""
}

// SentinelLabel is the fully qualified label carried by an unconfigured
// field's failure, e.g. "MockNetworkingService.fetchUsers".
func (t *MockType) SentinelLabel(m MethodSig) string {
	return t.Name + "." + m.Name
}

// Default renders the initializer parameter's default value: a call to the
// unimplemented helper carrying the sentinel label.
func (t *MockType) Default(m MethodSig) string {
	return fmt.Sprintf("%s(%q)", t.Helper, t.SentinelLabel(m))
}

// InitParamList renders the initializer's parameter list: one parameter per
// method, labeled by method name, typed by the function-type descriptor,
// defaulting to the sentinel.
func (t *MockType) InitParamList() string {
	params := make([]string, 0, len(t.Methods))
	for _, m := range t.Methods {
		params = append(params, fmt.Sprintf("%s: %s = %s", m.Name, m.FuncTypeString(), t.Default(m)))
	}

	return strings.Join(params, ", ")
}
