package syntax

import (
	"strings"
)

// TypeExpr is a declared type. Generated output reproduces declared types
// through String(), which renders the canonical source form.
type TypeExpr interface {
	String() string
}

// Named is a plain type reference, possibly dotted ("Foo.Bar").
type Named struct {
	Name string
}

func (t *Named) String() string { return t.Name }

// Array is "[Elem]".
type Array struct {
	Elem TypeExpr
}

func (t *Array) String() string { return "[" + t.Elem.String() + "]" }

// Dictionary is "[Key: Value]".
type Dictionary struct {
	Key   TypeExpr
	Value TypeExpr
}

func (t *Dictionary) String() string {
	return "[" + t.Key.String() + ": " + t.Value.String() + "]"
}

// Optional is "Elem?".
type Optional struct {
	Elem TypeExpr
}

func (t *Optional) String() string { return t.Elem.String() + "?" }

// Tuple is "(A, B)". The empty tuple "()" doubles as the no-value type.
type Tuple struct {
	Elems []TypeExpr
}

func (t *Tuple) String() string {
	elems := make([]string, 0, len(t.Elems))
	for _, e := range t.Elems {
		elems = append(elems, e.String())
	}

	return "(" + strings.Join(elems, ", ") + ")"
}

// Function is "(A, B) async throws -> R". It is also the shape of the
// descriptor stored for every mocked method: an unlabeled parameter-type
// list, the effect qualifiers, and the result type (nil meaning no value).
type Function struct {
	Params []TypeExpr
	Async  bool
	Throws bool
	Result TypeExpr
}

func (t *Function) String() string {
	params := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		params = append(params, p.String())
	}

	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(")")
	if t.Async {
		sb.WriteString(" async")
	}
	if t.Throws {
		sb.WriteString(" throws")
	}
	sb.WriteString(" -> ")
	if t.Result != nil {
		sb.WriteString(t.Result.String())
	} else {
		sb.WriteString("Void")
	}

	return sb.String()
}
