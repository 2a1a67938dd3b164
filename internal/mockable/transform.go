package mockable

import (
	"mockable/internal/diag"
	"mockable/internal/syntax"
)

// Attribute is the marker that triggers the transformation.
const Attribute = "Mockable"

// DefaultHelper is the name of the external helper called by every sentinel
// default. It is resolved where the generated code is compiled, not here.
const DefaultHelper = "unimplemented"

// Options tunes a single application of the transformation.
type Options struct {
	// Helper overrides the unimplemented-helper name. Empty means
	// DefaultHelper.
	Helper string
}

// Result is the outcome of one application: either both synthesized
// declarations, or none when a fatal diagnostic was raised. Diagnostics are
// always present in insertion order and are never shared across
// applications.
type Result struct {
	Mock        *MockType
	Factory     *Factory
	Diagnostics []diag.Diagnostic
}

// Ok reports whether the application produced declarations.
func (r Result) Ok() bool {
	return r.Mock != nil
}

// Transform applies the mock transformation to one declaration with default
// options.
func Transform(decl syntax.Decl) Result {
	return TransformWith(decl, Options{})
}

// TransformWith is a pure function from a declaration to its synthesized
// siblings. The input is never mutated, no state survives the call, and a
// fatal diagnostic yields zero declarations: a partially synthesized pair
// would reference an invalid member set.
func TransformWith(decl syntax.Decl, opts Options) Result {
	helper := opts.Helper
	if helper == "" {
		helper = DefaultHelper
	}

	bag := diag.NewBag()

	proto, funcs, ok := extract(decl, bag)
	if !ok {
		return Result{Diagnostics: bag.Items()}
	}

	methods := make([]MethodSig, 0, len(funcs))
	for _, fn := range funcs {
		methods = append(methods, normalize(fn))
	}

	// Validate once, upfront: both synthesizers consume this list.
	if !checkOverloads(methods, bag) {
		return Result{Diagnostics: bag.Items()}
	}

	mock := synthesizeMock(proto, methods, helper)

	return Result{
		Mock:        mock,
		Factory:     synthesizeFactory(mock),
		Diagnostics: bag.Items(),
	}
}
