package mockable

import (
	"fmt"

	"mockable/internal/diag"
)

// checkOverloads scans the normalized methods in declaration order. Storage
// fields and factory labels are derived solely from method names, so two
// methods sharing a name cannot be represented: the first repetition is
// fatal, anchored at the second occurrence.
func checkOverloads(methods []MethodSig, bag *diag.Bag) bool {
	seen := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		if _, ok := seen[m.Name]; ok {
			bag.Add(diag.NewError(diag.ContainsOverloadedFunctions, m.NameSpan,
				fmt.Sprintf("method %q is declared more than once; overloaded methods cannot be mocked", m.Name)))

			return false
		}
		seen[m.Name] = struct{}{}
	}

	return true
}
