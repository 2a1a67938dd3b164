package mockable

import (
	"fmt"
	"strings"

	"mockable/internal/syntax"
)

// ExpandFile applies the transformation to every attributed declaration of a
// parsed file, in order. Applications are mutually independent: each gets a
// fresh diagnostic collector, and a fatal one never suppresses its siblings.
func ExpandFile(f *syntax.File, opts Options) []Result {
	var results []Result
	for _, decl := range f.Decls {
		if !isAttributed(decl) {
			continue
		}

		results = append(results, TransformWith(decl, opts))
	}

	return results
}

func isAttributed(decl syntax.Decl) bool {
	switch d := decl.(type) {
	case *syntax.ProtocolDecl:
		return d.HasAttr(Attribute)
	case *syntax.OtherDecl:
		return d.HasAttr(Attribute)
	default:
		return false
	}
}

// RenderFile renders the successful applications into one generated file:
// the header followed by each application's declaration pair. It returns ""
// when no application produced declarations, in which case nothing should
// be written.
func RenderFile(results []Result) (string, error) {
	var decls []string
	for _, res := range results {
		if !res.Ok() {
			continue
		}

		rendered, err := Render(res)
		if err != nil {
			return "", fmt.Errorf("cannot render %s: %v", res.Mock.Name, err)
		}

		decls = append(decls, rendered)
	}
	if len(decls) == 0 {
		return "", nil
	}

	return Header + "\n" + strings.Join(decls, "\n"), nil
}
