// Package gogen emits Go bindings from validated protocol definitions: the
// protocol as a Go interface and its mock as a struct with one overridable
// function field per method. The async qualifier maps to a leading
// context.Context parameter and throws to a trailing error result.
package gogen

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"mockable/internal/mockable"
	"mockable/internal/syntax"
)

// Render emits one Go source file containing the interface and mock of
// every given application, formatted by goimports.
func Render(pkgName string, mocks []*mockable.MockType) ([]byte, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by mockable. DO NOT EDIT.")

	for _, mock := range mocks {
		// Distinct dialect names can collapse to one exported Go
		// identifier; emitting the collision would be invalid Go.
		err := checkExportedNames(mock)
		if err != nil {
			return nil, err
		}

		addInterface(f, mock)
		addMock(f, mock)
	}

	b := bytes.NewBuffer(nil)
	err := f.Render(b)
	if err != nil {
		return nil, fmt.Errorf("cannot render go code: %v", err)
	}

	formatted, err := imports.Process(pkgName+".go", b.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot format go code: %v", err)
	}

	return formatted, nil
}

func addInterface(f *jen.File, mock *mockable.MockType) {
	f.Type().Id(mock.Conformance).InterfaceFunc(func(g *jen.Group) {
		for _, m := range mock.Methods {
			g.Id(exported(m.Name)).Params(methodParams(m)...).Add(methodResults(m)...)
		}
	})
}

func addMock(f *jen.File, mock *mockable.MockType) {
	f.Type().Id(mock.Name).StructFunc(func(g *jen.Group) {
		for _, m := range mock.Methods {
			g.Id(fieldName(m)).Add(funcType(m.FuncType()))
		}
	})

	for _, m := range mock.Methods {
		method := m

		f.Func().
			Params(jen.Id("m").Op("*").Id(mock.Name)).
			Id(exported(method.Name)).
			Params(methodParams(method)...).
			Add(methodResults(method)...).
			BlockFunc(func(g *jen.Group) {
				g.If(jen.Id("m").Dot(fieldName(method)).Op("==").Nil()).Block(
					jen.Panic(jen.Lit(mock.Helper + ": " + mock.SentinelLabel(method))),
				)

				call := jen.Id("m").Dot(fieldName(method)).Call(methodArgs(method)...)
				if hasResults(method) {
					g.Return(call)
				} else {
					g.Add(call)
				}
			})
	}
}

func checkExportedNames(mock *mockable.MockType) error {
	seen := make(map[string]string, len(mock.Methods))
	for _, m := range mock.Methods {
		name := exported(m.Name)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("cannot emit %s: methods %q and %q both export as %q",
				mock.Name, prev, m.Name, name)
		}
		seen[name] = m.Name
	}

	return nil
}

func fieldName(m mockable.MethodSig) string {
	return exported(m.Name) + "Func"
}

func methodParams(m mockable.MethodSig) []jen.Code {
	var params []jen.Code
	if m.Async {
		params = append(params, jen.Id("ctx").Qual("context", "Context"))
	}
	for _, p := range m.Params {
		params = append(params, jen.Id(p.Name).Add(goType(p.Type)))
	}

	return params
}

func methodArgs(m mockable.MethodSig) []jen.Code {
	var args []jen.Code
	if m.Async {
		args = append(args, jen.Id("ctx"))
	}
	for _, p := range m.Params {
		args = append(args, jen.Id(p.Name))
	}

	return args
}

func methodResults(m mockable.MethodSig) []jen.Code {
	return resultCodes(m.Result, m.Throws)
}

func hasResults(m mockable.MethodSig) bool {
	return len(resultCodes(m.Result, m.Throws)) > 0
}

func resultCodes(result syntax.TypeExpr, throws bool) []jen.Code {
	var rs []jen.Code
	if !isNoValue(result) {
		rs = append(rs, goType(result))
	}
	if throws {
		rs = append(rs, jen.Error())
	}

	switch len(rs) {
	case 0:
		return nil
	case 1:
		return []jen.Code{rs[0]}
	default:
		return []jen.Code{jen.Params(rs...)}
	}
}

func funcType(t *syntax.Function) jen.Code {
	var params []jen.Code
	if t.Async {
		params = append(params, jen.Qual("context", "Context"))
	}
	for _, p := range t.Params {
		params = append(params, goType(p))
	}

	stmt := jen.Func().Params(params...)
	for _, r := range resultCodes(t.Result, t.Throws) {
		stmt = stmt.Add(r)
	}

	return stmt
}

var namedTypes = map[string]func() *jen.Statement{
	"String": jen.String,
	"Int":    jen.Int,
	"Bool":   jen.Bool,
	"Double": jen.Float64,
	"Float":  jen.Float32,
	"Data":   func() *jen.Statement { return jen.Index().Byte() },
	"Void":   func() *jen.Statement { return jen.Struct() },
}

func goType(t syntax.TypeExpr) jen.Code {
	switch t := t.(type) {
	case *syntax.Named:
		if builtin, ok := namedTypes[t.Name]; ok {
			return builtin()
		}

		return jen.Id(t.Name)
	case *syntax.Array:
		return jen.Index().Add(goType(t.Elem))
	case *syntax.Dictionary:
		return jen.Map(goType(t.Key)).Add(goType(t.Value))
	case *syntax.Optional:
		return jen.Op("*").Add(goType(t.Elem))
	case *syntax.Tuple:
		return jen.StructFunc(func(g *jen.Group) {
			for i, e := range t.Elems {
				g.Id(fmt.Sprintf("F%d", i)).Add(goType(e))
			}
		})
	case *syntax.Function:
		return funcType(t)
	default:
		return jen.Any()
	}
}

func isNoValue(t syntax.TypeExpr) bool {
	switch t := t.(type) {
	case nil:
		return true
	case *syntax.Named:
		return t.Name == "Void"
	case *syntax.Tuple:
		return len(t.Elems) == 0
	default:
		return false
	}
}

func exported(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
