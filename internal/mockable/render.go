package mockable

import (
	"bytes"
	"fmt"
	"text/template"
)

// Header prefixes every generated file.
const Header = "// Code generated by mockable. DO NOT EDIT.\n"

const declsTmplString = `{{ .Mock.AccessPrefix }}struct {{ .Mock.Name }}: {{ .Mock.Conformance }} {
	{{ .Mock.AccessPrefix }}init({{ .Mock.InitParamList }}) {
{{- range .Mock.Methods }}
		self.{{ .FieldName }} = {{ .Name }}
{{- end }}
	}
{{- range .Mock.Methods }}

	{{ $.Mock.AccessPrefix }}func {{ .Signature }} {
		{{ .CallExpr }}
	}
{{- end }}
{{- if .Mock.Methods }}
{{ end }}
{{- range .Mock.Methods }}
	private var {{ .FieldName }}: {{ .FuncTypeString }}
{{- end }}
}

extension {{ .Factory.Proto }} where Self == {{ .Mock.Name }} {
	{{ .Mock.AccessPrefix }}static func mock({{ .Mock.InitParamList }}) -> Self {
		{{ .Mock.Name }}({{ .Factory.ForwardList }})
	}
}
`

var declsTmpl = template.Must(template.New("decls").Parse(declsTmplString))

// Render emits the two synthesized declarations of a successful application
// as definition-dialect source: the mock type first (initializer,
// trampolines, stored fields, in that order), then the factory extension.
func Render(res Result) (string, error) {
	if !res.Ok() {
		return "", fmt.Errorf("cannot render: the application produced no declarations")
	}

	b := bytes.NewBuffer(nil)
	err := declsTmpl.Execute(b, struct {
		Mock    *MockType
		Factory *Factory
	}{
		Mock:    res.Mock,
		Factory: res.Factory,
	})
	if err != nil {
		return "", fmt.Errorf("cannot execute template: %v", err)
	}

	return b.String(), nil
}
