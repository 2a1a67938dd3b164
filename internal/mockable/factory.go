package mockable

import (
	"fmt"
	"strings"
)

// Factory is the synthesized static entry point attached to the protocol:
// an extension constrained to Self == Mock<Name> whose "mock" operation
// mirrors the initializer and constructs the mock type.
type Factory struct {
	Proto string
	Mock  *MockType
}

func synthesizeFactory(mock *MockType) *Factory {
	return &Factory{
		Proto: mock.Conformance,
		Mock:  mock,
	}
}

// ForwardList renders the factory body's argument list: every parameter
// forwarded to the initializer by label.
func (f *Factory) ForwardList() string {
	args := make([]string, 0, len(f.Mock.Methods))
	for _, m := range f.Mock.Methods {
		args = append(args, fmt.Sprintf("%s: %s", m.Name, m.Name))
	}

	return strings.Join(args, ", ")
}
