// Package mockable generates test doubles from protocol definition files.
//
// A protocol declaration in a .iface file annotated with @Mockable is
// expanded into two sibling declarations: a concrete Mock<Name> type whose
// methods can be overridden one by one at construction time, and a static
// mock(...) factory attached to the protocol. Every unconfigured method
// defaults to a sentinel that fails with the label "Mock<Name>.<method>"
// when it is actually invoked.
//
// The transformation engine lives in internal/mockable; the mockable
// command in cmd/mockable drives it over files and can emit either the
// definition dialect or Go bindings.
package mockable
