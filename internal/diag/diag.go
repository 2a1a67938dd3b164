package diag

import (
	"mockable/internal/source"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}

	return "unknown"
}

// Code is a domain-qualified diagnostic identifier, stable across releases.
type Code string

const (
	// Fatal: the attribute was attached to something that is not a protocol.
	OnlyApplicableToProtocols Code = "mockable.onlyApplicableToProtocols"
	// Fatal: two protocol methods share a name.
	ContainsOverloadedFunctions Code = "mockable.containsOverloadedFunctions"
	// Warning: a protocol member is not a method and is skipped.
	ContainsNonFunctions Code = "mockable.containsNonFunctions"

	// lexical and syntactic codes
	SynUnknownChar     Code = "mockable.syntax.unknownCharacter"
	SynUnexpectedToken Code = "mockable.syntax.unexpectedToken"
	SynUnclosedBrace   Code = "mockable.syntax.unclosedBrace"
	SynExpectType      Code = "mockable.syntax.expectedType"
)

// Diagnostic is one finding attached to a source span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Span     source.Span
}

func NewError(code Code, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  msg,
		Span:     span,
	}
}

func NewWarning(code Code, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: SevWarning,
		Code:     code,
		Message:  msg,
		Span:     span,
	}
}
