package mockable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockable/internal/diag"
	"mockable/internal/source"
	"mockable/internal/syntax"
)

func parseTestFile(t *testing.T, src string) *syntax.File {
	t.Helper()

	bag := diag.NewBag()
	f := syntax.Parse(source.NewFile("test.iface", []byte(src)), bag)
	require.False(t, bag.HasErrors(), "unexpected syntax errors: %v", bag.Items())

	return f
}

func parseTestDecl(t *testing.T, src string) syntax.Decl {
	t.Helper()

	f := parseTestFile(t, src)
	require.Len(t, f.Decls, 1)

	return f.Decls[0]
}

func TestTransformPreservesDeclarationOrder(t *testing.T) {
	a := assert.New(t)

	res := Transform(parseTestDecl(t, `
@Mockable
protocol SessionStore {
	func load(id: String) -> String?
	func save(id: String, session: String)
	func clear()
}
`))

	require.True(t, res.Ok())
	a.Empty(res.Diagnostics)

	a.Equal("MockSessionStore", res.Mock.Name)
	a.Equal("SessionStore", res.Mock.Conformance)

	require.Len(t, res.Mock.Methods, 3)
	a.Equal("load", res.Mock.Methods[0].Name)
	a.Equal("save", res.Mock.Methods[1].Name)
	a.Equal("clear", res.Mock.Methods[2].Name)
	a.Equal("_load", res.Mock.Methods[0].FieldName)
	a.Equal("_save", res.Mock.Methods[1].FieldName)
	a.Equal("_clear", res.Mock.Methods[2].FieldName)

	require.NotNil(t, res.Factory)
	a.Equal("SessionStore", res.Factory.Proto)
	a.Equal("load: load, save: save, clear: clear", res.Factory.ForwardList())
}

func TestTransformQualifierMapping(t *testing.T) {
	a := assert.New(t)

	res := Transform(parseTestDecl(t, `
@Mockable
protocol JobRunner {
	func reset()
	func schedule(job: String) async
	func cancel(id: String) throws
	func run(id: String) async throws -> Int
}
`))

	require.True(t, res.Ok())
	require.Len(t, res.Mock.Methods, 4)

	a.Equal("_reset()", res.Mock.Methods[0].CallExpr())
	a.Equal("await _schedule(job)", res.Mock.Methods[1].CallExpr())
	a.Equal("try _cancel(id)", res.Mock.Methods[2].CallExpr())
	a.Equal("try await _run(id)", res.Mock.Methods[3].CallExpr())

	a.Equal("() -> Void", res.Mock.Methods[0].FuncTypeString())
	a.Equal("(String) async -> Void", res.Mock.Methods[1].FuncTypeString())
	a.Equal("(String) throws -> Void", res.Mock.Methods[2].FuncTypeString())
	a.Equal("(String) async throws -> Int", res.Mock.Methods[3].FuncTypeString())
}

func TestTransformSpecimen(t *testing.T) {
	a := assert.New(t)

	res := Transform(parseTestDecl(t, `
@Mockable
protocol NetworkingService {
	func fetchUsers() async throws -> [String]
}
`))

	require.True(t, res.Ok())
	require.Len(t, res.Mock.Methods, 1)

	m := res.Mock.Methods[0]
	a.Equal("_fetchUsers", m.FieldName)
	a.Equal("() async throws -> [String]", m.FuncTypeString())
	a.Equal("try await _fetchUsers()", m.CallExpr())
	a.Equal("MockNetworkingService.fetchUsers", res.Mock.SentinelLabel(m))
	a.Equal(`unimplemented("MockNetworkingService.fetchUsers")`, res.Mock.Default(m))
}

func TestTransformHelperOverride(t *testing.T) {
	a := assert.New(t)

	res := TransformWith(parseTestDecl(t, `
@Mockable
protocol Clock {
	func now() -> Int
}
`), Options{Helper: "fail"})

	require.True(t, res.Ok())
	a.Equal(`fail("MockClock.now")`, res.Mock.Default(res.Mock.Methods[0]))
}

func TestTransformOverloadedFunctionsAreFatal(t *testing.T) {
	a := assert.New(t)

	decl := parseTestDecl(t, `
@Mockable
protocol Calculator {
	func compute(value: Int) -> Int
	func compute(value: Double) -> Double
}
`)

	res := Transform(decl)

	a.False(res.Ok())
	a.Nil(res.Mock)
	a.Nil(res.Factory)

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	a.Equal(diag.SevError, d.Severity)
	a.Equal(diag.ContainsOverloadedFunctions, d.Code)

	// The diagnostic anchors at the second occurrence.
	proto := decl.(*syntax.ProtocolDecl)
	second := proto.Members[1].(*syntax.FuncMember)
	a.Equal(second.Func.NameSpan, d.Span)
}

func TestTransformNonProtocolIsFatal(t *testing.T) {
	a := assert.New(t)

	res := Transform(parseTestDecl(t, `
@Mockable
struct User {
	var name: String
}
`))

	a.False(res.Ok())
	require.Len(t, res.Diagnostics, 1)
	a.Equal(diag.SevError, res.Diagnostics[0].Severity)
	a.Equal(diag.OnlyApplicableToProtocols, res.Diagnostics[0].Code)
}

func TestTransformNonMethodMembersAreDropped(t *testing.T) {
	a := assert.New(t)

	res := Transform(parseTestDecl(t, `
@Mockable
protocol UserStore {
	var currentUser: String? { get }
	func save(user: String) throws
	func delete(id: String) throws
}
`))

	require.True(t, res.Ok())
	a.Len(res.Mock.Methods, 2)

	require.Len(t, res.Diagnostics, 1)
	a.Equal(diag.SevWarning, res.Diagnostics[0].Severity)
	a.Equal(diag.ContainsNonFunctions, res.Diagnostics[0].Code)
}

func TestTransformZeroMethods(t *testing.T) {
	a := assert.New(t)

	res := Transform(parseTestDecl(t, `
@Mockable
protocol Flags {
	var verbose: Bool { get }
	var output: String { get set }
}
`))

	require.True(t, res.Ok(), "a protocol whose members are all dropped still generates")
	a.Empty(res.Mock.Methods)
	a.Len(res.Diagnostics, 2)

	rendered, err := Render(res)
	require.NoError(t, err)
	a.Contains(rendered, "init() {")
	a.Contains(rendered, "static func mock() -> Self {")
	a.NotContains(rendered, "private var")
}

func TestTransformAccessPropagation(t *testing.T) {
	a := assert.New(t)

	res := Transform(parseTestDecl(t, `
@Mockable
public protocol Logger {
	func log(_ message: String)
}
`))

	require.True(t, res.Ok())
	a.Equal(syntax.AccessPublic, res.Mock.Access)

	rendered, err := Render(res)
	require.NoError(t, err)
	a.Contains(rendered, "public struct MockLogger: Logger {")
	a.Contains(rendered, "public init(")
	a.Contains(rendered, "public func log(_ message: String) {")
	a.Contains(rendered, "public static func mock(")
}

func TestExpandFileApplicationsAreIndependent(t *testing.T) {
	a := assert.New(t)

	f := parseTestFile(t, `
@Mockable
protocol Broken {
	func ping()
	func ping()
}

@Mockable
protocol Healthy {
	func ping()
}

protocol Unmarked {
	func ignored()
}
`)

	results := ExpandFile(f, Options{})
	require.Len(t, results, 2, "unmarked declarations are not expanded")

	a.False(results[0].Ok())
	a.True(results[1].Ok())
	a.Equal("MockHealthy", results[1].Mock.Name)

	rendered, err := RenderFile(results)
	require.NoError(t, err)
	a.Contains(rendered, "MockHealthy")
	a.NotContains(rendered, "MockBroken")
}

func TestRenderFileEmptyWhenNothingSucceeds(t *testing.T) {
	a := assert.New(t)

	f := parseTestFile(t, `
@Mockable
protocol Broken {
	func ping()
	func ping()
}
`)

	rendered, err := RenderFile(ExpandFile(f, Options{}))
	require.NoError(t, err)
	a.Empty(rendered)
}
