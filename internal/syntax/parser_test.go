package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockable/internal/diag"
	"mockable/internal/source"
)

func parse(t *testing.T, src string) (*File, *diag.Bag) {
	t.Helper()

	bag := diag.NewBag()
	f := Parse(source.NewFile("test.iface", []byte(src)), bag)

	return f, bag
}

func parseClean(t *testing.T, src string) *File {
	t.Helper()

	f, bag := parse(t, src)
	require.False(t, bag.HasErrors(), "unexpected syntax errors: %v", bag.Items())

	return f
}

func TestParseProtocol(t *testing.T) {
	a := assert.New(t)

	f := parseClean(t, `
@Mockable
public protocol PaymentGateway {
	func charge(amount: Int, to account: String) async throws -> String
	func refund(_ id: String) throws
}
`)

	require.Len(t, f.Decls, 1)
	proto, ok := f.Decls[0].(*ProtocolDecl)
	require.True(t, ok)

	a.Equal("PaymentGateway", proto.Name)
	a.Equal(AccessPublic, proto.Access)
	a.True(proto.HasAttr("Mockable"))
	require.Len(t, proto.Members, 2)

	charge := proto.Members[0].(*FuncMember).Func
	a.Equal("charge", charge.Name)
	a.True(charge.Async)
	a.True(charge.Throws)
	require.Len(t, charge.Params, 2)
	a.Equal("", charge.Params[0].Label)
	a.Equal("amount", charge.Params[0].Name)
	a.Equal("amount", charge.Params[0].ExternalLabel())
	a.Equal("to", charge.Params[1].Label)
	a.Equal("account", charge.Params[1].Name)
	a.Equal("to", charge.Params[1].ExternalLabel())
	a.Equal("String", charge.Result.String())

	refund := proto.Members[1].(*FuncMember).Func
	a.False(refund.Async)
	a.True(refund.Throws)
	a.Equal("_", refund.Params[0].Label)
	a.Equal("", refund.Params[0].ExternalLabel())
	a.Nil(refund.Result)
}

func TestParseTypes(t *testing.T) {
	a := assert.New(t)

	f := parseClean(t, `
protocol Shapes {
	func a() -> [String]
	func b() -> [String: Int]
	func c() -> String?
	func d() -> [Int]?
	func e() -> (Int, String)
	func f(handler: (String) async throws -> Void)
	func g() -> Outer.Inner
}
`)

	proto := f.Decls[0].(*ProtocolDecl)
	require.Len(t, proto.Members, 7)

	result := func(i int) string {
		return proto.Members[i].(*FuncMember).Func.Result.String()
	}
	a.Equal("[String]", result(0))
	a.Equal("[String: Int]", result(1))
	a.Equal("String?", result(2))
	a.Equal("[Int]?", result(3))
	a.Equal("(Int, String)", result(4))
	a.Equal("Outer.Inner", result(6))

	handler := proto.Members[5].(*FuncMember).Func.Params[0]
	fn, ok := handler.Type.(*Function)
	require.True(t, ok)
	a.True(fn.Async)
	a.True(fn.Throws)
	a.Equal("(String) async throws -> Void", fn.String())
}

func TestParseMultilineParams(t *testing.T) {
	a := assert.New(t)

	f := parseClean(t, `
protocol Mailer {
	func send(
		to: String,
		subject: String,
	) async throws
}
`)

	proto := f.Decls[0].(*ProtocolDecl)
	require.Len(t, proto.Members, 1)
	send := proto.Members[0].(*FuncMember).Func
	a.Len(send.Params, 2)
	a.True(send.Async && send.Throws)
}

func TestParseNonMethodMembers(t *testing.T) {
	a := assert.New(t)

	f := parseClean(t, `
protocol Mixed {
	var title: String { get }
	func rename(to: String)
	typealias ID = String
}
`)

	proto := f.Decls[0].(*ProtocolDecl)
	require.Len(t, proto.Members, 3)

	title, ok := proto.Members[0].(*OtherMember)
	require.True(t, ok)
	a.Equal("var", title.Keyword)
	a.Equal("title", title.Name)

	_, ok = proto.Members[1].(*FuncMember)
	a.True(ok)

	alias, ok := proto.Members[2].(*OtherMember)
	require.True(t, ok)
	a.Equal("typealias", alias.Keyword)
}

func TestParseOtherDecl(t *testing.T) {
	a := assert.New(t)

	f := parseClean(t, `
@Mockable
struct User {
	var name: String
}

enum Color {
	case red
}
`)

	require.Len(t, f.Decls, 2)

	user, ok := f.Decls[0].(*OtherDecl)
	require.True(t, ok)
	a.Equal("struct", user.Keyword)
	a.Equal("User", user.Name)
	a.True(user.HasAttr("Mockable"))

	color, ok := f.Decls[1].(*OtherDecl)
	require.True(t, ok)
	a.Equal("enum", color.Keyword)
	a.False(color.HasAttr("Mockable"))
}

func TestParseRecoversAfterBadMember(t *testing.T) {
	a := assert.New(t)

	f, bag := parse(t, `
protocol Sturdy {
	func broken(:
	func fine()
}
`)

	a.True(bag.HasErrors())

	proto := f.Decls[0].(*ProtocolDecl)
	require.Len(t, proto.Members, 1, "the parser recovers at the next line")
	a.Equal("fine", proto.Members[0].(*FuncMember).Func.Name)
}

func TestParseUnclosedProtocol(t *testing.T) {
	a := assert.New(t)

	_, bag := parse(t, `
protocol Open {
	func dangling()
`)

	require.True(t, bag.HasErrors())
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynUnclosedBrace {
			found = true
		}
	}
	a.True(found)
}
