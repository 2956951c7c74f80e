package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
)

func constantValue(t *testing.T, src string) ast.Node {
	t.Helper()
	prog, _ := parseSource(t, src)
	return prog.Declarations[0].(*ast.Constant).Value
}

func TestNamedInfixFoldsToCall(t *testing.T) {
	for _, src := range []string{
		"Constant.A = (2 Multiply 3)\n",
		"Constant.A = 2 Multiply 3\n",
	} {
		call, ok := constantValue(t, src).(*ast.FunctionCall)
		if !ok {
			t.Fatalf("%q: value type = %T, want *ast.FunctionCall", src, constantValue(t, src))
		}
		if call.Function != "Multiply" || len(call.Arguments) != 2 {
			t.Fatalf("%q: call = %#v", src, call)
		}
		left := call.Arguments[0].(*ast.Number)
		right := call.Arguments[1].(*ast.Number)
		if left.Value != 2 || right.Value != 3 {
			t.Fatalf("%q: arguments = %v %v", src, left.Value, right.Value)
		}
	}
}

func TestSymbolicInfixFoldsToBinary(t *testing.T) {
	bin, ok := constantValue(t, "Constant.A = (2 + 3)\n").(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("value type = %T, want *ast.BinaryExpression", constantValue(t, "Constant.A = (2 + 3)\n"))
	}
	if bin.Operator != "+" {
		t.Fatalf("operator = %q, want +", bin.Operator)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// Multiplication binds tighter than addition regardless of spelling.
	bin := constantValue(t, "Constant.A = 1 + 2 * 3\n").(*ast.BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("top operator = %q, want +", bin.Operator)
	}
	inner := bin.Right.(*ast.BinaryExpression)
	if inner.Operator != "*" {
		t.Fatalf("inner operator = %q, want *", inner.Operator)
	}

	mixed := constantValue(t, "Constant.B = 1 + 2 Multiply 3\n").(*ast.BinaryExpression)
	if mixed.Operator != "+" {
		t.Fatalf("top operator = %q, want +", mixed.Operator)
	}
	if call, ok := mixed.Right.(*ast.FunctionCall); !ok || call.Function != "Multiply" {
		t.Fatalf("right side = %#v", mixed.Right)
	}
}

func TestLeftAssociativity(t *testing.T) {
	bin := constantValue(t, "Constant.A = 10 - 3 - 2\n").(*ast.BinaryExpression)
	if bin.Operator != "-" {
		t.Fatalf("top operator = %q", bin.Operator)
	}
	left := bin.Left.(*ast.BinaryExpression)
	if l, ok := left.Left.(*ast.Number); !ok || l.Value != 10 {
		t.Fatalf("grouping is not left-associative: %#v", bin)
	}
	if r, ok := bin.Right.(*ast.Number); !ok || r.Value != 2 {
		t.Fatalf("right operand = %#v", bin.Right)
	}
}

func TestParensGroupWithoutWrapper(t *testing.T) {
	bin := constantValue(t, "Constant.A = (1 + 2) * 3\n").(*ast.BinaryExpression)
	if bin.Operator != "*" {
		t.Fatalf("top operator = %q, want *", bin.Operator)
	}
	if inner, ok := bin.Left.(*ast.BinaryExpression); !ok || inner.Operator != "+" {
		t.Fatalf("left side = %#v, want bare + expression", bin.Left)
	}
}

func TestComparisonAndLogical(t *testing.T) {
	bin := constantValue(t, "Constant.A = (count >= 1) && (count <= 9)\n").(*ast.BinaryExpression)
	if bin.Operator != "&&" {
		t.Fatalf("top operator = %q", bin.Operator)
	}
	left := bin.Left.(*ast.BinaryExpression)
	if left.Operator != ">=" {
		t.Fatalf("left operator = %q", left.Operator)
	}

	named := constantValue(t, "Constant.B = ready And done\n").(*ast.FunctionCall)
	if named.Function != "And" {
		t.Fatalf("named form = %#v", named)
	}
}

func TestUnaryExpressions(t *testing.T) {
	neg := constantValue(t, "Constant.A = -5\n").(*ast.Number)
	if neg.Value != -5 || !neg.IsInteger {
		t.Fatalf("negative literal = %#v", neg)
	}

	unary := constantValue(t, "Constant.B = -offset\n").(*ast.UnaryExpression)
	if unary.Operator != "-" {
		t.Fatalf("operator = %q", unary.Operator)
	}

	not := constantValue(t, "Constant.C = Not ready\n").(*ast.UnaryExpression)
	if not.Operator != "Not" {
		t.Fatalf("operator = %q", not.Operator)
	}
}

func TestNamedCallForm(t *testing.T) {
	call := constantValue(t, "Constant.A = Multiply(3, 4)\n").(*ast.FunctionCall)
	if call.Function != "Multiply" || len(call.Arguments) != 2 {
		t.Fatalf("call = %#v", call)
	}
	sqrt := constantValue(t, "Constant.B = SquareRoot(16.0)\n").(*ast.FunctionCall)
	if sqrt.Function != "SquareRoot" || len(sqrt.Arguments) != 1 {
		t.Fatalf("call = %#v", sqrt)
	}
}

func TestFusedTypeExpressions(t *testing.T) {
	call := constantValue(t, "Constant.A = AddInt32+SIMD(first, second)\n").(*ast.FunctionCall)
	if call.Function != "AddInt32+SIMD" || len(call.Arguments) != 2 {
		t.Fatalf("fused call = %#v", call)
	}

	value := constantValue(t, "Constant.B = MatrixMultiplyFloat64+Blocked\n").(*ast.FusedType)
	if value.Name != "MatrixMultiplyFloat64+Blocked" {
		t.Fatalf("fused value = %#v", value)
	}
}

func TestArrayAndMapLiterals(t *testing.T) {
	arr := constantValue(t, "Constant.A = [1, 2, 3]\n").(*ast.ArrayLiteral)
	if len(arr.Elements) != 3 {
		t.Fatalf("elements = %d", len(arr.Elements))
	}

	m := constantValue(t, "Constant.B = {\"low\": 1, \"high\": 9}\n").(*ast.MapLiteral)
	if len(m.Pairs) != 2 {
		t.Fatalf("pairs = %d", len(m.Pairs))
	}
	if key, ok := m.Pairs[0].Key.(*ast.String); !ok || key.Value != "low" {
		t.Fatalf("first key = %#v", m.Pairs[0].Key)
	}
}

func TestMathConstants(t *testing.T) {
	pi := constantValue(t, "Constant.A = PI\n").(*ast.Number)
	if math.Abs(pi.Value-3.14159265358979) > 1e-12 {
		t.Fatalf("PI = %v", pi.Value)
	}
	phi := constantValue(t, "Constant.B = PHI\n").(*ast.Number)
	if math.Abs(phi.Value-1.61803398874989) > 1e-12 {
		t.Fatalf("PHI = %v", phi.Value)
	}
}

func TestHexNumberExpression(t *testing.T) {
	num := constantValue(t, "Constant.A = 0xFF\n").(*ast.Number)
	if num.Value != 255 || !num.IsInteger {
		t.Fatalf("hex literal = %#v", num)
	}
}

func TestHexLiteralOutOfRange(t *testing.T) {
	pe := parseError(t, "Constant.A = 0x1FFFFFFFFFFFFFFFF\n")
	if !strings.Contains(pe.Message, "out of range") {
		t.Fatalf("message = %q, want out-of-range error", pe.Message)
	}
}

func TestLowLevelTypeLiteral(t *testing.T) {
	typ := constantValue(t, "Constant.A = Int32\n").(*ast.LowLevelType)
	if typ.TypeName != "Int32" || typ.Size != 4 || !typ.Signed {
		t.Fatalf("low-level type = %#v", typ)
	}
	u := constantValue(t, "Constant.B = UInt64\n").(*ast.LowLevelType)
	if u.Size != 8 || u.Signed {
		t.Fatalf("low-level type = %#v", u)
	}
}

func TestLowLevelCallSpecializations(t *testing.T) {
	deref := constantValue(t, "Constant.A = Dereference(ptr, \"word\")\n").(*ast.Dereference)
	if deref.SizeHint != "word" {
		t.Fatalf("dereference = %#v", deref)
	}

	addr := constantValue(t, "Constant.B = AddressOf(buffer)\n").(*ast.AddressOf)
	if id, ok := addr.Variable.(*ast.Identifier); !ok || id.Name != "buffer" {
		t.Fatalf("address-of = %#v", addr)
	}

	size := constantValue(t, "Constant.C = SizeOf(Int32)\n").(*ast.SizeOf)
	if _, ok := size.Target.(*ast.LowLevelType); !ok {
		t.Fatalf("size-of target = %#v", size.Target)
	}

	read := constantValue(t, "Constant.D = PortRead(0x60, \"byte\")\n").(*ast.PortOperation)
	if read.Operation != "read" || read.Size != "byte" {
		t.Fatalf("port read = %#v", read)
	}

	write := constantValue(t, "Constant.E = PortWrite(0x3F8, \"byte\", 65)\n").(*ast.PortOperation)
	if write.Operation != "write" || write.Value == nil {
		t.Fatalf("port write = %#v", write)
	}

	reg := constantValue(t, "Constant.F = HardwareRegister(\"CR3\", next)\n").(*ast.HardwareRegisterAccess)
	if reg.RegisterName != "CR3" || reg.Operation != "write" {
		t.Fatalf("register access = %#v", reg)
	}

	alloc := constantValue(t, "Constant.G = Allocate(4096)\n").(*ast.FunctionCall)
	if alloc.Function != "Allocate" {
		t.Fatalf("generic low-level call = %#v", alloc)
	}
}

func TestApplyExpression(t *testing.T) {
	apply := constantValue(t, "Constant.A = Apply(handler, 1, 2)\n").(*ast.Apply)
	if len(apply.Arguments) != 2 {
		t.Fatalf("apply = %#v", apply)
	}
	if id, ok := apply.Function.(*ast.Identifier); !ok || id.Name != "handler" {
		t.Fatalf("apply function = %#v", apply.Function)
	}
}

func TestRunMacroExpression(t *testing.T) {
	rm := constantValue(t, "Constant.A = RunMacro.Helpers.Twice(21)\n").(*ast.RunMacro)
	if rm.MacroPath != "Helpers.Twice" || len(rm.Arguments) != 1 {
		t.Fatalf("run macro = %#v", rm)
	}
}

func TestDottedIdentifierExpression(t *testing.T) {
	id := constantValue(t, "Constant.A = App.State.counter\n").(*ast.Identifier)
	if id.Name != "App.State.counter" {
		t.Fatalf("identifier = %q", id.Name)
	}
}

func TestDeepNestingIsRejected(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Constant.A = ")
	for i := 0; i < 300; i++ {
		sb.WriteByte('(')
	}
	sb.WriteString("1")
	for i := 0; i < 300; i++ {
		sb.WriteByte(')')
	}
	sb.WriteByte('\n')

	pe := parseError(t, sb.String())
	if !strings.Contains(pe.Message, "nesting too deep") {
		t.Fatalf("message = %q, want nesting too deep", pe.Message)
	}
}

func TestUnexpectedTokenError(t *testing.T) {
	pe := parseError(t, "Constant.A = }\n")
	if !strings.Contains(pe.Message, "Unexpected token in expression") {
		t.Fatalf("message = %q", pe.Message)
	}
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("Function.Compute {\n")
		sb.WriteString("    Input: (first: Int32, second: Int32)\n")
		sb.WriteString("    Output: Int32\n")
		sb.WriteString("    Body: {\n")
		sb.WriteString("        total = first Add second\n")
		sb.WriteString("        ReturnValue(total Multiply 2)\n")
		sb.WriteString("    }\n")
		sb.WriteString("}\n")
	}
	toks, err := lexer.NewWithMode(sb.String(), false).Tokenize()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(toks).Parse(); err != nil {
			b.Fatal(err)
		}
	}
}
