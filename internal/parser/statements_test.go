package parser

import (
	"testing"

	"github.com/ailang-lang/ailang/internal/ast"
)

func firstDecl(t *testing.T, src string) ast.Node {
	t.Helper()
	prog, _ := parseSource(t, src)
	if len(prog.Declarations) == 0 {
		t.Fatalf("no declarations parsed from %q", src)
	}
	return prog.Declarations[0]
}

func TestParseAssignment(t *testing.T) {
	stmt := firstDecl(t, "total = 10\n").(*ast.Assignment)
	if stmt.Target != "total" {
		t.Fatalf("target = %q", stmt.Target)
	}
	if num, ok := stmt.Value.(*ast.Number); !ok || num.Value != 10 {
		t.Fatalf("value = %#v", stmt.Value)
	}
}

func TestParseDataFlowAssignments(t *testing.T) {
	tests := []struct {
		src string
		op  string
	}{
		{"counter <- 0\n", "<-"},
		{"result -> sink\n", "->"},
		{"left <-> right\n", "<->"},
	}
	for _, tt := range tests {
		stmt := firstDecl(t, tt.src).(*ast.DataFlowAssignment)
		if stmt.Operator != tt.op {
			t.Fatalf("%q: operator = %q, want %q", tt.src, stmt.Operator, tt.op)
		}
		if stmt.Left == nil || stmt.Right == nil {
			t.Fatalf("%q: incomplete assignment %#v", tt.src, stmt)
		}
	}
}

func TestParseRunTask(t *testing.T) {
	stmt := firstDecl(t, "RunTask.Report(count-total, label-\"done\")\n").(*ast.RunTask)
	if stmt.TaskName != "Report" {
		t.Fatalf("task = %q", stmt.TaskName)
	}
	if len(stmt.Arguments) != 2 {
		t.Fatalf("arguments = %#v", stmt.Arguments)
	}
	if stmt.Arguments[0].Name != "count" || stmt.Arguments[1].Name != "label" {
		t.Fatalf("argument names = %q %q", stmt.Arguments[0].Name, stmt.Arguments[1].Name)
	}
	if str, ok := stmt.Arguments[1].Value.(*ast.String); !ok || str.Value != "done" {
		t.Fatalf("label value = %#v", stmt.Arguments[1].Value)
	}
}

func TestParseIfElse(t *testing.T) {
	src := `IfCondition count GreaterThan 10 ThenBlock {
    PrintMessage("big")
} ElseBlock {
    PrintMessage("small")
}
`
	stmt := firstDecl(t, src).(*ast.If)
	if _, ok := stmt.Condition.(*ast.FunctionCall); !ok {
		t.Fatalf("condition = %T, want *ast.FunctionCall", stmt.Condition)
	}
	if len(stmt.ThenBody) != 1 || len(stmt.ElseBody) != 1 {
		t.Fatalf("bodies = %d/%d, want 1/1", len(stmt.ThenBody), len(stmt.ElseBody))
	}
}

func TestParseChoosePath(t *testing.T) {
	src := `ChoosePath (command) {
    CaseOption "start": PrintMessage("starting")
    CaseOption "stop": PrintMessage("stopping")
    DefaultOption: PrintMessage("unknown")
}
`
	stmt := firstDecl(t, src).(*ast.ChoosePath)
	if len(stmt.Cases) != 2 {
		t.Fatalf("cases = %d, want 2", len(stmt.Cases))
	}
	if stmt.Cases[0].Value != "start" || stmt.Cases[1].Value != "stop" {
		t.Fatalf("case values = %q %q", stmt.Cases[0].Value, stmt.Cases[1].Value)
	}
	if len(stmt.Default) != 1 {
		t.Fatalf("default = %#v", stmt.Default)
	}
}

func TestParseWhileLoop(t *testing.T) {
	src := `WhileLoop count LessThan 10 {
    count = count + 1
}
`
	stmt := firstDecl(t, src).(*ast.While)
	if _, ok := stmt.Condition.(*ast.FunctionCall); !ok {
		t.Fatalf("condition = %T", stmt.Condition)
	}
	if len(stmt.Body) != 1 {
		t.Fatalf("body = %d statements", len(stmt.Body))
	}
	assign := stmt.Body[0].(*ast.Assignment)
	if _, ok := assign.Value.(*ast.BinaryExpression); !ok {
		t.Fatalf("loop body value = %T, want *ast.BinaryExpression", assign.Value)
	}
}

func TestParseForEvery(t *testing.T) {
	src := `ForEvery item in items {
    PrintMessage(item)
}
`
	stmt := firstDecl(t, src).(*ast.ForEvery)
	if stmt.Variable != "item" {
		t.Fatalf("variable = %q", stmt.Variable)
	}
	if id, ok := stmt.Collection.(*ast.Identifier); !ok || id.Name != "items" {
		t.Fatalf("collection = %#v", stmt.Collection)
	}
}

func TestParseTryCatchFinally(t *testing.T) {
	src := `TryBlock: {
    RunTask.Risky
}
CatchError IOError {
    PrintMessage("io failed")
}
CatchError Timeout {
    PrintMessage("other")
}
FinallyBlock: {
    PrintMessage("cleanup")
}
`
	stmt := firstDecl(t, src).(*ast.Try)
	if len(stmt.Body) != 1 {
		t.Fatalf("try body = %d", len(stmt.Body))
	}
	if len(stmt.CatchClauses) != 2 || stmt.CatchClauses[0].ErrorType != "IOError" {
		t.Fatalf("catch clauses = %#v", stmt.CatchClauses)
	}
	if len(stmt.FinallyBody) != 1 {
		t.Fatalf("finally body = %d", len(stmt.FinallyBody))
	}
}

func TestParseSendReceive(t *testing.T) {
	send := firstDecl(t, "SendMessage.Worker(job-1)\n").(*ast.SendMessage)
	if send.Target != "Worker" || len(send.Parameters) != 1 {
		t.Fatalf("send = %#v", send)
	}

	src := `ReceiveMessage.JobDone {
    PrintMessage("done")
}
`
	recv := firstDecl(t, src).(*ast.ReceiveMessage)
	if recv.MessageType != "JobDone" || len(recv.Body) != 1 {
		t.Fatalf("receive = %#v", recv)
	}
}

func TestParseEveryInterval(t *testing.T) {
	src := `EveryInterval Seconds-5 {
    RunTask.Heartbeat
}
`
	stmt := firstDecl(t, src).(*ast.EveryInterval)
	if stmt.IntervalType != "Seconds" {
		t.Fatalf("interval type = %q", stmt.IntervalType)
	}
	if num, ok := stmt.IntervalValue.(*ast.Number); !ok || num.Value != 5 {
		t.Fatalf("interval value = %#v", stmt.IntervalValue)
	}
}

func TestParseWithSecurity(t *testing.T) {
	src := `WithSecurity (context-"Sandbox") {
    RunTask.Untrusted
}
`
	stmt := firstDecl(t, src).(*ast.WithSecurity)
	if stmt.Context != "Sandbox" || len(stmt.Body) != 1 {
		t.Fatalf("with security = %#v", stmt)
	}
}

func TestParseHaltProgram(t *testing.T) {
	plain := firstDecl(t, "HaltProgram\n").(*ast.HaltProgram)
	if plain.Message != "" {
		t.Fatalf("message = %q, want empty", plain.Message)
	}
	withMsg := firstDecl(t, "HaltProgram(\"fatal state\")\n").(*ast.HaltProgram)
	if withMsg.Message != "fatal state" {
		t.Fatalf("message = %q", withMsg.Message)
	}
}

func TestParseBreakContinue(t *testing.T) {
	src := `WhileLoop True {
    BreakLoop
    ContinueLoop
}
`
	stmt := firstDecl(t, src).(*ast.While)
	if _, ok := stmt.Body[0].(*ast.BreakLoop); !ok {
		t.Fatalf("first = %T", stmt.Body[0])
	}
	if _, ok := stmt.Body[1].(*ast.ContinueLoop); !ok {
		t.Fatalf("second = %T", stmt.Body[1])
	}
}

func TestParseInterruptControl(t *testing.T) {
	enable := firstDecl(t, "EnableInterrupts\n").(*ast.InterruptControl)
	if enable.Operation != "enable" {
		t.Fatalf("operation = %q", enable.Operation)
	}
	disable := firstDecl(t, "DisableInterrupts\n").(*ast.InterruptControl)
	if disable.Operation != "disable" {
		t.Fatalf("operation = %q", disable.Operation)
	}
}

func TestParseInlineAssembly(t *testing.T) {
	src := "InlineAssembly(\"mov eax, 1\", inputs: [(\"r\": count)], clobbers: [\"eax\"], volatile: True)\n"
	stmt := firstDecl(t, src).(*ast.InlineAssembly)
	if stmt.AssemblyCode != "mov eax, 1" {
		t.Fatalf("code = %q", stmt.AssemblyCode)
	}
	if len(stmt.Inputs) != 1 || stmt.Inputs[0].Constraint != "r" {
		t.Fatalf("inputs = %#v", stmt.Inputs)
	}
	if len(stmt.Clobbers) != 1 || stmt.Clobbers[0] != "eax" {
		t.Fatalf("clobbers = %v", stmt.Clobbers)
	}
	if b, ok := stmt.Volatile.(*ast.Boolean); !ok || !b.Value {
		t.Fatalf("volatile = %#v", stmt.Volatile)
	}
}

func TestParseSystemCall(t *testing.T) {
	stmt := firstDecl(t, "SystemCall((1, fd, buffer, length))\n").(*ast.SystemCall)
	if num, ok := stmt.CallNumber.(*ast.Number); !ok || num.Value != 1 {
		t.Fatalf("call number = %#v", stmt.CallNumber)
	}
	if len(stmt.Arguments) != 3 {
		t.Fatalf("arguments = %d, want 3", len(stmt.Arguments))
	}
}

func TestParseVMOperations(t *testing.T) {
	stmt := firstDecl(t, "PageTable.Map(virtual-0x1000, physical-0x2000, flags-RW)\n").(*ast.FunctionCall)
	if stmt.Function != "PageTable_Map" {
		t.Fatalf("function = %q", stmt.Function)
	}
	if len(stmt.Arguments) != 6 {
		t.Fatalf("arguments = %d, want 6 (three name-value pairs)", len(stmt.Arguments))
	}
	if name, ok := stmt.Arguments[0].(*ast.String); !ok || name.Value != "virtual" {
		t.Fatalf("first argument = %#v", stmt.Arguments[0])
	}
	if num, ok := stmt.Arguments[1].(*ast.Number); !ok || num.Value != 0x1000 {
		t.Fatalf("second argument = %#v", stmt.Arguments[1])
	}
	if flag, ok := stmt.Arguments[5].(*ast.Identifier); !ok || flag.Name != "RW" {
		t.Fatalf("flags value = %#v", stmt.Arguments[5])
	}
}

func TestParseVMNoParenForms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"TLB.FlushAll\n", "TLB_FlushAll"},
		{"MemoryBarrier.Full\n", "MemoryBarrier_Full"},
		{"Cache.Flush\n", "Cache_Flush"},
		{"VirtualMemory.Map\n", "VirtualMemory_Map"},
	}
	for _, tt := range tests {
		stmt := firstDecl(t, tt.src).(*ast.FunctionCall)
		if stmt.Function != tt.want {
			t.Fatalf("%q: function = %q, want %q", tt.src, stmt.Function, tt.want)
		}
		if len(stmt.Arguments) != 0 {
			t.Fatalf("%q: arguments = %#v, want none", tt.src, stmt.Arguments)
		}
	}
}
