package ast

// RunTask invokes a named subroutine with optional name-value arguments.
type RunTask struct {
	NodeInfo
	TaskName  string
	Arguments []Argument
}

// PrintMessage writes a value to the program output.
type PrintMessage struct {
	NodeInfo
	Message Node
}

// ReturnValue returns a value from the enclosing function.
type ReturnValue struct {
	NodeInfo
	Value Node
}

// If is an IfCondition/ThenBlock/ElseBlock statement.
type If struct {
	NodeInfo
	Condition Node
	ThenBody  []Node
	ElseBody  []Node
}

// CaseClause is one CaseOption of a ChoosePath.
type CaseClause struct {
	Value string
	Body  []Node
}

// ChoosePath is a string-matched multi-way branch.
type ChoosePath struct {
	NodeInfo
	Expression Node
	Cases      []CaseClause
	Default    []Node
}

// While is a WhileLoop statement.
type While struct {
	NodeInfo
	Condition Node
	Body      []Node
}

// ForEvery iterates a variable over a collection.
type ForEvery struct {
	NodeInfo
	Variable   string
	Collection Node
	Body       []Node
}

// CatchClause is one CatchError arm of a Try.
type CatchClause struct {
	ErrorType string
	Body      []Node
}

// Try is a TryBlock with catch arms and an optional FinallyBlock.
type Try struct {
	NodeInfo
	Body         []Node
	CatchClauses []CatchClause
	FinallyBody  []Node
}

// SendMessage posts a message to a named target.
type SendMessage struct {
	NodeInfo
	Target     string
	Parameters []Argument
}

// ReceiveMessage handles one message type.
type ReceiveMessage struct {
	NodeInfo
	MessageType string
	Body        []Node
}

// EveryInterval runs its body on a timer.
type EveryInterval struct {
	NodeInfo
	IntervalType  string
	IntervalValue Node
	Body          []Node
}

// WithSecurity runs its body under a named security context.
type WithSecurity struct {
	NodeInfo
	Context string
	Body    []Node
}

// Assignment binds a value to an identifier.
type Assignment struct {
	NodeInfo
	Target string
	Value  Node
}

// DataFlowAssignment is an arrow assignment: a <- b, a -> b, or a <-> b.
// Operator holds the arrow literal.
type DataFlowAssignment struct {
	NodeInfo
	Operator string
	Left     Node
	Right    Node
}

// BreakLoop exits the innermost loop.
type BreakLoop struct {
	NodeInfo
}

// ContinueLoop advances the innermost loop.
type ContinueLoop struct {
	NodeInfo
}

// HaltProgram stops execution with an optional message.
type HaltProgram struct {
	NodeInfo
	Message string
}

// InterruptControl enables or disables interrupts.
type InterruptControl struct {
	NodeInfo
	Operation       string
	InterruptNumber Node
}

// AsmBinding ties a register constraint to an expression in inline assembly.
type AsmBinding struct {
	Constraint string
	Expression Node
}

// InlineAssembly embeds raw assembly with optional operand bindings.
type InlineAssembly struct {
	NodeInfo
	AssemblyCode string
	Inputs       []AsmBinding
	Outputs      []AsmBinding
	Clobbers     []string
	Volatile     Node
}

// SystemCall invokes a numbered system call.
type SystemCall struct {
	NodeInfo
	CallNumber Node
	Arguments  []Node
}

func (*RunTask) statementNode()            {}
func (*PrintMessage) statementNode()       {}
func (*ReturnValue) statementNode()        {}
func (*If) statementNode()                 {}
func (*ChoosePath) statementNode()         {}
func (*While) statementNode()              {}
func (*ForEvery) statementNode()           {}
func (*Try) statementNode()                {}
func (*SendMessage) statementNode()        {}
func (*ReceiveMessage) statementNode()     {}
func (*EveryInterval) statementNode()      {}
func (*WithSecurity) statementNode()       {}
func (*Assignment) statementNode()         {}
func (*DataFlowAssignment) statementNode() {}
func (*BreakLoop) statementNode()          {}
func (*ContinueLoop) statementNode()       {}
func (*HaltProgram) statementNode()        {}
func (*InterruptControl) statementNode()   {}
func (*InlineAssembly) statementNode()     {}
func (*SystemCall) statementNode()         {}
