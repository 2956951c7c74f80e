package ast

import (
	"strconv"
	"strings"
)

// Identifier is a possibly dotted name reference.
type Identifier struct {
	NodeInfo
	Name string
}

// Number is a numeric literal. IsInteger records whether the source text
// had no fractional part, which the JSON projection preserves.
type Number struct {
	NodeInfo
	Value     float64
	IsInteger bool
}

// String is a string literal with escapes already decoded.
type String struct {
	NodeInfo
	Value string
}

// Boolean is a True or False literal.
type Boolean struct {
	NodeInfo
	Value bool
}

// ArrayLiteral is a bracketed element list.
type ArrayLiteral struct {
	NodeInfo
	Elements []Node
}

// MapEntry is one key-value pair of a map literal.
type MapEntry struct {
	Key   Node
	Value Node
}

// MapLiteral is a braced key-value list.
type MapLiteral struct {
	NodeInfo
	Pairs []MapEntry
}

// FunctionCall invokes a named function. Named-operator infix forms fold
// into this node: 2 Multiply 3 becomes FunctionCall{"Multiply", [2, 3]}.
type FunctionCall struct {
	NodeInfo
	Function  string
	Arguments []Node
}

// Apply applies a function value to arguments.
type Apply struct {
	NodeInfo
	Function  Node
	Arguments []Node
}

// Lambda is an anonymous function literal.
type Lambda struct {
	NodeInfo
	Params []string
	Body   Node
}

// RunMacro expands a macro by dotted path.
type RunMacro struct {
	NodeInfo
	MacroPath string
	Arguments []Node
}

// BinaryExpression is a symbolic infix operation: 2 + 3, a >= b. Named
// operators never reach this node.
type BinaryExpression struct {
	NodeInfo
	Left     Node
	Operator string
	Right    Node
}

// UnaryExpression is a prefix operation such as -x or Not flag.
type UnaryExpression struct {
	NodeInfo
	Operator string
	Operand  Node
}

// FusedType is a fused-type identifier used as a value, e.g. AddInt32+SIMD
// passed where a function is expected.
type FusedType struct {
	NodeInfo
	Name string
}

// TypeExpression is a type annotation: a primitive, a parameterized
// container, a Record shape, or a constrained type.
type TypeExpression struct {
	NodeInfo
	BaseType    string
	Parameters  []Node
	Constraints Node
}

// String renders the type the way signatures display it.
func (t *TypeExpression) String() string {
	if t == nil {
		return ""
	}
	if len(t.Parameters) == 0 {
		return t.BaseType
	}
	parts := make([]string, len(t.Parameters))
	for i, p := range t.Parameters {
		parts[i] = renderTypeParam(p)
	}
	return t.BaseType + "[" + strings.Join(parts, ", ") + "]"
}

func renderTypeParam(n Node) string {
	switch p := n.(type) {
	case *TypeExpression:
		return p.String()
	case *Identifier:
		return p.Name
	case *Number:
		if p.IsInteger {
			return strconv.FormatInt(int64(p.Value), 10)
		}
		return strconv.FormatFloat(p.Value, 'g', -1, 64)
	default:
		return "?"
	}
}

// LowLevelType is a machine-width type with its size and signedness.
type LowLevelType struct {
	NodeInfo
	TypeName string
	Size     int
	Signed   bool
}

// Dereference reads through a pointer, optionally with a size hint.
type Dereference struct {
	NodeInfo
	Pointer  Node
	SizeHint string
}

// AddressOf takes the address of a variable.
type AddressOf struct {
	NodeInfo
	Variable Node
}

// SizeOf yields the size of a type or value.
type SizeOf struct {
	NodeInfo
	Target Node
}

// PortOperation is an I/O port read or write.
type PortOperation struct {
	NodeInfo
	Operation string
	Port      Node
	Size      string
	Value     Node
}

// HardwareRegisterAccess reads or writes a named hardware register.
type HardwareRegisterAccess struct {
	NodeInfo
	RegisterType string
	RegisterName string
	Operation    string
	Value        Node
}

// MemoryOperation is a bulk memory copy, set, or compare.
type MemoryOperation struct {
	NodeInfo
	Operation   string
	Destination Node
	Source      Node
	Size        Node
	Value       Node
}

// AtomicOperation is an atomic read-modify-write.
type AtomicOperation struct {
	NodeInfo
	Operation    string
	Target       Node
	Value        Node
	CompareValue Node
	Ordering     string
}

// MemoryBarrier is a fence of the given type.
type MemoryBarrier struct {
	NodeInfo
	BarrierType string
}

// CacheOperation invalidates or flushes a cache.
type CacheOperation struct {
	NodeInfo
	Operation string
	CacheType string
	Address   Node
}

// MMIOOperation is a memory-mapped I/O access.
type MMIOOperation struct {
	NodeInfo
	Operation string
	Address   Node
	Size      string
	Value     Node
	Volatile  bool
}

// DMAOperation configures or runs a DMA transfer.
type DMAOperation struct {
	NodeInfo
	Operation   string
	Channel     Node
	Source      Node
	Destination Node
	Size        Node
}

// TaskSwitch saves or restores a task context.
type TaskSwitch struct {
	NodeInfo
	Operation string
	Context   Node
}

// ProcessContext manipulates a process control block.
type ProcessContext struct {
	NodeInfo
	Operation   string
	ProcessID   Node
	ContextData Node
}

func (*Identifier) expressionNode()             {}
func (*Number) expressionNode()                 {}
func (*String) expressionNode()                 {}
func (*Boolean) expressionNode()                {}
func (*ArrayLiteral) expressionNode()           {}
func (*MapLiteral) expressionNode()             {}
func (*FunctionCall) expressionNode()           {}
func (*Apply) expressionNode()                  {}
func (*Lambda) expressionNode()                 {}
func (*RunMacro) expressionNode()               {}
func (*BinaryExpression) expressionNode()       {}
func (*UnaryExpression) expressionNode()        {}
func (*FusedType) expressionNode()              {}
func (*TypeExpression) expressionNode()         {}
func (*LowLevelType) expressionNode()           {}
func (*Dereference) expressionNode()            {}
func (*AddressOf) expressionNode()              {}
func (*SizeOf) expressionNode()                 {}
func (*PortOperation) expressionNode()          {}
func (*HardwareRegisterAccess) expressionNode() {}
func (*MemoryOperation) expressionNode()        {}
func (*AtomicOperation) expressionNode()        {}
func (*MemoryBarrier) expressionNode()          {}
func (*CacheOperation) expressionNode()         {}
func (*MMIOOperation) expressionNode()          {}
func (*DMAOperation) expressionNode()           {}
func (*TaskSwitch) expressionNode()             {}
func (*ProcessContext) expressionNode()         {}
