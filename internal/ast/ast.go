// Package ast defines the AILang syntax tree.
//
// Node hierarchies follow the surface grammar: declarations form the top
// level of a Program, statements populate bodies, and expressions appear
// wherever a value is expected. Bodies are []Node because AILang allows a
// bare expression anywhere a statement can stand.
package ast

import "github.com/ailang-lang/ailang/internal/position"

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() position.Position
	node()
}

// Declaration is a top-level or nested named construct.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is an executable construct inside a body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a value-producing construct.
type Expression interface {
	Node
	expressionNode()
}

// NodeInfo carries the source location shared by all nodes. It is exported
// so reflective traversal can reach it through embedding.
type NodeInfo struct {
	Line   int
	Column int
}

// Pos returns the node's starting position.
func (n NodeInfo) Pos() position.Position {
	return position.Position{Line: n.Line, Column: n.Column}
}

func (NodeInfo) node() {}

// At creates a NodeInfo from a position.
func At(pos position.Position) NodeInfo {
	return NodeInfo{Line: pos.Line, Column: pos.Column}
}

// Program is the root of a parsed source file.
type Program struct {
	NodeInfo
	Declarations []Node
}

// Parameter is a name:type pair in a function or kernel-entry signature.
type Parameter struct {
	Name string
	Type *TypeExpression
}

// Attribute is a named value attached to a resource item or device driver.
type Attribute struct {
	Name  string
	Value Node
}

// Argument is an optionally named call argument (RunTask and SendMessage
// use name-value pairs; ordinary calls leave Name empty).
type Argument struct {
	Name  string
	Value Node
}

// AcronymDef is one entry of an AcronymDefinitions block.
type AcronymDef struct {
	Acronym   string
	Expansion string
}

// RecordField is one field of a Record declaration.
type RecordField struct {
	Name string
	Type Node
}

// Library is a LibraryImport block grouping functions and constants.
type Library struct {
	NodeInfo
	Name string
	Body []Node
}

// Pool is a memory-pool declaration (FixedPool, DynamicPool, ...).
type Pool struct {
	NodeInfo
	PoolType string
	Name     string
	Body     []Node
}

// SubPool is a nested pool section.
type SubPool struct {
	NodeInfo
	Name  string
	Items []*ResourceItem
}

// ResourceItem is a quoted-key entry of a pool body, with an optional
// initializer and attribute list.
type ResourceItem struct {
	NodeInfo
	Key        string
	Value      Node
	Attributes []Attribute
}

// Record is a record type declaration.
type Record struct {
	NodeInfo
	Name   string
	Fields []RecordField
}

// AcronymDefinitions declares project acronym expansions.
type AcronymDefinitions struct {
	NodeInfo
	Definitions []AcronymDef
}

// Loop is a LoopMain/LoopActor/LoopStart/LoopShadow declaration.
type Loop struct {
	NodeInfo
	LoopType string
	Name     string
	Body     []Node
	EndName  string
}

// SubRoutine is a named statement block.
type SubRoutine struct {
	NodeInfo
	Name string
	Body []Node
}

// Function is a Function declaration with Input/Output/Body sections.
type Function struct {
	NodeInfo
	Name        string
	InputParams []Parameter
	OutputType  *TypeExpression
	Body        []Node
}

// Combinator binds a name to an expression.
type Combinator struct {
	NodeInfo
	Name       string
	Definition Node
}

// MacroBlock groups macro definitions.
type MacroBlock struct {
	NodeInfo
	Name   string
	Macros []*MacroDefinition
}

// MacroDefinition is one Macro name(params) = expr entry.
type MacroDefinition struct {
	NodeInfo
	Name   string
	Params []string
	Body   Node
}

// SecurityContext declares named security levels.
type SecurityContext struct {
	NodeInfo
	Name   string
	Levels []*SecurityLevel
}

// SecurityLevel is one Level entry of a security context.
type SecurityLevel struct {
	NodeInfo
	Name              string
	AllowedOperations []string
	DeniedOperations  []string
	MemoryLimit       Node
	CPUQuota          Node
}

// ConstrainedType declares a base type restricted by a Where clause.
type ConstrainedType struct {
	NodeInfo
	Name        string
	BaseType    Node
	Constraints Node
}

// Constant binds a name to a constant expression.
type Constant struct {
	NodeInfo
	Name  string
	Value Node
}

// InterruptHandler declares an interrupt service routine. The vector item
// is mandatory.
type InterruptHandler struct {
	NodeInfo
	HandlerType string
	Vector      string
	HandlerName string
	Body        []*ResourceItem
}

// DeviceDriver declares a driver and its named operations.
type DeviceDriver struct {
	NodeInfo
	DriverName string
	DeviceType string
	Operations []Attribute
}

// BootloaderCode is a boot-stage statement block.
type BootloaderCode struct {
	NodeInfo
	Stage string
	Body  []Node
}

// KernelEntry is a kernel entry point with optional parameters.
type KernelEntry struct {
	NodeInfo
	EntryName  string
	Parameters []Parameter
	Body       []Node
}

func (*Program) declarationNode()            {}
func (*Library) declarationNode()            {}
func (*Pool) declarationNode()               {}
func (*SubPool) declarationNode()            {}
func (*ResourceItem) declarationNode()       {}
func (*Record) declarationNode()             {}
func (*AcronymDefinitions) declarationNode() {}
func (*Loop) declarationNode()               {}
func (*SubRoutine) declarationNode()         {}
func (*Function) declarationNode()           {}
func (*Combinator) declarationNode()         {}
func (*MacroBlock) declarationNode()         {}
func (*MacroDefinition) declarationNode()    {}
func (*SecurityContext) declarationNode()    {}
func (*SecurityLevel) declarationNode()      {}
func (*ConstrainedType) declarationNode()    {}
func (*Constant) declarationNode()           {}
func (*InterruptHandler) declarationNode()   {}
func (*DeviceDriver) declarationNode()       {}
func (*BootloaderCode) declarationNode()     {}
func (*KernelEntry) declarationNode()        {}
