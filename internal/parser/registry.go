package parser

import (
	"strings"

	"github.com/ailang-lang/ailang/internal/ast"
)

// FunctionInfo describes one declared function for tooling consumers.
type FunctionInfo struct {
	Name   string
	Params []ast.Parameter
	Output *ast.TypeExpression
	Line   int
	Column int
}

// Signature renders the function the way completion popups display it:
// "first: Int32, second: Int32 -> Int32".
func (fi *FunctionInfo) Signature() string {
	parts := make([]string, len(fi.Params))
	for i, param := range fi.Params {
		parts[i] = param.Name + ": " + param.Type.String()
	}
	sig := strings.Join(parts, ", ")
	if fi.Output != nil {
		if sig != "" {
			sig += " "
		}
		sig += "-> " + fi.Output.String()
	}
	return sig
}

// FunctionRegistry collects the functions declared in one parse, in
// declaration order. It is owned by a single Parser and never shared.
type FunctionRegistry struct {
	names  []string
	byName map[string]*FunctionInfo
}

// NewFunctionRegistry creates an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{byName: make(map[string]*FunctionInfo)}
}

// Register records a function. A redeclaration replaces the stored info but
// keeps the original position in the name order.
func (r *FunctionRegistry) Register(info *FunctionInfo) {
	if _, seen := r.byName[info.Name]; !seen {
		r.names = append(r.names, info.Name)
	}
	r.byName[info.Name] = info
}

// Lookup finds a function by name.
func (r *FunctionRegistry) Lookup(name string) (*FunctionInfo, bool) {
	info, ok := r.byName[name]
	return info, ok
}

// Names returns the registered names in declaration order.
func (r *FunctionRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len reports the number of registered functions.
func (r *FunctionRegistry) Len() int {
	return len(r.names)
}
