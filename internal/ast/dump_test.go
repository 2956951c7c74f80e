package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleProgram() *Program {
	return &Program{
		NodeInfo: NodeInfo{Line: 1, Column: 1},
		Declarations: []Node{
			&Constant{
				NodeInfo: NodeInfo{Line: 1, Column: 1},
				Name:     "Foo",
				Value:    &Number{NodeInfo: NodeInfo{Line: 1, Column: 16}, Value: 42, IsInteger: true},
			},
			&Function{
				NodeInfo: NodeInfo{Line: 2, Column: 1},
				Name:     "Compute",
				InputParams: []Parameter{
					{Name: "first", Type: &TypeExpression{BaseType: "Int32"}},
				},
				OutputType: &TypeExpression{BaseType: "Int32"},
				Body: []Node{
					&ReturnValue{
						NodeInfo: NodeInfo{Line: 3, Column: 9},
						Value: &FunctionCall{
							NodeInfo:  NodeInfo{Line: 3, Column: 21},
							Function:  "Multiply",
							Arguments: []Node{&Identifier{Name: "first"}, &Number{Value: 2, IsInteger: true}},
						},
					},
				},
			},
		},
	}
}

func TestDumpShape(t *testing.T) {
	out, err := Dump(sampleProgram())
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	var root map[string]interface{}
	if err := json.Unmarshal([]byte(out), &root); err != nil {
		t.Fatalf("Dump produced invalid JSON: %v", err)
	}
	if root["type"] != "Program" {
		t.Fatalf("root type = %v, want Program", root["type"])
	}

	for _, want := range []string{
		`"type": "Constant"`,
		`"type": "Function"`,
		`"type": "ReturnValue"`,
		`"type": "FunctionCall"`,
		`"name": "Foo"`,
		`"is_integer": true`,
		`"output_type"`,
		`"input_params"`,
		`"line": 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %s:\n%s", want, out)
		}
	}
}

func TestDumpNilChildIsNull(t *testing.T) {
	out, err := Dump(&If{Condition: &Boolean{Value: true}})
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if !strings.Contains(out, `"else_body": []`) {
		t.Fatalf("empty body should render as []:\n%s", out)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Name", "name"},
		{"PoolType", "pool_type"},
		{"CPUQuota", "cpu_quota"},
		{"ProcessID", "process_id"},
		{"IsInteger", "is_integer"},
		{"AllowedOperations", "allowed_operations"},
		{"SizeHint", "size_hint"},
	}
	for _, tt := range tests {
		if got := snakeCase(tt.in); got != tt.want {
			t.Fatalf("snakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWalkVisitsAllNodes(t *testing.T) {
	var kinds []string
	Walk(sampleProgram(), func(n Node) bool {
		switch n.(type) {
		case *Program:
			kinds = append(kinds, "Program")
		case *Constant:
			kinds = append(kinds, "Constant")
		case *Function:
			kinds = append(kinds, "Function")
		case *ReturnValue:
			kinds = append(kinds, "ReturnValue")
		case *FunctionCall:
			kinds = append(kinds, "FunctionCall")
		case *Identifier:
			kinds = append(kinds, "Identifier")
		case *Number:
			kinds = append(kinds, "Number")
		case *TypeExpression:
			kinds = append(kinds, "TypeExpression")
		}
		return true
	})
	joined := strings.Join(kinds, " ")
	for _, want := range []string{"Program", "Constant", "Function", "ReturnValue", "FunctionCall", "Identifier", "Number", "TypeExpression"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("Walk never visited %s (visited: %s)", want, joined)
		}
	}
}

func TestWalkPrunes(t *testing.T) {
	var sawCall bool
	Walk(sampleProgram(), func(n Node) bool {
		switch n.(type) {
		case *Function:
			return false
		case *FunctionCall:
			sawCall = true
		}
		return true
	})
	if sawCall {
		t.Fatal("pruned subtree was still visited")
	}
}

func TestTypeExpressionString(t *testing.T) {
	tests := []struct {
		typ  *TypeExpression
		want string
	}{
		{&TypeExpression{BaseType: "Integer"}, "Integer"},
		{&TypeExpression{BaseType: "Array", Parameters: []Node{
			&TypeExpression{BaseType: "Int32"}, &Number{Value: 10, IsInteger: true},
		}}, "Array[Int32, 10]"},
		{&TypeExpression{BaseType: "Map", Parameters: []Node{
			&TypeExpression{BaseType: "Text"}, &TypeExpression{BaseType: "Integer"},
		}}, "Map[Text, Integer]"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
