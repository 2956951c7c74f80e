package ast

import "reflect"

// Walk traverses the tree rooted at n in depth-first order, calling fn for
// every node. If fn returns false the node's children are skipped.
//
// Traversal is reflective: any exported field (or slice or helper-struct
// field) holding a Node is visited, so new node kinds participate without
// registration.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if !fn(n) {
		return
	}
	walkValue(v, fn)
}

func walkValue(v reflect.Value, fn func(Node) bool) {
	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return
		}
		if child, ok := v.Interface().(Node); ok {
			Walk(child, fn)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			walkValue(v.Index(i), fn)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			walkValue(v.Field(i), fn)
		}
	}
}
