package ast

import (
	"encoding/json"
	"reflect"
	"strings"
)

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

// Dump renders the tree as indented JSON. Every node becomes an object with
// a "type" discriminator, its line and column, and its exported fields under
// snake_case keys; nil children render as null.
func Dump(n Node) (string, error) {
	out, err := json.MarshalIndent(projectValue(reflect.ValueOf(n)), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func projectValue(v reflect.Value) interface{} {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return projectValue(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return []interface{}{}
		}
		out := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = projectValue(v.Index(i))
		}
		return out
	case reflect.Struct:
		return projectStruct(v)
	default:
		return v.Interface()
	}
}

func projectStruct(v reflect.Value) map[string]interface{} {
	out := make(map[string]interface{})
	t := v.Type()

	// Only full nodes carry the discriminator; helper structs such as
	// Parameter or CaseClause render as plain field objects.
	if t.Implements(nodeType) && t.Name() != "NodeInfo" {
		out["type"] = t.Name()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type == reflect.TypeOf(NodeInfo{}) {
			info := v.Field(i).Interface().(NodeInfo)
			out["line"] = info.Line
			out["column"] = info.Column
			continue
		}
		out[snakeCase(field.Name)] = projectValue(v.Field(i))
	}
	return out
}

// snakeCase converts an exported field name to its JSON key:
// PoolType -> pool_type, CPUQuota -> cpu_quota, ProcessID -> process_id.
func snakeCase(name string) string {
	var sb strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && isLowerOrDigit(runes[i-1])
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isLowerOrDigit(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}
