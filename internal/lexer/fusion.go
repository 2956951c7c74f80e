package lexer

import (
	"sort"
	"strings"
)

// FusionPattern classifies the shape of a fused-type identifier.
type FusionPattern int

const (
	FusionUnknown FusionPattern = iota
	// FusionOperation covers <Operation><DataType>[+modifiers], e.g.
	// AddInt32+SIMD.
	FusionOperation
	// FusionPool covers <PoolType>Pool<DataType>[+modifiers], e.g.
	// FixedPoolInt64+Cached.
	FusionPool
)

// maxFusionModifiers caps the +modifier chain on a fused type.
const maxFusionModifiers = 2

// FusionComponents is the decomposition of a fused-type identifier.
type FusionComponents struct {
	Pattern   FusionPattern
	Operation string // set for FusionOperation
	PoolType  string // set for FusionPool
	DataType  string
	Modifiers []string
}

var fusionOperations = map[string]bool{
	"Add":               true,
	"Subtract":          true,
	"Multiply":          true,
	"Divide":            true,
	"Power":             true,
	"Modulo":            true,
	"VectorDot":         true,
	"VectorCross":       true,
	"VectorAdd":         true,
	"VectorSubtract":    true,
	"MatrixMultiply":    true,
	"MatrixAdd":         true,
	"MatrixSubtract":    true,
	"MatrixInvert":      true,
	"MemoryCopy":        true,
	"MemorySet":         true,
	"MemoryCompare":     true,
	"PortRead":          true,
	"PortWrite":         true,
	"RegisterRead":      true,
	"RegisterWrite":     true,
	"AtomicAdd":         true,
	"AtomicSubtract":    true,
	"AtomicCompareSwap": true,
	"CacheFlush":        true,
	"TLBInvalidate":     true,
	"PageTableMap":      true,
}

var fusionDataTypes = map[string]bool{
	"Int8":     true,
	"Int16":    true,
	"Int32":    true,
	"Int64":    true,
	"Int128":   true,
	"UInt8":    true,
	"UInt16":   true,
	"UInt32":   true,
	"UInt64":   true,
	"UInt128":  true,
	"Float16":  true,
	"Float32":  true,
	"Float64":  true,
	"Float128": true,
	"Bool":     true,
	"Char":     true,
	"Address":  true,
	"Pointer":  true,
}

var fusionModifiers = map[string]bool{
	// speed
	"Fast":        true,
	"Precise":     true,
	"Approximate": true,
	// parallelism
	"SIMD":       true,
	"Parallel":   true,
	"Sequential": true,
	"Vectorized": true,
	"Unroll2":    true,
	"Unroll4":    true,
	"Unroll8":    true,
	// memory behavior
	"Aligned":   true,
	"Aligned16": true,
	"Aligned32": true,
	"Aligned64": true,
	"Cached":    true,
	"Temporal":  true,
	"Volatile":  true,
	// safety
	"Checked":    true,
	"Unchecked":  true,
	"Saturating": true,
	"Throwing":   true,
	// algorithm choice
	"Blocked":   true,
	"Recursive": true,
	"Iterative": true,
	"Streaming": true,
}

var fusionPoolTypes = map[string]bool{
	"Fixed":    true,
	"Dynamic":  true,
	"Temporal": true,
}

// operationsByLength holds the operation names longest-first so prefix
// matching is deterministic (AtomicAdd must win over Add).
var operationsByLength = func() []string {
	ops := make([]string, 0, len(fusionOperations))
	for op := range fusionOperations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if len(ops[i]) != len(ops[j]) {
			return len(ops[i]) > len(ops[j])
		}
		return ops[i] < ops[j]
	})
	return ops
}()

// IsFusedIdentifier reports whether the identifier is a valid fused type.
func IsFusedIdentifier(identifier string) bool {
	_, ok := RecognizeFusion(identifier)
	return ok
}

// RecognizeFusion decomposes a fused-type identifier into its components.
// The base (everything before the first '+') must match either the pool
// pattern <PoolType>Pool<DataType> or the operation pattern
// <Operation><DataType>; at most two modifiers may follow, and every
// modifier must come from the modifier vocabulary.
func RecognizeFusion(identifier string) (FusionComponents, bool) {
	parts := strings.Split(identifier, "+")
	base := parts[0]
	var mods []string
	if len(parts) > 1 {
		mods = parts[1:]
	}

	if len(mods) > maxFusionModifiers {
		return FusionComponents{}, false
	}
	for _, m := range mods {
		if !fusionModifiers[m] {
			return FusionComponents{}, false
		}
	}

	// Pool pattern first: FixedPoolInt32 must not parse as an operation.
	if idx := strings.Index(base, "Pool"); idx > 0 {
		poolType := base[:idx]
		dataType := base[idx+len("Pool"):]
		if fusionPoolTypes[poolType] && fusionDataTypes[dataType] {
			return FusionComponents{
				Pattern:   FusionPool,
				PoolType:  poolType,
				DataType:  dataType,
				Modifiers: mods,
			}, true
		}
	}

	for _, op := range operationsByLength {
		if strings.HasPrefix(base, op) {
			dataType := base[len(op):]
			if fusionDataTypes[dataType] {
				return FusionComponents{
					Pattern:   FusionOperation,
					Operation: op,
					DataType:  dataType,
					Modifiers: mods,
				}, true
			}
		}
	}

	return FusionComponents{}, false
}
