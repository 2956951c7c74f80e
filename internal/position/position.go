// Package position provides source location tracking for the AILang front end.
package position

import "fmt"

// Position represents a location in source text. Lines and columns are
// 1-based; a zero Position is invalid.
type Position struct {
	Line   int
	Column int
}

// New creates a position from a line and column pair.
func New(line, column int) Position {
	return Position{Line: line, Column: column}
}

// IsValid reports whether the position refers to an actual source location.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// String returns a "line:column" rendering of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p is strictly before other in source order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// After reports whether p is strictly after other in source order.
func (p Position) After(other Position) bool {
	return other.Before(p)
}

// Span represents a contiguous range of source text.
type Span struct {
	Start Position
	End   Position
}

// NewSpan creates a span from two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// IsValid reports whether both endpoints are valid and ordered.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && !s.End.Before(s.Start)
}

// String returns a "start-end" rendering of the span.
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Contains reports whether the position falls inside the span.
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && p.Before(s.End)
}
