// Package screen defines the terminal capability the editor draws through:
// an absolute-addressed character grid with a size that may change between
// reads, partitioned into windows with their own local coordinates. The live
// terminal adapter lives in internal/term; Recorder is the in-memory variant
// used by tests.
package screen

// Position is an absolute (row, col) screen coordinate, zero-based.
type Position struct {
	Row int
	Col int
}

// Add returns the cell offset by p plus q.
func (p Position) Add(q Position) Position {
	return Position{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Size is a grid extent in rows and columns.
type Size struct {
	Rows int
	Cols int
}

// Contains reports whether pos falls inside a grid of this size.
func (s Size) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < s.Rows && pos.Col >= 0 && pos.Col < s.Cols
}

// Screen is the terminal write capability. Implementations panic when asked
// to write outside the current size — that is a caller bug, not a runtime
// condition — and return errors only for real output failures. The size may
// change between calls (terminal resize), so callers must re-query it before
// every layout decision rather than cache it.
type Screen interface {
	// PutAt writes text starting at pos.
	PutAt(text string, pos Position) error
	// Flush makes all pending writes visible.
	Flush() error
	// Size returns the current grid size.
	Size() (Size, error)
}
