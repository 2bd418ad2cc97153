// Package buffer holds the text being edited: an ordered sequence of lines
// addressed by a cursor. Mutating operations are bounds-checked and panic on
// out-of-range cursors; the cursor movement in this package never produces
// one, so a panic here always means a caller bug.
package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer is an ordered sequence of text lines. Lines never contain line
// breaks. Row len(lines) is a virtual empty line used as an append target.
type Buffer struct {
	lines []string
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromLines builds a buffer over the given lines. The slice is copied so the
// caller keeps ownership of its own storage.
func FromLines(lines []string) *Buffer {
	b := &Buffer{lines: make([]string, len(lines))}
	copy(b.lines, lines)
	return b
}

// FromString splits s on newlines, one buffer line per text line. An empty
// string yields an empty buffer.
func FromString(s string) *Buffer {
	if s == "" {
		return New()
	}
	return &Buffer{lines: strings.Split(s, "\n")}
}

// Height returns the number of lines.
func (b *Buffer) Height() int {
	return len(b.lines)
}

// Width returns the length of line row in runes. The virtual line at
// row == Height() has width 0. Panics past the virtual line.
func (b *Buffer) Width(row int) int {
	if row == b.Height() {
		return 0
	}
	if row > b.Height() {
		panic("buffer: tried to get width past last row of buffer")
	}
	return utf8.RuneCountInString(b.lines[row])
}

// Line returns the content of line row. Panics if row is out of range; the
// virtual line is not readable.
func (b *Buffer) Line(row int) string {
	if row >= b.Height() {
		panic("buffer: tried to get line past last row of buffer")
	}
	return b.lines[row]
}

// Lines returns a copy of all lines, for persistence.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Char returns the rune under cur. Panics if cur does not address a real
// character.
func (b *Buffer) Char(cur Cursor) rune {
	if cur.Row >= b.Height() {
		panic("buffer: tried to get char past last row of buffer")
	}
	if cur.Col >= b.Width(cur.Row) {
		panic("buffer: tried to get char past last char of line")
	}
	return []rune(b.lines[cur.Row])[cur.Col]
}

// InsertAt inserts ch before position cur.Col on line cur.Row. Inserting on
// the virtual line appends a new empty line first. The cursor is not moved;
// the caller advances it explicitly.
func (b *Buffer) InsertAt(ch rune, cur Cursor) {
	if cur.Row > b.Height() {
		panic("buffer: tried to insert past last line of buffer")
	}
	if cur.Col > b.Width(cur.Row) {
		panic("buffer: tried to insert past end of line")
	}
	if cur.Row == b.Height() {
		b.lines = append(b.lines, "")
	}
	b.lines[cur.Row] = runeInsert(b.lines[cur.Row], cur.Col, ch)
}

// DeleteBefore removes the character immediately before cur.Col on line
// cur.Row. Panics at column 0: there is nothing before.
func (b *Buffer) DeleteBefore(cur Cursor) {
	if cur.Col == 0 {
		panic("buffer: tried to delete before start of line")
	}
	if cur.Row >= b.Height() {
		panic("buffer: tried to delete past last row of buffer")
	}
	if cur.Col > b.Width(cur.Row) {
		panic("buffer: tried to delete past end of line")
	}
	b.lines[cur.Row] = runeDelete(b.lines[cur.Row], cur.Col-1)
}

// DeleteAt removes the character under cur.
func (b *Buffer) DeleteAt(cur Cursor) {
	if cur.Row >= b.Height() {
		panic("buffer: tried to delete past last row of buffer")
	}
	if cur.Col >= b.Width(cur.Row) {
		panic("buffer: tried to delete past end of line")
	}
	b.lines[cur.Row] = runeDelete(b.lines[cur.Row], cur.Col)
}

// MergeNextLineUp removes line cur.Row+1 and appends its contents to line
// cur.Row.
func (b *Buffer) MergeNextLineUp(cur Cursor) {
	if cur.Row+1 >= b.Height() {
		panic("buffer: tried to merge line from past end of buffer")
	}
	line := b.lines[cur.Row+1]
	b.lines = append(b.lines[:cur.Row+1], b.lines[cur.Row+2:]...)
	b.lines[cur.Row] += line
}

// BreakLineAt splits line cur.Row at cur.Col: the prefix stays in place, the
// suffix becomes a new line below it. Breaking the virtual line appends one
// empty line instead.
func (b *Buffer) BreakLineAt(cur Cursor) {
	if cur.Row > b.Height() {
		panic("buffer: tried to break line past last row of buffer")
	}
	if cur.Col > b.Width(cur.Row) {
		panic("buffer: tried to break line past end of line")
	}
	if cur.Row == b.Height() {
		b.lines = append(b.lines, "")
		return
	}
	runes := []rune(b.lines[cur.Row])
	prefix, suffix := string(runes[:cur.Col]), string(runes[cur.Col:])
	b.lines = append(b.lines, "")
	copy(b.lines[cur.Row+2:], b.lines[cur.Row+1:])
	b.lines[cur.Row] = prefix
	b.lines[cur.Row+1] = suffix
}

// RemoveLine removes line row and returns its content.
func (b *Buffer) RemoveLine(row int) string {
	if row >= b.Height() {
		panic("buffer: tried to remove line past last row of buffer")
	}
	line := b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return line
}

// InsertLine inserts line at row, pushing existing lines down. Inserting at
// the virtual line appends.
func (b *Buffer) InsertLine(row int, line string) {
	if row > b.Height() {
		panic("buffer: tried to insert line past last row of buffer")
	}
	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = line
}

// AppendLine adds line at the end of the buffer.
func (b *Buffer) AppendLine(line string) {
	b.lines = append(b.lines, line)
}

// runeInsert inserts ch before rune position pos.
func runeInsert(s string, pos int, ch rune) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:pos]...)
	out = append(out, ch)
	out = append(out, runes[pos:]...)
	return string(out)
}

// runeDelete removes the rune at position pos.
func runeDelete(s string, pos int) string {
	runes := []rune(s)
	return string(append(runes[:pos:pos], runes[pos+1:]...))
}
