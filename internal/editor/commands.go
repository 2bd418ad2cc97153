package editor

import (
	"mktxt/internal/buffer"
	"mktxt/internal/screen"
)

// Mode is the editor's input mode.
type Mode int

const (
	// ModeNormal is the command mode the session starts in.
	ModeNormal Mode = iota
	// ModeInsert feeds printable keys into the buffer.
	ModeInsert
	// ModeQuit ends the session.
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is a side effect a normal-mode key asks the session to perform.
type Action int

const (
	ActionNone Action = iota
	// ActionSave asks the session to persist the buffer.
	ActionSave
)

// HandleNormalKey applies one normal-mode key. Line commands work against
// clip, a second buffer used as a stack of cut and copied lines. Returns the
// next mode and any session-level action.
func (c *Controller) HandleNormalKey(buf, clip *buffer.Buffer, size screen.Size, key screen.Key) (Mode, Action) {
	mode, action := ModeNormal, ActionNone
	switch {
	case key == screen.Char('i'):
		mode = ModeInsert
	case key == screen.Char('h') || key.Kind == screen.KeyLeft:
		c.editor.MoveLeft(buf)
	case key == screen.Char('l') || key.Kind == screen.KeyRight:
		c.editor.MoveRight(buf)
	case key == screen.Char('k') || key.Kind == screen.KeyUp:
		c.editor.MoveUp(buf)
	case key == screen.Char('j') || key.Kind == screen.KeyDown:
		c.editor.MoveDown(buf)
	case key == screen.Char('H'):
		c.moveToPrevBlank(buf)
	case key == screen.Char('L'):
		c.moveToNextBlank(buf)
	case key == screen.Char('K'):
		c.moveToPrevBlankLine(buf)
	case key == screen.Char('J'):
		c.moveToNextBlankLine(buf)
	case key == screen.Char('d'):
		c.deleteLine(buf)
	case key == screen.Char('c'):
		c.copyLine(buf, clip)
	case key == screen.Char('v'):
		c.pasteLine(buf, clip)
	case key == screen.Char('x'):
		c.cutLine(buf, clip)
	case key == screen.Char('s'):
		action = ActionSave
	case key == screen.Char('q'):
		mode = ModeQuit
	}
	c.updateAnchor(size)
	return mode, action
}

// isBlank reports whether the cursor sits on whitespace, one past the end of
// a line, or past the end of the buffer.
func isBlank(buf *buffer.Buffer, cur buffer.Cursor) bool {
	if cur.Row >= buf.Height() || cur.Col == buf.Width(cur.Row) {
		return true
	}
	return isWhitespace(buf.Char(cur))
}

// isBlankLine reports whether line row is empty, all whitespace, or past the
// end of the buffer.
func isBlankLine(buf *buffer.Buffer, row int) bool {
	if row >= buf.Height() {
		return true
	}
	for _, r := range buf.Line(row) {
		if !isWhitespace(r) {
			return false
		}
	}
	return true
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

// The blank motions step until they land on a blank position or stop making
// progress, so they terminate at the buffer edges where movement is a no-op.

func (c *Controller) moveToNextBlank(buf *buffer.Buffer) {
	c.stepWhile(buf, (*buffer.Cursor).MoveRight, func() bool {
		return !isBlank(buf, c.editor)
	})
}

func (c *Controller) moveToPrevBlank(buf *buffer.Buffer) {
	c.stepWhile(buf, (*buffer.Cursor).MoveLeft, func() bool {
		return !isBlank(buf, c.editor)
	})
}

func (c *Controller) moveToNextBlankLine(buf *buffer.Buffer) {
	c.stepWhile(buf, (*buffer.Cursor).MoveDown, func() bool {
		return !isBlankLine(buf, c.editor.Row)
	})
}

func (c *Controller) moveToPrevBlankLine(buf *buffer.Buffer) {
	c.stepWhile(buf, (*buffer.Cursor).MoveUp, func() bool {
		return !isBlankLine(buf, c.editor.Row)
	})
}

// stepWhile applies step once, then keeps stepping while keepGoing holds and
// the cursor still moves.
func (c *Controller) stepWhile(buf *buffer.Buffer, step func(*buffer.Cursor, *buffer.Buffer), keepGoing func() bool) {
	prev := c.editor
	step(&c.editor, buf)
	for keepGoing() && c.editor != prev {
		prev = c.editor
		step(&c.editor, buf)
	}
}

// deleteLine removes the current line. No-op on the virtual line.
func (c *Controller) deleteLine(buf *buffer.Buffer) {
	if c.editor.Row >= buf.Height() {
		return
	}
	buf.RemoveLine(c.editor.Row)
	c.editor.Trim(buf)
}

// cutLine moves the current line onto the clip stack.
func (c *Controller) cutLine(buf, clip *buffer.Buffer) {
	if c.editor.Row >= buf.Height() {
		return
	}
	clip.AppendLine(buf.RemoveLine(c.editor.Row))
	c.editor.Trim(buf)
}

// copyLine pushes the current line onto the clip stack and moves down.
func (c *Controller) copyLine(buf, clip *buffer.Buffer) {
	if c.editor.Row < buf.Height() {
		clip.AppendLine(buf.Line(c.editor.Row))
	}
	c.editor.MoveDown(buf)
}

// pasteLine pops the clip stack and inserts the line above the cursor.
// No-op when the clip is empty.
func (c *Controller) pasteLine(buf, clip *buffer.Buffer) {
	if clip.Height() == 0 {
		return
	}
	line := clip.RemoveLine(clip.Height() - 1)
	buf.InsertLine(c.editor.Row, line)
	c.editor.Trim(buf)
}
