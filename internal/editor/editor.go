// Package editor turns key events into buffer mutations and keeps a scrolled
// viewport anchored to the editing cursor. The controller owns two cursors:
// the edit position and the anchor, the buffer coordinate shown at the
// window's top-left cell. The anchor is recomputed after every key and never
// addressed directly.
package editor

import (
	"mktxt/internal/buffer"
	"mktxt/internal/screen"
)

// Controller holds the editing state for one buffer in one window.
type Controller struct {
	editor   buffer.Cursor
	anchor   buffer.Cursor
	tabWidth int
}

// NewController returns a controller with both cursors at the origin.
// tabWidth is the number of spaces inserted per tab key.
func NewController(tabWidth int) *Controller {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Controller{tabWidth: tabWidth}
}

// Cursor returns the current edit position.
func (c *Controller) Cursor() buffer.Cursor {
	return c.editor
}

// Anchor returns the buffer coordinate aligned with the window's top-left
// cell.
func (c *Controller) Anchor() buffer.Cursor {
	return c.anchor
}

// HandleInsertKey applies one insert-mode key to buf and re-anchors the
// viewport for the given window size. Returns the next mode.
func (c *Controller) HandleInsertKey(buf *buffer.Buffer, size screen.Size, key screen.Key) Mode {
	mode := ModeInsert
	switch key.Kind {
	case screen.KeyLeft:
		c.editor.MoveLeft(buf)
	case screen.KeyRight:
		c.editor.MoveRight(buf)
	case screen.KeyUp:
		c.editor.MoveUp(buf)
	case screen.KeyDown:
		c.editor.MoveDown(buf)
	case screen.KeyEnter:
		buf.BreakLineAt(c.editor)
		c.editor.MoveToStartOfNextLine(buf)
	case screen.KeyChar:
		c.insertChar(buf, key.Rune)
	case screen.KeyBackspace:
		c.backspace(buf)
	case screen.KeyDelete:
		c.deleteInPlace(buf)
	case screen.KeyEscape:
		mode = ModeNormal
	}
	c.updateAnchor(size)
	return mode
}

func (c *Controller) insertChar(buf *buffer.Buffer, r rune) {
	if r == '\t' {
		for i := 0; i < c.tabWidth; i++ {
			buf.InsertAt(' ', c.editor)
			c.editor.MoveRight(buf)
		}
		return
	}
	if r < ' ' {
		return
	}
	buf.InsertAt(r, c.editor)
	c.editor.MoveRight(buf)
}

func (c *Controller) backspace(buf *buffer.Buffer) {
	if c.editor.Col > 0 {
		buf.DeleteBefore(c.editor)
		c.editor.MoveLeft(buf)
	} else if c.editor.Row > 0 {
		c.editor.MoveToEndOfPrevLine(buf)
		if c.editor.Row+1 < buf.Height() {
			buf.MergeNextLineUp(c.editor)
		}
	}
}

// deleteInPlace removes the character under the cursor; at end-of-line it
// pulls the next line up instead. No-op at the end of the buffer.
func (c *Controller) deleteInPlace(buf *buffer.Buffer) {
	if c.editor.Row < buf.Height() && c.editor.Col < buf.Width(c.editor.Row) {
		buf.DeleteAt(c.editor)
	} else if c.editor.Row+1 < buf.Height() && c.editor.Col == buf.Width(c.editor.Row) {
		buf.MergeNextLineUp(c.editor)
	}
}

// updateAnchor moves the anchor the minimal amount needed to keep the edit
// cursor inside a size-shaped window; it never moves while the cursor is
// already visible.
func (c *Controller) updateAnchor(size screen.Size) {
	if size.Rows < 1 || size.Cols < 1 {
		return
	}
	if c.editor.Col < c.anchor.Col {
		c.anchor.Col = c.editor.Col
	}
	if c.editor.Col > c.anchor.Col+size.Cols-1 {
		c.anchor.Col = c.editor.Col - size.Cols + 1
	}
	if c.editor.Row < c.anchor.Row {
		c.anchor.Row = c.editor.Row
	}
	if c.editor.Row > c.anchor.Row+size.Rows-1 {
		c.anchor.Row = c.editor.Row - size.Rows + 1
	}
}

// Draw writes the visible slice of buf into win: buffer rows from the anchor
// down, each clipped to the anchor column plus the window width. Rows past
// the end of the buffer are left untouched, so the caller blanks the window
// first when stale content must go.
func (c *Controller) Draw(buf *buffer.Buffer, win *screen.Window) error {
	size := win.Size()
	for row := c.anchor.Row; row < c.anchor.Row+size.Rows && row < buf.Height(); row++ {
		width := buf.Width(row)
		if width <= c.anchor.Col {
			continue
		}
		end := c.anchor.Col + size.Cols
		if end > width {
			end = width
		}
		runes := []rune(buf.Line(row))
		pos := screen.Position{Row: row - c.anchor.Row, Col: 0}
		if err := win.PutAt(string(runes[c.anchor.Col:end]), pos); err != nil {
			return err
		}
	}
	return nil
}
