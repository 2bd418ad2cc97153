package buffer

// Cursor is a (row, column) address into a Buffer. It is valid at
// Row <= Height(), and when Row < Height() at Col <= Width(Row) — one past
// the last character is a real position, used for appending. On the virtual
// line the column is always 0.
//
// Movement is a pure function of the current position and the current buffer
// shape. There is no retained "preferred column": vertical moves re-clamp the
// column to the destination line every time.
type Cursor struct {
	Row int
	Col int
}

// At returns a cursor at the given position.
func At(row, col int) Cursor {
	return Cursor{Row: row, Col: col}
}

// MoveRight advances one column, wrapping to the start of the next line past
// the end of a line. At the virtual line it does nothing.
func (c *Cursor) MoveRight(b *Buffer) {
	if c.Row >= b.Height() {
		return
	}
	if c.Col < b.Width(c.Row) {
		c.Col++
	} else {
		c.Row++
		c.Col = 0
	}
}

// MoveLeft retreats one column, wrapping to the end of the previous line at
// column 0. At the start of the buffer it does nothing.
func (c *Cursor) MoveLeft(b *Buffer) {
	if c.Col > 0 {
		c.Col--
	} else if c.Row > 0 {
		c.Row--
		c.Col = b.Width(c.Row)
	}
}

// MoveUp moves one row up and trims the column to the destination line.
func (c *Cursor) MoveUp(b *Buffer) {
	if c.Row > 0 {
		c.Row--
	}
	c.Trim(b)
}

// MoveDown moves one row down and trims the column to the destination line.
// The row may become Height(), the virtual line, forcing the column to 0.
func (c *Cursor) MoveDown(b *Buffer) {
	if c.Row < b.Height() {
		c.Row++
	}
	c.Trim(b)
}

// MoveToStartOfLine moves to column 0.
func (c *Cursor) MoveToStartOfLine(*Buffer) {
	c.Col = 0
}

// MoveToEndOfLine moves one past the last character of the current line.
func (c *Cursor) MoveToEndOfLine(b *Buffer) {
	c.Col = b.Width(c.Row)
}

// MoveToEndOfPrevLine moves up, then to the end of that line.
func (c *Cursor) MoveToEndOfPrevLine(b *Buffer) {
	c.MoveUp(b)
	c.MoveToEndOfLine(b)
}

// MoveToStartOfNextLine moves down, then to the start of that line.
func (c *Cursor) MoveToStartOfNextLine(b *Buffer) {
	c.MoveDown(b)
	c.MoveToStartOfLine(b)
}

// Trim clamps the column to the width of the current line.
func (c *Cursor) Trim(b *Buffer) {
	if width := b.Width(c.Row); c.Col > width {
		c.Col = width
	}
}
