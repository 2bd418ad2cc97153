package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mktxt/internal/buffer"
	"mktxt/internal/screen"
)

func TestInsertKeyMovement(t *testing.T) {
	buf := buffer.FromString("123\n45\n678")
	c := NewController(4)
	size := screen.Size{Rows: 24, Cols: 80}

	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyRight})
	assert.Equal(t, buffer.At(0, 1), c.Cursor())
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyDown})
	assert.Equal(t, buffer.At(1, 1), c.Cursor())
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyLeft})
	assert.Equal(t, buffer.At(1, 0), c.Cursor())
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyUp})
	assert.Equal(t, buffer.At(0, 0), c.Cursor())
}

func TestInsertKeyChar(t *testing.T) {
	buf := buffer.New()
	c := NewController(4)
	size := screen.Size{Rows: 24, Cols: 80}

	for _, r := range "ab" {
		mode := c.HandleInsertKey(buf, size, screen.Char(r))
		assert.Equal(t, ModeInsert, mode)
	}
	require.Equal(t, 1, buf.Height())
	assert.Equal(t, "ab", buf.Line(0))
	assert.Equal(t, buffer.At(0, 2), c.Cursor())

	// Control characters other than tab are ignored.
	c.HandleInsertKey(buf, size, screen.Char('\x01'))
	assert.Equal(t, "ab", buf.Line(0))
}

func TestInsertKeyTabExpands(t *testing.T) {
	buf := buffer.New()
	c := NewController(4)
	size := screen.Size{Rows: 24, Cols: 80}

	c.HandleInsertKey(buf, size, screen.Char('\t'))
	assert.Equal(t, "    ", buf.Line(0))
	assert.Equal(t, buffer.At(0, 4), c.Cursor())
}

func TestInsertKeyEnter(t *testing.T) {
	buf := buffer.FromString("hello")
	c := NewController(4)
	size := screen.Size{Rows: 24, Cols: 80}

	// Split mid-line and land at the start of the suffix.
	c.editor = buffer.At(0, 2)
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyEnter})
	require.Equal(t, 2, buf.Height())
	assert.Equal(t, "he", buf.Line(0))
	assert.Equal(t, "llo", buf.Line(1))
	assert.Equal(t, buffer.At(1, 0), c.Cursor())

	// Enter on the virtual line appends a blank line and moves onto it.
	c.editor = buffer.At(2, 0)
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyEnter})
	require.Equal(t, 3, buf.Height())
	assert.Equal(t, 0, buf.Width(2))
	assert.Equal(t, buffer.At(3, 0), c.Cursor())
}

func TestInsertKeyBackspace(t *testing.T) {
	buf := buffer.FromString("ab\ncd")
	c := NewController(4)
	size := screen.Size{Rows: 24, Cols: 80}

	// Mid-line: remove the char before the cursor and step left.
	c.editor = buffer.At(1, 1)
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyBackspace})
	assert.Equal(t, "d", buf.Line(1))
	assert.Equal(t, buffer.At(1, 0), c.Cursor())

	// Column 0: merge into the previous line, cursor at the join.
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyBackspace})
	require.Equal(t, 1, buf.Height())
	assert.Equal(t, "abd", buf.Line(0))
	assert.Equal(t, buffer.At(0, 2), c.Cursor())

	// Start of buffer: nothing happens.
	c.editor = buffer.At(0, 0)
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyBackspace})
	assert.Equal(t, "abd", buf.Line(0))

	// Backspace from the virtual line lands at the end of the last real
	// line without merging anything.
	c.editor = buffer.At(1, 0)
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyBackspace})
	require.Equal(t, 1, buf.Height())
	assert.Equal(t, buffer.At(0, 3), c.Cursor())
}

func TestInsertKeyDelete(t *testing.T) {
	buf := buffer.FromString("ab\ncd")
	c := NewController(4)
	size := screen.Size{Rows: 24, Cols: 80}

	// Under a character: remove it in place.
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyDelete})
	assert.Equal(t, "b", buf.Line(0))
	assert.Equal(t, buffer.At(0, 0), c.Cursor())

	// At end-of-line: pull the next line up.
	c.editor = buffer.At(0, 1)
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyDelete})
	require.Equal(t, 1, buf.Height())
	assert.Equal(t, "bcd", buf.Line(0))

	// At the very end of the buffer: no-op.
	c.editor = buffer.At(0, 3)
	c.HandleInsertKey(buf, size, screen.Key{Kind: screen.KeyDelete})
	assert.Equal(t, "bcd", buf.Line(0))
}

func TestInsertKeyEscapeLeavesInsertMode(t *testing.T) {
	buf := buffer.New()
	c := NewController(4)
	mode := c.HandleInsertKey(buf, screen.Size{Rows: 24, Cols: 80}, screen.Key{Kind: screen.KeyEscape})
	assert.Equal(t, ModeNormal, mode)
}

func TestAnchorFollowsCursor(t *testing.T) {
	buf := buffer.FromString("1234\n2345\n3456\n4567\n5678")
	c := NewController(4)
	size := screen.Size{Rows: 3, Cols: 2}

	press := func(kind screen.KeyKind) {
		c.HandleInsertKey(buf, size, screen.Key{Kind: kind})
	}
	checkAnchor := func(row, col int) {
		t.Helper()
		assert.Equal(t, buffer.At(row, col), c.Anchor())
	}

	// No-op moves at the top-left corner never scroll.
	press(screen.KeyLeft)
	checkAnchor(0, 0)
	press(screen.KeyUp)
	checkAnchor(0, 0)

	// The anchor holds while the cursor stays inside the window, then
	// follows by the minimal amount.
	press(screen.KeyRight) // (0,1), still visible
	checkAnchor(0, 0)
	press(screen.KeyRight) // (0,2)
	checkAnchor(0, 1)
	press(screen.KeyRight) // (0,3)
	checkAnchor(0, 2)
	press(screen.KeyRight) // (0,4), one past end of line
	checkAnchor(0, 3)

	// Wrapping to the next line snaps the column anchor back to reveal
	// column 0.
	press(screen.KeyRight) // (1,0)
	checkAnchor(0, 0)

	// Same minimal-follow policy vertically.
	press(screen.KeyDown) // (2,0), still visible
	checkAnchor(0, 0)
	press(screen.KeyDown) // (3,0)
	checkAnchor(1, 0)
	press(screen.KeyDown) // (4,0)
	checkAnchor(2, 0)
	press(screen.KeyDown) // (5,0), the virtual line
	checkAnchor(3, 0)
	press(screen.KeyDown) // no-op at the end of the buffer
	checkAnchor(3, 0)

	// Moving back up inside the window leaves the anchor alone until the
	// cursor would leave through the top.
	press(screen.KeyUp) // (4,0)
	checkAnchor(3, 0)
	press(screen.KeyUp) // (3,0)
	checkAnchor(3, 0)
	press(screen.KeyUp) // (2,0)
	checkAnchor(2, 0)
}

func TestDrawVisibleSlice(t *testing.T) {
	buf := buffer.FromString("abcd\nefgh\nijkl\nmnop")
	c := NewController(4)

	rec := screen.NewRecorder(screen.Size{Rows: 24, Cols: 80})
	wm := screen.NewWindowManager(rec)

	// A window as big as the buffer gets every full line.
	win := wm.Resolve(wm.Claim(screen.Position{}, screen.Size{Rows: 4, Cols: 4}))
	require.NoError(t, c.Draw(buf, win))
	win.Release()
	assert.Equal(t, []screen.PutCall{
		{Text: "abcd", Pos: screen.Position{Row: 0, Col: 0}},
		{Text: "efgh", Pos: screen.Position{Row: 1, Col: 0}},
		{Text: "ijkl", Pos: screen.Position{Row: 2, Col: 0}},
		{Text: "mnop", Pos: screen.Position{Row: 3, Col: 0}},
	}, rec.Calls)

	// A smaller window clips to the anchor plus its own size.
	rec.Reset()
	win = wm.Resolve(wm.Claim(screen.Position{}, screen.Size{Rows: 2, Cols: 3}))
	require.NoError(t, c.Draw(buf, win))
	win.Release()
	assert.Equal(t, []screen.PutCall{
		{Text: "abc", Pos: screen.Position{Row: 0, Col: 0}},
		{Text: "efg", Pos: screen.Position{Row: 1, Col: 0}},
	}, rec.Calls)
}

func TestDrawScrolledSlice(t *testing.T) {
	buf := buffer.FromString("abcd\nefgh\nijkl\nmnop")
	c := NewController(4)
	size := screen.Size{Rows: 2, Cols: 2}

	// Walk the cursor to (2,3); the anchor follows to (1,2).
	c.editor = buffer.At(2, 3)
	c.updateAnchor(size)
	require.Equal(t, buffer.At(1, 2), c.Anchor())

	rec := screen.NewRecorder(screen.Size{Rows: 24, Cols: 80})
	wm := screen.NewWindowManager(rec)
	win := wm.Resolve(wm.Claim(screen.Position{Row: 1, Col: 1}, size))
	require.NoError(t, c.Draw(buf, win))
	win.Release()

	// Buffer rows 1..2, columns 2..3, translated by the window origin.
	assert.Equal(t, []screen.PutCall{
		{Text: "gh", Pos: screen.Position{Row: 1, Col: 1}},
		{Text: "kl", Pos: screen.Position{Row: 2, Col: 1}},
	}, rec.Calls)
}

func TestDrawSkipsShortLines(t *testing.T) {
	// Lines entirely left of the anchor column produce no writes at all.
	buf := buffer.FromString("abcdef\nab\nabcdef")
	c := NewController(4)
	c.editor = buffer.At(0, 5)
	c.updateAnchor(screen.Size{Rows: 3, Cols: 2})
	require.Equal(t, buffer.At(0, 4), c.Anchor())

	rec := screen.NewRecorder(screen.Size{Rows: 24, Cols: 80})
	wm := screen.NewWindowManager(rec)
	win := wm.Resolve(wm.Claim(screen.Position{}, screen.Size{Rows: 3, Cols: 2}))
	require.NoError(t, c.Draw(buf, win))
	win.Release()

	assert.Equal(t, []screen.PutCall{
		{Text: "ef", Pos: screen.Position{Row: 0, Col: 0}},
		{Text: "ef", Pos: screen.Position{Row: 2, Col: 0}},
	}, rec.Calls)
}
