// Package term adapts a tcell terminal to the screen capability. It is the
// live variant of screen.Screen and screen.KeySource; everything above it is
// terminal-agnostic.
package term

import (
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mktxt/internal/screen"
)

// Terminal drives a real terminal through tcell. It also decodes tcell key
// events into the abstract key variants the editor consumes.
type Terminal struct {
	screen tcell.Screen
}

// New initializes the process terminal: alternate screen, raw input.
func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return &Terminal{screen: s}, nil
}

// NewWith wraps an already-initialized tcell screen. Tests pass a
// SimulationScreen here.
func NewWith(s tcell.Screen) *Terminal {
	return &Terminal{screen: s}
}

// Fini restores the terminal. Must run before the process exits.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// PutAt writes text starting at pos, advancing by display width per rune.
// Panics outside the current terminal size.
func (t *Terminal) PutAt(text string, pos screen.Position) error {
	size, err := t.Size()
	if err != nil {
		return err
	}
	if !size.Contains(pos) {
		panic("term: tried to put at position outside screen")
	}
	col := pos.Col
	for _, r := range text {
		t.screen.SetContent(col, pos.Row, r, nil, tcell.StyleDefault)
		col += runewidth.RuneWidth(r)
	}
	return nil
}

// Flush pushes pending writes to the terminal.
func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

// Size returns the current terminal size. Re-queried on every call; the
// terminal may have been resized since the last one.
func (t *Terminal) Size() (screen.Size, error) {
	w, h := t.screen.Size()
	return screen.Size{Rows: h, Cols: w}, nil
}

// Next blocks for the next input event and decodes it. Returns io.EOF once
// the event stream is closed.
func (t *Terminal) Next() (screen.Key, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return screen.Key{}, io.EOF
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return decodeKey(ev), nil
		case *tcell.EventResize:
			return screen.Key{Kind: screen.KeyResize}, nil
		}
		// Mouse and paste events are not part of the input model; keep
		// waiting for something we understand.
	}
}

func decodeKey(ev *tcell.EventKey) screen.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return screen.Key{Kind: screen.KeyLeft}
	case tcell.KeyRight:
		return screen.Key{Kind: screen.KeyRight}
	case tcell.KeyUp:
		return screen.Key{Kind: screen.KeyUp}
	case tcell.KeyDown:
		return screen.Key{Kind: screen.KeyDown}
	case tcell.KeyEnter:
		return screen.Key{Kind: screen.KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return screen.Key{Kind: screen.KeyBackspace}
	case tcell.KeyDelete:
		return screen.Key{Kind: screen.KeyDelete}
	case tcell.KeyEscape:
		return screen.Key{Kind: screen.KeyEscape}
	case tcell.KeyTab:
		return screen.Char('\t')
	case tcell.KeyRune:
		return screen.Char(ev.Rune())
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return screen.Ctrl(rune('a' + k - tcell.KeyCtrlA))
	}
	return screen.Key{Kind: screen.KeyUnknown}
}
