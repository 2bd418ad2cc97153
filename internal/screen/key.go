package screen

import "fmt"

// KeyKind identifies a decoded key event variant.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyChar
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyDelete
	KeyCtrl
	// KeyResize is delivered when the terminal changes size. It maps to no
	// editing action but still drives a redraw through the session loop.
	KeyResize
)

// Key is one decoded input event. Rune is set for KeyChar (the character
// itself) and KeyCtrl (the lowercase letter of the chord).
type Key struct {
	Kind KeyKind
	Rune rune
}

// Char returns a printable-character key.
func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// Ctrl returns a control-chord key for the given lowercase letter.
func Ctrl(r rune) Key {
	return Key{Kind: KeyCtrl, Rune: r}
}

func (k Key) String() string {
	switch k.Kind {
	case KeyChar:
		return fmt.Sprintf("Char(%q)", k.Rune)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl(%q)", k.Rune)
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyDelete:
		return "Delete"
	case KeyResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// KeySource produces decoded key events. Next blocks until an event arrives
// and returns io.EOF when the input sequence ends; the sequence is finite and
// not restartable.
type KeySource interface {
	Next() (Key, error)
}
