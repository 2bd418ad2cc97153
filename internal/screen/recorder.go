package screen

import "io"

// PutCall is one recorded PutAt invocation.
type PutCall struct {
	Text string
	Pos  Position
}

// Recorder is a Screen that captures every write instead of rendering it.
// It enforces the same out-of-bounds panic as the live terminal so tests
// exercise the real contract.
type Recorder struct {
	size    Size
	Calls   []PutCall
	Flushes int
}

// NewRecorder returns a recording screen with the given fixed size.
func NewRecorder(size Size) *Recorder {
	return &Recorder{size: size}
}

// PutAt records the write. Panics outside the current size.
func (r *Recorder) PutAt(text string, pos Position) error {
	if !r.size.Contains(pos) {
		panic("screen: tried to put at position outside screen")
	}
	r.Calls = append(r.Calls, PutCall{Text: text, Pos: pos})
	return nil
}

// Flush counts flushes; there is nothing to push anywhere.
func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}

// Size returns the configured size.
func (r *Recorder) Size() (Size, error) {
	return r.size, nil
}

// Resize changes the reported size, simulating a terminal resize between
// calls.
func (r *Recorder) Resize(size Size) {
	r.size = size
}

// Reset drops recorded calls, keeping the size.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Flushes = 0
}

// Keys is a KeySource fed from a fixed slice, ending with io.EOF. It stands
// in for the blocking terminal event stream in tests.
type Keys struct {
	pending []Key
}

// NewKeys returns a source that yields the given keys in order.
func NewKeys(keys ...Key) *Keys {
	return &Keys{pending: keys}
}

// Next pops the next key, or reports end of input.
func (k *Keys) Next() (Key, error) {
	if len(k.pending) == 0 {
		return Key{}, io.EOF
	}
	next := k.pending[0]
	k.pending = k.pending[1:]
	return next, nil
}
