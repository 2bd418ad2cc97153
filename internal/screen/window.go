package screen

// WindowID names a claimed rectangle in a WindowManager's registry.
type WindowID int

type claim struct {
	pos  Position
	size Size
}

// WindowManager owns a registry of rectangular claims over one Screen and
// hands out windows for them one at a time. A resolved Window borrows the
// Screen exclusively; it must be released before the same or another claim
// can be resolved again, so two windows can never interleave writes.
type WindowManager struct {
	scr    Screen
	claims []claim
	active bool
}

// NewWindowManager returns a manager over scr with no claims.
func NewWindowManager(scr Screen) *WindowManager {
	return &WindowManager{scr: scr}
}

// Claim registers a rectangle at pos with the given size and returns its
// handle. Claims may exceed the physical screen; writes through the resolved
// window are checked against the screen's real size, not the claim.
func (m *WindowManager) Claim(pos Position, size Size) WindowID {
	m.claims = append(m.claims, claim{pos: pos, size: size})
	return WindowID(len(m.claims) - 1)
}

// ClaimFull registers a rectangle covering the screen's current size.
func (m *WindowManager) ClaimFull() (WindowID, error) {
	size, err := m.scr.Size()
	if err != nil {
		return 0, err
	}
	return m.Claim(Position{}, size), nil
}

// Reclaim moves an existing claim to a new position and size. Used after a
// terminal resize to keep a full-screen claim full-screen.
func (m *WindowManager) Reclaim(id WindowID, pos Position, size Size) {
	m.checkID(id)
	m.claims[id] = claim{pos: pos, size: size}
}

// Resolve checks out the window for id. Panics if any window from this
// manager is still unreleased: overlapping borrows are a caller bug.
func (m *WindowManager) Resolve(id WindowID) *Window {
	m.checkID(id)
	if m.active {
		panic("screen: tried to resolve a window while another is held")
	}
	m.active = true
	c := m.claims[id]
	return &Window{mgr: m, pos: c.pos, size: c.size}
}

func (m *WindowManager) checkID(id WindowID) {
	if id < 0 || int(id) >= len(m.claims) {
		panic("screen: unknown window id")
	}
}

// Window is a resolved claim: a rectangle with its own local coordinate
// space, translated onto the Screen it borrows.
type Window struct {
	mgr      *WindowManager
	pos      Position
	size     Size
	released bool
}

// Size returns the window's claimed extent.
func (w *Window) Size() Size {
	return w.size
}

// PutAt writes text at a window-local position by translating it to an
// absolute one. Bounds are enforced by the underlying Screen against its
// real size.
func (w *Window) PutAt(text string, local Position) error {
	w.checkHeld()
	return w.mgr.scr.PutAt(text, w.pos.Add(local))
}

// Blank fills every cell of the window with a space, row-major.
func (w *Window) Blank() error {
	w.checkHeld()
	for row := 0; row < w.size.Rows; row++ {
		for col := 0; col < w.size.Cols; col++ {
			if err := w.PutAt(" ", Position{Row: row, Col: col}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Release returns the Screen borrow to the manager. The window must not be
// used afterwards.
func (w *Window) Release() {
	w.checkHeld()
	w.released = true
	w.mgr.active = false
}

func (w *Window) checkHeld() {
	if w.released {
		panic("screen: window used after release")
	}
}
