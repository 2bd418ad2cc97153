package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"mktxt/internal/buffer"
	"mktxt/internal/screen"
)

// SaveFunc persists buffer lines. The session never touches the filesystem
// itself; the caller decides where the text goes.
type SaveFunc func(lines []string) error

// Options configures a Session.
type Options struct {
	// TabWidth is the number of spaces inserted per tab key.
	TabWidth int
	// Save is invoked for the normal-mode save command. Nil makes saving a
	// no-op (read-only session).
	Save SaveFunc
	// Logger receives session events. Nil falls back to slog.Default.
	Logger *slog.Logger
}

// Session runs one editing loop: block on a key, mutate the buffer, re-anchor
// the viewport, redraw. Strictly single-threaded; processing one key is
// atomic with respect to the next.
type Session struct {
	buf  *buffer.Buffer
	clip *buffer.Buffer
	ctrl *Controller
	scr  screen.Screen
	keys screen.KeySource
	wm   *screen.WindowManager
	mode Mode
	save SaveFunc
	log  *slog.Logger
}

// NewSession wires a buffer, a screen, and a key source into a session
// starting in normal mode.
func NewSession(buf *buffer.Buffer, scr screen.Screen, keys screen.KeySource, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		buf:  buf,
		clip: buffer.New(),
		ctrl: NewController(opts.TabWidth),
		scr:  scr,
		keys: keys,
		wm:   screen.NewWindowManager(scr),
		mode: ModeNormal,
		save: opts.Save,
		log:  log,
	}
}

// Run drives the loop until the quit command or the end of the key sequence,
// both normal termination. Screen and key-source failures abort the session
// and propagate.
func (s *Session) Run() error {
	id, err := s.wm.ClaimFull()
	if err != nil {
		return fmt.Errorf("claim window: %w", err)
	}
	if err := s.redraw(id); err != nil {
		return err
	}

	for {
		key, err := s.keys.Next()
		if errors.Is(err, io.EOF) {
			s.log.Info("input ended", "mode", s.mode.String())
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		// The terminal may have been resized while we were blocked, so the
		// size is re-queried for every key.
		size, err := s.scr.Size()
		if err != nil {
			return fmt.Errorf("query size: %w", err)
		}

		switch s.mode {
		case ModeInsert:
			s.mode = s.ctrl.HandleInsertKey(s.buf, size, key)
		case ModeNormal:
			var action Action
			s.mode, action = s.ctrl.HandleNormalKey(s.buf, s.clip, size, key)
			if action == ActionSave {
				if err := s.doSave(); err != nil {
					return fmt.Errorf("save buffer: %w", err)
				}
			}
		}

		if s.mode == ModeQuit {
			s.log.Info("quit", "lines", s.buf.Height())
			return nil
		}
		if err := s.redraw(id); err != nil {
			return err
		}
	}
}

func (s *Session) doSave() error {
	if s.save == nil {
		return nil
	}
	if err := s.save(s.buf.Lines()); err != nil {
		return err
	}
	s.log.Info("saved", "lines", s.buf.Height())
	return nil
}

// redraw re-fits the window claim to the current screen size, blanks it, and
// draws the visible buffer slice.
func (s *Session) redraw(id screen.WindowID) error {
	size, err := s.scr.Size()
	if err != nil {
		return fmt.Errorf("query size: %w", err)
	}
	s.wm.Reclaim(id, screen.Position{}, size)

	win := s.wm.Resolve(id)
	defer win.Release()
	if err := win.Blank(); err != nil {
		return fmt.Errorf("blank window: %w", err)
	}
	if err := s.ctrl.Draw(s.buf, win); err != nil {
		return fmt.Errorf("draw buffer: %w", err)
	}
	return s.scr.Flush()
}
