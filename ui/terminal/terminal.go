// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/gopher64/gopher64/curated"
)

// Sentinal errors returned by NewTerminal().
const (
	NotATerminal = "terminal: %v"
)

// Terminal is a posix terminal in raw mode. Key presses are passed to the
// UI.
type Terminal struct {
	input  *os.File
	output *os.File

	ui *UI

	canAttr unix.Termios
	rawAttr unix.Termios

	// the terminal is returned to canonical mode only once
	restore sync.Once
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is put into raw mode and must be returned to canonical
// mode with the CleanUp() function.
func NewTerminal(input *os.File, output *os.File, ui *UI) (*Terminal, error) {
	t := &Terminal{
		input:  input,
		output: output,
		ui:     ui,
	}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}
	t.rawAttr = t.canAttr
	termios.Cfmakeraw(&t.rawAttr)

	// output processing stays on so that the cues and log messages printed
	// by other packages line up
	t.rawAttr.Oflag = t.canAttr.Oflag

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.rawAttr); err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}

	t.updateGeometry()

	return t, nil
}

// CleanUp returns the terminal to canonical mode.
func (t *Terminal) CleanUp() {
	t.restore.Do(func() {
		_ = termios.Tcflush(t.input.Fd(), termios.TCIFLUSH)
		_ = termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canAttr)
	})
}

func (t *Terminal) updateGeometry() {
	ws, err := unix.IoctlGetWinsize(int(t.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return
	}
	t.ui.SetColumns(int(ws.Col))
}

// Service reads the keyboard until the user quits or the context is
// cancelled. Changes to the size of the terminal are passed to the UI.
//
// Returns nil when the user quits.
func (t *Terminal) Service(ctx context.Context) error {
	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	defer signal.Stop(sigwinch)

	type read struct {
		b   []uint8
		err error
	}
	reads := make(chan read)

	// the read is not interruptable so the goroutine is left to finish when
	// the process ends
	go func() {
		for {
			b := make([]uint8, 16)
			n, err := t.input.Read(b)
			select {
			case reads <- read{b: b[:n], err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sigwinch:
			t.updateGeometry()
		case r := <-reads:
			if r.err != nil {
				if errors.Is(r.err, os.ErrClosed) {
					return nil
				}
				return r.err
			}
			if t.ui.Keys(r.b) {
				return nil
			}
		}
	}
}
