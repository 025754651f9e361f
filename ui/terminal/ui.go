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
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/notifications"
)

var noticeText = map[notifications.Notice]string{
	notifications.NotifyPakRemoved:             "pak removed",
	notifications.NotifyPakInsertedMemPak:      "controller pak inserted",
	notifications.NotifyPakInsertedRumblePak:   "rumble pak inserted",
	notifications.NotifyPakInsertedTransferPak: "transfer pak inserted",
	notifications.NotifyVRUListening:           "vru listening",
	notifications.NotifyVRUStopped:             "vru stopped",
	notifications.NotifySaveWritten:            "save written",
}

// UI implements the controller.UI interface. Keyboard input is sent to the
// UI with the Keys() function.
type UI struct {
	out io.Writer

	// notifications are forwarded to the cue player. can be nil
	cues notifications.Notify

	crit sync.Mutex

	// width of the terminal in characters
	cols int

	// remaining controller reads for each held button
	held map[uint32]int

	stick     stick
	stickHeld int

	changePak bool
	rumble    [controller.NumPorts]uint8

	// the most recent controller state seen by the emulation
	polled [controller.NumPorts]uint32

	// bytes of an incomplete escape sequence
	esc []byte

	// the VRU menu. words is nil when the menu is not being shown
	window *vru.Window
	words  []string
	entry  []byte
}

// NewUI is the preferred method of initialisation for the UI type. The cues
// argument can be nil.
func NewUI(out io.Writer, cues notifications.Notify) *UI {
	return &UI{
		out:  out,
		cues: cues,
		cols: 80,
		held: make(map[uint32]int),
	}
}

// SetColumns changes the width used to layout the VRU menu.
func (ui *UI) SetColumns(cols int) {
	ui.crit.Lock()
	defer ui.crit.Unlock()
	if cols > 0 {
		ui.cols = cols
	}
}

// print a line of output. the terminal is in raw mode so a carriage return
// is required
func (ui *UI) print(s string, a ...any) {
	fmt.Fprintf(ui.out, s+"\r\n", a...)
}

// Input implements the controller.UI interface. Only the first controller is
// driven by the keyboard.
func (ui *UI) Input(channel int) controller.Input {
	ui.crit.Lock()
	defer ui.crit.Unlock()

	var inp controller.Input
	if channel != 0 {
		return inp
	}

	for b, n := range ui.held {
		inp.Buttons |= b
		if n <= 1 {
			delete(ui.held, b)
		} else {
			ui.held[b] = n - 1
		}
	}

	if ui.stickHeld > 0 {
		inp.Buttons |= stickBits(ui.stick)
		ui.stickHeld--
	}

	inp.ChangePak = ui.changePak
	ui.changePak = false

	return inp
}

// SetRumble implements the paks.Rumbler interface.
func (ui *UI) SetRumble(channel int, rumble uint8) {
	ui.crit.Lock()
	defer ui.crit.Unlock()

	if channel < 0 || channel >= len(ui.rumble) {
		return
	}
	if (ui.rumble[channel] == 0) == (rumble == 0) {
		return
	}
	ui.rumble[channel] = rumble
	if rumble == 0 {
		ui.print("controller %d: rumble off", channel+1)
	} else {
		ui.print("controller %d: rumble on", channel+1)
	}
}

// Polled shows the state of a controller as seen by the emulation. Only
// changes are shown.
func (ui *UI) Polled(channel int, buttons uint32) {
	ui.crit.Lock()
	defer ui.crit.Unlock()

	if ui.polled[channel] == buttons || ui.words != nil {
		return
	}
	ui.polled[channel] = buttons
	ui.print("controller %d: %08x", channel+1, buttons)
}

// Notify implements the notifications.Notify interface.
func (ui *UI) Notify(notice notifications.Notice) error {
	ui.crit.Lock()
	if s, ok := noticeText[notice]; ok {
		ui.print("* %s", s)
	}
	ui.crit.Unlock()

	if ui.cues != nil {
		return ui.cues.Notify(notice)
	}
	return nil
}

// ServiceWindow presents the word lists sent by the VRU until the context is
// cancelled. The user's choice is made with the Keys() function.
func (ui *UI) ServiceWindow(ctx context.Context, w *vru.Window) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case words := <-w.Words():
			ui.crit.Lock()
			ui.window = w
			ui.words = words
			ui.entry = ui.entry[:0]
			ui.menu()
			ui.crit.Unlock()
		}
	}
}

func (ui *UI) menu() {
	width := 0
	for _, w := range ui.words {
		width = max(width, len(w))
	}

	// "nn. " before each word and two spaces after
	width += 6
	perRow := max(1, ui.cols/width)

	ui.print("say a word:")
	var s strings.Builder
	for i, w := range ui.words {
		fmt.Fprintf(&s, "%2d. %-*s", i+1, width-4, w)
		if (i+1)%perRow == 0 {
			ui.print("%s", strings.TrimRight(s.String(), " "))
			s.Reset()
		}
	}
	if s.Len() > 0 {
		ui.print("%s", strings.TrimRight(s.String(), " "))
	}
	fmt.Fprint(ui.out, "> ")
}

// choose a word from the menu and close it. an empty string means that
// nothing was recognised
func (ui *UI) choose(word string) {
	w := ui.window
	ui.window = nil
	ui.words = nil
	ui.entry = ui.entry[:0]
	if word == "" {
		ui.print("")
		ui.print("* no word recognised")
	} else {
		ui.print("")
		ui.print("* %s", word)
	}
	w.Choose(word)
}

// menuKey handles a key while the VRU menu is being shown
func (ui *UI) menuKey(k byte) {
	switch {
	case k >= '0' && k <= '9':
		ui.entry = append(ui.entry, k)
		fmt.Fprintf(ui.out, "%c", k)
	case k == keyBackspace:
		if len(ui.entry) > 0 {
			ui.entry = ui.entry[:len(ui.entry)-1]
			fmt.Fprint(ui.out, "\b \b")
		}
	case k == keyReturn || k == keyNewline:
		n, err := strconv.Atoi(string(ui.entry))
		if err != nil || n < 1 || n > len(ui.words) {
			ui.choose("")
		} else {
			ui.choose(ui.words[n-1])
		}
	case k == keyEscape:
		ui.choose("")
	}
}

// Keys handles input from the keyboard. Returns true if the user has asked
// to quit.
func (ui *UI) Keys(b []uint8) bool {
	ui.crit.Lock()
	defer ui.crit.Unlock()

	for i, k := range b {
		if k == keyCtrlC {
			return true
		}

		// an escape sequence is introduced by an escape and a bracket. an
		// escape on its own is the escape key
		if len(ui.esc) > 0 || k == keyEscape {
			ui.esc = append(ui.esc, k)
			switch {
			case len(ui.esc) == 1 && i == len(b)-1:
				ui.esc = ui.esc[:0]
				ui.key(keyEscape)
			case len(ui.esc) == 2 && k != '[':
				ui.esc = ui.esc[:0]
				ui.key(keyEscape)
				ui.key(k)
			case len(ui.esc) == 3:
				if ui.words == nil {
					if btn, ok := cursorKeys[k]; ok {
						ui.held[btn] = holdReads
					}
				}
				ui.esc = ui.esc[:0]
			}
			continue
		}

		ui.key(k)
	}

	return false
}

func (ui *UI) key(k byte) {
	if ui.words != nil {
		ui.menuKey(k)
		return
	}

	if btn, ok := buttonKeys[k]; ok {
		ui.held[btn] = holdReads
		return
	}

	if s, ok := stickKeys[k]; ok {
		ui.stick = s
		ui.stickHeld = holdReads
		return
	}

	if k == keyPakSwitch {
		ui.changePak = true
	}
}
