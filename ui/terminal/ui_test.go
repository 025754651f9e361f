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

package terminal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/notifications"
	"github.com/gopher64/gopher64/test"
	"github.com/gopher64/gopher64/ui/terminal"
)

type mockCues struct {
	notices []notifications.Notice
}

func (c *mockCues) Notify(notice notifications.Notice) error {
	c.notices = append(c.notices, notice)
	return nil
}

func TestButtons(t *testing.T) {
	w := &test.CompareWriter{}
	ui := terminal.NewUI(w, nil)

	test.ExpectFailure(t, ui.Keys([]uint8("x")))
	inp := ui.Input(0)
	test.ExpectEquality(t, inp.Buttons, uint32(0x0080))

	// other controllers are not driven by the keyboard
	test.ExpectEquality(t, ui.Input(1).Buttons, uint32(0))

	// the button is released after a number of reads
	for range 10 {
		inp = ui.Input(0)
	}
	test.ExpectEquality(t, inp.Buttons, uint32(0))

	// cursor up and the stick pushed to the right
	ui.Keys([]uint8("\x1b[Ad"))
	test.ExpectEquality(t, ui.Input(0).Buttons, uint32(0x0008|80<<16))

	// escape sequences can be split over reads
	for range 10 {
		ui.Input(0)
	}
	ui.Keys([]uint8("\x1b["))
	ui.Keys([]uint8("D"))
	test.ExpectEquality(t, ui.Input(0).Buttons, uint32(0x0002))

	// stick pushed down is a negative value
	for range 10 {
		ui.Input(0)
	}
	ui.Keys([]uint8("s"))
	test.ExpectEquality(t, ui.Input(0).Buttons, uint32(0xb0)<<24)

	ui.Keys([]uint8("p"))
	test.ExpectSuccess(t, ui.Input(0).ChangePak)
	test.ExpectFailure(t, ui.Input(0).ChangePak)

	test.ExpectSuccess(t, ui.Keys([]uint8{0x03}))
}

func TestRumble(t *testing.T) {
	w := &test.CompareWriter{}
	ui := terminal.NewUI(w, nil)

	ui.SetRumble(1, 1)
	ui.SetRumble(1, 2)
	test.ExpectSuccess(t, w.Compare("controller 2: rumble on\r\n"))
	ui.SetRumble(1, 0)
	test.ExpectSuccess(t, w.Compare("controller 2: rumble on\r\ncontroller 2: rumble off\r\n"))
}

func TestPolled(t *testing.T) {
	w := &test.CompareWriter{}
	ui := terminal.NewUI(w, nil)

	ui.Polled(0, 0)
	test.ExpectSuccess(t, w.Compare(""))
	ui.Polled(0, 0x80)
	ui.Polled(0, 0x80)
	test.ExpectSuccess(t, w.Compare("controller 1: 00000080\r\n"))
}

func TestNotify(t *testing.T) {
	w := &test.CompareWriter{}
	cues := &mockCues{}
	ui := terminal.NewUI(w, cues)

	test.ExpectSuccess(t, ui.Notify(notifications.NotifyPakInsertedRumblePak))
	test.ExpectSuccess(t, w.Compare("* rumble pak inserted\r\n"))
	test.DemandEquality(t, len(cues.notices), 1)
	test.ExpectEquality(t, cues.notices[0], notifications.NotifyPakInsertedRumblePak)
}

// word returns the word chosen by the user for the words sent by the VRU
func word(t *testing.T, ui *terminal.UI, words []string, keys string) string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	win := vru.NewWindow()
	done := make(chan error)
	go func() {
		done <- ui.ServiceWindow(ctx, win)
	}()

	chosen := make(chan uint16)
	go func() {
		chosen <- win.Prompt(words)
	}()

	// keys are sent until the menu accepts them
	var idx uint16
	for sent := false; !sent; {
		ui.Keys([]uint8(keys))
		select {
		case idx = <-chosen:
			sent = true
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	err := <-done
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))

	if idx == vru.NoMatch {
		return ""
	}
	return words[idx]
}

func TestMenu(t *testing.T) {
	w := &test.CompareWriter{}
	ui := terminal.NewUI(w, nil)
	ui.SetColumns(20)

	words := []string{"pikachu", "hello", "bye"}
	test.ExpectEquality(t, word(t, ui, words, "1\r"), "bye")
	test.ExpectEquality(t, word(t, ui, words, "3\r"), "pikachu")
	test.ExpectEquality(t, word(t, ui, words, "9\r"), "")
	test.ExpectEquality(t, word(t, ui, words, "\x1b"), "")
}
