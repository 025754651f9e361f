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

package macro

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware"
	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/notifications"
)

// the first line of every macro file
const headerID = "-- gopher64 macro"

// Sentinal errors returned by NewMacro() and Run().
const (
	NotAMacro   = "macro: %s: not a macro file"
	ScriptError = "macro: %v"
	NoWords     = "macro: vru is listening but there are no words to say"
)

// Macro runs a script against an emulation. It implements the controller.UI
// interface and should be used as the UI when the emulation is created.
type Macro struct {
	env      *environment.Environment
	filename string
	script   []uint8

	// notifications and rumble are forwarded to the front end. input from the
	// front end is used for controllers that have no buttons pressed by the
	// script. can be nil
	ui controller.UI

	// words that the script has not said are sent to the front end. can be
	// nil
	window *vru.Window

	crit    sync.Mutex
	input   [controller.NumPorts]controller.Input
	rumble  [controller.NumPorts]uint8
	notices []notifications.Notice
	words   []string

	// the most recent error from the emulation. the error is preserved
	// because the Lua error only carries the message
	err error
}

// NewMacro is the preferred method of initialisation for the Macro type.
// The ui argument can be nil.
func NewMacro(env *environment.Environment, filename string, ui controller.UI) (*Macro, error) {
	script, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}

	line, _, _ := bufio.NewReader(bytes.NewReader(script)).ReadLine()
	if strings.TrimSpace(string(line)) != headerID {
		return nil, curated.Errorf(NotAMacro, filename)
	}

	return &Macro{
		env:      env,
		filename: filename,
		script:   script,
		ui:       ui,
	}, nil
}

// AttachWindow connects the front end to the macro. When the VRU is listening
// and the script has no words to say the words are sent to the window.
func (mcr *Macro) AttachWindow(w *vru.Window) {
	mcr.window = w
}

// Input implements the controller.UI interface.
func (mcr *Macro) Input(channel int) controller.Input {
	mcr.crit.Lock()
	defer mcr.crit.Unlock()

	inp := mcr.input[channel]
	mcr.input[channel].ChangePak = false

	if inp.Buttons == 0 && mcr.ui != nil {
		fe := mcr.ui.Input(channel)
		inp.Buttons = fe.Buttons
		inp.ChangePak = inp.ChangePak || fe.ChangePak
	}

	return inp
}

// SetRumble implements the paks.Rumbler interface.
func (mcr *Macro) SetRumble(channel int, rumble uint8) {
	mcr.crit.Lock()
	mcr.rumble[channel] = rumble
	mcr.crit.Unlock()

	if mcr.ui != nil {
		mcr.ui.SetRumble(channel, rumble)
	}
}

// Notify implements the notifications.Notify interface.
func (mcr *Macro) Notify(notice notifications.Notice) error {
	mcr.crit.Lock()
	mcr.notices = append(mcr.notices, notice)
	mcr.crit.Unlock()

	if mcr.ui != nil {
		return mcr.ui.Notify(notice)
	}
	return nil
}

// answer the VRU with the words queued by the script
func (mcr *Macro) serviceWindow(ctx context.Context, w *vru.Window) {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case words := <-w.Words():
			mcr.crit.Lock()
			var word string
			said := len(mcr.words) > 0
			if said {
				word = mcr.words[0]
				mcr.words = mcr.words[1:]
			}
			mcr.crit.Unlock()

			if !said {
				if mcr.window == nil {
					logger.Log(mcr.env, "macro", curated.Errorf(NoWords))
				} else if idx := mcr.window.Prompt(words); idx != vru.NoMatch {
					word = words[idx]
				}
			}
			w.Choose(word)
		}
	}
}

// Run the script to completion. The script is stopped early if the context
// is cancelled.
func (mcr *Macro) Run(ctx context.Context, n *hardware.N64) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if n.VRU != nil {
		w := vru.NewWindow()
		n.VRU.AttachWindow(w)
		defer n.VRU.AttachWindow(nil)
		go mcr.serviceWindow(ctx, w)
	}

	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	L.SetGlobal("n64", L.SetFuncs(L.NewTable(), mcr.functions(n)))
	L.SetGlobal("log", L.NewFunction(mcr.log))

	mcr.err = nil

	fn, err := L.Load(bytes.NewReader(mcr.script), mcr.filename)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if mcr.err != nil {
			return mcr.err
		}
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

func (mcr *Macro) log(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	logger.Log(mcr.env, "macro", strings.Join(s, " "))
	return 0
}

// fail stops the script with an error from the emulation
func (mcr *Macro) fail(L *lua.LState, err error) int {
	mcr.err = err
	L.RaiseError("%v", err)
	return 0
}

func checkWord(L *lua.LState, n int) uint32 {
	return uint32(L.CheckInt64(n))
}

func checkPort(L *lua.LState, n int) int {
	p := L.CheckInt(n)
	if p < 0 || p >= controller.NumPorts {
		L.ArgError(n, "port out of range")
	}
	return p
}

func checkPak(L *lua.LState, n int) paks.Kind {
	s := L.CheckString(n)
	for k := paks.None; k <= paks.TransferPak; k++ {
		if k.String() == s {
			return k
		}
	}
	L.ArgError(n, "unknown pak")
	return paks.None
}

func (mcr *Macro) functions(n *hardware.N64) map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"write_pif": func(L *lua.LState) int {
			if err := n.WritePIF(checkWord(L, 1), checkWord(L, 2)); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"read_pif": func(L *lua.LState) int {
			L.Push(lua.LNumber(n.ReadPIF(checkWord(L, 1))))
			return 1
		},
		"update_pif": func(L *lua.LState) int {
			if err := n.UpdatePIF(); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"step": func(L *lua.LState) int {
			if err := n.Step(uint64(L.CheckInt64(1))); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"cycles": func(L *lua.LState) int {
			L.Push(lua.LNumber(n.Sched.Count))
			return 1
		},
		"reset": func(L *lua.LState) int {
			n.Reset()
			return 0
		},
		"read_cart": func(L *lua.LState) int {
			v, err := n.Cart.ReadMem(checkWord(L, 1))
			if err != nil {
				return mcr.fail(L, err)
			}
			L.Push(lua.LNumber(v))
			return 1
		},
		"write_cart": func(L *lua.LState) int {
			if err := n.Cart.WriteMem(checkWord(L, 1), checkWord(L, 2), 0xffffffff); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"dma_read": func(L *lua.LState) int {
			if err := n.DMARead(checkWord(L, 1), checkWord(L, 2), checkWord(L, 3)); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"dma_write": func(L *lua.LState) int {
			if err := n.DMAWrite(checkWord(L, 1), checkWord(L, 2), checkWord(L, 3)); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"pi_busy": func(L *lua.LState) int {
			L.Push(lua.LBool(n.PI.IOBusy() || n.PI.DMABusy()))
			return 1
		},
		"read_rdram": func(L *lua.LState) int {
			L.Push(lua.LNumber(n.RDRAM.Read32(checkWord(L, 1))))
			return 1
		},
		"write_rdram": func(L *lua.LState) int {
			n.RDRAM.Write32(checkWord(L, 1), checkWord(L, 2))
			return 0
		},
		"flush": func(L *lua.LState) int {
			if err := n.Flush(); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"insert": func(L *lua.LState) int {
			port := checkPort(L, 1)
			if n.PIF.Channels[port].Device != n.Controllers {
				L.ArgError(1, "no controller connected")
			}
			if err := n.Controllers.Insert(port, checkPak(L, 2)); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
		"pak": func(L *lua.LState) int {
			L.Push(lua.LString(n.Controllers.PakKind(checkPort(L, 1)).String()))
			return 1
		},
		"press": func(L *lua.LState) int {
			port := checkPort(L, 1)
			buttons := checkWord(L, 2)
			mcr.crit.Lock()
			mcr.input[port].Buttons = buttons
			mcr.crit.Unlock()
			return 0
		},
		"release": func(L *lua.LState) int {
			port := checkPort(L, 1)
			mcr.crit.Lock()
			mcr.input[port].Buttons = 0
			mcr.crit.Unlock()
			return 0
		},
		"change_pak": func(L *lua.LState) int {
			port := checkPort(L, 1)
			mcr.crit.Lock()
			mcr.input[port].ChangePak = true
			mcr.crit.Unlock()
			return 0
		},
		"rumble": func(L *lua.LState) int {
			port := checkPort(L, 1)
			mcr.crit.Lock()
			defer mcr.crit.Unlock()
			L.Push(lua.LNumber(mcr.rumble[port]))
			return 1
		},
		"notices": func(L *lua.LState) int {
			mcr.crit.Lock()
			defer mcr.crit.Unlock()
			t := L.NewTable()
			for _, notice := range mcr.notices {
				t.Append(lua.LString(notice))
			}
			mcr.notices = mcr.notices[:0]
			L.Push(t)
			return 1
		},
		"say": func(L *lua.LState) int {
			mcr.crit.Lock()
			defer mcr.crit.Unlock()
			for i := 1; i <= L.GetTop(); i++ {
				mcr.words = append(mcr.words, L.CheckString(i))
			}
			return 0
		},
		"snapshot": func(L *lua.LState) int {
			L.Push(lua.LString(n.Snapshot()))
			return 1
		},
		"restore": func(L *lua.LState) int {
			if err := n.Restore([]uint8(L.CheckString(1))); err != nil {
				return mcr.fail(L, err)
			}
			return 0
		},
	}
}
