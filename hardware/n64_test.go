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

package hardware_test

import (
	"testing"

	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware"
	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/hardware/saves"
	"github.com/gopher64/gopher64/notifications"
	"github.com/gopher64/gopher64/resources"
	"github.com/gopher64/gopher64/test"
)

type mockUI struct {
	notices []notifications.Notice
}

func (ui *mockUI) Input(_ int) controller.Input {
	return controller.Input{Buttons: 0x00000080}
}

func (ui *mockUI) SetRumble(_ int, _ uint8) {
}

func (ui *mockUI) Notify(notice notifications.Notice) error {
	ui.notices = append(ui.notices, notice)
	return nil
}

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()

	resources.BaseOverride = t.TempDir()
	t.Cleanup(func() {
		resources.BaseOverride = ""
	})

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

func newROM(gameID string) []uint8 {
	rom := make([]uint8, 0x1000)
	rom[0], rom[1], rom[2], rom[3] = 0x80, 0x37, 0x12, 0x40
	copy(rom[0x3b:], gameID)
	rom[0x3e] = 'E'
	return rom
}

func TestConnect(t *testing.T) {
	env := newEnv(t)
	env.Prefs.Input.ControllerEnabled[1].Set(true)
	env.Prefs.Input.ControllerEnabled[3].Set(true)
	env.Prefs.Input.EmulateVRU.Set(true)

	n, err := hardware.NewN64(env, newROM("NCT"), &mockUI{}, nil)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, n.PIF.Channels[0].Device, pif.Device(n.Controllers))
	test.ExpectEquality(t, n.Controllers.PakKind(0), paks.RumblePak)
	test.ExpectEquality(t, n.Controllers.PakKind(1), paks.RumblePak)
	test.ExpectSuccess(t, n.PIF.Channels[2].Device == nil)

	// the VRU takes priority over the controller in the fourth port
	test.DemandSuccess(t, n.VRU != nil)
	test.ExpectEquality(t, n.PIF.Channels[3].Device, pif.Device(n.VRU))
	test.ExpectSuccess(t, n.PIF.Channels[3].Pak == nil)

	// the CIC seed is in PIF RAM after reset
	test.ExpectEquality(t, n.PIF.RAM[0x26], n.Cart.Header.CICSeed)
}

func TestConnectNetplay(t *testing.T) {
	env := newEnv(t)
	env.Prefs.Input.EmulateVRU.Set(true)
	env.Netplay = &environment.Netplay{PlayerNumber: 1}
	env.Netplay.Registered[0] = true
	env.Netplay.Registered[1] = true

	n, err := hardware.NewN64(env, newROM("NSM"), &mockUI{}, &gbCart{})
	test.DemandSuccess(t, err)

	// no VRU or transfer paks in a netplay session
	test.ExpectSuccess(t, n.VRU == nil)
	test.ExpectEquality(t, n.Controllers.PakKind(0), paks.MemPak)
	test.ExpectEquality(t, n.Controllers.PakKind(1), paks.MemPak)
	test.ExpectSuccess(t, n.PIF.Channels[2].Device == nil)
	test.ExpectSuccess(t, n.PIF.Channels[3].Device == nil)
}

type gbCart struct{}

func (gb *gbCart) Read(_ uint16, _ []uint8) error {
	return nil
}

func (gb *gbCart) Write(_ uint16, _ []uint8) error {
	return nil
}

func TestTransferPakDefault(t *testing.T) {
	n, err := hardware.NewN64(newEnv(t), newROM("NSM"), &mockUI{}, &gbCart{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.Controllers.PakKind(0), paks.TransferPak)
}

const pifRAM = 0x1fc007c0

func TestJoybus(t *testing.T) {
	n, err := hardware.NewN64(newEnv(t), newROM("NSM"), &mockUI{}, nil)
	test.DemandSuccess(t, err)

	// a status command on channel zero followed by the end of setup marker
	test.DemandSuccess(t, n.WritePIF(pifRAM, 0x010300ff))
	test.DemandSuccess(t, n.WritePIF(pifRAM+4, 0xfffffe00))
	test.DemandSuccess(t, n.WritePIF(pifRAM+0x3c, 0x00000001))
	test.ExpectSuccess(t, n.PIF.Channels[0].Enabled())
	test.ExpectFailure(t, n.PIF.Channels[1].Enabled())
	test.ExpectEquality(t, n.PIF.RAM[0x3f], uint8(0))

	before := n.Sched.Count
	test.DemandSuccess(t, n.UpdatePIF())
	test.ExpectEquality(t, n.Sched.Count-before, uint64(24000+30000))

	test.ExpectEquality(t, n.ReadPIF(pifRAM), uint32(0x01030005))
	test.ExpectEquality(t, n.ReadPIF(pifRAM+4), uint32(0x0001fe00))

	// controller read
	test.DemandSuccess(t, n.WritePIF(pifRAM, 0x010401ff))
	test.DemandSuccess(t, n.WritePIF(pifRAM+4, 0xfffffffe))
	test.DemandSuccess(t, n.WritePIF(pifRAM+0x3c, 0x00000001))
	test.DemandSuccess(t, n.UpdatePIF())
	test.ExpectEquality(t, n.ReadPIF(pifRAM), uint32(0x01040180))
}

func TestFlush(t *testing.T) {
	ui := &mockUI{}
	n, err := hardware.NewN64(newEnv(t), newROM("NSM"), ui, nil)
	test.DemandSuccess(t, err)

	// nothing to write
	test.DemandSuccess(t, n.Flush())
	test.ExpectEquality(t, len(ui.notices), 0)

	test.DemandSuccess(t, n.Cart.WriteMem(0x08000000, 0x12345678, 0xffffffff))
	test.DemandSuccess(t, n.Flush())
	test.DemandEquality(t, len(ui.notices), 1)
	test.ExpectEquality(t, ui.notices[0], notifications.NotifySaveWritten)
	test.ExpectSuccess(t, n.Saves.IsSaved())

	// the save is loaded by a new emulation of the same ROM. the resource
	// directory is the same as the first emulation
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	n, err = hardware.NewN64(env, newROM("NSM"), ui, nil)
	test.DemandSuccess(t, err)
	v, err := n.Cart.ReadMem(0x08000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12345678))
	test.ExpectEquality(t, len(n.Saves.Store(saves.SRAM).Data), 0x8000)
}

func TestSnapshot(t *testing.T) {
	n, err := hardware.NewN64(newEnv(t), newROM("NZS"), &mockUI{}, nil)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, n.Cart.WriteMem(0x08010000, 0xb4000000, 0xffffffff))
	state := n.Snapshot()

	test.DemandSuccess(t, n.Cart.WriteMem(0x08010000, 0xd2000000, 0xffffffff))
	test.DemandSuccess(t, n.Controllers.Insert(0, paks.RumblePak))

	test.DemandSuccess(t, n.Restore(state))
	test.ExpectEquality(t, n.Cart.FlashRAM.Mode.String(), "page program")
	test.ExpectEquality(t, n.Controllers.PakKind(0), paks.MemPak)

	test.ExpectFailure(t, n.Restore([]uint8{0x01, 0x02}))
}

func TestPollControllers(t *testing.T) {
	env := newEnv(t)
	env.Prefs.Input.ControllerEnabled[2].Set(true)
	env.Prefs.Input.EmulateVRU.Set(true)

	n, err := hardware.NewN64(env, newROM("NSM"), &mockUI{}, nil)
	test.DemandSuccess(t, err)

	buttons, ok, err := n.PollControllers()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok[0])
	test.ExpectFailure(t, ok[1])
	test.ExpectSuccess(t, ok[2])

	// the VRU is not sent the controller read command
	test.ExpectFailure(t, ok[3])

	test.ExpectEquality(t, buttons[0], uint32(0x80))
	test.ExpectEquality(t, buttons[2], uint32(0x80))
	test.ExpectEquality(t, buttons[1], uint32(0))
}
