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

package savestate_test

import (
	"strings"
	"testing"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware/cart"
	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pi"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/hardware/rdram"
	"github.com/gopher64/gopher64/hardware/saves"
	"github.com/gopher64/gopher64/hardware/savestate"
	"github.com/gopher64/gopher64/notifications"
	"github.com/gopher64/gopher64/resources"
	"github.com/gopher64/gopher64/test"
)

type mockUI struct{}

func (ui *mockUI) Input(_ int) controller.Input {
	return controller.Input{}
}

func (ui *mockUI) SetRumble(_ int, _ uint8) {
}

func (ui *mockUI) Notify(_ notifications.Notice) error {
	return nil
}

func newMachine(t *testing.T, gameID string, withVRU bool) savestate.Machine {
	t.Helper()

	resources.BaseOverride = t.TempDir()
	t.Cleanup(func() {
		resources.BaseOverride = ""
	})

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	rom := make([]uint8, 0x1000)
	copy(rom[0x3b:], gameID)
	rom[0x3e] = 'E'
	h, err := cart.NewHeader(rom)
	test.DemandSuccess(t, err)

	m := savestate.Machine{
		Sched: events.NewScheduler(),
		PIF:   pif.NewPIF(env),
		Saves: saves.NewSaves(env, ""),
	}
	m.Cart = cart.NewCart(env, pi.NewPI(m.Sched), m.Sched, rdram.NewRDRAM(0x1000), m.Saves, h)
	m.Controllers = controller.NewControllers(env, m.PIF, m.Sched, &mockUI{}, m.Saves, nil)
	test.DemandSuccess(t, m.Controllers.Connect(0, paks.MemPak))
	test.DemandSuccess(t, m.Controllers.Connect(1, paks.RumblePak))

	if withVRU {
		m.VRU = vru.NewVRU(env, m.PIF, m.Sched, h.Region, nil)
		m.PIF.Channels[3].Device = m.VRU
	}

	return m
}

func TestSnapshotRestore(t *testing.T) {
	m := newMachine(t, "NZS", true)

	m.Sched.AddCycles(1000)
	m.Sched.Create(events.PakSwitch, 5000)
	m.PIF.RAM[10] = 0xaa
	m.PIF.Channels[1].ChangePak = paks.RumblePak
	m.Cart.FlashRAM.Mode = cart.ModePageProgram
	m.Cart.FlashRAM.PageBuf[5] = 0x55
	m.VRU.Words = []string{"hello", "goodbye"}
	m.VRU.WordBuffer[3] = 0x1234
	m.VRU.Talking = true
	m.Controllers.TransferPak(2).Bank = 3
	m.Saves.Store(saves.MemPak).Data = []uint8{1, 2, 3}

	s := savestate.Snapshot(m)
	test.ExpectEquality(t, s.Channels[0].Device, savestate.DeviceController)
	test.ExpectEquality(t, s.Channels[3].Device, savestate.DeviceVRU)
	test.ExpectEquality(t, s.Channels[4].Device, savestate.DeviceNone)
	test.ExpectEquality(t, s.Channels[1].Pak, paks.RumblePak)
	test.ExpectSuccess(t, strings.Contains(s.String(), "channel 1: controller with rumblepak"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "channel 3: vru"))

	// change everything
	m.Sched.AddCycles(1000)
	m.Sched.Remove(events.PakSwitch)
	m.PIF.RAM[10] = 0
	m.PIF.Channels[1].ChangePak = paks.None
	test.DemandSuccess(t, m.Controllers.Insert(0, paks.TransferPak))
	m.Cart.FlashRAM.Mode = cart.ModeStatus
	m.Cart.FlashRAM.PageBuf[5] = 0
	m.VRU.Words = append(m.VRU.Words, "extra")
	m.VRU.WordBuffer[3] = 0
	m.VRU.Talking = false
	m.Controllers.TransferPak(2).Bank = 0
	m.Saves.Store(saves.MemPak).Data[0] = 0xff

	// the state is restored from its wire format
	s, err := savestate.Unmarshal(s.Marshal())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Restore(m))

	test.ExpectEquality(t, m.Sched.Count, uint64(1000))
	e, ok := m.Sched.Get(events.PakSwitch)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Count, uint64(5000))
	test.ExpectEquality(t, m.PIF.RAM[10], uint8(0xaa))
	test.ExpectEquality(t, m.PIF.Channels[1].ChangePak, paks.RumblePak)
	test.ExpectEquality(t, m.Controllers.PakKind(0), paks.MemPak)
	test.ExpectEquality(t, m.Cart.FlashRAM.Mode, cart.ModePageProgram)
	test.ExpectEquality(t, m.Cart.FlashRAM.PageBuf[5], uint8(0x55))
	test.ExpectEquality(t, m.Cart.FlashRAM.SiliconID[1], uint32(cart.MX29L1100ID))
	test.DemandEquality(t, len(m.VRU.Words), 2)
	test.ExpectEquality(t, m.VRU.Words[1], "goodbye")
	test.ExpectEquality(t, m.VRU.WordBuffer[3], uint16(0x1234))
	test.ExpectSuccess(t, m.VRU.Talking)
	test.ExpectEquality(t, m.Controllers.TransferPak(2).Bank, uint8(3))
	test.ExpectEquality(t, m.Saves.Store(saves.MemPak).Data[0], uint8(1))

	// disabled channels survive the wire format
	test.ExpectFailure(t, m.PIF.Channels[2].Enabled())
}

func TestRestoreMismatch(t *testing.T) {
	withVRU := newMachine(t, "NZS", true)
	s := savestate.Snapshot(withVRU)

	noVRU := newMachine(t, "NZS", false)
	err := s.Restore(noVRU)
	test.ExpectSuccess(t, curated.Is(err, savestate.DeviceMismatch))

	sramCart := newMachine(t, "NSM", true)
	err = s.Restore(sramCart)
	test.ExpectSuccess(t, curated.Is(err, savestate.FlashRAMMismatch))

	// the machine is unchanged after a failed restore
	test.ExpectEquality(t, sramCart.Controllers.PakKind(1), paks.RumblePak)

	s.Channels[0].Pak = paks.Kind(10)
	err = s.Restore(withVRU)
	test.ExpectSuccess(t, curated.Is(err, savestate.InvalidPak))
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := savestate.Unmarshal([]uint8("not a state"))
	test.ExpectSuccess(t, curated.Is(err, savestate.NotAState))

	b := savestate.Snapshot(newMachine(t, "NSM", false)).Marshal()
	_, err = savestate.Unmarshal(b[:len(b)-3])
	test.ExpectSuccess(t, curated.Is(err, savestate.DecodeError))

	s, err := savestate.Unmarshal(b)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.FlashRAM == nil)
	test.ExpectSuccess(t, s.VRU == nil)
}

func TestRestoreBadOffsets(t *testing.T) {
	m := newMachine(t, "NZS", true)
	m.Sched.AddCycles(500)
	s := savestate.Snapshot(m)

	// a transmit offset beyond PIF RAM
	s.Channels[0].Tx = 200
	s.Channels[0].Rx = 201
	s.Channels[0].TxBuf = 202
	s.Channels[0].RxBuf = 203
	s, err := savestate.Unmarshal(s.Marshal())
	test.DemandSuccess(t, err)
	err = s.Restore(m)
	test.ExpectSuccess(t, curated.Is(err, pif.BadOffsets))

	// a partly disabled channel
	s = savestate.Snapshot(m)
	s.Channels[1].Tx = 0
	err = s.Restore(m)
	test.ExpectSuccess(t, curated.Is(err, pif.BadOffsets))

	// a receive buffer that runs past the end of PIF RAM
	s = savestate.Snapshot(m)
	s.RAM[1] = 0x20
	s.Channels[0] = savestate.Channel{Tx: 0, Rx: 1, TxBuf: 2, RxBuf: 40, Device: s.Channels[0].Device, Pak: s.Channels[0].Pak}
	err = s.Restore(m)
	test.ExpectSuccess(t, curated.Is(err, pif.BadOffsets))

	// a word buffer offset that is out of range
	s = savestate.Snapshot(m)
	s.VRU.LoadOffset = -1
	err = s.Restore(m)
	test.ExpectSuccess(t, curated.Is(err, savestate.InvalidVRU))

	s.VRU.LoadOffset = vru.WordBufferLen + 1
	err = s.Restore(m)
	test.ExpectSuccess(t, curated.Is(err, savestate.InvalidVRU))

	// the machine is unchanged and can still process PIF RAM
	test.ExpectEquality(t, m.Sched.Count, uint64(500))
	test.ExpectFailure(t, m.PIF.Channels[0].Enabled())
	_, err = m.PIF.UpdateRAM()
	test.ExpectSuccess(t, err)
}
