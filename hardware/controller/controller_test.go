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

package controller_test

import (
	"testing"

	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/hardware/saves"
	"github.com/gopher64/gopher64/notifications"
	"github.com/gopher64/gopher64/resources"
	"github.com/gopher64/gopher64/test"
)

type mockUI struct {
	input   [controller.NumPorts]controller.Input
	rumble  [controller.NumPorts]uint8
	notices []notifications.Notice
}

func (ui *mockUI) Input(channel int) controller.Input {
	return ui.input[channel]
}

func (ui *mockUI) SetRumble(channel int, rumble uint8) {
	ui.rumble[channel] = rumble
}

func (ui *mockUI) Notify(notice notifications.Notice) error {
	ui.notices = append(ui.notices, notice)
	return nil
}

type fixture struct {
	env   *environment.Environment
	pif   *pif.PIF
	sched *events.Scheduler
	ui    *mockUI
	saves *saves.Saves
	ctrl  *controller.Controllers

	// offset of the receive buffer used by the most recent command
	rx int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	resources.BaseOverride = t.TempDir()
	t.Cleanup(func() {
		resources.BaseOverride = ""
	})

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	f := &fixture{
		env:   env,
		pif:   pif.NewPIF(env),
		sched: events.NewScheduler(),
		ui:    &mockUI{},
		saves: saves.NewSaves(env, ""),
	}
	f.ctrl = controller.NewControllers(env, f.pif, f.sched, f.ui, f.saves, nil)

	return f
}

// command places the command and transmit data at the start of PIF RAM and
// processes the channel. the receive buffer follows the transmit data and
// its offset is stored in the rx field
func (f *fixture) command(t *testing.T, channel int, cmd uint8, tx ...uint8) error {
	t.Helper()
	clear(f.pif.RAM[:])
	f.pif.RAM[0] = cmd
	copy(f.pif.RAM[1:], tx)
	f.rx = 1 + len(tx)
	f.pif.Channels[channel].TxBuf = 0
	f.pif.Channels[channel].RxBuf = f.rx
	return f.ctrl.Process(channel)
}

func TestImplements(t *testing.T) {
	f := newFixture(t)
	test.ExpectImplements(t, f.ctrl, pif.Device(nil))
}

func TestStatus(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(0, paks.None))
	test.ExpectEquality(t, f.pif.Channels[0].Device, pif.Device(f.ctrl))

	for _, cmd := range []uint8{pif.CmdStatus, pif.CmdReset} {
		test.DemandSuccess(t, f.command(t, 0, cmd))
		test.ExpectEquality(t, f.pif.RAM[f.rx], uint8(0x05))
		test.ExpectEquality(t, f.pif.RAM[f.rx+1], uint8(0x00))
		test.ExpectEquality(t, f.pif.RAM[f.rx+2], uint8(pif.StatusPakNotPresent))
	}

	test.DemandSuccess(t, f.ctrl.Insert(0, paks.MemPak))
	test.DemandSuccess(t, f.command(t, 0, pif.CmdStatus))
	test.ExpectEquality(t, f.pif.RAM[f.rx+2], uint8(pif.StatusPakPresent))
}

func TestControllerRead(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(1, paks.MemPak))

	f.ui.input[1].Buttons = 0x11223344
	test.DemandSuccess(t, f.command(t, 1, pif.CmdControllerRead))
	test.ExpectEquality(t, f.pif.RAM[f.rx], uint8(0x44))
	test.ExpectEquality(t, f.pif.RAM[f.rx+1], uint8(0x33))
	test.ExpectEquality(t, f.pif.RAM[f.rx+2], uint8(0x22))
	test.ExpectEquality(t, f.pif.RAM[f.rx+3], uint8(0x11))

	// unknown commands are not errors
	test.ExpectSuccess(t, f.command(t, 1, 0x42))
}

func TestPakReadWrite(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(0, paks.MemPak))

	// write a chunk to address 0x0440. the low bits of the second address
	// byte are the address CRC and are ignored
	tx := make([]uint8, 2+pif.PakChunkSize)
	tx[0] = 0x04
	tx[1] = 0x4f
	for i := range pif.PakChunkSize {
		tx[2+i] = uint8(i * 3)
	}
	test.DemandSuccess(t, f.command(t, 0, pif.CmdPakWrite, tx...))
	test.ExpectEquality(t, f.pif.RAM[f.rx], pif.DataCRC(tx[2:]))
	test.ExpectSuccess(t, f.saves.Store(saves.MemPak).Written)

	// and read it back
	test.DemandSuccess(t, f.command(t, 0, pif.CmdPakRead, 0x04, 0x40))
	for i := range pif.PakChunkSize {
		test.ExpectEquality(t, f.pif.RAM[f.rx+i], tx[2+i])
	}
	test.ExpectEquality(t, f.pif.RAM[f.rx+pif.PakChunkSize], pif.DataCRC(tx[2:]))
}

func TestNoPak(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(0, paks.None))

	// the receive buffer is untouched and the CRC is inverted
	clear(f.pif.RAM[:])
	f.pif.RAM[0] = pif.CmdPakRead
	for i := range pif.PakChunkSize {
		f.pif.RAM[20+i] = uint8(i + 7)
	}
	f.pif.Channels[0].TxBuf = 0
	f.pif.Channels[0].RxBuf = 20
	test.DemandSuccess(t, f.ctrl.Process(0))
	for i := range pif.PakChunkSize {
		test.ExpectEquality(t, f.pif.RAM[20+i], uint8(i+7))
	}
	test.ExpectEquality(t, f.pif.RAM[20+pif.PakChunkSize], ^pif.DataCRC(f.pif.RAM[20:20+pif.PakChunkSize]))

	// an empty region gives a CRC of 0xff
	test.DemandSuccess(t, f.command(t, 0, pif.CmdPakRead, 0x80, 0x00))
	test.ExpectEquality(t, f.pif.RAM[f.rx+pif.PakChunkSize], uint8(0xff))

	tx := make([]uint8, 2+pif.PakChunkSize)
	tx[2] = 0x01
	test.DemandSuccess(t, f.command(t, 0, pif.CmdPakWrite, tx...))
	test.ExpectEquality(t, f.pif.RAM[f.rx], ^pif.DataCRC(tx[2:]))
}

func TestPakReadReproducible(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(2, paks.RumblePak))

	test.DemandSuccess(t, f.command(t, 2, pif.CmdPakRead, 0x80, 0x00))
	crc := f.pif.RAM[f.rx+pif.PakChunkSize]
	test.ExpectEquality(t, f.pif.RAM[f.rx], uint8(0x80))

	test.DemandSuccess(t, f.command(t, 2, pif.CmdPakRead, 0x80, 0x00))
	test.ExpectEquality(t, f.pif.RAM[f.rx+pif.PakChunkSize], crc)
}

func TestRumble(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(2, paks.RumblePak))

	tx := make([]uint8, 2+pif.PakChunkSize)
	tx[0] = 0xc0
	for i := range pif.PakChunkSize {
		tx[2+i] = 0x01
	}
	test.DemandSuccess(t, f.command(t, 2, pif.CmdPakWrite, tx...))
	test.ExpectEquality(t, f.ui.rumble[2], uint8(0x01))
}

func TestPakSwitch(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(0, paks.MemPak))
	test.DemandSuccess(t, f.ctrl.Connect(1, paks.TransferPak))
	rate := f.env.Prefs.ClockRate.Get().(int)

	f.ui.input[0].ChangePak = true
	test.DemandSuccess(t, f.command(t, 0, pif.CmdControllerRead))
	f.ui.input[0].ChangePak = false

	test.ExpectEquality(t, f.ctrl.PakKind(0), paks.None)
	test.ExpectEquality(t, f.pif.Channels[0].ChangePak, paks.MemPak)
	test.DemandSuccess(t, f.sched.Pending(events.PakSwitch))
	test.DemandEquality(t, len(f.ui.notices), 1)
	test.ExpectEquality(t, f.ui.notices[0], notifications.NotifyPakRemoved)

	// the pak appears to be absent while the switch is pending
	test.DemandSuccess(t, f.command(t, 0, pif.CmdStatus))
	test.ExpectEquality(t, f.pif.RAM[f.rx+2], uint8(pif.StatusPakNotPresent))

	// a second switch can not start while one is pending, even on another
	// channel
	f.ui.input[1].ChangePak = true
	test.DemandSuccess(t, f.command(t, 1, pif.CmdControllerRead))
	f.ui.input[1].ChangePak = false
	test.ExpectEquality(t, f.ctrl.PakKind(1), paks.TransferPak)
	test.ExpectEquality(t, f.pif.Channels[1].ChangePak, paks.None)

	f.ui.rumble[0] = 1
	test.DemandSuccess(t, f.sched.Advance(uint64(rate)))
	test.ExpectEquality(t, f.ctrl.PakKind(0), paks.RumblePak)
	test.ExpectEquality(t, f.pif.Channels[0].ChangePak, paks.None)
	test.ExpectEquality(t, f.ui.rumble[0], uint8(0))
	test.DemandEquality(t, len(f.ui.notices), 2)
	test.ExpectEquality(t, f.ui.notices[1], notifications.NotifyPakInsertedRumblePak)

	// the transfer pak rotates back to the mempak
	f.ui.input[1].ChangePak = true
	test.DemandSuccess(t, f.command(t, 1, pif.CmdControllerRead))
	test.DemandSuccess(t, f.sched.Advance(uint64(rate)))
	test.ExpectEquality(t, f.ctrl.PakKind(1), paks.MemPak)
}

func TestTransferPakSurvivesSwitch(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.ctrl.Connect(3, paks.TransferPak))

	tp := f.ctrl.TransferPak(3)
	test.ExpectEquality(t, f.pif.Channels[3].Pak, paks.Pak(tp))

	tp.Bank = 2
	for range 3 {
		test.DemandSuccess(t, f.ctrl.Insert(3, paks.MemPak))
		test.DemandSuccess(t, f.ctrl.Insert(3, paks.TransferPak))
	}
	test.ExpectEquality(t, f.ctrl.TransferPak(3).Bank, uint8(2))
}

func TestDefaultPak(t *testing.T) {
	test.ExpectEquality(t, controller.DefaultPak("NSM", false), paks.MemPak)
	test.ExpectEquality(t, controller.DefaultPak("NCT", false), paks.RumblePak)
	test.ExpectEquality(t, controller.DefaultPak("NCT", true), paks.TransferPak)
	test.ExpectEquality(t, controller.DefaultPak("NSM", true), paks.TransferPak)
}
