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

package hardware

import (
	"encoding/binary"
	"fmt"

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
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/notifications"
)

// the VRU is always plugged into the fourth port
const vruChannel = 3

// N64 is the container for the emulated joybus and backup hardware.
type N64 struct {
	env *environment.Environment
	ui  controller.UI

	// the cartridge has a Game Boy cartridge for the transfer paks
	gbCart bool

	Sched       *events.Scheduler
	RDRAM       *rdram.RDRAM
	PI          *pi.PI
	PIF         *pif.PIF
	Cart        *cart.Cart
	Saves       *saves.Saves
	Controllers *controller.Controllers

	// nil if the VRU is not being emulated
	VRU *vru.VRU
}

// NewN64 creates a new N64 for the ROM. The ROM data is normalised to the
// big-endian (z64) format in place.
//
// The gb argument is the Game Boy cartridge inserted into the transfer paks.
// It can be nil.
func NewN64(env *environment.Environment, rom []uint8, ui controller.UI, gb paks.GBCartridge) (*N64, error) {
	if err := cart.Normalise(rom); err != nil {
		return nil, err
	}

	h, err := cart.NewHeader(rom)
	if err != nil {
		return nil, err
	}

	n := &N64{
		env:    env,
		ui:     ui,
		gbCart: gb != nil,
		Sched:  events.NewScheduler(),
		RDRAM:  rdram.NewRDRAM(rdram.Size),
		PIF:    pif.NewPIF(env),
	}

	// secondary emulations never touch the save files
	name := ""
	if env.IsMainEmulation() {
		name = saves.Name(h.GameID, rom)
	}
	n.Saves = saves.NewSaves(env, name)
	if err := n.Saves.Load(); err != nil {
		return nil, err
	}

	n.PI = pi.NewPI(n.Sched)
	n.PI.Regs[pi.BsdDom2Lat] = 0x05
	n.PI.Regs[pi.BsdDom2Pwd] = 0x0c
	n.PI.Regs[pi.BsdDom2Pgs] = 0x0d
	n.PI.Regs[pi.BsdDom2Rls] = 0x02

	n.Cart = cart.NewCart(env, n.PI, n.Sched, n.RDRAM, n.Saves, h)
	n.Controllers = controller.NewControllers(env, n.PIF, n.Sched, ui, n.Saves, gb)

	if env.Prefs.Input.EmulateVRU.Get().(bool) && !env.IsNetplay() {
		n.VRU = vru.NewVRU(env, n.PIF, n.Sched, h.Region, ui)
	}

	if err := n.connect(); err != nil {
		return nil, err
	}

	n.PIF.Reset(h.CICSeed)

	return n, nil
}

func (n *N64) String() string {
	return fmt.Sprintf("%v\n%v", n.Cart, n.Controllers)
}

// connect devices to the controller channels. in a netplay session a
// controller is connected for every registered player and the transfer pak
// and VRU are not available
func (n *N64) connect() error {
	kind := controller.DefaultPak(n.Cart.Header.GameID, n.gbCart && !n.env.IsNetplay())

	for i := range controller.NumPorts {
		var enabled bool
		if n.env.IsNetplay() {
			enabled = n.env.Netplay.Registered[i]
		} else {
			enabled = n.env.Prefs.Input.ControllerEnabled[i].Get().(bool)
		}
		if !enabled {
			n.PIF.Channels[i].Device = nil
			n.PIF.Channels[i].Pak = nil
			continue
		}
		if err := n.Controllers.Connect(i, kind); err != nil {
			return err
		}
		logger.Logf(n.env, "n64", "channel %d: controller with %v", i, kind)
	}

	if n.VRU != nil {
		n.PIF.Channels[vruChannel].Device = n.VRU
		n.PIF.Channels[vruChannel].Pak = nil
		logger.Logf(n.env, "n64", "channel %d: vru", vruChannel)
	}

	return nil
}

// CyclesPerSecond returns the number of CPU cycles in one second of emulated
// time.
func (n *N64) CyclesPerSecond() uint64 {
	return uint64(n.env.Prefs.ClockRate.Get().(int))
}

// Reset the console. PIF RAM is cleared and the VRU is reset. Paks remain
// inserted in the controllers.
func (n *N64) Reset() {
	n.PIF.Reset(n.Cart.Header.CICSeed)
	if n.VRU != nil {
		n.VRU.Reset()
	}
}

// Step the emulation by the number of cycles. Any events that become due
// are triggered.
func (n *N64) Step(cycles uint64) error {
	return n.Sched.Advance(cycles)
}

// WritePIF writes a word to PIF RAM and acts on any command in the command
// byte. This is the equivalent of the serial interface DMA to PIF RAM.
func (n *N64) WritePIF(address uint32, value uint32) error {
	if err := n.PIF.WriteMem(address, value, 0xffffffff); err != nil {
		return err
	}
	n.PIF.ProcessRAM()
	return nil
}

// UpdatePIF processes every channel. This is the equivalent of the serial
// interface DMA from PIF RAM. The time taken is added to the cycle count.
func (n *N64) UpdatePIF() error {
	cycles, err := n.PIF.UpdateRAM()
	if err != nil {
		return err
	}
	n.Sched.AddCycles(cycles)
	return nil
}

// ReadPIF reads a word from PIF RAM. The time taken is added to the cycle
// count.
func (n *N64) ReadPIF(address uint32) uint32 {
	v, cycles := n.PIF.ReadMem(address)
	n.Sched.AddCycles(cycles)
	return v
}

// the address of PIF RAM on the CPU bus
const pifRAMAddress = 0x1fc007c0

// PollControllers reads every connected controller in the same way as the
// operating system of a game. The ok value is false for ports with no
// controller connected.
func (n *N64) PollControllers() (buttons [controller.NumPorts]uint32, ok [controller.NumPorts]bool, err error) {
	var ram [pif.RAMSize]uint8
	var offset [controller.NumPorts]int

	i := 0
	for p := range controller.NumPorts {
		if n.PIF.Channels[p].Device != n.Controllers {
			offset[p] = -1
			ram[i] = 0x00
			i++
			continue
		}
		offset[p] = i
		copy(ram[i:], []uint8{0x01, 0x04, pif.CmdControllerRead, 0xff, 0xff, 0xff, 0xff})
		i += 7
	}
	ram[i] = 0xfe
	ram[pif.RAMSize-1] = 0x01

	for w := 0; w < pif.RAMSize; w += 4 {
		if err := n.WritePIF(pifRAMAddress+uint32(w), binary.BigEndian.Uint32(ram[w:])); err != nil {
			return buttons, ok, err
		}
	}
	if err := n.UpdatePIF(); err != nil {
		return buttons, ok, err
	}
	for w := 0; w < pif.RAMSize; w += 4 {
		binary.BigEndian.PutUint32(ram[w:], n.ReadPIF(pifRAMAddress+uint32(w)))
	}

	for p, o := range offset {
		if o < 0 || ram[o+1]&0x80 == 0x80 {
			continue
		}
		buttons[p] = binary.LittleEndian.Uint32(ram[o+3:])
		ok[p] = true
	}

	return buttons, ok, nil
}

// DMARead transfers data from RDRAM to the cartridge backup device. The PI
// is busy until the transfer completes.
func (n *N64) DMARead(cartAddr uint32, dramAddr uint32, length uint32) error {
	cycles, err := n.Cart.DMARead(cartAddr, dramAddr, length)
	if err != nil {
		return err
	}
	n.PI.SetDMABusy(cycles)
	return nil
}

// DMAWrite transfers data from the cartridge backup device to RDRAM. The PI
// is busy until the transfer completes.
func (n *N64) DMAWrite(cartAddr uint32, dramAddr uint32, length uint32) error {
	cycles, err := n.Cart.DMAWrite(cartAddr, dramAddr, length)
	if err != nil {
		return err
	}
	n.PI.SetDMABusy(cycles)
	return nil
}

// Flush the save files to disk.
func (n *N64) Flush() error {
	if n.Saves.IsSaved() {
		return nil
	}
	if err := n.Saves.Flush(); err != nil {
		return err
	}
	if n.ui != nil {
		if err := n.ui.Notify(notifications.NotifySaveWritten); err != nil {
			logger.Log(n.env, "n64", err)
		}
	}
	return nil
}

func (n *N64) machine() savestate.Machine {
	return savestate.Machine{
		Sched:       n.Sched,
		PIF:         n.PIF,
		Cart:        n.Cart,
		Controllers: n.Controllers,
		VRU:         n.VRU,
		Saves:       n.Saves,
	}
}

// Snapshot returns the serialised state of the hardware.
func (n *N64) Snapshot() []uint8 {
	return savestate.Snapshot(n.machine()).Marshal()
}

// Restore the hardware from serialised state created by Snapshot().
func (n *N64) Restore(data []uint8) error {
	s, err := savestate.Unmarshal(data)
	if err != nil {
		return err
	}
	return s.Restore(n.machine())
}
