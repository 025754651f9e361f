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

package controller

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/hardware/saves"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/notifications"
)

// NumPorts is the number of controller ports.
const NumPorts = 4

// Input is the state of a controller as returned by the UI.
type Input struct {
	// button and stick state in the format returned by the controller read
	// command. the value is written to PIF RAM low byte first
	Buttons uint32

	// the pak switch gesture is active. the pak in the controller will be
	// removed and replaced by the next pak in the rotation after one second
	ChangePak bool
}

// UI is implemented by the front end.
type UI interface {
	paks.Rumbler
	notifications.Notify
	Input(channel int) Input
}

// Controllers is the pif.Device used for the controller ports. A single
// instance handles every port that has a controller plugged in.
type Controllers struct {
	env   *environment.Environment
	pif   *pif.PIF
	sched *events.Scheduler
	ui    UI

	memPak    *paks.MemPakDevice
	rumblePak *paks.RumblePakDevice

	// transfer paks have state that must survive being removed from the
	// controller so there is one for each port
	transferPaks [NumPorts]*paks.TransferPakDevice
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The gb argument can be nil if there is no Game Boy
// cartridge for the transfer pak.
func NewControllers(env *environment.Environment, p *pif.PIF, sched *events.Scheduler,
	ui UI, sv *saves.Saves, gb paks.GBCartridge) *Controllers {

	c := &Controllers{
		env:       env,
		pif:       p,
		sched:     sched,
		ui:        ui,
		memPak:    paks.NewMemPak(sv.Store(saves.MemPak)),
		rumblePak: paks.NewRumblePak(env, ui),
	}
	for i := range c.transferPaks {
		c.transferPaks[i] = paks.NewTransferPak(env, gb)
	}
	sched.Register(events.PakSwitch, c.pakSwitch)
	return c
}

func (c *Controllers) String() string {
	s := strings.Builder{}
	for i := range NumPorts {
		if c.pif.Channels[i].Device != c {
			continue
		}
		fmt.Fprintf(&s, "%d: ", i)
		if pak := c.pif.Channels[i].Pak; pak != nil {
			s.WriteString(pak.Kind().String())
		} else {
			s.WriteString("no pak")
		}
		if c.pif.Channels[i].ChangePak != paks.None {
			fmt.Fprintf(&s, " (switching from %v)", c.pif.Channels[i].ChangePak)
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Connect plugs a controller into the port and inserts a pak of the
// specified kind. A kind of paks.None leaves the controller empty.
func (c *Controllers) Connect(channel int, kind paks.Kind) error {
	c.pif.Channels[channel].Device = c
	return c.Insert(channel, kind)
}

// Insert a pak into the controller, replacing any pak that is already
// inserted.
func (c *Controllers) Insert(channel int, kind paks.Kind) error {
	ch := &c.pif.Channels[channel]
	switch kind {
	case paks.None:
		ch.Pak = nil
	case paks.MemPak:
		ch.Pak = c.memPak
	case paks.RumblePak:
		ch.Pak = c.rumblePak
	case paks.TransferPak:
		ch.Pak = c.transferPaks[channel]
	default:
		return curated.Fatalf(paks.InvalidRotation, kind)
	}
	return nil
}

// PakKind returns the kind of pak inserted in the controller. Returns
// paks.None if there is no pak.
func (c *Controllers) PakKind(channel int) paks.Kind {
	if c.pif.Channels[channel].Pak == nil {
		return paks.None
	}
	return c.pif.Channels[channel].Pak.Kind()
}

// TransferPak returns the transfer pak for the port, whether or not it is
// inserted.
func (c *Controllers) TransferPak(channel int) *paks.TransferPakDevice {
	return c.transferPaks[channel]
}

// Plumb the controllers into a new PIF and scheduler. Used after loading a
// savestate.
func (c *Controllers) Plumb(p *pif.PIF, sched *events.Scheduler) {
	c.pif = p
	c.sched = sched
	sched.Register(events.PakSwitch, c.pakSwitch)
}

// Process implements the pif.Device interface.
func (c *Controllers) Process(channel int) error {
	txb, rxb, err := c.pif.Channels[channel].Buffers(channel)
	if err != nil {
		return err
	}

	cmd := c.pif.RAM[txb]

	switch cmd {
	case pif.CmdReset, pif.CmdStatus:
		rx, err := c.pif.Bytes(rxb, 3)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint16(rx, pif.ControllerDevice)
		if c.pif.Channels[channel].Pak == nil {
			rx[2] = pif.StatusPakNotPresent
		} else {
			rx[2] = pif.StatusPakPresent
		}

	case pif.CmdControllerRead:
		rx, err := c.pif.Bytes(rxb, 4)
		if err != nil {
			return err
		}
		inp := c.ui.Input(channel)
		binary.LittleEndian.PutUint32(rx, inp.Buttons)
		if inp.ChangePak {
			c.removePak(channel)
		}

	case pif.CmdPakRead:
		return c.pakRead(channel, txb+1, rxb)

	case pif.CmdPakWrite:
		return c.pakWrite(channel, txb+1, rxb)

	default:
		logger.Logf(c.env, "controller", "unknown command (%#02x) on channel %d", cmd, channel)
	}

	return nil
}

func (c *Controllers) notify(n notifications.Notice) {
	if err := c.ui.Notify(n); err != nil {
		logger.Log(c.env, "controller", err)
	}
}

// the address of a pak read or write is in the first two bytes of the
// transmit buffer. the low five bits are the address CRC and are ignored
func (c *Controllers) pakAddress(addr int) (uint16, error) {
	a, err := c.pif.Bytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return uint16(a[0])<<8 | uint16(a[1]&0xe0), nil
}

// pakRead reads a chunk of data from the pak into the receive buffer. The
// byte after the data is the CRC of the data. If there is no pak, the
// receive buffer is untouched and the CRC is inverted.
func (c *Controllers) pakRead(channel int, addr int, rxb int) error {
	address, err := c.pakAddress(addr)
	if err != nil {
		return err
	}

	data, err := c.pif.Bytes(rxb, pif.PakChunkSize+1)
	if err != nil {
		return err
	}

	pak := c.pif.Channels[channel].Pak
	if pak == nil {
		data[pif.PakChunkSize] = ^pif.DataCRC(data[:pif.PakChunkSize])
		return nil
	}

	if err := pak.Read(channel, address, data[:pif.PakChunkSize]); err != nil {
		return err
	}
	data[pif.PakChunkSize] = pif.DataCRC(data[:pif.PakChunkSize])
	return nil
}

// pakWrite sends a chunk of data from the transmit buffer to the pak. The
// CRC of the data is written to the receive buffer. If there is no pak the
// CRC is inverted.
func (c *Controllers) pakWrite(channel int, addr int, rxb int) error {
	address, err := c.pakAddress(addr)
	if err != nil {
		return err
	}

	data, err := c.pif.Bytes(addr+2, pif.PakChunkSize)
	if err != nil {
		return err
	}

	pak := c.pif.Channels[channel].Pak
	if pak == nil {
		c.pif.RAM[rxb] = ^pif.DataCRC(data)
		return nil
	}

	if err := pak.Write(channel, address, data); err != nil {
		return err
	}
	c.pif.RAM[rxb] = pif.DataCRC(data)
	return nil
}
