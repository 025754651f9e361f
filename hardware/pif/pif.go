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

package pif

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/logger"
)

// RAMSize is the size of PIF RAM in bytes.
const RAMSize = 64

// NumChannels is the number of joybus channels.
const NumChannels = 5

// CartChannel is the channel used for the cartridge (EEPROM).
const CartChannel = 4

// PIF RAM is mapped at this offset in the PIF address space. addresses below
// this are in PIF ROM.
const (
	ramOffset = 0x7c0
	addrMask  = 0xffff
)

// index of the command byte in PIF RAM
const commandByte = 0x3f

// bits in the command byte
const (
	cmdConfigure = 0x01
	cmdChallenge = 0x02
	cmdTerminate = 0x08
	cmdLockout   = 0x10
	cmdChecksum  = 0x20
)

// Sentinal errors returned by the PIF.
const (
	OutOfRange   = "pif: PIF RAM access out of range (offset %d, size %d)"
	WriteToROM   = "pif: write to PIF ROM (%#04x)"
	ChannelError = "pif: channel %d: %v"
)

// the number of cycles taken by a PIF RAM access
const accessCycles = 3000

// PIF is the peripheral interface chip. Devices connected to the channels
// communicate with the CPU through PIF RAM.
type PIF struct {
	perm logger.Permission

	RAM      [RAMSize]uint8
	Channels [NumChannels]Channel
}

// NewPIF is the preferred method of initialisation for the PIF type.
func NewPIF(perm logger.Permission) *PIF {
	p := &PIF{
		perm: perm,
	}
	for i := range p.Channels {
		p.Channels[i].disable()
		p.Channels[i].ChangePak = paks.None
	}
	return p
}

func (p *PIF) String() string {
	s := strings.Builder{}
	for i := range p.Channels {
		s.WriteString(fmt.Sprintf("%d: %s\n", i, p.Channels[i].String()))
	}
	return s.String()
}

// Reset clears PIF RAM and the channel format. Devices and paks remain
// connected.
func (p *PIF) Reset(cicSeed uint8) {
	clear(p.RAM[:])
	for i := range p.Channels {
		p.Channels[i].disable()
	}
	p.RAM[0x26] = cicSeed
	p.RAM[0x27] = cicSeed
}

// Bytes returns a slice of PIF RAM. A fatal error is returned if the slice
// would extend beyond the end of PIF RAM.
func (p *PIF) Bytes(offset int, size int) ([]uint8, error) {
	if offset < 0 || size < 0 || offset+size > RAMSize {
		return nil, curated.Fatalf(OutOfRange, offset, size)
	}
	return p.RAM[offset : offset+size], nil
}

// ReadMem reads a 32-bit word from the PIF address space. Reading PIF ROM
// returns zero. The number of cycles taken by the access is also returned.
func (p *PIF) ReadMem(address uint32) (uint32, uint64) {
	a := int(address & addrMask)
	if a < ramOffset {
		return 0, accessCycles
	}
	a -= ramOffset
	if a+4 > RAMSize {
		return 0, accessCycles
	}
	return binary.BigEndian.Uint32(p.RAM[a:]), accessCycles
}

// WriteMem writes a 32-bit word to PIF RAM. Only the bits in the mask are
// written.
func (p *PIF) WriteMem(address uint32, value uint32, mask uint32) error {
	a := int(address & addrMask)
	if a < ramOffset {
		return curated.Fatalf(WriteToROM, a)
	}
	a -= ramOffset
	if a+4 > RAMSize {
		return curated.Fatalf(OutOfRange, a, 4)
	}
	d := binary.BigEndian.Uint32(p.RAM[a:])
	d = (d &^ mask) | (value & mask)
	binary.BigEndian.PutUint32(p.RAM[a:], d)
	return nil
}

// ProcessRAM acts on the command byte at the end of PIF RAM. It should be
// called after the CPU has written to PIF RAM.
func (p *PIF) ProcessRAM() {
	var clearMask uint8

	command := p.RAM[commandByte]

	if command&cmdConfigure == cmdConfigure {
		p.setupChannelsFormat()
		clearMask |= cmdConfigure
	}

	if command&cmdChallenge == cmdChallenge {
		// channel processing is disabled when doing the CIC challenge
		for i := range p.Channels {
			p.Channels[i].disable()
		}
		p.cicChallenge()
		clearMask |= cmdChallenge
	}

	if command&cmdTerminate == cmdTerminate {
		clearMask |= cmdTerminate
	}

	if command&cmdLockout == cmdLockout {
		logger.Log(p.perm, "pif", "ROM lockout")
	}

	if command&cmdChecksum == cmdChecksum {
		p.RAM[commandByte] = 0x80
	}

	p.RAM[commandByte] &^= clearMask
}

// UpdateRAM processes every enabled channel. It should be called before the
// CPU reads from PIF RAM. Returns the number of cycles taken.
func (p *PIF) UpdateRAM() (uint64, error) {
	var active uint64
	for i := range p.Channels {
		ok, err := p.processChannel(i)
		if err != nil {
			return 0, curated.Errorf(ChannelError, i, err)
		}
		if ok {
			active++
		}
	}
	return 24000 + active*30000, nil
}

func (p *PIF) processChannel(channel int) (bool, error) {
	ch := &p.Channels[channel]

	if !ch.Enabled() {
		return false, nil
	}

	p.RAM[ch.Tx] &= 0x3f
	p.RAM[ch.Rx] &= 0x3f

	// no response if there is no device on the channel
	if ch.Device == nil {
		p.RAM[ch.Rx] |= 0x80
		return false, nil
	}

	return true, ch.Device.Process(channel)
}

// returns the number of bytes used by the channel
func (p *PIF) setupChannel(channel int, buf int) int {
	tx := int(p.RAM[buf] & 0x3f)
	rx := int(p.RAM[buf+1] & 0x3f)

	ch := &p.Channels[channel]
	ch.Tx = buf
	ch.Rx = buf + 1
	ch.TxBuf = buf + 2
	ch.RxBuf = buf + 2 + tx

	// channels that extend beyond PIF RAM can not be processed
	if ch.RxBuf >= RAMSize || ch.RxBuf+rx > RAMSize {
		logger.Logf(p.perm, "pif", "channel %d extends beyond PIF RAM", channel)
		ch.disable()
	}

	return 2 + tx + rx
}

func (p *PIF) setupChannelsFormat() {
	i := 0
	k := 0
	for i < RAMSize && k < NumChannels {
		switch p.RAM[i] {
		case 0x00:
			// skip channel
			p.Channels[k].disable()
			k++
			i++
		case 0xff:
			// padding
			i++
		case 0xfe:
			// end of setup. remaining channels are disabled
			for ; k < NumChannels; k++ {
				p.Channels[k].disable()
			}
		case 0xfd:
			// channel reset
			p.Channels[k].disable()
			k++
			i++
		default:
			// some games send a bogus byte before the end of setup marker
			// when accessing controller paks
			if i+1 < RAMSize && p.RAM[i+1] == 0xfe {
				i++
				continue
			}
			if i+2 >= RAMSize {
				i = RAMSize
				continue
			}
			i += p.setupChannel(k, i)
			k++
		}
	}
}
