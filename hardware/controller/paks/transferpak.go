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

package paks

import (
	"fmt"

	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/logger"
)

// GBCartridge is implemented by the Game Boy cartridge emulation. The address
// is in the Game Boy address space.
type GBCartridge interface {
	Read(address uint16, data []uint8) error
	Write(address uint16, data []uint8) error
}

// values for the access mode register
const (
	tpakAccessMode0 = 0
	tpakAccessMode1 = 1
)

// the access mode changed bit is set in the first byte of the next status
// read after the access mode is changed
const tpakAccessModeChanged = 0x04

// TransferPakDevice is the transfer pak. The pak must be powered on before the Game
// Boy cartridge can be accessed. The cartridge is accessed through a 16KB
// window at 0xc000, the position of which in the Game Boy address space is
// set with the bank register.
type TransferPakDevice struct {
	env *environment.Environment

	Enabled           bool
	Bank              uint8
	AccessMode        uint8
	AccessModeChanged uint8

	// the cartridge inserted into the transfer pak. can be nil
	Cart GBCartridge
}

// NewTransferPak is the preferred method of initialisation for the
// TransferPakDevice type.
func NewTransferPak(env *environment.Environment, cart GBCartridge) *TransferPakDevice {
	return &TransferPakDevice{
		env:  env,
		Cart: cart,
	}
}

func (tp *TransferPakDevice) String() string {
	return fmt.Sprintf("enabled=%v bank=%d mode=%d", tp.Enabled, tp.Bank, tp.AccessMode)
}

// Kind implements the Pak interface.
func (tp *TransferPakDevice) Kind() Kind {
	return TransferPak
}

func fill(data []uint8, v uint8) {
	for i := range data {
		data[i] = v
	}
}

// the address in the Game Boy address space for an address in the cartridge
// window
func (tp *TransferPakDevice) gbAddress(address uint16) uint16 {
	return address - 0xc000 + uint16(tp.Bank&3)*0x4000
}

// Read implements the Pak interface.
func (tp *TransferPakDevice) Read(_ int, address uint16, data []uint8) error {
	switch {
	case address >= 0x8000 && address < 0x9000:
		if tp.Enabled {
			fill(data, 0x84)
		} else {
			fill(data, 0x00)
		}

	case address >= 0xb000 && address < 0xc000:
		if !tp.Enabled {
			fill(data, 0x00)
			return nil
		}
		if tp.AccessMode == tpakAccessMode1 {
			fill(data, 0x89)
		} else {
			fill(data, 0x80)
		}
		if len(data) > 0 {
			data[0] |= tp.AccessModeChanged
		}
		tp.AccessModeChanged = 0

	case address >= 0xc000:
		if !tp.Enabled || tp.Cart == nil {
			fill(data, 0x00)
			return nil
		}
		return tp.Cart.Read(tp.gbAddress(address), data)

	default:
		fill(data, 0x00)
	}

	return nil
}

// Write implements the Pak interface.
func (tp *TransferPakDevice) Write(_ int, address uint16, data []uint8) error {
	if len(data) == 0 {
		return nil
	}
	v := data[len(data)-1]

	switch {
	case address >= 0x8000 && address < 0x9000:
		switch v {
		case 0xfe:
			tp.Enabled = false
		case 0x84:
			tp.Enabled = true
		default:
			logger.Logf(tp.env, "transferpak", "unknown power value (%#02x)", v)
		}

	case address >= 0xa000 && address < 0xb000:
		if tp.Enabled {
			tp.Bank = v
		}

	case address >= 0xb000 && address < 0xc000:
		if tp.Enabled {
			if v&0x01 == 0x01 {
				tp.AccessMode = tpakAccessMode1
			} else {
				tp.AccessMode = tpakAccessMode0
			}
			tp.AccessModeChanged = tpakAccessModeChanged
		}

	case address >= 0xc000:
		if tp.Enabled && tp.Cart != nil {
			return tp.Cart.Write(tp.gbAddress(address), data)
		}
	}

	return nil
}
