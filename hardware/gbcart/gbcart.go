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

package gbcart

import (
	"fmt"
	"strings"

	"github.com/gopher64/gopher64/curated"
)

// header locations
const (
	headerEnd   = 0x014f
	titleStart  = 0x0134
	titleEnd    = 0x0144
	cartType    = 0x0147
	ramSizeCode = 0x0149
)

// Sentinal error returned by NewCartridge()
const ROMTooShort = "gbcart: ROM too short (%d bytes)"

// size of external RAM for each RAM size code
var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 0x800,
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
	0x05: 0x10000,
}

// Cartridge implements the paks.GBCartridge interface.
type Cartridge struct {
	Title string

	// the cartridge has no memory controller
	romOnly bool

	rom []uint8
	RAM []uint8

	romBank    uint8
	ramBank    uint8
	ramEnabled bool
	ramMode    bool
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge(rom []uint8) (*Cartridge, error) {
	if len(rom) <= headerEnd {
		return nil, curated.Errorf(ROMTooShort, len(rom))
	}

	c := &Cartridge{
		Title:   strings.TrimRight(string(rom[titleStart:titleEnd]), "\x00"),
		romOnly: rom[cartType] == 0x00,
		rom:     rom,
		romBank: 1,
	}
	c.RAM = make([]uint8, ramSizes[rom[ramSizeCode]])

	return c, nil
}

func (c *Cartridge) String() string {
	if c.romOnly {
		return fmt.Sprintf("%s (rom only)", c.Title)
	}
	return fmt.Sprintf("%s (mbc1, %dKB ram)", c.Title, len(c.RAM)/1024)
}

func (c *Cartridge) romByte(bank int, address uint16) uint8 {
	o := bank*0x4000 + int(address&0x3fff)
	if o < len(c.rom) {
		return c.rom[o]
	}
	return 0xff
}

func (c *Cartridge) ramOffset(address uint16) (int, bool) {
	if !c.ramEnabled || len(c.RAM) == 0 {
		return 0, false
	}
	o := int(address - 0xa000)
	if c.ramMode {
		o += int(c.ramBank) * 0x2000
	}
	return o, o < len(c.RAM)
}

func (c *Cartridge) read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		if c.ramMode && !c.romOnly {
			return c.romByte(int(c.ramBank)<<5, address)
		}
		return c.romByte(0, address)
	case address < 0x8000:
		if c.romOnly {
			return c.romByte(1, address)
		}
		return c.romByte(int(c.romBank|c.ramBank<<5), address)
	case address >= 0xa000 && address < 0xc000:
		if o, ok := c.ramOffset(address); ok {
			return c.RAM[o]
		}
	}
	return 0xff
}

func (c *Cartridge) write(address uint16, v uint8) {
	if c.romOnly && address < 0x8000 {
		return
	}

	switch {
	case address < 0x2000:
		c.ramEnabled = v&0x0f == 0x0a
	case address < 0x4000:
		c.romBank = max(v&0x1f, 1)
	case address < 0x6000:
		c.ramBank = v & 0x03
	case address < 0x8000:
		c.ramMode = v&0x01 == 0x01
	case address >= 0xa000 && address < 0xc000:
		if o, ok := c.ramOffset(address); ok {
			c.RAM[o] = v
		}
	}
}

// Read implements the paks.GBCartridge interface.
func (c *Cartridge) Read(address uint16, data []uint8) error {
	for i := range data {
		data[i] = c.read(address + uint16(i))
	}
	return nil
}

// Write implements the paks.GBCartridge interface.
func (c *Cartridge) Write(address uint16, data []uint8) error {
	for i, v := range data {
		c.write(address+uint16(i), v)
	}
	return nil
}
