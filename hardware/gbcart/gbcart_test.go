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

package gbcart_test

import (
	"testing"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/gbcart"
	"github.com/gopher64/gopher64/test"
)

func newROM(cartType uint8, ramSize uint8) []uint8 {
	rom := make([]uint8, 0x4000*8)
	for bank := range 8 {
		rom[bank*0x4000+0x10] = uint8(bank)
	}
	copy(rom[0x134:], "POKEMON")
	rom[0x147] = cartType
	rom[0x149] = ramSize
	return rom
}

func TestROMOnly(t *testing.T) {
	c, err := gbcart.NewCartridge(newROM(0x00, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectImplements(t, c, paks.GBCartridge(nil))
	test.ExpectEquality(t, c.Title, "POKEMON")

	d := make([]uint8, 1)
	test.DemandSuccess(t, c.Read(0x4010, d))
	test.ExpectEquality(t, d[0], uint8(1))

	// bank switching has no effect
	test.DemandSuccess(t, c.Write(0x2000, []uint8{3}))
	test.DemandSuccess(t, c.Read(0x4010, d))
	test.ExpectEquality(t, d[0], uint8(1))

	test.DemandSuccess(t, c.Read(0xa000, d))
	test.ExpectEquality(t, d[0], uint8(0xff))

	_, err = gbcart.NewCartridge(make([]uint8, 0x100))
	test.ExpectSuccess(t, curated.Is(err, gbcart.ROMTooShort))
}

func TestMBC1(t *testing.T) {
	c, err := gbcart.NewCartridge(newROM(0x03, 0x03))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(c.RAM), 0x8000)

	d := make([]uint8, 1)
	test.DemandSuccess(t, c.Write(0x2000, []uint8{5}))
	test.DemandSuccess(t, c.Read(0x4010, d))
	test.ExpectEquality(t, d[0], uint8(5))

	// bank zero selects bank one
	test.DemandSuccess(t, c.Write(0x2000, []uint8{0}))
	test.DemandSuccess(t, c.Read(0x4010, d))
	test.ExpectEquality(t, d[0], uint8(1))

	// RAM must be enabled before it can be written
	test.DemandSuccess(t, c.Write(0xa000, []uint8{0x12}))
	test.ExpectEquality(t, c.RAM[0], uint8(0x00))
	test.DemandSuccess(t, c.Write(0x0000, []uint8{0x0a}))
	test.DemandSuccess(t, c.Write(0xa000, []uint8{0x12, 0x34}))
	test.ExpectEquality(t, c.RAM[1], uint8(0x34))

	// RAM banking
	test.DemandSuccess(t, c.Write(0x6000, []uint8{1}))
	test.DemandSuccess(t, c.Write(0x4000, []uint8{2}))
	test.DemandSuccess(t, c.Write(0xa000, []uint8{0x56}))
	test.ExpectEquality(t, c.RAM[0x4000], uint8(0x56))
	test.DemandSuccess(t, c.Read(0xa000, d))
	test.ExpectEquality(t, d[0], uint8(0x56))
}
