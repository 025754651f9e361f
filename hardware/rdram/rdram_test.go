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

package rdram_test

import (
	"testing"

	"github.com/gopher64/gopher64/hardware/rdram"
	"github.com/gopher64/gopher64/test"
)

func TestByteOrder(t *testing.T) {
	r := rdram.NewRDRAM(16)

	r.Write32(4, 0x11223344)
	test.ExpectEquality(t, r.Read8(4), uint8(0x11))
	test.ExpectEquality(t, r.Read8(5), uint8(0x22))
	test.ExpectEquality(t, r.Read8(6), uint8(0x33))
	test.ExpectEquality(t, r.Read8(7), uint8(0x44))

	r.Write8(8, 0xaa)
	r.Write8(11, 0xbb)
	test.ExpectEquality(t, r.Read32(8), uint32(0xaa0000bb))
}

func TestOutOfRange(t *testing.T) {
	r := rdram.NewRDRAM(16)
	r.Write8(16, 0xff)
	r.Write32(16, 0xffffffff)
	test.ExpectEquality(t, r.Read8(16), uint8(0))
	test.ExpectEquality(t, r.Read32(16), uint32(0))

	// addresses are masked
	r.Write8(0x1000000, 0x12)
	test.ExpectEquality(t, r.Read8(0), uint8(0x12))
}
