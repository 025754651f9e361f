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

// Package rdram is the main memory of the console, as seen by the devices that
// DMA to and from it.
//
// Memory is stored as a sequence of 32-bit words in little-endian order, which
// means that the byte at a big-endian address is found by XORing the address
// with ByteSwap.
package rdram

import "encoding/binary"

// Mask is applied to all RDRAM addresses.
const Mask = 0xFFFFFF

// ByteSwap is XORed with a byte address to find the byte in memory.
const ByteSwap = 3

// Size of RDRAM with the expansion pak installed.
const Size = 0x800000

// RDRAM is the main memory.
type RDRAM struct {
	Mem []uint8
}

// NewRDRAM is the preferred method of initialisation for the RDRAM type.
func NewRDRAM(size int) *RDRAM {
	return &RDRAM{
		Mem: make([]uint8, size),
	}
}

// Read8 returns the byte at the address. Addresses outside the memory return
// zero.
func (r *RDRAM) Read8(address uint32) uint8 {
	i := int(address&Mask) ^ ByteSwap
	if i >= len(r.Mem) {
		return 0
	}
	return r.Mem[i]
}

// Write8 writes a byte to the address. Writes outside the memory are ignored.
func (r *RDRAM) Write8(address uint32, data uint8) {
	i := int(address&Mask) ^ ByteSwap
	if i >= len(r.Mem) {
		return
	}
	r.Mem[i] = data
}

// Read32 returns the word at the address. The address is word aligned.
func (r *RDRAM) Read32(address uint32) uint32 {
	i := int(address&Mask) &^ 3
	if i+4 > len(r.Mem) {
		return 0
	}
	return binary.LittleEndian.Uint32(r.Mem[i:])
}

// Write32 writes a word to the address. The address is word aligned.
func (r *RDRAM) Write32(address uint32, data uint32) {
	i := int(address&Mask) &^ 3
	if i+4 > len(r.Mem) {
		return
	}
	binary.LittleEndian.PutUint32(r.Mem[i:], data)
}
