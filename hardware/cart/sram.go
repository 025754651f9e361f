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

package cart

import (
	"encoding/binary"

	"github.com/gopher64/gopher64/hardware/rdram"
	"github.com/gopher64/gopher64/hardware/saves"
)

// SRAMSize is the size of SRAM in bytes.
const SRAMSize = 0x8000

// all SRAM addresses are masked with this value
const sramMask = 0x7fff

// SRAM is battery backed static RAM. The store is formatted to SRAMSize bytes
// of 0xff the first time it is accessed.
type SRAM struct {
	rdram *rdram.RDRAM
	store *saves.Store
}

// NewSRAM is the preferred method of initialisation for the SRAM type.
func NewSRAM(mem *rdram.RDRAM, store *saves.Store) *SRAM {
	return &SRAM{
		rdram: mem,
		store: store,
	}
}

// Kind implements the Backup interface.
func (s *SRAM) Kind() saves.Kind {
	return saves.SRAM
}

func (s *SRAM) format() {
	s.store.Format(SRAMSize, 0xff)
}

func (s *SRAM) read8(address uint32) uint8 {
	if int(address) >= len(s.store.Data) {
		return 0
	}
	return s.store.Data[address]
}

func (s *SRAM) write8(address uint32, data uint8) {
	if int(address) >= len(s.store.Data) {
		return
	}
	s.store.Data[address] = data
}

// ReadMem implements the Backup interface. SRAM is read as big-endian words.
func (s *SRAM) ReadMem(address uint32) (uint32, error) {
	s.format()

	a := address & sramMask
	var v uint32
	for i := range uint32(4) {
		v = v<<8 | uint32(s.read8(a+i))
	}
	return v, nil
}

// WriteMem implements the Backup interface. Only the bits in the mask are
// written.
func (s *SRAM) WriteMem(address uint32, value uint32, mask uint32) error {
	s.format()

	a := address & sramMask
	d, _ := s.ReadMem(a)
	d = (d &^ mask) | (value & mask)

	var b [4]uint8
	binary.BigEndian.PutUint32(b[:], d)
	for i := range uint32(4) {
		s.write8(a+i, b[i])
	}

	s.store.Written = true
	return nil
}

// DMARead implements the Backup interface. Data is copied from RDRAM to SRAM.
func (s *SRAM) DMARead(cartAddr uint32, dramAddr uint32, length uint32) error {
	s.format()

	cartAddr &= sramMask
	dramAddr &= rdram.Mask
	for i := range length {
		s.write8(cartAddr+i, s.rdram.Read8(dramAddr+i))
	}

	s.store.Written = true
	return nil
}

// DMAWrite implements the Backup interface. Data is copied from SRAM to RDRAM.
func (s *SRAM) DMAWrite(cartAddr uint32, dramAddr uint32, length uint32) error {
	s.format()

	cartAddr &= sramMask
	dramAddr &= rdram.Mask
	for i := range length {
		s.rdram.Write8(dramAddr+i, s.read8(cartAddr+i))
	}

	return nil
}
