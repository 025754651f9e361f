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
	"github.com/gopher64/gopher64/hardware/saves"
)

// MemPakSize is the size of a controller pak.
const MemPakSize = 0x8000

// pages are 256 bytes. the first five pages are the id, inode and note
// tables
const memPakPageSize = 0x100

// MemPakDevice is the controller pak. Each controller port has its own 32KB of
// storage in the shared store.
type MemPakDevice struct {
	store *saves.Store
}

// NewMemPak is the preferred method of initialisation for the MemPakDevice type.
// The store is shared by the mempaks in all four controller ports.
func NewMemPak(store *saves.Store) *MemPakDevice {
	return &MemPakDevice{
		store: store,
	}
}

// Kind implements the Pak interface.
func (mp *MemPakDevice) Kind() Kind {
	return MemPak
}

// Read implements the Pak interface.
func (mp *MemPakDevice) Read(channel int, address uint16, data []uint8) error {
	if int(address) >= MemPakSize {
		clear(data)
		return nil
	}

	mp.format()

	offset := channel*MemPakSize + int(address)
	copy(data, mp.store.Data[offset:])
	return nil
}

// Write implements the Pak interface.
func (mp *MemPakDevice) Write(channel int, address uint16, data []uint8) error {
	if int(address) >= MemPakSize {
		return nil
	}

	mp.format()

	offset := channel*MemPakSize + int(address)
	copy(mp.store.Data[offset:offset+len(data)], data)
	mp.store.Written = true
	return nil
}

// the store is formatted the first time any mempak is accessed. each bank
// that did not exist is given an empty filesystem
func (mp *MemPakDevice) format() {
	n := len(mp.store.Data) / MemPakSize
	if !mp.store.Format(MemPakSize*4, 0x00) {
		return
	}
	for i := n; i < 4; i++ {
		FormatMemPak(mp.store.Data[i*MemPakSize : (i+1)*MemPakSize])
	}
	mp.store.Written = true
}

// the id area of a newly formatted controller pak. the area is repeated at
// four locations in the first page
var memPakID = [32]uint8{
	0xff, 0xff, 0xff, 0xff, 0x05, 0x1a, 0x5f, 0x13,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0x01, 0xff, 0x66, 0x25, 0x99, 0xcd,
}

// FormatMemPak writes an empty filesystem to the data, which must be
// MemPakSize bytes long.
func FormatMemPak(data []uint8) {
	clear(data)

	// label area
	data[0] = 0x81
	for i := 1; i < 0x20; i++ {
		data[i] = uint8(i)
	}

	// id area and its backups
	for _, o := range []int{0x20, 0x60, 0x80, 0xc0} {
		copy(data[o:], memPakID[:])
	}

	// inode table and its backup. every page after the system pages is
	// marked as free (value 0x0003). the second byte of each table is the
	// checksum of the free entries
	for p := 1; p < 3; p++ {
		start := p * memPakPageSize
		data[start+1] = 0x71
		for j := 0x0a; j < memPakPageSize; j += 2 {
			data[start+j+1] = 0x03
		}
	}
}
