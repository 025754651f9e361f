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
	"fmt"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/rdram"
	"github.com/gopher64/gopher64/hardware/saves"
)

// FlashRAMSize is the size of FlashRAM in bytes.
const FlashRAMSize = 0x20000

// Silicon IDs. The first word of the silicon ID is always FlashRAMTypeID. The
// second word identifies the chip.
const (
	FlashRAMTypeID = 0x11118001
	MX29L1100ID    = 0x00c2001e
	MX29L0000ID    = 0x00c20000
	MX29L0001ID    = 0x00c20001
)

// the size of a page and of a sector (as used by sector erase)
const (
	pageSize   = 128
	sectorSize = pageSize * 128
)

// flashram addresses are masked with this value. the command register is at
// 0x10000
const (
	flashMask       = 0x1ffff
	flashStatusAddr = 0x00000
	flashCmdAddr    = 0x10000
)

// bits in the status register
const (
	StatusProgramBusy = 0x01
	StatusEraseBusy   = 0x02
	StatusProgramOK   = 0x04
	StatusEraseOK     = 0x08
)

// FlashMode is the current mode of the FlashRAM. The mode determines which
// memory and DMA accesses are allowed.
type FlashMode int

// List of FlashRAM modes.
const (
	ModeReadArray FlashMode = iota
	ModeReadSiliconID
	ModeStatus
	ModeSectorErase
	ModeChipErase
	ModePageProgram
)

func (m FlashMode) String() string {
	switch m {
	case ModeReadArray:
		return "read array"
	case ModeReadSiliconID:
		return "read silicon id"
	case ModeStatus:
		return "status"
	case ModeSectorErase:
		return "sector erase"
	case ModeChipErase:
		return "chip erase"
	case ModePageProgram:
		return "page program"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// Sentinal errors returned by FlashRAM.
const (
	UnknownFlashCommand = "flashram: unknown command (%#08x)"
	UnexpectedErase     = "flashram: erase command in %v mode"
	IllegalFlashRead    = "flashram: read of %#05x in %v mode"
	IllegalFlashWrite   = "flashram: write to %#05x in %v mode"
	IllegalFlashDMA     = "flashram: DMA %s of %d bytes at %#05x in %v mode"
	IllegalFlashProgram = "flashram: program of page %#04x beyond the end of the chip"
)

// FlashRAM is the 1Mbit flash memory used by some cartridges. The store is
// formatted to FlashRAMSize bytes of 0xff the first time a command is
// written or a DMA transfer takes place.
type FlashRAM struct {
	rdram *rdram.RDRAM
	store *saves.Store

	Status    uint32
	Mode      FlashMode
	ErasePage uint16
	PageBuf   [pageSize]uint8
	SiliconID [2]uint32
}

// NewFlashRAM is the preferred method of initialisation for the FlashRAM
// type. The chip is an MX29L1100.
func NewFlashRAM(mem *rdram.RDRAM, store *saves.Store) *FlashRAM {
	return &FlashRAM{
		rdram:     mem,
		store:     store,
		Mode:      ModeReadArray,
		SiliconID: [2]uint32{FlashRAMTypeID, MX29L1100ID},
	}
}

func (f *FlashRAM) String() string {
	return fmt.Sprintf("mode=%v status=%#02x erase=%#04x", f.Mode, f.Status, f.ErasePage)
}

// Kind implements the Backup interface.
func (f *FlashRAM) Kind() saves.Kind {
	return saves.FlashRAM
}

func (f *FlashRAM) format() {
	f.store.Format(FlashRAMSize, 0xff)
}

// ReadMem implements the Backup interface.
func (f *FlashRAM) ReadMem(address uint32) (uint32, error) {
	a := address & flashMask
	if a == flashStatusAddr {
		switch f.Mode {
		case ModeStatus:
			return f.Status, nil
		case ModeReadArray:
			// games read from the status address before starting a DMA. the
			// value is not used
			return 0, nil
		}
	}
	return 0, curated.Fatalf(IllegalFlashRead, a, f.Mode)
}

// WriteMem implements the Backup interface. Writing to the command address
// executes the command.
func (f *FlashRAM) WriteMem(address uint32, value uint32, mask uint32) error {
	a := address & flashMask
	switch {
	case a == flashStatusAddr && f.Mode == ModeStatus:
		f.Status = (value & mask) & 0xff
		return nil
	case a == flashCmdAddr:
		f.format()
		return f.command(value & mask)
	}
	return curated.Fatalf(IllegalFlashWrite, a, f.Mode)
}

func (f *FlashRAM) command(command uint32) error {
	switch command & 0xff000000 {
	case 0x3c000000:
		f.Mode = ModeChipErase

	case 0x4b000000:
		f.Mode = ModeSectorErase
		f.ErasePage = uint16(command)

	case 0x78000000:
		f.Status |= StatusEraseBusy

		switch f.Mode {
		case ModeSectorErase:
			f.store.Fill(int(f.ErasePage&0xff80)*pageSize, sectorSize, 0xff)
		case ModeChipErase:
			f.store.Fill(0, FlashRAMSize, 0xff)
		default:
			return curated.Fatalf(UnexpectedErase, f.Mode)
		}

		f.Status &^= StatusEraseBusy
		f.Status |= StatusEraseOK
		f.Mode = ModeStatus

	case 0xa5000000:
		offset := int(command&0xffff) * pageSize
		if offset+pageSize > len(f.store.Data) {
			return curated.Fatalf(IllegalFlashProgram, command&0xffff)
		}

		f.Status |= StatusProgramBusy
		copy(f.store.Data[offset:], f.PageBuf[:])
		f.store.Written = true

		f.Status &^= StatusProgramBusy
		f.Status |= StatusProgramOK
		f.Mode = ModeStatus

	case 0xb4000000:
		f.Mode = ModePageProgram

	case 0xd2000000:
		f.Mode = ModeStatus

	case 0xe1000000:
		f.Mode = ModeReadSiliconID

		// Pokemon Puzzle League checks for the busy bit after the silicon
		// ID has been requested
		f.Status |= StatusProgramBusy

	case 0xf0000000:
		f.Mode = ModeReadArray

	default:
		return curated.Fatalf(UnknownFlashCommand, command)
	}

	return nil
}

// DMARead implements the Backup interface. The only supported transfer from
// RDRAM is the loading of the page buffer.
func (f *FlashRAM) DMARead(cartAddr uint32, dramAddr uint32, length uint32) error {
	f.format()

	a := cartAddr & flashMask
	if a != flashStatusAddr || length != pageSize || f.Mode != ModePageProgram {
		return curated.Fatalf(IllegalFlashDMA, "read", length, a, f.Mode)
	}

	for i := range uint32(pageSize) {
		f.PageBuf[i] = f.rdram.Read8(dramAddr + i)
	}
	return nil
}

// DMAWrite implements the Backup interface. Transfers to RDRAM are either the
// silicon ID or the contents of the flash array.
func (f *FlashRAM) DMAWrite(cartAddr uint32, dramAddr uint32, length uint32) error {
	dramAddr &= rdram.Mask
	a := cartAddr & flashMask

	switch {
	case a == flashStatusAddr && length == 8 && f.Mode == ModeReadSiliconID:
		f.rdram.Write32(dramAddr, f.SiliconID[0])
		f.rdram.Write32(dramAddr+4, f.SiliconID[1])

	case a < flashCmdAddr && f.Mode == ModeReadArray:
		f.format()

		// the MX29L0000 and MX29L0001 share the address adjustment with the
		// MX29L1100
		switch f.SiliconID[1] {
		case MX29L1100ID, MX29L0000ID, MX29L0001ID:
			cartAddr = (cartAddr & 0xffff) * 2
		default:
			cartAddr &= 0xffff
		}

		for i := range length {
			var v uint8
			if j := int(cartAddr + i); j < len(f.store.Data) {
				v = f.store.Data[j]
			}
			f.rdram.Write8(dramAddr+i, v)
		}

	default:
		return curated.Fatalf(IllegalFlashDMA, "write", length, a, f.Mode)
	}

	return nil
}
