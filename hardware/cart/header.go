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
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/gopher64/gopher64/curated"
)

// Sentinal errors returned by NewHeader()
const (
	ROMTooShort   = "cart: ROM is too short (%d bytes)"
	UnknownFormat = "cart: unknown ROM format (%#08x)"
)

// the first word of the ROM identifies the byte order of the file
const (
	formatZ64 = 0x80371240
	formatV64 = 0x37804012
	formatN64 = 0x40123780
)

// the boot code is between the header and the first megabyte of the ROM. the
// boot code determines which CIC chip the cartridge requires
const (
	bootStart = 0x40
	bootEnd   = 0x1000
)

// default CIC seed. the seed for the 6102, which is the most common CIC
const defaultSeed = 0x3f

// seeds for each known boot code, keyed by the SHA-256 of the boot code
var cicSeeds = map[string]struct {
	name string
	seed uint8
}{
	"B99F06C4802C2377E31E388435955EF3E99C618A6D55D24699D828EB1075F1EB": {"6101", 0x3f},
	"61E88238552C356C23D19409FE5570EE6910419586BC6FC740F638F761ADC46E": {"6102", 0x3f},
	"BF3620D30817007091EBE9BDDD1B88C23B8A0052170B3309CDE5B6B4238E45E7": {"6103", 0x78},
	"04B7BC6717A9F0EB724CF927E74AD3876C381CBB280D841736FC5E55580B756B": {"6105", 0x91},
	"36ADC40148AF56F0D78CD505EB6A90117D1FD6F11C6309E52ED36BC4C6BA340E": {"6106", 0x85},
	"53C0088FB777870D0AF32F0251E964030E2E8B72E830C26042FD191169508C05": {"5167", 0xdd},
}

// PAL region codes
const palRegions = "DFIPSUXY"

// Header is the information in the cartridge header that is needed by the
// joybus and backup devices.
type Header struct {
	// the three character game ID. UNK if the ID is not printable
	GameID string

	// the region byte. the VRU decodes words differently for Japanese ROMs
	Region uint8

	// the internal name of the game
	Name string

	// the CIC seed written to PIF RAM on reset
	CIC     string
	CICSeed uint8
}

// NewHeader reads the header from the ROM data. The ROM data must already be
// in big-endian (z64) order.
func NewHeader(rom []uint8) (Header, error) {
	if len(rom) < bootEnd {
		return Header{}, curated.Errorf(ROMTooShort, len(rom))
	}

	h := Header{
		Region: rom[0x3e],
		Name:   strings.TrimRight(string(rom[0x20:0x34]), " \x00"),
	}

	h.GameID = string(rom[0x3b:0x3e])
	for _, c := range h.GameID {
		if c < 0x20 || c > 0x7e {
			h.GameID = "UNK"
			break
		}
	}

	hash := fmt.Sprintf("%X", sha256.Sum256(rom[bootStart:bootEnd]))
	if cic, ok := cicSeeds[hash]; ok {
		h.CIC = cic.name
		h.CICSeed = cic.seed
	} else {
		h.CIC = "unknown"
		h.CICSeed = defaultSeed
	}

	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] region=%c cic=%s", h.Name, h.GameID, h.Region, h.CIC)
}

// IsPAL returns true if the region byte indicates a PAL console.
func (h Header) IsPAL() bool {
	return strings.IndexByte(palRegions, h.Region) >= 0
}

// Normalise converts ROM data to big-endian (z64) order in place. Byte-swapped
// (v64) and little-endian (n64) files are recognised by their first word.
func Normalise(rom []uint8) error {
	if len(rom) < 4 {
		return curated.Errorf(ROMTooShort, len(rom))
	}

	format := uint32(rom[0])<<24 | uint32(rom[1])<<16 | uint32(rom[2])<<8 | uint32(rom[3])

	switch format {
	case formatZ64:
	case formatV64:
		for i := 0; i+1 < len(rom); i += 2 {
			rom[i], rom[i+1] = rom[i+1], rom[i]
		}
	case formatN64:
		for i := 0; i+3 < len(rom); i += 4 {
			rom[i], rom[i+1], rom[i+2], rom[i+3] = rom[i+3], rom[i+2], rom[i+1], rom[i]
		}
	default:
		return curated.Errorf(UnknownFormat, format)
	}

	return nil
}
