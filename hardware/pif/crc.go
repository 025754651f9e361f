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

// DataCRC returns the CRC-8 of the data. The CRC is the one used by the pak
// read and write commands and by the VRU. The polynomial is 0x85.
//
// The data is followed by an implicit zero byte, which flushes the remainder
// through the register.
func DataCRC(data []uint8) uint8 {
	var crc uint8

	for i := 0; i <= len(data); i++ {
		for mask := uint8(0x80); mask >= 1; mask >>= 1 {
			var tap uint8
			if crc&0x80 == 0x80 {
				tap = 0x85
			}
			crc <<= 1
			if i != len(data) && data[i]&mask == mask {
				crc |= 1
			}
			crc ^= tap
		}
	}

	return crc
}
