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

// length of the challenge in nibbles
const challengeLen = 0x20 - 2

var cicLUT0 = [0x10]uint8{
	0x4, 0x7, 0xa, 0x7, 0xe, 0x5, 0xe, 0x1, 0xc, 0xf, 0x8, 0xf, 0x6, 0x3, 0x6, 0x9,
}

var cicLUT1 = [0x10]uint8{
	0x4, 0x1, 0xa, 0x7, 0xe, 0x5, 0xe, 0x1, 0xc, 0x9, 0x8, 0x5, 0x6, 0x3, 0xc, 0x9,
}

// the CIC challenge is written to PIF RAM at 0x30 as 15 bytes. the response
// is written back to the same location
func (p *PIF) cicChallenge() {
	var challenge, response [30]uint8

	for i := 0; i < 15; i++ {
		challenge[i*2] = (p.RAM[0x30+i] >> 4) & 0x0f
		challenge[i*2+1] = p.RAM[0x30+i] & 0x0f
	}

	cicNUS6105(challenge, &response, challengeLen)
	p.RAM[0x2e] = 0
	p.RAM[0x2f] = 0

	for i := 0; i < 15; i++ {
		p.RAM[0x30+i] = (response[i*2] << 4) + response[i*2+1]
	}
}

// response algorithm for the 6105 CIC by X-Scale
func cicNUS6105(chl [30]uint8, rsp *[30]uint8, n int) {
	key := uint8(0xb)
	lut := &cicLUT0

	for i := 0; i < n; i++ {
		rsp[i] = (key + 5*chl[i]) & 0xf
		key = lut[rsp[i]]

		sgn := (rsp[i] >> 3) & 0x1
		mag := rsp[i]
		if sgn == 1 {
			mag = ^rsp[i]
		}
		mag &= 0x7

		var mod uint8
		if mag%3 == 1 {
			mod = sgn
		} else {
			mod = 1 - sgn
		}
		if lut == &cicLUT1 && (rsp[i] == 0x1 || rsp[i] == 0x9) {
			mod = 1
		}
		if lut == &cicLUT1 && (rsp[i] == 0xb || rsp[i] == 0xe) {
			mod = 0
		}

		if mod == 1 {
			lut = &cicLUT1
		} else {
			lut = &cicLUT0
		}
	}
}
