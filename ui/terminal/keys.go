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

package terminal

// controller buttons as they appear in the value returned by the controller
// read command
const (
	buttonRight  = 0x0001
	buttonLeft   = 0x0002
	buttonDown   = 0x0004
	buttonUp     = 0x0008
	buttonStart  = 0x0010
	buttonZ      = 0x0020
	buttonB      = 0x0040
	buttonA      = 0x0080
	buttonCRight = 0x0100
	buttonCLeft  = 0x0200
	buttonCDown  = 0x0400
	buttonCUp    = 0x0800
	buttonR      = 0x1000
	buttonL      = 0x2000
)

// the stick position is a signed byte for each axis
const (
	stickShiftX = 16
	stickShiftY = 24
	stickFull   = 80
)

// the number of controller reads that a key press is held for
const holdReads = 6

// special keys
const (
	keyCtrlC     = 0x03
	keyBackspace = 0x7f
	keyEscape    = 0x1b
	keyReturn    = 0x0d
	keyNewline   = 0x0a
)

var buttonKeys = map[byte]uint32{
	'x':  buttonA,
	'z':  buttonB,
	'c':  buttonZ,
	'\r': buttonStart,
	'q':  buttonL,
	'e':  buttonR,
	'i':  buttonCUp,
	'k':  buttonCDown,
	'j':  buttonCLeft,
	'l':  buttonCRight,
}

// final byte of the escape sequences for the cursor keys
var cursorKeys = map[byte]uint32{
	'A': buttonUp,
	'B': buttonDown,
	'C': buttonRight,
	'D': buttonLeft,
}

type stick struct {
	x int8
	y int8
}

var stickKeys = map[byte]stick{
	'w': {y: stickFull},
	's': {y: -stickFull},
	'a': {x: -stickFull},
	'd': {x: stickFull},
}

func stickBits(s stick) uint32 {
	return uint32(uint8(s.x))<<stickShiftX | uint32(uint8(s.y))<<stickShiftY
}

// key to press to start the pak switch gesture
const keyPakSwitch = 'p'
