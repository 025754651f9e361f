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

// Joybus command bytes. The command byte is the first byte of a channel's
// transmit buffer.
const (
	CmdStatus         = 0x00
	CmdControllerRead = 0x01
	CmdPakRead        = 0x02
	CmdPakWrite       = 0x03
	CmdEEPROMRead     = 0x04
	CmdEEPROMWrite    = 0x05
	CmdVRURead        = 0x09
	CmdVRUWrite       = 0x0a
	CmdVRUReadStatus  = 0x0b
	CmdVRUWriteConfig = 0x0c
	CmdVRUWriteInit   = 0x0d
	CmdReset          = 0xff
)

// Device types returned by the status command. The two byte device type is
// written to the receive buffer low byte first.
const (
	DevNone             = 0x0000
	DevJoyAbsCounters   = 0x0001
	DevJoyRelCounters   = 0x0002
	DevJoyPort          = 0x0004
	DevVRU              = 0x0100
	DevEEPROM4k         = 0x0080
	DevEEPROM16k        = 0x00c0
	ControllerDevice    = DevJoyAbsCounters | DevJoyPort
	StatusPakNotPresent = 0
	StatusPakPresent    = 1
)

// PakChunkSize is the number of bytes transferred by a pak read or pak write
// command.
const PakChunkSize = 0x20
