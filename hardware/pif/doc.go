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

// Package pif emulates the peripheral interface chip. The CPU communicates
// with the controllers, the controller paks, the voice recognition unit and
// the cartridge EEPROM by writing joybus commands to PIF RAM.
//
// The layout of PIF RAM is set up by the channel format command (bit 0 of the
// command byte at the end of PIF RAM). Each channel is given a transmit
// buffer, which begins with the joybus command byte, and a receive buffer for
// the response. The Device connected to the channel reads the command from
// the transmit buffer and writes the response to the receive buffer.
//
// The package also contains the CRC-8 function used by the pak and VRU
// commands and the CIC challenge/response used during boot.
package pif
