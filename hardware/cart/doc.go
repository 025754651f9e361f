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

// Package cart implements the parts of the cartridge that are needed by the
// joybus and backup storage emulation: the header, which identifies the game,
// and the SRAM and FlashRAM backup devices.
//
// The type of backup device is not recorded in the cartridge header and is
// instead looked up in a table of game IDs. Games not in the table are
// assumed to have SRAM (or a 4k EEPROM, which is not handled by this
// package).
//
// FlashRAM is a state machine driven by commands written to the command
// register. The current mode of the FlashRAM decides which accesses are
// legal. An illegal access is a fatal error because it means that a game is
// using the chip in a way that is not emulated.
//
// Both devices store their data in a saves.Store, which is formatted with
// 0xff bytes the first time it is used.
package cart
