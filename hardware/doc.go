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

// Package hardware is the base package for the joybus and backup storage
// emulation. It and its sub-packages contain everything required for a
// headless emulation of the devices connected to the PIF and the cartridge
// backup.
//
// The N64 type is the root of the emulation and contains references to all
// the sub-systems. The CPU is not emulated. Instead, the N64 type has
// functions that are the equivalent of the CPU accessing PIF RAM and the
// cartridge backup, and a Step() function that advances the cycle count.
package hardware
