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

// Package gbcart is a minimal Game Boy cartridge for the transfer pak. Only
// the cartridge memory is emulated: ROM, the MBC1 banking registers and
// external RAM. Cartridges with other memory controllers are treated as if
// they have an MBC1, which is enough for most games to read the save data.
package gbcart
