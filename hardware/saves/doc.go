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

// Package saves holds the battery backed storage of the cartridge and the
// controller paks. Each kind of storage is a Store, which is a byte slice and
// a flag indicating that the data needs to be written to disk.
//
// The package does not know anything about the layout of the data. Devices
// are responsible for formatting a Store on first access.
//
// Save files are kept in the saves directory inside the resources directory.
// The name of the files is taken from the game ID and a hash of the ROM, with
// a file extension for each kind of store.
package saves
