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

// Package savestate takes and restores snapshots of the joybus and backup
// hardware. The Snapshot() function copies the state of a Machine into a
// State and the Restore() function copies it back.
//
// A State can be serialised with Marshal() and Unmarshal(). The format is a
// protobuf message preceded by a short identifying string. Field numbers are
// fixed and unknown fields are ignored so older states can still be read.
//
// Paks are not serialised. Only the kind of pak inserted in each controller
// is stored and the pak is rebuilt from the kind when the state is restored.
// The contents of the MemPak are in the MemPak store, which is serialised
// along with the other stores.
package savestate
