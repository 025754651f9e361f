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

// Package logger is the central log for the emulator. Entries are made with
// the Log() and Logf() functions, each of which takes a Permission. Entries
// made with a Permission that does not allow logging are discarded. This is
// useful when a second instance of the emulation is running for testing
// purposes (eg. save-state verification) and we do not want its log entries
// to be mixed with the main emulation's.
//
// The log is a ring of 256 entries. Identical consecutive entries are stored
// once with a repeat count.
package logger
