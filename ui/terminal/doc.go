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

// Package terminal is a front end for the emulation that runs in a posix
// terminal. It implements the controller.UI interface.
//
// Controller one is driven from the keyboard. The terminal has no key
// release events so a key press holds the button down for a short number of
// controller reads.
//
// When the VRU asks for a word to be recognised, the list of words is
// presented as a numbered menu. The user types the number of the word and
// presses return. Pressing return on its own, or escape, means that nothing
// was recognised.
package terminal
