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

// Package vru implements the Voice Recognition Unit. The VRU is a microphone
// that plugs into the fourth controller port and was used by a small number
// of games, most famously Hey You, Pikachu!
//
// Real speech recognition is not performed. Instead the words that the game
// has loaded into the VRU are decoded and presented to the user through a
// Window, and the user's choice is returned to the game as though it had been
// spoken.
//
// Games from outside Japan send words as a sequence of phoneme codes, which
// are looked up in a fixed dictionary. Japanese games send words as Shift-JIS
// text.
package vru
