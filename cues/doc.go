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

// Package cues provides the audio cues that are played when a controller pak
// is switched. A cue is either loaded from a WAV or MP3 file, as specified by
// the cue preferences, or synthesised.
//
// The Player type plays cues in response to notifications from the
// emulation. Audio output requires the oto library. Building with the
// headless tag replaces the Player with a version that discards all cues.
//
// Synthesised cues can be exported as WAV files with the WriteWAV()
// function, which is useful as a starting point for custom cues.
package cues
