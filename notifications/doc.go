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

// Package notifications allow communication from the emulated hardware
// directly to the front end. For example, the controller emulation uses
// notifications to indicate the completion of a pak switch so that an audio
// cue can be played.
//
// Notifications are informational. The hardware does not depend on how, or
// if, the front end responds to them.
package notifications
