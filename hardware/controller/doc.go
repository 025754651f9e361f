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

// Package controller implements the standard controller as a PIF device.
// Controllers respond to the status, reset and controller read commands and
// pass pak read and pak write commands to the pak inserted in the controller.
//
// The pak in a controller can be changed while the emulation is running with
// the pak switch gesture. The pak is removed immediately and the next pak in
// the rotation is inserted one second later. The front end is informed of
// both steps through the notifications package.
//
// The paks themselves are in the paks sub-package. The voice recognition
// unit, which plugs into a controller port in place of a controller, is in
// the vru sub-package.
package controller
