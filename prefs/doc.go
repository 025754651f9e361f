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

// Package prefs facilitates the storage of preferential values in the
// emulator. Preference values are of the type Bool, String, Int or Float and
// are added to a Disk instance with the Add() function. The Disk type takes
// care of saving and loading the values from the preferences file.
//
// The preferences file is a list of key/value pairs, one per line, preceded by
// the WarningBoilerPlate:
//
//	*** do not edit this file by hand ***
//	input.vru.emulate :: true
//	saves.directory :: saves
//
// Preference values can also be set on the command line for a single run of
// the emulator with the command line stack. See PushCommandLineStack().
package prefs
