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

// Package modalflag is a wrapper for the flag package in the standard
// library. It adds the concept of modes: a command line can select a mode,
// and each mode has its own set of flags and optional sub-modes.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VRU", "FORMAT")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "FORMAT":
//		md.NewMode()
//		force := md.AddBool("force", false, "overwrite existing file")
//		...
//	}
//
// The first sub-mode is the default mode and is selected if the first
// argument is not one of the sub-modes. Sub-modes are case insensitive.
//
// The AddPrefs() function adds the -prefs flag to the current mode. The value
// of the flag is pushed onto the preferences command line stack when Parse()
// is called.
package modalflag
