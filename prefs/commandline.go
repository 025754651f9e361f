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

package prefs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// groups of preference values given on the command line. values in a group
// apply to a single run of the emulator and are never saved to disk
var commandLine []map[string]Value

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLine)
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// The string is of the form:
//
//	key::value; key::value
//
// Malformed key/value pairs are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		if k, v, ok := strings.Cut(p, "::"); ok {
			grp[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	commandLine = append(commandLine, grp)
}

func top() map[string]Value {
	if len(commandLine) == 0 {
		return nil
	}
	return commandLine[len(commandLine)-1]
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the values in the group that were never
// asked for, sorted by key.
func PopCommandLineStack() string {
	grp := top()
	if grp == nil {
		return ""
	}
	commandLine = commandLine[:len(commandLine)-1]

	var unused []string
	for _, k := range slices.Sorted(maps.Keys(grp)) {
		unused = append(unused, fmt.Sprintf("%s::%v", k, grp[k]))
	}
	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key in the most recent group.
// A value can only be returned once.
func GetCommandLinePref(key string) (bool, Value) {
	grp := top()
	v, ok := grp[key]
	if ok {
		delete(grp, key)
	}
	return ok, v
}
