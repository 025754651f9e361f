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

package prefs_test

import (
	"testing"

	"github.com/gopher64/gopher64/prefs"
	"github.com/gopher64/gopher64/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("input.vru.emulate::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "input.vru.emulate::true")

	// white space around keys and values is removed
	prefs.PushCommandLineStack("  cues.volume ::  0.5 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cues.volume::0.5")

	// unused values are returned in key order
	prefs.PushCommandLineStack("saves.directory::tmp; cues.enabled::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cues.enabled::false; saves.directory::tmp")

	// malformed pairs are dropped
	prefs.PushCommandLineStack("cues.enabled;cues.volume::1.0;")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cues.volume::1.0")

	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("hardware.clockRate::1000")
	prefs.PushCommandLineStack("cues.enabled::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is consulted
	ok, _ := prefs.GetCommandLinePref("hardware.clockRate")
	test.ExpectFailure(t, ok)

	// values are consumed when they are used
	ok, v := prefs.GetCommandLinePref("cues.enabled")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("false"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.clockRate::1000")
}
