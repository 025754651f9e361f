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

package saves_test

import (
	"os"
	"testing"

	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware/saves"
	"github.com/gopher64/gopher64/resources"
	"github.com/gopher64/gopher64/test"
)

func TestFormat(t *testing.T) {
	var s saves.Store
	test.ExpectSuccess(t, s.Format(0x8000, 0xff))
	test.DemandEquality(t, len(s.Data), 0x8000)
	test.ExpectEquality(t, s.Data[0], uint8(0xff))
	test.ExpectEquality(t, s.Data[0x7fff], uint8(0xff))

	// formatting a store that is already large enough does nothing
	s.Data[0] = 0x12
	test.ExpectFailure(t, s.Format(0x8000, 0x00))
	test.ExpectEquality(t, s.Data[0], uint8(0x12))

	// existing data is preserved when a short store is formatted
	s = saves.Store{Data: []uint8{0x01, 0x02}}
	test.ExpectSuccess(t, s.Format(4, 0xff))
	test.ExpectEquality(t, s.Data[1], uint8(0x02))
	test.ExpectEquality(t, s.Data[2], uint8(0xff))
}

func TestFill(t *testing.T) {
	var s saves.Store
	s.Format(16, 0x00)
	s.Fill(12, 8, 0xaa)
	test.ExpectSuccess(t, s.Written)
	test.ExpectEquality(t, s.Data[11], uint8(0x00))
	test.ExpectEquality(t, s.Data[15], uint8(0xaa))
}

func TestPersistence(t *testing.T) {
	resources.BaseOverride = t.TempDir()
	defer func() { resources.BaseOverride = "" }()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	name := saves.Name("NSM", []uint8{0x80, 0x37, 0x12, 0x40})

	sv := saves.NewSaves(env, name)
	test.DemandSuccess(t, sv.Load())
	test.ExpectSuccess(t, sv.IsSaved())

	st := sv.Store(saves.FlashRAM)
	st.Format(0x20000, 0xff)
	st.Data[0x100] = 0x42
	st.Written = true
	test.ExpectFailure(t, sv.IsSaved())

	test.DemandSuccess(t, sv.Flush())
	test.ExpectSuccess(t, sv.IsSaved())

	// only the written store has been saved
	fn, err := resources.JoinPath("saves", name+".fla")
	test.DemandSuccess(t, err)
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
	fn, err = resources.JoinPath("saves", name+".sra")
	test.DemandSuccess(t, err)
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	rl := saves.NewSaves(env, name)
	test.DemandSuccess(t, rl.Load())
	test.DemandEquality(t, len(rl.Store(saves.FlashRAM).Data), 0x20000)
	test.ExpectEquality(t, rl.Store(saves.FlashRAM).Data[0x100], uint8(0x42))
	test.ExpectEquality(t, len(rl.Store(saves.SRAM).Data), 0)
}
