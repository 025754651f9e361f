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

package archivefs_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher64/gopher64/archivefs"
	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/test"
)

// creates an archive in a temporary directory and returns the directory
func archive(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	fd, err := os.Create(filepath.Join(dir, "roms.zip"))
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(fd)
	for name, content := range files {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]uint8(content))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, fd.Close())

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "plain.z64"), []uint8("plain"), 0o644))

	return dir
}

func TestPath(t *testing.T) {
	dir := archive(t, map[string]string{
		"game.z64":        "n64",
		"gb/pokemon.gb":   "gb",
		"gb/readme.txt":   "text",
		"other/red.GB":    "red",
		"other/blue.gb":   "blue",
		"other/notes.txt": "notes",
	})

	var p archivefs.Path
	defer p.Close()

	test.DemandSuccess(t, p.Set(filepath.Join(dir, "plain.z64")))
	test.ExpectFailure(t, p.InArchive())
	test.ExpectFailure(t, p.IsDir())

	test.DemandSuccess(t, p.Set(filepath.Join(dir, "roms.zip")))
	test.ExpectSuccess(t, p.InArchive())
	test.ExpectSuccess(t, p.IsDir())

	test.DemandSuccess(t, p.Set(filepath.Join(dir, "roms.zip", "gb")))
	test.ExpectSuccess(t, p.IsDir())

	test.DemandSuccess(t, p.Set(filepath.Join(dir, "roms.zip", "gb", "pokemon.gb")))
	test.ExpectFailure(t, p.IsDir())

	err := p.Set(filepath.Join(dir, "roms.zip", "missing.z64"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotFound))
	test.ExpectEquality(t, p.String(), "")

	err = p.Set(filepath.Join(dir, "missing"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotFound))
}

func TestReadFile(t *testing.T) {
	dir := archive(t, map[string]string{
		"game.z64":      "n64",
		"gb/pokemon.gb": "gb",
		"gb/readme.txt": "text",
		"other/red.GB":  "red",
		"other/blue.gb": "blue",
	})

	d, err := archivefs.ReadFile(filepath.Join(dir, "plain.z64"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "plain")

	d, err = archivefs.ReadFile(filepath.Join(dir, "roms.zip", "gb", "readme.txt"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "text")

	// the archive root
	d, err = archivefs.ReadFile(filepath.Join(dir, "roms.zip"), ".z64", ".n64")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "n64")

	// a directory in the archive
	d, err = archivefs.ReadFile(filepath.Join(dir, "roms.zip", "gb"), ".gb")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "gb")

	_, err = archivefs.ReadFile(filepath.Join(dir, "roms.zip", "other"), ".gb")
	test.ExpectSuccess(t, curated.Is(err, archivefs.Ambiguous))

	_, err = archivefs.ReadFile(filepath.Join(dir, "roms.zip"), ".v64")
	test.ExpectSuccess(t, curated.Is(err, archivefs.NoFile))
}
