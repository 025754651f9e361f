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

package preferences

import (
	"github.com/gopher64/gopher64/prefs"
)

// SavesPreferences are the preferences for the persistence of cartridge and
// controller pak storage.
type SavesPreferences struct {
	dsk *prefs.Disk

	// directory (inside the resources directory) where save files are kept
	Directory prefs.String

	// write storage to disk every time the emulation is paused. if false then
	// storage is only written when the emulation ends
	FlushOnPause prefs.Bool
}

func newSavesPreferences(pth string) (*SavesPreferences, error) {
	p := &SavesPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("saves.directory", &p.Directory)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("saves.flushOnPause", &p.FlushOnPause)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *SavesPreferences) SetDefaults() {
	p.Directory.Set("saves")
	p.FlushOnPause.Set(true)
}

// Load saves preferences from disk.
func (p *SavesPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save current saves preferences to disk.
func (p *SavesPreferences) Save() error {
	return p.dsk.Save()
}
