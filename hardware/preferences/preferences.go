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
	"github.com/gopher64/gopher64/resources"
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the clock rate of the main CPU. event delays (the pak switch delay and
	// the VRU timeout) are measured in cycles of this clock
	ClockRate prefs.Int

	Input *InputPreferences
	Saves *SavesPreferences
	Cues  *CuesPreferences
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.clockRate", &p.ClockRate)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	p.Input, err = newInputPreferences(pth)
	if err != nil {
		return nil, err
	}

	p.Saves, err = newSavesPreferences(pth)
	if err != nil {
		return nil, err
	}

	p.Cues, err = newCuesPreferences(pth)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.ClockRate.Set(93750000)
	if p.Input != nil {
		p.Input.SetDefaults()
	}
	if p.Saves != nil {
		p.Saves.SetDefaults()
	}
	if p.Cues != nil {
		p.Cues.SetDefaults()
	}
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(false); err != nil {
		return err
	}
	if err := p.Input.Load(); err != nil {
		return err
	}
	if err := p.Saves.Load(); err != nil {
		return err
	}
	return p.Cues.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return err
	}
	if err := p.Input.Save(); err != nil {
		return err
	}
	if err := p.Saves.Save(); err != nil {
		return err
	}
	return p.Cues.Save()
}
