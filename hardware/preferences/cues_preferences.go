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
	"fmt"

	"github.com/gopher64/gopher64/prefs"
)

// CuesPreferences are the preferences for the audio cues that are played when
// a controller pak is switched.
type CuesPreferences struct {
	dsk *prefs.Disk

	Enabled prefs.Bool

	// path to a WAV or MP3 file for each type of pak. an empty string means
	// that the built-in cue will be used
	MemPak      prefs.String
	RumblePak   prefs.String
	TransferPak prefs.String

	// volume of cue playback. between 0.0 and 1.0
	Volume prefs.Float
}

func newCuesPreferences(pth string) (*CuesPreferences, error) {
	p := &CuesPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cues.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cues.mempak", &p.MemPak)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cues.rumblepak", &p.RumblePak)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cues.transferpak", &p.TransferPak)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cues.volume", &p.Volume)
	if err != nil {
		return nil, err
	}

	p.Volume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return fmt.Errorf("cues: volume must be between 0.0 and 1.0 (%.3f)", f)
		}
		return nil
	})

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *CuesPreferences) SetDefaults() {
	p.Enabled.Set(true)
	p.MemPak.Set("")
	p.RumblePak.Set("")
	p.TransferPak.Set("")
	p.Volume.Set(0.5)
}

// Load cue preferences from disk.
func (p *CuesPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save current cue preferences to disk.
func (p *CuesPreferences) Save() error {
	return p.dsk.Save()
}
