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

// NumControllers is the number of controller ports on the console.
const NumControllers = 4

// InputPreferences are the preferences for the controller ports.
type InputPreferences struct {
	dsk *prefs.Disk

	// whether a controller is plugged into each of the four ports
	ControllerEnabled [NumControllers]prefs.Bool

	// plug a voice recognition unit into the fourth port. the VRU takes
	// priority over a controller in the same port
	EmulateVRU prefs.Bool
}

func newInputPreferences(pth string) (*InputPreferences, error) {
	p := &InputPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for i := range p.ControllerEnabled {
		err = p.dsk.Add(fmt.Sprintf("input.controller.%d.enabled", i), &p.ControllerEnabled[i])
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Add("input.vru.emulate", &p.EmulateVRU)
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
func (p *InputPreferences) SetDefaults() {
	p.ControllerEnabled[0].Set(true)
	for i := 1; i < NumControllers; i++ {
		p.ControllerEnabled[i].Set(false)
	}
	p.EmulateVRU.Set(false)
}

// Load input preferences from disk.
func (p *InputPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save current input preferences to disk.
func (p *InputPreferences) Save() error {
	return p.dsk.Save()
}
