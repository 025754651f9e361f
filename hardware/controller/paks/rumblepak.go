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

package paks

import (
	"github.com/gopher64/gopher64/environment"
)

// Rumbler is implemented by the front end. The rumble value is zero for off
// and non-zero for on.
type Rumbler interface {
	SetRumble(channel int, rumble uint8)
}

// RumblePakDevice is the rumble pak. Writing to address 0xc000 turns the motor on
// or off.
type RumblePakDevice struct {
	env *environment.Environment
	rum Rumbler
}

// NewRumblePak is the preferred method of initialisation for the
// RumblePakDevice type.
func NewRumblePak(env *environment.Environment, rum Rumbler) *RumblePakDevice {
	return &RumblePakDevice{
		env: env,
		rum: rum,
	}
}

// Kind implements the Pak interface.
func (rp *RumblePakDevice) Kind() Kind {
	return RumblePak
}

// Read implements the Pak interface. The rumble pak identifies itself by
// returning 0x80 for reads in the 0x8000 to 0x8fff range.
func (rp *RumblePakDevice) Read(_ int, address uint16, data []uint8) error {
	var v uint8
	if address >= 0x8000 && address < 0x9000 {
		v = 0x80
	}
	for i := range data {
		data[i] = v
	}
	return nil
}

// Write implements the Pak interface.
func (rp *RumblePakDevice) Write(channel int, address uint16, data []uint8) error {
	if address != 0xc000 || len(data) == 0 {
		return nil
	}

	rumble := data[len(data)-1]

	// in a netplay session only the local player's controller rumbles. the
	// local player is always connected to the first port
	if rp.env.IsNetplay() {
		if rp.env.Netplay.PlayerNumber == channel {
			rp.rum.SetRumble(0, rumble)
		}
		return nil
	}

	rp.rum.SetRumble(channel, rumble)
	return nil
}
