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

package environment

import (
	"github.com/gopher64/gopher64/hardware/preferences"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation
const MainEmulation = Label("")

// Netplay describes the local participant in a netplay session. The
// transport itself is not part of the emulation. The hardware only needs to
// know which player number the local participant is.
type Netplay struct {
	PlayerNumber int

	// the players that have registered with the session. a controller is
	// connected for every registered player
	Registered [4]bool
}

// Environment is used to provide context for an emulation. Particularly
// useful when using multiple emulations
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// netplay is nil if the emulation is not part of a netplay session
	Netplay *Netplay
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil and a new Preferences instance will be
// created. Providing a non-nil value allows the preferences of more than one
// emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Netplay = nil
}

// IsNetplay returns true if the emulation is part of a netplay session.
func (env *Environment) IsNetplay() bool {
	return env.Netplay != nil
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to make log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
