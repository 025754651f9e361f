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

package cues

import (
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/notifications"
	"github.com/gopher64/gopher64/prefs"
)

// Cues is the collection of cues, keyed by the notice that triggers them.
type Cues struct {
	env  *environment.Environment
	cues map[notifications.Notice]*Cue
}

// NewCues is the preferred method of initialisation for the Cues type. A cue
// file that can not be loaded is logged and the built-in cue is used
// instead.
func NewCues(env *environment.Environment) *Cues {
	c := &Cues{
		env:  env,
		cues: make(map[notifications.Notice]*Cue),
	}

	files := map[notifications.Notice]*prefs.String{
		notifications.NotifyPakInsertedMemPak:      &env.Prefs.Cues.MemPak,
		notifications.NotifyPakInsertedRumblePak:   &env.Prefs.Cues.RumblePak,
		notifications.NotifyPakInsertedTransferPak: &env.Prefs.Cues.TransferPak,
	}

	for _, n := range Notices() {
		if fn, ok := files[n]; ok && fn.String() != "" {
			cue, err := Load(fn.String())
			if err == nil {
				c.cues[n] = cue.Resample(SampleRate)
				logger.Logf(env, "cues", "%s loaded from %s (%.2fs)", n, fn, cue.Duration())
				continue
			}
			logger.Log(env, "cues", err)
		}
		c.cues[n] = Synthesise(n)
	}

	return c
}

// Get returns the cue for the notice. Returns nil if there is no cue.
func (c *Cues) Get(notice notifications.Notice) *Cue {
	return c.cues[notice]
}
