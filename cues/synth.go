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
	"math"

	"github.com/gopher64/gopher64/notifications"
)

// a tone is a sine wave at the frequency for the duration, followed by
// silence for the gap. durations are in seconds
type tone struct {
	freq     float64
	duration float64
	gap      float64
}

// the built-in cues. each pak has a different number of rising tones so
// that the pak can be identified without looking at the screen
var synthCues = map[notifications.Notice][]tone{
	notifications.NotifyPakRemoved: {
		{freq: 660, duration: 0.08, gap: 0.02},
		{freq: 440, duration: 0.12},
	},
	notifications.NotifyPakInsertedMemPak: {
		{freq: 880, duration: 0.15},
	},
	notifications.NotifyPakInsertedRumblePak: {
		{freq: 660, duration: 0.08, gap: 0.04},
		{freq: 880, duration: 0.08},
	},
	notifications.NotifyPakInsertedTransferPak: {
		{freq: 523, duration: 0.06, gap: 0.03},
		{freq: 660, duration: 0.06, gap: 0.03},
		{freq: 880, duration: 0.06},
	},
	notifications.NotifyVRUListening: {
		{freq: 1047, duration: 0.05},
	},
}

// length of the fade in and fade out of each tone, in seconds. prevents
// clicks at the start and end of the tone
const fade = 0.005

// Synthesise the built-in cue for the notice. Returns nil if there is no
// built-in cue for the notice.
func Synthesise(notice notifications.Notice) *Cue {
	tones, ok := synthCues[notice]
	if !ok {
		return nil
	}

	c := &Cue{SampleRate: SampleRate}
	for _, t := range tones {
		n := int(t.duration * SampleRate)
		f := int(math.Trunc(fade * SampleRate))
		for i := range n {
			v := math.Sin(2 * math.Pi * t.freq * float64(i) / SampleRate)
			switch {
			case i < f:
				v *= float64(i) / float64(f)
			case i > n-f:
				v *= float64(n-i) / float64(f)
			}
			c.Data = append(c.Data, float32(v*0.8))
		}
		c.Data = append(c.Data, make([]float32, int(t.gap*SampleRate))...)
	}

	return c
}

// Notices returns the list of notices that have a built-in cue.
func Notices() []notifications.Notice {
	return []notifications.Notice{
		notifications.NotifyPakRemoved,
		notifications.NotifyPakInsertedMemPak,
		notifications.NotifyPakInsertedRumblePak,
		notifications.NotifyPakInsertedTransferPak,
		notifications.NotifyVRUListening,
	}
}
