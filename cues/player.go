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

//go:build !headless

package cues

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/notifications"
)

// Player plays cues through the audio device. It implements the
// notifications.Notify interface.
type Player struct {
	env  *environment.Environment
	cues *Cues

	ctx *oto.Context

	// the most recent player. only one cue plays at a time
	crit   sync.Mutex
	player *oto.Player
}

// NewPlayer is the preferred method of initialisation for the Player type.
// Only one Player can be created by a program.
func NewPlayer(env *environment.Environment, cues *Cues) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	return &Player{
		env:  env,
		cues: cues,
		ctx:  ctx,
	}, nil
}

// Notify implements the notifications.Notify interface.
func (p *Player) Notify(notice notifications.Notice) error {
	if !p.env.Prefs.Cues.Enabled.Get().(bool) {
		return nil
	}

	c := p.cues.Get(notice)
	if c == nil {
		return nil
	}

	b := make([]uint8, len(c.Data)*4)
	for i, v := range c.Data {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}

	p.crit.Lock()
	defer p.crit.Unlock()

	if p.player != nil {
		if err := p.player.Close(); err != nil {
			return err
		}
	}
	p.player = p.ctx.NewPlayer(bytes.NewReader(b))
	p.player.SetVolume(p.env.Prefs.Cues.Volume.Get().(float64))
	p.player.Play()

	return nil
}

// Close stops any cue that is playing.
func (p *Player) Close() error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	return err
}
