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

//go:build headless

package cues

import (
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/notifications"
)

// Player discards every cue in headless builds.
type Player struct{}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(_ *environment.Environment, _ *Cues) (*Player, error) {
	return &Player{}, nil
}

// Notify implements the notifications.Notify interface.
func (p *Player) Notify(_ notifications.Notice) error {
	return nil
}

// Close implements the io.Closer interface.
func (p *Player) Close() error {
	return nil
}
