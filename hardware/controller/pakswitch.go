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

package controller

import (
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/notifications"
)

// removePak starts the pak switch for the controller. Only one pak switch
// can be pending at any one time.
func (c *Controllers) removePak(channel int) {
	if c.sched.Pending(events.PakSwitch) {
		return
	}

	ch := &c.pif.Channels[channel]
	if ch.Pak == nil {
		return
	}

	clockRate := c.env.Prefs.ClockRate.Get().(int)
	c.sched.Create(events.PakSwitch, c.sched.Count+uint64(clockRate))

	ch.ChangePak = ch.Pak.Kind()
	ch.Pak = nil

	logger.Logf(c.env, "controller", "removed %v from channel %d", ch.ChangePak, channel)
	c.notify(notifications.NotifyPakRemoved)
}

// pakSwitch is the handler for the pak switch event.
func (c *Controllers) pakSwitch() error {
	for i := range NumPorts {
		ch := &c.pif.Channels[i]
		if ch.ChangePak == paks.None {
			continue
		}

		// the rumble motor would stop if the rumble pak was removed
		c.ui.SetRumble(i, 0)

		next, err := ch.ChangePak.Next()
		if err != nil {
			return err
		}
		if err := c.Insert(i, next); err != nil {
			return err
		}
		ch.ChangePak = paks.None

		logger.Logf(c.env, "controller", "inserted %v into channel %d", next, i)

		switch next {
		case paks.MemPak:
			c.notify(notifications.NotifyPakInsertedMemPak)
		case paks.RumblePak:
			c.notify(notifications.NotifyPakInsertedRumblePak)
		case paks.TransferPak:
			c.notify(notifications.NotifyPakInsertedTransferPak)
		}
	}
	return nil
}
