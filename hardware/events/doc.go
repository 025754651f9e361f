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

// Package events implements the cycle-stamped event scheduler. Events are
// identified by a fixed Tag and there can only be one pending event per tag.
//
// Devices that need a delayed callback register a handler for their tag and
// then create an event with an absolute cycle count. The emulation loop calls
// Advance() and any event that has become due is triggered.
//
//	s := events.NewScheduler()
//	s.Register(events.PakSwitch, ctrl.PakSwitchEvent)
//	s.Create(events.PakSwitch, s.Count+clocks.CPUHz)
package events
