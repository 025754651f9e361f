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

package events

import (
	"fmt"
	"math"

	"github.com/gopher64/gopher64/curated"
)

// Tag identifies an event. There can only be one pending event for each tag.
type Tag int

// List of valid tags.
const (
	PI Tag = iota
	VRU
	PakSwitch
	NumTags
)

func (t Tag) String() string {
	switch t {
	case PI:
		return "PI"
	case VRU:
		return "VRU"
	case PakSwitch:
		return "PakSwitch"
	}
	return fmt.Sprintf("unknown event (%d)", int(t))
}

// Event is a scheduled callback. The Count field is the cycle count at which
// the event will trigger.
type Event struct {
	Enabled bool
	Count   uint64
}

// Handler is called when an event triggers. The event has already been
// disabled when the handler is called so it can safely create a new event
// with the same tag.
type Handler func() error

// Sentinal error returned when an event triggers that has no handler
const NoHandler = "events: no handler for %v"

// Scheduler maintains the table of events and the current cycle count.
type Scheduler struct {
	// the current cycle count
	Count uint64

	events   [NumTags]Event
	handlers [NumTags]Handler

	next      Tag
	nextCount uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	s.setNext()
	return s
}

func (s *Scheduler) String() string {
	if s.nextCount == math.MaxUint64 {
		return fmt.Sprintf("count=%d no pending events", s.Count)
	}
	return fmt.Sprintf("count=%d next=%v at %d", s.Count, s.next, s.nextCount)
}

// Register the handler for an event tag. A previously registered handler is
// replaced.
func (s *Scheduler) Register(tag Tag, handler Handler) {
	s.handlers[tag] = handler
}

// Create an event that will trigger when the cycle count reaches the when
// value. Any existing event with the same tag is replaced.
func (s *Scheduler) Create(tag Tag, when uint64) {
	s.events[tag] = Event{
		Enabled: true,
		Count:   when,
	}
	s.setNext()
}

// Remove the event with the tag. Removing an event that is not pending has no
// effect.
func (s *Scheduler) Remove(tag Tag) {
	s.events[tag].Enabled = false
	s.setNext()
}

// Get returns the pending event for the tag. The boolean return value is
// false if there is no pending event.
func (s *Scheduler) Get(tag Tag) (Event, bool) {
	if s.events[tag].Enabled {
		return s.events[tag], true
	}
	return Event{}, false
}

// Pending returns true if there is a pending event for the tag.
func (s *Scheduler) Pending(tag Tag) bool {
	return s.events[tag].Enabled
}

// AddCycles advances the cycle count without triggering any events.
func (s *Scheduler) AddCycles(cycles uint64) {
	s.Count += cycles
}

// Advance the cycle count and trigger every event that has become due, in
// order of their trigger count. The cycle count is at the event's count while
// its handler runs, so a handler that creates a new event relative to Count
// is scheduled from the moment it fired.
//
// The first error returned by a handler stops the advance. The cycle count is
// left at the count of the failing event.
func (s *Scheduler) Advance(cycles uint64) error {
	target := s.Count + cycles
	for s.nextCount <= target {
		s.Count = max(s.Count, s.nextCount)
		if err := s.trigger(); err != nil {
			return err
		}
	}
	s.Count = target
	return nil
}

// NextEvent returns the cycle count of the next pending event. Returns
// math.MaxUint64 if there are no pending events.
func (s *Scheduler) NextEvent() uint64 {
	return s.nextCount
}

// Translate moves all pending events to a new time base. Used when the cycle
// count is rewritten.
func (s *Scheduler) Translate(oldCount uint64, newCount uint64) {
	for i := range s.events {
		if s.events[i].Enabled {
			s.events[i].Count = s.events[i].Count - oldCount + newCount
		}
	}
	s.setNext()
}

// Events returns a copy of the event table. Used by the savestate package.
func (s *Scheduler) Events() [NumTags]Event {
	return s.events
}

// Plumb a new event table into the scheduler. Handlers are not affected.
func (s *Scheduler) Plumb(count uint64, events [NumTags]Event) {
	s.Count = count
	s.events = events
	s.setNext()
}

func (s *Scheduler) trigger() error {
	tag := s.next
	s.events[tag].Enabled = false
	s.setNext()

	if s.handlers[tag] == nil {
		return curated.Fatalf(NoHandler, tag)
	}
	return s.handlers[tag]()
}

func (s *Scheduler) setNext() {
	s.nextCount = math.MaxUint64
	for i, e := range s.events {
		if e.Enabled && e.Count < s.nextCount {
			s.nextCount = e.Count
			s.next = Tag(i)
		}
	}
}
