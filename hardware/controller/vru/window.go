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

package vru

import (
	"slices"
	"sync"
)

// NoMatch is the word index returned to the game when the spoken word could
// not be matched against the list of words.
const NoMatch = 0x7fff

// Window is the hand-off between the VRU and the front end. When a game asks
// for the result of a recognition the list of candidate words is sent to the
// front end, which should present them to the user and reply with the chosen
// word.
//
// The VRU side of the hand-off is called from the emulation goroutine and
// will block until the front end has replied or the window is closed.
type Window struct {
	words  chan []string
	choice chan string

	done  chan struct{}
	closeOnce sync.Once
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow() *Window {
	return &Window{
		words:  make(chan []string, 1),
		choice: make(chan string, 1),
		done:   make(chan struct{}),
	}
}

// Close the window. Called by the front end when it stops servicing the
// window. Any pending or future Prompt() returns NoMatch immediately.
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
}

// Words returns the channel on which lists of words are sent to the front
// end. The words in the list are sorted and have no duplicates.
func (w *Window) Words() <-chan []string {
	return w.words
}

// Choose replies to the most recent list of words. An empty string, or any
// string not in the list, means that no word was recognised.
func (w *Window) Choose(word string) {
	select {
	case w.choice <- word:
	case <-w.done:
	}
}

// Prompt sends the words to the front end and waits for the choice. Returns
// the index of the chosen word in the original (unsorted) list of words.
func (w *Window) Prompt(words []string) uint16 {
	candidates := slices.Clone(words)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	// drain any stale list that the front end has not picked up
	select {
	case <-w.words:
	default:
	}
	select {
	case w.words <- candidates:
	case <-w.done:
		return NoMatch
	}

	var chosen string
	select {
	case chosen = <-w.choice:
	case <-w.done:
		return NoMatch
	}

	if chosen == "" {
		return NoMatch
	}
	for i, v := range words {
		if v == chosen {
			return uint16(i)
		}
	}
	return NoMatch
}
