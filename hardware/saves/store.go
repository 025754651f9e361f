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

package saves

// Store is a block of battery backed (or flash) memory. The Written flag is
// set by the device emulation whenever the Data is changed and cleared when
// the Data is written to disk.
type Store struct {
	Data    []uint8
	Written bool
}

// Format makes sure the store is at least size bytes long. Missing bytes are
// set to the fill value. Existing data is not changed. Returns true if the
// store was resized.
func (s *Store) Format(size int, fill uint8) bool {
	if len(s.Data) >= size {
		return false
	}
	n := len(s.Data)
	s.Data = append(s.Data, make([]uint8, size-n)...)
	for i := n; i < size; i++ {
		s.Data[i] = fill
	}
	return true
}

// Fill sets every byte in the range to the value. The range is clipped to
// the size of the store. The store is marked as written.
func (s *Store) Fill(offset int, size int, value uint8) {
	end := min(offset+size, len(s.Data))
	for i := max(offset, 0); i < end; i++ {
		s.Data[i] = value
	}
	s.Written = true
}

// Snapshot creates a copy of the store.
func (s *Store) Snapshot() *Store {
	cp := *s
	cp.Data = make([]uint8, len(s.Data))
	copy(cp.Data, s.Data)
	return &cp
}
