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

package paks

import (
	"fmt"

	"github.com/gopher64/gopher64/curated"
)

// Kind identifies the type of pak.
type Kind int

// List of pak kinds. None is only used to indicate that there is no pak
// switch pending. It is never the result of a pak switch.
const (
	None Kind = iota
	MemPak
	RumblePak
	TransferPak
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case MemPak:
		return "mempak"
	case RumblePak:
		return "rumblepak"
	case TransferPak:
		return "transferpak"
	}
	return fmt.Sprintf("unknown pak (%d)", int(k))
}

// Sentinal error returned by Kind.Next()
const InvalidRotation = "paks: can not switch from %v"

// Next returns the kind of pak that follows this kind in the pak switch
// rotation. The rotation is MemPak, RumblePak, TransferPak and back to
// MemPak.
//
// It is a fatal error to call Next() on any other kind.
func (k Kind) Next() (Kind, error) {
	switch k {
	case MemPak:
		return RumblePak, nil
	case RumblePak:
		return TransferPak, nil
	case TransferPak:
		return MemPak, nil
	}
	return None, curated.Fatalf(InvalidRotation, k)
}

// Pak is implemented by all pak types. The address is always aligned to 32
// bytes and the length of the data is the pak chunk size.
//
// Read() fills the data slice with data from the pak and Write() sends the
// data to the pak.
type Pak interface {
	Kind() Kind
	Read(channel int, address uint16, data []uint8) error
	Write(channel int, address uint16, data []uint8) error
}
