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

package savestate

import (
	"fmt"
	"strings"

	"github.com/gopher64/gopher64/hardware/cart"
	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/hardware/saves"
)

// DeviceKind records what was connected to a channel when the state was
// taken. A state can only be restored into a machine with the same devices
// connected.
type DeviceKind int

// List of device kinds.
const (
	DeviceNone DeviceKind = iota
	DeviceController
	DeviceVRU
	DeviceOther
)

func (d DeviceKind) String() string {
	switch d {
	case DeviceNone:
		return "nothing"
	case DeviceController:
		return "controller"
	case DeviceVRU:
		return "vru"
	}
	return "other device"
}

// Channel is the state of a joybus channel. The pak itself is not stored,
// only its kind. The pak is rebuilt from the kind when the state is
// restored.
type Channel struct {
	Tx    int
	Rx    int
	TxBuf int
	RxBuf int

	Device    DeviceKind
	Pak       paks.Kind
	ChangePak paks.Kind
}

// FlashRAM is the state of the FlashRAM chip. The contents of the chip are
// in the FlashRAM store.
type FlashRAM struct {
	Status    uint32
	Mode      cart.FlashMode
	ErasePage uint16
	PageBuf   [128]uint8
	SiliconID [2]uint32
}

// VRU is the state of the voice recognition unit.
type VRU struct {
	Status     uint8
	VoiceState uint8
	LoadOffset int
	VoiceInit  uint8
	WordBuffer [vru.WordBufferLen]uint16
	Words      []string
	Talking    bool
}

// TransferPak is the state of the transfer pak for one controller port.
type TransferPak struct {
	Enabled           bool
	Bank              uint8
	AccessMode        uint8
	AccessModeChanged uint8
}

// State is a snapshot of the joybus and backup hardware.
type State struct {
	Count  uint64
	Events [events.NumTags]events.Event

	RAM      [pif.RAMSize]uint8
	Channels [pif.NumChannels]Channel

	// nil if the cartridge has no FlashRAM
	FlashRAM *FlashRAM

	// nil if the VRU is not connected
	VRU *VRU

	TransferPaks [controller.NumPorts]TransferPak

	Stores [saves.NumKinds]saves.Store
}

func (s *State) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "cycles: %d\n", s.Count)
	for t, e := range s.Events {
		if e.Enabled {
			fmt.Fprintf(&b, "event %v: %d\n", events.Tag(t), e.Count)
		}
	}
	for i, ch := range s.Channels {
		fmt.Fprintf(&b, "channel %d: %v", i, ch.Device)
		if ch.Device == DeviceController {
			fmt.Fprintf(&b, " with %v", ch.Pak)
			if ch.ChangePak != paks.None {
				fmt.Fprintf(&b, " (switching from %v)", ch.ChangePak)
			}
		}
		b.WriteString("\n")
	}
	if s.FlashRAM != nil {
		fmt.Fprintf(&b, "flashram: %v mode, status %#08x\n", s.FlashRAM.Mode, s.FlashRAM.Status)
	}
	if s.VRU != nil {
		fmt.Fprintf(&b, "vru: %d words, talking %v\n", len(s.VRU.Words), s.VRU.Talking)
	}
	for k, st := range s.Stores {
		if len(st.Data) > 0 {
			fmt.Fprintf(&b, "%v: %d bytes\n", saves.Kind(k), len(st.Data))
		}
	}
	return b.String()
}
