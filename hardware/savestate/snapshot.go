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
	"slices"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/cart"
	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/hardware/saves"
)

// Sentinal errors returned by Restore()
const (
	DeviceMismatch   = "savestate: channel %d: state has %v but machine has %v"
	FlashRAMMismatch = "savestate: flashram in state does not match the cartridge"
	VRUMismatch      = "savestate: vru in state does not match the machine"
	InvalidPak       = "savestate: channel %d: invalid pak (%v)"
	InvalidVRU       = "savestate: vru load offset out of range (%d)"
)

// Machine is the set of components that make up a state. Cart, Controllers
// and VRU can be nil.
type Machine struct {
	Sched       *events.Scheduler
	PIF         *pif.PIF
	Cart        *cart.Cart
	Controllers *controller.Controllers
	VRU         *vru.VRU
	Saves       *saves.Saves
}

func (m Machine) deviceKind(channel int) DeviceKind {
	d := m.PIF.Channels[channel].Device
	switch {
	case d == nil:
		return DeviceNone
	case m.Controllers != nil && d == pif.Device(m.Controllers):
		return DeviceController
	case m.VRU != nil && d == pif.Device(m.VRU):
		return DeviceVRU
	}
	return DeviceOther
}

func (m Machine) flashRAM() *cart.FlashRAM {
	if m.Cart == nil {
		return nil
	}
	return m.Cart.FlashRAM
}

// Snapshot takes a copy of the machine state.
func Snapshot(m Machine) *State {
	s := &State{
		Count:  m.Sched.Count,
		Events: m.Sched.Events(),
		RAM:    m.PIF.RAM,
	}

	for i := range m.PIF.Channels {
		ch := &m.PIF.Channels[i]
		s.Channels[i] = Channel{
			Tx:        ch.Tx,
			Rx:        ch.Rx,
			TxBuf:     ch.TxBuf,
			RxBuf:     ch.RxBuf,
			Device:    m.deviceKind(i),
			ChangePak: ch.ChangePak,
		}
		if ch.Pak != nil {
			s.Channels[i].Pak = ch.Pak.Kind()
		}
	}

	if f := m.flashRAM(); f != nil {
		s.FlashRAM = &FlashRAM{
			Status:    f.Status,
			Mode:      f.Mode,
			ErasePage: f.ErasePage,
			PageBuf:   f.PageBuf,
			SiliconID: f.SiliconID,
		}
	}

	if m.VRU != nil {
		s.VRU = &VRU{
			Status:     m.VRU.Status,
			VoiceState: m.VRU.VoiceState,
			LoadOffset: m.VRU.LoadOffset,
			VoiceInit:  m.VRU.VoiceInit,
			WordBuffer: m.VRU.WordBuffer,
			Words:      slices.Clone(m.VRU.Words),
			Talking:    m.VRU.Talking,
		}
	}

	if m.Controllers != nil {
		for i := range s.TransferPaks {
			tp := m.Controllers.TransferPak(i)
			s.TransferPaks[i] = TransferPak{
				Enabled:           tp.Enabled,
				Bank:              tp.Bank,
				AccessMode:        tp.AccessMode,
				AccessModeChanged: tp.AccessModeChanged,
			}
		}
	}

	if m.Saves != nil {
		for k := range s.Stores {
			s.Stores[k] = *m.Saves.Stores[k].Snapshot()
		}
	}

	return s
}

// Restore the state into the machine. The machine must have the same
// devices connected as the machine the state was taken from. Paks are
// rebuilt from the recorded kind.
//
// The machine is not changed if an error is returned.
func (s *State) Restore(m Machine) error {
	for i := range s.Channels {
		if d := m.deviceKind(i); d != s.Channels[i].Device {
			return curated.Errorf(DeviceMismatch, i, s.Channels[i].Device, d)
		}
		for _, k := range []paks.Kind{s.Channels[i].Pak, s.Channels[i].ChangePak} {
			if k < paks.None || k > paks.TransferPak {
				return curated.Errorf(InvalidPak, i, k)
			}
		}
		sc := s.Channels[i]
		err := pif.CheckOffsets(&s.RAM, i, pif.Channel{Tx: sc.Tx, Rx: sc.Rx, TxBuf: sc.TxBuf, RxBuf: sc.RxBuf})
		if err != nil {
			return err
		}
	}
	if (s.FlashRAM == nil) != (m.flashRAM() == nil) {
		return curated.Errorf(FlashRAMMismatch)
	}
	if (s.VRU == nil) != (m.VRU == nil) {
		return curated.Errorf(VRUMismatch)
	}
	if s.VRU != nil && (s.VRU.LoadOffset < 0 || s.VRU.LoadOffset > vru.WordBufferLen) {
		return curated.Errorf(InvalidVRU, s.VRU.LoadOffset)
	}

	m.Sched.Plumb(s.Count, s.Events)
	m.PIF.RAM = s.RAM

	for i := range s.Channels {
		ch := &m.PIF.Channels[i]
		sc := s.Channels[i]
		ch.Tx = sc.Tx
		ch.Rx = sc.Rx
		ch.TxBuf = sc.TxBuf
		ch.RxBuf = sc.RxBuf
		ch.ChangePak = sc.ChangePak
		if sc.Device == DeviceController {
			if err := m.Controllers.Insert(i, sc.Pak); err != nil {
				return err
			}
		}
	}

	if f := m.flashRAM(); f != nil {
		f.Status = s.FlashRAM.Status
		f.Mode = s.FlashRAM.Mode
		f.ErasePage = s.FlashRAM.ErasePage
		f.PageBuf = s.FlashRAM.PageBuf
		f.SiliconID = s.FlashRAM.SiliconID
	}

	if m.VRU != nil {
		m.VRU.Status = s.VRU.Status
		m.VRU.VoiceState = s.VRU.VoiceState
		m.VRU.LoadOffset = s.VRU.LoadOffset
		m.VRU.VoiceInit = s.VRU.VoiceInit
		m.VRU.WordBuffer = s.VRU.WordBuffer
		m.VRU.Words = slices.Clone(s.VRU.Words)
		m.VRU.Talking = s.VRU.Talking
	}

	if m.Controllers != nil {
		for i, st := range s.TransferPaks {
			tp := m.Controllers.TransferPak(i)
			tp.Enabled = st.Enabled
			tp.Bank = st.Bank
			tp.AccessMode = st.AccessMode
			tp.AccessModeChanged = st.AccessModeChanged
		}
	}

	if m.Saves != nil {
		for k := range s.Stores {
			m.Saves.Stores[k] = *s.Stores[k].Snapshot()
		}
	}

	return nil
}
