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

package pif

import (
	"fmt"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/controller/paks"
)

// Device is implemented by anything that can be connected to a PIF channel.
// Process() is called with the channel number when the channel has a
// command to process.
type Device interface {
	Process(channel int) error
}

// Sentinal errors returned by Channel.Buffers() and CheckOffsets()
const (
	NoChannelBuffer = "pif: channel %d has no %s buffer"
	BadOffsets      = "pif: channel %d: offsets outside PIF RAM (%v)"
)

// absent is the offset value used for buffers that are not configured
const absent = -1

// Channel is one of the five joybus channels. Channels zero to three are the
// controller ports and channel four is the cartridge.
//
// The offsets are indexes into PIF RAM and are set up by the channel format
// command. An offset of -1 means the buffer is not present.
type Channel struct {
	Tx    int
	Rx    int
	TxBuf int
	RxBuf int

	// the device connected to the channel. nil if nothing is connected
	Device Device

	// the pak inserted into the controller. nil if there is no pak
	Pak paks.Pak

	// the kind of pak that has been removed and which will be rotated to the
	// next kind when the pak switch completes. paks.None if there is no pak
	// switch pending
	ChangePak paks.Kind
}

func (ch *Channel) String() string {
	if !ch.Enabled() {
		return "disabled"
	}
	return fmt.Sprintf("tx=%d rx=%d txbuf=%d rxbuf=%d", ch.Tx, ch.Rx, ch.TxBuf, ch.RxBuf)
}

func (ch *Channel) disable() {
	ch.Tx = absent
	ch.Rx = absent
	ch.TxBuf = absent
	ch.RxBuf = absent
}

// Enabled returns true if the channel has been configured by the channel
// format command.
func (ch *Channel) Enabled() bool {
	return ch.Tx != absent
}

// Buffers returns the offsets of the transmit and receive buffers. It is an
// error for a device to be asked to process a channel without buffers and
// the error returned is fatal.
func (ch *Channel) Buffers(channel int) (int, int, error) {
	if ch.TxBuf == absent {
		return 0, 0, curated.Fatalf(NoChannelBuffer, channel, "transmit")
	}
	if ch.RxBuf == absent {
		return 0, 0, curated.Fatalf(NoChannelBuffer, channel, "receive")
	}
	return ch.TxBuf, ch.RxBuf, nil
}

// CheckOffsets returns an error if the channel offsets could not have been
// created by the channel format command for the contents of PIF RAM. A channel
// is either disabled, with every offset absent, or has every offset inside
// PIF RAM with room for the receive buffer.
//
// Used when channel state is restored from outside the emulation.
func CheckOffsets(ram *[RAMSize]uint8, channel int, ch Channel) error {
	if ch.Tx == absent && ch.Rx == absent && ch.TxBuf == absent && ch.RxBuf == absent {
		return nil
	}
	for _, o := range []int{ch.Tx, ch.Rx, ch.TxBuf, ch.RxBuf} {
		if o < 0 || o >= RAMSize {
			return curated.Errorf(BadOffsets, channel, &ch)
		}
	}
	if ch.RxBuf+int(ram[ch.Rx]&0x3f) > RAMSize {
		return curated.Errorf(BadOffsets, channel, &ch)
	}
	return nil
}
