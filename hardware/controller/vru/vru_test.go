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

package vru_test

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware/clocks"
	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/resources"
	"github.com/gopher64/gopher64/test"
)

const channel = 3

type fixture struct {
	env   *environment.Environment
	pif   *pif.PIF
	sched *events.Scheduler
	vru   *vru.VRU
}

func newFixture(t *testing.T, region uint8) *fixture {
	t.Helper()

	resources.BaseOverride = t.TempDir()
	t.Cleanup(func() {
		resources.BaseOverride = ""
	})

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	f := &fixture{
		env:   env,
		pif:   pif.NewPIF(env),
		sched: events.NewScheduler(),
	}
	f.vru = vru.NewVRU(env, f.pif, f.sched, region, nil)
	f.pif.Channels[channel].Device = f.vru

	return f
}

// command places the command and transmit data at the start of PIF RAM and
// processes the channel. the receive buffer starts at rxb
func (f *fixture) command(t *testing.T, rxb int, cmd uint8, tx ...uint8) error {
	t.Helper()
	clear(f.pif.RAM[:])
	f.pif.RAM[0] = cmd
	copy(f.pif.RAM[1:], tx)
	f.pif.Channels[channel].TxBuf = 0
	f.pif.Channels[channel].RxBuf = rxb
	return f.vru.Process(channel)
}

// write sends ten values to the word buffer
func (f *fixture) write(t *testing.T, words ...uint16) {
	t.Helper()
	tx := make([]uint8, 22)
	for i, w := range words {
		binary.LittleEndian.PutUint16(tx[2+i*2:], w)
	}
	test.DemandSuccess(t, f.command(t, 24, pif.CmdVRUWrite, tx...))
	test.ExpectEquality(t, f.pif.RAM[24], pif.DataCRC(tx[2:22]))
}

func TestRegion(t *testing.T) {
	f := newFixture(t, 0x4a)
	test.ExpectEquality(t, f.vru.VoiceState, uint8(vru.VoiceReady))

	f = newFixture(t, 0x00)
	test.ExpectEquality(t, f.vru.VoiceState, uint8(vru.VoiceReady))

	f = newFixture(t, 0x45)
	test.ExpectEquality(t, f.vru.VoiceState, uint8(vru.VoiceStart))
	test.ExpectEquality(t, f.vru.VoiceInit, uint8(1))

	// reset returns to the region's voice state
	f.vru.VoiceState = vru.VoiceBusy
	test.DemandSuccess(t, f.command(t, 8, pif.CmdReset))
	test.ExpectEquality(t, f.vru.VoiceState, uint8(vru.VoiceStart))
}

func TestStatus(t *testing.T) {
	f := newFixture(t, 0x45)
	test.DemandSuccess(t, f.command(t, 8, pif.CmdStatus))
	test.ExpectEquality(t, f.pif.RAM[8], uint8(0x00))
	test.ExpectEquality(t, f.pif.RAM[9], uint8(0x01))
	test.ExpectEquality(t, f.pif.RAM[10], uint8(0x00))

	// talking moves the voice state from start to busy
	f.vru.Talking = true
	test.DemandSuccess(t, f.command(t, 8, pif.CmdStatus))
	test.ExpectEquality(t, f.vru.VoiceState, uint8(vru.VoiceBusy))

	// and back to ready when talking stops
	f.vru.Talking = false
	test.DemandSuccess(t, f.command(t, 8, pif.CmdStatus))
	test.ExpectEquality(t, f.vru.VoiceState, uint8(vru.VoiceReady))
}

func TestTimeout(t *testing.T) {
	f := newFixture(t, 0x45)
	rate := f.env.Prefs.ClockRate.Get().(int)

	// the CRC of these four bytes is 0x4e
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUWriteConfig, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1d))
	test.ExpectEquality(t, f.pif.RAM[8], uint8(0x4e))
	test.ExpectSuccess(t, f.vru.Talking)
	test.ExpectEquality(t, f.vru.VoiceInit, uint8(2))
	test.DemandSuccess(t, f.sched.Pending(events.VRU))

	test.DemandSuccess(t, f.sched.Advance(clocks.Seconds(rate, 2)-1))
	test.ExpectSuccess(t, f.vru.Talking)
	test.DemandSuccess(t, f.sched.Advance(1))
	test.ExpectFailure(t, f.vru.Talking)
	test.ExpectFailure(t, f.sched.Pending(events.VRU))
}

func TestTimeoutCancelled(t *testing.T) {
	f := newFixture(t, 0x45)
	rate := f.env.Prefs.ClockRate.Get().(int)

	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUWriteConfig, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1d))
	test.DemandSuccess(t, f.vru.Talking)

	// the CRC of these four bytes is 0xef
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUWriteConfig, 0x00, 0x00, 0x00, 0x00, 0x00, 0x91))
	test.ExpectEquality(t, f.pif.RAM[8], uint8(0xef))
	test.ExpectFailure(t, f.vru.Talking)
	test.ExpectFailure(t, f.sched.Pending(events.VRU))

	// talking can also be stopped by the init command
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUWriteConfig, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1d))
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUWriteInit, 0x00, 0x00))
	test.ExpectFailure(t, f.vru.Talking)
	test.ExpectFailure(t, f.sched.Pending(events.VRU))

	// the talking flag must not be touched after it has been cancelled
	f.vru.Talking = true
	test.DemandSuccess(t, f.sched.Advance(clocks.Seconds(rate, 3)))
	test.ExpectSuccess(t, f.vru.Talking)
}

func TestLoadWord(t *testing.T) {
	f := newFixture(t, 0x45)

	// "hello" is four values long
	f.write(t, 0x0003, 0x0000, 0x0000, 0x0004, 0x040b, 0x00c0, 0x02eb, 0x0213)
	test.ExpectEquality(t, f.vru.LoadOffset, 10)

	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUReadStatus))
	test.ExpectEquality(t, f.pif.RAM[8], uint8(vru.VoiceStart))
	test.ExpectEquality(t, f.pif.RAM[9], uint8(0))
	test.ExpectEquality(t, f.pif.RAM[10], pif.DataCRC([]uint8{vru.VoiceStart, 0}))
	test.ExpectEquality(t, f.vru.LoadOffset, 0)
	test.ExpectEquality(t, f.vru.Status, uint8(1))
	test.DemandEquality(t, len(f.vru.Words), 1)
	test.ExpectEquality(t, f.vru.Words[0], "hello")

	// leading zero values are skipped
	f.write(t, 0x0000, 0x0003, 0x0000, 0x0000, 0x0003, 0x0408, 0x0174, 0x0024)
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUReadStatus))
	test.DemandEquality(t, len(f.vru.Words), 2)
	test.ExpectEquality(t, f.vru.Words[1], "hey!")

	// the reset sub-command clears the word list
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUWriteConfig, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00))
	test.ExpectEquality(t, len(f.vru.Words), 0)
	test.ExpectEquality(t, f.vru.VoiceInit, uint8(0))

	// voice state is not reported after the reset sub-command
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUReadStatus))
	test.ExpectEquality(t, f.pif.RAM[8], uint8(0))
}

func TestLoadWordErrors(t *testing.T) {
	f := newFixture(t, 0x45)

	f.write(t, 0x0003, 0x0000, 0x0000, 0x0001, 0xffff)
	err := f.command(t, 8, pif.CmdVRUReadStatus)
	test.ExpectSuccess(t, curated.IsFatal(err))
	test.ExpectSuccess(t, curated.Is(err, vru.UnknownWord))

	f = newFixture(t, 0x45)
	f.write(t)
	err = f.command(t, 8, pif.CmdVRUReadStatus)
	test.ExpectSuccess(t, curated.Is(err, vru.EmptyWord))

	f = newFixture(t, 0x45)
	f.write(t, 0x0005)
	err = f.command(t, 8, pif.CmdVRUReadStatus)
	test.ExpectSuccess(t, curated.Is(err, vru.BadWord))

	// the buffer holds four writes
	f = newFixture(t, 0x45)
	for range 4 {
		f.write(t)
	}
	err = f.command(t, 24, pif.CmdVRUWrite, make([]uint8, 22)...)
	test.ExpectSuccess(t, curated.Is(err, vru.WordOverflow))

	err = f.command(t, 8, 0x42)
	test.ExpectSuccess(t, curated.IsFatal(err))
	test.ExpectSuccess(t, curated.Is(err, vru.UnknownCommand))
}

func TestLoadJapaneseWord(t *testing.T) {
	f := newFixture(t, 0x4a)

	// Shift-JIS text for "あい"
	f.write(t, 0x0003, 0x0000, 0x82a0, 0x82a2)
	test.DemandSuccess(t, f.command(t, 8, pif.CmdVRUReadStatus))
	test.DemandEquality(t, len(f.vru.Words), 1)
	test.ExpectEquality(t, f.vru.Words[0], "あい")
}

func checkRead(t *testing.T, f *fixture, index uint16) {
	t.Helper()

	rx := f.pif.RAM[3:40]
	value := func(i int) uint16 {
		return binary.LittleEndian.Uint16(rx[i*2:])
	}

	test.ExpectEquality(t, value(0), uint16(0x8000))
	test.ExpectEquality(t, value(1), uint16(0x0f00))
	if index == vru.NoMatch {
		test.ExpectEquality(t, value(3), uint16(0))
	} else {
		test.ExpectEquality(t, value(3), uint16(1))
	}
	test.ExpectEquality(t, value(7), index)
	for i := 9; i <= 15; i += 2 {
		test.ExpectEquality(t, value(i), uint16(vru.NoMatch))
	}
	test.ExpectEquality(t, value(17), uint16(0x0040))
	test.ExpectEquality(t, rx[36], pif.DataCRC(rx[:36]))
	test.ExpectEquality(t, f.vru.VoiceState, uint8(vru.VoiceStart))
}

func TestReadNoWindow(t *testing.T) {
	f := newFixture(t, 0x4a)
	f.vru.Words = []string{"hello"}
	test.DemandSuccess(t, f.command(t, 3, pif.CmdVRURead))
	checkRead(t, f, vru.NoMatch)
}

func TestReadWindow(t *testing.T) {
	f := newFixture(t, 0x45)
	f.vru.Words = []string{"start", "hello", "start", "bye-bye"}

	w := vru.NewWindow()
	f.vru.AttachWindow(w)

	received := make(chan []string, 1)
	go func() {
		words := <-w.Words()
		received <- words
		w.Choose("hello")
	}()

	test.DemandSuccess(t, f.command(t, 3, pif.CmdVRURead))
	checkRead(t, f, 1)

	// the front end sees a sorted list with no duplicates
	words := <-received
	test.DemandEquality(t, len(words), 3)
	test.ExpectEquality(t, words[0], "bye-bye")
	test.ExpectEquality(t, words[1], "hello")
	test.ExpectEquality(t, words[2], "start")

	// an empty choice is no match
	go func() {
		<-w.Words()
		w.Choose("")
	}()
	test.DemandSuccess(t, f.command(t, 3, pif.CmdVRURead))
	checkRead(t, f, vru.NoMatch)
}

func TestReadWindowClosed(t *testing.T) {
	f := newFixture(t, 0x45)
	f.vru.Words = []string{"hello"}

	w := vru.NewWindow()
	f.vru.AttachWindow(w)

	// the front end goes away without replying
	go func() {
		<-w.Words()
		w.Close()
	}()

	done := make(chan error, 1)
	go func() {
		done <- f.command(t, 3, pif.CmdVRURead)
	}()

	select {
	case err := <-done:
		test.DemandSuccess(t, err)
	case <-time.After(time.Second):
		t.Fatal("VRU read still waiting for a closed window")
	}
	checkRead(t, f, vru.NoMatch)

	// a closed window never blocks
	test.ExpectEquality(t, w.Prompt([]string{"hello"}), uint16(vru.NoMatch))
	w.Choose("hello")
	w.Close()
}

func TestReadNetplay(t *testing.T) {
	f := newFixture(t, 0x45)
	f.vru.Words = []string{"hello"}
	f.env.Netplay = &environment.Netplay{PlayerNumber: 1}

	// the window is never consulted during netplay so nothing is waiting on
	// the other side of the hand-off
	f.vru.AttachWindow(vru.NewWindow())
	test.DemandSuccess(t, f.command(t, 3, pif.CmdVRURead))
	checkRead(t, f, vru.NoMatch)
}
