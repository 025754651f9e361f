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
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/japanese"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware/clocks"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pif"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/notifications"
)

// Voice states reported by the read status command.
const (
	VoiceReady = 0x00
	VoiceStart = 0x01
	VoiceBusy  = 0x05
)

// WordBufferLen is the number of uint16 values in the word buffer.
const WordBufferLen = 40

// the number of uint16 values sent by each write command
const wordsPerWrite = 10

// values returned by the configuration CRC that turn the microphone on and off
const (
	configTalk    = 0x4e
	configSilence = 0xef
)

// region byte values for which words are sent as Shift-JIS text
const (
	regionJapan = 0x4a
	regionDemo  = 0x00
)

// Sentinal errors returned by Process().
const (
	UnknownCommand = "vru: unknown command (%#02x)"
	UnknownWord    = "vru: unknown word (%s)"
	EmptyWord      = "vru: read status with an empty word buffer"
	BadWord        = "vru: unexpected word marker (%#04x)"
	WordOverflow   = "vru: word buffer overflow"
	DecodeError    = "vru: can not decode word: %v"
)

// VRU is the Voice Recognition Unit. It connects to controller port four.
//
// The game loads a list of words that it wants to recognise. When the game
// asks for the result of recognition the user is prompted to choose from the
// list of loaded words.
type VRU struct {
	env    *environment.Environment
	pif    *pif.PIF
	sched  *events.Scheduler
	notify notifications.Notify
	window *Window

	// byte 0x3e of the cartridge ROM
	region uint8

	Status     uint8
	VoiceState uint8
	LoadOffset int
	VoiceInit  uint8
	WordBuffer [WordBufferLen]uint16

	// the words that have been loaded by the game, in the order they were
	// loaded. the index of a word in this list is the value returned to the
	// game on a successful match
	Words []string

	// the microphone is on
	Talking bool
}

// NewVRU is the preferred method of initialisation for the VRU type. The
// region argument is byte 0x3e of the cartridge ROM. The notify argument can
// be nil.
func NewVRU(env *environment.Environment, p *pif.PIF, sched *events.Scheduler, region uint8, notify notifications.Notify) *VRU {
	v := &VRU{
		env:    env,
		pif:    p,
		sched:  sched,
		notify: notify,
		region: region,
	}
	sched.Register(events.VRU, v.timeout)
	v.Reset()
	return v
}

func (v *VRU) String() string {
	return fmt.Sprintf("status=%d voice=%d init=%d offset=%d talking=%v words=%d",
		v.Status, v.VoiceState, v.VoiceInit, v.LoadOffset, v.Talking, len(v.Words))
}

// AttachWindow connects the front end to the VRU. A nil window detaches the
// front end and every recognition will result in no match.
func (v *VRU) AttachWindow(w *Window) {
	v.window = w
}

func (v *VRU) japanese() bool {
	return v.region == regionJapan || v.region == regionDemo
}

// Reset the VRU. The list of loaded words is not affected.
func (v *VRU) Reset() {
	v.Status = 0
	if v.japanese() {
		v.VoiceState = VoiceReady
	} else {
		v.VoiceState = VoiceStart
	}
	v.LoadOffset = 0
	v.VoiceInit = 1
	clear(v.WordBuffer[:])
}

// Process implements the pif.Device interface.
func (v *VRU) Process(channel int) error {
	txb, rxb, err := v.pif.Channels[channel].Buffers(channel)
	if err != nil {
		return err
	}

	cmd := v.pif.RAM[txb]

	switch cmd {
	case pif.CmdReset:
		v.Reset()
		return v.setStatus(rxb)

	case pif.CmdStatus:
		return v.setStatus(rxb)

	case pif.CmdControllerRead:
		return nil

	case pif.CmdVRUReadStatus:
		return v.readStatus(rxb)

	case pif.CmdVRUWriteConfig:
		return v.writeConfig(txb, rxb)

	case pif.CmdVRUWriteInit:
		tx, err := v.pif.Bytes(txb+1, 2)
		if err != nil {
			return err
		}
		if binary.LittleEndian.Uint16(tx) == 0 {
			v.setTalking(false)
		}
		v.pif.RAM[rxb] = 0
		return nil

	case pif.CmdVRURead:
		return v.read(rxb)

	case pif.CmdVRUWrite:
		return v.write(txb, rxb)
	}

	return curated.Fatalf(UnknownCommand, cmd)
}

func (v *VRU) setStatus(rxb int) error {
	rx, err := v.pif.Bytes(rxb, 3)
	if err != nil {
		return err
	}

	if v.VoiceInit == 2 {
		// words have been loaded
		v.VoiceState = VoiceStart
		v.VoiceInit = 1
	} else if v.Talking && v.VoiceState == VoiceStart {
		v.VoiceState = VoiceBusy
		v.Status = 0
	} else if !v.Talking && v.VoiceState == VoiceBusy {
		v.VoiceState = VoiceReady
		v.Status = 0
	}

	binary.LittleEndian.PutUint16(rx, pif.DevVRU)
	rx[2] = v.Status
	return nil
}

func (v *VRU) readStatus(rxb int) error {
	rx, err := v.pif.Bytes(rxb, 3)
	if err != nil {
		return err
	}

	if v.VoiceInit > 0 {
		rx[0] = v.VoiceState
	} else {
		rx[0] = 0
	}
	rx[1] = 0
	rx[2] = pif.DataCRC(rx[:2])

	if v.LoadOffset > 0 {
		word, err := v.decodeWord()
		if err != nil {
			return err
		}
		v.Words = append(v.Words, word)
		logger.Logf(v.env, "vru", "loaded word %d: %s", len(v.Words)-1, word)
		v.LoadOffset = 0
	}

	v.Status = 1
	return nil
}

// decodeWord converts the contents of the word buffer into a string.
func (v *VRU) decodeWord() (string, error) {
	offset := 0
	for offset < WordBufferLen && v.WordBuffer[offset] == 0 {
		offset++
	}
	if offset == WordBufferLen {
		return "", curated.Fatalf(EmptyWord)
	}
	if v.WordBuffer[offset] != 3 {
		return "", curated.Fatalf(BadWord, v.WordBuffer[offset])
	}

	offset += 3
	if offset >= WordBufferLen {
		return "", curated.Fatalf(WordOverflow)
	}

	if v.japanese() {
		// the word is sent as Shift-JIS text, two bytes in each value. the
		// text starts with the value that is used as the length by other
		// regions
		offset--
		var data []uint8
		for i := offset; i < WordBufferLen && v.WordBuffer[i] != 0; i++ {
			data = binary.BigEndian.AppendUint16(data, v.WordBuffer[i])
		}
		word, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
		if err != nil {
			return "", curated.Fatalf(DecodeError, err)
		}
		return string(word), nil
	}

	length := int(v.WordBuffer[offset])
	offset++
	if offset+length > WordBufferLen {
		return "", curated.Fatalf(WordOverflow)
	}

	s := strings.Builder{}
	for _, w := range v.WordBuffer[offset : offset+length] {
		fmt.Fprintf(&s, "%04X", w)
	}

	word, ok := dictionary[s.String()]
	if !ok {
		return "", curated.Fatalf(UnknownWord, s.String())
	}
	return word, nil
}

func (v *VRU) writeConfig(txb int, rxb int) error {
	tx, err := v.pif.Bytes(txb, 7)
	if err != nil {
		return err
	}

	crc := pif.DataCRC(tx[3:7])
	v.pif.RAM[rxb] = crc

	switch {
	case crc == configTalk:
		v.VoiceInit = 2
		v.setTalking(true)
	case crc == configSilence:
		v.setTalking(false)
	case tx[3] == 0x02:
		v.VoiceInit = 0
		v.Words = v.Words[:0]
	}

	v.Status = 0
	return nil
}

func (v *VRU) read(rxb int) error {
	rx, err := v.pif.Bytes(rxb, 37)
	if err != nil {
		return err
	}

	index := uint16(NoMatch)

	// peers in a netplay session must all see the same result so the front
	// end is never consulted
	if v.window != nil && !v.env.IsNetplay() {
		index = v.window.Prompt(v.Words)
	}

	var results uint16
	if index != NoMatch {
		results = 1
	}

	response := [...]uint16{
		0x8000,
		0x0f00,
		0,       // error flags
		results, // number of results
		0x0bb8,  // mic level
		0x0bb8,  // voice level
		0x8004,  // voice length
		index, 0,
		NoMatch, 0,
		NoMatch, 0,
		NoMatch, 0,
		NoMatch, 0,
		0x0040,
	}
	for i, r := range response {
		binary.LittleEndian.PutUint16(rx[i*2:], r)
	}
	rx[36] = pif.DataCRC(rx[:36])

	v.VoiceState = VoiceStart
	return nil
}

func (v *VRU) write(txb int, rxb int) error {
	tx, err := v.pif.Bytes(txb+3, wordsPerWrite*2)
	if err != nil {
		return err
	}

	v.pif.RAM[rxb] = pif.DataCRC(tx)

	if v.LoadOffset == 0 {
		clear(v.WordBuffer[:])
	}
	if v.LoadOffset+wordsPerWrite > WordBufferLen {
		return curated.Fatalf(WordOverflow)
	}

	for i := range wordsPerWrite {
		v.WordBuffer[v.LoadOffset] = binary.LittleEndian.Uint16(tx[i*2:])
		v.LoadOffset++
	}

	v.Status = 0
	return nil
}

// setTalking turns the microphone on or off. The microphone turns itself off
// after two seconds.
func (v *VRU) setTalking(talking bool) {
	v.Talking = talking
	if talking {
		clockRate := v.env.Prefs.ClockRate.Get().(int)
		v.sched.Create(events.VRU, v.sched.Count+clocks.Seconds(clockRate, 2))
		v.notice(notifications.NotifyVRUListening)
	} else {
		v.sched.Remove(events.VRU)
		v.notice(notifications.NotifyVRUStopped)
	}
}

// timeout is the handler for the VRU event.
func (v *VRU) timeout() error {
	v.Talking = false
	v.notice(notifications.NotifyVRUStopped)
	return nil
}

func (v *VRU) notice(n notifications.Notice) {
	if v.notify == nil {
		return
	}
	if err := v.notify.Notify(n); err != nil {
		logger.Log(v.env, "vru", err)
	}
}

// Plumb the VRU into a new PIF and scheduler. Used after loading a savestate.
func (v *VRU) Plumb(p *pif.PIF, sched *events.Scheduler) {
	v.pif = p
	v.sched = sched
	sched.Register(events.VRU, v.timeout)
}
