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
	"bytes"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/cart"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/saves"
)

// every state file begins with this
const magic = "gopher64 state\x00"

// Sentinal errors returned by Unmarshal()
const (
	NotAState   = "savestate: not a gopher64 state"
	DecodeError = "savestate: %v"
)

// field numbers of the State message
const (
	fieldCount       protowire.Number = 1
	fieldEvent       protowire.Number = 2
	fieldRAM         protowire.Number = 3
	fieldChannel     protowire.Number = 4
	fieldFlashRAM    protowire.Number = 5
	fieldVRU         protowire.Number = 6
	fieldTransferPak protowire.Number = 7
	fieldStore       protowire.Number = 8
)

// Marshal the state into the protobuf wire format. The message is preceded
// by a short identifying string.
func (s *State) Marshal() []uint8 {
	b := []uint8(magic)

	b = appendVarint(b, fieldCount, s.Count)

	for tag, e := range s.Events {
		var m []uint8
		m = appendVarint(m, 1, uint64(tag))
		m = appendBool(m, 2, e.Enabled)
		m = appendVarint(m, 3, e.Count)
		b = appendMessage(b, fieldEvent, m)
	}

	b = protowire.AppendTag(b, fieldRAM, protowire.BytesType)
	b = protowire.AppendBytes(b, s.RAM[:])

	for i, ch := range s.Channels {
		var m []uint8
		m = appendVarint(m, 1, uint64(i))
		m = appendInt(m, 2, ch.Tx)
		m = appendInt(m, 3, ch.Rx)
		m = appendInt(m, 4, ch.TxBuf)
		m = appendInt(m, 5, ch.RxBuf)
		m = appendInt(m, 6, int(ch.Device))
		m = appendInt(m, 7, int(ch.Pak))
		m = appendInt(m, 8, int(ch.ChangePak))
		b = appendMessage(b, fieldChannel, m)
	}

	if f := s.FlashRAM; f != nil {
		var m []uint8
		m = appendVarint(m, 1, uint64(f.Status))
		m = appendInt(m, 2, int(f.Mode))
		m = appendVarint(m, 3, uint64(f.ErasePage))
		m = protowire.AppendTag(m, 4, protowire.BytesType)
		m = protowire.AppendBytes(m, f.PageBuf[:])
		m = appendVarint(m, 5, uint64(f.SiliconID[0]))
		m = appendVarint(m, 6, uint64(f.SiliconID[1]))
		b = appendMessage(b, fieldFlashRAM, m)
	}

	if v := s.VRU; v != nil {
		var m []uint8
		m = appendVarint(m, 1, uint64(v.Status))
		m = appendVarint(m, 2, uint64(v.VoiceState))
		m = appendInt(m, 3, v.LoadOffset)
		m = appendVarint(m, 4, uint64(v.VoiceInit))

		// packed repeated field
		var words []uint8
		for _, w := range v.WordBuffer {
			words = protowire.AppendVarint(words, uint64(w))
		}
		m = appendMessage(m, 5, words)

		for _, w := range v.Words {
			m = protowire.AppendTag(m, 6, protowire.BytesType)
			m = protowire.AppendString(m, w)
		}
		m = appendBool(m, 7, v.Talking)
		b = appendMessage(b, fieldVRU, m)
	}

	for i, tp := range s.TransferPaks {
		var m []uint8
		m = appendVarint(m, 1, uint64(i))
		m = appendBool(m, 2, tp.Enabled)
		m = appendVarint(m, 3, uint64(tp.Bank))
		m = appendVarint(m, 4, uint64(tp.AccessMode))
		m = appendVarint(m, 5, uint64(tp.AccessModeChanged))
		b = appendMessage(b, fieldTransferPak, m)
	}

	for k, st := range s.Stores {
		var m []uint8
		m = appendVarint(m, 1, uint64(k))
		m = protowire.AppendTag(m, 2, protowire.BytesType)
		m = protowire.AppendBytes(m, st.Data)
		m = appendBool(m, 3, st.Written)
		b = appendMessage(b, fieldStore, m)
	}

	return b
}

func appendVarint(b []uint8, num protowire.Number, v uint64) []uint8 {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt(b []uint8, num protowire.Number, v int) []uint8 {
	return appendVarint(b, num, protowire.EncodeZigZag(int64(v)))
}

func appendBool(b []uint8, num protowire.Number, v bool) []uint8 {
	return appendVarint(b, num, protowire.EncodeBool(v))
}

func appendMessage(b []uint8, num protowire.Number, m []uint8) []uint8 {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}

// field is a single decoded field. Only one of varint or bytes is
// meaningful, depending on the wire type.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []uint8
}

func (f field) asInt() int {
	return int(protowire.DecodeZigZag(f.varint))
}

func (f field) asBool() bool {
	return protowire.DecodeBool(f.varint)
}

// parse calls fn for every field in the message. Fields with wire types
// that are not used by the state are skipped.
func parse(b []uint8, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return curated.Errorf(DecodeError, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return curated.Errorf(DecodeError, protowire.ParseError(n))
		}
		b = b[n:]

		if typ != protowire.VarintType && typ != protowire.BytesType {
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal a state created by Marshal(). Unknown fields are ignored.
func Unmarshal(b []uint8) (*State, error) {
	if !bytes.HasPrefix(b, []uint8(magic)) {
		return nil, curated.Errorf(NotAState)
	}

	s := &State{}
	for i := range s.Channels {
		s.Channels[i].Pak = paks.None
		s.Channels[i].ChangePak = paks.None
	}

	err := parse(b[len(magic):], func(f field) error {
		switch f.num {
		case fieldCount:
			s.Count = f.varint
		case fieldEvent:
			return s.unmarshalEvent(f.bytes)
		case fieldRAM:
			copy(s.RAM[:], f.bytes)
		case fieldChannel:
			return s.unmarshalChannel(f.bytes)
		case fieldFlashRAM:
			return s.unmarshalFlashRAM(f.bytes)
		case fieldVRU:
			return s.unmarshalVRU(f.bytes)
		case fieldTransferPak:
			return s.unmarshalTransferPak(f.bytes)
		case fieldStore:
			return s.unmarshalStore(f.bytes)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// index fields must come first in repeated messages. returns an error if
// the index is out of range
func index(f field, limit int, what string) (int, error) {
	if f.num != 1 || f.typ != protowire.VarintType || f.varint >= uint64(limit) {
		return 0, curated.Errorf(DecodeError, "bad "+what+" index")
	}
	return int(f.varint), nil
}

func (s *State) unmarshalEvent(b []uint8) error {
	var e *events.Event
	return parse(b, func(f field) error {
		if e == nil {
			i, err := index(f, len(s.Events), "event")
			if err != nil {
				return err
			}
			e = &s.Events[i]
			return nil
		}
		switch f.num {
		case 2:
			e.Enabled = f.asBool()
		case 3:
			e.Count = f.varint
		}
		return nil
	})
}

func (s *State) unmarshalChannel(b []uint8) error {
	var ch *Channel
	return parse(b, func(f field) error {
		if ch == nil {
			i, err := index(f, len(s.Channels), "channel")
			if err != nil {
				return err
			}
			ch = &s.Channels[i]
			return nil
		}
		switch f.num {
		case 2:
			ch.Tx = f.asInt()
		case 3:
			ch.Rx = f.asInt()
		case 4:
			ch.TxBuf = f.asInt()
		case 5:
			ch.RxBuf = f.asInt()
		case 6:
			ch.Device = DeviceKind(f.asInt())
		case 7:
			ch.Pak = paks.Kind(f.asInt())
		case 8:
			ch.ChangePak = paks.Kind(f.asInt())
		}
		return nil
	})
}

func (s *State) unmarshalFlashRAM(b []uint8) error {
	s.FlashRAM = &FlashRAM{}
	return parse(b, func(f field) error {
		switch f.num {
		case 1:
			s.FlashRAM.Status = uint32(f.varint)
		case 2:
			s.FlashRAM.Mode = cart.FlashMode(f.asInt())
		case 3:
			s.FlashRAM.ErasePage = uint16(f.varint)
		case 4:
			copy(s.FlashRAM.PageBuf[:], f.bytes)
		case 5:
			s.FlashRAM.SiliconID[0] = uint32(f.varint)
		case 6:
			s.FlashRAM.SiliconID[1] = uint32(f.varint)
		}
		return nil
	})
}

func (s *State) unmarshalVRU(b []uint8) error {
	s.VRU = &VRU{}
	return parse(b, func(f field) error {
		switch f.num {
		case 1:
			s.VRU.Status = uint8(f.varint)
		case 2:
			s.VRU.VoiceState = uint8(f.varint)
		case 3:
			s.VRU.LoadOffset = f.asInt()
		case 4:
			s.VRU.VoiceInit = uint8(f.varint)
		case 5:
			words := f.bytes
			for i := 0; len(words) > 0 && i < len(s.VRU.WordBuffer); i++ {
				v, n := protowire.ConsumeVarint(words)
				if n < 0 {
					return curated.Errorf(DecodeError, protowire.ParseError(n))
				}
				s.VRU.WordBuffer[i] = uint16(v)
				words = words[n:]
			}
		case 6:
			s.VRU.Words = append(s.VRU.Words, string(f.bytes))
		case 7:
			s.VRU.Talking = f.asBool()
		}
		return nil
	})
}

func (s *State) unmarshalTransferPak(b []uint8) error {
	var tp *TransferPak
	return parse(b, func(f field) error {
		if tp == nil {
			i, err := index(f, len(s.TransferPaks), "transfer pak")
			if err != nil {
				return err
			}
			tp = &s.TransferPaks[i]
			return nil
		}
		switch f.num {
		case 2:
			tp.Enabled = f.asBool()
		case 3:
			tp.Bank = uint8(f.varint)
		case 4:
			tp.AccessMode = uint8(f.varint)
		case 5:
			tp.AccessModeChanged = uint8(f.varint)
		}
		return nil
	})
}

func (s *State) unmarshalStore(b []uint8) error {
	var st *saves.Store
	return parse(b, func(f field) error {
		if st == nil {
			i, err := index(f, len(s.Stores), "store")
			if err != nil {
				return err
			}
			st = &s.Stores[i]
			return nil
		}
		switch f.num {
		case 2:
			st.Data = append([]uint8(nil), f.bytes...)
		case 3:
			st.Written = f.asBool()
		}
		return nil
	})
}
