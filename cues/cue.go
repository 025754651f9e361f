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

package cues

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopher64/gopher64/curated"
	"github.com/hajimehoshi/go-mp3"
)

// SampleRate is the sample rate of synthesised cues and of cue playback.
const SampleRate = 44100

// Sentinal errors returned when loading a cue
const (
	UnsupportedFile = "cues: unsupported file type (%s)"
	InvalidFile     = "cues: %s: not a valid %s file"
)

// Cue is a mono audio clip. Samples are in the range -1.0 to 1.0.
type Cue struct {
	SampleRate int
	Data       []float32
}

// Duration returns the length of the cue in seconds.
func (c *Cue) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(len(c.Data)) / float64(c.SampleRate)
}

// Load a cue from a WAV or MP3 file. Only the first channel of a stereo file
// is used.
func Load(filename string) (*Cue, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cues: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return decodeWAV(filename, f)
	case ".mp3":
		return decodeMP3(filename, f)
	}

	return nil, curated.Errorf(UnsupportedFile, filepath.Ext(filename))
}

func decodeWAV(filename string, r io.ReadSeeker) (*Cue, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf(InvalidFile, filename, "wav")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("cues: %s: %w", filename, err)
	}

	chans := max(int(dec.NumChans), 1)
	scale := float32(math.Pow(2, float64(buf.SourceBitDepth-1)))
	if scale < 1 {
		scale = 1
	}

	c := &Cue{
		SampleRate: int(dec.SampleRate),
		Data:       make([]float32, 0, len(buf.Data)/chans),
	}
	for i := 0; i < len(buf.Data); i += chans {
		c.Data = append(c.Data, float32(buf.Data[i])/scale)
	}

	return c, nil
}

func decodeMP3(filename string, r io.Reader) (*Cue, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("cues: %s: %w", filename, err)
	}

	c := &Cue{
		SampleRate: dec.SampleRate(),
	}

	// the decoded stream is always 16bit little-endian stereo. only the left
	// channel is used
	chunk := make([]uint8, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			s := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			c.Data = append(c.Data, float32(s)/32768)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cues: %s: %w", filename, err)
		}
	}

	return c, nil
}

// Resample returns a copy of the cue at the new sample rate. Linear
// interpolation is used.
func (c *Cue) Resample(rate int) *Cue {
	if c.SampleRate == rate || c.SampleRate == 0 || len(c.Data) == 0 {
		return &Cue{SampleRate: rate, Data: append([]float32(nil), c.Data...)}
	}

	step := float64(c.SampleRate) / float64(rate)
	n := int(float64(len(c.Data)) / step)
	r := &Cue{
		SampleRate: rate,
		Data:       make([]float32, n),
	}
	for i := range r.Data {
		p := float64(i) * step
		j := int(p)
		if j+1 >= len(c.Data) {
			r.Data[i] = c.Data[len(c.Data)-1]
			continue
		}
		f := float32(p - float64(j))
		r.Data[i] = c.Data[j]*(1-f) + c.Data[j+1]*f
	}
	return r
}

// WriteWAV encodes the cue as a 16bit mono WAV file.
func (c *Cue) WriteWAV(w io.WriteSeeker) error {
	enc := wav.NewEncoder(w, c.SampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  c.SampleRate,
		},
		Data:           make([]int, len(c.Data)),
		SourceBitDepth: 16,
	}
	for i, v := range c.Data {
		v = min(max(v, -1), 1)
		buf.Data[i] = int(v * 32767)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("cues: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("cues: %w", err)
	}
	return nil
}
