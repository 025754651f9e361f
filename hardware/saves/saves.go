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

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/resources"
)

// Kind identifies one of the stores.
type Kind int

// List of store kinds.
const (
	SRAM Kind = iota
	FlashRAM
	MemPak
	EEPROM
	NumKinds
)

func (k Kind) String() string {
	switch k {
	case SRAM:
		return "sram"
	case FlashRAM:
		return "flashram"
	case MemPak:
		return "mempak"
	case EEPROM:
		return "eeprom"
	}
	return "unknown"
}

// file extension for each kind of store
func (k Kind) extension() string {
	switch k {
	case SRAM:
		return "sra"
	case FlashRAM:
		return "fla"
	case MemPak:
		return "mpk"
	case EEPROM:
		return "eep"
	}
	return "sav"
}

// Saves is the collection of stores for a cartridge and its controller paks.
type Saves struct {
	env *environment.Environment

	// the base name of the save files. the file extension is added to this
	// depending on the kind of store
	name string

	Stores [NumKinds]Store
}

// Name returns the base name of save files for a ROM. The name is made up of
// the game ID and a hash of the ROM data.
func Name(gameID string, rom []uint8) string {
	return fmt.Sprintf("%s-%x", gameID, sha1.Sum(rom))
}

// NewSaves is the preferred method of initialisation for the Saves type. The
// name is the value returned by the Name() function. An empty name means that
// the saves will never be written to disk.
func NewSaves(env *environment.Environment, name string) *Saves {
	return &Saves{
		env:  env,
		name: name,
	}
}

// Store returns the store for the kind.
func (s *Saves) Store(kind Kind) *Store {
	return &s.Stores[kind]
}

func (s *Saves) path(kind Kind) (string, error) {
	return resources.JoinPath(s.env.Prefs.Saves.Directory.String(), fmt.Sprintf("%s.%s", s.name, kind.extension()))
}

// Load every store from disk. Stores without a file on disk are left empty and
// will be formatted by the device emulation on first access.
func (s *Saves) Load() error {
	if s.name == "" {
		return nil
	}

	for k := range NumKinds {
		fn, err := s.path(k)
		if err != nil {
			return fmt.Errorf("saves: %w", err)
		}

		d, err := os.ReadFile(fn)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("saves: %w", err)
		}

		s.Stores[k] = Store{Data: d}
		logger.Logf(s.env, "saves", "%s loaded from %s", k, fn)
	}

	return nil
}

// Flush writes every store that has been written to since the last call to
// Flush(). The Written flag is cleared for each store successfully written.
func (s *Saves) Flush() error {
	if s.name == "" {
		return nil
	}

	for k := range NumKinds {
		st := &s.Stores[k]
		if !st.Written {
			continue
		}

		fn, err := s.path(k)
		if err != nil {
			return fmt.Errorf("saves: %w", err)
		}

		err = os.WriteFile(fn, st.Data, 0o600)
		if err != nil {
			return fmt.Errorf("saves: %w", err)
		}

		st.Written = false
		logger.Logf(s.env, "saves", "%s saved to %s", k, fn)
	}

	return nil
}

// IsSaved returns true if no store has been written to since the last
// Flush().
func (s *Saves) IsSaved() bool {
	for k := range s.Stores {
		if s.Stores[k].Written {
			return false
		}
	}
	return true
}
