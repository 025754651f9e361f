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

package cart

import (
	"fmt"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pi"
	"github.com/gopher64/gopher64/hardware/rdram"
	"github.com/gopher64/gopher64/hardware/saves"
	"github.com/gopher64/gopher64/logger"
)

// Backup is implemented by the SRAM and FlashRAM types.
//
// DMARead() transfers data from RDRAM to the device and DMAWrite() transfers
// data from the device to RDRAM. The naming follows the PI registers.
type Backup interface {
	Kind() saves.Kind
	ReadMem(address uint32) (uint32, error)
	WriteMem(address uint32, value uint32, mask uint32) error
	DMARead(cartAddr uint32, dramAddr uint32, length uint32) error
	DMAWrite(cartAddr uint32, dramAddr uint32, length uint32) error
}

// the backup device is on PI domain 2
const backupDomain = 2

// Sentinal error returned when the cartridge has no backup device
const NoBackup = "cart: no backup device for %s"

// Cart is the cartridge as seen by the PI. It takes care of the timing of
// accesses to the backup device.
type Cart struct {
	env   *environment.Environment
	pi    *pi.PI
	sched *events.Scheduler

	Header   Header
	SaveType SaveType

	// the backup device. nil if the cartridge has neither SRAM or FlashRAM
	Backup Backup

	// the FlashRAM device, if the backup device is FlashRAM
	FlashRAM *FlashRAM
}

// NewCart is the preferred method of initialisation for the Cart type. The
// backup device is chosen by the game ID in the header.
func NewCart(env *environment.Environment, p *pi.PI, sched *events.Scheduler, mem *rdram.RDRAM,
	sv *saves.Saves, header Header) *Cart {

	c := &Cart{
		env:      env,
		pi:       p,
		sched:    sched,
		Header:   header,
		SaveType: SaveTypeForGame(header.GameID),
	}

	if c.SaveType.Has(SaveFlashRAM) {
		c.FlashRAM = NewFlashRAM(mem, sv.Store(saves.FlashRAM))
		c.Backup = c.FlashRAM
	} else if c.SaveType.Has(SaveSRAM) {
		c.Backup = NewSRAM(mem, sv.Store(saves.SRAM))
	}

	logger.Logf(env, "cart", "%v: save type %v", header, c.SaveType)

	return c
}

func (c *Cart) String() string {
	if c.FlashRAM != nil {
		return fmt.Sprintf("%v flashram: %v", c.Header, c.FlashRAM)
	}
	return fmt.Sprintf("%v %v", c.Header, c.SaveType)
}

// Plumb the cart into a new PI and scheduler. Used after loading a
// savestate.
func (c *Cart) Plumb(p *pi.PI, sched *events.Scheduler) {
	c.pi = p
	c.sched = sched
}

func (c *Cart) backup() (Backup, error) {
	if c.Backup == nil {
		return nil, curated.Fatalf(NoBackup, c.Header.GameID)
	}
	return c.Backup, nil
}

// ReadMem reads a word from the backup device. The cost of the access is
// added to the cycle count.
func (c *Cart) ReadMem(address uint32) (uint32, error) {
	b, err := c.backup()
	if err != nil {
		return 0, err
	}

	cycles, err := c.pi.CalculateCycles(backupDomain, 4)
	if err != nil {
		return 0, err
	}
	c.sched.AddCycles(cycles)

	return b.ReadMem(address)
}

// WriteMem writes a word to the backup device. The PI is busy until the
// write completes.
func (c *Cart) WriteMem(address uint32, value uint32, mask uint32) error {
	b, err := c.backup()
	if err != nil {
		return err
	}

	if err := b.WriteMem(address, value, mask); err != nil {
		return err
	}

	cycles, err := c.pi.CalculateCycles(backupDomain, 4)
	if err != nil {
		return err
	}
	c.pi.SetIOBusy(cycles)

	return nil
}

// DMARead transfers data from RDRAM to the backup device. Returns the number
// of cycles taken by the transfer.
func (c *Cart) DMARead(cartAddr uint32, dramAddr uint32, length uint32) (uint64, error) {
	b, err := c.backup()
	if err != nil {
		return 0, err
	}
	if err := b.DMARead(cartAddr, dramAddr, length); err != nil {
		return 0, err
	}
	return c.pi.CalculateCycles(backupDomain, length)
}

// DMAWrite transfers data from the backup device to RDRAM. Returns the number
// of cycles taken by the transfer.
func (c *Cart) DMAWrite(cartAddr uint32, dramAddr uint32, length uint32) (uint64, error) {
	b, err := c.backup()
	if err != nil {
		return 0, err
	}
	if err := b.DMAWrite(cartAddr, dramAddr, length); err != nil {
		return 0, err
	}
	return c.pi.CalculateCycles(backupDomain, length)
}
