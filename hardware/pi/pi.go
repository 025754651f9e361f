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

// Package pi implements the parts of the peripheral interface that are needed
// by the cartridge backup devices: the domain timing registers, which govern
// how long a transfer takes, and the IO busy flag.
package pi

import (
	"fmt"
	"math"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/clocks"
	"github.com/gopher64/gopher64/hardware/events"
)

// List of PI registers.
const (
	DramAddr = iota
	CartAddr
	RdLen
	WrLen
	Status
	BsdDom1Lat
	BsdDom1Pwd
	BsdDom1Pgs
	BsdDom1Rls
	BsdDom2Lat
	BsdDom2Pwd
	BsdDom2Pgs
	BsdDom2Rls
	NumRegs
)

// Bits in the status register.
const (
	StatusDMABusy   = 1 << 0
	StatusIOBusy    = 1 << 1
	StatusInterrupt = 1 << 3
)

// Sentinal error returned by CalculateCycles()
const UnknownDomain = "pi: unknown domain (%d)"

// PI is the peripheral interface.
type PI struct {
	Regs [NumRegs]uint32

	sched *events.Scheduler
}

// NewPI is the preferred method of initialisation for the PI type. The PI
// registers a handler for the PI event with the scheduler.
func NewPI(sched *events.Scheduler) *PI {
	pi := &PI{
		sched: sched,
	}
	sched.Register(events.PI, pi.dmaEvent)
	return pi
}

func (pi *PI) String() string {
	return fmt.Sprintf("status=%#02x", pi.Regs[Status])
}

// CalculateCycles returns the number of CPU cycles required to transfer
// length bytes over the domain. The timing is taken from the domain's BSD
// registers.
func (pi *PI) CalculateCycles(domain int, length uint32) (uint64, error) {
	var lat, pwd, rls, pgs uint32

	switch domain {
	case 1:
		lat, pwd, pgs, rls = pi.Regs[BsdDom1Lat], pi.Regs[BsdDom1Pwd], pi.Regs[BsdDom1Pgs], pi.Regs[BsdDom1Rls]
	case 2:
		lat, pwd, pgs, rls = pi.Regs[BsdDom2Lat], pi.Regs[BsdDom2Pwd], pi.Regs[BsdDom2Pgs], pi.Regs[BsdDom2Rls]
	default:
		return 0, curated.Fatalf(UnknownDomain, domain)
	}

	latency := float64(lat + 1)
	pulseWidth := float64(pwd + 1)
	release := float64(rls + 1)
	pageSize := math.Pow(2, float64(pgs+2))
	pages := math.Ceil(float64(length) / pageSize)

	cycles := (14 + latency) * pages
	cycles += (pulseWidth + release) * (float64(length) / 2)
	cycles += 5 * pages

	return uint64(cycles * clocks.RCPtoCPU), nil
}

// SetIOBusy marks the PI as busy and schedules the event that will clear the
// busy flag after the number of cycles.
func (pi *PI) SetIOBusy(cycles uint64) {
	pi.Regs[Status] |= StatusIOBusy
	pi.sched.Create(events.PI, pi.sched.Count+cycles)
}

// SetDMABusy marks the PI as busy with a DMA transfer. The busy flag is
// cleared and the interrupt raised after the number of cycles.
func (pi *PI) SetDMABusy(cycles uint64) {
	pi.Regs[Status] |= StatusDMABusy
	pi.sched.Create(events.PI, pi.sched.Count+cycles)
}

// DMABusy returns true if the PI is busy with a DMA transfer.
func (pi *PI) DMABusy() bool {
	return pi.Regs[Status]&StatusDMABusy == StatusDMABusy
}

// IOBusy returns true if the PI is busy with an IO write.
func (pi *PI) IOBusy() bool {
	return pi.Regs[Status]&StatusIOBusy == StatusIOBusy
}

func (pi *PI) dmaEvent() error {
	pi.Regs[Status] &^= StatusDMABusy | StatusIOBusy
	pi.Regs[Status] |= StatusInterrupt
	return nil
}
