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

package pi_test

import (
	"testing"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/hardware/events"
	"github.com/gopher64/gopher64/hardware/pi"
	"github.com/gopher64/gopher64/test"
)

func TestCalculateCycles(t *testing.T) {
	p := pi.NewPI(events.NewScheduler())

	// all registers zero: latency, pulse width and release are one cycle
	// each and the page size is four bytes
	c, err := p.CalculateCycles(2, 4)
	test.ExpectSuccess(t, err)
	// ((14+1)*1 + (1+1)*2 + 5*1) * 1.5
	test.ExpectEquality(t, c, uint64(36))

	c, err = p.CalculateCycles(2, 8)
	test.ExpectSuccess(t, err)
	// ((14+1)*2 + (1+1)*4 + 5*2) * 1.5
	test.ExpectEquality(t, c, uint64(72))

	p.Regs[pi.BsdDom1Lat] = 0x40
	p.Regs[pi.BsdDom1Pwd] = 0x12
	p.Regs[pi.BsdDom1Pgs] = 0x07
	p.Regs[pi.BsdDom1Rls] = 0x03
	c, err = p.CalculateCycles(1, 128)
	test.ExpectSuccess(t, err)
	// ((14+65)*1 + (19+4)*64 + 5*1) * 1.5
	test.ExpectEquality(t, c, uint64(2334))

	_, err = p.CalculateCycles(3, 4)
	test.ExpectSuccess(t, curated.IsFatal(err))
}

func TestIOBusy(t *testing.T) {
	sched := events.NewScheduler()
	p := pi.NewPI(sched)

	test.ExpectFailure(t, p.IOBusy())
	p.SetIOBusy(36)
	test.ExpectSuccess(t, p.IOBusy())

	test.ExpectSuccess(t, sched.Advance(35))
	test.ExpectSuccess(t, p.IOBusy())
	test.ExpectSuccess(t, sched.Advance(1))
	test.ExpectFailure(t, p.IOBusy())
	test.ExpectEquality(t, p.Regs[pi.Status]&pi.StatusInterrupt, uint32(pi.StatusInterrupt))
}

func TestDMABusy(t *testing.T) {
	sched := events.NewScheduler()
	p := pi.NewPI(sched)

	p.SetDMABusy(100)
	test.ExpectSuccess(t, p.DMABusy())
	test.ExpectFailure(t, p.IOBusy())

	test.ExpectSuccess(t, sched.Advance(100))
	test.ExpectFailure(t, p.DMABusy())
}
