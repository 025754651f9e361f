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

// Package clocks defines the constant values that define the speed of the
// main clocks in the console.
//
// Event delays in the emulation are measured in cycles of the CPU clock. The
// RCP clock is needed when converting the timing of PI transfers, which are
// measured by the RCP, to CPU cycles.
package clocks

// clock speeds in MHz
const (
	CPU = 93.75
	RCP = 62.5
)

// CPUHz is the CPU clock rate in cycles per second.
const CPUHz = 93750000

// RCPtoCPU is the ratio of the CPU clock to the RCP clock.
const RCPtoCPU = CPU / RCP

// Seconds returns the number of cycles in the specified number of seconds for
// the clock rate.
func Seconds(clockRate int, seconds float64) uint64 {
	return uint64(float64(clockRate) * seconds)
}
