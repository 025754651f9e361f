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

// Package statsview serves runtime statistics of the emulator over HTTP. It
// is only built when the statsview build tag is present. Without it Launch()
// does nothing and Available() returns false.
//
// The statistics are provided by "github.com/go-echarts/statsview" and are
// viewable at:
//
//	http://localhost:12664/debug/statsview
package statsview

// Address of the statsview server.
const Address = "localhost:12664"
