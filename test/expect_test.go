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

package test_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gopher64/gopher64/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, uint8(0x85), 0x80|0x05)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, "mempak", "rumblepak")
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10.5, 10.0, 0.1)
	test.ExpectApproximate(t, 93750000, 93750000, 0.0)
}

func TestExpectImplements(t *testing.T) {
	var w strings.Builder
	test.ExpectImplements(t, &w, fmt.Stringer(nil))
}

func TestCompareWriter(t *testing.T) {
	cw := &test.CompareWriter{}
	cw.Write([]byte("pif: "))
	cw.Write([]byte("channel 0"))
	test.ExpectSuccess(t, cw.Compare("pif: channel 0"))
	cw.Clear()
	test.ExpectSuccess(t, cw.Compare(""))
}
