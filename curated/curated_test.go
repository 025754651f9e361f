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

package curated_test

import (
	"errors"
	"testing"

	"github.com/gopher64/gopher64/curated"
	"github.com/gopher64/gopher64/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// plain errors are not curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Has(p, testError))
}

func TestFatal(t *testing.T) {
	e := curated.Fatalf("flashram: unknown command (%#08x)", uint32(0x12000000))
	test.ExpectSuccess(t, curated.IsFatal(e))
	test.ExpectSuccess(t, curated.Is(e, "flashram: unknown command (%#08x)"))
	test.ExpectEquality(t, e.Error(), "flashram: unknown command (0x12000000)")

	// fatality is visible through the chain
	f := curated.Errorf("pif: %v", e)
	test.ExpectSuccess(t, curated.IsFatal(f))
	test.ExpectFailure(t, curated.IsFatal(curated.Errorf(testError, "foo")))
	test.ExpectFailure(t, curated.IsFatal(errors.New("plain")))
	test.ExpectFailure(t, curated.IsFatal(nil))
}
