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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is used to identify the error. The Is() function checks whether
// an error was created with a specific pattern and the Has() function checks
// whether the pattern occurs anywhere in the error chain:
//
//	e := curated.Errorf("sram: address out of range (%#04x)", addr)
//	f := curated.Errorf("cart: %v", e)
//
//	curated.Is(f, "sram: address out of range (%#04x)")  // false
//	curated.Has(f, "sram: address out of range (%#04x)") // true
//
// Patterns that are tested for should be stored as a const string.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means that
// wrapping an error with the same prefix at each level of a call stack does
// not result in a message like "pif: pif: pif: no device".
//
// Fatalf() creates a curated error that is also marked as fatal. Fatal errors
// indicate that the emulated hardware was asked to do something that it can
// not do, for example a FlashRAM DMA of an unsupported length. The IsFatal()
// function tests for fatal errors anywhere in the chain. The emulation should
// stop when it sees a fatal error but the decision of how to stop is left to
// the caller.
package curated
