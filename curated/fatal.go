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

package curated

// Fatalf creates a new curated error that is also marked as being fatal. Fatal
// errors are returned when the emulated hardware is asked to do something it
// is not capable of. For example, a FlashRAM erase command when the device is
// not in an erase mode.
//
// The error is otherwise the same as an error created with Errorf() and the
// Is() and Has() functions work as normal.
func Fatalf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
		fatal:   true,
	}
}

// IsFatal returns true if the error was created by Fatalf(), or if a fatal
// error occurs anywhere in the error chain.
func IsFatal(err error) bool {
	if !IsAny(err) {
		return false
	}

	er := err.(curated)
	if er.fatal {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(curated); ok {
			if IsFatal(e) {
				return true
			}
		}
	}

	return false
}
