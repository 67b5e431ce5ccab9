// This file is part of n64loader.
//
// n64loader is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64loader is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64loader.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as fmt.Errorf().
// The pattern is remembered and is what distinguishes one curated error from
// another:
//
//	e := curated.Errorf("ingest: %v", "rom too short")
//
//	if curated.Is(e, "ingest: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the chain of curated errors that were used as placeholder values:
//
//	e := curated.Errorf("database: %v", err)
//	f := curated.Errorf("ingest: %v", e)
//
//	curated.Has(f, "database: %v") // true
//	curated.Is(f, "database: %v")  // false
//
// The Error() string of a curated error removes duplicate adjacent parts of
// the chain. This means a package can wrap an error with its own prefix
// without worrying whether the error it received already carries that prefix.
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library can find uncurated errors (for example
// os.ErrNotExist) that were passed as placeholder values.
package curated
