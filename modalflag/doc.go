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

// Package modalflag is a wrapper for the pflag package in the Go ecosystem.
// It allows for a more convenient method of handling program modes.
//
// With modalflag you first NewArgs() with the array of arguments and then
// Parse() with no arguments. For example (note that no error handling of the
// Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The reason for this difference is to allow effective parsing of modes and
// sub-modes.
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// Adding flags is similar to the pflag package. Flags are given on the command
// line with two dashes:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// A mode is a special command line argument that when specified, puts the
// program into a different mode of operation. Sub-modes are added with the
// AddSubModes() function. The first sub-mode is the default. All sub-mode
// comparisons are case insensitive.
//
//	md.AddSubModes("load", "lookup", "header")
//	md.Parse()
//	switch md.Mode() {
//	case "LOAD":
//		md.NewMode()
//		index := md.AddUint8("index", 0, "sink index")
//		p, err := md.Parse()
//		...
//	}
//
// Parsing stops at the first non-flag argument. Flags that appear after the
// mode selector belong to the next call to Parse().
package modalflag
