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

// Package database resolves a profile from the MD5 digest of an image by
// searching one or more text databases.
//
// Each database is a text file with one record per line:
//
//	<32 character lowercase hex MD5> <tag>|<tag>|...
//
// For example:
//
//	ab7d8a4d6ee6da7de7ab07862a6ef7ee sram32k|rpak|cic6105
//
// Lines that don't begin with a digest, such as comments, are never matched.
// Tags are case insensitive and their order is only significant when two
// tags of the same category appear in a record, in which case the later tag
// wins. Unrecognised tags are logged and ignored.
//
// Sources are searched in the order they are given to New(). The first
// matching line of the first source containing the digest is used. A source
// that can't be opened is treated as empty.
package database
