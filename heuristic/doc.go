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

// Package heuristic identifies an image from its header when the image can't
// be found in the database.
//
// Resolution happens in two stages. The first stage identifies the CIC
// variant from the checksum of the IPL3 boot code, with the region code
// deciding between the NTSC and PAL variants of some chips. The second stage
// looks up the cartridge identifier to find the save memory type and
// supported peripherals. A small number of identifiers need the region code
// or revision number to decide between titles that share an identifier.
//
// If the CIC variant can't be identified the second stage does not run, even
// though the cartridge identifier alone might be known.
package heuristic
