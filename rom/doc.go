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

// Package rom deals with the raw bytes of an N64 cartridge or 64DD disk image.
//
// Images are found in three byte orders. DetectFormat() classifies the order
// from the first four bytes of the image and Normalise() rewrites a buffer in
// place into the canonical big-endian (z64) order. Normalise() can be applied
// to successive chunks of an image so long as no chunk boundary splits a
// four byte group. Chunks with a length that is a multiple of four always
// satisfy this.
//
// ParseHeader() extracts the fields used for heuristic identification of an
// image from the first normalised chunk.
package rom
