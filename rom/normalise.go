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

package rom

// Normalise rewrites data in place from the specified format into big-endian
// order. Big-endian and unknown data is left as it is.
//
// If the length of data is not a multiple of the format's granularity then the
// trailing partial group is left untouched.
func Normalise(data []byte, format Format) {
	switch format {
	case FormatByteSwapped:
		for i := 0; i+1 < len(data); i += 2 {
			data[i], data[i+1] = data[i+1], data[i]
		}
	case FormatLittleEndian:
		for i := 0; i+3 < len(data); i += 4 {
			data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
		}
	}
}

// Denormalise rewrites big-endian data in place into the specified format. It
// is the inverse of Normalise().
func Denormalise(data []byte, format Format) {
	// both transformations are their own inverse
	Normalise(data, format)
}
