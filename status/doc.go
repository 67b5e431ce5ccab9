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

// Package status implements the configuration bit-field read by the cartridge
// interface. The profile of the ingested image is written into the bit-field
// with the profile.Store interface.
//
// The bit-field is made up of Words 32-bit registers. Field positions are
// given as inclusive bit ranges counting from bit 0 of the first register:
//
//	autodetect  [64]      0 = on
//	cic         [68:65]
//	cpak        [71]
//	rpak        [72]
//	tpak        [73]
//	rtc         [74]
//	memory      [77:75]
//	system      [80:79]
//
// The bit-field can be saved to and loaded from disk. The file is CBOR
// encoded.
package status
