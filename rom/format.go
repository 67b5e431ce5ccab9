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

import (
	"encoding/binary"
	"strings"

	"github.com/n64loader/n64loader/curated"
)

// Format describes the byte order of an image.
type Format int

// List of valid Format values.
const (
	FormatUnknown Format = iota
	FormatBigEndian
	FormatByteSwapped
	FormatLittleEndian
)

func (f Format) String() string {
	switch f {
	case FormatBigEndian:
		return "big-endian (z64)"
	case FormatByteSwapped:
		return "byte-swapped (v64)"
	case FormatLittleEndian:
		return "little-endian (n64)"
	}
	return "unknown"
}

// UnknownFormat is the error pattern returned by ParseFormat().
const UnknownFormat = "rom: unknown byte order (%s)"

// ParseFormat returns the Format named by the conventional file extension for
// that byte order: "z64", "v64" or "n64". Case and a leading dot are ignored.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "z64":
		return FormatBigEndian, nil
	case "v64":
		return FormatByteSwapped, nil
	case "n64":
		return FormatLittleEndian, nil
	}
	return FormatUnknown, curated.Errorf(UnknownFormat, s)
}

// magic values are the first four bytes of an image read as a little-endian
// word. the first value in each pair is for cartridge images and the second
// is for 64DD disk images
var magic = map[uint32]Format{
	0x40123780: FormatBigEndian,
	0x40072780: FormatBigEndian,
	0x12408037: FormatByteSwapped,
	0x07408027: FormatByteSwapped,
	0x80371240: FormatLittleEndian,
	0x80270740: FormatLittleEndian,
}

// MagicSize is the number of bytes required by DetectFormat().
const MagicSize = 4

// DetectFormat returns the byte order of the image beginning with data.
// Unrecognised data, including data shorter than MagicSize, is FormatUnknown.
func DetectFormat(data []byte) Format {
	if len(data) < MagicSize {
		return FormatUnknown
	}
	if f, ok := magic[binary.LittleEndian.Uint32(data)]; ok {
		return f
	}
	return FormatUnknown
}

// Granularity returns the size of the byte group that is transformed as a
// unit by Normalise() for the format.
func (f Format) Granularity() int {
	switch f {
	case FormatByteSwapped:
		return 2
	case FormatLittleEndian:
		return 4
	}
	return 1
}
