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
	"fmt"
	"strings"

	"github.com/n64loader/n64loader/curated"
)

// Offsets into the normalised image.
const (
	offsetTitle    = 0x20
	offsetCartID   = 0x3b
	offsetRegion   = 0x3e
	offsetRevision = 0x3f
	offsetIPL      = 0x40
	endIPL         = 0x1000

	titleLen  = 20
	cartIDLen = 3
)

// HeaderSize is the minimum number of normalised bytes required by
// ParseHeader().
const HeaderSize = endIPL

// Header is the evidence used to identify an image when it can't be found in
// the database.
type Header struct {
	// internal name of the image. used for diagnostics only
	Title string

	// three character cartridge identifier. the first character is the
	// media category and the remaining two the unique game code
	CartID [cartIDLen]byte

	// destination (region) code
	Region byte

	// revision number of the image
	Revision byte

	// fingerprint of the IPL3 boot code. the boot code differs between CIC
	// variants so the checksum identifies the variant
	Checksum uint64
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] region %c rev %d ipl3 %016X", h.Title, h.ID(), h.Region, h.Revision, h.Checksum)
}

// ID returns the cartridge identifier as a string.
func (h Header) ID() string {
	return string(h.CartID[:])
}

// ParseHeader extracts the Header from the first chunk of a normalised
// image. The data must be at least HeaderSize bytes long.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, curated.Errorf("rom: header requires %d bytes (have %d)", HeaderSize, len(data))
	}

	var h Header

	h.Title = strings.TrimRight(string(data[offsetTitle:offsetTitle+titleLen]), " \x00")
	copy(h.CartID[:], data[offsetCartID:offsetCartID+cartIDLen])
	h.Region = data[offsetRegion]
	h.Revision = data[offsetRevision]
	h.Checksum = IPLChecksum(data)

	return h, nil
}

// IPLChecksum sums the words of the IPL3 boot code region of the normalised
// image. The checksum is a simple sum, not a CRC, accumulated into 64 bits.
//
// Words are decoded little-endian from the big-endian image. The known
// checksum values were tabulated this way and so the decoding must match.
func IPLChecksum(data []byte) uint64 {
	var sum uint64
	for i := offsetIPL; i+4 <= endIPL && i+4 <= len(data); i += 4 {
		sum += uint64(binary.LittleEndian.Uint32(data[i:]))
	}
	return sum
}
