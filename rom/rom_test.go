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

package rom_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/n64loader/n64loader/curated"
	"github.com/n64loader/n64loader/rom"
	"github.com/n64loader/n64loader/test"
)

func randomData(n int) []byte {
	r := rand.New(rand.NewSource(1))
	d := make([]byte, n)
	for i := range d {
		d[i] = byte(r.Intn(256))
	}
	return d
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		data   []byte
		format rom.Format
	}{
		{[]byte{0x80, 0x37, 0x12, 0x40}, rom.FormatBigEndian},
		{[]byte{0x80, 0x27, 0x07, 0x40}, rom.FormatBigEndian},
		{[]byte{0x37, 0x80, 0x40, 0x12}, rom.FormatByteSwapped},
		{[]byte{0x27, 0x80, 0x40, 0x07}, rom.FormatByteSwapped},
		{[]byte{0x40, 0x12, 0x37, 0x80}, rom.FormatLittleEndian},
		{[]byte{0x40, 0x07, 0x27, 0x80}, rom.FormatLittleEndian},
		{[]byte{0x00, 0x00, 0x00, 0x00}, rom.FormatUnknown},
		{[]byte{0x80, 0x37, 0x12}, rom.FormatUnknown},
		{nil, rom.FormatUnknown},
	}

	for i, tt := range tests {
		test.ExpectEquality(t, rom.DetectFormat(tt.data), tt.format, i)
	}
}

func TestNormaliseRoundTrip(t *testing.T) {
	formats := []rom.Format{rom.FormatUnknown, rom.FormatBigEndian, rom.FormatByteSwapped, rom.FormatLittleEndian}

	for _, f := range formats {
		original := randomData(4096)
		data := bytes.Clone(original)

		rom.Normalise(data, f)
		switch f {
		case rom.FormatBigEndian, rom.FormatUnknown:
			test.ExpectSuccess(t, bytes.Equal(data, original), f)
		default:
			test.ExpectFailure(t, bytes.Equal(data, original), f)
		}

		rom.Denormalise(data, f)
		test.ExpectSuccess(t, bytes.Equal(data, original), f)
	}
}

func TestNormaliseGroups(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	rom.Normalise(data, rom.FormatByteSwapped)
	test.ExpectSuccess(t, bytes.Equal(data, []byte{1, 0, 3, 2, 5, 4, 7, 6}))

	data = []byte{0, 1, 2, 3, 4, 5, 6, 7}
	rom.Normalise(data, rom.FormatLittleEndian)
	test.ExpectSuccess(t, bytes.Equal(data, []byte{3, 2, 1, 0, 7, 6, 5, 4}))

	// trailing partial group is untouched
	data = []byte{0, 1, 2, 3, 4, 5}
	rom.Normalise(data, rom.FormatLittleEndian)
	test.ExpectSuccess(t, bytes.Equal(data, []byte{3, 2, 1, 0, 4, 5}))
}

func TestNormaliseChunked(t *testing.T) {
	formats := []rom.Format{rom.FormatByteSwapped, rom.FormatLittleEndian}
	splits := [][]int{
		{4096},
		{4, 4092},
		{1024, 1024, 2048},
		{12, 400, 3680, 4},
	}

	for _, f := range formats {
		whole := randomData(4096)
		rom.Normalise(whole, f)

		for _, split := range splits {
			chunked := randomData(4096)
			offset := 0
			for _, n := range split {
				rom.Normalise(chunked[offset:offset+n], f)
				offset += n
			}
			test.ExpectSuccess(t, bytes.Equal(whole, chunked), f, split)
		}
	}
}

func TestGranularity(t *testing.T) {
	test.ExpectEquality(t, rom.FormatByteSwapped.Granularity(), 2)
	test.ExpectEquality(t, rom.FormatLittleEndian.Granularity(), 4)
	test.ExpectEquality(t, rom.FormatBigEndian.Granularity(), 1)
	test.ExpectEquality(t, rom.FormatUnknown.Granularity(), 1)
}

func TestParseHeader(t *testing.T) {
	data := make([]byte, rom.HeaderSize)
	copy(data, []byte{0x80, 0x37, 0x12, 0x40})
	copy(data[0x20:], "ZELDA MAJORA'S MASK ")
	copy(data[0x3b:], "NZS")
	data[0x3e] = 'E'
	data[0x3f] = 1

	// two words in the boot code region. the sum is made of little-endian
	// decoded words
	binary.BigEndian.PutUint32(data[0x40:], 0x01020304)
	binary.BigEndian.PutUint32(data[0xffc:], 0xffffffff)

	h, err := rom.ParseHeader(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Title, "ZELDA MAJORA'S MASK")
	test.ExpectEquality(t, h.ID(), "NZS")
	test.ExpectEquality(t, h.Region, byte('E'))
	test.ExpectEquality(t, h.Revision, byte(1))
	test.ExpectEquality(t, h.Checksum, uint64(0x04030201)+uint64(0xffffffff))
	test.ExpectEquality(t, rom.IPLChecksum(data), h.Checksum)

	// header data outside the boot code region does not contribute
	data[0x3f] = 2
	test.ExpectEquality(t, rom.IPLChecksum(data), h.Checksum)
}

func TestParseHeaderShort(t *testing.T) {
	_, err := rom.ParseHeader(make([]byte, rom.HeaderSize-1))
	test.ExpectFailure(t, err)
}

func TestParseFormat(t *testing.T) {
	for s, f := range map[string]rom.Format{
		"z64":  rom.FormatBigEndian,
		"V64":  rom.FormatByteSwapped,
		".n64": rom.FormatLittleEndian,
	} {
		v, err := rom.ParseFormat(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, v, f, s)
	}

	_, err := rom.ParseFormat("bin")
	test.ExpectSuccess(t, curated.Is(err, rom.UnknownFormat))
}
