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

package digest

import (
	"crypto/md5"
	"encoding"
	"encoding/hex"
	"fmt"
	"hash"
)

// Sum is an MD5 digest.
type Sum [md5.Size]byte

// String returns the digest as 32 lowercase hexadecimal characters. This is
// the form used as a database key.
func (s Sum) String() string {
	return hex.EncodeToString(s[:])
}

// MD5 is an incremental MD5 hash that can be copied. The zero value is ready
// for use.
type MD5 struct {
	// marshalled state of the running hash. the slice is replaced, never
	// modified, on every update so copies of an MD5 value never share mutable
	// state
	state []byte

	finalised bool
	sum       Sum
}

// restore returns a hash.Hash in the state recorded by the MD5 value.
func (h MD5) restore() hash.Hash {
	d := md5.New()
	if h.state != nil {
		// the state was produced by MarshalBinary() of the same
		// implementation so an error here is a programming error
		if err := d.(encoding.BinaryUnmarshaler).UnmarshalBinary(h.state); err != nil {
			panic(fmt.Sprintf("digest: %v", err))
		}
	}
	return d
}

// Update adds data to the running hash. Data added after Finalise() has been
// called is ignored.
func (h *MD5) Update(data []byte) {
	if h.finalised {
		return
	}

	d := h.restore()
	d.Write(data)

	s, err := d.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("digest: %v", err))
	}
	h.state = s
}

// Snapshot returns the digest of the data added so far. The running hash is
// unaffected and further calls to Update() are allowed.
func (h MD5) Snapshot() Sum {
	if h.finalised {
		return h.sum
	}

	var s Sum
	copy(s[:], h.restore().Sum(nil))
	return s
}

// Finalise returns the digest of all data added and ends the hash. Subsequent
// calls return the same value.
func (h *MD5) Finalise() Sum {
	if !h.finalised {
		h.sum = h.Snapshot()
		h.finalised = true
		h.state = nil
	}
	return h.sum
}
