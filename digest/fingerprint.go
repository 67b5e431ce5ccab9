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
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint is a running BLAKE3 hash of an image.
type Fingerprint struct {
	h *blake3.Hasher
}

// NewFingerprint is the preferred method of initialisation for the
// Fingerprint type.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{
		h: blake3.New(),
	}
}

// Write implements the io.Writer interface.
func (fp *Fingerprint) Write(p []byte) (int, error) {
	return fp.h.Write(p)
}

// String returns the fingerprint of the data written so far as lowercase
// hexadecimal.
func (fp *Fingerprint) String() string {
	return hex.EncodeToString(fp.h.Sum(nil))
}
