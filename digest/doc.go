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

// Package digest provides the hashes used to identify an image.
//
// MD5 is the hash used as the database key. It is a value type. Copying an
// MD5 value copies the running state and so Snapshot() can produce the digest
// of the data seen so far without disturbing the running hash:
//
//	var h digest.MD5
//	h.Update(header)
//	headerSum := h.Snapshot()
//	h.Update(remainder)
//	fileSum := h.Finalise()
//
// Fingerprint is a BLAKE3 hash of the same data. It is not used for lookup
// but is reported alongside the MD5 digests as a stronger content identifier.
package digest
