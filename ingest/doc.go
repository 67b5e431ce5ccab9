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

// Package ingest streams an N64 image to a sink and resolves the profile of
// the image on the way through.
//
// The image is read in chunks of ChunkSize bytes. The byte order of the image
// is detected from the first chunk and every chunk is normalised to big-endian
// order before it is hashed and forwarded to the sink. The MD5 digest of the
// first chunk (the header digest) and of the whole image (the file digest)
// are both computed in the one pass.
//
// The profile of the image is resolved in order of preference:
//
//	database lookup of the header digest
//	database lookup of the file digest
//	heuristic resolution from the image header
//
// The resolved profile is written to the profile.Store if the store has
// auto-detection enabled. Bytes are forwarded to the sink regardless of how,
// or whether, the profile is resolved.
//
// A Pipeline may be used for any number of ingestions but only one at a time.
package ingest
