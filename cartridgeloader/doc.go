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

// Package cartridgeloader is used to specify the image that is to be
// ingested.
//
// The Loader type names the image and the Open() function returns a Source
// that can be read sequentially and whose size is known in advance. Images
// can be loaded from a local file or over HTTP:
//
//	cl := cartridgeloader.NewLoader("roms/Super Mario 64 (U).z64")
//	src, err := cl.Open()
//
// Local files may be compressed (zstd or lz4) or stored in an archive (zip or
// 7z). Compressed, archived and HTTP images are decompressed or downloaded
// into memory before the Source is returned. Plain local files are streamed.
package cartridgeloader
