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

package cartridgeloader

import (
	"path/filepath"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised as N64
// images. The list is used to choose a file from inside an archive.
var FileExtensions = [...]string{".Z64", ".V64", ".N64", ".NDD", ".ROM", ".BIN"}

// ArchiveExtensions is the list of file extensions recognised as archives.
var ArchiveExtensions = [...]string{".ZIP", ".7Z"}

// CompressedExtensions is the list of file extensions recognised as
// compressed images.
var CompressedExtensions = [...]string{".ZST", ".LZ4"}

// IsImage returns true if the filename has a recognised image extension.
func IsImage(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
