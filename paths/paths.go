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

package paths

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/n64loader/n64loader/curated"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The function takes care of creation of directories as required. The
// filename is not created.
func ResourcePath(subPth string, file string) (string, error) {
	basePath, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return path.Join(basePath, file), nil
}

// the directory, relative to the resource path, in which save-state files are
// kept
const saveDir = "saves/N64"

// SavePath returns the save-state path for the image with the short name. The
// short name is the image filename without directory or extension, as returned
// by cartridgeloader.Loader.ShortName(). The directory is relative to the
// resource path and is not created.
//
// For example, "Mario Kart 64 (U)" results in
// "saves/N64/Mario Kart 64 (U).sav"
func SavePath(shortName string) string {
	b := path.Base(filepath.ToSlash(strings.TrimSpace(shortName)))
	return path.Join(saveDir, b+".sav")
}
