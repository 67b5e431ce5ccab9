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

// Package paths contains functions to prepare paths to n64loader resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the user database.
//
//	d, err := paths.ResourcePath("", "N64-database_user.txt")
//
// The policy of ResourcePath() depends on how the program was built. For
// development builds the base resource path is ".n64loader" in the program's
// current directory. For release builds (built with the release tag) the
// user's config directory is used. The package uses os.UserConfigDir() from
// go standard library for this.
//
// In the example above, on a modern Linux system running a release build, the
// path returned will be:
//
//	/home/user/.config/n64loader/N64-database_user.txt
//
// The SavePath() function generates the path of the save-state file that
// accompanies an image.
package paths
