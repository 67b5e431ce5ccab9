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

// Package prefs facilitates the storage of preferential values in the
// n64loader system. It is intended to be used by the command line front-end
// and by any package that needs to persist a setting between runs.
//
// A preference value is one of the types Bool, String or Int. Values are
// added to a Disk instance with the Add() function:
//
//	var dbPath prefs.String
//	dsk, _ := prefs.NewDisk("preferences.yaml")
//	_ = dsk.Add("database.path", &dbPath)
//	_ = dsk.Load()
//
// Preferences are saved as a flat YAML mapping of key to value. Keys in the
// file that have not been added to the Disk are preserved when the file is
// saved.
//
// Values can be overridden for a single run of the program by pushing a group
// of values to the command line stack before calling Load(). The format of
// the group is:
//
//	key::value; key::value
package prefs
