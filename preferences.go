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

package main

import (
	"github.com/n64loader/n64loader/curated"
	"github.com/n64loader/n64loader/paths"
	"github.com/n64loader/n64loader/prefs"
)

// file names in the resource directory.
const (
	prefsFile        = "preferences.yaml"
	databaseFile     = "N64-database.txt"
	userDatabaseFile = "N64-database_user.txt"
	statusFile       = "status.cbor"
)

// Preferences of the loader.
type Preferences struct {
	dsk *prefs.Disk

	AutoDetect   prefs.Bool
	Database     prefs.String
	UserDatabase prefs.String
	Status       prefs.String
	Index        prefs.Int
}

func newPreferences() (*Preferences, error) {
	p := &Preferences{}

	var err error
	var pth string

	if pth, err = paths.ResourcePath("", databaseFile); err != nil {
		return nil, err
	}
	_ = p.Database.Set(pth)

	if pth, err = paths.ResourcePath("", userDatabaseFile); err != nil {
		return nil, err
	}
	_ = p.UserDatabase.Set(pth)

	if pth, err = paths.ResourcePath("", statusFile); err != nil {
		return nil, err
	}
	_ = p.Status.Set(pth)

	_ = p.AutoDetect.Set(true)

	p.Index.SetHookPre(func(v prefs.Value) error {
		if i := v.(int); i < 0 || i > 255 {
			return curated.Errorf("index must be between 0 and 255 (%d)", i)
		}
		return nil
	})

	if pth, err = paths.ResourcePath("", prefsFile); err != nil {
		return nil, err
	}
	if p.dsk, err = prefs.NewDisk(pth); err != nil {
		return nil, err
	}

	if err = p.dsk.Add("n64.autodetect", &p.AutoDetect); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("n64.database", &p.Database); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("n64.userdatabase", &p.UserDatabase); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("n64.status", &p.Status); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("n64.index", &p.Index); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
