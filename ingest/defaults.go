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

package ingest

import (
	"github.com/n64loader/n64loader/notifications"
	"github.com/n64loader/n64loader/profile"
)

// used when Config.Store is nil. profiles are resolved but never written
type disabledStore struct{}

func (disabledStore) AutoDetect() bool               { return false }
func (disabledStore) SetField(profile.Field, uint32) {}

type noProgress struct{}

func (noProgress) Progress(string, int64, int64) {}
func (noProgress) Clear()                        {}

type noNotify struct{}

func (noNotify) Notify(notifications.Notice) error { return nil }
