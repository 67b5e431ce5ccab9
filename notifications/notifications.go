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

package notifications

// Notice describes events that somehow change the presentation of the
// loader.
type Notice string

// List of defined notifications.
const (
	// heuristic resolution could not identify the CIC variant of the image
	NotifyUnknownCIC Notice = "NotifyUnknownCIC"

	// heuristic resolution identified the CIC variant of the image but not
	// the cartridge. the save type has not been determined
	NotifyUnknownCartID Notice = "NotifyUnknownCartID"
)

// Message returns the text that should be shown to the user for the notice.
func (n Notice) Message() string {
	switch n {
	case NotifyUnknownCIC:
		return "Auto-detect failed:\nUnknown CIC type.\nN64-database.txt needed?"
	case NotifyUnknownCartID:
		return "Auto-detect failed:\nUnknown Cart ID,\nSave type not determined.\nN64-database.txt needed?"
	}
	return string(n)
}

// Notify is used for direct communication between the loader and the user
// interface.
type Notify interface {
	Notify(notice Notice) error
}
