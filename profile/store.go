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

package profile

// Field identifies a value in a Store.
type Field int

// List of valid Field values.
const (
	FieldSystem Field = iota
	FieldCIC
	FieldControllerPak
	FieldRumblePak
	FieldTransferPak
	FieldRTC
	FieldMemory
)

func (f Field) String() string {
	switch f {
	case FieldSystem:
		return "system"
	case FieldCIC:
		return "cic"
	case FieldControllerPak:
		return "cpak"
	case FieldRumblePak:
		return "rpak"
	case FieldTransferPak:
		return "tpak"
	case FieldRTC:
		return "rtc"
	case FieldMemory:
		return "memory"
	}
	return "unknown field"
}

// Store is the destination of a resolved profile.
type Store interface {
	// AutoDetect returns true if resolved profiles should be applied
	AutoDetect() bool

	// SetField writes a single value. Each write is independent; there is no
	// transaction covering a complete Profile
	SetField(field Field, value uint32)
}

func boolField(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// ApplyBoot writes the fields required to boot the title: the system type and
// CIC variant. It does not check the AutoDetect() value.
func ApplyBoot(store Store, p Profile) {
	store.SetField(FieldSystem, uint32(p.System))
	store.SetField(FieldCIC, uint32(p.CIC))
}

// ApplyCartridge writes the peripheral and save memory fields. It does not
// check the AutoDetect() value.
func ApplyCartridge(store Store, p Profile) {
	store.SetField(FieldControllerPak, boolField(p.Peripherals.ControllerPak))
	store.SetField(FieldRumblePak, boolField(p.Peripherals.RumblePak))
	store.SetField(FieldTransferPak, boolField(p.Peripherals.TransferPak))
	store.SetField(FieldRTC, boolField(p.Peripherals.RTC))
	store.SetField(FieldMemory, uint32(p.Memory))
}

// Apply writes the complete profile to the store if the store's AutoDetect()
// value is true. Returns true if the profile was written.
func Apply(store Store, p Profile) bool {
	if !store.AutoDetect() {
		return false
	}
	ApplyBoot(store, p)
	ApplyCartridge(store, p)
	return true
}
