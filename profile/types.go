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

import (
	"fmt"
	"strings"
)

// SystemType is the video timing of the title.
type SystemType int

// List of valid SystemType values. The value is written to the store.
const (
	NTSC SystemType = iota
	PAL
)

func (s SystemType) String() string {
	switch s {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return fmt.Sprintf("system(%d)", int(s))
}

// MemoryType is the save memory fitted to the cartridge.
type MemoryType int

// List of valid MemoryType values. The value is written to the store.
const (
	MemoryNone MemoryType = iota
	MemoryEEPROM512
	MemoryEEPROM2k
	MemorySRAM32k
	MemorySRAM96k
	MemoryFlash128k
)

func (m MemoryType) String() string {
	switch m {
	case MemoryNone:
		return "none"
	case MemoryEEPROM512:
		return "EEPROM 512B"
	case MemoryEEPROM2k:
		return "EEPROM 2KB"
	case MemorySRAM32k:
		return "SRAM 32KB"
	case MemorySRAM96k:
		return "SRAM 96KB"
	case MemoryFlash128k:
		return "Flash 128KB"
	}
	return fmt.Sprintf("memory(%d)", int(m))
}

// CIC is the boot authentication chip variant.
type CIC int

// List of valid CIC values. The order of the list is significant because the
// value is written to the store.
const (
	CIC6101 CIC = iota
	CIC6102
	CIC7101
	CIC7102
	CIC6103
	CIC7103
	CIC6105
	CIC7105
	CIC6106
	CIC7106
	CIC8303
	CIC8401
	CIC5167
	CICDDUS
)

func (c CIC) String() string {
	switch c {
	case CIC6101:
		return "CIC-NUS-6101"
	case CIC6102:
		return "CIC-NUS-6102"
	case CIC7101:
		return "CIC-NUS-7101"
	case CIC7102:
		return "CIC-NUS-7102"
	case CIC6103:
		return "CIC-NUS-6103"
	case CIC7103:
		return "CIC-NUS-7103"
	case CIC6105:
		return "CIC-NUS-6105"
	case CIC7105:
		return "CIC-NUS-7105"
	case CIC6106:
		return "CIC-NUS-6106"
	case CIC7106:
		return "CIC-NUS-7106"
	case CIC8303:
		return "CIC-NUS-8303"
	case CIC8401:
		return "CIC-NUS-8401"
	case CIC5167:
		return "CIC-NUS-5167"
	case CICDDUS:
		return "CIC-NUS-DDUS"
	}
	return fmt.Sprintf("cic(%d)", int(c))
}

// Peripherals that a title supports. The fields are independent.
type Peripherals struct {
	ControllerPak bool
	RumblePak     bool
	TransferPak   bool
	RTC           bool
}

func (p Peripherals) String() string {
	var s []string
	if p.ControllerPak {
		s = append(s, "cpak")
	}
	if p.RumblePak {
		s = append(s, "rpak")
	}
	if p.TransferPak {
		s = append(s, "tpak")
	}
	if p.RTC {
		s = append(s, "rtc")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// Profile is the resolved configuration for a title.
type Profile struct {
	System      SystemType
	CIC         CIC
	Memory      MemoryType
	Peripherals Peripherals
}

// Default returns the profile that database records are built upon.
func Default() Profile {
	return Profile{
		System: NTSC,
		CIC:    CIC6102,
		Memory: MemoryNone,
	}
}

func (p Profile) String() string {
	return fmt.Sprintf("system: %s, cic: %s, save: %s, peripherals: %s", p.System, p.CIC, p.Memory, p.Peripherals)
}
