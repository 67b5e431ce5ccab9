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

package heuristic

import (
	"github.com/n64loader/n64loader/profile"
)

// cartridge is the save memory and peripherals of a title.
type cartridge struct {
	Memory      profile.MemoryType
	Peripherals profile.Peripherals
}

// exception decides the cartridge from the region code and revision number.
type exception func(region byte, revision byte) cartridge

const regionJapan = 'J'

// exceptions are identifiers shared by titles with different hardware, or by
// revisions of a title with different hardware.
var exceptions = map[string]exception{
	// International Track & Field 2000 and Ganbare! Nippon! Olympics 2000
	"N3H": func(region byte, _ byte) cartridge {
		if region == regionJapan {
			return cartridge{Memory: profile.MemorySRAM32k}
		}
		return cartridge{Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}
	},

	// Castlevania and Akumajou Dracula Mokushiroku (J)
	"ND3": func(region byte, _ byte) cartridge {
		if region == regionJapan {
			return cartridge{Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}}
		}
		return cartridge{Peripherals: profile.Peripherals{ControllerPak: true}}
	},

	// Castlevania: Legacy of Darkness and Akumajou Dracula Mokushiroku
	// Gaiden: Legend of Cornell (J)
	"ND4": func(region byte, _ byte) cartridge {
		if region == regionJapan {
			return cartridge{Peripherals: profile.Peripherals{RumblePak: true}}
		}
		return cartridge{Peripherals: profile.Peripherals{ControllerPak: true}}
	},

	// Super Mario 64. revision 3 of the Japanese release is the Shindou
	// edition with rumble support
	"NSM": func(region byte, revision byte) cartridge {
		c := cartridge{Memory: profile.MemoryEEPROM512}
		c.Peripherals.RumblePak = region == regionJapan && revision == 3
		return c
	},

	// Wave Race 64. revision 2 of the Japanese release is the Shindou edition
	"NWR": func(region byte, revision byte) cartridge {
		c := cartridge{Memory: profile.MemoryEEPROM512}
		c.Peripherals.ControllerPak = true
		c.Peripherals.RumblePak = region == regionJapan && revision == 2
		return c
	},

	// Kirby 64: The Crystal Shards. early Japanese revisions use SRAM
	"NK4": func(region byte, revision byte) cartridge {
		c := cartridge{Memory: profile.MemoryEEPROM2k}
		if region == regionJapan && revision < 2 {
			c.Memory = profile.MemorySRAM32k
		}
		c.Peripherals.RumblePak = true
		return c
	},

	// Dark Rift and Space Dynamites (J)
	"NDK": func(region byte, _ byte) cartridge {
		if region == regionJapan {
			return cartridge{Memory: profile.MemoryEEPROM512}
		}
		return cartridge{}
	},

	// Wetrix
	"NWT": func(region byte, _ byte) cartridge {
		if region == regionJapan {
			return cartridge{Memory: profile.MemoryEEPROM512}
		}
		return cartridge{Peripherals: profile.Peripherals{ControllerPak: true}}
	},
}

// identifyCartridge returns the cartridge for the identifier. Returns false
// if the identifier is not recognised.
func identifyCartridge(id string, region byte, revision byte) (cartridge, bool) {
	if ex, ok := exceptions[id]; ok {
		return ex(region, revision), true
	}
	c, ok := cartridges[id]
	return c, ok
}
