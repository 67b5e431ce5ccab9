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

package database

import (
	"github.com/n64loader/n64loader/profile"
)

// effect of a tag on the profile being built.
type effect func(p *profile.Profile)

func memory(m profile.MemoryType) effect {
	return func(p *profile.Profile) { p.Memory = m }
}

func system(s profile.SystemType) effect {
	return func(p *profile.Profile) { p.System = s }
}

func cic(c profile.CIC) effect {
	return func(p *profile.Profile) { p.CIC = c }
}

// tags maps the lowercase form of every recognised tag to its effect.
var tags = map[string]effect{
	"eeprom512": memory(profile.MemoryEEPROM512),
	"eeprom2k":  memory(profile.MemoryEEPROM2k),
	"sram32k":   memory(profile.MemorySRAM32k),
	"sram96k":   memory(profile.MemorySRAM96k),
	"flash128k": memory(profile.MemoryFlash128k),

	"ntsc": system(profile.NTSC),
	"pal":  system(profile.PAL),

	"cpak": func(p *profile.Profile) { p.Peripherals.ControllerPak = true },
	"rpak": func(p *profile.Profile) { p.Peripherals.RumblePak = true },
	"tpak": func(p *profile.Profile) { p.Peripherals.TransferPak = true },
	"rtc":  func(p *profile.Profile) { p.Peripherals.RTC = true },

	"cic6101": cic(profile.CIC6101),
	"cic6102": cic(profile.CIC6102),
	"cic6103": cic(profile.CIC6103),
	"cic6105": cic(profile.CIC6105),
	"cic6106": cic(profile.CIC6106),
	"cic7101": cic(profile.CIC7101),
	"cic7102": cic(profile.CIC7102),
	"cic7103": cic(profile.CIC7103),
	"cic7105": cic(profile.CIC7105),
	"cic7106": cic(profile.CIC7106),
	"cic8303": cic(profile.CIC8303),
	"cic8401": cic(profile.CIC8401),
	"cic5167": cic(profile.CIC5167),
	"cicddus": cic(profile.CICDDUS),
}
