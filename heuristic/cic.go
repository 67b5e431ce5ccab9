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

// regions that use PAL video timing. all other regions are NTSC.
var palRegions = map[byte]bool{
	'D': true, // Germany
	'F': true, // France
	'H': true, // Netherlands
	'I': true, // Italy
	'L': true, // Gateway 64
	'P': true, // Europe
	'S': true, // Spain
	'U': true, // Australia
	'W': true, // Scandinavia
	'X': true, // Europe
	'Y': true, // Europe
}

// SystemForRegion returns the video timing used in the region.
func SystemForRegion(region byte) profile.SystemType {
	if palRegions[region] {
		return profile.PAL
	}
	return profile.NTSC
}

// boot describes the CIC variant(s) identified by an IPL3 checksum.
type boot struct {
	ntsc profile.CIC
	pal  profile.CIC

	// some checksums imply a video timing regardless of region
	force  bool
	system profile.SystemType
}

// split returns a boot where the variant depends on the video timing.
func split(ntsc profile.CIC, pal profile.CIC) boot {
	return boot{ntsc: ntsc, pal: pal}
}

// single returns a boot with a single variant for both video timings.
func single(c profile.CIC) boot {
	return boot{ntsc: c, pal: c}
}

// forced returns a boot that implies a video timing.
func forced(c profile.CIC, system profile.SystemType) boot {
	return boot{ntsc: c, pal: c, force: true, system: system}
}

var checksums = map[uint64]boot{
	0x000000a316adc55a: split(profile.CIC6102, profile.CIC7101),
	0x000000039c981107: split(profile.CIC6102, profile.CIC7101), // hcs64's CIC-6102 IPL3 replacement
	0x000000a30dacd530: split(profile.CIC6102, profile.CIC7101), // seen in SM64 hacks
	0x000000d2828281b0: split(profile.CIC6102, profile.CIC7101), // seen in homebrew
	0x0000009acc31e644: split(profile.CIC6102, profile.CIC7101), // seen in betas and homebrew
	0x000000a405397b05: forced(profile.CIC7102, profile.PAL),
	0x000000a0f26f62fe: forced(profile.CIC6101, profile.NTSC),
	0x000000a9229d7c45: split(profile.CIC6103, profile.CIC7103),
	0x000000f8b860ed00: split(profile.CIC6105, profile.CIC7105),
	0x000000ba5ba4b8cd: split(profile.CIC6106, profile.CIC7106),
	0x0000012daafc8aab: single(profile.CIC5167),
	0x000000a9df4b39e1: single(profile.CIC8303),
	0x000000aa764e39e1: single(profile.CIC8401),
	0x000000abb0b739e1: single(profile.CICDDUS),
}

// identifyBoot returns the system type and CIC variant for the checksum and
// region. Returns false if the checksum is not recognised.
func identifyBoot(checksum uint64, region byte) (profile.SystemType, profile.CIC, bool) {
	system := SystemForRegion(region)

	b, ok := checksums[checksum]
	if !ok {
		return system, 0, false
	}

	if b.force {
		system = b.system
	}

	if system == profile.PAL {
		return system, b.pal, true
	}
	return system, b.ntsc, true
}
