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
	"github.com/n64loader/n64loader/rom"
)

// Outcome of heuristic resolution.
type Outcome int

// List of valid Outcome values.
const (
	Success Outcome = iota

	// the IPL3 checksum was not recognised. nothing in the Profile field of
	// the Result is meaningful
	UnknownCIC

	// the cartridge identifier was not recognised. the System and CIC fields
	// of the Result Profile are meaningful
	UnknownCartID
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case UnknownCIC:
		return "unknown CIC type"
	case UnknownCartID:
		return "unknown cartridge ID"
	}
	return "unknown outcome"
}

// Result of heuristic resolution.
type Result struct {
	Outcome Outcome
	Profile profile.Profile
}

// Resolve identifies the profile of an image from its header. The result
// depends on nothing but the header.
func Resolve(h rom.Header) Result {
	var res Result

	system, cic, ok := identifyBoot(h.Checksum, h.Region)
	if !ok {
		res.Outcome = UnknownCIC
		return res
	}
	res.Profile.System = system
	res.Profile.CIC = cic

	c, ok := identifyCartridge(h.ID(), h.Region, h.Revision)
	if !ok {
		res.Outcome = UnknownCartID
		return res
	}
	res.Profile.Memory = c.Memory
	res.Profile.Peripherals = c.Peripherals

	res.Outcome = Success
	return res
}
