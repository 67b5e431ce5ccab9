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

package status

import (
	"fmt"
	"strings"
	"sync"

	"github.com/n64loader/n64loader/profile"
)

// Words is the number of 32-bit registers in the bit-field.
const Words = 4

// bit range of a field. both ends are inclusive.
type span struct {
	hi, lo int
}

func (s span) mask() uint32 {
	return (1 << (s.hi - s.lo + 1)) - 1
}

var autodetect = span{hi: 64, lo: 64}

var fields = map[profile.Field]span{
	profile.FieldSystem:        {hi: 80, lo: 79},
	profile.FieldCIC:           {hi: 68, lo: 65},
	profile.FieldControllerPak: {hi: 71, lo: 71},
	profile.FieldRumblePak:     {hi: 72, lo: 72},
	profile.FieldTransferPak:   {hi: 73, lo: 73},
	profile.FieldRTC:           {hi: 74, lo: 74},
	profile.FieldMemory:        {hi: 77, lo: 75},
}

// Status is the configuration bit-field. It implements the profile.Store
// interface. It is safe to use from multiple goroutines.
type Status struct {
	crit sync.Mutex
	regs [Words]uint32
}

// NewStatus is the preferred method of initialisation for the Status type.
// All bits are clear so auto-detection is on.
func NewStatus() *Status {
	return &Status{}
}

// no field crosses a register boundary
func (st *Status) get(s span) uint32 {
	w := s.lo / 32
	return (st.regs[w] >> (s.lo % 32)) & s.mask()
}

func (st *Status) set(s span, v uint32) {
	w := s.lo / 32
	sh := s.lo % 32
	st.regs[w] &^= s.mask() << sh
	st.regs[w] |= (v & s.mask()) << sh
}

// AutoDetect implements the profile.Store interface.
func (st *Status) AutoDetect() bool {
	st.crit.Lock()
	defer st.crit.Unlock()
	return st.get(autodetect) == 0
}

// SetAutoDetect turns auto-detection on or off.
func (st *Status) SetAutoDetect(on bool) {
	st.crit.Lock()
	defer st.crit.Unlock()
	if on {
		st.set(autodetect, 0)
	} else {
		st.set(autodetect, 1)
	}
}

// SetField implements the profile.Store interface. Values wider than the
// field are truncated. Unknown fields are ignored.
func (st *Status) SetField(field profile.Field, value uint32) {
	s, ok := fields[field]
	if !ok {
		return
	}
	st.crit.Lock()
	defer st.crit.Unlock()
	st.set(s, value)
}

// Field returns the current value of the field.
func (st *Status) Field(field profile.Field) uint32 {
	s, ok := fields[field]
	if !ok {
		return 0
	}
	st.crit.Lock()
	defer st.crit.Unlock()
	return st.get(s)
}

// Registers returns a copy of the bit-field.
func (st *Status) Registers() [Words]uint32 {
	st.crit.Lock()
	defer st.crit.Unlock()
	return st.regs
}

// Profile returns the profile currently described by the bit-field.
func (st *Status) Profile() profile.Profile {
	return profile.Profile{
		System: profile.SystemType(st.Field(profile.FieldSystem)),
		CIC:    profile.CIC(st.Field(profile.FieldCIC)),
		Memory: profile.MemoryType(st.Field(profile.FieldMemory)),
		Peripherals: profile.Peripherals{
			ControllerPak: st.Field(profile.FieldControllerPak) == 1,
			RumblePak:     st.Field(profile.FieldRumblePak) == 1,
			TransferPak:   st.Field(profile.FieldTransferPak) == 1,
			RTC:           st.Field(profile.FieldRTC) == 1,
		},
	}
}

func (st *Status) String() string {
	s := strings.Builder{}
	for i, r := range st.Registers() {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%08x", r))
	}
	return s.String()
}
