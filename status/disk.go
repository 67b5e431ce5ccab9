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
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/n64loader/n64loader/curated"
)

// on disk representation. the named fields are for the benefit of external
// tools. the registers are authoritative; the named fields, if present, must
// agree with them
type record struct {
	Registers  [Words]uint32     `cbor:"1,keyasint"`
	AutoDetect *bool             `cbor:"2,keyasint,omitempty"`
	Fields     map[string]uint32 `cbor:"3,keyasint,omitempty"`
}

// Inconsistent is the error pattern returned by Load() when a named field
// does not match the registers.
const Inconsistent = "status: %s does not match the registers"

// check the named fields against the registers.
func (rec record) check() error {
	var chk Status
	chk.regs = rec.Registers

	if rec.AutoDetect != nil && *rec.AutoDetect != chk.AutoDetect() {
		return curated.Errorf(Inconsistent, "autodetect")
	}

	for f := range fields {
		if v, ok := rec.Fields[f.String()]; ok && v != chk.Field(f) {
			return curated.Errorf(Inconsistent, f.String())
		}
	}

	return nil
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Save the bit-field to the named file.
func (st *Status) Save(filename string) error {
	autodetect := st.AutoDetect()
	rec := record{
		Registers:  st.Registers(),
		AutoDetect: &autodetect,
		Fields:     make(map[string]uint32),
	}
	for f := range fields {
		rec.Fields[f.String()] = st.Field(f)
	}

	data, err := encMode.Marshal(rec)
	if err != nil {
		return curated.Errorf("status: %v", err)
	}

	err = os.WriteFile(filename, data, 0o600)
	if err != nil {
		return curated.Errorf("status: %v", err)
	}

	return nil
}

// Load the bit-field from the named file. A missing file is not an error and
// leaves the bit-field unchanged. A file whose named fields disagree with its
// registers is rejected with the Inconsistent pattern.
func (st *Status) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("status: %v", err)
	}

	var rec record
	err = cbor.Unmarshal(data, &rec)
	if err != nil {
		return curated.Errorf("status: %v", err)
	}

	if err := rec.check(); err != nil {
		return err
	}

	st.crit.Lock()
	defer st.crit.Unlock()
	st.regs = rec.Registers

	return nil
}
