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
	"github.com/n64loader/n64loader/database"
	"github.com/n64loader/n64loader/digest"
	"github.com/n64loader/n64loader/heuristic"
	"github.com/n64loader/n64loader/profile"
	"github.com/n64loader/n64loader/rom"
)

// Method by which a profile was resolved.
type Method int

// List of valid Method values.
const (
	MethodNone Method = iota
	MethodHeaderDigest
	MethodFileDigest
	MethodHeuristic
)

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodHeaderDigest:
		return "header digest"
	case MethodFileDigest:
		return "file digest"
	case MethodHeuristic:
		return "heuristic"
	}
	return "unknown method"
}

// Result of an ingestion.
type Result struct {
	// short name of the image and the number of bytes forwarded to the sink
	Name  string
	Bytes int64

	// byte order of the image before normalisation
	Format rom.Format

	HeaderDigest digest.Sum
	FileDigest   digest.Sum

	// blake3 fingerprint of the normalised image
	Fingerprint string

	Method Method

	// the database record used to resolve the profile. only valid if Method
	// is MethodHeaderDigest or MethodFileDigest
	Record database.Record

	// the header evidence. only computed if neither digest was found in the
	// database
	Header *rom.Header

	// outcome of heuristic resolution. only valid if Method is
	// MethodHeuristic
	Outcome heuristic.Outcome

	// the resolved profile. if Method is MethodHeuristic then only the parts
	// indicated by the Outcome are meaningful
	Profile profile.Profile

	// whether any field was written to the store
	Applied bool

	// the save-state path given to the sink
	SavePath string
}

// Resolved returns true if the profile was resolved completely.
func (res Result) Resolved() bool {
	switch res.Method {
	case MethodHeaderDigest, MethodFileDigest:
		return true
	case MethodHeuristic:
		return res.Outcome == heuristic.Success
	}
	return false
}
