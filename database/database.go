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
	"bufio"
	"io"
	"strings"

	"github.com/n64loader/n64loader/logger"
	"github.com/n64loader/n64loader/profile"
)

// KeyLength is the length of the digest at the start of a record.
const KeyLength = 32

const tagSep = "|"

// Record is a database line that matched a digest.
type Record struct {
	// name of the source and the line number (counting from one) of the
	// record within that source
	Source string
	Line   int

	// tags as they appear in the record
	Tags []string

	// the profile built from the tags
	Profile profile.Profile
}

// DB is a list of sources searched in order.
type DB struct {
	sources []Source
}

// New is the preferred method of initialisation for the DB type. Sources are
// searched in the order given.
func New(sources ...Source) *DB {
	return &DB{
		sources: sources,
	}
}

// Resolve returns the profile of the first record that matches the digest.
// The digest should be in lowercase hexadecimal form.
func (db *DB) Resolve(hash string) (profile.Profile, bool) {
	rec, ok := db.Lookup(hash)
	return rec.Profile, ok
}

// Lookup returns the first record that matches the digest.
func (db *DB) Lookup(hash string) (Record, bool) {
	if len(hash) != KeyLength {
		logger.Logf(logger.Allow, "database", "lookup key is not a valid digest: %s", hash)
		return Record{}, false
	}

	for _, src := range db.sources {
		if rec, ok := search(src, hash); ok {
			return rec, true
		}
	}

	return Record{}, false
}

// search a single source for the digest.
func search(src Source, hash string) (Record, bool) {
	f, err := src.Open()
	if err != nil {
		logger.Logf(logger.Allow, "database", "failed to open %s: %v", src.Name(), err)
		return Record{}, false
	}
	defer f.Close()

	// lines are read whole whatever their length
	r := bufio.NewReader(f)
	n := 0
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			if err != io.EOF {
				logger.Logf(logger.Allow, "database", "error reading %s: %v", src.Name(), err)
			}
			break
		}
		n++
		line = strings.TrimRight(line, "\r\n")

		if !strings.HasPrefix(line, hash) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			logger.Logf(logger.Allow, "database", "no tags found: %s line %d", src.Name(), n)
			continue
		}

		logger.Logf(logger.Allow, "database", "found rom entry: %s", line)

		rec := Record{
			Source:  src.Name(),
			Line:    n,
			Tags:    strings.Split(fields[1], tagSep),
			Profile: parseTags(fields[1]),
		}

		return rec, true
	}

	return Record{}, false
}

// parseTags builds a profile from the tag field of a record.
func parseTags(field string) profile.Profile {
	p := profile.Default()

	for _, tag := range strings.Split(field, tagSep) {
		tag = strings.ToLower(tag)
		if tag == "" {
			continue
		}
		if eff, ok := tags[tag]; ok {
			eff(&p)
		} else {
			logger.Logf(logger.Allow, "database", "unknown tag: %s", tag)
		}
	}

	return p
}
