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

package prefs

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/n64loader/n64loader/curated"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return curated.Errorf("prefs: empty key")
	}
	if strings.ContainsAny(key, ":;") {
		return curated.Errorf("prefs: illegal character in key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the file on disk as a mapping. a missing file is an empty mapping
func (dsk *Disk) read() (map[string]string, error) {
	m := make(map[string]string)

	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]string)
	}

	return m, nil
}

// Save current preference values to disk. Values in the file that do not
// belong to this Disk are preserved.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, v := range dsk.entries {
		m[k] = v.String()
	}

	// sorted output for the benefit of humans and tests
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: m[k], Style: yaml.DoubleQuotedStyle},
		)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	if err := os.WriteFile(dsk.path, data, 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take priority over values on disk.
func (dsk *Disk) Load() error {
	m, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
			continue
		}
		if v, ok := m[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}
