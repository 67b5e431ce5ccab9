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
	"io"
	"os"
	"strings"
)

// Source is a database that can be searched.
type Source interface {
	// name of the source for diagnostic purposes
	Name() string

	// Open returns the database for reading. The caller will Close() the
	// returned value
	Open() (io.ReadCloser, error)
}

type fileSource struct {
	path string
}

// FileSource returns a Source for the named file.
func FileSource(path string) Source {
	return fileSource{path: path}
}

func (src fileSource) Name() string {
	return src.path
}

func (src fileSource) Open() (io.ReadCloser, error) {
	return os.Open(src.path)
}

type textSource struct {
	name string
	text string
}

// TextSource returns a Source for text that is already in memory.
func TextSource(name string, text string) Source {
	return textSource{name: name, text: text}
}

func (src textSource) Name() string {
	return src.name
}

func (src textSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(src.text)), nil
}
