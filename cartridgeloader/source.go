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

package cartridgeloader

import (
	"bytes"
	"io"
)

// Source is an opened image. It is read sequentially.
type Source struct {
	// short name of the image
	Name string

	// size in bytes of the image data
	Size int64

	r io.Reader
	c io.Closer
}

// NewSource returns a Source for data already in memory.
func NewSource(name string, data []byte) *Source {
	return &Source{
		Name: name,
		Size: int64(len(data)),
		r:    bytes.NewReader(data),
	}
}

// Read implements the io.Reader interface.
func (src *Source) Read(p []byte) (int, error) {
	return src.r.Read(p)
}

// Close implements the io.Closer interface.
func (src *Source) Close() error {
	if src.c == nil {
		return nil
	}
	err := src.c.Close()
	src.c = nil
	return err
}
