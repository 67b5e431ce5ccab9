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

package sink

import "io"

// Sink receives normalised image data in stream order.
type Sink interface {
	// SetIndex selects the logical target of the next transfer
	SetIndex(index uint8)

	// StartTransfer and EndTransfer bracket the Write() calls of a transfer
	StartTransfer() error
	EndTransfer() error

	io.Writer

	// Mount the companion save-state file
	Mount(path string) error
}

// Discard is a Sink that does nothing with the data it receives. It is useful
// when only the resolved profile is required.
type Discard struct{}

// SetIndex implements the Sink interface.
func (Discard) SetIndex(uint8) {}

// StartTransfer implements the Sink interface.
func (Discard) StartTransfer() error { return nil }

// EndTransfer implements the Sink interface.
func (Discard) EndTransfer() error { return nil }

// Write implements the Sink interface.
func (Discard) Write(p []byte) (int, error) { return len(p), nil }

// Mount implements the Sink interface.
func (Discard) Mount(string) error { return nil }
