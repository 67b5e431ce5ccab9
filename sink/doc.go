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

// Package sink defines the destination of normalised image data. The Sink
// interface is implemented by Discard, File and WebSocket.
//
// The order of calls for a single transfer is:
//
//	SetIndex()
//	StartTransfer()
//	Write() ... Write()
//	Mount()
//	EndTransfer()
package sink
