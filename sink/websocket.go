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

import (
	"fmt"
	"hash"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"

	"github.com/n64loader/n64loader/curated"
)

// Text messages sent by the WebSocket sink. Image data is sent as binary
// messages between the start and end messages.
const (
	MsgIndex = "index %d"
	MsgStart = "start"
	MsgMount = "mount %s"
	MsgEnd   = "end %016x"
)

// WebSocket is a Sink that forwards the transfer to a websocket server. The
// end of transfer message carries the xxhash of all the data sent so that the
// receiver can verify the transfer.
type WebSocket struct {
	conn *websocket.Conn
	hash hash.Hash64

	// error from sending the index. returned by StartTransfer()
	indexErr error
}

// NewWebSocket dials the url and returns a new WebSocket sink.
func NewWebSocket(url string) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, curated.Errorf("sink: websocket: %v", err)
	}
	return &WebSocket{
		conn: conn,
		hash: xxhash.New(),
	}, nil
}

func (ws *WebSocket) text(format string, a ...any) error {
	err := ws.conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf(format, a...)))
	if err != nil {
		return curated.Errorf("sink: websocket: %v", err)
	}
	return nil
}

// SetIndex implements the Sink interface. The index is sent immediately.
// Errors are returned by the next call to StartTransfer().
func (ws *WebSocket) SetIndex(index uint8) {
	ws.indexErr = ws.text(MsgIndex, index)
}

// StartTransfer implements the Sink interface.
func (ws *WebSocket) StartTransfer() error {
	if ws.indexErr != nil {
		return ws.indexErr
	}
	ws.hash.Reset()
	return ws.text(MsgStart)
}

// Write implements the Sink interface.
func (ws *WebSocket) Write(p []byte) (int, error) {
	err := ws.conn.WriteMessage(websocket.BinaryMessage, p)
	if err != nil {
		return 0, curated.Errorf("sink: websocket: %v", err)
	}
	_, _ = ws.hash.Write(p)
	return len(p), nil
}

// Mount implements the Sink interface.
func (ws *WebSocket) Mount(path string) error {
	return ws.text(MsgMount, path)
}

// EndTransfer implements the Sink interface.
func (ws *WebSocket) EndTransfer() error {
	return ws.text(MsgEnd, ws.hash.Sum64())
}

// Close the connection to the websocket server.
func (ws *WebSocket) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = ws.conn.WriteMessage(websocket.CloseMessage, msg)
	if err := ws.conn.Close(); err != nil {
		return curated.Errorf("sink: websocket: %v", err)
	}
	return nil
}
