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

package sink_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/n64loader/n64loader/rom"
	"github.com/n64loader/n64loader/sink"
	"github.com/n64loader/n64loader/test"
)

func transfer(t *testing.T, s sink.Sink, index uint8, chunks ...[]byte) {
	t.Helper()
	s.SetIndex(index)
	test.DemandSuccess(t, s.StartTransfer())
	for _, c := range chunks {
		n, err := s.Write(c)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, n, len(c))
	}
	test.DemandSuccess(t, s.Mount("saves/N64/game.sav"))
	test.DemandSuccess(t, s.EndTransfer())
}

func TestImplementations(t *testing.T) {
	test.ExpectImplements[sink.Sink](t, sink.Discard{})
	test.ExpectImplements[sink.Sink](t, sink.NewFile("out.z64"))
	test.ExpectImplements[sink.Sink](t, &sink.WebSocket{})
}

func TestDiscard(t *testing.T) {
	transfer(t, sink.Discard{}, 0, []byte{1, 2, 3})
}

func TestFilePath(t *testing.T) {
	fs := sink.NewFile("out/game.z64")
	test.ExpectEquality(t, fs.Path(), "out/game.z64")
	fs.SetIndex(2)
	test.ExpectEquality(t, fs.Path(), "out/game_2.z64")

	fs = sink.NewFile("game.z64.zst")
	fs.SetIndex(1)
	test.ExpectEquality(t, fs.Path(), "game_1.z64.zst")
}

func TestFilePlain(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.z64")
	fs := sink.NewFile(fn)
	transfer(t, fs, 0, []byte("abcd"), []byte("efgh"))
	test.ExpectEquality(t, fs.Mounted(), "saves/N64/game.sav")

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "abcdefgh")
}

func TestFileOrder(t *testing.T) {
	for _, f := range []rom.Format{rom.FormatByteSwapped, rom.FormatLittleEndian} {
		fn := filepath.Join(t.TempDir(), "game.out")
		fs := sink.NewFile(fn)
		fs.Order = f

		a := []byte{0x80, 0x37, 0x12, 0x40}
		b := []byte{0x01, 0x02, 0x03, 0x04}
		transfer(t, fs, 0, a, b)

		// the chunks given to the sink are not changed
		test.ExpectEquality(t, a[0], byte(0x80))

		data, err := os.ReadFile(fn)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, rom.DetectFormat(data), f)

		rom.Normalise(data, f)
		test.ExpectEquality(t, string(data), string(append(a, b...)))
	}
}

func TestFileZstd(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.z64.zst")
	transfer(t, sink.NewFile(fn), 0, []byte("abcd"), []byte("efgh"))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	dec, err := zstd.NewReader(f)
	test.DemandSuccess(t, err)
	defer dec.Close()
	data, err := io.ReadAll(dec)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "abcdefgh")
}

func TestFileLZ4(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.z64.lz4")
	transfer(t, sink.NewFile(fn), 0, []byte("abcd"), []byte("efgh"))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	data, err := io.ReadAll(lz4.NewReader(f))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "abcdefgh")
}

func TestFileNotStarted(t *testing.T) {
	fs := sink.NewFile(filepath.Join(t.TempDir(), "game.z64"))
	_, err := fs.Write([]byte{0})
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, fs.EndTransfer())
}

func TestFileUnwritable(t *testing.T) {
	fs := sink.NewFile(filepath.Join(t.TempDir(), "missing", "game.z64"))
	test.ExpectFailure(t, fs.StartTransfer())
}

type message struct {
	binary []byte
	s      string
}

func TestWebSocket(t *testing.T) {
	received := make(chan message, 16)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		defer close(received)
		for {
			mt, p, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt == websocket.TextMessage {
				received <- message{s: string(p)}
			} else {
				received <- message{binary: p}
			}
		}
	}))
	defer srv.Close()

	ws, err := sink.NewWebSocket("ws" + strings.TrimPrefix(srv.URL, "http"))
	test.DemandSuccess(t, err)

	transfer(t, ws, 3, []byte("abcd"), []byte("efgh"))
	test.ExpectSuccess(t, ws.Close())

	var msgs []message
	for m := range received {
		msgs = append(msgs, m)
	}

	test.DemandEquality(t, len(msgs), 6)
	test.ExpectEquality(t, msgs[0].s, "index 3")
	test.ExpectEquality(t, msgs[1].s, "start")
	test.ExpectSuccess(t, bytes.Equal(msgs[2].binary, []byte("abcd")))
	test.ExpectSuccess(t, bytes.Equal(msgs[3].binary, []byte("efgh")))
	test.ExpectEquality(t, msgs[4].s, "mount saves/N64/game.sav")
	test.ExpectEquality(t, msgs[5].s, fmt.Sprintf(sink.MsgEnd, xxhash.Sum64([]byte("abcdefgh"))))
}

func TestWebSocketDialFailure(t *testing.T) {
	_, err := sink.NewWebSocket("ws://127.0.0.1:1/")
	test.ExpectFailure(t, err)
}
