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

package ingest_test

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/n64loader/n64loader/cartridgeloader"
	"github.com/n64loader/n64loader/curated"
	"github.com/n64loader/n64loader/database"
	"github.com/n64loader/n64loader/heuristic"
	"github.com/n64loader/n64loader/ingest"
	"github.com/n64loader/n64loader/notifications"
	"github.com/n64loader/n64loader/profile"
	"github.com/n64loader/n64loader/rom"
	"github.com/n64loader/n64loader/status"
	"github.com/n64loader/n64loader/test"
)

const (
	checksum6102 = 0x000000a316adc55a
	checksum6105 = 0x000000f8b860ed00
)

// image returns a big-endian image of the specified size with a header
// describing the cartridge id, region and IPL3 checksum.
func image(size int, id string, region byte, checksum uint64) []byte {
	img := make([]byte, size)

	// the content of the image after the header is arbitrary
	for i := rom.HeaderSize; i < size; i++ {
		img[i] = byte(i * 13)
	}

	copy(img, []byte{0x80, 0x37, 0x12, 0x40})
	copy(img[0x20:], "TEST IMAGE")
	copy(img[0x3b:], id)
	img[0x3e] = region

	// distribute the checksum over the words of the IPL3 region
	remaining := checksum
	for i := 0x40; i < rom.HeaderSize; i += 4 {
		w := uint64(0xffffffff)
		if remaining < w {
			w = remaining
		}
		binary.LittleEndian.PutUint32(img[i:], uint32(w))
		remaining -= w
	}

	return img
}

func md5hex(data []byte) string {
	s := md5.Sum(data)
	return hex.EncodeToString(s[:])
}

// format returns a copy of a big-endian image in the specified format.
func format(img []byte, f rom.Format) []byte {
	c := make([]byte, len(img))
	copy(c, img)
	rom.Denormalise(c, f)
	return c
}

type store struct {
	autodetect bool
	fields     map[profile.Field]uint32
}

func newStore(autodetect bool) *store {
	return &store{
		autodetect: autodetect,
		fields:     make(map[profile.Field]uint32),
	}
}

func (st *store) AutoDetect() bool {
	return st.autodetect
}

func (st *store) SetField(field profile.Field, value uint32) {
	st.fields[field] = value
}

// records all calls made to the sink
type recorder struct {
	calls    []string
	data     bytes.Buffer
	writeErr error
	block    chan bool
	started  chan bool
}

func (r *recorder) SetIndex(index uint8) {
	r.calls = append(r.calls, fmt.Sprintf("index %d", index))
}

func (r *recorder) StartTransfer() error {
	r.calls = append(r.calls, "start")
	return nil
}

func (r *recorder) Write(p []byte) (int, error) {
	if r.started != nil {
		r.started <- true
		r.started = nil
		<-r.block
	}
	if r.writeErr != nil {
		return 0, r.writeErr
	}
	r.calls = append(r.calls, "write")
	return r.data.Write(p)
}

func (r *recorder) Mount(path string) error {
	r.calls = append(r.calls, "mount "+path)
	return nil
}

func (r *recorder) EndTransfer() error {
	r.calls = append(r.calls, "end")
	return nil
}

type progress struct {
	consumed []int64
	total    int64
	cleared  int
}

func (p *progress) Progress(label string, total int64, consumed int64) {
	p.total = total
	p.consumed = append(p.consumed, consumed)
}

func (p *progress) Clear() {
	p.cleared++
}

type notify struct {
	notices []notifications.Notice
}

func (n *notify) Notify(notice notifications.Notice) error {
	n.notices = append(n.notices, notice)
	return nil
}

type fixture struct {
	st  *store
	snk *recorder
	prg *progress
	ntf *notify
	pl  *ingest.Pipeline
}

func newFixture(autodetect bool, db string) *fixture {
	f := &fixture{
		st:  newStore(autodetect),
		snk: &recorder{},
		prg: &progress{},
		ntf: &notify{},
	}
	f.pl = ingest.New(ingest.Config{
		Database: database.New(database.TextSource("test", db)),
		Store:    f.st,
		Sink:     f.snk,
		Progress: f.prg,
		Notify:   f.ntf,
		Index:    2,
	})
	return f
}

func TestFileDigest(t *testing.T) {
	img := image(3*ingest.ChunkSize, "NZZ", 'E', 0x1234)
	f := newFixture(true, fmt.Sprintf("%s sram32k|rpak\n", md5hex(img)))

	res, err := f.pl.Ingest(cartridgeloader.NewSource("game", format(img, rom.FormatLittleEndian)))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, res.Format, rom.FormatLittleEndian)
	test.ExpectEquality(t, res.Method, ingest.MethodFileDigest)
	test.ExpectEquality(t, res.FileDigest.String(), md5hex(img))
	test.ExpectEquality(t, res.HeaderDigest.String(), md5hex(img[:ingest.ChunkSize]))
	test.ExpectEquality(t, res.Profile.Memory, profile.MemorySRAM32k)
	test.ExpectEquality(t, res.Profile.Peripherals.RumblePak, true)
	test.ExpectEquality(t, res.Profile.Peripherals.ControllerPak, false)
	test.ExpectSuccess(t, res.Resolved())
	test.ExpectSuccess(t, res.Applied)

	// header evidence is not computed when the database resolves the profile
	test.ExpectSuccess(t, res.Header == nil)

	test.ExpectEquality(t, f.st.fields[profile.FieldMemory], uint32(profile.MemorySRAM32k))
	test.ExpectEquality(t, f.st.fields[profile.FieldRumblePak], uint32(1))
	test.ExpectEquality(t, f.st.fields[profile.FieldControllerPak], uint32(0))
	test.ExpectEquality(t, len(f.st.fields), 7)

	// the sink receives the normalised image
	test.ExpectSuccess(t, bytes.Equal(f.snk.data.Bytes(), img))
	test.ExpectEquality(t, res.Bytes, int64(len(img)))
	test.ExpectEquality(t, len(f.ntf.notices), 0)
}

func TestHeaderDigestPrecedence(t *testing.T) {
	img := image(2*ingest.ChunkSize, "NZZ", 'E', 0x1234)

	// the file digest record comes first in the database but the header
	// digest is always looked up first
	db := fmt.Sprintf("%s sram32k\n%s eeprom512|cpak\n", md5hex(img), md5hex(img[:ingest.ChunkSize]))
	f := newFixture(true, db)

	res, err := f.pl.Ingest(cartridgeloader.NewSource("game", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Format, rom.FormatBigEndian)
	test.ExpectEquality(t, res.Method, ingest.MethodHeaderDigest)
	test.ExpectEquality(t, res.Record.Line, 2)
	test.ExpectEquality(t, res.Profile.Memory, profile.MemoryEEPROM512)
	test.ExpectEquality(t, res.Profile.Peripherals, profile.Peripherals{ControllerPak: true})
}

func TestHeuristic(t *testing.T) {
	img := image(2*ingest.ChunkSize, "NZL", 'P', checksum6105)
	f := newFixture(true, "")

	res, err := f.pl.Ingest(cartridgeloader.NewSource("zelda", format(img, rom.FormatByteSwapped)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Format, rom.FormatByteSwapped)
	test.ExpectEquality(t, res.Method, ingest.MethodHeuristic)
	test.ExpectEquality(t, res.Outcome, heuristic.Success)
	test.DemandSuccess(t, res.Header != nil)
	test.ExpectEquality(t, res.Header.ID(), "NZL")
	test.ExpectEquality(t, res.Header.Checksum, uint64(checksum6105))

	test.ExpectEquality(t, f.st.fields[profile.FieldSystem], uint32(profile.PAL))
	test.ExpectEquality(t, f.st.fields[profile.FieldCIC], uint32(profile.CIC7105))
	test.ExpectEquality(t, f.st.fields[profile.FieldMemory], uint32(profile.MemorySRAM32k))
	test.ExpectEquality(t, f.st.fields[profile.FieldRumblePak], uint32(1))
	test.ExpectEquality(t, len(f.ntf.notices), 0)

	// the same title for north america
	img = image(2*ingest.ChunkSize, "NZL", 'E', checksum6105)
	f = newFixture(true, "")
	res, err = f.pl.Ingest(cartridgeloader.NewSource("zelda", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Profile.System, profile.NTSC)
	test.ExpectEquality(t, res.Profile.CIC, profile.CIC6105)
	test.ExpectEquality(t, res.Profile.Memory, profile.MemorySRAM32k)
}

func TestShortROM(t *testing.T) {
	f := newFixture(true, "")

	res, err := f.pl.Ingest(cartridgeloader.NewSource("short", make([]byte, 2048)))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ingest.ShortROM))
	test.ExpectEquality(t, res.Bytes, int64(0))

	// nothing has been sent anywhere
	test.ExpectEquality(t, len(f.snk.calls), 0)
	test.ExpectEquality(t, len(f.st.fields), 0)
	test.ExpectEquality(t, len(f.prg.consumed), 0)
	test.ExpectEquality(t, f.prg.cleared, 0)
	test.ExpectEquality(t, len(f.ntf.notices), 0)
}

func TestUnknownCIC(t *testing.T) {
	img := image(ingest.ChunkSize, "NZL", 'E', 0x1234)
	f := newFixture(true, "")

	res, err := f.pl.Ingest(cartridgeloader.NewSource("game", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Outcome, heuristic.UnknownCIC)
	test.ExpectFailure(t, res.Resolved())
	test.ExpectFailure(t, res.Applied)

	// nothing written to the store, not even the system type or CIC
	test.ExpectEquality(t, len(f.st.fields), 0)

	test.DemandEquality(t, len(f.ntf.notices), 1)
	test.ExpectEquality(t, f.ntf.notices[0], notifications.NotifyUnknownCIC)

	// bytes are still transferred
	test.ExpectSuccess(t, bytes.Equal(f.snk.data.Bytes(), img))
}

func TestUnknownCartID(t *testing.T) {
	img := image(ingest.ChunkSize, "Z99", 'E', checksum6102)
	f := newFixture(true, "")

	res, err := f.pl.Ingest(cartridgeloader.NewSource("game", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Outcome, heuristic.UnknownCartID)
	test.ExpectSuccess(t, res.Applied)

	// only the boot fields are written
	test.ExpectEquality(t, len(f.st.fields), 2)
	test.ExpectEquality(t, f.st.fields[profile.FieldSystem], uint32(profile.NTSC))
	test.ExpectEquality(t, f.st.fields[profile.FieldCIC], uint32(profile.CIC6102))

	test.DemandEquality(t, len(f.ntf.notices), 1)
	test.ExpectEquality(t, f.ntf.notices[0], notifications.NotifyUnknownCartID)
}

func TestAutoDetectOff(t *testing.T) {
	// database resolution
	img := image(ingest.ChunkSize, "NZL", 'E', checksum6105)
	f := newFixture(false, fmt.Sprintf("%s sram96k\n", md5hex(img)))
	res, err := f.pl.Ingest(cartridgeloader.NewSource("game", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Method, ingest.MethodHeaderDigest)
	test.ExpectEquality(t, res.Profile.Memory, profile.MemorySRAM96k)
	test.ExpectFailure(t, res.Applied)
	test.ExpectEquality(t, len(f.st.fields), 0)

	// heuristic resolution still reports the profile
	f = newFixture(false, "")
	res, err = f.pl.Ingest(cartridgeloader.NewSource("game", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Outcome, heuristic.Success)
	test.ExpectEquality(t, res.Profile.CIC, profile.CIC6105)
	test.ExpectFailure(t, res.Applied)
	test.ExpectEquality(t, len(f.st.fields), 0)

	// failures are not notified
	for _, img := range [][]byte{
		image(ingest.ChunkSize, "NZL", 'E', 0x1234),
		image(ingest.ChunkSize, "Z99", 'E', checksum6102),
	} {
		f = newFixture(false, "")
		_, err = f.pl.Ingest(cartridgeloader.NewSource("game", img))
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, len(f.st.fields), 0)
		test.ExpectEquality(t, len(f.ntf.notices), 0)
	}
}

func TestSavePathDottedName(t *testing.T) {
	img := image(ingest.ChunkSize, "NZL", 'E', checksum6105)
	f := newFixture(true, "")

	res, err := f.pl.Ingest(cartridgeloader.NewSource("Zelda v1.0", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.SavePath, "saves/N64/Zelda v1.0.sav")
}

func TestSequence(t *testing.T) {
	img := image(2*ingest.ChunkSize+100, "NZL", 'E', checksum6105)
	f := newFixture(true, "")

	res, err := f.pl.Ingest(cartridgeloader.NewSource("zelda", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.SavePath, "saves/N64/zelda.sav")

	test.ExpectEquality(t, strings.Join(f.snk.calls, ", "),
		"index 2, start, write, write, write, mount saves/N64/zelda.sav, end")

	// progress is updated for every chunk and cleared before and after
	test.DemandEquality(t, len(f.prg.consumed), 3)
	test.ExpectEquality(t, f.prg.consumed[0], int64(ingest.ChunkSize))
	test.ExpectEquality(t, f.prg.consumed[1], int64(2*ingest.ChunkSize))
	test.ExpectEquality(t, f.prg.consumed[2], int64(len(img)))
	test.ExpectEquality(t, f.prg.total, int64(len(img)))
	test.ExpectEquality(t, f.prg.cleared, 2)
}

func TestUnknownFormat(t *testing.T) {
	img := image(ingest.ChunkSize, "NZL", 'E', checksum6105)
	img[0] = 0x00
	f := newFixture(true, "")

	res, err := f.pl.Ingest(cartridgeloader.NewSource("game", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Format, rom.FormatUnknown)

	// data is forwarded unchanged
	test.ExpectSuccess(t, bytes.Equal(f.snk.data.Bytes(), img))
}

func TestSinkError(t *testing.T) {
	f := newFixture(true, "")
	f.snk.writeErr = curated.Errorf("sink: broken")

	_, err := f.pl.Ingest(cartridgeloader.NewSource("game", image(ingest.ChunkSize, "NZL", 'E', checksum6105)))
	test.ExpectSuccess(t, curated.Is(err, ingest.SinkError))
	test.ExpectEquality(t, len(f.st.fields), 0)

	// the transfer is ended even though it failed
	test.ExpectEquality(t, f.snk.calls[len(f.snk.calls)-1], "end")
}

func TestReadError(t *testing.T) {
	f := newFixture(true, "")
	src := cartridgeloader.NewSource("game", image(ingest.ChunkSize, "NZL", 'E', checksum6105))

	// the source claims to be larger than it is
	src.Size = 2 * ingest.ChunkSize

	_, err := f.pl.Ingest(src)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(f.st.fields), 0)
	test.ExpectEquality(t, f.snk.calls[len(f.snk.calls)-1], "end")
}

func TestBusy(t *testing.T) {
	f := newFixture(true, "")
	started := make(chan bool)
	block := make(chan bool)
	f.snk.started = started
	f.snk.block = block

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = f.pl.Ingest(cartridgeloader.NewSource("first", image(ingest.ChunkSize, "NZL", 'E', checksum6105)))
	}()

	// wait for the first ingestion to reach the sink
	<-started

	_, err := f.pl.Ingest(cartridgeloader.NewSource("second", image(ingest.ChunkSize, "NZL", 'E', checksum6105)))
	test.ExpectSuccess(t, curated.Is(err, ingest.Busy))

	block <- true
	wg.Wait()

	// the pipeline can be used again
	_, err = f.pl.Ingest(cartridgeloader.NewSource("third", image(ingest.ChunkSize, "NZL", 'E', checksum6105)))
	test.ExpectSuccess(t, err)
}

func TestStatusStore(t *testing.T) {
	img := image(ingest.ChunkSize, "NZL", 'P', checksum6105)
	st := status.NewStatus()
	pl := ingest.New(ingest.Config{
		Store: st,
	})

	res, err := pl.Ingest(cartridgeloader.NewSource("zelda", img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.Profile(), res.Profile)
	test.ExpectEquality(t, st.Profile().CIC, profile.CIC7105)
}

func TestDefaults(t *testing.T) {
	pl := ingest.New(ingest.Config{})
	res, err := pl.Ingest(cartridgeloader.NewSource("zelda", image(ingest.ChunkSize, "NZL", 'P', checksum6105)))
	test.DemandSuccess(t, err)

	// without a store the profile is resolved but never applied
	test.ExpectEquality(t, res.Outcome, heuristic.Success)
	test.ExpectFailure(t, res.Applied)
}
