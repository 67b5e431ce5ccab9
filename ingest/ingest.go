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
	"io"
	"sync"

	"github.com/n64loader/n64loader/cartridgeloader"
	"github.com/n64loader/n64loader/curated"
	"github.com/n64loader/n64loader/database"
	"github.com/n64loader/n64loader/digest"
	"github.com/n64loader/n64loader/heuristic"
	"github.com/n64loader/n64loader/logger"
	"github.com/n64loader/n64loader/notifications"
	"github.com/n64loader/n64loader/paths"
	"github.com/n64loader/n64loader/profile"
	"github.com/n64loader/n64loader/rom"
	"github.com/n64loader/n64loader/sink"
)

// ChunkSize is the number of bytes read from the source at a time. It is also
// the minimum size of an image because the first chunk must contain the
// complete header.
const ChunkSize = rom.HeaderSize

// Sentinal error patterns.
const (
	ShortROM  = "ingest: rom must be at least %d bytes (%d)"
	Busy      = "ingest: pipeline is busy"
	SinkError = "ingest: sink: %v"
)

// ProgressLabel is the label given to Progress.Progress().
const ProgressLabel = "Loading"

// Progress is used to display the progress of an ingestion.
type Progress interface {
	Progress(label string, total int64, consumed int64)
	Clear()
}

// Config for a Pipeline. Only Database and Store are required. Other fields
// have a suitable default if they are nil.
type Config struct {
	Database *database.DB
	Store    profile.Store

	Sink     sink.Sink
	Progress Progress
	Notify   notifications.Notify

	// the index given to the sink before each transfer
	Index uint8

	// returns the save-state path for the short name of the image. defaults
	// to paths.SavePath()
	SavePath func(name string) string
}

// Pipeline ingests images according to its Config.
type Pipeline struct {
	cfg Config

	// prevent concurrent use of the Pipeline
	crit sync.Mutex

	// working buffer for the chunk being processed
	buf [ChunkSize]byte

	// copy of the first normalised chunk. the header evidence is parsed from
	// this if required
	header [ChunkSize]byte
}

// New is the preferred method of initialisation for the Pipeline type.
func New(cfg Config) *Pipeline {
	if cfg.Database == nil {
		cfg.Database = database.New()
	}
	if cfg.Store == nil {
		cfg.Store = disabledStore{}
	}
	if cfg.Sink == nil {
		cfg.Sink = sink.Discard{}
	}
	if cfg.Progress == nil {
		cfg.Progress = noProgress{}
	}
	if cfg.Notify == nil {
		cfg.Notify = noNotify{}
	}
	if cfg.SavePath == nil {
		cfg.SavePath = paths.SavePath
	}
	return &Pipeline{cfg: cfg}
}

// Ingest the source. The source is closed before the function returns, even
// on error.
//
// An error is returned if the source is too short, if the source cannot be
// read, or if the sink fails. A failure to resolve the profile is not an
// error; the Result should be checked.
func (pl *Pipeline) Ingest(src *cartridgeloader.Source) (Result, error) {
	if !pl.crit.TryLock() {
		src.Close()
		return Result{}, curated.Errorf(Busy)
	}
	defer pl.crit.Unlock()

	res := Result{Name: src.Name}

	// the size check happens before anything is sent to the sink or the store
	if src.Size < ChunkSize {
		src.Close()
		logger.Logf(logger.Allow, "ingest", "failed to load %s: must be at least %d bytes", src.Name, ChunkSize)
		return res, curated.Errorf(ShortROM, ChunkSize, src.Size)
	}

	logger.Logf(logger.Allow, "ingest", "%s with %d bytes to send for index %d", src.Name, src.Size, pl.cfg.Index)

	pl.cfg.Sink.SetIndex(pl.cfg.Index)
	if err := pl.cfg.Sink.StartTransfer(); err != nil {
		src.Close()
		return res, curated.Errorf(SinkError, err)
	}

	pl.cfg.Progress.Clear()

	err := pl.stream(src, &res)
	src.Close()
	if err != nil {
		_ = pl.cfg.Sink.EndTransfer()
		pl.cfg.Progress.Clear()
		return res, err
	}

	pl.resolve(&res)

	logger.Log(logger.Allow, "ingest", "done")

	res.SavePath = pl.cfg.SavePath(src.Name)
	if err := pl.cfg.Sink.Mount(res.SavePath); err != nil {
		logger.Logf(logger.Allow, "ingest", "mount: %v", err)
	}

	if err := pl.cfg.Sink.EndTransfer(); err != nil {
		pl.cfg.Progress.Clear()
		return res, curated.Errorf(SinkError, err)
	}

	pl.cfg.Progress.Clear()

	pl.notify(res)

	return res, nil
}

// stream the source to the sink, normalising and hashing each chunk.
func (pl *Pipeline) stream(src *cartridgeloader.Source, res *Result) error {
	var md5 digest.MD5
	fp := digest.NewFingerprint()

	remaining := src.Size
	first := true

	for remaining > 0 {
		n := int64(ChunkSize)
		if remaining < n {
			n = remaining
		}
		chunk := pl.buf[:n]

		if _, err := io.ReadFull(src, chunk); err != nil {
			return curated.Errorf("ingest: %v", err)
		}

		if first {
			res.Format = rom.DetectFormat(chunk)
			logger.Logf(logger.Allow, "ingest", "rom format: %s", res.Format)
		}

		rom.Normalise(chunk, res.Format)
		md5.Update(chunk)
		_, _ = fp.Write(chunk)

		if first {
			res.HeaderDigest = md5.Snapshot()
			logger.Logf(logger.Allow, "ingest", "header MD5: %s", res.HeaderDigest)
			copy(pl.header[:], chunk)
			first = false
		}

		w, err := pl.cfg.Sink.Write(chunk)
		if err == nil && w != len(chunk) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return curated.Errorf(SinkError, err)
		}

		remaining -= n
		res.Bytes += n
		pl.cfg.Progress.Progress(ProgressLabel, src.Size, res.Bytes)
	}

	res.FileDigest = md5.Finalise()
	res.Fingerprint = fp.String()
	logger.Logf(logger.Allow, "ingest", "file MD5: %s", res.FileDigest)

	return nil
}

// resolve the profile in order of preference and apply it to the store.
func (pl *Pipeline) resolve(res *Result) {
	if rec, ok := pl.cfg.Database.Lookup(res.HeaderDigest.String()); ok {
		res.Method = MethodHeaderDigest
		res.Record = rec
		res.Profile = rec.Profile
		res.Applied = pl.apply(rec.Profile)
		return
	}
	logger.Logf(logger.Allow, "ingest", "no rom information found for header hash: %s", res.HeaderDigest)

	if rec, ok := pl.cfg.Database.Lookup(res.FileDigest.String()); ok {
		res.Method = MethodFileDigest
		res.Record = rec
		res.Profile = rec.Profile
		res.Applied = pl.apply(rec.Profile)
		return
	}
	logger.Logf(logger.Allow, "ingest", "no rom information found for file hash: %s", res.FileDigest)

	// the first chunk is always complete so parsing cannot fail
	h, _ := rom.ParseHeader(pl.header[:])
	res.Header = &h
	res.Method = MethodHeuristic

	hr := heuristic.Resolve(h)
	res.Outcome = hr.Outcome
	res.Profile = hr.Profile

	switch hr.Outcome {
	case heuristic.UnknownCIC:
		logger.Logf(logger.Allow, "ingest", "unknown CIC type: %016X", h.Checksum)
	case heuristic.UnknownCartID:
		logger.Logf(logger.Allow, "ingest", "unknown cart ID: %s", h.ID())
	}

	if !pl.cfg.Store.AutoDetect() {
		logger.Log(logger.Allow, "ingest", "auto-detect is off")
		return
	}
	logger.Log(logger.Allow, "ingest", "auto-detect is on")

	switch hr.Outcome {
	case heuristic.Success:
		profile.ApplyBoot(pl.cfg.Store, hr.Profile)
		profile.ApplyCartridge(pl.cfg.Store, hr.Profile)
		res.Applied = true
	case heuristic.UnknownCartID:
		profile.ApplyBoot(pl.cfg.Store, hr.Profile)
		res.Applied = true
	}
}

// apply a database profile to the store.
func (pl *Pipeline) apply(p profile.Profile) bool {
	if profile.Apply(pl.cfg.Store, p) {
		logger.Log(logger.Allow, "ingest", "auto-detect is on: applied profile from database")
		return true
	}
	logger.Log(logger.Allow, "ingest", "auto-detect is off: profile from database not applied")
	return false
}

// notify the user of a failed heuristic resolution. nothing is notified if
// auto-detection is off.
func (pl *Pipeline) notify(res Result) {
	if res.Method != MethodHeuristic || !pl.cfg.Store.AutoDetect() {
		return
	}

	var notice notifications.Notice
	switch res.Outcome {
	case heuristic.UnknownCIC:
		notice = notifications.NotifyUnknownCIC
	case heuristic.UnknownCartID:
		notice = notifications.NotifyUnknownCartID
	default:
		return
	}

	if err := pl.cfg.Notify.Notify(notice); err != nil {
		logger.Logf(logger.Allow, "ingest", "notify: %v", err)
	}
}
