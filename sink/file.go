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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/n64loader/n64loader/curated"
	"github.com/n64loader/n64loader/logger"
	"github.com/n64loader/n64loader/rom"
)

// File is a Sink that writes the normalised image to a file. If the filename
// has a .zst or .lz4 extension then the data is compressed accordingly.
//
// The image is written in big-endian order unless Order is set to another
// format, in which case each write is converted with rom.Denormalise().
//
// The index is used to decorate the filename when it is not zero. For example,
// index 1 and filename "out.z64" results in "out_1.z64".
type File struct {
	Filename string
	Order    rom.Format

	index uint8
	mount string

	f   *os.File
	enc io.WriteCloser
	w   io.Writer

	// conversion buffer for Order
	buf []byte
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile(filename string) *File {
	return &File{
		Filename: filename,
	}
}

// SetIndex implements the Sink interface.
func (fs *File) SetIndex(index uint8) {
	fs.index = index
}

// Path returns the filename used for the current index.
func (fs *File) Path() string {
	if fs.index == 0 {
		return fs.Filename
	}

	// the compression extension is preserved after the decoration
	base := fs.Filename
	comp := ""
	switch strings.ToLower(filepath.Ext(base)) {
	case ".zst", ".lz4":
		comp = filepath.Ext(base)
		base = strings.TrimSuffix(base, comp)
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s%s", strings.TrimSuffix(base, ext), fs.index, ext, comp)
}

// StartTransfer implements the Sink interface.
func (fs *File) StartTransfer() error {
	if fs.f != nil {
		return curated.Errorf("sink: file: transfer already started")
	}

	fn := fs.Path()

	var err error
	fs.f, err = os.Create(fn)
	if err != nil {
		return curated.Errorf("sink: file: %v", err)
	}

	switch strings.ToLower(filepath.Ext(fn)) {
	case ".zst":
		enc, err := zstd.NewWriter(fs.f)
		if err != nil {
			fs.f.Close()
			fs.f = nil
			return curated.Errorf("sink: file: %v", err)
		}
		fs.enc = enc
		fs.w = enc
	case ".lz4":
		enc := lz4.NewWriter(fs.f)
		fs.enc = enc
		fs.w = enc
	default:
		fs.enc = nil
		fs.w = fs.f
	}

	fs.mount = ""

	return nil
}

// Write implements the Sink interface.
func (fs *File) Write(p []byte) (int, error) {
	if fs.w == nil {
		return 0, curated.Errorf("sink: file: transfer not started")
	}
	switch fs.Order {
	case rom.FormatByteSwapped, rom.FormatLittleEndian:
		fs.buf = append(fs.buf[:0], p...)
		rom.Denormalise(fs.buf, fs.Order)
		p = fs.buf
	}
	n, err := fs.w.Write(p)
	if err != nil {
		return n, curated.Errorf("sink: file: %v", err)
	}
	return n, nil
}

// Mount implements the Sink interface. The path is noted and logged when the
// transfer ends.
func (fs *File) Mount(path string) error {
	fs.mount = path
	return nil
}

// Mounted returns the path most recently given to Mount().
func (fs *File) Mounted() string {
	return fs.mount
}

// EndTransfer implements the Sink interface.
func (fs *File) EndTransfer() error {
	if fs.f == nil {
		return curated.Errorf("sink: file: transfer not started")
	}

	defer func() {
		fs.f = nil
		fs.enc = nil
		fs.w = nil
	}()

	if fs.enc != nil {
		if err := fs.enc.Close(); err != nil {
			fs.f.Close()
			return curated.Errorf("sink: file: %v", err)
		}
	}

	if err := fs.f.Close(); err != nil {
		return curated.Errorf("sink: file: %v", err)
	}

	logger.Logf(logger.Allow, "sink", "written to %s as %s", fs.Path(), fs.format())
	if fs.mount != "" {
		logger.Logf(logger.Allow, "sink", "save state %s", fs.mount)
	}

	return nil
}

func (fs *File) format() rom.Format {
	if fs.Order == rom.FormatUnknown {
		return rom.FormatBigEndian
	}
	return fs.Order
}
