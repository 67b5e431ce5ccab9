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
	"archive/zip"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/n64loader/n64loader/curated"
)

// Sentinal error patterns.
const (
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	NoImageInArchive  = "cartridgeloader: no image in archive (%s)"
)

// Loader specifies the image to open.
type Loader struct {
	// filename or URL of the image
	Filename string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename. Compression
// extensions are removed along with the image extension.
func (cl Loader) ShortName() string {
	s := path.Base(filepath.ToSlash(cl.Filename))
	for _, e := range CompressedExtensions {
		if strings.ToUpper(path.Ext(s)) == e {
			s = strings.TrimSuffix(s, path.Ext(s))
		}
	}
	return strings.TrimSuffix(s, path.Ext(s))
}

// Open the image. Filenames with a URL scheme use that scheme to load the
// image. Currently supported schemes are HTTP(S) and local files.
func (cl Loader) Open() (*Source, error) {
	scheme := "file"

	u, err := url.Parse(cl.Filename)
	// windows drive letters are parsed as a single character scheme
	if err == nil && len(u.Scheme) > 1 {
		scheme = strings.ToLower(u.Scheme)
	}

	switch scheme {
	case "http", "https":
		return cl.openHTTP()
	case "file":
		return cl.openFile()
	}

	return nil, curated.Errorf(UnsupportedScheme, scheme)
}

func (cl Loader) openHTTP() (*Source, error) {
	resp, err := http.Get(cl.Filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf("cartridgeloader: %v", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return NewSource(cl.ShortName(), data), nil
}

func (cl Loader) openFile() (*Source, error) {
	filename := strings.TrimPrefix(cl.Filename, "file://")

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".ZIP":
		return cl.openZip(filename)
	case ".7Z":
		return cl.open7z(filename)
	case ".ZST":
		return cl.openCompressed(filename, func(r io.Reader) (io.Reader, error) {
			return zstd.NewReader(r)
		})
	case ".LZ4":
		return cl.openCompressed(filename, func(r io.Reader) (io.Reader, error) {
			return lz4.NewReader(r), nil
		})
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	// get file info. not using Stat() on the file handle because the
	// windows version (when running under wine) does not handle that
	cfi, err := os.Stat(filename)
	if err != nil {
		f.Close()
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return &Source{
		Name: cl.ShortName(),
		Size: cfi.Size(),
		r:    f,
		c:    f,
	}, nil
}

func (cl Loader) openCompressed(filename string, decoder func(io.Reader) (io.Reader, error)) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer f.Close()

	r, err := decoder(f)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	// the zstd decoder must be closed to release its goroutines
	if dec, ok := r.(*zstd.Decoder); ok {
		defer dec.Close()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return NewSource(cl.ShortName(), data), nil
}

// chooseEntry returns the index of the archive entry that should be loaded.
// the first entry with an image extension is preferred. otherwise the first
// entry that isn't a directory. returns -1 if there is no suitable entry
func chooseEntry(names []string, dirs []bool) int {
	first := -1
	for i := range names {
		if dirs[i] {
			continue
		}
		if IsImage(names[i]) {
			return i
		}
		if first == -1 {
			first = i
		}
	}
	return first
}

func (cl Loader) openZip(filename string) (*Source, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer zr.Close()

	names := make([]string, len(zr.File))
	dirs := make([]bool, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
		dirs[i] = f.FileInfo().IsDir()
	}

	i := chooseEntry(names, dirs)
	if i == -1 {
		return nil, curated.Errorf(NoImageInArchive, filename)
	}

	r, err := zr.File[i].Open()
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return NewSource(NewLoader(names[i]).ShortName(), data), nil
}

func (cl Loader) open7z(filename string) (*Source, error) {
	zr, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer zr.Close()

	names := make([]string, len(zr.File))
	dirs := make([]bool, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
		dirs[i] = f.FileInfo().IsDir()
	}

	i := chooseEntry(names, dirs)
	if i == -1 {
		return nil, curated.Errorf(NoImageInArchive, filename)
	}

	r, err := zr.File[i].Open()
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return NewSource(NewLoader(names[i]).ShortName(), data), nil
}
