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

package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/n64loader/n64loader/notifications"
)

// width used if the terminal width cannot be determined.
const defaultWidth = 80

// Bar writes a single line progress bar to the output.
type Bar struct {
	out io.Writer

	// terminal file descriptor. -1 if out is not a terminal
	fd int

	// length of the most recently drawn line
	drawn int
}

// NewBarWriter returns a Bar writing to the specified writer. Progress is only
// drawn if the writer is an *os.File connected to a terminal.
func NewBarWriter(out io.Writer) *Bar {
	b := &Bar{
		out: out,
		fd:  -1,
	}
	if f, ok := out.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			b.fd = int(f.Fd())
		}
	}
	return b
}

// IsTerminal returns true if progress will be drawn.
func (b *Bar) IsTerminal() bool {
	return b.fd != -1
}

func (b *Bar) width() int {
	if b.fd == -1 {
		return defaultWidth
	}
	w, _, err := term.GetSize(b.fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Line returns the progress line for the values.
func Line(label string, total, consumed int64, width int) string {
	if total < 0 {
		total = 0
	}
	if consumed > total {
		consumed = total
	}
	if consumed < 0 {
		consumed = 0
	}

	counts := fmt.Sprintf(" %s/%s", humanize.IBytes(uint64(consumed)), humanize.IBytes(uint64(total)))

	// space for the label, brackets and counts
	barWidth := width - len(label) - len(counts) - 3
	if barWidth < 1 {
		return fmt.Sprintf("%s%s", label, counts)
	}

	fill := barWidth
	if total > 0 {
		fill = int(int64(barWidth) * consumed / total)
	}

	return fmt.Sprintf("%s [%s%s]%s", label, strings.Repeat("#", fill), strings.Repeat(".", barWidth-fill), counts)
}

// Progress implements the ingest.Progress interface.
func (b *Bar) Progress(label string, total, consumed int64) {
	if b.fd == -1 {
		return
	}
	s := Line(label, total, consumed, b.width()-1)
	pad := ""
	if len(s) < b.drawn {
		pad = strings.Repeat(" ", b.drawn-len(s))
	}
	fmt.Fprintf(b.out, "\r%s%s", s, pad)
	b.drawn = len(s)
}

// Clear implements the ingest.Progress interface.
func (b *Bar) Clear() {
	if b.fd == -1 || b.drawn == 0 {
		return
	}
	fmt.Fprintf(b.out, "\r%s\r", strings.Repeat(" ", b.drawn))
	b.drawn = 0
}

// Notify implements the notifications.Notify interface.
func (b *Bar) Notify(notice notifications.Notice) error {
	b.Clear()
	_, err := fmt.Fprintln(b.out, notice.Message())
	return err
}
