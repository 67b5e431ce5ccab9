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

package logger_test

import (
	"strings"
	"testing"

	"github.com/n64loader/n64loader/logger"
	"github.com/n64loader/n64loader/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "database", "unknown tag: foo")
	log.Log(logger.Allow, "database", "unknown tag: foo")
	log.Log(logger.Allow, "database", "unknown tag: foo")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "database: unknown tag: foo (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Logf(logger.Deny, "tag", "detail %d", 1)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Logf(prohibitLogging{allow: true}, "tag", "detail %d", 2)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail 2\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &strings.Builder{}

	log.Log(logger.Allow, "before", "echo")
	log.SetEcho(echo, true)
	log.Log(logger.Allow, "after", "echo")
	test.ExpectEquality(t, echo.String(), "before: echo\nafter: echo\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "off", "echo")
	test.ExpectEquality(t, echo.String(), "before: echo\nafter: echo\n")
}
