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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/n64loader/n64loader/curated"
	"github.com/n64loader/n64loader/prefs"
	"github.com/n64loader/n64loader/test"
)

func newDisk(t *testing.T) (*prefs.Disk, string) {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "preferences.yaml")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	return dsk, fn
}

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	dsk, fn := newDisk(t)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test: \"true\"\ntestB: \"false\"\ntestC: \"true\"\n")
}

func TestString(t *testing.T) {
	dsk, fn := newDisk(t)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "foo: \"bar\"\n")
}

func TestInt(t *testing.T) {
	dsk, fn := newDisk(t)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number: \"10\"\nnumberB: \"99\"\n")

	err := v.Set("---")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestLoad(t *testing.T) {
	dsk, fn := newDisk(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("autodetect: \"false\"\nindex: \"3\"\nother: \"kept\"\n"), 0o600))

	var a prefs.Bool
	var i prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, a.Set(true))
	test.ExpectSuccess(t, s.Set("default"))
	test.ExpectSuccess(t, dsk.Add("autodetect", &a))
	test.ExpectSuccess(t, dsk.Add("index", &i))
	test.ExpectSuccess(t, dsk.Add("database", &s))

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, a.Get(), prefs.Value(false))
	test.ExpectEquality(t, i.Get(), prefs.Value(3))

	// values not in the file are unchanged
	test.ExpectEquality(t, s.String(), "default")

	// keys that don't belong to the disk are preserved
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "autodetect: \"false\"\ndatabase: \"default\"\nindex: \"3\"\nother: \"kept\"\n")
}

func TestLoadMissingFile(t *testing.T) {
	dsk, _ := newDisk(t)
	var a prefs.Bool
	test.ExpectSuccess(t, dsk.Add("autodetect", &a))
	test.ExpectSuccess(t, dsk.Load())
}

func TestLoadCommandLine(t *testing.T) {
	dsk, fn := newDisk(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("index: \"3\"\n"), 0o600))

	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("index", &i))

	prefs.PushCommandLineStack("index::7; unused::1")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get(), prefs.Value(7))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
}

func TestAddKey(t *testing.T) {
	dsk, _ := newDisk(t)
	var a prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &a))
	test.ExpectFailure(t, dsk.Add("a::b", &a))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return curated.Errorf("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook failure prevents the value from changing
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(5))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, post, 0)
}
