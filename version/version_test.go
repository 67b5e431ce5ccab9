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

package version_test

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/n64loader/n64loader/test"
	"github.com/n64loader/n64loader/version"
)

func TestFromSettings(t *testing.T) {
	v, r := version.FromSettings("", nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	}
	v, r = version.FromSettings("", settings)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123+dirty")

	v, r = version.FromSettings("v0.1.0", settings[:2])
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectEquality(t, r, "abc123")
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(version.String(), version.ApplicationName))
}
