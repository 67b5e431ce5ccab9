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

// Package version reports the version of the program. The version number is
// set at link time for release builds:
//
//	go build -ldflags "-X github.com/n64loader/n64loader/version.number=v0.1.0"
//
// Otherwise the version is derived from the VCS information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "n64loader"

// set with -ldflags for release builds
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
//
// If the version string is "unreleased" then the program has been built from a
// VCS checkout without a version number. If the version string is "local" then
// there is no version number and no VCS information.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary of the version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	version, revision = fromSettings(number, settings)
}

// fromSettings derives the version and revision strings from the version
// number and the build settings.
func fromSettings(number string, settings []debug.BuildSetting) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
