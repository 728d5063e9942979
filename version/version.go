// This file is part of Farmem.
//
// Farmem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Farmem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Farmem.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/farmem/version.number=v0.1.0"
//
// Otherwise the version is taken from the VCS information embedded by the Go
// toolchain, if there is any.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Farmem"

// set by the linker for release builds
var number string

var (
	version  string
	revision string
)

func init() {
	version, revision = fromBuildInfo(number)
}

// fromBuildInfo decides on the version and revision strings. The version is
// "unreleased" if the program was built from a repository but without a
// version number, and "local" if there is no repository information at all.
func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line description of the version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
