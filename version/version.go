// This file is part of Axiregs.
//
// Axiregs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Axiregs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Axiregs.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application. The version number
// is set by the linker when building a release; otherwise the build
// information embedded by the Go toolchain is used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Axiregs"

// set with -ldflags "-X github.com/jetsetilly/axiregs/version.number=v0.1.0"
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the build has VCS information but no
// version number, and "local" if it has neither.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

func init() {
	version, revision = describe(number, readBuildInfo())
}

// buildInfo is the subset of the embedded build settings of interest.
type buildInfo struct {
	vcs      bool
	revision string
	modified bool
}

func readBuildInfo() buildInfo {
	var b buildInfo

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			b.vcs = true
		case "vcs.revision":
			b.revision = s.Value
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}

	return b
}

func describe(number string, b buildInfo) (string, string) {
	rev := "no revision information"
	if b.revision != "" {
		rev = b.revision
		if b.modified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case b.vcs:
		return "unreleased", rev
	}
	return "local", rev
}
