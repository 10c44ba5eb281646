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

// Package paths contains functions to prepare paths for Axiregs resources.
//
// The ResourcePath() function returns the path to a resource file or
// directory, creating any directories as required. The base directory is
// ".axiregs" in the current working directory if it exists, otherwise the
// "axiregs" directory in the user's configuration directory.
package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".axiregs"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths. The directory part of the
// path is created if it does not already exist.
//
// The function takes care of creation of all folders necessary to reach the
// resource file. The file itself is not created.
func ResourcePath(path string, file string) (string, error) {
	dir := filepath.Join(getBasePath(), path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, file), nil
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cfg, baseResourcePath[1:])
}
