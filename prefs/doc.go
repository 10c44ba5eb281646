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

// Package prefs facilitates the storage of preferential values in the
// Axiregs system. It is a key/value store with values being one of the
// supported types: Bool, Int and String.
//
// A Disk instance associates keys with preference values and saves/loads
// them from a file on disk. Keys are dotted strings by convention, with the
// first part naming the subsystem:
//
//	dsk, err := prefs.NewDisk(pth)
//	var strict prefs.Bool
//	err = dsk.Add("hardware.strictdecode", &strict)
//	err = dsk.Load()
//
// The file format is one "key :: value" pair per line, preceded by a
// warning line. Entries in the file that are not registered with the Disk
// instance are preserved when the file is saved.
//
// Values can be overridden from the command line with the
// PushCommandLineStack() function. Overrides are applied the next time a
// Disk is loaded and are consumed in the process.
package prefs
