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

// Package prefs holds typed preference values and persists them to disk.
//
// Preference values are declared as fields of a type and registered with a
// Disk instance under a key:
//
//	type Preferences struct {
//		dsk  *prefs.Disk
//		Base prefs.Address
//	}
//
//	p.dsk, err = prefs.NewDisk(pth)
//	err = p.dsk.Add("far.base", &p.Base)
//	err = p.dsk.Load()
//
// The preferences file is a plain text file of "key :: value" lines. More
// than one Disk instance can share a file. Keys that a Disk instance does not
// know about are preserved when it saves.
//
// Values can be overridden from the command line with
// PushCommandLineStack(). The string is a list of key/value pairs:
//
//	far.base::$40000; far.limit::$50000
//
// Overrides are consumed by the next call to Disk.Load() and are not saved
// to disk unless Save() is called afterwards.
package prefs
