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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/farmem/curated"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// Sentinal error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	DuplicateKey   = "prefs: key %q has already been added"
	InvalidKey     = "prefs: invalid key %q"
	PrefsFileError = "prefs: %v"
)

const warningBoilerPlate = "*** do not edit this file by hand ***"

// separates key and value in the prefs file
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the disk. Keys must be unique for the Disk
// instance and must not contain the key separator or a semicolon.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.Contains(key, "::") || strings.Contains(key, ";") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}
	return nil
}

// readFile returns all key/value pairs in the prefs file.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == warningBoilerPlate {
			continue
		}
		k, v, ok := strings.Cut(line, keySep)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileError, err)
	}

	return entries, nil
}

// Load preference values from disk and then apply any command line overrides.
// A missing prefs file is reported with the NoPrefsFile pattern but
// command line overrides are still applied.
func (dsk *Disk) Load() error {
	entries, loadErr := dsk.readFile()
	if loadErr != nil && !curated.Is(loadErr, NoPrefsFile) {
		return loadErr
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	for k, p := range dsk.entries {
		if v, ok := getCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	return loadErr
}

// Save preference values to disk. Entries in the file that are not known to
// this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(warningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, entries[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}
