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

// Package preferences collates the preference values used by the emulated
// MEGA65 memory system.
package preferences

import (
	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/paths"
	"github.com/jetsetilly/farmem/prefs"
)

// default values
const (
	DefaultBase     = addresses.Address(0x40000)
	DefaultLimit    = addresses.Address(0x50000)
	DefaultAttic    = true
	DefaultDebounce = 3
	DefaultRate     = 8000
)

// Preferences defines and collates all the preference values used by the
// memory system.
type Preferences struct {
	dsk *prefs.Disk

	// the arena used by the machine's allocator. Limit is exclusive
	Base  prefs.Address
	Limit prefs.Address

	// attic RAM is fitted
	Attic prefs.Bool

	// number of agreeing reads required by a debounced peek
	Debounce prefs.Int

	// sample rate assumed for samples that don't specify one
	SampleRate prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory, if it exists.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit path to
// the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := NewDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefsValue{
		"far.base":        &p.Base,
		"far.limit":       &p.Limit,
		"ram.attic":       &p.Attic,
		"dmagic.debounce": &p.Debounce,
		"sample.rate":     &p.SampleRate,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// the subset of the prefs types' method set needed by this package. the
// prefs.Disk.Add() function accepts any of them.
type prefsValue interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// NewDefaults returns preferences that are not backed by a file. Useful for
// testing and for secondary emulations.
func NewDefaults() *Preferences {
	p := &Preferences{}
	p.Limit.Exclusive = true
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// set errors can't happen for these values
	_ = p.Base.Set(DefaultBase)
	_ = p.Limit.Set(DefaultLimit)
	_ = p.Attic.Set(DefaultAttic)
	_ = p.Debounce.Set(DefaultDebounce)
	_ = p.SampleRate.Set(DefaultRate)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Arena returns the base and limit addresses of the arena.
func (p *Preferences) Arena() (addresses.Address, addresses.Address) {
	return p.Base.Get().(addresses.Address), p.Limit.Get().(addresses.Address)
}
