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

package environment

import (
	"github.com/jetsetilly/farmem/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations, for example a scratch machine used to
// verify a sample before it is loaded into the main machine.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case default preferences not backed
// by a file are used. Providing a non-nil value allows the preferences of
// more than one emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) *Environment {
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}
	return &Environment{
		Label: label,
		Prefs: prefs,
	}
}

// Normalise ensures the environment is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log. A nil environment is always allowed to log.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return true
	}
	return env.IsMainEmulation()
}
