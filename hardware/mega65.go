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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware/dmagic"
	"github.com/jetsetilly/farmem/hardware/memory/far"
	"github.com/jetsetilly/farmem/hardware/memory/ram"
	"github.com/jetsetilly/farmem/logger"
)

// MEGA65 is the root of the emulation.
type MEGA65 struct {
	Env *environment.Environment

	RAM *ram.RAM
	DMA *dmagic.Controller

	// the allocator writes through the DMA controller
	Alloc *far.Allocator
}

// NewMEGA65 creates a new MEGA65 and everything associated with the far
// memory system. The arena used by the allocator and the availability of
// attic RAM are taken from the environment's preferences.
func NewMEGA65(env *environment.Environment) (*MEGA65, error) {
	if env == nil {
		env = environment.NewEnvironment(environment.MainEmulation, nil)
	}

	m := &MEGA65{Env: env}

	m.RAM = ram.NewRAM(env, env.Prefs.Attic.Get().(bool))
	m.DMA = dmagic.NewController(env, m.RAM)

	if err := m.resetAllocator(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MEGA65) resetAllocator() error {
	base, limit := m.Env.Prefs.Arena()

	var err error
	m.Alloc, err = far.NewArena(m.DMA, base, limit)
	if err != nil {
		return err
	}

	logger.Logf(m.Env, "far", "arena %v -> %v", base, limit)

	return nil
}

func (m *MEGA65) String() string {
	return fmt.Sprintf("alloc: %v\ndmagic: %v", m.Alloc, m.DMA.Stats())
}

// Reset clears far memory, the DMAgic statistics and the allocator. Any
// existing Ptr28 values will point to zeroed memory.
func (m *MEGA65) Reset() error {
	m.RAM.Reset()
	m.DMA.ResetStats()
	return m.resetAllocator()
}
