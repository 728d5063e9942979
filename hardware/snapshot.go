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
	"github.com/jetsetilly/farmem/hardware/dmagic"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/far"
)

// State is a summary of the MEGA65 far memory system. It contains no
// references to the live emulation and is suitable for visualisation.
type State struct {
	Arena struct {
		Base  addresses.Address
		Limit addresses.Address
		Next  addresses.Address
		Used  uint32
	}
	Pages int
	Stats dmagic.Stats

	// pointers and iterator positions supplied to Snapshot()
	Pointers []far.Ptr28
	Cursors  []addresses.Address
}

// Snapshot the state of the far memory system. The pointers and iterators are
// recorded alongside the allocator state.
func (m *MEGA65) Snapshot(ptrs []far.Ptr28, cursors ...*far.Iterator) *State {
	s := &State{
		Pages:    m.RAM.PagesAllocated(),
		Stats:    m.DMA.Stats(),
		Pointers: append([]far.Ptr28{}, ptrs...),
	}
	for _, it := range cursors {
		s.Cursors = append(s.Cursors, it.Address())
	}
	s.Arena.Base = m.Alloc.Base()
	s.Arena.Limit = m.Alloc.Limit()
	s.Arena.Next = m.Alloc.Address()
	s.Arena.Used = m.Alloc.Used()
	return s
}
