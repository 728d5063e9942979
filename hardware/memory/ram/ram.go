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

package ram

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
	"github.com/jetsetilly/farmem/hardware/memory/memorymap"
	"github.com/jetsetilly/farmem/logger"
)

// Sentinal error patterns.
const (
	UnmappedAddress = "ram: unmapped address: %v"
	BlockTooLarge   = "ram: block of %d bytes is too large"
)

const (
	pageShift = 16
	pageSize  = 1 << pageShift
	pageMask  = pageSize - 1
)

// RAM is the far memory of the MEGA65.
type RAM struct {
	env *environment.Environment

	// whether attic RAM is available
	attic bool

	// pages are indexed by address >> pageShift
	pages map[uint32][]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(env *environment.Environment, attic bool) *RAM {
	return &RAM{
		env:   env,
		attic: attic,
		pages: make(map[uint32][]uint8),
	}
}

// Reset clears all memory.
func (r *RAM) Reset() {
	clear(r.pages)
}

// PagesAllocated returns the number of 64k pages that have been written to.
func (r *RAM) PagesAllocated() int {
	return len(r.pages)
}

// check that every address in the n bytes starting at a is mapped. n must be
// at least one.
func (r *RAM) check(a addresses.Address, n uint32) error {
	reg, ok := memorymap.RegionOf(a)
	if !ok || (reg.Area == memorymap.AtticRAM && !r.attic) {
		logger.Logf(r.env, "ram", "access to unmapped address %v", a)
		return curated.Errorf(UnmappedAddress, a)
	}

	last := uint64(a) + uint64(n) - 1
	if last > uint64(reg.Memtop) {
		end := addresses.Address(last)
		if end > reg.Memtop+1 {
			end = reg.Memtop + 1
		}
		logger.Logf(r.env, "ram", "access crosses end of %s at %v", reg.Area, end)
		return curated.Errorf(UnmappedAddress, end)
	}

	return nil
}

// page returns the page for the address. if create is false and the page has
// not been allocated then nil is returned.
func (r *RAM) page(a addresses.Address, create bool) []uint8 {
	idx := uint32(a) >> pageShift
	p, ok := r.pages[idx]
	if !ok && create {
		p = make([]uint8, pageSize)
		r.pages[idx] = p
	}
	return p
}

// Peek implements the bus.ByteBus interface.
func (r *RAM) Peek(address addresses.Address) (uint8, error) {
	if err := r.check(address, 1); err != nil {
		return 0, err
	}
	p := r.page(address, false)
	if p == nil {
		return 0, nil
	}
	return p[address&pageMask], nil
}

// Poke implements the bus.ByteBus interface.
func (r *RAM) Poke(address addresses.Address, value uint8) error {
	if err := r.check(address, 1); err != nil {
		return err
	}
	r.page(address, true)[address&pageMask] = value
	return nil
}

// ReadBlock implements the bus.BlockBus interface.
func (r *RAM) ReadBlock(src addresses.Address, n uint16) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if err := r.check(src, uint32(n)); err != nil {
		return nil, err
	}

	data := make([]byte, n)
	r.read(src, data)
	return data, nil
}

// WriteBlock implements the bus.BlockBus interface.
func (r *RAM) WriteBlock(dst addresses.Address, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if len(data) > bus.MaxBlock {
		return curated.Errorf(BlockTooLarge, len(data))
	}
	if err := r.check(dst, uint32(len(data))); err != nil {
		return err
	}

	r.write(dst, data)
	return nil
}

// read fills data from far memory one page at a time. addresses must have
// been checked.
func (r *RAM) read(a addresses.Address, data []byte) {
	for len(data) > 0 {
		o := int(a & pageMask)
		n := min(len(data), pageSize-o)
		if p := r.page(a, false); p != nil {
			copy(data[:n], p[o:o+n])
		} else {
			clear(data[:n])
		}
		data = data[n:]
		a += addresses.Address(n)
	}
}

// write is the counterpart to read().
func (r *RAM) write(a addresses.Address, data []byte) {
	for len(data) > 0 {
		o := int(a & pageMask)
		n := min(len(data), pageSize-o)
		copy(r.page(a, true)[o:o+n], data[:n])
		data = data[n:]
		a += addresses.Address(n)
	}
}

// Dump returns a hex listing of n bytes starting at address. Unmapped
// addresses are shown as "--".
func (r *RAM) Dump(address addresses.Address, n int) string {
	s := strings.Builder{}
	s.WriteString("          -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("        ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	row := address &^ 0x0f
	end := uint64(address) + uint64(n)
	for uint64(row) < end {
		s.WriteString(fmt.Sprintf("%07x |", uint32(row)))
		for x := addresses.Address(0); x < 16; x++ {
			a := row + x
			if a < address || uint64(a) >= end {
				s.WriteString("   ")
				continue
			}
			if memorymap.MapAddress(a) == memorymap.Unmapped || (memorymap.IsArea(a, memorymap.AtticRAM) && !r.attic) {
				s.WriteString(" --")
				continue
			}
			var v uint8
			if p := r.page(a, false); p != nil {
				v = p[a&pageMask]
			}
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		s.WriteString("\n")
		row += 16
	}

	return strings.TrimSuffix(s.String(), "\n")
}
