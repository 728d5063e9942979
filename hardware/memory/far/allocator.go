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

package far

import (
	"fmt"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
)

// Sentinal error patterns.
const (
	ArenaExhausted  = "far: arena exhausted: %d bytes requested with %d remaining"
	LengthOverflow  = "far: length of %d is more than the maximum of %d"
	InvalidArena    = "far: invalid arena: %v to %v"
	AddressOverflow = "far: cursor at %v cannot advance by %d"
	InvalidText     = "far: data at %v is not valid text"
)

// Allocator copies data into far memory at increasing addresses. Memory is
// never freed or reused.
type Allocator struct {
	mem bus.BlockBus

	base addresses.Address

	// limit is exclusive. for an unbounded allocator it is one past the end
	// of the 28-bit address space
	limit addresses.Address

	// the next free address
	addr addresses.Address
}

// NewAllocator is the preferred method of initialisation for the Allocator
// type. The allocator is bounded only by the 28-bit address space.
func NewAllocator(mem bus.BlockBus, base addresses.Address) *Allocator {
	return &Allocator{
		mem:   mem,
		base:  base,
		limit: addresses.End,
		addr:  base,
	}
}

// NewArena creates an allocator that will never write to limit or beyond.
func NewArena(mem bus.BlockBus, base addresses.Address, limit addresses.Address) (*Allocator, error) {
	if !base.Valid() || limit > addresses.End || limit < base {
		return nil, curated.Errorf(InvalidArena, base, limit)
	}
	a := NewAllocator(mem, base)
	a.limit = limit
	return a, nil
}

func (a *Allocator) String() string {
	return fmt.Sprintf("%v [%v -> %v] %d bytes used", a.addr, a.base, a.limit, a.Used())
}

// Address returns the address that will be used by the next Push().
func (a *Allocator) Address() addresses.Address {
	return a.addr
}

// Base returns the address of the first allocation.
func (a *Allocator) Base() addresses.Address {
	return a.base
}

// Limit returns the exclusive upper bound of the allocator.
func (a *Allocator) Limit() addresses.Address {
	return a.limit
}

// Remaining returns the number of bytes that can still be allocated.
func (a *Allocator) Remaining() uint32 {
	if a.addr >= a.limit {
		return 0
	}
	return uint32(a.limit - a.addr)
}

// Used returns the number of bytes allocated so far.
func (a *Allocator) Used() uint32 {
	return uint32(a.addr - a.base)
}

// Push copies data to far memory and returns a pointer to the copy. The next
// free address is advanced by the length of data.
//
// Data longer than bus.MaxBlock results in a LengthOverflow error. If there is
// not enough room left the result is an ArenaExhausted error. In both cases,
// and for any error from the bus, nothing is written and the next free address
// does not change.
//
// Pushing zero bytes is allowed and returns a zero length pointer to the next
// free address.
func (a *Allocator) Push(data []byte) (Ptr28, error) {
	if len(data) > bus.MaxBlock {
		return Ptr28{}, curated.Errorf(LengthOverflow, len(data), bus.MaxBlock)
	}

	p := Ptr28{Address: a.addr, Len: uint16(len(data))}
	if p.Len == 0 {
		return p, nil
	}

	if uint32(p.Len) > a.Remaining() {
		return Ptr28{}, curated.Errorf(ArenaExhausted, p.Len, a.Remaining())
	}

	if err := a.mem.WriteBlock(p.Address, data); err != nil {
		return Ptr28{}, err
	}

	a.addr = p.End()

	return p, nil
}

// PushString is a convenience function for Push([]byte(s)).
func (a *Allocator) PushString(s string) (Ptr28, error) {
	return a.Push([]byte(s))
}
