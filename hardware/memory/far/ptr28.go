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
	"unicode/utf8"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
)

// Ptr28 is a fat pointer to a region of far memory. It does not own the
// memory it points to.
type Ptr28 struct {
	Address addresses.Address
	Len     uint16
}

// NewPtr28 returns a pointer to an existing region of far memory.
func NewPtr28(address addresses.Address, n uint16) Ptr28 {
	return Ptr28{Address: address, Len: n}
}

func (p Ptr28) String() string {
	return fmt.Sprintf("%v (%d bytes)", p.Address, p.Len)
}

// End returns the address immediately after the region.
func (p Ptr28) End() addresses.Address {
	return p.Address + addresses.Address(p.Len)
}

// Overlaps returns true if the two regions share at least one address. Zero
// length regions overlap nothing.
func (p Ptr28) Overlaps(o Ptr28) bool {
	if p.Len == 0 || o.Len == 0 {
		return false
	}
	return p.Address < o.End() && o.Address < p.End()
}

// Bytes copies the region into a new slice of exactly Len bytes. The data is
// whatever is in far memory at the time of the call.
func (p Ptr28) Bytes(mem bus.BlockBus) ([]byte, error) {
	if p.Len == 0 {
		return []byte{}, nil
	}
	return mem.ReadBlock(p.Address, p.Len)
}

// Text copies the region and returns it as a string. Data that is not valid
// UTF-8 results in an InvalidText error.
func (p Ptr28) Text(mem bus.BlockBus) (string, error) {
	b, err := p.Bytes(mem)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", curated.Errorf(InvalidText, p.Address)
	}
	return string(b), nil
}

// UncheckedText is the same as Text() except that the data is not validated.
func (p Ptr28) UncheckedText(mem bus.BlockBus) (string, error) {
	b, err := p.Bytes(mem)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Iterator returns a new Iterator positioned at the start of the region. The
// iterator is not bounded by the length of the region.
func (p Ptr28) Iterator(mem bus.FarBus) *Iterator {
	return NewIterator(mem, p.Address)
}
