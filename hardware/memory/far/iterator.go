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
	"iter"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
)

// Iterator is a forward only cursor over far memory. There is no end to the
// sequence other than the end of the 28-bit address space.
type Iterator struct {
	mem  bus.FarBus
	addr addresses.Address

	// the error that stopped the most recent All() sequence
	err error
}

// NewIterator is the preferred method of initialisation for the Iterator type.
func NewIterator(mem bus.FarBus, address addresses.Address) *Iterator {
	return &Iterator{
		mem:  mem,
		addr: address,
	}
}

// Address returns the address of the next byte to be read.
func (it *Iterator) Address() addresses.Address {
	return it.addr
}

func (it *Iterator) advance(n uint32) (addresses.Address, error) {
	a, err := it.addr.Add(n)
	if err != nil {
		return it.addr, curated.Errorf(AddressOverflow, it.addr, n)
	}
	return a, nil
}

// Next reads a single byte and advances the cursor by one.
func (it *Iterator) Next() (uint8, error) {
	a, err := it.advance(1)
	if err != nil {
		return 0, err
	}
	v, err := it.mem.Peek(it.addr)
	if err != nil {
		return 0, err
	}
	it.addr = a
	return v, nil
}

// Chunk reads n bytes with a single block transfer and advances the cursor by
// n. The result is the same as n calls to Next().
func (it *Iterator) Chunk(n uint16) ([]byte, error) {
	a, err := it.advance(uint32(n))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	b, err := it.mem.ReadBlock(it.addr, n)
	if err != nil {
		return nil, err
	}
	it.addr = a
	return b, nil
}

// AdvanceBy moves the cursor forward n bytes without reading memory.
func (it *Iterator) AdvanceBy(n uint32) error {
	a, err := it.advance(n)
	if err != nil {
		return err
	}
	it.addr = a
	return nil
}

// Take reads n bytes one at a time. If an error occurs the bytes read up to
// that point are returned along with the error.
func (it *Iterator) Take(n int) ([]byte, error) {
	b := make([]byte, 0, n)
	for range n {
		v, err := it.Next()
		if err != nil {
			return b, err
		}
		b = append(b, v)
	}
	return b, nil
}

// All returns the remainder of far memory as a sequence of bytes. The sequence
// is unbounded so the caller must stop ranging over it. If the sequence ends
// because of an error, the error is returned by Err().
func (it *Iterator) All() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		it.err = nil
		for {
			v, err := it.Next()
			if err != nil {
				it.err = err
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the error that ended the most recent All() sequence.
func (it *Iterator) Err() error {
	return it.err
}
