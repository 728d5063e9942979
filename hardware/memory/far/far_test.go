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

package far_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware/dmagic"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
	"github.com/jetsetilly/farmem/hardware/memory/far"
	"github.com/jetsetilly/farmem/hardware/memory/ram"
	"github.com/jetsetilly/farmem/test"
)

// plainBus is the simplest possible implementation of bus.FarBus. every
// address in the 28-bit space is mapped.
type plainBus struct {
	mem map[addresses.Address]uint8
}

func newPlainBus() *plainBus {
	return &plainBus{mem: make(map[addresses.Address]uint8)}
}

func (b *plainBus) Peek(address addresses.Address) (uint8, error) {
	return b.mem[address], nil
}

func (b *plainBus) Poke(address addresses.Address, value uint8) error {
	b.mem[address] = value
	return nil
}

func (b *plainBus) ReadBlock(src addresses.Address, n uint16) ([]byte, error) {
	d := make([]byte, n)
	for i := range d {
		d[i] = b.mem[src+addresses.Address(i)]
	}
	return d, nil
}

func (b *plainBus) WriteBlock(dst addresses.Address, data []byte) error {
	for i, v := range data {
		b.mem[dst+addresses.Address(i)] = v
	}
	return nil
}

type backend struct {
	name string
	mem  bus.FarBus
}

func backends() []backend {
	env := environment.NewEnvironment("test", nil)
	return []backend{
		{name: "dmagic", mem: dmagic.NewController(env, ram.NewRAM(env, true))},
		{name: "plain", mem: newPlainBus()},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)

		for _, d := range [][]byte{
			{7, 9, 13},
			{},
			{0x00},
			bytes.Repeat([]byte{0xaa, 0x55}, 300),
			{0xff, 0x00, 0xff},
		} {
			p, err := alloc.Push(d)
			test.DemandSuccess(t, err, be.name)
			test.ExpectEquality(t, int(p.Len), len(d), be.name)

			b, err := p.Bytes(be.mem)
			test.ExpectSuccess(t, err, be.name)
			test.ExpectSuccess(t, bytes.Equal(b, d), be.name)
			test.ExpectEquality(t, len(b), len(d), be.name)
		}
	}
}

func TestFullBlockRoundTrip(t *testing.T) {
	d := make([]byte, bus.MaxBlock)
	for i := range d {
		d[i] = uint8(i*7 + i>>8)
	}

	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)

		p, err := alloc.Push(d)
		test.DemandSuccess(t, err, be.name)
		test.ExpectEquality(t, p.Len, uint16(bus.MaxBlock), be.name)
		test.ExpectEquality(t, alloc.Address(), addresses.Address(0x40000+bus.MaxBlock), be.name)

		b, err := p.Bytes(be.mem)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, len(b), bus.MaxBlock, be.name)
		test.ExpectSuccess(t, bytes.Equal(b, d), be.name)

		c, err := p.Iterator(be.mem).Chunk(uint16(bus.MaxBlock))
		test.ExpectSuccess(t, err, be.name)
		test.ExpectSuccess(t, bytes.Equal(c, d), be.name)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x8000000)

		for _, s := range []string{"", "a", "some LARGE string", "héllo wörld ☺"} {
			p, err := alloc.PushString(s)
			test.DemandSuccess(t, err, be.name)

			r, err := p.Text(be.mem)
			test.ExpectSuccess(t, err, be.name)
			test.ExpectEquality(t, r, s, be.name)

			r, err = p.UncheckedText(be.mem)
			test.ExpectSuccess(t, err, be.name)
			test.ExpectEquality(t, r, s, be.name)
		}
	}
}

func TestInvalidText(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)
		p, err := alloc.Push([]byte{'a', 0xff, 0xfe})
		test.DemandSuccess(t, err, be.name)

		_, err = p.Text(be.mem)
		test.ExpectSuccess(t, curated.Is(err, far.InvalidText), be.name)

		s, err := p.UncheckedText(be.mem)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, len(s), 3, be.name)
	}
}

func TestChunkConsistency(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)
		_, err := alloc.PushString("the quick brown fox jumps over the lazy dog")
		test.DemandSuccess(t, err, be.name)

		for _, n := range []uint16{0, 1, 5, 43, 60} {
			a := far.NewIterator(be.mem, 0x40002)
			b := far.NewIterator(be.mem, 0x40002)

			chunk, err := a.Chunk(n)
			test.ExpectSuccess(t, err, be.name, n)
			test.ExpectEquality(t, len(chunk), int(n), be.name, n)

			single, err := b.Take(int(n))
			test.ExpectSuccess(t, err, be.name, n)
			test.ExpectSuccess(t, bytes.Equal(chunk, single), be.name, n)

			test.ExpectEquality(t, a.Address(), b.Address(), be.name, n)
			test.ExpectEquality(t, a.Address(), addresses.Address(0x40002)+addresses.Address(n), be.name, n)
		}
	}
}

func TestCursorMonotonicity(t *testing.T) {
	for _, be := range backends() {
		it := far.NewIterator(be.mem, 0x40000)
		start := it.Address()

		_, err := it.Next()
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, it.Address(), start+1, be.name)

		test.ExpectSuccess(t, it.AdvanceBy(0), be.name)
		test.ExpectEquality(t, it.Address(), start+1, be.name)

		test.ExpectSuccess(t, it.AdvanceBy(100), be.name)
		test.ExpectEquality(t, it.Address(), start+101, be.name)

		_, err = it.Chunk(10)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, it.Address(), start+111, be.name)
	}
}

func TestAllocatorMonotonicity(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)

		var prev far.Ptr28
		for i, s := range []string{"a", "bb", "", "cccc", "d"} {
			p, err := alloc.PushString(s)
			test.DemandSuccess(t, err, be.name)
			if i > 0 {
				test.ExpectEquality(t, p.Address, prev.End(), be.name, i)
			}
			test.ExpectEquality(t, alloc.Address(), p.End(), be.name, i)
			prev = p
		}

		test.ExpectEquality(t, alloc.Used(), uint32(8), be.name)
		test.ExpectEquality(t, alloc.Base(), addresses.Address(0x40000), be.name)
	}
}

func TestDisjointness(t *testing.T) {
	const s = "some LARGE string"

	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)

		p1, err := alloc.Push([]byte{7, 9, 13})
		test.DemandSuccess(t, err, be.name)
		test.ExpectEquality(t, p1, far.NewPtr28(0x40000, 3), be.name)

		p2, err := alloc.PushString(s)
		test.DemandSuccess(t, err, be.name)
		test.ExpectEquality(t, p2, far.NewPtr28(0x40003, uint16(len(s))), be.name)

		test.ExpectFailure(t, p1.Overlaps(p2), be.name)
		test.ExpectFailure(t, p2.Overlaps(p1), be.name)

		b, err := p1.Bytes(be.mem)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectSuccess(t, bytes.Equal(b, []byte{7, 9, 13}), be.name)

		r, err := p2.Text(be.mem)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, r, s, be.name)
	}
}

func TestFilteredCollection(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)

		var ptrs []far.Ptr28
		for _, s := range []string{"first", "second"} {
			p, err := alloc.PushString(s)
			test.DemandSuccess(t, err, be.name)
			ptrs = append(ptrs, p)
		}

		var filtered []string
		for _, p := range ptrs {
			s, err := p.Text(be.mem)
			test.DemandSuccess(t, err, be.name)
			if strings.HasPrefix(s, "s") {
				filtered = append(filtered, s)
			}
		}

		test.DemandEquality(t, len(filtered), 1, be.name)
		test.ExpectEquality(t, filtered[0], "second", be.name)
	}
}

func TestExtraction(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)

		_, err := alloc.Push([]byte{7, 9, 13})
		test.DemandSuccess(t, err, be.name)
		_, err = alloc.PushString("some LARGE string")
		test.DemandSuccess(t, err, be.name)

		it := far.NewIterator(be.mem, 0x40000)
		test.ExpectSuccess(t, it.AdvanceBy(3+5), be.name)
		b, err := it.Take(5)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, string(b), "LARGE", be.name)

		// the same extraction using the range sequence
		it = far.NewIterator(be.mem, 0x40000)
		var s strings.Builder
		i := 0
		for v := range it.All() {
			if i >= 3+5 {
				s.WriteByte(v)
			}
			i++
			if i >= 3+5+5 {
				break
			}
		}
		test.ExpectSuccess(t, it.Err(), be.name)
		test.ExpectEquality(t, s.String(), "LARGE", be.name)
	}
}

func TestArena(t *testing.T) {
	for _, be := range backends() {
		alloc, err := far.NewArena(be.mem, 0x40000, 0x40008)
		test.DemandSuccess(t, err, be.name)
		test.ExpectEquality(t, alloc.Limit(), addresses.Address(0x40008), be.name)

		_, err = alloc.PushString("12345")
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, alloc.Remaining(), uint32(3), be.name)

		// too large for the remaining space. nothing should be written
		_, err = alloc.PushString("6789")
		test.ExpectSuccess(t, curated.Is(err, far.ArenaExhausted), be.name)
		test.ExpectEquality(t, alloc.Address(), addresses.Address(0x40005), be.name)
		v, err := be.mem.Peek(0x40005)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, v, 0, be.name)

		// fills the arena exactly
		_, err = alloc.PushString("678")
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, alloc.Remaining(), uint32(0), be.name)

		// zero length pushes are always possible
		p, err := alloc.Push(nil)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, p, far.NewPtr28(0x40008, 0), be.name)

		_, err = alloc.PushString("9")
		test.ExpectSuccess(t, curated.Is(err, far.ArenaExhausted), be.name)
	}
}

func TestLengthOverflow(t *testing.T) {
	mem := newPlainBus()
	alloc := far.NewAllocator(mem, 0x40000)

	_, err := alloc.Push(make([]byte, bus.MaxBlock+1))
	test.ExpectSuccess(t, curated.Is(err, far.LengthOverflow))
	test.ExpectEquality(t, alloc.Address(), addresses.Address(0x40000))
	test.ExpectEquality(t, len(mem.mem), 0)

	p, err := alloc.Push(make([]byte, bus.MaxBlock))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Len, uint16(bus.MaxBlock))
}

func TestInvalidArena(t *testing.T) {
	mem := newPlainBus()

	_, err := far.NewArena(mem, 0x50000, 0x40000)
	test.ExpectSuccess(t, curated.Is(err, far.InvalidArena))

	_, err = far.NewArena(mem, 0x40000, addresses.Max28+2)
	test.ExpectSuccess(t, curated.Is(err, far.InvalidArena))

	alloc, err := far.NewArena(mem, addresses.Max28-1, addresses.End)
	test.DemandSuccess(t, err)
	_, err = alloc.PushString("ab")
	test.ExpectSuccess(t, err)
	_, err = alloc.PushString("c")
	test.ExpectSuccess(t, curated.Is(err, far.ArenaExhausted))
}

func TestAddressOverflow(t *testing.T) {
	mem := newPlainBus()
	test.DemandSuccess(t, mem.Poke(addresses.Max28, 0x42))

	it := far.NewIterator(mem, addresses.Max28)
	v, err := it.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)
	test.ExpectEquality(t, it.Address(), addresses.End)

	_, err = it.Next()
	test.ExpectSuccess(t, curated.Is(err, far.AddressOverflow))
	test.ExpectEquality(t, it.Address(), addresses.End)

	it = far.NewIterator(mem, addresses.Max28-3)
	_, err = it.Chunk(5)
	test.ExpectSuccess(t, curated.Is(err, far.AddressOverflow))
	err = it.AdvanceBy(5)
	test.ExpectSuccess(t, curated.Is(err, far.AddressOverflow))
	test.ExpectEquality(t, it.Address(), addresses.Max28-3)

	b, err := it.Take(5)
	test.ExpectSuccess(t, curated.Is(err, far.AddressOverflow))
	test.ExpectEquality(t, len(b), 4)

	// the sequence ends at the top of the address space
	it = far.NewIterator(mem, addresses.Max28-3)
	n := 0
	for range it.All() {
		n++
	}
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, curated.Is(it.Err(), far.AddressOverflow))
}

func TestSequenceError(t *testing.T) {
	env := environment.NewEnvironment("test", nil)
	dma := dmagic.NewController(env, ram.NewRAM(env, true))

	// chip RAM ends at $005ffff
	it := far.NewIterator(dma, 0x5fffe)
	n := 0
	for range it.All() {
		n++
	}
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, curated.Has(it.Err(), ram.UnmappedAddress))
	test.ExpectEquality(t, it.Address(), addresses.Address(0x60000))
}

func TestOverlaps(t *testing.T) {
	a := far.NewPtr28(0x40000, 4)
	test.ExpectSuccess(t, a.Overlaps(far.NewPtr28(0x40003, 1)))
	test.ExpectSuccess(t, a.Overlaps(far.NewPtr28(0x3ffff, 2)))
	test.ExpectFailure(t, a.Overlaps(far.NewPtr28(0x40004, 1)))
	test.ExpectFailure(t, a.Overlaps(far.NewPtr28(0x40001, 0)))
	test.ExpectEquality(t, a.String(), "$0040000 (4 bytes)")
	test.ExpectEquality(t, a.End(), addresses.Address(0x40004))
}

func TestPtrIterator(t *testing.T) {
	for _, be := range backends() {
		alloc := far.NewAllocator(be.mem, 0x40000)
		p, err := alloc.PushString("MEGA65")
		test.DemandSuccess(t, err, be.name)

		it := p.Iterator(be.mem)
		test.ExpectEquality(t, it.Address(), p.Address, be.name)
		b, err := it.Chunk(p.Len)
		test.ExpectSuccess(t, err, be.name)
		test.ExpectEquality(t, string(b), "MEGA65", be.name)
	}
}
