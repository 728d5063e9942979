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

package ram_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
	"github.com/jetsetilly/farmem/hardware/memory/ram"
	"github.com/jetsetilly/farmem/test"
)

func newRAM(attic bool) *ram.RAM {
	return ram.NewRAM(environment.NewEnvironment("test", nil), attic)
}

func TestPeekPoke(t *testing.T) {
	mem := newRAM(true)
	var _ bus.FarBus = mem

	// unwritten memory reads as zero and does not allocate a page
	v, err := mem.Peek(0x40000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, mem.PagesAllocated(), 0)

	test.ExpectSuccess(t, mem.Poke(0x40000, 0x7f))
	v, err = mem.Peek(0x40000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x7f)
	test.ExpectEquality(t, mem.PagesAllocated(), 1)

	test.ExpectSuccess(t, mem.Poke(0x8000000, 0x01))
	test.ExpectEquality(t, mem.PagesAllocated(), 2)

	mem.Reset()
	test.ExpectEquality(t, mem.PagesAllocated(), 0)
}

func TestUnmapped(t *testing.T) {
	mem := newRAM(false)

	_, err := mem.Peek(0x60000)
	test.ExpectSuccess(t, curated.Is(err, ram.UnmappedAddress))

	// attic RAM is disabled
	err = mem.Poke(0x8000000, 0x01)
	test.ExpectSuccess(t, curated.Is(err, ram.UnmappedAddress))

	// block crossing the end of chip RAM
	err = mem.WriteBlock(0x5fffe, []byte{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, ram.UnmappedAddress))
	_, err = mem.ReadBlock(0x5fffe, 3)
	test.ExpectSuccess(t, curated.Is(err, ram.UnmappedAddress))

	// nothing was written by the failed block
	v, err := mem.Peek(0x5fffe)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
}

func TestBlocks(t *testing.T) {
	mem := newRAM(true)

	// a block that crosses a page boundary
	data := []byte("some LARGE string")
	dst := addresses.Address(0x4fff8)
	test.ExpectSuccess(t, mem.WriteBlock(dst, data))

	got, err := mem.ReadBlock(dst, uint16(len(data)))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(got, data))

	for i := range data {
		v, err := mem.Peek(dst + addresses.Address(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, data[i])
	}

	// zero length operations
	got, err = mem.ReadBlock(dst, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(got), 0)
	test.ExpectSuccess(t, mem.WriteBlock(0x60000, nil))

	// too large
	err = mem.WriteBlock(0, make([]byte, bus.MaxBlock+1))
	test.ExpectSuccess(t, curated.Is(err, ram.BlockTooLarge))
}

func TestDump(t *testing.T) {
	mem := newRAM(true)
	test.ExpectSuccess(t, mem.WriteBlock(0x40000, []byte{7, 9, 13}))

	header := "          -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n" +
		"        ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n"

	expected := header + "0040000 | 07 09 0d 00" + strings.Repeat(" ", 12*3)
	test.ExpectEquality(t, mem.Dump(0x40000, 4), expected)

	// addresses before the start of the dump are left blank
	expected = header + "005fff0 |" + strings.Repeat(" ", 13*3) + " 00 00 00"
	test.ExpectEquality(t, mem.Dump(0x5fffd, 3), expected)

	// unmapped addresses
	expected = header + "005fff0 |" + strings.Repeat(" ", 15*3) + " 00\n" +
		"0060000 | -- --" + strings.Repeat(" ", 14*3)
	test.ExpectEquality(t, mem.Dump(0x5ffff, 3), expected)
}
