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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/memorymap"
	"github.com/jetsetilly/farmem/test"
)

const validMemMap = `0000000 -> 005ffff	Chip RAM
0060000 -> 7ffffff	Unmapped
8000000 -> 87fffff	Attic RAM
8800000 -> ff7ffff	Unmapped
ff80000 -> ff87fff	Colour RAM
ff88000 -> fffffff	Unmapped
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x40000), memorymap.ChipRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x60000), memorymap.Unmapped)
	test.ExpectEquality(t, memorymap.MapAddress(0x8000000), memorymap.AtticRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xff87fff), memorymap.ColourRAM)
	test.ExpectSuccess(t, memorymap.IsArea(0x5ffff, memorymap.ChipRAM))

	r, ok := memorymap.RegionOf(addresses.Address(0x8000010))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Size(), uint32(8*1024*1024))

	_, ok = memorymap.RegionOf(addresses.Max28)
	test.ExpectFailure(t, ok)
}
