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

package memorymap

import "github.com/jetsetilly/farmem/hardware/memory/addresses"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ChipRAM:
		return "Chip RAM"
	case AtticRAM:
		return "Attic RAM"
	case ColourRAM:
		return "Colour RAM"
	}

	return "Unmapped"
}

// The different memory areas of the MEGA65.
const (
	Unmapped Area = iota
	ChipRAM
	AtticRAM
	ColourRAM
)

// The origin and memory top for each area of memory. The chip RAM area
// includes the 128k of RAM that is loaded with the ROM at boot.
const (
	OriginChipRAM   = addresses.Address(0x0000000)
	MemtopChipRAM   = addresses.Address(0x005ffff)
	OriginAtticRAM  = addresses.Address(0x8000000)
	MemtopAtticRAM  = addresses.Address(0x87fffff)
	OriginColourRAM = addresses.Address(0xff80000)
	MemtopColourRAM = addresses.Address(0xff87fff)
)

// Region is a contiguous run of addresses belonging to one area.
type Region struct {
	Area   Area
	Origin addresses.Address
	Memtop addresses.Address
}

// Size of the region in bytes.
func (r Region) Size() uint32 {
	return uint32(r.Memtop-r.Origin) + 1
}

// Contains returns true if the address is inside the region.
func (r Region) Contains(a addresses.Address) bool {
	return a >= r.Origin && a <= r.Memtop
}

// Regions lists the mapped areas in ascending address order.
var Regions = []Region{
	{Area: ChipRAM, Origin: OriginChipRAM, Memtop: MemtopChipRAM},
	{Area: AtticRAM, Origin: OriginAtticRAM, Memtop: MemtopAtticRAM},
	{Area: ColourRAM, Origin: OriginColourRAM, Memtop: MemtopColourRAM},
}

// MapAddress returns the area the address falls within.
func MapAddress(a addresses.Address) Area {
	for _, r := range Regions {
		if r.Contains(a) {
			return r.Area
		}
	}
	return Unmapped
}

// IsArea returns true if the address is in the specified area.
func IsArea(a addresses.Address, area Area) bool {
	return MapAddress(a) == area
}

// RegionOf returns the region containing the address. The boolean is false
// if the address is unmapped.
func RegionOf(a addresses.Address) (Region, bool) {
	for _, r := range Regions {
		if r.Contains(a) {
			return r, true
		}
	}
	return Region{}, false
}
