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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/farmem/hardware/memory/addresses"
)

// Summary returns a single multiline string detailing all the areas in
// memory, including the unmapped gaps between them. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	line := func(origin, memtop addresses.Address, area Area) {
		s.WriteString(fmt.Sprintf("%07x -> %07x\t%s\n", uint32(origin), uint32(memtop), area.String()))
	}

	next := addresses.Address(0)
	for _, r := range Regions {
		if r.Origin > next {
			line(next, r.Origin-1, Unmapped)
		}
		line(r.Origin, r.Memtop, r.Area)
		next = r.Memtop + 1
	}

	if next <= addresses.Max28 {
		line(next, addresses.Max28, Unmapped)
	}

	return s.String()
}
