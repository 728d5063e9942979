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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/test"
)

func TestSplitJoin(t *testing.T) {
	a := addresses.Address(0x8123456)
	mb, bank, offset := a.Split()
	test.ExpectEquality(t, mb, 0x81)
	test.ExpectEquality(t, bank, 0x02)
	test.ExpectEquality(t, offset, 0x3456)
	test.ExpectEquality(t, addresses.Join(mb, bank, offset), a)

	// bank only uses the lower four bits
	test.ExpectEquality(t, addresses.Join(0, 0xf4, 0), addresses.Address(0x40000))
}

func TestAdd(t *testing.T) {
	a, err := addresses.Address(0x40000).Add(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, addresses.Address(0x40003))

	// end of a region finishing at the top of memory
	a, err = addresses.Max28.Add(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, addresses.Address(0x10000000))

	_, err = addresses.Max28.Add(2)
	test.ExpectSuccess(t, curated.Is(err, addresses.Overflow))
}

func TestParse(t *testing.T) {
	for _, s := range []string{"$40000", "0x40000", "262144", " $40000 "} {
		a, err := addresses.Parse(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, a, addresses.Address(0x40000), s)
	}

	_, err := addresses.Parse("$10000000")
	test.ExpectSuccess(t, curated.Is(err, addresses.InvalidParse))

	_, err = addresses.Parse("bank four")
	test.ExpectSuccess(t, curated.Is(err, addresses.InvalidParse))

	// the end of the address space is only accepted as a limit
	a, err := addresses.ParseLimit("$10000000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, addresses.End)
	_, err = addresses.ParseLimit("$10000001")
	test.ExpectSuccess(t, curated.Is(err, addresses.InvalidParse))
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, addresses.Address(0x40003).String(), "$0040003")
	test.ExpectSuccess(t, addresses.Max28.Valid())
	test.ExpectFailure(t, (addresses.Max28 + 1).Valid())
}
