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

package addresses

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/farmem/curated"
)

// Address is a location in the 28-bit address space.
type Address uint32

// Max28 is the highest address in the 28-bit address space.
const Max28 = Address(0xfffffff)

// End is one past Max28. It is only meaningful as the exclusive end of a
// region and is never a valid address.
const End = Max28 + 1

// Sentinal error patterns.
const (
	Overflow     = "address: %v + %d is outside the 28-bit address space"
	InvalidParse = "address: cannot parse %q: %v"
)

// Valid returns true if the address is within the 28-bit address space.
func (a Address) Valid() bool {
	return a <= Max28
}

// Add returns the address n bytes after a. It is an error for the result to
// be outside the 28-bit space. Note that an address exactly one past Max28
// is allowed because it is the end of a region that finishes at Max28.
func (a Address) Add(n uint32) (Address, error) {
	r := uint64(a) + uint64(n)
	if r > uint64(End) {
		return a, curated.Errorf(Overflow, a, n)
	}
	return Address(r), nil
}

func (a Address) String() string {
	return fmt.Sprintf("$%07x", uint32(a))
}

// Split the address into the megabyte, bank and offset parts used by the
// DMAgic job list.
func (a Address) Split() (mb uint8, bank uint8, offset uint16) {
	mb = uint8(a >> 20)
	bank = uint8((a >> 16) & 0x0f)
	offset = uint16(a & 0xffff)
	return mb, bank, offset
}

// Join is the inverse of Split(). Only the lower four bits of bank are used.
func Join(mb uint8, bank uint8, offset uint16) Address {
	return Address(mb)<<20 | Address(bank&0x0f)<<16 | Address(offset)
}

// Parse an address string. The following forms are accepted:
//
//	$40000    (commodore style hexadecimal)
//	0x40000   (go style hexadecimal)
//	262144    (decimal)
//
// Addresses outside the 28-bit space are rejected.
func Parse(s string) (Address, error) {
	return parse(s, Max28)
}

// ParseLimit is like Parse but also accepts End. Use it for strings that
// specify the exclusive end of a region.
func ParseLimit(s string) (Address, error) {
	return parse(s, End)
}

func parse(s string, highest Address) (Address, error) {
	s = strings.TrimSpace(s)

	var v uint64
	var err error

	if strings.HasPrefix(s, "$") {
		v, err = strconv.ParseUint(s[1:], 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 0, 32)
	}
	if err != nil {
		return 0, curated.Errorf(InvalidParse, s, err)
	}

	a := Address(v)
	if a > highest {
		return 0, curated.Errorf(InvalidParse, s, "too large")
	}

	return a, nil
}
