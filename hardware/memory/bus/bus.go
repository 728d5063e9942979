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

package bus

import "github.com/jetsetilly/farmem/hardware/memory/addresses"

// MaxBlock is the largest number of bytes that can be transferred in a single
// block operation. The DMAgic count register is 16 bits wide.
const MaxBlock = 0xffff

// ByteBus defines single byte access to far memory. Peek must not have side
// effects.
type ByteBus interface {
	Peek(address addresses.Address) (uint8, error)
	Poke(address addresses.Address, value uint8) error
}

// BlockBus defines block transfers between local buffers and far memory.
//
// ReadBlock returns a new slice of exactly n bytes or an error. It never
// returns a partially filled slice.
//
// WriteBlock copies all of data to far memory starting at dst. Data longer
// than MaxBlock is an error.
type BlockBus interface {
	ReadBlock(src addresses.Address, n uint16) ([]byte, error)
	WriteBlock(dst addresses.Address, data []byte) error
}

// FarBus is the combination of ByteBus and BlockBus.
type FarBus interface {
	ByteBus
	BlockBus
}
