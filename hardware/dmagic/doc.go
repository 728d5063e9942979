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

// Package dmagic emulates the DMAgic DMA controller of the MEGA65, in its
// F018B configuration with enhanced job list options.
//
// A DMA job is described by a List. The List type can be encoded to and
// decoded from the 20 byte layout that a program writes to memory before
// triggering the controller:
//
//	$0b $80 <source mb> $81 <dest mb> $85 <dest skip> $00
//	<command> <count lo> <count hi> <source lo> <source hi> <source bank>
//	<dest lo> <dest hi> <dest bank> <sub command> <modulo lo> <modulo hi>
//
// The Controller executes jobs against far memory. Jobs complete before
// Execute() returns. There is no model of a DMA job running in parallel with
// the CPU, so a read following a write always sees the written data.
//
// The Controller also implements the bus.FarBus interface. Every operation
// is carried out as a DMA job in the same way as the lpeek(), lpoke() and
// lcopy() functions of the MEGA65 C library: peek and poke are single byte
// copies and block reads and writes are copies between far memory and a
// local buffer.
package dmagic
