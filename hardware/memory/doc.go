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

// Package memory is the root of the MEGA65 memory packages. It contains no
// code of its own.
//
// The addresses package defines the 28-bit address type and the named
// locations of the memory map. The memorymap package describes the regions of
// that map and which of them are backed by RAM.
//
// The bus package defines the interfaces through which memory is accessed. The
// ram package implements those interfaces with sparse pages of chip and attic
// RAM. The DMAgic controller in the hardware/dmagic package wraps a RAM
// instance and implements the same interfaces by way of DMA jobs.
//
// The far package is the far-memory library proper. It provides the Ptr28 type,
// the bump allocator and the byte iterator, all of which work with any
// implementation of the bus interfaces:
//
//	far.Allocator ---- bus.BlockBus ---- dmagic.Controller ---- ram.RAM
//	                                                              |
//	far.Iterator  ---- bus.FarBus   ------------------------------/
package memory
