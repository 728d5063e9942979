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

// Package ram is a model of the memory backing the mapped areas of the
// MEGA65's 28-bit address space (see the memorymap package). Memory is held
// in 64k pages which are allocated on first write. Reading from a page that
// has never been written to returns zero.
//
// Accessing an address that is not in a mapped area is an error. The attic
// RAM area can be disabled to model a machine without the HyperRAM fitted.
//
// RAM implements the bus.FarBus interface directly but in a complete machine
// it is accessed through the DMAgic controller.
package ram
