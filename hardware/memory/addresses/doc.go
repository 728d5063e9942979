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

// Package addresses defines the Address type used to identify a location in
// the MEGA65's 28-bit address space. An Address is not a pointer in the sense
// of the host language or of the 45GS02 CPU. It is never dereferenced directly
// and can only be used through the peek, poke and DMA copy operations of the
// bus package.
//
// The DMAgic controller addresses memory in three parts: the megabyte (bits
// 20 to 27), the bank (bits 16 to 19) and a 16-bit offset. The Split() and
// Join() functions convert between the two forms.
package addresses
