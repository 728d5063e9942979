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

// Package far implements access to the 28-bit "far" memory of the MEGA65 from
// the point of view of a program that can only address its own local memory.
//
// There are three parts to the package. The Allocator is a bump allocator that
// copies local data into far memory and returns a Ptr28 describing where the
// data was placed. A Ptr28 is a fat pointer: an address and a length, which
// can be copied back into local memory with the Bytes() and Text() functions.
// The Iterator is a forward-only cursor over far memory, reading either one
// byte at a time or in chunks.
//
// None of the types hold any far memory themselves. All access is through the
// bus interfaces in the bus package, which will normally be implemented by
// the DMAgic controller.
//
// The allocator never frees memory. A Ptr28 remains valid only for as long as
// nothing else writes to its region of far memory. This is not checked.
package far
