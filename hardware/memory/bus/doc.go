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

// Package bus defines the access patterns for the MEGA65's 28-bit memory. The
// CPU of the MEGA65 can only address 16 bits directly, so the rest of memory
// is reached through single byte peek and poke operations (ByteBus) or
// through a DMA block copy between a local buffer and far memory (BlockBus).
//
// The FarBus interface combines both and is what the far package requires of
// its collaborator. The hardware implementation is the DMAgic controller in
// the dmagic package. Tests may substitute anything that satisfies the
// interface, a plain byte slice being the simplest example.
//
// Block transfers are synchronous. When a WriteBlock() returns, the data is
// visible to any following Peek() or ReadBlock() of the same addresses.
package bus
