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

// Package memorymap describes the areas of the MEGA65's 28-bit address space
// that are backed by memory. The MapAddress() function identifies the area
// an address falls within. Addresses that are not in any of the areas are
// Unmapped and are not readable or writable by the ram package.
//
// The Summary() function produces a human readable table of the areas.
package memorymap
