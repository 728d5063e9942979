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

// Package hardware is the base package for the MEGA65 far memory emulation.
// It and its sub-packages contain everything required to exercise far memory
// without a real machine.
//
// The MEGA65 type is the root of the emulation and contains references to
// the RAM, the DMAgic controller and the far memory allocator. Programs should
// access far memory through the DMAgic controller in the same way that a
// program on a real machine would.
package hardware
