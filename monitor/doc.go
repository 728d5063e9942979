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

// Package monitor implements a simple line based memory monitor for the
// MEGA65 far memory emulation. It is modelled on the monitors found on the
// Commodore machines.
//
// Commands are a single letter followed by space separated arguments.
// Addresses and numbers can be given in decimal, or hexadecimal with either
// the $ or 0x prefix.
//
//	M addr [len]        hex dump of far memory
//	F addr len value    fill far memory with value
//	C src dst len       copy far memory
//	T addr len          show far memory as PETSCII text
//	S addr len          show far memory as UTF-8 text
//	P text              push text to far memory with the allocator
//	A                   allocator and DMAgic status
//	L [n]               most recent log entries
//	H                   help
//	X                   exit
//
// Long output is paged when the monitor is attached to a terminal.
package monitor
