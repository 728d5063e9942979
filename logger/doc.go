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

// Package logger is the central log for the emulated memory system. Log
// entries are short, tagged lines and are held in memory up to a maximum
// number of entries:
//
//	logger.Log(env, "dmagic", "copy $0040000 -> $0050000 (18 bytes)")
//
// The first argument is a Permission. Emulation environments implement the
// Permission interface so that a secondary emulation can be prevented from
// adding to the log. Use logger.Allow if the entry should always be made.
//
// The detail argument can be a string, an error or a fmt.Stringer. Any other
// type is formatted with the %v verb.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count.
//
// Independent logs can be created with NewLogger(). This is mostly useful for
// testing.
package logger
