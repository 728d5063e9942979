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

// Package petscii converts between the PETSCII character set used by
// Commodore machines (including the MEGA65) and unicode.
//
// The mapping is the lower-case/upper-case character set as documented at
// style64.org. PETSCII codes that have no reasonable unicode equivalent map to
// the unicode replacement character.
//
// Conversions of complete strings are available as Decode() and Encode() and
// also as transformers from the golang.org/x/text/transform package, for use
// with transform.NewReader() and the like.
package petscii
