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

package petscii

import (
	"unicode"

	"github.com/jetsetilly/farmem/curated"
)

// Sentinal error patterns.
const (
	Untranslatable = "petscii: no petscii code for %q"
)

// None is the rune used for PETSCII codes with no unicode equivalent.
const None = unicode.ReplacementChar

// Petscii is a single PETSCII code.
type Petscii uint8

var toRune = [256]rune{
	// control codes
	None, None, None, None, None, None, None, None, None, None, None, None, None, None, None, None,
	None, None, None, None, None, None, None, None, None, None, None, None, None, None, None, None,

	// punctuation, numbers and lower case letters
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',

	// left bracket, pound, right bracket, up arrow, left arrow, horizontal line
	'[', '£', ']', '↑', '←', '━',

	// upper case letters
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'╋', None, '┃', '▒', None,

	// control codes
	None, None, None, None, None, None, None, None, None, None, None, None, None, None, None, None,
	None, None, None, None, None, None, None, None, None, None, None, None, None, None, None, None,

	// block graphics
	'\u00a0', '▌', '▄', '▔', '▁', '▎', '▒', '▕',
	None, None, '▕', '┣', '▗', '┗', '┓', '▂',
	'┏', '┻', '┳', '┫', '▎', '▍', '▕', '▔',
	'▔', '▃', '✓', '▖', '▝', '┘', '▘', '▚',

	// shifted range. repeats upper case letters and block graphics
	'━',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'╋', None, '┃', '▒', None,
	'\u00a0', '▌', '▄', '▔', '▁', '▎', '▒', '▕',
	None, None, '▕', '┣', '▗', '┗', '┓', '▂',
	'┏', '┻', '┳', '┫', '▎', '▍', '▕', '▔',
	'▔', '▃', '✓', '▖', '▝', '┘', '▘', '▒',
}

// fromRune is the reverse of toRune. where a rune appears more than once in
// toRune, the lowest PETSCII code is used.
var fromRune map[rune]Petscii

func init() {
	fromRune = make(map[rune]Petscii)
	for i := len(toRune) - 1; i >= 0; i-- {
		if toRune[i] != None {
			fromRune[toRune[i]] = Petscii(i)
		}
	}
}

// Rune returns the unicode equivalent of the PETSCII code.
func (p Petscii) Rune() rune {
	return toRune[p]
}

func (p Petscii) String() string {
	return string(p.Rune())
}

// FromRune returns the PETSCII code for the unicode rune.
func FromRune(r rune) (Petscii, error) {
	if p, ok := fromRune[r]; ok {
		return p, nil
	}
	return 0, curated.Errorf(Untranslatable, r)
}

// ScreenCode converts the PETSCII code to the value that should be written to
// screen memory to display the character.
func (p Petscii) ScreenCode() uint8 {
	v := uint8(p)
	switch {
	case v < 32:
		return v + 128
	case v < 64:
		return v
	case v < 96:
		return v - 64
	case v < 128:
		return v - 32
	case v < 160:
		return v + 64
	case v < 192:
		return v - 64
	case v < 255:
		return v - 128
	}
	return 94
}
