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
	"unicode/utf8"

	"golang.org/x/text/transform"
)

type decoder struct {
	transform.NopResetter
}

// NewDecoder returns a transformer from PETSCII to UTF-8.
func NewDecoder() transform.Transformer {
	return decoder{}
}

func (decoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		r := Petscii(src[nSrc]).Rune()
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

type encoder struct {
	transform.NopResetter
}

// NewEncoder returns a transformer from UTF-8 to PETSCII. Runes that have no
// PETSCII equivalent stop the transformation with an Untranslatable error.
func NewEncoder() transform.Transformer {
	return encoder{}
}

func (encoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, sz := utf8.DecodeRune(src[nSrc:])
		p, err := FromRune(r)
		if err != nil {
			return nDst, nSrc, err
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = uint8(p)
		nDst++
		nSrc += sz
	}
	return nDst, nSrc, nil
}

// Decode converts PETSCII data to a string.
func Decode(b []byte) string {
	s, _, _ := transform.Bytes(NewDecoder(), b)
	return string(s)
}

// Encode converts a string to PETSCII data.
func Encode(s string) ([]byte, error) {
	b, _, err := transform.Bytes(NewEncoder(), []byte(s))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ScreenCodes converts a string to screen codes.
func ScreenCodes(s string) ([]byte, error) {
	b, err := Encode(s)
	if err != nil {
		return nil, err
	}
	for i := range b {
		b[i] = Petscii(b[i]).ScreenCode()
	}
	return b, nil
}
