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

package test

import "strings"

// CompareWriter implements io.Writer and collects everything written to it.
// Tests use it to capture the output of a function and check it against the
// expected text.
type CompareWriter struct {
	b strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.b.Write(p)
}

// Clear discards everything written so far.
func (tw *CompareWriter) Clear() {
	tw.b.Reset()
}

// Compare returns true if the captured output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.b.String() == s
}

// Contains returns true if s appears anywhere in the captured output.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.b.String(), s)
}

func (tw *CompareWriter) String() string {
	return tw.b.String()
}
