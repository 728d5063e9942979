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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern string and placeholder values in
// the same way as fmt.Errorf().
//
// The pattern is what identifies the error. Packages that produce errors that
// callers are expected to act on export the pattern as a const string:
//
//	const ArenaExhausted = "far: arena exhausted: %v"
//
//	ptr, err := alloc.Push(data)
//	if curated.Is(err, far.ArenaExhausted) {
//		...
//	}
//
// The Has() function is similar to Is() but checks whether the pattern occurs
// anywhere in the error chain. A chain is formed by passing an error as one of
// the values to Errorf():
//
//	e := curated.Errorf(dmagic.InvalidJob, "count")
//	f := curated.Errorf("far: %v", e)
//
//	curated.Has(f, dmagic.InvalidJob) == true
//	curated.Is(f, dmagic.InvalidJob) == false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. In practice, a curated error is an expected error
// and an uncurated error is an unexpected one.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Parts are separated by the sub-string ": ". So
// wrapping "far: %v" around an error that already reads "far: ..." does not
// result in "far: far: ...".
//
// Curated errors also support errors.Unwrap() so that the standard library
// errors.Is() and errors.As() functions can find wrapped non-curated causes,
// for example an fs.PathError returned by the os package.
package curated
