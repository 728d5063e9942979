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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal to the test. Use the Demand*() functions
// when a value is needed for further tests and there is no point continuing
// if it is wrong, for example the length of a slice before indexing it.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The nil value is considered a success because of how errors usually work. An
// error interface holding nil is indistinguishable from the nil value.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
