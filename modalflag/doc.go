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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes to the basic flag handling, with each mode
// having its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and then processed by
// Parse(). A mode is a special argument that puts the program into a
// different mode of operation. For example, farmem has the DEMO, MONITOR,
// SAMPLE and MEMMAP modes, with DEMO being the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DEMO", "MONITOR", "SAMPLE", "MEMMAP")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "MONITOR":
//		md.NewMode()
//		base := md.AddAddress("base", 0x40000, "allocator base address")
//		...
//	}
//
// Mode comparisons are case insensitive. Calling NewMode() starts a new set of
// flags for the arguments that follow the mode, and so on to any depth.
//
// Arguments that are neither flags nor modes are returned by RemainingArgs()
// and GetArg(). Help output is produced automatically when the -help flag is
// given.
package modalflag
