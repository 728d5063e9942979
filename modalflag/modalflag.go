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

package modalflag

import (
	"flag"
	"io"
	"strings"

	"github.com/jetsetilly/farmem/hardware/memory/addresses"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or help messages will not
// be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// whether Parse() has been called since the most recent NewMode()
	parsed bool

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the arguments given to NewArgs() and the index of the first argument
	// not yet consumed by Parse()
	args    []string
	argsIdx int

	// sub-modes specified since the most recent NewMode(). the first entry is
	// the default
	subModes []string

	// whether the first non-flag argument was one of the sub-modes
	matched bool

	// every mode selected by Parse(). never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all selected modes separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed. It implies NewMode().
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
	md.matched = false
}

// AdditionalHelp is printed after the flag and mode information.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the most recent
// NewArgs() or NewMode(), regardless of whether Parse() succeeded.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified then
	// the Mode() function will return the selected mode.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed to Output.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse the arguments for the current mode. Flags are processed and then, if
// sub-modes have been added, the next argument is compared with the list of
// sub-modes. If it doesn't match then the default sub-mode is selected.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// unrecognised flags select the default sub-mode if there is one
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// arguments consumed by flags belong to this mode and not the next
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				md.matched = true
				break
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor the selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	if md.matched {
		return md.flags.Args()[1:]
	}
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if the argument does not exist.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The first
// sub-mode added is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress flag for next call to Parse(). The flag accepts any of the forms
// accepted by addresses.Parse().
func (md *Modes) AddAddress(name string, value addresses.Address, usage string) *addresses.Address {
	p := new(addresses.Address)
	*p = value
	md.flags.Var((*addressValue)(p), name, usage)
	return p
}

// Visit calls fn for every flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// addressValue implements the flag.Value interface.
type addressValue addresses.Address

func (a *addressValue) String() string {
	return addresses.Address(*a).String()
}

func (a *addressValue) Set(s string) error {
	v, err := addresses.Parse(s)
	if err != nil {
		return err
	}
	*a = addressValue(v)
	return nil
}
