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

package monitor

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/hardware"
	"github.com/jetsetilly/farmem/hardware/dmagic"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/far"
	"github.com/jetsetilly/farmem/logger"
	"github.com/jetsetilly/farmem/petscii"
	"golang.org/x/text/transform"
)

// Sentinal error patterns.
const (
	UnknownCommand = "monitor: unknown command: %s"
	BadArguments   = "monitor: %s: %v"
)

const logTag = "monitor"

// the default number of bytes shown by the M command
const defaultDumpLength = 128

// the default number of log entries shown by the L command
const defaultLogTail = 10

// Monitor reads commands from input and writes results to output.
type Monitor struct {
	m65    *hardware.MEGA65
	input  io.Reader
	output io.Writer
	pager  Pager

	// Prompt is written before every command is read. It should be left empty
	// when input is not interactive.
	Prompt string
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The pager argument can be nil, in which case output is never paged.
func NewMonitor(m65 *hardware.MEGA65, input io.Reader, output io.Writer, pager Pager) *Monitor {
	if pager == nil {
		pager = noPager{}
	}
	return &Monitor{
		m65:    m65,
		input:  input,
		output: output,
		pager:  pager,
	}
}

// Run the monitor until the X command is received or input is exhausted.
// Errors from individual commands are printed and do not stop the monitor.
func (mon *Monitor) Run() error {
	scanner := bufio.NewScanner(mon.input)
	for {
		if mon.Prompt != "" {
			io.WriteString(mon.output, mon.Prompt)
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := mon.Command(scanner.Text())
		if err != nil {
			logger.Log(mon.m65.Env, logTag, err)
			fmt.Fprintf(mon.output, "* %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Command executes a single command line. Returns true if the command was
// the exit command.
func (mon *Monitor) Command(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}

	cmd := strings.ToUpper(args[0])
	args = args[1:]

	switch cmd {
	case "X":
		return true, nil

	case "H", "?":
		mon.page(help)

	case "M":
		a, n, err := mon.addressAndLength(cmd, args, 1, defaultDumpLength)
		if err != nil {
			return false, err
		}
		mon.page(mon.m65.RAM.Dump(a, int(n)))

	case "F":
		if len(args) != 3 {
			return false, curated.Errorf(BadArguments, cmd, "expecting address, length and value")
		}
		a, n, err := mon.addressAndLength(cmd, args[:2], 2, 0)
		if err != nil {
			return false, err
		}
		v, err := parseNumber(args[2], 0xff)
		if err != nil {
			return false, curated.Errorf(BadArguments, cmd, err)
		}
		return false, mon.job(dmagic.NewFill(a, uint8(v), n, 1))

	case "C":
		if len(args) != 3 {
			return false, curated.Errorf(BadArguments, cmd, "expecting source, destination and length")
		}
		src, err := addresses.Parse(args[0])
		if err != nil {
			return false, curated.Errorf(BadArguments, cmd, err)
		}
		dst, n, err := mon.addressAndLength(cmd, args[1:], 2, 0)
		if err != nil {
			return false, err
		}
		return false, mon.job(dmagic.NewCopy(src, dst, n))

	case "T", "S":
		a, n, err := mon.addressAndLength(cmd, args, 2, 0)
		if err != nil {
			return false, err
		}
		p := far.NewPtr28(a, n)
		if cmd == "S" {
			s, err := p.Text(mon.m65.DMA)
			if err != nil {
				return false, err
			}
			mon.page(s)
			break
		}
		b, err := p.Bytes(mon.m65.DMA)
		if err != nil {
			return false, err
		}
		s, err := io.ReadAll(transform.NewReader(bytes.NewReader(b), petscii.NewDecoder()))
		if err != nil {
			return false, err
		}
		mon.page(string(s))

	case "P":
		if len(args) == 0 {
			return false, curated.Errorf(BadArguments, cmd, "expecting text")
		}
		p, err := mon.m65.Alloc.PushString(strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		fmt.Fprintln(mon.output, p)

	case "A":
		fmt.Fprintln(mon.output, mon.m65)

	case "L":
		n := uint64(defaultLogTail)
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0], 1000)
			if err != nil {
				return false, curated.Errorf(BadArguments, cmd, err)
			}
		}
		s := &strings.Builder{}
		logger.Tail(s, int(n))
		mon.page(strings.TrimSuffix(s.String(), "\n"))

	default:
		return false, curated.Errorf(UnknownCommand, cmd)
	}

	return false, nil
}

func (mon *Monitor) job(l dmagic.List) error {
	if err := mon.m65.DMA.Execute(l); err != nil {
		return err
	}
	fmt.Fprintln(mon.output, l)
	return nil
}

// addressAndLength parses the first two arguments as an address and an
// optional length. A minimum number of arguments can be specified. If the
// length is optional then the default length is used.
func (mon *Monitor) addressAndLength(cmd string, args []string, minArgs int, defaultLength uint16) (addresses.Address, uint16, error) {
	if len(args) < minArgs || len(args) > 2 {
		return 0, 0, curated.Errorf(BadArguments, cmd, "wrong number of arguments")
	}

	a, err := addresses.Parse(args[0])
	if err != nil {
		return 0, 0, curated.Errorf(BadArguments, cmd, err)
	}

	n := defaultLength
	if len(args) > 1 {
		v, err := parseNumber(args[1], 0xffff)
		if err != nil {
			return 0, 0, curated.Errorf(BadArguments, cmd, err)
		}
		n = uint16(v)
	}

	return a, n, nil
}

// parseNumber accepts numbers in the same forms as addresses.Parse().
func parseNumber(s string, maxValue uint64) (uint64, error) {
	var v uint64
	var err error

	switch {
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, 32)
	default:
		v, err = strconv.ParseUint(s, 0, 32)
	}
	if err != nil {
		return 0, err
	}
	if v > maxValue {
		return 0, fmt.Errorf("%d is more than %d", v, maxValue)
	}

	return v, nil
}

// page writes the string to output, one line at a time, stopping after every
// page if the pager requires it.
func (mon *Monitor) page(s string) {
	h := mon.pager.Height()
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if h > 0 && i > 0 && i%h == 0 {
			if !mon.pager.Wait(mon.output) {
				return
			}
		}
		io.WriteString(mon.output, l)
		io.WriteString(mon.output, "\n")
	}
}

const help = `M addr [len]        hex dump of far memory
F addr len value    fill far memory with value
C src dst len       copy far memory
T addr len          show far memory as PETSCII text
S addr len          show far memory as UTF-8 text
P text              push text to far memory with the allocator
A                   allocator and DMAgic status
L [n]               most recent log entries
H                   help
X                   exit`
