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
	"fmt"
	"io"
	"os"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Pager is used by the monitor to pause long output.
type Pager interface {
	// Height returns the number of lines in a page. A value of zero or less
	// means that output is never paused.
	Height() int

	// Wait is called after every page of output. It returns false if the
	// remainder of the output should be discarded.
	Wait(output io.Writer) bool
}

type noPager struct{}

func (noPager) Height() int {
	return 0
}

func (noPager) Wait(_ io.Writer) bool {
	return true
}

// TTYPager pauses output until a key is pressed on the controlling terminal.
type TTYPager struct {
	output *os.File
}

// NewTTYPager returns a TTYPager if both stdin and stdout are terminals. If
// they are not then the returned Pager is nil. A nil Pager is acceptable to
// NewMonitor().
func NewTTYPager() Pager {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) || !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	return &TTYPager{output: os.Stdout}
}

// Height implements the Pager interface.
func (pg *TTYPager) Height() int {
	_, h, err := xterm.GetSize(int(pg.output.Fd()))
	if err != nil {
		return 0
	}

	// room for the prompt
	return h - 1
}

// Wait implements the Pager interface. Pressing Q or X discards the rest of
// the output. Any other key continues.
func (pg *TTYPager) Wait(output io.Writer) bool {
	t, err := term.Open("/dev/tty")
	if err != nil {
		return true
	}
	defer t.Close()

	if err := t.SetCbreak(); err != nil {
		return true
	}
	defer t.Restore()

	fmt.Fprint(output, "-- more --")
	defer fmt.Fprint(output, "\r          \r")

	b := make([]byte, 1)
	if _, err := t.Read(b); err != nil {
		return true
	}

	switch b[0] {
	case 'q', 'Q', 'x', 'X':
		return false
	}
	return true
}
