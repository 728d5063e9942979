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

package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/far"
	"github.com/jetsetilly/farmem/hardware/memory/memorymap"
	"github.com/jetsetilly/farmem/hardware/preferences"
	"github.com/jetsetilly/farmem/logger"
	"github.com/jetsetilly/farmem/modalflag"
	"github.com/jetsetilly/farmem/monitor"
	"github.com/jetsetilly/farmem/paths"
	"github.com/jetsetilly/farmem/prefs"
	"github.com/jetsetilly/farmem/sample"
	"github.com/jetsetilly/farmem/statsview"
	"github.com/jetsetilly/farmem/version"
)

// Sentinal error patterns.
const (
	DemoFailed     = "demo: %v"
	WrongArguments = "wrong number of arguments (%d)"
)

func main() {
	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		os.Exit(0)
	}()

	os.Exit(launch(os.Stdin, os.Stdout, os.Args[1:]))
}

// launch the program with the supplied arguments. Returns the value that
// should be used with os.Exit().
func launch(input io.Reader, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("DEMO", "MONITOR", "SAMPLE", "MEMMAP")
	override := md.AddString("prefs", "", "preferences for this session (eg. \"far.base::$8000000; ram.attic::true\")")
	echo := md.AddBool("log", false, "echo log to output")
	stats := md.AddBool("statsview", false, "run stats server (if available)")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats && statsview.Available() {
		statsview.Launch(output, "")
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}

	env := newEnvironment()

	if *override != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}

	switch md.Mode() {
	case "DEMO":
		err = demo(md, env, output)
	case "MONITOR":
		err = monitorMode(md, env, input, output)
	case "SAMPLE":
		err = sampleMode(md, env, output)
	case "MEMMAP":
		io.WriteString(output, memorymap.Summary())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// newEnvironment creates the environment for the main emulation. Preferences
// are loaded from disk if possible.
func newEnvironment() *environment.Environment {
	p, err := preferences.NewPreferences()
	if err != nil {
		logger.Log(logger.Allow, "prefs", err)
		p = nil
	}
	return environment.NewEnvironment(environment.MainEmulation, p)
}

// parseArgs parses the flags for the current mode and checks the number of
// remaining arguments. Returns false if the mode should not continue, either
// because of an error or because help was printed.
func parseArgs(md *modalflag.Modes, minArgs int, maxArgs int) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, err
	}
	if n := len(md.RemainingArgs()); n < minArgs || n > maxArgs {
		return false, curated.Errorf(WrongArguments, n)
	}
	return true, nil
}

func demo(md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()
	memvizFile := md.AddString("memviz", "", "write a graphviz view of the far memory state to file")
	base := md.AddAddress("base", env.Prefs.Base.Get().(addresses.Address), "allocator base address")

	if ok, err := parseArgs(md, 0, 0); !ok {
		return err
	}

	if err := setBase(env, *base); err != nil {
		return err
	}

	m65, err := hardware.NewMEGA65(env)
	if err != nil {
		return err
	}

	st, err := runDemo(output, m65)
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, st)
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(output, "far memory state written to %s\n", *memvizFile)
	}

	return nil
}

// setBase changes the base address of the arena. The limit is moved if it
// would otherwise be below the new base. The arena may reach the very top of
// the address space.
func setBase(env *environment.Environment, base addresses.Address) error {
	if err := env.Prefs.Base.Set(base); err != nil {
		return err
	}
	if _, limit := env.Prefs.Arena(); limit <= base {
		return env.Prefs.Limit.Set(min(base+0x10000, addresses.End))
	}
	return nil
}

// runDemo pushes data into far memory and reads it back in different ways.
// Returns a snapshot of the far memory system with the pointers and iterator
// used by the demo.
func runDemo(output io.Writer, m65 *hardware.MEGA65) (*hardware.State, error) {
	fmt.Fprintf(output, "MAX_28  = %d\n", uint32(addresses.Max28))
	fmt.Fprintf(output, "MAX U32 = %d\n", uint32(math.MaxUint32))

	base := m65.Alloc.Address()
	var ptrs []far.Ptr28

	// copy bytes to far memory and back again
	ptr, err := m65.Alloc.Push([]byte{7, 9, 13})
	if err != nil {
		return nil, err
	}
	b, err := ptr.Bytes(m65.DMA)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(b, []byte{7, 9, 13}) {
		return nil, curated.Errorf(DemoFailed, "bytes did not survive round trip")
	}
	fmt.Fprintf(output, "ADDRESS = 0X%x LEN = %d\n", uint32(ptr.Address), ptr.Len)
	ptrs = append(ptrs, ptr)

	// copy string to far memory and back again
	const large = "some LARGE string"
	ptr, err = m65.Alloc.PushString(large)
	if err != nil {
		return nil, err
	}
	s, err := ptr.Text(m65.DMA)
	if err != nil {
		return nil, err
	}
	if s != large {
		return nil, curated.Errorf(DemoFailed, "string did not survive round trip")
	}
	fmt.Fprintf(output, "ADDRESS = 0X%x LEN = %d\n", uint32(ptr.Address), ptr.Len)
	ptrs = append(ptrs, ptr)

	// skip the three bytes and the first word of the string
	it := far.NewIterator(m65.DMA, base)
	if err := it.AdvanceBy(3 + 5); err != nil {
		return nil, err
	}
	b, err = it.Take(5)
	if err != nil {
		return nil, err
	}
	if string(b) != "LARGE" {
		return nil, curated.Errorf(DemoFailed, fmt.Sprintf("extracted %q", b))
	}
	fmt.Fprintf(output, "EXTRACTED STRING = %s\n", b)

	// treat a list of far pointers as strings
	var words []far.Ptr28
	for _, s := range []string{"first", "second"} {
		p, err := m65.Alloc.PushString(s)
		if err != nil {
			return nil, err
		}
		words = append(words, p)
	}
	ptrs = append(ptrs, words...)
	cnt := 0
	for _, p := range words {
		s, err := p.Text(m65.DMA)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(s, "s") {
			cnt++
		}
	}
	if cnt != 1 {
		return nil, curated.Errorf(DemoFailed, fmt.Sprintf("filter found %d strings", cnt))
	}
	fmt.Fprintf(output, "FILTERED = %d\n", cnt)

	fmt.Fprintln(output, "DONE!")

	return m65.Snapshot(ptrs, it), nil
}

func monitorMode(md *modalflag.Modes, env *environment.Environment, input io.Reader, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("an optional file of monitor commands can be specified")

	if ok, err := parseArgs(md, 0, 1); !ok {
		return err
	}

	m65, err := hardware.NewMEGA65(env)
	if err != nil {
		return err
	}

	var pager monitor.Pager
	if md.GetArg(0) != "" {
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	} else if input == os.Stdin {
		pager = monitor.NewTTYPager()
	}

	mon := monitor.NewMonitor(m65, input, output, pager)
	if pager != nil {
		mon.Prompt = "> "
	}

	return mon.Run()
}

func sampleMode(md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()
	out := md.AddString("out", "", "filename for the exported wav file")

	if ok, err := parseArgs(md, 1, 1); !ok {
		return err
	}

	m65, err := hardware.NewMEGA65(env)
	if err != nil {
		return err
	}

	s, err := sample.Load(env, m65.Alloc, md.GetArg(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "loaded %v (%.02fs)\n", s, s.Duration())

	fn := *out
	if fn == "" {
		fn = paths.UniqueFilename("sample", md.GetArg(0), ".wav")
	}
	if err := s.Export(m65.DMA, fn); err != nil {
		return err
	}
	fmt.Fprintf(output, "exported to %s\n", fn)

	return nil
}
