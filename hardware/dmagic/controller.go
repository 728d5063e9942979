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

package dmagic

import (
	"fmt"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
	"github.com/jetsetilly/farmem/logger"
)

// Sentinal error patterns.
const (
	JobFailed = "dmagic: %v: %v"
	Unstable  = "dmagic: value at %v did not settle after %d reads"
)

// the local buffer used as the far end of single byte and block transfers.
// in the real machine this is somewhere in the first megabyte of chip RAM.
// in the emulation it is a Go slice and the address is only used to
// describe the job.
const localBuffer = addresses.Address(0x0000)

// Stats records the work done by the controller.
type Stats struct {
	Jobs  int
	Bytes int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d jobs, %d bytes", s.Jobs, s.Bytes)
}

// Controller is the DMAgic DMA controller.
type Controller struct {
	env *environment.Environment
	mem bus.FarBus

	stats Stats
}

// NewController is the preferred method of initialisation for the Controller
// type. The memory is usually a *ram.RAM instance.
func NewController(env *environment.Environment, mem bus.FarBus) *Controller {
	return &Controller{
		env: env,
		mem: mem,
	}
}

// Stats returns the current statistics.
func (dma *Controller) Stats() Stats {
	return dma.stats
}

// ResetStats zeroes the statistics.
func (dma *Controller) ResetStats() {
	dma.stats = Stats{}
}

func (dma *Controller) account(n int) {
	dma.stats.Jobs++
	dma.stats.Bytes += n
}

// ExecuteList decodes the job list and executes it.
func (dma *Controller) ExecuteList(b []byte) error {
	l, err := Decode(b)
	if err != nil {
		logger.Log(dma.env, "dmagic", err)
		return err
	}
	return dma.Execute(l)
}

// Execute a job where both the source and destination are in far memory. A
// job with a count of zero does nothing.
func (dma *Controller) Execute(l List) error {
	if l.Count == 0 {
		return nil
	}

	var err error

	switch l.Command & cmdMask {
	case CmdCopy:
		err = dma.copy(l)
	case CmdFill:
		err = dma.fill(l)
	default:
		err = curated.Errorf(InvalidJob, fmt.Sprintf("unsupported command $%02x", l.Command))
	}

	if err != nil {
		logger.Log(dma.env, "dmagic", err)
		return err
	}

	logger.Log(dma.env, "dmagic", l)
	dma.account(int(l.Count))

	return nil
}

// copy reads the source in one transfer but the result is the same as the
// DMAgic's forward byte-by-byte copy. A destination that overlaps the end of
// the source sees the bytes written earlier in the same job.
func (dma *Controller) copy(l List) error {
	data, err := dma.mem.ReadBlock(l.Source(), l.Count)
	if err != nil {
		return curated.Errorf(JobFailed, l, err)
	}

	src, dst := l.Source(), l.Destination()
	skip := max(addresses.Address(l.DestSkip), 1)
	for i := range data {
		a := src + addresses.Address(i)
		if a < dst {
			continue
		}
		if o := a - dst; o%skip == 0 && int(o/skip) < i {
			data[i] = data[o/skip]
		}
	}

	if l.DestSkip <= 1 {
		if err := dma.mem.WriteBlock(l.Destination(), data); err != nil {
			return curated.Errorf(JobFailed, l, err)
		}
		return nil
	}

	a := l.Destination()
	for _, v := range data {
		if err := dma.mem.Poke(a, v); err != nil {
			return curated.Errorf(JobFailed, l, err)
		}
		a += addresses.Address(l.DestSkip)
	}

	return nil
}

func (dma *Controller) fill(l List) error {
	if l.DestSkip <= 1 {
		data := make([]byte, l.Count)
		v := l.FillValue()
		for i := range data {
			data[i] = v
		}
		if err := dma.mem.WriteBlock(l.Destination(), data); err != nil {
			return curated.Errorf(JobFailed, l, err)
		}
		return nil
	}

	a := l.Destination()
	for range l.Count {
		if err := dma.mem.Poke(a, l.FillValue()); err != nil {
			return curated.Errorf(JobFailed, l, err)
		}
		a += addresses.Address(l.DestSkip)
	}

	return nil
}

// Copy n bytes from src to dst in far memory. Equivalent to lcopy() where
// both addresses are in far memory.
//
// The copy runs forward so it is not the same as Go's copy() when the regions
// overlap. Copying from src to src+1 repeats the byte at src n+1 times.
func (dma *Controller) Copy(src, dst addresses.Address, n uint16) error {
	return dma.Execute(NewCopy(src, dst, n))
}

// Fill n bytes starting at dst with value. Equivalent to lfill().
func (dma *Controller) Fill(dst addresses.Address, value uint8, n uint16) error {
	return dma.Execute(NewFill(dst, value, n, 1))
}

// FillSkip is like Fill but consecutive bytes are skip bytes apart.
// Equivalent to lfill_skip().
func (dma *Controller) FillSkip(dst addresses.Address, value uint8, n uint16, skip uint8) error {
	return dma.Execute(NewFill(dst, value, n, skip))
}

// Peek implements the bus.ByteBus interface. Equivalent to lpeek().
func (dma *Controller) Peek(address addresses.Address) (uint8, error) {
	l := NewCopy(address, localBuffer, 1)
	v, err := dma.mem.Peek(address)
	if err != nil {
		return 0, curated.Errorf(JobFailed, l, err)
	}
	dma.account(1)
	return v, nil
}

// Poke implements the bus.ByteBus interface. Equivalent to lpoke().
func (dma *Controller) Poke(address addresses.Address, value uint8) error {
	l := NewCopy(localBuffer, address, 1)
	if err := dma.mem.Poke(address, value); err != nil {
		return curated.Errorf(JobFailed, l, err)
	}
	dma.account(1)
	return nil
}

// PeekDebounced reads the address repeatedly until the required number of
// consecutive reads agree. Equivalent to lpeek_debounced(). The required
// number of reads is taken from the environment preferences. The value must
// settle within a fixed number of attempts.
func (dma *Controller) PeekDebounced(address addresses.Address) (uint8, error) {
	agree := 3
	if dma.env != nil && dma.env.Prefs != nil {
		agree = dma.env.Prefs.Debounce.Get().(int)
	}
	if agree < 1 {
		agree = 1
	}

	const maxAttempts = 256

	var last uint8
	run := 0
	for i := 0; i < maxAttempts; i++ {
		v, err := dma.Peek(address)
		if err != nil {
			return 0, err
		}
		if run > 0 && v == last {
			run++
		} else {
			run = 1
			last = v
		}
		if run >= agree {
			return v, nil
		}
	}

	return 0, curated.Errorf(Unstable, address, maxAttempts)
}

// ReadBlock implements the bus.BlockBus interface. The returned slice is
// created by the transfer and is always exactly n bytes long.
func (dma *Controller) ReadBlock(src addresses.Address, n uint16) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	l := NewCopy(src, localBuffer, n)
	data, err := dma.mem.ReadBlock(src, n)
	if err != nil {
		logger.Log(dma.env, "dmagic", err)
		return nil, curated.Errorf(JobFailed, l, err)
	}
	dma.account(int(n))
	return data, nil
}

// WriteBlock implements the bus.BlockBus interface.
func (dma *Controller) WriteBlock(dst addresses.Address, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if len(data) > bus.MaxBlock {
		return curated.Errorf(InvalidJob, fmt.Sprintf("count of %d is too large", len(data)))
	}
	l := NewCopy(localBuffer, dst, uint16(len(data)))
	if err := dma.mem.WriteBlock(dst, data); err != nil {
		logger.Log(dma.env, "dmagic", err)
		return curated.Errorf(JobFailed, l, err)
	}
	dma.account(len(data))
	return nil
}
