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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/hardware/memory/addresses"
)

// Command values for the F018B command byte. Only the lower two bits are
// significant.
const (
	CmdCopy = uint8(0x00)
	CmdFill = uint8(0x03)
)

// the bits of the command byte that select the operation
const cmdMask = uint8(0x03)

// ListSize is the size of an encoded job list in bytes.
const ListSize = 20

// enhanced option tokens
const (
	optF018B     = 0x0b
	optSourceMB  = 0x80
	optDestMB    = 0x81
	optDestSkip  = 0x85
	optEndOfList = 0x00
)

// Sentinal error patterns.
const (
	InvalidJob = "dmagic: invalid job: %v"
)

// List is a DMA job list.
type List struct {
	SourceMB   uint8
	DestMB     uint8
	DestSkip   uint8
	Command    uint8
	Count      uint16
	SourceAddr uint16
	SourceBank uint8
	DestAddr   uint16
	DestBank   uint8
	SubCommand uint8
	Modulo     uint16
}

// NewCopy returns a job that copies n bytes from src to dst.
func NewCopy(src, dst addresses.Address, n uint16) List {
	l := List{
		Command:  CmdCopy,
		Count:    n,
		DestSkip: 1,
	}
	l.SetSource(src)
	l.SetDestination(dst)
	return l
}

// NewFill returns a job that writes value to n locations starting at dst.
// Consecutive locations are skip bytes apart. A skip value of zero is the
// same as one.
func NewFill(dst addresses.Address, value uint8, n uint16, skip uint8) List {
	if skip == 0 {
		skip = 1
	}
	l := List{
		Command:    CmdFill,
		Count:      n,
		DestSkip:   skip,
		SourceAddr: uint16(value),
	}
	l.SetDestination(dst)
	return l
}

func (l List) String() string {
	switch l.Command & cmdMask {
	case CmdCopy:
		return fmt.Sprintf("copy %v -> %v (%d bytes)", l.Source(), l.Destination(), l.Count)
	case CmdFill:
		return fmt.Sprintf("fill %v with $%02x (%d bytes, skip %d)", l.Destination(), l.FillValue(), l.Count, l.DestSkip)
	}
	return fmt.Sprintf("command $%02x", l.Command)
}

// SetSource sets the source address of the job.
func (l *List) SetSource(a addresses.Address) {
	l.SourceMB, l.SourceBank, l.SourceAddr = a.Split()
}

// SetDestination sets the destination address of the job.
func (l *List) SetDestination(a addresses.Address) {
	l.DestMB, l.DestBank, l.DestAddr = a.Split()
}

// Source returns the 28-bit source address of the job.
func (l List) Source() addresses.Address {
	return addresses.Join(l.SourceMB, l.SourceBank, l.SourceAddr)
}

// Destination returns the 28-bit destination address of the job.
func (l List) Destination() addresses.Address {
	return addresses.Join(l.DestMB, l.DestBank, l.DestAddr)
}

// FillValue is the value used by a fill job. It is the low byte of the
// source address.
func (l List) FillValue() uint8 {
	return uint8(l.SourceAddr)
}

// Encode the list to the on-bus layout.
func (l List) Encode() []byte {
	b := make([]byte, ListSize)
	b[0] = optF018B
	b[1] = optSourceMB
	b[2] = l.SourceMB
	b[3] = optDestMB
	b[4] = l.DestMB
	b[5] = optDestSkip
	b[6] = l.DestSkip
	b[7] = optEndOfList
	b[8] = l.Command
	binary.LittleEndian.PutUint16(b[9:], l.Count)
	binary.LittleEndian.PutUint16(b[11:], l.SourceAddr)
	b[13] = l.SourceBank
	binary.LittleEndian.PutUint16(b[14:], l.DestAddr)
	b[16] = l.DestBank
	b[17] = l.SubCommand
	binary.LittleEndian.PutUint16(b[18:], l.Modulo)
	return b
}

// Decode a list from the on-bus layout. The option bytes must be in the
// order written by Encode().
func Decode(b []byte) (List, error) {
	if len(b) < ListSize {
		return List{}, curated.Errorf(InvalidJob, fmt.Sprintf("list is %d bytes", len(b)))
	}

	for _, o := range []struct {
		idx   int
		token uint8
	}{
		{0, optF018B}, {1, optSourceMB}, {3, optDestMB}, {5, optDestSkip}, {7, optEndOfList},
	} {
		if b[o.idx] != o.token {
			return List{}, curated.Errorf(InvalidJob, fmt.Sprintf("option byte %d is $%02x", o.idx, b[o.idx]))
		}
	}

	return List{
		SourceMB:   b[2],
		DestMB:     b[4],
		DestSkip:   b[6],
		Command:    b[8],
		Count:      binary.LittleEndian.Uint16(b[9:]),
		SourceAddr: binary.LittleEndian.Uint16(b[11:]),
		SourceBank: b[13],
		DestAddr:   binary.LittleEndian.Uint16(b[14:]),
		DestBank:   b[16],
		SubCommand: b[17],
		Modulo:     binary.LittleEndian.Uint16(b[18:]),
	}, nil
}
