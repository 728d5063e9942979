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

package sample_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware/dmagic"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
	"github.com/jetsetilly/farmem/hardware/memory/far"
	"github.com/jetsetilly/farmem/hardware/memory/ram"
	"github.com/jetsetilly/farmem/sample"
	"github.com/jetsetilly/farmem/test"
)

func machine() (*environment.Environment, *dmagic.Controller, *far.Allocator) {
	env := environment.NewEnvironment("test", nil)
	dma := dmagic.NewController(env, ram.NewRAM(env, true))
	return env, dma, far.NewAllocator(dma, 0x8000000)
}

// writeWAV creates a 16-bit mono WAV file.
func writeWAV(t *testing.T, filename string, rate int, data []int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	test.DemandSuccess(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	test.DemandSuccess(t, enc.Close())
}

func TestExportLoad(t *testing.T) {
	env, dma, alloc := machine()

	pcm := []int8{-128, -1, 0, 1, 127, 64, -64}
	b := make([]byte, len(pcm))
	for i, v := range pcm {
		b[i] = uint8(v)
	}
	p, err := alloc.Push(b)
	test.DemandSuccess(t, err)

	s := sample.Sample{Ptr: p, Rate: 8000}
	fn := filepath.Join(t.TempDir(), "export.wav")
	test.DemandSuccess(t, s.Export(dma, fn))

	l, err := sample.Load(env, alloc, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Rate, 8000)
	test.ExpectEquality(t, l.Ptr.Len, uint16(len(pcm)))
	test.ExpectEquality(t, l.Ptr.Address, p.End())

	d, err := l.PCM(dma)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(d), len(pcm))
	for i := range pcm {
		test.ExpectEquality(t, d[i], pcm[i], i)
	}
}

func TestResample(t *testing.T) {
	env, dma, alloc := machine()
	test.DemandSuccess(t, env.Prefs.SampleRate.Set(4000))

	data := make([]int, 100)
	for i := range data {
		data[i] = i << 8
	}
	fn := filepath.Join(t.TempDir(), "resample.wav")
	writeWAV(t, fn, 8000, data)

	s, err := sample.Load(env, alloc, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 4000)
	test.ExpectEquality(t, s.Ptr.Len, 50)
	test.ExpectApproximate(t, s.Duration(), 0.0125, 0.001)

	d, err := s.PCM(dma)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[10], 20)
	test.ExpectEquality(t, d[49], 98)
}

func TestTruncation(t *testing.T) {
	env, _, alloc := machine()

	fn := filepath.Join(t.TempDir(), "long.wav")
	writeWAV(t, fn, 8000, make([]int, bus.MaxBlock+100))

	s, err := sample.Load(env, alloc, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Ptr.Len, uint16(bus.MaxBlock))
	test.ExpectEquality(t, alloc.Used(), uint32(bus.MaxBlock))
}

func TestLoadErrors(t *testing.T) {
	env, _, alloc := machine()
	dir := t.TempDir()

	fn := filepath.Join(dir, "sample.raw")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{1, 2, 3}, 0o644))
	_, err := sample.Load(env, alloc, fn)
	test.ExpectSuccess(t, curated.Is(err, sample.UnsupportedFormat))

	fn = filepath.Join(dir, "notreally.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("this is not a wav file"), 0o644))
	_, err = sample.Load(env, alloc, fn)
	test.ExpectSuccess(t, curated.Is(err, sample.DecodeError))

	_, err = sample.Load(env, alloc, filepath.Join(dir, "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, sample.DecodeError))

	// nothing should have been allocated
	test.ExpectEquality(t, alloc.Used(), uint32(0))
}
