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

package sample

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/farmem/curated"
	"github.com/jetsetilly/farmem/environment"
	"github.com/jetsetilly/farmem/hardware/memory/bus"
	"github.com/jetsetilly/farmem/hardware/memory/far"
	"github.com/jetsetilly/farmem/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "sample: unsupported format: %v"
	DecodeError       = "sample: %v: %v"
	ExportError       = "sample: export: %v"
)

const logTag = "sample"

// Sample is a block of signed 8-bit PCM data in far memory.
type Sample struct {
	Ptr  far.Ptr28
	Rate int
}

func (s Sample) String() string {
	return fmt.Sprintf("%v at %dHz", s.Ptr, s.Rate)
}

// Duration returns the length of the sample in seconds.
func (s Sample) Duration() float64 {
	if s.Rate == 0 {
		return 0
	}
	return float64(s.Ptr.Len) / float64(s.Rate)
}

// Load decodes the named file and pushes the result into far memory using the
// allocator. The type of file is decided by the filename extension.
func Load(env *environment.Environment, alloc *far.Allocator, filename string) (Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Sample{}, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return LoadWAV(env, alloc, f)
	case ".mp3":
		return LoadMP3(env, alloc, f)
	}

	return Sample{}, curated.Errorf(UnsupportedFormat, filepath.Ext(filename))
}

// LoadWAV decodes WAV data and pushes the result into far memory.
func LoadWAV(env *environment.Environment, alloc *far.Allocator, r io.ReadSeeker) (Sample, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return Sample{}, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Sample{}, curated.Errorf(DecodeError, "wav", err)
	}

	logger.Logf(env, logTag, "wav: %d bits, %d channels, %dHz", dec.BitDepth, dec.NumChans, dec.SampleRate)

	chans := max(int(dec.NumChans), 1)
	shift := int(dec.BitDepth) - 8

	data := make([]int8, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		if shift == 0 {
			// 8-bit wav data is unsigned
			v -= 128
		} else if shift > 0 {
			v >>= shift
		}
		data = append(data, int8(v))
	}

	return push(env, alloc, data, int(dec.SampleRate))
}

// LoadMP3 decodes MP3 data and pushes the result into far memory.
func LoadMP3(env *environment.Environment, alloc *far.Allocator, r io.Reader) (Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Sample{}, curated.Errorf(DecodeError, "mp3", err)
	}

	logger.Logf(env, logTag, "mp3: %dHz", dec.SampleRate())

	var data []int8

	chunk := make([]byte, 4096)
	for err != io.EOF {
		var n int
		n, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return Sample{}, curated.Errorf(DecodeError, "mp3", err)
		}

		// the decoded stream is always 16-bit little endian stereo. the left
		// channel is the first two bytes of every four. the most significant
		// byte is all we need
		for i := 1; i < n; i += 4 {
			data = append(data, int8(chunk[i]))
		}
	}

	return push(env, alloc, data, dec.SampleRate())
}

// resample data from one rate to another by selecting the nearest sample.
func resample(data []int8, from int, to int) []int8 {
	if from == to || from <= 0 || to <= 0 {
		return data
	}
	n := int(int64(len(data)) * int64(to) / int64(from))
	out := make([]int8, n)
	for i := range out {
		out[i] = data[int64(i)*int64(from)/int64(to)]
	}
	return out
}

func push(env *environment.Environment, alloc *far.Allocator, data []int8, rate int) (Sample, error) {
	target := rate
	if env != nil && env.Prefs != nil {
		if r := env.Prefs.SampleRate.Get().(int); r > 0 {
			target = r
		}
	}

	if target != rate {
		data = resample(data, rate, target)
		logger.Logf(env, logTag, "resampled from %dHz to %dHz", rate, target)
	}

	if len(data) > bus.MaxBlock {
		logger.Logf(env, logTag, "truncated from %d to %d bytes", len(data), bus.MaxBlock)
		data = data[:bus.MaxBlock]
	}

	b := make([]byte, len(data))
	for i, v := range data {
		b[i] = uint8(v)
	}

	p, err := alloc.Push(b)
	if err != nil {
		return Sample{}, err
	}

	s := Sample{Ptr: p, Rate: target}
	logger.Logf(env, logTag, "loaded %v", s)

	return s, nil
}

// PCM returns the sample data from far memory.
func (s Sample) PCM(mem bus.BlockBus) ([]int8, error) {
	b, err := s.Ptr.Bytes(mem)
	if err != nil {
		return nil, err
	}
	d := make([]int8, len(b))
	for i, v := range b {
		d[i] = int8(v)
	}
	return d, nil
}

// Write the sample to w as a mono 16-bit WAV file.
func (s Sample) Write(mem bus.BlockBus, w io.WriteSeeker) error {
	pcm, err := s.PCM(mem)
	if err != nil {
		return curated.Errorf(ExportError, err)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  s.Rate,
		},
		Data:           make([]int, len(pcm)),
		SourceBitDepth: 16,
	}
	for i, v := range pcm {
		buf.Data[i] = int(v) << 8
	}

	enc := wav.NewEncoder(w, s.Rate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(ExportError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(ExportError, err)
	}

	return nil
}

// Export the sample to the named file as a mono 16-bit WAV file.
func (s Sample) Export(mem bus.BlockBus, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ExportError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(ExportError, err)
		}
	}()

	return s.Write(mem, f)
}
