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

// Package sample loads audio files into far memory in the format used by the
// MEGA65 audio DMA channels: mono, signed 8-bit PCM.
//
// WAV and MP3 files are supported. Stereo sources are reduced to the left
// channel. The data is resampled to the rate in the sample.rate preference
// and truncated to the largest block that can be moved by a single DMA job.
//
// A sample in far memory can be written back to disk as a 16-bit WAV file
// with the Export() function.
package sample
