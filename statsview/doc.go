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

// Package statsview offers a local HTTP server with runtime statistics. The
// server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview
//
// Underlying functionality is provided by github.com/go-echarts/statsview.
// After launch, graphical statistics are viewable at:
//
//	localhost:12650/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12650/debug/pprof/
//
// Watching the heap while the far memory monitor or the sample loader are
// running is a good way of checking that the RAM model only allocates the
// pages that are used.
package statsview

// DefaultAddress is used by Launch() when no address is specified.
const DefaultAddress = "localhost:12650"

const urlPath = "/debug/statsview"
