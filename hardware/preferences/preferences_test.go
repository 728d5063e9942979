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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/farmem/hardware/memory/addresses"
	"github.com/jetsetilly/farmem/hardware/preferences"
	"github.com/jetsetilly/farmem/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	base, limit := p.Arena()
	test.ExpectEquality(t, base, preferences.DefaultBase)
	test.ExpectEquality(t, limit, preferences.DefaultLimit)
	test.ExpectEquality(t, p.Attic.Get().(bool), true)
	test.ExpectEquality(t, p.Debounce.Get().(int), 3)

	// no file so these are no-ops
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Base.Set("$8000000"))
	test.ExpectSuccess(t, p.Limit.Set("$8010000"))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	base, limit := q.Arena()
	test.ExpectEquality(t, base, addresses.Address(0x8000000))
	test.ExpectEquality(t, limit, addresses.Address(0x8010000))

	// values not in the file keep their defaults
	test.ExpectEquality(t, q.SampleRate.Get().(int), preferences.DefaultRate)
}

func TestArenaAtTop(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectSuccess(t, p.Base.Set(addresses.Max28-0xff))
	test.ExpectSuccess(t, p.Limit.Set("$10000000"))
	test.ExpectFailure(t, p.Base.Set("$10000000"))

	base, limit := p.Arena()
	test.ExpectEquality(t, base, addresses.Max28-0xff)
	test.ExpectEquality(t, limit, addresses.End)
}
