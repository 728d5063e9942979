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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/farmem/hardware/memory/addresses"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all pref types.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Even if the value hasn't changed, the callback will be
// executed.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}

	v.Store(nv)

	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}

	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value atomic.Value // string
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type.
func (p *String) Set(v Value) error {
	return p.store(&p.value, fmt.Sprintf("%v", v))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Address implements a 28-bit address type in the prefs system.
//
// If Exclusive is true the value is the exclusive end of a region and may
// also be addresses.End. It should be set before the first call to Set().
type Address struct {
	hooks
	value     atomic.Value // addresses.Address
	Exclusive bool
}

func (p *Address) String() string {
	return p.Get().(addresses.Address).String()
}

// Set new value to Address type. New value can be an addresses.Address, an
// int, a uint32 or a string in any of the forms accepted by addresses.Parse().
func (p *Address) Set(v Value) error {
	var nv addresses.Address
	switch v := v.(type) {
	case addresses.Address:
		nv = v
	case uint32:
		nv = addresses.Address(v)
	case int:
		if v < 0 {
			return fmt.Errorf("prefs: negative value for prefs.Address")
		}
		nv = addresses.Address(v)
	case string:
		var err error
		if p.Exclusive {
			nv, err = addresses.ParseLimit(v)
		} else {
			nv, err = addresses.Parse(v)
		}
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Address", v)
	}

	if !nv.Valid() && !(p.Exclusive && nv == addresses.End) {
		return fmt.Errorf("prefs: %v is not a 28-bit address", nv)
	}

	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Address) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return addresses.Address(0)
	}
	return ov.(addresses.Address)
}

// Reset sets the address value to zero.
func (p *Address) Reset() error {
	return p.Set(addresses.Address(0))
}
