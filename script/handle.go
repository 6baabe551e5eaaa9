/*
   Copyright 2025 The Echo Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package script

import (
	"fmt"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/variant"
)

// Handle is the script-side view of a live object: the object plus the class
// table used to resolve its methods.
type Handle struct {
	b     *Binder
	class string
	obj   apis.Object
}

// ClassName returns the class the handle dispatches through.
func (h *Handle) ClassName() string {
	if h == nil {
		return ""
	}
	return h.class
}

// Object returns the wrapped object.
func (h *Handle) Object() apis.Object {
	if h == nil {
		return nil
	}
	return h.obj
}

// Call invokes a method found along the handle's class chain. Arguments may
// be plain Go values, variants or other handles. Object results come back as
// handles; every other result as its Go payload.
func (h *Handle) Call(method string, args ...any) (any, error) {
	if h == nil || h.b == nil {
		return nil, ErrNilHandle
	}
	m := h.b.Method(h.class, method)
	if m == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoMethod, h.class, method)
	}
	vargs := make([]variant.Variant, len(args))
	for i, a := range args {
		vargs[i] = variant.From(unwrap(a))
	}
	res, err := m.Call(h.obj, vargs)
	if err != nil {
		return nil, err
	}
	return h.b.result(res), nil
}

// Get reads a property through the attached registry.
func (h *Handle) Get(property string) (any, error) {
	if h == nil || h.b == nil {
		return nil, ErrNilHandle
	}
	reg := h.b.registry()
	if reg == nil {
		return nil, ErrNoRegistry
	}
	v, ok := reg.PropertyValue(h.obj, property)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoProperty, h.class, property)
	}
	return h.b.result(v), nil
}

// Set writes a property through the attached registry, converting value to
// the declared property type.
func (h *Handle) Set(property string, value any) error {
	if h == nil || h.b == nil {
		return ErrNilHandle
	}
	reg := h.b.registry()
	if reg == nil {
		return ErrNoRegistry
	}
	pi := reg.PropertyOf(h.obj, property)
	if pi == nil {
		return fmt.Errorf("%w: %s.%s", ErrNoProperty, h.class, property)
	}
	v := variant.From(unwrap(value))
	if v.Type() != pi.Type && !v.IsNil() {
		cv, err := variant.FromPlain(pi.Type, v.Plain())
		if err != nil {
			return err
		}
		v = cv
	}
	return pi.SetValue(h.obj, v)
}

// String implements fmt.Stringer.
func (h *Handle) String() string {
	if h == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%p)", h.class, h.obj)
}

func unwrap(x any) any {
	if h, ok := x.(*Handle); ok {
		return h.Object()
	}
	return x
}

func (b *Binder) result(v variant.Variant) any {
	if v.Type() == variant.Object {
		return b.Wrap(v.Object())
	}
	return v.Interface()
}
