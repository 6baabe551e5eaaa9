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

package serialize

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/config"
	"github.com/study-game-engines/echo/variant"
)

// Options controls encoding.
type Options struct {
	// OnlyOverridden skips properties equal to the class default object.
	OnlyOverridden bool
	// Format is "yaml" (default) or "toml".
	Format string
}

// FromFile returns the options carried by a config file.
func FromFile(f *config.File) Options {
	if f == nil {
		return Options{}
	}
	return Options{OnlyOverridden: f.Serialize.OnlyOverridden, Format: f.Serialize.Format}
}

// Encode saves obj's readable and writable properties, in the order
// reg.Properties returns them. Read-only properties are skipped since they
// cannot be restored.
func Encode(reg apis.Registry, obj apis.Object, opts Options) (*Document, error) {
	return encode(reg, obj, opts, make(map[apis.Object]bool))
}

func encode(reg apis.Registry, obj apis.Object, opts Options, seen map[apis.Object]bool) (*Document, error) {
	class := reg.ClassName(obj)
	if class == "" || reg.ClassInfo(class) == nil {
		return nil, fmt.Errorf("%w: %T", ErrUnknownClass, obj)
	}
	if reflect.TypeOf(obj).Comparable() {
		if seen[obj] {
			return nil, fmt.Errorf("%w at %s", ErrCycle, class)
		}
		seen[obj] = true
		defer delete(seen, obj)
	}

	d := &Document{Class: class}
	if id, ok := obj.(apis.Identifier); ok {
		d.ID = id.ObjectID()
	}
	for _, pi := range reg.Properties(class, obj, apis.AllProperties, true) {
		if pi.Get == nil || pi.ReadOnly() {
			continue
		}
		v, err := pi.Value(obj)
		if err != nil {
			return nil, fmt.Errorf("echo(serialize): %s.%s: %w", class, pi.Name, err)
		}
		if opts.OnlyOverridden {
			if def, ok := reg.PropertyValueDefault(obj, pi.Name); ok && def.Equal(v) {
				continue
			}
		}
		if v.Type() == variant.Object {
			child, err := encode(reg, v.Object(), opts, seen)
			if err != nil {
				return nil, fmt.Errorf("echo(serialize): %s.%s: %w", class, pi.Name, err)
			}
			d.Fields = append(d.Fields, Field{Name: pi.Name, Value: child})
			continue
		}
		d.Fields = append(d.Fields, Field{Name: pi.Name, Value: v.Plain()})
	}
	return d, nil
}

// Decode creates an instance of d.Class, restores its id and applies the
// saved properties.
func Decode(reg apis.Registry, d *Document) (apis.Object, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil document", ErrMalformed)
	}
	if reg.ClassInfo(d.Class) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, d.Class)
	}
	obj := reg.Create(d.Class)
	if obj == nil {
		return nil, fmt.Errorf("echo(serialize): cannot create %q", d.Class)
	}
	if id, ok := obj.(apis.Identifier); ok && d.ID != "" {
		if err := id.SetObjectID(d.ID); err != nil {
			return nil, err
		}
	}
	if err := Apply(reg, obj, d); err != nil {
		return obj, err
	}
	return obj, nil
}

// Apply writes the saved properties of d onto an existing obj. Every field
// is attempted; the failures are joined.
func Apply(reg apis.Registry, obj apis.Object, d *Document) error {
	var errs []error
	for _, f := range d.Fields {
		pi := reg.PropertyOf(obj, f.Name)
		if pi == nil {
			if err := applyDynamic(reg, obj, d.Class, f); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		v, err := value(reg, pi, f.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("echo(serialize): %s.%s: %w", d.Class, f.Name, err))
			continue
		}
		if err := pi.SetValue(obj, v); err != nil {
			errs = append(errs, fmt.Errorf("echo(serialize): %s.%s: %w", d.Class, f.Name, err))
		}
	}
	if len(errs) > 0 {
		slog.Warn("serialize.Apply: properties not restored", "class", d.Class, "count", len(errs))
	}
	return errors.Join(errs...)
}

// applyDynamic hands a field no property matches to an object that accepts
// new dynamic properties. The value type is inferred from the decoded form.
func applyDynamic(reg apis.Registry, obj apis.Object, class string, f Field) error {
	ds, ok := obj.(apis.DynamicPropertySetter)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownProperty, class, f.Name)
	}
	var v variant.Variant
	if child, ok := f.Value.(*Document); ok {
		o, err := Decode(reg, child)
		if err != nil {
			return fmt.Errorf("echo(serialize): %s.%s: %w", class, f.Name, err)
		}
		v = variant.NewObject(o)
	} else {
		var err error
		if v, err = variant.Infer(f.Value); err != nil {
			return fmt.Errorf("echo(serialize): %s.%s: %w", class, f.Name, err)
		}
	}
	if !ds.SetDynamicProperty(f.Name, v) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownProperty, class, f.Name)
	}
	return nil
}

func value(reg apis.Registry, pi *apis.PropertyInfo, x any) (variant.Variant, error) {
	if child, ok := x.(*Document); ok {
		obj, err := Decode(reg, child)
		if err != nil {
			return variant.Variant{}, err
		}
		return variant.NewObject(obj), nil
	}
	return variant.FromPlain(pi.Type, x)
}
