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

package builder

import (
	"errors"
	"fmt"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/factory"
	"github.com/study-game-engines/echo/method"
	"github.com/study-game-engines/echo/variant"
)

var (
	// ErrBind is returned when a method or signal accessor cannot be bound.
	ErrBind = errors.New("echo(builder): cannot bind method")
	// ErrUnboundAccessor is returned when a property names a getter or
	// setter that the class does not declare.
	ErrUnboundAccessor = errors.New("echo(builder): property accessor not declared")
	// ErrUnknownProperty is returned when a hint names a property that the
	// class does not declare.
	ErrUnknownProperty = errors.New("echo(builder): hint on undeclared property")
	// ErrEmptyName is returned for classes declared without a name.
	ErrEmptyName = errors.New("echo(builder): empty class name")
)

// Describer is implemented by anything that yields a class Descriptor,
// including every *ClassBuilder.
type Describer interface {
	Descriptor() *Descriptor
}

// Descriptor is the type-erased result of a ClassBuilder: a factory plus
// the registration steps to replay against a registry.
type Descriptor struct {
	Name    string
	Parent  string
	Module  string
	Factory apis.Factory

	steps []step
	err   error
}

// Descriptor returns d itself.
func (d *Descriptor) Descriptor() *Descriptor { return d }

// Err returns the first declaration error, if any.
func (d *Descriptor) Err() error { return d.err }

type step func(reg apis.Registry) error

// Register adds the class to reg and replays its methods, signals,
// properties and hints in declaration order.
func (d *Descriptor) Register(reg apis.Registry) error {
	if d.err != nil {
		return fmt.Errorf("class %s: %w", d.Name, d.err)
	}
	reg.AddClass(d.Name, d.Factory)
	for _, s := range d.steps {
		if err := s(reg); err != nil {
			return fmt.Errorf("class %s: %w", d.Name, err)
		}
	}
	return nil
}

// ClassBuilder declares one class backed by the Go type T.
//
//	builder.Class[Circle]("Circle").
//		Parent("Shape").
//		Method("getRadius", (*Circle).Radius).
//		Method("setRadius", (*Circle).SetRadius).
//		Property("Radius", variant.Real, "getRadius", "setRadius").
//		Hint("Radius", apis.HintRange, "0,100")
type ClassBuilder[T any] struct {
	name      string
	parent    string
	module    string
	virtual   bool
	singleton func() *T
	ctor      func() *T

	methods    map[string]bool
	properties map[string]bool
	steps      []step
	err        error
}

// Class starts the declaration of a per-instance class.
func Class[T any](name string) *ClassBuilder[T] {
	b := &ClassBuilder[T]{
		name:       name,
		methods:    make(map[string]bool),
		properties: make(map[string]bool),
	}
	if name == "" {
		b.err = ErrEmptyName
	}
	return b
}

// Singleton starts the declaration of a singleton class whose instance is
// returned by instance.
func Singleton[T any](name string, instance func() *T) *ClassBuilder[T] {
	b := Class[T](name)
	b.singleton = instance
	return b
}

// Parent sets the immediate superclass.
func (b *ClassBuilder[T]) Parent(name string) *ClassBuilder[T] {
	b.parent = name
	return b
}

// Module records the subsystem registering the class.
func (b *ClassBuilder[T]) Module(name string) *ClassBuilder[T] {
	b.module = name
	return b
}

// Virtual marks the class abstract.
func (b *ClassBuilder[T]) Virtual() *ClassBuilder[T] {
	b.virtual = true
	return b
}

// Constructor sets the function building new instances.
func (b *ClassBuilder[T]) Constructor(ctor func() *T) *ClassBuilder[T] {
	b.ctor = ctor
	return b
}

// Method binds fn, a function whose first parameter is *T or T (typically a
// method expression), under name.
func (b *ClassBuilder[T]) Method(name string, fn any) *ClassBuilder[T] {
	m, err := method.Bind(name, fn)
	if err != nil {
		b.fail(fmt.Errorf("%w %s: %w", ErrBind, name, err))
		return b
	}
	return b.MethodBind(m)
}

// Func binds a closure under name.
func (b *ClassBuilder[T]) Func(name string, arity int, fn method.Fn) *ClassBuilder[T] {
	return b.MethodBind(method.Func(name, arity, fn))
}

// MethodBind registers an already built method descriptor.
func (b *ClassBuilder[T]) MethodBind(m apis.MethodBind) *ClassBuilder[T] {
	name := b.name
	b.methods[m.Name()] = true
	b.steps = append(b.steps, func(reg apis.Registry) error {
		if !reg.RegisterMethodBind(name, m.Name(), m) {
			return fmt.Errorf("%w %s", ErrBind, m.Name())
		}
		return nil
	})
	return b
}

// Signal binds accessor, a function returning the signal object of an
// instance, as the signal name.
func (b *ClassBuilder[T]) Signal(name string, accessor any) *ClassBuilder[T] {
	m, err := method.Bind(name, accessor)
	if err != nil {
		b.fail(fmt.Errorf("%w signal %s: %w", ErrBind, name, err))
		return b
	}
	className := b.name
	b.steps = append(b.steps, func(reg apis.Registry) error {
		if !reg.RegisterSignal(className, name, m) {
			return fmt.Errorf("%w signal %s", ErrBind, name)
		}
		return nil
	})
	return b
}

// Property declares a property whose accessors are methods declared
// earlier on this builder. An empty setter makes it read-only.
func (b *ClassBuilder[T]) Property(name string, t variant.Type, getter, setter string) *ClassBuilder[T] {
	for _, acc := range []string{getter, setter} {
		if acc != "" && !b.methods[acc] {
			b.fail(fmt.Errorf("%w: %s.%s", ErrUnboundAccessor, name, acc))
			return b
		}
	}
	b.properties[name] = true
	className := b.name
	b.steps = append(b.steps, func(reg apis.Registry) error {
		reg.RegisterProperty(className, name, t, getter, setter)
		return nil
	})
	return b
}

// Accessors binds get and set (set may be nil) as "get<Name>" and
// "set<Name>" and declares the property in one call.
func (b *ClassBuilder[T]) Accessors(name string, t variant.Type, get, set any) *ClassBuilder[T] {
	getter, setter := "get"+name, ""
	b.Method(getter, get)
	if set != nil {
		setter = "set" + name
		b.Method(setter, set)
	}
	if b.err != nil {
		return b
	}
	return b.Property(name, t, getter, setter)
}

// Hint attaches a hint to a property declared on this builder.
func (b *ClassBuilder[T]) Hint(property string, t apis.HintType, value string) *ClassBuilder[T] {
	return b.hint(property, false, apis.Hint{Type: t, Value: value})
}

// InheritedHint attaches a hint to a property declared by an ancestor.
func (b *ClassBuilder[T]) InheritedHint(property string, t apis.HintType, value string) *ClassBuilder[T] {
	return b.hint(property, true, apis.Hint{Type: t, Value: value})
}

func (b *ClassBuilder[T]) hint(property string, inherited bool, h apis.Hint) *ClassBuilder[T] {
	if !inherited && !b.properties[property] {
		b.fail(fmt.Errorf("%w: %s", ErrUnknownProperty, property))
		return b
	}
	className := b.name
	b.steps = append(b.steps, func(reg apis.Registry) error {
		if !reg.RegisterPropertyHint(className, property, h) {
			return fmt.Errorf("%w: %s", ErrUnknownProperty, property)
		}
		return nil
	})
	return b
}

func (b *ClassBuilder[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Descriptor builds the factory and freezes the declaration.
func (b *ClassBuilder[T]) Descriptor() *Descriptor {
	var opts []factory.Option
	if b.virtual {
		opts = append(opts, factory.Virtual())
	}
	if b.module != "" {
		opts = append(opts, factory.Module(b.module))
	}

	var f apis.Factory
	if b.singleton != nil {
		f = factory.NewSingleton(b.name, b.parent, b.singleton, opts...)
	} else {
		f = factory.NewInstance[T](b.name, b.parent, opts...).WithConstructor(b.ctor)
	}
	return &Descriptor{
		Name:    b.name,
		Parent:  b.parent,
		Module:  b.module,
		Factory: f,
		steps:   append([]step(nil), b.steps...),
		err:     b.err,
	}
}

// Register is shorthand for b.Descriptor().Register(reg).
func (b *ClassBuilder[T]) Register(reg apis.Registry) error {
	return b.Descriptor().Register(reg)
}
