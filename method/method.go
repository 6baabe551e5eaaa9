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

// Package method turns native Go functions into type-erased method
// descriptors that can be invoked with Variant arguments.
package method

import (
	"errors"
	"fmt"
	"reflect"

	"cogentcore.org/core/base/reflectx"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/variant"
)

var (
	// ErrNotFunc is returned when binding something that is not a function.
	ErrNotFunc = errors.New("echo(method): value is not a function")
	// ErrNoReceiver is returned when the function has no receiver parameter.
	ErrNoReceiver = errors.New("echo(method): function has no receiver parameter")
	// ErrVariadic is returned when binding a variadic function.
	ErrVariadic = errors.New("echo(method): variadic functions are not supported")
	// ErrResults is returned when the results are not (), (T), (error) or (T, error).
	ErrResults = errors.New("echo(method): unsupported result list")
	// ErrArgCount is returned when calling with the wrong number of arguments.
	ErrArgCount = errors.New("echo(method): wrong number of arguments")
	// ErrReceiver is returned when the object cannot be used as receiver.
	ErrReceiver = errors.New("echo(method): receiver type mismatch")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Bind wraps fn, a function whose first parameter is the receiver, such as
// the method expression (*Circle).SetRadius.
func Bind(name string, fn any) (apis.MethodBind, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %s", ErrNotFunc, name)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: %s", ErrVariadic, name)
	}
	if ft.NumIn() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoReceiver, name)
	}

	b := &bind{name: name, fn: fv, recv: ft.In(0)}
	for i := 1; i < ft.NumIn(); i++ {
		b.in = append(b.in, ft.In(i))
	}

	switch ft.NumOut() {
	case 0:
	case 1:
		if ft.Out(0) == errorType {
			b.retErr = true
		} else {
			b.ret = true
		}
	case 2:
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("%w: %s", ErrResults, name)
		}
		b.ret, b.retErr = true, true
	default:
		return nil, fmt.Errorf("%w: %s", ErrResults, name)
	}
	return b, nil
}

// MustBind is like Bind but panics on error. It is meant for registration
// code where a bad signature is a programming error.
func MustBind(name string, fn any) apis.MethodBind {
	b, err := Bind(name, fn)
	if err != nil {
		panic(err)
	}
	return b
}

// bind is a reflect-backed MethodBind.
type bind struct {
	name   string
	fn     reflect.Value
	recv   reflect.Type
	in     []reflect.Type
	ret    bool
	retErr bool
}

// Ensure bind implements apis.MethodBind.
var _ apis.MethodBind = (*bind)(nil)

func (b *bind) Name() string { return b.name }

func (b *bind) NumArgs() int { return len(b.in) }

// Call converts args to the parameter types, invokes the function and wraps
// the result.
func (b *bind) Call(obj apis.Object, args []variant.Variant) (variant.Variant, error) {
	if len(args) != len(b.in) {
		return variant.Variant{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, b.name, len(b.in), len(args))
	}
	rv, err := receiver(obj, b.recv)
	if err != nil {
		return variant.Variant{}, fmt.Errorf("%s: %w", b.name, err)
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, rv)
	for i, a := range args {
		av, err := a.To(b.in[i])
		if err != nil {
			return variant.Variant{}, fmt.Errorf("%s: argument %d: %w", b.name, i, err)
		}
		in = append(in, av)
	}

	out := b.fn.Call(in)
	switch {
	case b.ret && b.retErr:
		return variant.From(out[0].Interface()), asError(out[1])
	case b.ret:
		return variant.From(out[0].Interface()), nil
	case b.retErr:
		return variant.Variant{}, asError(out[0])
	}
	return variant.Variant{}, nil
}

// receiver adapts obj to the receiver type t. Pointers are dereferenced for
// value receivers, and exported embedded structs are searched so that a
// method bound on a base class accepts objects of derived classes.
func receiver(obj apis.Object, t reflect.Type) (reflect.Value, error) {
	rv := reflect.ValueOf(obj)
	if reflectx.IsNil(rv) {
		return reflect.Value{}, fmt.Errorf("%w: nil object", ErrReceiver)
	}
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if nv := reflectx.NonPointerValue(rv); nv.Type().AssignableTo(t) {
		return nv, nil
	}
	if ev, ok := embedded(rv, t, maxEmbedDepth); ok {
		return ev, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: have %s, want %s", ErrReceiver, rv.Type(), t)
}

// maxEmbedDepth bounds the search through embedded structs.
const maxEmbedDepth = 16

// embedded finds, breadth-first, an embedded field of v usable as t.
func embedded(v reflect.Value, t reflect.Type, depth int) (reflect.Value, bool) {
	v = reflectx.NonPointerValue(v)
	if depth == 0 || v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	var next []reflect.Value
	vt := v.Type()
	for i := 0; i < vt.NumField(); i++ {
		sf := vt.Field(i)
		if !sf.Anonymous || !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}
		if fv.Type().AssignableTo(t) {
			return fv, true
		}
		if fv.CanAddr() && fv.Addr().Type().AssignableTo(t) {
			return fv.Addr(), true
		}
		next = append(next, fv)
	}
	for _, fv := range next {
		if ev, ok := embedded(fv, t, depth-1); ok {
			return ev, true
		}
	}
	return reflect.Value{}, false
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
