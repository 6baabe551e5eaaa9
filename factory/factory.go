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

// Package factory provides the two instantiable ObjectFactory variants: a
// per-instance factory and a singleton factory. Each owns one ClassInfo.
package factory

import (
	"reflect"
	"sync"

	"github.com/study-game-engines/echo/apis"
)

// Option configures the ClassInfo of a factory at construction.
type Option func(*apis.ClassInfo)

// Virtual marks the class abstract.
func Virtual() Option {
	return func(ci *apis.ClassInfo) { ci.Virtual = true }
}

// Module records the subsystem registering the class.
func Module(name string) Option {
	return func(ci *apis.ClassInfo) { ci.Module = name }
}

func newInfo(name, parent string, singleton bool, opts []Option) apis.ClassInfo {
	ci := apis.ClassInfo{Name: name, Parent: parent, Singleton: singleton}
	for _, opt := range opts {
		opt(&ci)
	}
	// A singleton always has an instance to hand out.
	ci.Virtual = ci.Virtual && !singleton
	return ci
}

// Instance creates a new *T on every Create call and keeps one lazily built
// default *T for reading prototype values.
type Instance[T any] struct {
	info apis.ClassInfo
	ctor func() *T

	once sync.Once
	def  *T
}

// Ensure Instance implements apis.Factory.
var _ apis.Factory = (*Instance[struct{}])(nil)

// NewInstance returns a per-instance factory for T registered as name.
func NewInstance[T any](name, parent string, opts ...Option) *Instance[T] {
	return &Instance[T]{info: newInfo(name, parent, false, opts)}
}

// WithConstructor sets the function used to build new instances.
// A nil constructor falls back to new(T).
func (f *Instance[T]) WithConstructor(ctor func() *T) *Instance[T] {
	f.ctor = ctor
	return f
}

// Info returns the owned ClassInfo.
func (f *Instance[T]) Info() *apis.ClassInfo { return &f.info }

// Create allocates a new instance.
func (f *Instance[T]) Create() apis.Object { return f.build() }

// DefaultObject returns the process-lifetime default instance. Nothing stops
// callers from mutating it; they are trusted not to.
func (f *Instance[T]) DefaultObject() apis.Object {
	f.once.Do(func() { f.def = f.build() })
	return f.def
}

// Type returns *T.
func (f *Instance[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)) }

func (f *Instance[T]) build() *T {
	if f.ctor != nil {
		return f.ctor()
	}
	return new(T)
}

// Singleton always returns the instance provided by its accessor.
type Singleton[T any] struct {
	info     apis.ClassInfo
	instance func() *T
}

// Ensure Singleton implements apis.Factory.
var _ apis.Factory = (*Singleton[struct{}])(nil)

// NewSingleton returns a singleton factory for T registered as name.
// instance is the type's singleton accessor.
func NewSingleton[T any](name, parent string, instance func() *T, opts ...Option) *Singleton[T] {
	return &Singleton[T]{info: newInfo(name, parent, true, opts), instance: instance}
}

// Info returns the owned ClassInfo.
func (f *Singleton[T]) Info() *apis.ClassInfo { return &f.info }

// Create returns the singleton.
func (f *Singleton[T]) Create() apis.Object { return f.instance() }

// DefaultObject returns nil: the singleton itself is always live.
func (f *Singleton[T]) DefaultObject() apis.Object { return nil }

// Type returns *T.
func (f *Singleton[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)) }
