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

// Package script mirrors the class registry into an embedded Go interpreter
// (yaegi) so that interpreted code can reach registered singletons, create
// objects and call bound methods through the same descriptors.
//
// Each registered class gets a method table linked to its parent's table;
// method lookup walks that chain the way a Lua metatable __index chain would.
package script

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"sync"

	"cogentcore.org/core/base/keylist"
	"github.com/traefik/yaegi/interp"

	"github.com/study-game-engines/echo/apis"
)

var (
	// ErrNoMethod is returned when a method is not found along the class chain.
	ErrNoMethod = errors.New("echo(script): no such method")
	// ErrNoProperty is returned when a property cannot be read or written.
	ErrNoProperty = errors.New("echo(script): no such property")
	// ErrNoRegistry is returned by operations that need an attached registry.
	ErrNoRegistry = errors.New("echo(script): no registry attached")
	// ErrNilHandle is returned when calling through a nil handle.
	ErrNilHandle = errors.New("echo(script): nil handle")
)

// class is the script-side table of one registered class.
type class struct {
	name    string
	parent  string
	methods keylist.List[string, apis.MethodBind]
}

// Binder is an apis.Binder backed by a yaegi interpreter.
type Binder struct {
	mu      sync.RWMutex
	classes map[string]*class
	objects keylist.List[string, *Handle]
	reg     apis.Registry

	opts interp.Options
	in   *interp.Interpreter
}

// Ensure Binder implements apis.Binder.
var _ apis.Binder = (*Binder)(nil)

// Option configures a Binder.
type Option func(*Binder)

// WithStdout redirects interpreter output.
func WithStdout(w io.Writer) Option {
	return func(b *Binder) { b.opts.Stdout = w }
}

// WithStderr redirects interpreter error output.
func WithStderr(w io.Writer) Option {
	return func(b *Binder) { b.opts.Stderr = w }
}

// New returns an empty Binder.
func New(opts ...Option) *Binder {
	b := &Binder{classes: make(map[string]*class)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach sets the registry used by New, Get and Set from scripts.
func (b *Binder) Attach(reg apis.Registry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reg = reg
}

// RegisterClass creates the table of className linked to parentName's. The
// parent table does not need to exist yet. Registering a class again only
// relinks it.
func (b *Binder) RegisterClass(className, parentName string) bool {
	if className == "" {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.classes[className]; ok {
		c.parent = parentName
		return true
	}
	b.classes[className] = &class{name: className, parent: parentName}
	return true
}

// RegisterClassMethod adds m to className's own table.
func (b *Binder) RegisterClassMethod(className, methodName string, m apis.MethodBind) bool {
	if m == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.classes[className]
	if !ok {
		return false
	}
	c.methods.Set(methodName, m)
	return true
}

// RegisterObject exposes obj to scripts as objectName, typed as className.
func (b *Binder) RegisterObject(className, objectName string, obj apis.Object) bool {
	if obj == nil || objectName == "" {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.classes[className]; !ok {
		return false
	}
	b.objects.Set(objectName, &Handle{b: b, class: className, obj: obj})
	return true
}

// Reset drops every class table and exposed object. An interpreter already
// created stays usable and sees the empty tables.
func (b *Binder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.classes = make(map[string]*class)
	b.objects = keylist.List[string, *Handle]{}
}

// ClassMethods lists the methods in className's own table, in registration
// order.
func (b *Binder) ClassMethods(className string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.classes[className]
	if !ok {
		return nil
	}
	return slices.Clone(c.methods.Keys)
}

// Objects lists the names of the exposed objects.
func (b *Binder) Objects() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.objects.Keys)
}

// Object returns the handle exposed as name, or nil.
func (b *Binder) Object(name string) *Handle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.objects.At(name)
}

// Method resolves methodName on className, walking the parent tables.
func (b *Binder) Method(className, methodName string) apis.MethodBind {
	b.mu.RLock()
	defer b.mu.RUnlock()
	seen := make(map[string]bool)
	for name := className; name != "" && !seen[name]; {
		seen[name] = true
		c, ok := b.classes[name]
		if !ok {
			return nil
		}
		if m := c.methods.At(methodName); m != nil {
			return m
		}
		name = c.parent
	}
	return nil
}

// New creates an instance of className through the attached registry and
// wraps it in a handle.
func (b *Binder) New(className string) (*Handle, error) {
	reg := b.registry()
	if reg == nil {
		return nil, ErrNoRegistry
	}
	obj := reg.Create(className)
	if obj == nil {
		return nil, fmt.Errorf("echo(script): cannot create %q", className)
	}
	return &Handle{b: b, class: className, obj: obj}, nil
}

// Wrap returns a handle on obj, naming its class through the attached
// registry when there is one.
func (b *Binder) Wrap(obj apis.Object) *Handle {
	if obj == nil {
		return nil
	}
	name := ""
	if reg := b.registry(); reg != nil {
		name = reg.ClassName(obj)
	}
	return &Handle{b: b, class: name, obj: obj}
}

func (b *Binder) registry() apis.Registry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.reg
}

// ImportPath is the import path of the package exposed to scripts.
const ImportPath = "echo"

// Exports returns the symbols of the "echo" script package:
//
//	Object(name string) *Handle
//	New(className string) (*Handle, error)
//	Classes() []string
//	Handle
func (b *Binder) Exports() interp.Exports {
	return interp.Exports{
		ImportPath + "/echo": map[string]reflect.Value{
			"Object":  reflect.ValueOf(b.Object),
			"New":     reflect.ValueOf(b.New),
			"Classes": reflect.ValueOf(b.classNames),
			"Handle":  reflect.ValueOf((*Handle)(nil)),
		},
	}
}

func (b *Binder) classNames() []string {
	if reg := b.registry(); reg != nil {
		return reg.Classes()
	}
	return nil
}
