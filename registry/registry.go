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

package registry

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"

	"cogentcore.org/core/base/reflectx"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/config"
	"github.com/study-game-engines/echo/resolver"
	"github.com/study-game-engines/echo/strategy"
	uref "github.com/study-game-engines/echo/utils/reflect"
)

// Option configures a registry at construction.
type Option func(*registry)

// WithBinder attaches a scripting binder. Registrations are mirrored into it
// when cfg.ScriptBridge is set.
func WithBinder(b apis.Binder) Option {
	return func(r *registry) { r.binder = b }
}

// WithResolver replaces the default Namer -> Registry -> Reflect chain.
func WithResolver(res apis.Resolver) Option {
	return func(r *registry) { r.res = res }
}

// New constructs an empty class registry.
func New(cfg apis.Config, opts ...Option) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	r := &registry{
		cfg:     cfg,
		classes: make(map[string]apis.Factory),
		types:   make(map[reflect.Type]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.res == nil {
		r.res = resolver.New(
			strategy.NewNamerStrategy(),
			strategy.NewRegistryStrategy(r),
			strategy.NewReflectStrategy(),
		)
	}
	return r
}

// registry maps class names to factories. All ClassInfo mutation happens
// under mu; bound accessors are always invoked with mu released so that
// getters and setters may call back into the registry.
type registry struct {
	// cfg is the configuration used for chain walks and type normalization.
	cfg apis.Config
	// binder receives mirrored registrations; may be nil.
	binder apis.Binder

	mu sync.RWMutex
	// classes maps class name to its factory.
	classes map[string]apis.Factory
	// types maps the normalized Go type of a factory to its class name.
	types map[reflect.Type]string
	// res derives class names of live objects.
	res apis.Resolver
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// AddClass inserts or overwrites the entry for name and mirrors the class
// into the scripting binder.
func (r *registry) AddClass(name string, f apis.Factory) {
	if name == "" || f == nil {
		slog.Warn("registry: ignoring class with empty name or nil factory", "class", name)
		return
	}
	info := f.Info()

	r.mu.Lock()
	if _, dup := r.classes[name]; dup {
		slog.Debug("registry: class registered again, last write wins", "class", name)
	}
	r.classes[name] = f
	if t := f.Type(); t != nil {
		if nt, err := uref.Normalize(t, r.cfg); err == nil {
			if old, ok := r.types[nt]; ok && old != name {
				slog.Debug("registry: Go type rebound to another class", "type", nt, "old", old, "class", name)
			}
			r.types[nt] = name
		}
	}
	methods := slices.Clone(info.Methods.Keys)
	binds := slices.Clone(info.Methods.Values)
	r.mu.Unlock()

	if b := r.bridge(); b != nil {
		b.RegisterClass(name, info.Parent)
		for i, m := range methods {
			b.RegisterClassMethod(name, m, binds[i])
		}
		if info.Singleton {
			b.RegisterObject(name, name, f.Create())
		}
	}
}

// bridge returns the binder when mirroring is enabled.
func (r *registry) bridge() apis.Binder {
	if !r.cfg.ScriptBridge {
		return nil
	}
	return r.binder
}

// Factory returns the factory registered under name.
func (r *registry) Factory(name string) (apis.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.classes[name]
	return f, ok
}

// ClassInfo returns the ClassInfo registered under name, or nil.
func (r *registry) ClassInfo(name string) *apis.ClassInfo {
	f, ok := r.Factory(name)
	if !ok {
		return nil
	}
	return f.Info()
}

// Classes returns all registered class names, sorted.
func (r *registry) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.classes))
}

// Create returns a new instance of className. Unknown and virtual classes
// yield nil; the latter is a caller error and is logged.
func (r *registry) Create(className string) apis.Object {
	f, ok := r.Factory(className)
	if !ok {
		return nil
	}
	if f.Info().Virtual {
		slog.Error("registry: cannot create instance of virtual class", "class", className)
		return nil
	}
	return f.Create()
}

// DefaultObject returns the default instance of className.
func (r *registry) DefaultObject(className string) apis.Object {
	f, ok := r.Factory(className)
	if !ok {
		return nil
	}
	return f.DefaultObject()
}

// IsDerivedFrom reports whether ancestor is className or one of its ancestors.
func (r *registry) IsDerivedFrom(className, ancestor string) bool {
	if ancestor == "" {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.lineage(className), ancestor)
}

// IsVirtual reports the virtual flag; false for unknown classes.
func (r *registry) IsVirtual(className string) bool {
	ci := r.ClassInfo(className)
	return ci != nil && ci.Virtual
}

// IsSingleton reports the singleton flag; false for unknown classes.
func (r *registry) IsSingleton(className string) bool {
	ci := r.ClassInfo(className)
	return ci != nil && ci.Singleton
}

// ParentClass returns the parent of className.
func (r *registry) ParentClass(className string) (string, bool) {
	ci := r.ClassInfo(className)
	if ci == nil || ci.Parent == "" {
		return "", false
	}
	return ci.Parent, true
}

// ChildClasses returns the classes whose parent is className, sorted by name.
// With recursive, each child is followed by its own descendants (depth-first);
// every name appears once.
func (r *registry) ChildClasses(className string, recursive bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	children := make(map[string][]string)
	for _, name := range slices.Sorted(maps.Keys(r.classes)) {
		p := r.classes[name].Info().Parent
		children[p] = append(children[p], name)
	}
	if !recursive {
		return slices.Clone(children[className])
	}

	var out []string
	seen := map[string]bool{className: true}
	var walk func(string)
	walk = func(name string) {
		for _, c := range children[name] {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
			walk(c)
		}
	}
	walk(className)
	return out
}

// lineage returns className followed by its ancestors, most derived first.
// The walk ends at a root, at an unregistered parent (which is included), at
// cfg.MaxDepth ancestors, or on a revisited name when cfg.DetectCycles is set.
// Unknown classes yield nil. Callers hold r.mu.
func (r *registry) lineage(className string) []string {
	if _, ok := r.classes[className]; !ok {
		return nil
	}
	var seen map[string]struct{}
	if r.cfg.DetectCycles {
		seen = make(map[string]struct{})
	}
	var out []string
	for name := className; name != ""; {
		if r.cfg.MaxDepth > 0 && len(out) > r.cfg.MaxDepth {
			slog.Warn("registry: parent chain exceeds MaxDepth", "class", className, "maxDepth", r.cfg.MaxDepth)
			break
		}
		if seen != nil {
			if _, dup := seen[name]; dup {
				slog.Warn("registry: cyclic parent chain", "class", className, "at", name)
				break
			}
			seen[name] = struct{}{}
		}
		out = append(out, name)
		f, ok := r.classes[name]
		if !ok {
			break
		}
		name = f.Info().Parent
	}
	return out
}

// infos returns the ClassInfos along the lineage of className, most derived
// first. Unregistered ancestors are skipped.
func (r *registry) infos(className string) []*apis.ClassInfo {
	var out []*apis.ClassInfo
	for _, name := range r.lineage(className) {
		if f, ok := r.classes[name]; ok {
			out = append(out, f.Info())
		}
	}
	return out
}

// ClassName resolves the class name of a live object.
func (r *registry) ClassName(obj apis.Object) string {
	if absent(obj) {
		return ""
	}
	return r.Resolver().Resolve(obj, r.cfg)
}

// absent reports whether obj is nil or a typed nil pointer, which no
// accessor can be invoked on.
func absent(obj apis.Object) bool {
	return reflectx.IsNil(reflect.ValueOf(obj))
}

// Lookup returns the class registered for a Go type.
func (r *registry) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.types[nt]
	return name, ok
}

// Resolver returns the resolver used by ClassName.
func (r *registry) Resolver() apis.Resolver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.res
}

// UseResolver replaces the resolver used by ClassName. A nil resolver is
// ignored.
func (r *registry) UseResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.res = res
}

// Binder returns the attached scripting binder, or nil.
func (r *registry) Binder() apis.Binder { return r.binder }

// Entries returns a snapshot for diagnostics/docs, sorted by name.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]apis.Entry, 0, len(r.classes))
	for _, name := range slices.Sorted(maps.Keys(r.classes)) {
		entries = append(entries, apis.Entry{Name: name, Factory: r.classes[name]})
	}
	return entries
}

// Count returns the number of registered classes.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// Clear drops every registered class and the binder's mirrored tables.
func (r *registry) Clear() {
	r.mu.Lock()
	r.classes = make(map[string]apis.Factory)
	r.types = make(map[reflect.Type]string)
	r.mu.Unlock()
	if b := r.bridge(); b != nil {
		b.Reset()
	}
}
