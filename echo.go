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

package echo

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/builder"
	"github.com/study-game-engines/echo/config"
)

// init publishes the default snapshot: default config, no binder and the
// default builder's registry and resolver.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil, nil)
	s.res = s.bld.BuildResolver(s.cfg, s.reg, nil)
	s.reg.UseResolver(s.res)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("echo: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("echo: builder returned nil resolver")
)

// ClassName resolves the class name of obj with the global resolver.
func ClassName(obj apis.Object) string {
	s := st.Load()
	return s.res.Resolve(obj, s.cfg)
}

// ClassNameOf resolves the class name of a Go type with the global resolver.
func ClassNameOf(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// Create returns a new instance of className from the global registry, or
// nil for unknown and virtual classes.
func Create(className string) apis.Object {
	return st.Load().reg.Create(className)
}

// Register orders the descriptors parent-first and registers them into the
// global registry.
func Register(ds ...builder.Describer) error {
	return builder.NewPlan(ds...).Register(st.Load().reg)
}

// RegisterPlan registers a prepared plan into the global registry.
func RegisterPlan(p *builder.Plan) error {
	return p.Register(st.Load().reg)
}

// Clear empties the global registry.
func Clear() {
	st.Load().reg.Clear()
}

// SetAll replaces every component of the global snapshot at once. A nil
// cfg, bld, reg or res keeps or rebuilds that component; binder is always
// replaced. Passing nil reg and res unpins both.
func SetAll(cfg *apis.Config, binder apis.Binder, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nreg, npreg := reg, reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, binder)
	}
	nres, npres := res, res != nil
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res)
	}

	publish(&state{
		cfg:    ncfg,
		binder: binder,
		reg:    nreg,
		res:    nres,
		bld:    nbld,
		preg:   npreg,
		pres:   npres,
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration and rebuilds the unpinned
// layers with it.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.cfg = cfg
	rebuild(&next, old)
	publish(&next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the global registry and pins it. The resolver
// is rebuilt for it unless pinned. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.reg, next.preg = reg, true
	if !old.pres {
		next.res = old.bld.BuildResolver(old.cfg, reg, old.res)
	}
	publish(&next)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs res as the global resolver and pins it. A nil res is
// ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.res, next.pres = res, true
	publish(&next)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds the unpinned layers
// with it. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.bld = b
	rebuild(&next, old)
	publish(&next)
}

// Binder returns the global scripting binder, or nil.
func Binder() apis.Binder {
	return st.Load().binder
}

// SetBinder replaces the scripting binder. An unpinned registry is rebuilt
// so that every registered class is mirrored into the new binder; a pinned
// one keeps its own binder.
func SetBinder(b apis.Binder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.binder = b
	rebuild(&next, old)
	publish(&next)
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic rebuilds of the global registry.
func PinRegistry() { setPins(true, st.Load().pres) }

// UnpinRegistry lets the global registry be rebuilt again.
func UnpinRegistry() { setPins(false, st.Load().pres) }

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops automatic rebuilds of the global resolver.
func PinResolver() { setPins(st.Load().preg, true) }

// UnpinResolver lets the global resolver be rebuilt again.
func UnpinResolver() { setPins(st.Load().preg, false) }

func setPins(preg, pres bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.preg, next.pres = preg, pres
	publish(&next)
}

// rebuild rebuilds the unpinned layers of next from old with next's
// config, builder and binder.
func rebuild(next, old *state) {
	if !old.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.binder)
	}
	if !old.pres {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res)
	}
}

// attacher is implemented by binders that need the registry they mirror,
// such as script.Binder.
type attacher interface {
	Attach(reg apis.Registry)
}

// publish checks s, points its registry at its resolver and the binder at
// its registry, then swaps it in.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	s.reg.UseResolver(s.res)
	if a, ok := s.binder.(attacher); ok {
		a.Attach(s.reg)
	}
	st.Store(s)
}

// buildMu serializes writers so a partially built snapshot is never
// published.
var buildMu sync.Mutex

// st is the global snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot published through st. Writers copy it,
// change the copy and store the copy.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// binder is the scripting binder, or nil.
	binder apis.Binder
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld builds reg and res.
	bld apis.Builder
	// preg marks reg as pinned.
	preg bool
	// pres marks res as pinned.
	pres bool
}
