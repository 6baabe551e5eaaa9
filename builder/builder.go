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
	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/registry"
	"github.com/study-game-engines/echo/resolver"
	"github.com/study-game-engines/echo/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// BuildRegistry builds a new apis.Registry for cfg with binder attached. If a
// previous registry is provided, its classes are added to the new registry,
// which mirrors them into binder again.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, binder apis.Binder) apis.Registry {
	var opts []registry.Option
	if binder != nil {
		opts = append(opts, registry.WithBinder(binder))
	}
	nreg := registry.New(cfg, opts...)
	if prev != nil {
		for _, e := range prev.Entries() {
			nreg.AddClass(e.Name, e.Factory)
		}
	}
	return nreg
}

// BuildResolver builds the Namer -> Registry -> Reflect chain for reg.
// The previous resolver carries no state worth reusing.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewReflectStrategy(),
	)
}
