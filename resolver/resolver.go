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

package resolver

import (
	"reflect"

	"github.com/study-game-engines/echo/apis"
)

// New returns a resolver that asks each strategy in turn and reports the
// first class name one of them produces. Nil strategies are dropped.
func New(strategies ...apis.Strategy) apis.Resolver {
	c := make(chain, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

type chain []apis.Strategy

// Resolve returns the class name of a live object, or "".
func (c chain) Resolve(v any, cfg apis.Config) string {
	return first(c, func(s apis.Strategy) (string, bool) { return s.TryResolve(v, cfg) })
}

// ResolveType returns the class name registered for t, or "".
func (c chain) ResolveType(t reflect.Type, cfg apis.Config) string {
	if t == nil {
		return ""
	}
	return first(c, func(s apis.Strategy) (string, bool) { return s.TryResolveType(t, cfg) })
}

// first treats a strategy that claims a value but names no class as a miss,
// so later strategies still get a chance.
func first(c chain, try func(apis.Strategy) (string, bool)) string {
	for _, s := range c {
		if name, ok := try(s); ok && name != "" {
			return name
		}
	}
	return ""
}
