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

package strategy

import (
	"reflect"
	"strings"
	"sync"

	"github.com/study-game-engines/echo/apis"
	uref "github.com/study-game-engines/echo/utils/reflect"
)

// NewReflectStrategy creates the fallback apis.Strategy that names objects
// after their Go type. It only answers when cfg.ReflectFallback is set.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy derives the bare type name ("Circle" for *demo.Circle),
// strips generic instantiation parameters and ignores builtin types.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t         reflect.Type
	maxUnwrap int16
}

// typeNameCache caches resolved type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolve computes the class name for v's type.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil || !cfg.ReflectFallback {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg)
}

// TryResolveType computes the class name for t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil || !cfg.ReflectFallback {
		return "", false
	}
	return byType(t, cfg)
}

// byType resolves the class name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) (string, bool) {
	key := cacheKey{t: t, maxUnwrap: int16(cfg.MaxUnwrap)}
	if v, ok := typeNameCache.Load(key); ok {
		name := v.(string)
		return name, name != ""
	}

	name := ""
	if base, err := uref.Normalize(t, cfg); err == nil && base.PkgPath() != "" {
		name = stripTypeParams(base.Name())
	}
	typeNameCache.Store(key, name)
	return name, name != ""
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
