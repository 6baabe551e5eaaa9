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

package reflect

import (
	"errors"
	"reflect"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after
	// dereferencing) is not a named type (e.g., anonymous struct, func).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no registered name")
	// ErrReflectTooDeep indicates that more than MaxUnwrap pointer levels
	// were found.
	ErrReflectTooDeep = errors.New("reflect: pointer chain exceeds MaxUnwrap")
)

// Normalize strips pointer indirections from t and returns the named type
// underneath, so that T, *T and **T share one entry in the class type index.
//
// If cfg.MaxUnwrap <= 0, config.DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t.Kind() == reflect.Pointer; i++ {
		if i == maxUnwrap {
			return nil, ErrReflectTooDeep
		}
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}
