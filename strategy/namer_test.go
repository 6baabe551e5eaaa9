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

package strategy_test

import (
	"reflect"
	"testing"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/strategy"
)

type namedType struct{ name string }

func (n namedType) ClassName() string { return n.name } // implements apis.ClassNamer

func TestNamerStrategy_TryResolve(t *testing.T) {
	s := strategy.NewNamerStrategy()
	conf := apis.Config{} // config is irrelevant for NamerStrategy

	got, ok := s.TryResolve(namedType{name: "Circle"}, conf)
	if !ok || got != "Circle" {
		t.Fatalf("TryResolve: got (%q,%v), want (Circle,true)", got, ok)
	}

	// Empty names fall through.
	got, ok = s.TryResolve(namedType{}, conf)
	if ok || got != "" {
		t.Fatalf("TryResolve(empty): got (%q,%v), want ('',false)", got, ok)
	}

	got, ok = s.TryResolve(struct{}{}, conf)
	if ok || got != "" {
		t.Fatalf("TryResolve(non-namer): got (%q,%v), want ('',false)", got, ok)
	}

	if got, ok = s.TryResolve(nil, conf); ok {
		t.Fatalf("TryResolve(nil): got (%q,%v), want ('',false)", got, ok)
	}

	// TryResolveType should never handle (no instance)
	got, ok = s.TryResolveType(reflect.TypeOf(namedType{}), conf)
	if ok || got != "" {
		t.Fatalf("TryResolveType: got (%q,%v), want ('',false)", got, ok)
	}
}

// Ensure the local type actually satisfies apis.ClassNamer (compile-time).
var _ apis.ClassNamer = (*namedType)(nil)
