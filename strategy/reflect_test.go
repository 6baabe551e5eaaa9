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
	"runtime"
	"sync"
	"testing"

	"github.com/study-game-engines/echo/apis"
)

// Local test types.
type A struct{}
type G[T any] struct{}

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{ReflectFallback: true, MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestReflectStrategy_ByValue(t *testing.T) {
	s := NewReflectStrategy()
	pa := &A{}

	cases := []struct {
		name     string
		val      any
		cfg      apis.Config
		expected string
		ok       bool
	}{
		{"plain struct", A{}, cfg(), "A", true},
		{"ptr", &A{}, cfg(), "A", true},
		{"ptr ptr", &pa, cfg(), "A", true},
		{"generic strips params", &G[int]{}, cfg(), "G", true},
		{"builtin ignored", 42, cfg(), "", false},
		{"slice ignored", []A{}, cfg(), "", false},
		{"fallback off", A{}, cfg(func(c *apis.Config) { c.ReflectFallback = false }), "", false},
		{"nil", nil, cfg(), "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.val, tc.cfg)
			if ok != tc.ok || got != tc.expected {
				t.Fatalf("got (%q,%v), want (%q,%v)", got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestReflectStrategy_ByType(t *testing.T) {
	s := NewReflectStrategy()

	if got, ok := s.TryResolveType(reflect.TypeOf(&A{}), cfg()); !ok || got != "A" {
		t.Fatalf("TryResolveType(*A) = (%q,%v), want (A,true)", got, ok)
	}
	if got, ok := s.TryResolveType(nil, cfg()); ok || got != "" {
		t.Fatalf("TryResolveType(nil) = (%q,%v), want ('',false)", got, ok)
	}
}

func TestReflectStrategy_MaxUnwrap(t *testing.T) {
	s := NewReflectStrategy()
	pa := &A{}
	tt := reflect.TypeOf(&pa) // **A

	if got, ok := s.TryResolveType(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })); ok {
		t.Fatalf("MaxUnwrap=1: expected failed resolution, got %q", got)
	}
	if got, ok := s.TryResolveType(tt, cfg()); !ok || got != "A" {
		t.Fatalf("MaxUnwrap=8: got (%q,%v), want (A,true)", got, ok)
	}
}

// This test stresses the memoization and Normalize path under concurrency.
func TestReflectStrategy_Concurrent(t *testing.T) {
	s := NewReflectStrategy()
	conf := cfg()

	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf(G[int]{}),
		reflect.TypeOf(&G[string]{}),
	}
	expect := []string{"A", "A", "G", "G"}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := i % len(types)
				got, ok := s.TryResolveType(types[idx], conf)
				if !ok || got != expect[idx] {
					errCh <- got
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for got := range errCh {
		t.Fatalf("concurrent resolve returned %q", got)
	}
}
