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
	"runtime"
	"sync"
	"testing"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/config"
	"github.com/study-game-engines/echo/factory"
	"github.com/study-game-engines/echo/registry"
	"github.com/study-game-engines/echo/strategy"
)

// Local test types.
type A struct{}
type B struct{}

func newRegistry() apis.Registry {
	reg := registry.New(config.NewConfig(config.WithScriptBridge(false)))
	reg.AddClass("Alpha", factory.NewInstance[A]("Alpha", ""))
	return reg
}

func TestRegistryStrategy_ByValue(t *testing.T) {
	conf := config.DefaultConfig()
	s := strategy.NewRegistryStrategy(newRegistry())

	cases := []struct {
		name string
		val  any
		want string
		ok   bool
	}{
		{"plain", A{}, "Alpha", true},
		{"ptr", &A{}, "Alpha", true},
		{"unknown", &B{}, "", false},
		{"nil", nil, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.val, conf)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("TryResolve(%T) = (%q,%v), want (%q,%v)", tc.val, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestRegistryStrategy_ByType(t *testing.T) {
	conf := config.DefaultConfig()
	s := strategy.NewRegistryStrategy(newRegistry())

	if got, ok := s.TryResolveType(reflect.TypeOf(&A{}), conf); !ok || got != "Alpha" {
		t.Fatalf("TryResolveType(*A) = (%q,%v), want (Alpha,true)", got, ok)
	}
	if got, ok := s.TryResolveType(reflect.TypeOf(B{}), conf); ok || got != "" {
		t.Fatalf("TryResolveType(B) = (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := strategy.NewRegistryStrategy(nil).TryResolveType(reflect.TypeOf(A{}), conf); ok || got != "" {
		t.Fatalf("nil registry: got (%q,%v), want ('',false)", got, ok)
	}
}

// A small concurrency smoke test to ensure RegistryStrategy + real registry behave well.
func TestRegistryStrategy_Concurrent(t *testing.T) {
	conf := config.DefaultConfig()
	reg := newRegistry()
	s := strategy.NewRegistryStrategy(reg)

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers + 1)
	errCh := make(chan string, workers)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			reg.AddClass("Beta", factory.NewInstance[B]("Beta", "Alpha"))
		}
	}()
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if got, ok := s.TryResolveType(reflect.TypeOf(&A{}), conf); !ok || got != "Alpha" {
					errCh <- got
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for got := range errCh {
		t.Fatalf("concurrent lookup returned %q", got)
	}
}
