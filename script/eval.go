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

package script

import (
	"context"
	"reflect"

	"cogentcore.org/core/base/errors"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Interpreter returns the interpreter, creating it on first use. The
// standard library and the "echo" package are imported into the global
// scope, so scripts can use them without import statements.
func (b *Binder) Interpreter() *interp.Interpreter {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.in != nil {
		return b.in
	}
	in := interp.New(b.opts)
	errors.Log(in.Use(stdlib.Symbols))
	errors.Log(in.Use(b.Exports()))
	in.ImportUsed()
	b.in = in
	return in
}

// Eval runs src in the interpreter and returns the value of its last
// expression, if any.
func (b *Binder) Eval(src string) (reflect.Value, error) {
	return b.Interpreter().Eval(src)
}

// EvalContext is Eval with cancellation.
func (b *Binder) EvalContext(ctx context.Context, src string) (reflect.Value, error) {
	return b.Interpreter().EvalWithContext(ctx, src)
}

// EvalPath runs the Go source file or package at path.
func (b *Binder) EvalPath(path string) (reflect.Value, error) {
	return b.Interpreter().EvalPath(path)
}
