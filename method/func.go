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

package method

import (
	"fmt"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/variant"
)

// Fn is the signature of closure-backed methods.
type Fn func(obj apis.Object, args []variant.Variant) (variant.Variant, error)

// Func wraps a closure as a MethodBind. A negative arity accepts any number
// of arguments.
func Func(name string, arity int, fn Fn) apis.MethodBind {
	return &funcBind{name: name, arity: arity, fn: fn}
}

// Getter returns a zero-argument MethodBind reading a value from obj.
func Getter(name string, get func(obj apis.Object) variant.Variant) apis.MethodBind {
	return Func(name, 0, func(obj apis.Object, _ []variant.Variant) (variant.Variant, error) {
		return get(obj), nil
	})
}

// Setter returns a one-argument MethodBind writing a value to obj.
func Setter(name string, set func(obj apis.Object, v variant.Variant)) apis.MethodBind {
	return Func(name, 1, func(obj apis.Object, args []variant.Variant) (variant.Variant, error) {
		set(obj, args[0])
		return variant.Variant{}, nil
	})
}

type funcBind struct {
	name  string
	arity int
	fn    Fn
}

// Ensure funcBind implements apis.MethodBind.
var _ apis.MethodBind = (*funcBind)(nil)

func (f *funcBind) Name() string { return f.name }

func (f *funcBind) NumArgs() int { return f.arity }

func (f *funcBind) Call(obj apis.Object, args []variant.Variant) (variant.Variant, error) {
	if f.arity >= 0 && len(args) != f.arity {
		return variant.Variant{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, f.name, f.arity, len(args))
	}
	return f.fn(obj, args)
}
