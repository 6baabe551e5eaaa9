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

package apis

import "github.com/study-game-engines/echo/variant"

// MethodBind is a type-erased callable bound to a class. It is invoked with a
// live object and generically typed arguments and returns a generically
// typed result; property access and method invocation share it.
type MethodBind interface {
	// Name returns the registered method name.
	Name() string
	// NumArgs returns the number of arguments, not counting the receiver.
	NumArgs() int
	// Call invokes the method on obj.
	Call(obj Object, args []variant.Variant) (variant.Variant, error)
}

// Signal is the object returned by a signal accessor.
type Signal interface {
	// Connect registers fn and returns a handle for Disconnect.
	Connect(fn func(args ...variant.Variant)) uint64
	// Disconnect removes the handler registered under id.
	Disconnect(id uint64) bool
	// Emit calls every connected handler in connection order.
	Emit(args ...variant.Variant)
}
