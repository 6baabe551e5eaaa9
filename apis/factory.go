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

import "reflect"

// Factory bridges a concrete Go type and the registry's type-erased view.
// It owns exactly one ClassInfo.
type Factory interface {
	// Info returns the owned ClassInfo.
	Info() *ClassInfo
	// Create returns a new instance, or the shared instance for singletons.
	Create() Object
	// DefaultObject returns a stable instance used to read default property
	// values. Singletons return nil.
	DefaultObject() Object
	// Type returns the Go type of the instances Create returns.
	Type() reflect.Type
}
