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

import "cogentcore.org/core/base/keylist"

// ClassInfo is the per-class record owned by a Factory.
type ClassInfo struct {
	// Name is the registered class name.
	Name string
	// Parent is the immediate superclass name, empty for roots.
	Parent string
	// Module is the subsystem that registered the class.
	Module string
	// Singleton classes always create the same instance.
	Singleton bool
	// Virtual classes are abstract and not meant to be instantiated.
	Virtual bool

	// Properties in declaration order.
	Properties keylist.List[string, *PropertyInfo]
	// Methods keyed by method name.
	Methods keylist.List[string, MethodBind]
	// Signals keyed by signal name; values are signal accessors.
	Signals keylist.List[string, MethodBind]
}

// Property returns the class-local property with the given name.
func (ci *ClassInfo) Property(name string) *PropertyInfo {
	return ci.Properties.At(name)
}

// Method returns the class-local method with the given name.
func (ci *ClassInfo) Method(name string) MethodBind {
	return ci.Methods.At(name)
}

// Signal returns the class-local signal accessor with the given name.
func (ci *ClassInfo) Signal(name string) MethodBind {
	return ci.Signals.At(name)
}
