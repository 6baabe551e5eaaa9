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

// Binder mirrors registrations into an embedded scripting runtime so that
// scripted calls route back through the same method descriptors.
type Binder interface {
	// RegisterClass creates the script-side class table and links it to the
	// parent table, if any.
	RegisterClass(className, parentName string) bool
	// RegisterClassMethod adds a method to the script-side class table.
	RegisterClassMethod(className, methodName string, m MethodBind) bool
	// RegisterObject exposes obj under objectName with className's table.
	RegisterObject(className, objectName string, obj Object) bool
	// Reset drops every class table and object. The registry calls it from
	// Clear so scripts cannot reach cleared classes.
	Reset()
}
