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

// Object is a live instance managed through the class registry. The registry
// never inspects it directly: every access goes through bound accessors and
// the Variant channel.
type Object = any

// ClassNamer is implemented by objects that know their registered class name.
//
// It is the fast path used when a class name must be derived from a live
// object (getSignal(obj, ...), getProperty(obj, ...)). The returned name MUST
// be the name the type was registered under and MUST NOT depend on instance
// state.
type ClassNamer interface {
	ClassName() string
}

// Identifier is implemented by objects carrying a per-instance identifier.
// Serialization uses it to persist and restore object identity.
type Identifier interface {
	ObjectID() string
	SetObjectID(id string) error
}

// DynamicPropertyProvider is implemented by objects whose property set is
// only known at runtime (script-defined fields, shader uniforms, ...).
// Returned properties MUST carry the Dynamic flag and bound accessors.
type DynamicPropertyProvider interface {
	DynamicProperties() []*PropertyInfo
}

// DynamicPropertySetter lets a loader create a dynamic property that the
// object does not list yet. It returns false when name is not accepted.
type DynamicPropertySetter interface {
	SetDynamicProperty(name string, v variant.Variant) bool
}
