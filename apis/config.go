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

// Config carries read-only registry knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxDepth limits parent-chain walks (isDerivedFrom, merged property
	// queries, ...). Acts as a safety guard against pathological chains.
	MaxDepth int

	// DetectCycles stops a parent-chain walk as soon as a class name is
	// visited twice, logging a warning.
	DetectCycles bool

	// ReflectFallback lets the resolver fall back to the bare Go type name
	// when an object neither names its class nor has a registered type.
	ReflectFallback bool

	// ScriptBridge mirrors class, method and singleton registrations into the
	// scripting binder when one is attached.
	ScriptBridge bool

	// MaxUnwrap limits container unwrapping depth when normalizing Go types
	// for the type index.
	MaxUnwrap int
}
