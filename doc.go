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

// Package echo provides a process-wide runtime class registry for game
// engine objects.
//
// echo turns Go types into named classes with a parent class, a factory,
// bound methods, typed properties with editor hints and signals. Engine
// subsystems (editor inspectors, serializers, the script bridge) discover
// and drive objects only through that metadata, so they never need to know
// the concrete Go types.
//
// # Design
//
// The package keeps a read-mostly global snapshot (state) holding:
//
//   - Config: the registry knobs (ancestor walk limits, cycle detection,
//     reflect fallback naming, script mirroring).
//
//   - Registry: class name to factory and ClassInfo. Lookups by name,
//     inheritance queries, method and signal dispatch, and property
//     enumeration all go through it.
//
//   - Resolver: answers "which class is this live object?". It tries, in
//     order:
//     1. the object's own ClassName() method (apis.ClassNamer),
//     2. the registry's type index,
//     3. the bare Go type name, when Config.ReflectFallback is set.
//
//   - Builder: constructs Registry and Resolver for a Config and an
//     optional scripting Binder, migrating classes from the previous
//     registry.
//
//   - Binder: an optional scripting bridge. When set, every class, method
//     and singleton added to the registry is mirrored into it.
//
// Readers load the snapshot atomically and never lock it:
//
//	name := echo.ClassName(obj)
//	obj := echo.Create("Circle")
//
// Writers (SetConfig, SetBuilder, SetBinder, SetRegistry, SetResolver,
// SetAll) take a short build lock, derive a new snapshot and publish it.
//
// # Registration
//
// Classes are described with the fluent builder and registered as a plan,
// which orders them parent-first regardless of declaration order:
//
//	echo.Register(
//		builder.Class[Circle]("Circle").
//			Parent("Shape").
//			Accessors("Radius", variant.Real, (*Circle).Radius, (*Circle).SetRadius).
//			Hint("Radius", apis.HintRange, "0,100"),
//		builder.Class[Shape]("Shape").Parent(object.ClassName).Virtual(),
//		object.Describe(),
//	)
//
// # Pinning
//
// SetRegistry and SetResolver pin the installed layer: later SetConfig,
// SetBuilder and SetBinder calls leave it alone until UnpinRegistry or
// UnpinResolver.
//
// # Concurrency
//
// Registration is expected to happen on one goroutine during startup.
// The registry still guards its tables with a RWMutex, and snapshot reads
// are wait-free.
package echo
