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

import (
	"reflect"

	"github.com/study-game-engines/echo/variant"
)

// Registry maps class names to factories and answers inheritance-aware
// queries about them.
//
// Lookups never fail loudly: unknown class, property, method or signal names
// yield nil, false or empty results so callers can probe speculatively.
type Registry interface {
	// AddClass inserts or overwrites the entry for name. The parent does not
	// need to be registered yet.
	AddClass(name string, f Factory)
	// Factory returns the factory registered under name.
	Factory(name string) (Factory, bool)
	// ClassInfo returns the ClassInfo registered under name, or nil.
	ClassInfo(name string) *ClassInfo
	// Classes returns all registered class names, sorted.
	Classes() []string

	// Create returns a new instance of className, or nil if unknown.
	Create(className string) Object
	// DefaultObject returns the default instance of className, or nil for
	// singletons and unknown names.
	DefaultObject(className string) Object

	// IsDerivedFrom reports whether ancestor is className or one of its
	// ancestors.
	IsDerivedFrom(className, ancestor string) bool
	// IsVirtual reports the virtual flag; false for unknown classes.
	IsVirtual(className string) bool
	// IsSingleton reports the singleton flag; false for unknown classes.
	IsSingleton(className string) bool
	// ParentClass returns the parent of className; false when unknown or
	// when className is a root.
	ParentClass(className string) (string, bool)
	// ChildClasses returns the classes whose parent is className, and with
	// recursive all their descendants, each name once.
	ChildClasses(className string, recursive bool) []string

	// RegisterMethodBind adds m to the class-local method table.
	RegisterMethodBind(className, methodName string, m MethodBind) bool
	// MethodBind looks a method up in the class-local table only.
	MethodBind(className, methodName string) MethodBind
	// BindMethod wraps a Go function whose first parameter is the receiver
	// and registers it.
	BindMethod(className, methodName string, fn any) MethodBind

	// RegisterSignal adds a signal accessor to the class-local table.
	RegisterSignal(className, signalName string, accessor MethodBind) bool
	// Signal resolves the accessor on className and invokes it on obj.
	Signal(className string, obj Object, signalName string) Signal
	// SignalOf is Signal with the class name derived from obj.
	SignalOf(obj Object, signalName string) Signal

	// RegisterProperty appends a property whose accessors are resolved, by
	// name, among the methods already bound on className.
	RegisterProperty(className, propertyName string, t variant.Type, getter, setter string) bool
	// RegisterPropertyHint attaches hints to a registered property.
	RegisterPropertyHint(className, propertyName string, hints ...Hint) bool
	// Properties enumerates properties of className selected by flag,
	// optionally merged with all ancestors.
	Properties(className string, obj Object, flag PropertyFlag, withParent bool) []*PropertyInfo
	// Property resolves one property starting at the most derived class.
	Property(className string, obj Object, propertyName string) *PropertyInfo
	// PropertyOf is Property with the class name derived from obj.
	PropertyOf(obj Object, propertyName string) *PropertyInfo

	// PropertyValue reads a property of obj.
	PropertyValue(obj Object, propertyName string) (variant.Variant, bool)
	// PropertyValueDefault reads a property from the default object of obj's class.
	PropertyValueDefault(obj Object, propertyName string) (variant.Variant, bool)
	// SetPropertyValue writes a property of obj.
	SetPropertyValue(obj Object, propertyName string, v variant.Variant) bool
	// PropertyFlag returns the flag of a property of obj, 0 when unknown.
	PropertyFlag(obj Object, propertyName string) PropertyFlag
	// PropertyType returns the type of a property of obj, Nil when unknown.
	PropertyType(obj Object, propertyName string) variant.Type

	// ClassName resolves the class name of a live object.
	ClassName(obj Object) string
	// Lookup returns the class registered for a Go type.
	Lookup(t reflect.Type) (name string, ok bool)
	// Resolver returns the resolver used for ClassName.
	Resolver() Resolver
	// UseResolver replaces the resolver used for ClassName.
	UseResolver(r Resolver)
	// Binder returns the attached scripting binder, or nil.
	Binder() Binder

	// Entries returns a snapshot of the registry, sorted by name.
	Entries() []Entry
	// Count returns the number of registered classes.
	Count() int
	// Clear empties the registry.
	Clear()
}

// Entry is a single (name, factory) association in a Registry snapshot.
type Entry struct {
	// Name is the registered class name.
	Name string
	// Factory is the factory registered under Name.
	Factory Factory
}
