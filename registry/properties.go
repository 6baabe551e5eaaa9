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

package registry

import (
	"log/slog"

	"cogentcore.org/core/base/keylist"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/variant"
)

// RegisterProperty appends a property to className's own list. Accessors are
// resolved by name among the methods already bound on className; a missing
// getter or setter is logged and leaves the property partially bound. An
// empty setter name declares a read-only property.
func (r *registry) RegisterProperty(className, propertyName string, t variant.Type, getter, setter string) bool {
	if propertyName == "" {
		return false
	}
	r.mu.Lock()
	f, ok := r.classes[className]
	if !ok {
		r.mu.Unlock()
		slog.Warn("registry: property registered on unknown class", "class", className, "property", propertyName)
		return false
	}
	ci := f.Info()
	pi := &apis.PropertyInfo{
		Name:   propertyName,
		Class:  className,
		Type:   t,
		Flag:   apis.Static,
		Getter: getter,
		Setter: setter,
	}
	if getter != "" {
		pi.Get = ci.Methods.At(getter)
	}
	if setter != "" {
		pi.Set = ci.Methods.At(setter)
	}
	ci.Properties.Set(propertyName, pi)
	r.mu.Unlock()

	if getter != "" && pi.Get == nil {
		slog.Warn("registry: property getter not bound", "class", className, "property", propertyName, "getter", getter)
	}
	if setter != "" && pi.Set == nil {
		slog.Warn("registry: property setter not bound", "class", className, "property", propertyName, "setter", setter)
	}
	return true
}

// RegisterPropertyHint attaches hints to the property resolved from
// className, which may be declared by an ancestor.
func (r *registry) RegisterPropertyHint(className, propertyName string, hints ...apis.Hint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	pi := r.staticProperty(className, propertyName)
	if pi == nil {
		return false
	}
	pi.AddHint(hints...)
	return true
}

// Properties enumerates the properties of className selected by flag.
//
// Without withParent only className's own static properties are returned, in
// declaration order. With withParent the lists of all ancestors are merged
// root first; a derived declaration replaces the ancestor entry in place, so
// every name appears once. Dynamic properties supplied by obj come last and
// never replace a static property of the same name.
func (r *registry) Properties(className string, obj apis.Object, flag apis.PropertyFlag, withParent bool) []*apis.PropertyInfo {
	var merged keylist.List[string, *apis.PropertyInfo]

	r.mu.RLock()
	infos := r.infos(className)
	if len(infos) == 0 {
		r.mu.RUnlock()
		return nil
	}
	if flag&apis.Static != 0 {
		if !withParent {
			infos = infos[:1]
		}
		for i := len(infos) - 1; i >= 0; i-- {
			ci := infos[i]
			for j, name := range ci.Properties.Keys {
				merged.Set(name, ci.Properties.Values[j])
			}
		}
	}
	r.mu.RUnlock()

	if flag&apis.Dynamic != 0 {
		for _, pi := range dynamic(obj) {
			if cur := merged.At(pi.Name); cur != nil && cur.Flag&apis.Static != 0 {
				continue
			}
			merged.Set(pi.Name, pi)
		}
	}
	return merged.Values
}

// Property resolves one property, starting at className and walking up the
// ancestor chain; dynamic properties of obj are consulted last.
func (r *registry) Property(className string, obj apis.Object, propertyName string) *apis.PropertyInfo {
	r.mu.RLock()
	pi := r.staticProperty(className, propertyName)
	r.mu.RUnlock()
	if pi != nil {
		return pi
	}
	for _, dp := range dynamic(obj) {
		if dp.Name == propertyName {
			return dp
		}
	}
	return nil
}

// PropertyOf is Property with the class name derived from obj.
func (r *registry) PropertyOf(obj apis.Object, propertyName string) *apis.PropertyInfo {
	if absent(obj) {
		return nil
	}
	return r.Property(r.ClassName(obj), obj, propertyName)
}

// staticProperty returns the most derived static declaration of
// propertyName. Callers hold r.mu.
func (r *registry) staticProperty(className, propertyName string) *apis.PropertyInfo {
	for _, ci := range r.infos(className) {
		if pi := ci.Properties.At(propertyName); pi != nil {
			return pi
		}
	}
	return nil
}

func dynamic(obj apis.Object) []*apis.PropertyInfo {
	if absent(obj) {
		return nil
	}
	if p, ok := obj.(apis.DynamicPropertyProvider); ok {
		return p.DynamicProperties()
	}
	return nil
}

// PropertyValue reads a property of obj through its getter.
func (r *registry) PropertyValue(obj apis.Object, propertyName string) (variant.Variant, bool) {
	pi := r.PropertyOf(obj, propertyName)
	if pi == nil {
		return variant.Variant{}, false
	}
	v, err := pi.Value(obj)
	if err != nil {
		slog.Warn("registry: get property", "property", propertyName, "err", err)
		return variant.Variant{}, false
	}
	return v, true
}

// PropertyValueDefault reads a property from the default object of obj's
// class rather than from obj.
func (r *registry) PropertyValueDefault(obj apis.Object, propertyName string) (variant.Variant, bool) {
	if absent(obj) {
		return variant.Variant{}, false
	}
	className := r.ClassName(obj)
	def := r.DefaultObject(className)
	if def == nil {
		return variant.Variant{}, false
	}
	pi := r.Property(className, def, propertyName)
	if pi == nil {
		return variant.Variant{}, false
	}
	v, err := pi.Value(def)
	if err != nil {
		slog.Warn("registry: get default property", "class", className, "property", propertyName, "err", err)
		return variant.Variant{}, false
	}
	return v, true
}

// SetPropertyValue writes a property of obj through its setter.
func (r *registry) SetPropertyValue(obj apis.Object, propertyName string, v variant.Variant) bool {
	pi := r.PropertyOf(obj, propertyName)
	if pi == nil {
		return false
	}
	if err := pi.SetValue(obj, v); err != nil {
		slog.Warn("registry: set property", "property", propertyName, "err", err)
		return false
	}
	return true
}

// PropertyFlag returns the flag of a property of obj, 0 when unknown.
func (r *registry) PropertyFlag(obj apis.Object, propertyName string) apis.PropertyFlag {
	if pi := r.PropertyOf(obj, propertyName); pi != nil {
		return pi.Flag
	}
	return 0
}

// PropertyType returns the declared type of a property of obj, Nil when
// unknown.
func (r *registry) PropertyType(obj apis.Object, propertyName string) variant.Type {
	if pi := r.PropertyOf(obj, propertyName); pi != nil {
		return pi.Type
	}
	return variant.Nil
}
