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

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/method"
)

// RegisterMethodBind adds m to the class-local method table, replacing an
// existing method of the same name, and mirrors it into the binder.
func (r *registry) RegisterMethodBind(className, methodName string, m apis.MethodBind) bool {
	if m == nil || methodName == "" {
		return false
	}
	r.mu.Lock()
	f, ok := r.classes[className]
	if ok {
		f.Info().Methods.Set(methodName, m)
	}
	r.mu.Unlock()
	if !ok {
		slog.Warn("registry: method registered on unknown class", "class", className, "method", methodName)
		return false
	}

	if b := r.bridge(); b != nil {
		b.RegisterClassMethod(className, methodName, m)
	}
	return true
}

// MethodBind looks a method up in the class-local table only. Inherited
// methods are reached by walking ParentClass explicitly.
func (r *registry) MethodBind(className, methodName string) apis.MethodBind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.classes[className]
	if !ok {
		return nil
	}
	return f.Info().Methods.At(methodName)
}

// BindMethod wraps fn with method.Bind and registers it. It returns nil when
// fn has an unsupported signature or className is unknown.
func (r *registry) BindMethod(className, methodName string, fn any) apis.MethodBind {
	m, err := method.Bind(methodName, fn)
	if err != nil {
		slog.Error("registry: bind method", "class", className, "method", methodName, "err", err)
		return nil
	}
	if !r.RegisterMethodBind(className, methodName, m) {
		return nil
	}
	return m
}

// RegisterSignal adds a signal accessor to the class-local signal table.
func (r *registry) RegisterSignal(className, signalName string, accessor apis.MethodBind) bool {
	if accessor == nil || signalName == "" {
		return false
	}
	r.mu.Lock()
	f, ok := r.classes[className]
	if ok {
		f.Info().Signals.Set(signalName, accessor)
	}
	r.mu.Unlock()
	if !ok {
		slog.Warn("registry: signal registered on unknown class", "class", className, "signal", signalName)
		return false
	}

	if b := r.bridge(); b != nil {
		b.RegisterClassMethod(className, signalName, accessor)
	}
	return true
}

// Signal resolves the accessor on className or its nearest ancestor declaring
// it, and invokes it on obj to obtain the signal object.
func (r *registry) Signal(className string, obj apis.Object, signalName string) apis.Signal {
	if absent(obj) {
		return nil
	}
	r.mu.RLock()
	var acc apis.MethodBind
	for _, ci := range r.infos(className) {
		if acc = ci.Signals.At(signalName); acc != nil {
			break
		}
	}
	r.mu.RUnlock()
	if acc == nil {
		return nil
	}

	v, err := acc.Call(obj, nil)
	if err != nil {
		slog.Warn("registry: signal accessor failed", "class", className, "signal", signalName, "err", err)
		return nil
	}
	s, _ := v.Object().(apis.Signal)
	return s
}

// SignalOf is Signal with the class name derived from obj.
func (r *registry) SignalOf(obj apis.Object, signalName string) apis.Signal {
	return r.Signal(r.ClassName(obj), obj, signalName)
}
