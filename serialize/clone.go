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

package serialize

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/study-game-engines/echo/apis"
)

// Clone returns a new instance of obj's class holding a deep copy of its
// exported fields, with every saved property re-applied on top (child
// objects are cloned the same way). Signals on the clone start with no
// connections and the clone gets a fresh id. Singletons cannot be cloned.
func Clone(reg apis.Registry, obj apis.Object) (apis.Object, error) {
	class := reg.ClassName(obj)
	if class == "" || reg.ClassInfo(class) == nil {
		return nil, fmt.Errorf("%w: %T", ErrUnknownClass, obj)
	}
	if reg.IsSingleton(class) {
		return nil, fmt.Errorf("echo(serialize): cannot clone singleton %q", class)
	}
	d, err := Encode(reg, obj, Options{})
	if err != nil {
		return nil, err
	}
	dst := reg.Create(class)
	if dst == nil {
		return nil, fmt.Errorf("echo(serialize): cannot create %q", class)
	}
	if err := copier.CopyWithOption(dst, obj, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("echo(serialize): copy %s: %w", class, err)
	}
	disconnect(reg, class, dst)
	if id, ok := dst.(apis.Identifier); ok {
		if err := id.SetObjectID(""); err != nil {
			return nil, err
		}
	}
	d.ID = ""
	if err := Apply(reg, dst, d); err != nil {
		return dst, err
	}
	return dst, nil
}

// disconnect drops the connections the field copy carried over to dst.
func disconnect(reg apis.Registry, class string, dst apis.Object) {
	seen := make(map[string]bool)
	for c := class; c != "" && !seen[c]; {
		seen[c] = true
		ci := reg.ClassInfo(c)
		if ci == nil {
			return
		}
		for _, name := range ci.Signals.Keys {
			if s, ok := reg.Signal(class, dst, name).(interface{ DisconnectAll() }); ok {
				s.DisconnectAll()
			}
		}
		c = ci.Parent
	}
}
