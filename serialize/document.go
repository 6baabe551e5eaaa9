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

// Package serialize saves and restores registered objects through their
// static and dynamic properties.
//
// Objects are encoded into an ordered Document (class name, optional
// persistent id and property values in declaration order) which renders
// to YAML or TOML. Object-valued properties nest as child documents.
package serialize

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownClass is returned for objects or documents whose class is not registered.
	ErrUnknownClass = errors.New("echo(serialize): unknown class")
	// ErrUnknownProperty is returned when a document names a property its class lacks.
	ErrUnknownProperty = errors.New("echo(serialize): unknown property")
	// ErrCycle is returned when an object graph refers back to an object being encoded.
	ErrCycle = errors.New("echo(serialize): object cycle")
	// ErrMalformed is returned for input that does not describe a document.
	ErrMalformed = errors.New("echo(serialize): malformed document")
	// ErrFormat is returned for unsupported formats.
	ErrFormat = errors.New("echo(serialize): unsupported format")
)

const (
	keyClass      = "class"
	keyID         = "id"
	keyProperties = "properties"
)

// Field is one saved property. Value is a plain value (bool, int64,
// float64, string, []float32) or a *Document for object properties.
type Field struct {
	Name  string
	Value any
}

// Document is the saved form of one object.
type Document struct {
	Class  string
	ID     string
	Fields []Field
}

// Get returns the value saved for name.
func (d *Document) Get(name string) (any, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value saved for name, or appends it.
func (d *Document) Set(name string, v any) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			d.Fields[i].Value = v
			return
		}
	}
	d.Fields = append(d.Fields, Field{Name: name, Value: v})
}

// Names returns the saved property names in order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// MarshalYAML implements yaml.Marshaler, keeping field order.
func (d *Document) MarshalYAML() (any, error) {
	return d.node()
}

func (d *Document) node() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content, scalar(keyClass), scalar(d.Class))
	if d.ID != "" {
		n.Content = append(n.Content, scalar(keyID), scalar(d.ID))
	}
	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range d.Fields {
		var v *yaml.Node
		if child, ok := f.Value.(*Document); ok {
			cn, err := child.node()
			if err != nil {
				return nil, err
			}
			v = cn
		} else {
			v = new(yaml.Node)
			if err := v.Encode(f.Value); err != nil {
				return nil, fmt.Errorf("echo(serialize): property %s: %w", f.Name, err)
			}
			if len(v.Content) > 0 && v.Kind == yaml.SequenceNode {
				v.Style = yaml.FlowStyle
			}
		}
		props.Content = append(props.Content, scalar(f.Name), v)
	}
	n.Content = append(n.Content, scalar(keyProperties), props)
	return n, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// UnmarshalYAML implements yaml.Unmarshaler. A property value that is a
// mapping with a "class" key is decoded as a child document.
func (d *Document) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected mapping", ErrMalformed, n.Line)
	}
	*d = Document{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch k.Value {
		case keyClass:
			d.Class = v.Value
		case keyID:
			d.ID = v.Value
		case keyProperties:
			if v.Kind != yaml.MappingNode {
				return fmt.Errorf("%w: line %d: properties must be a mapping", ErrMalformed, v.Line)
			}
			for j := 0; j+1 < len(v.Content); j += 2 {
				name, val := v.Content[j].Value, v.Content[j+1]
				if val.Kind == yaml.MappingNode && hasKey(val, keyClass) {
					child := new(Document)
					if err := child.UnmarshalYAML(val); err != nil {
						return err
					}
					d.Fields = append(d.Fields, Field{Name: name, Value: child})
					continue
				}
				var x any
				if err := val.Decode(&x); err != nil {
					return fmt.Errorf("%w: property %s: %w", ErrMalformed, name, err)
				}
				d.Fields = append(d.Fields, Field{Name: name, Value: x})
			}
		}
	}
	if d.Class == "" {
		return fmt.Errorf("%w: line %d: missing class", ErrMalformed, n.Line)
	}
	return nil
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

// table returns d as nested maps for the TOML encoder. Nil values are
// dropped since TOML has no null.
func (d *Document) table() map[string]any {
	props := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		switch v := f.Value.(type) {
		case nil:
		case *Document:
			props[f.Name] = v.table()
		default:
			props[f.Name] = v
		}
	}
	t := map[string]any{keyClass: d.Class, keyProperties: props}
	if d.ID != "" {
		t[keyID] = d.ID
	}
	return t
}

// fromTable rebuilds a document decoded from TOML. Tables do not keep key
// order, so fields come back sorted by name.
func fromTable(t map[string]any) (*Document, error) {
	d := new(Document)
	class, _ := t[keyClass].(string)
	if class == "" {
		return nil, fmt.Errorf("%w: missing class", ErrMalformed)
	}
	d.Class = class
	d.ID, _ = t[keyID].(string)

	raw, ok := t[keyProperties]
	if !ok {
		return d, nil
	}
	props, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: properties must be a table", ErrMalformed)
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := props[name]
		if sub, ok := v.(map[string]any); ok {
			if _, nested := sub[keyClass]; nested {
				child, err := fromTable(sub)
				if err != nil {
					return nil, err
				}
				v = child
			}
		}
		d.Fields = append(d.Fields, Field{Name: name, Value: v})
	}
	return d, nil
}

// Equal reports whether two documents hold the same class, id and fields in
// the same order. Plain values compare by their printed form, so an int
// decoded from YAML equals the int64 it was encoded from.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.Class != o.Class || d.ID != o.ID || len(d.Fields) != len(o.Fields) {
		return false
	}
	return slices.EqualFunc(d.Fields, o.Fields, func(a, b Field) bool {
		if a.Name != b.Name {
			return false
		}
		ca, okA := a.Value.(*Document)
		cb, okB := b.Value.(*Document)
		if okA || okB {
			return okA && okB && ca.Equal(cb)
		}
		return fmt.Sprint(a.Value) == fmt.Sprint(b.Value)
	})
}
