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

// Package demo holds a small scene graph and engine singletons registered
// by the echo-classes command and used as fixtures across tests.
package demo

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/method"
	"github.com/study-game-engines/echo/object"
	"github.com/study-game-engines/echo/signal"
	"github.com/study-game-engines/echo/variant"
)

// Node is a scene graph node with a position, a visibility flag and free
// metadata exposed as dynamic properties.
type Node struct {
	object.Base

	position mgl32.Vec3
	visible  bool
	children []*Node

	meta *metaTable

	visibilityChanged signal.Signal
}

var (
	_ apis.DynamicPropertyProvider = (*Node)(nil)
	_ apis.DynamicPropertySetter   = (*Node)(nil)
)

// NewNode returns a visible node.
func NewNode() *Node { return &Node{visible: true} }

func (n *Node) Position() mgl32.Vec3 { return n.position }
func (n *Node) SetPosition(p mgl32.Vec3) { n.position = p }
func (n *Node) Visible() bool { return n.visible }

// SetVisible emits VisibilityChanged when the flag changes.
func (n *Node) SetVisible(v bool) {
	if v == n.visible {
		return
	}
	n.visible = v
	n.visibilityChanged.Emit(variant.NewBool(v))
}

func (n *Node) VisibilityChanged() *signal.Signal { return &n.visibilityChanged }

// AddChild appends c and returns the new child count.
func (n *Node) AddChild(c *Node) int {
	n.children = append(n.children, c)
	return len(n.children)
}

func (n *Node) ChildCount() int { return len(n.children) }

// metaTable belongs to one node. A copy of the node that still points at
// another node's table copies it before the first write.
type metaTable struct {
	owner  *Node
	keys   []string
	values map[string]variant.Variant
}

func (n *Node) ownMeta() *metaTable {
	if n.meta != nil && n.meta.owner == n {
		return n.meta
	}
	t := &metaTable{owner: n, values: make(map[string]variant.Variant)}
	if n.meta != nil {
		t.keys = slices.Clone(n.meta.keys)
		maps.Copy(t.values, n.meta.values)
	}
	n.meta = t
	return t
}

// SetMeta stores a metadata value, listed by DynamicProperties in insertion
// order. A Nil value removes the key.
func (n *Node) SetMeta(key string, v variant.Variant) {
	if v.IsNil() {
		if n.meta == nil {
			return
		}
		if _, ok := n.meta.values[key]; !ok {
			return
		}
		t := n.ownMeta()
		delete(t.values, key)
		t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
		return
	}
	t := n.ownMeta()
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

// Meta returns a metadata value, or Nil.
func (n *Node) Meta(key string) variant.Variant {
	if n.meta == nil {
		return variant.Variant{}
	}
	return n.meta.values[key]
}

// SetDynamicProperty stores v as metadata under name.
func (n *Node) SetDynamicProperty(name string, v variant.Variant) bool {
	if name == "" || v.IsNil() {
		return false
	}
	n.SetMeta(name, v)
	return true
}

// metadata is implemented by Node and every type embedding it.
type metadata interface {
	Meta(key string) variant.Variant
	SetMeta(key string, v variant.Variant)
}

// DynamicProperties implements apis.DynamicPropertyProvider.
func (n *Node) DynamicProperties() []*apis.PropertyInfo {
	if n.meta == nil {
		return nil
	}
	out := make([]*apis.PropertyInfo, 0, len(n.meta.keys))
	for _, key := range n.meta.keys {
		out = append(out, &apis.PropertyInfo{
			Name: key,
			Type: n.meta.values[key].Type(),
			Flag: apis.Dynamic,
			Get: method.Getter("getMeta", func(obj apis.Object) variant.Variant {
				return obj.(metadata).Meta(key)
			}),
			Set: method.Setter("setMeta", func(obj apis.Object, v variant.Variant) {
				obj.(metadata).SetMeta(key, v)
			}),
		})
	}
	return out
}

// Shape is the virtual base of drawable nodes.
type Shape struct {
	Node
	color mgl32.Vec4
}

func (s *Shape) Color() mgl32.Vec4 { return s.color }
func (s *Shape) SetColor(c mgl32.Vec4) { s.color = c }

// Circle is a round shape.
type Circle struct {
	Shape
	radius float64
}

// NewCircle returns a white unit circle.
func NewCircle() *Circle {
	c := &Circle{radius: 1}
	c.visible = true
	c.color = mgl32.Vec4{1, 1, 1, 1}
	return c
}

func (c *Circle) Radius() float64 { return c.radius }
func (c *Circle) SetRadius(r float64) { c.radius = r }

// Capsule is a cylinder capped by two half spheres.
type Capsule struct {
	Shape
	radius float64
	height float64
}

// NewCapsule returns a white capsule of radius 0.5 and height 2.
func NewCapsule() *Capsule {
	c := &Capsule{radius: 0.5, height: 2}
	c.visible = true
	c.color = mgl32.Vec4{1, 1, 1, 1}
	return c
}

func (c *Capsule) Radius() float64 { return c.radius }
func (c *Capsule) SetRadius(r float64) { c.radius = r }
func (c *Capsule) Height() float64 { return c.height }
func (c *Capsule) SetHeight(h float64) { c.height = h }
