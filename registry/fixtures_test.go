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

package registry_test

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/config"
	"github.com/study-game-engines/echo/factory"
	"github.com/study-game-engines/echo/registry"
	"github.com/study-game-engines/echo/signal"
	"github.com/study-game-engines/echo/variant"
)

type Object struct {
	name    string
	renamed signal.Signal
	extra   []*apis.PropertyInfo
}

func (o *Object) Name() string { return o.name }
func (o *Object) SetName(n string) { o.name = n; o.renamed.Emit(variant.NewString(n)) }
func (o *Object) Renamed() *signal.Signal { return &o.renamed }
func (o *Object) DynamicProperties() []*apis.PropertyInfo { return o.extra }

type Shape struct {
	Object
	color mgl32.Vec4
}

func (s *Shape) Color() mgl32.Vec4 { return s.color }
func (s *Shape) SetColor(c mgl32.Vec4) { s.color = c }

type Circle struct {
	Shape
	radius float64
}

func (c *Circle) Radius() float64 { return c.radius }
func (c *Circle) SetRadius(r float64) { c.radius = r }
func (c *Circle) Label() string { return "circle:" + c.name }

type Square struct {
	Shape
	side float64
}

type Engine struct {
	Object
	frames int64
}

func (e *Engine) FrameCount() int64 { return e.frames }

var (
	engineOnce sync.Once
	engine     *Engine
)

func engineInstance() *Engine {
	engineOnce.Do(func() { engine = &Engine{} })
	return engine
}

// recorder is an apis.Binder that records mirrored registrations.
type recorder struct {
	classes map[string]string
	methods map[string][]string
	objects map[string]apis.Object
}

func newRecorder() *recorder {
	return &recorder{
		classes: map[string]string{},
		methods: map[string][]string{},
		objects: map[string]apis.Object{},
	}
}

func (r *recorder) RegisterClass(className, parentName string) bool {
	r.classes[className] = parentName
	return true
}

func (r *recorder) RegisterClassMethod(className, methodName string, _ apis.MethodBind) bool {
	r.methods[className] = append(r.methods[className], methodName)
	return true
}

func (r *recorder) RegisterObject(_, objectName string, obj apis.Object) bool {
	r.objects[objectName] = obj
	return true
}

func (r *recorder) Reset() {
	clear(r.classes)
	clear(r.methods)
	clear(r.objects)
}

var _ apis.Binder = (*recorder)(nil)

// newScene registers Object <- Shape (virtual) <- {Circle, Square} and
// Object <- Engine (singleton). Circle shadows Object's "Name".
func newScene(opts ...registry.Option) apis.Registry {
	reg := registry.New(config.DefaultConfig(), opts...)

	reg.AddClass("Object", factory.NewInstance[Object]("Object", ""))
	reg.BindMethod("Object", "getName", (*Object).Name)
	reg.BindMethod("Object", "setName", (*Object).SetName)
	reg.RegisterProperty("Object", "Name", variant.String, "getName", "setName")
	reg.BindMethod("Object", "renamed", (*Object).Renamed)
	reg.RegisterSignal("Object", "renamed", reg.MethodBind("Object", "renamed"))

	// Registered before its parent on purpose.
	reg.AddClass("Circle", factory.NewInstance[Circle]("Circle", "Shape").WithConstructor(func() *Circle {
		return &Circle{radius: 1}
	}))
	reg.BindMethod("Circle", "getRadius", (*Circle).Radius)
	reg.BindMethod("Circle", "setRadius", (*Circle).SetRadius)
	reg.BindMethod("Circle", "getLabel", (*Circle).Label)
	reg.RegisterProperty("Circle", "Radius", variant.Real, "getRadius", "setRadius")
	reg.RegisterProperty("Circle", "Name", variant.String, "getLabel", "")

	reg.AddClass("Shape", factory.NewInstance[Shape]("Shape", "Object", factory.Virtual()))
	reg.BindMethod("Shape", "getColor", (*Shape).Color)
	reg.BindMethod("Shape", "setColor", (*Shape).SetColor)
	reg.RegisterProperty("Shape", "Color", variant.Color, "getColor", "setColor")

	reg.AddClass("Square", factory.NewInstance[Square]("Square", "Shape"))

	reg.AddClass("Engine", factory.NewSingleton("Engine", "Object", engineInstance))
	reg.BindMethod("Engine", "getFrameCount", (*Engine).FrameCount)
	reg.RegisterProperty("Engine", "FrameCount", variant.Int, "getFrameCount", "")
	return reg
}
