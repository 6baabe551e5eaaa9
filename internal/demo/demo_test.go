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

package demo_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-game-engines/echo/apis"
	"github.com/study-game-engines/echo/config"
	"github.com/study-game-engines/echo/internal/demo"
	"github.com/study-game-engines/echo/registry"
	"github.com/study-game-engines/echo/script"
	"github.com/study-game-engines/echo/serialize"
	"github.com/study-game-engines/echo/variant"
)

func newRegistry(t *testing.T, opts ...registry.Option) apis.Registry {
	t.Helper()
	reg := registry.New(config.DefaultConfig(), opts...)
	require.NoError(t, demo.Plan().Register(reg))
	return reg
}

func names(props []*apis.PropertyInfo) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Name
	}
	return out
}

func TestClasses(t *testing.T) {
	reg := newRegistry(t)

	assert.Equal(t, []string{"Capsule", "Circle", "Engine", "Node", "Object", "Shape", "iOSBuildSettings"}, reg.Classes())
	assert.True(t, reg.IsVirtual("Shape"))
	assert.Nil(t, reg.Create("Shape"))
	assert.True(t, reg.IsSingleton("Engine"))
	assert.Same(t, demo.EngineInstance(), reg.Create("Engine"))
	assert.True(t, reg.IsDerivedFrom("Capsule", "Object"))
	assert.ElementsMatch(t, []string{"Shape", "Circle", "Capsule"}, reg.ChildClasses("Node", true))
	assert.Equal(t, demo.ModuleBuild, reg.ClassInfo("iOSBuildSettings").Module)
}

func TestCircleProperties(t *testing.T) {
	reg := newRegistry(t)
	c, ok := reg.Create("Circle").(*demo.Circle)
	require.True(t, ok)

	props := reg.Properties("Circle", c, apis.Static, true)
	assert.Equal(t, []string{"Name", "Position", "Visible", "Color", "Radius"}, names(props))

	radius := reg.Property("Circle", nil, "Radius")
	require.NotNil(t, radius)
	h, ok := radius.Hint(apis.HintRange)
	require.True(t, ok)
	lo, hi, step, ok := h.Range()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 100, 0.5}, []float64{lo, hi, step})

	color := reg.Property("Circle", nil, "Color")
	require.NotNil(t, color)
	cat, ok := color.Hint(apis.HintCategory)
	require.True(t, ok)
	assert.Equal(t, "Appearance", cat.Value)

	name := reg.Property("Capsule", nil, "Name")
	require.NotNil(t, name)
	_, ok = name.Hint(apis.HintTooltip)
	assert.True(t, ok, "hint added from Node lands on the inherited property")

	require.True(t, reg.SetPropertyValue(c, "Position", variant.NewVector3(mgl32.Vec3{1, 2, 3})))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
	v, ok := reg.PropertyValueDefault(c, "Color")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, v.Color())
}

func TestDynamicMeta(t *testing.T) {
	reg := newRegistry(t)
	c := reg.Create("Circle").(*demo.Circle)
	c.SetMeta("score", variant.NewInt(3))
	c.SetMeta("tag", variant.NewString("enemy"))

	all := reg.Properties("Circle", c, apis.AllProperties, true)
	assert.Equal(t, []string{"Name", "Position", "Visible", "Color", "Radius", "score", "tag"}, names(all))
	dyn := reg.Properties("Circle", c, apis.Dynamic, true)
	assert.Equal(t, []string{"score", "tag"}, names(dyn))

	assert.Equal(t, variant.Int, reg.PropertyType(c, "score"))
	assert.Equal(t, apis.Dynamic, reg.PropertyFlag(c, "score"))
	require.True(t, reg.SetPropertyValue(c, "score", variant.NewInt(7)))
	assert.Equal(t, int64(7), c.Meta("score").Int())

	c.SetMeta("tag", variant.Variant{})
	assert.Equal(t, []string{"score"}, names(reg.Properties("Circle", c, apis.Dynamic, true)))
}

func TestSignals(t *testing.T) {
	reg := newRegistry(t)
	n := reg.Create("Node").(*demo.Node)

	var got []bool
	s := reg.SignalOf(n, "visibilityChanged")
	require.NotNil(t, s)
	s.Connect(func(args ...variant.Variant) { got = append(got, args[0].Bool()) })
	n.SetVisible(false)
	n.SetVisible(false)
	n.SetVisible(true)
	assert.Equal(t, []bool{false, true}, got)

	assert.NotNil(t, reg.SignalOf(n, "renamed"), "inherited from Object")
	assert.Nil(t, reg.SignalOf(n, "frameStarted"))
}

func TestFilterModules(t *testing.T) {
	f := config.NewFile()
	f.Modules.Disabled = []string{demo.ModuleBuild}

	reg := registry.New(config.DefaultConfig())
	require.NoError(t, demo.Plan().Filter(f.ModuleEnabled).Register(reg))
	assert.Nil(t, reg.ClassInfo("iOSBuildSettings"))
	assert.NotNil(t, reg.ClassInfo("Circle"))
}

func TestBuildSettings(t *testing.T) {
	reg := newRegistry(t)
	s := demo.Settings()

	portrait := reg.PropertyOf(s, "Portrait")
	require.NotNil(t, portrait)
	cat, ok := portrait.Hint(apis.HintCategory)
	require.True(t, ok)
	assert.Equal(t, "Device Orientation", cat.Value)

	icon := reg.PropertyOf(s, "Icon")
	require.NotNil(t, icon)
	rt, _ := icon.Hint(apis.HintResourceType)
	assert.Equal(t, []string{"*.png"}, rt.Options())
	assert.Equal(t, variant.ResourcePath, icon.Type)
}

func TestScriptTick(t *testing.T) {
	b := script.New()
	reg := newRegistry(t, registry.WithBinder(b))
	b.Attach(reg)

	e := demo.EngineInstance()
	start := e.FrameCount()
	var frames []int64
	id := e.FrameStarted().Connect(func(args ...variant.Variant) { frames = append(frames, args[0].Int()) })
	defer e.FrameStarted().Disconnect(id)

	_, err := b.Eval(`echo.Object("Engine").Call("tick")`)
	require.NoError(t, err)
	assert.Equal(t, start+1, e.FrameCount())
	assert.Equal(t, []int64{start + 1}, frames)

	v, err := b.Eval(`echo.Object("iOSBuildSettings").ClassName()`)
	require.NoError(t, err)
	assert.Equal(t, "iOSBuildSettings", v.Interface())
}

func TestSerializeCapsule(t *testing.T) {
	reg := newRegistry(t)
	c := reg.Create("Capsule").(*demo.Capsule)
	c.SetName("pill")
	c.SetHeight(4)

	data, err := serialize.MarshalYAML(reg, c, serialize.Options{OnlyOverridden: true})
	require.NoError(t, err)

	d, err := serialize.Parse(data, "yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Height"}, d.Names())

	obj, err := serialize.UnmarshalYAML(reg, data)
	require.NoError(t, err)
	got := obj.(*demo.Capsule)
	assert.Equal(t, "pill", got.Name())
	assert.Equal(t, 4.0, got.Height())
	assert.Equal(t, 0.5, got.Radius())
}

func TestSerializeNodeMeta(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			reg := newRegistry(t)
			n := reg.Create("Node").(*demo.Node)
			n.SetName("hero")
			n.SetMeta("tag", variant.NewString("player"))
			n.SetMeta("lives", variant.NewInt(3))
			n.SetMeta("spawn", variant.NewVector3(mgl32.Vec3{1, 2, 3}))

			data, err := serialize.Marshal(reg, n, serialize.Options{Format: format})
			require.NoError(t, err)
			assert.Contains(t, string(data), "player")

			obj, err := serialize.Unmarshal(reg, data, format)
			require.NoError(t, err)
			got := obj.(*demo.Node)
			assert.Equal(t, "hero", got.Name())
			assert.Equal(t, "player", got.Meta("tag").Text())
			assert.Equal(t, int64(3), got.Meta("lives").Int())
			assert.Equal(t, mgl32.Vec3{1, 2, 3}, got.Meta("spawn").Vector3())
			assert.Equal(t, apis.Dynamic, reg.PropertyFlag(got, "tag"))
		})
	}
}

func TestCloneNodeMeta(t *testing.T) {
	reg := newRegistry(t)
	c := reg.Create("Circle").(*demo.Circle)
	c.SetMeta("tag", variant.NewString("enemy"))

	obj, err := serialize.Clone(reg, c)
	require.NoError(t, err)
	cp := obj.(*demo.Circle)
	assert.Equal(t, "enemy", cp.Meta("tag").Text())

	cp.SetMeta("tag", variant.NewString("ally"))
	cp.SetMeta("extra", variant.NewInt(1))
	c.SetMeta("score", variant.NewInt(2))

	assert.Equal(t, "enemy", c.Meta("tag").Text())
	assert.True(t, c.Meta("extra").IsNil())
	assert.True(t, cp.Meta("score").IsNil())
	assert.Equal(t, []string{"tag", "extra"}, names(reg.Properties("Circle", cp, apis.Dynamic, true)))
}
