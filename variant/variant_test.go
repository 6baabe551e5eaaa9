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

package variant_test

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-game-engines/echo/variant"
)

type level int

type label string

type thing struct{ n int }

func TestFrom(t *testing.T) {
	obj := &thing{}
	cases := []struct {
		name string
		in   any
		typ  variant.Type
	}{
		{"nil", nil, variant.Nil},
		{"bool", true, variant.Bool},
		{"int", 3, variant.Int},
		{"uint8", uint8(3), variant.Int},
		{"named int", level(2), variant.Int},
		{"float32", float32(1.5), variant.Real},
		{"string", "x", variant.String},
		{"named string", label("x"), variant.String},
		{"path", variant.Path("Res://a.png"), variant.ResourcePath},
		{"option", variant.Option{Value: "a"}, variant.StringOption},
		{"vec2", mgl32.Vec2{1, 2}, variant.Vector2},
		{"vec3", mgl32.Vec3{1, 2, 3}, variant.Vector3},
		{"color", mgl32.Vec4{1, 0, 0, 1}, variant.Color},
		{"object", obj, variant.Object},
		{"nil object", (*thing)(nil), variant.Nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.typ, variant.From(c.in).Type())
		})
	}

	v := variant.NewReal(2)
	assert.True(t, variant.From(v).Equal(v), "From(Variant) is identity")
}

func TestAccessors(t *testing.T) {
	assert.Equal(t, int64(2), variant.NewReal(2.9).Int())
	assert.Equal(t, 3.0, variant.NewInt(3).Real())
	assert.True(t, variant.NewInt(1).Bool())
	assert.False(t, variant.NewString("nope").Bool())
	assert.Equal(t, "Res://icon.png", variant.NewPath("Res://icon.png").Text())
	assert.Equal(t, variant.Path("Res://icon.png"), variant.NewPath("Res://icon.png").Path())
	assert.Equal(t, "b", variant.NewOption("b", "a", "b").Option().Value)
	assert.Equal(t, []string{"a", "b"}, variant.NewOption("b", "a", "b").Option().Options)
	assert.Equal(t, mgl32.Vec3{}, variant.NewInt(1).Vector3())
	assert.Nil(t, variant.NewInt(1).Object())
	assert.Equal(t, "", variant.Variant{}.Text())
	assert.Equal(t, `"hi"`, variant.NewString("hi").String())
}

func TestEqual(t *testing.T) {
	a, b := &thing{}, &thing{}
	assert.True(t, variant.NewObject(a).Equal(variant.NewObject(a)))
	assert.False(t, variant.NewObject(a).Equal(variant.NewObject(b)))
	assert.False(t, variant.NewInt(1).Equal(variant.NewReal(1)))
	assert.True(t, variant.NewVector2(mgl32.Vec2{1, 2}).Equal(variant.NewVector2(mgl32.Vec2{1, 2})))
	assert.True(t, variant.Variant{}.Equal(variant.Variant{}))
}

func TestTo(t *testing.T) {
	cases := []struct {
		name string
		v    variant.Variant
		typ  reflect.Type
		want any
	}{
		{"int to int", variant.NewInt(7), reflect.TypeOf(0), 7},
		{"real to int32", variant.NewReal(7.8), reflect.TypeOf(int32(0)), int32(7)},
		{"int to float32", variant.NewInt(2), reflect.TypeOf(float32(0)), float32(2)},
		{"int to named", variant.NewInt(4), reflect.TypeOf(level(0)), level(4)},
		{"int to uint", variant.NewInt(4), reflect.TypeOf(uint(0)), uint(4)},
		{"path to string", variant.NewPath("Res://a"), reflect.TypeOf(""), "Res://a"},
		{"string to named", variant.NewString("x"), reflect.TypeOf(label("")), label("x")},
		{"bool", variant.NewBool(true), reflect.TypeOf(false), true},
		{"nil to zero", variant.Variant{}, reflect.TypeOf(0), 0},
		{"vec3", variant.NewVector3(mgl32.Vec3{1, 2, 3}), reflect.TypeOf(mgl32.Vec3{}), mgl32.Vec3{1, 2, 3}},
		{"int to any", variant.NewInt(1), reflect.TypeOf((*any)(nil)).Elem(), int64(1)},
		{"variant", variant.NewInt(1), reflect.TypeOf(variant.Variant{}), variant.NewInt(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.v.To(c.typ)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Interface())
		})
	}

	obj := &thing{n: 1}
	got, err := variant.NewObject(obj).To(reflect.TypeOf(obj))
	require.NoError(t, err)
	assert.Same(t, obj, got.Interface())

	_, err = variant.NewInt(65).To(reflect.TypeOf(""))
	assert.ErrorIs(t, err, variant.ErrConvert)
	_, err = variant.NewString("x").To(reflect.TypeOf(mgl32.Vec2{}))
	assert.ErrorIs(t, err, variant.ErrConvert)
}

func TestPlainRoundTrip(t *testing.T) {
	vals := []variant.Variant{
		variant.NewBool(true),
		variant.NewInt(-3),
		variant.NewReal(0.25),
		variant.NewString("hello"),
		variant.NewVector2(mgl32.Vec2{1, 2}),
		variant.NewVector3(mgl32.Vec3{1, 2, 3}),
		variant.NewColor(mgl32.Vec4{0.5, 0.5, 0.5, 1}),
		variant.NewPath("Res://icon.png"),
	}
	for _, v := range vals {
		back, err := variant.FromPlain(v.Type(), v.Plain())
		require.NoError(t, err, v.Type().String())
		assert.True(t, v.Equal(back), "%s: %v != %v", v.Type(), v, back)
	}
}

func TestFromPlainDecoded(t *testing.T) {
	// Shapes produced by yaml.v3 and go-toml/v2 when decoding into any.
	v, err := variant.FromPlain(variant.Int, uint64(5))
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int())

	v, err = variant.FromPlain(variant.Real, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.Real())

	v, err = variant.FromPlain(variant.Vector2, []any{1, 2.5})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec2{1, 2.5}, v.Vector2())

	v, err = variant.FromPlain(variant.Bool, "true")
	require.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = variant.FromPlain(variant.StringOption, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", v.Option().Value)

	_, err = variant.FromPlain(variant.Vector3, []any{1, 2})
	assert.ErrorIs(t, err, variant.ErrConvert)
	_, err = variant.FromPlain(variant.Int, "x")
	assert.ErrorIs(t, err, variant.ErrConvert)

	big := int64(1<<53 + 1)
	for _, x := range []any{big, int(big), uint64(big)} {
		v, err = variant.FromPlain(variant.Int, x)
		require.NoError(t, err)
		assert.Equal(t, big, v.Int(), "%T", x)
	}
	v, err = variant.FromPlain(variant.Int, 4.0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.Int())
	_, err = variant.FromPlain(variant.Int, 4.5)
	assert.ErrorIs(t, err, variant.ErrConvert)
	_, err = variant.FromPlain(variant.Int, uint64(1<<63))
	assert.ErrorIs(t, err, variant.ErrConvert)

	v, err = variant.FromPlain(variant.String, nil)
	require.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestInfer(t *testing.T) {
	cases := []struct {
		in   any
		want variant.Variant
	}{
		{"x", variant.NewString("x")},
		{int64(7), variant.NewInt(7)},
		{1.5, variant.NewReal(1.5)},
		{true, variant.NewBool(true)},
		{[]any{1, 2}, variant.NewVector2(mgl32.Vec2{1, 2})},
		{[]any{1.0, 2.0, 3.0}, variant.NewVector3(mgl32.Vec3{1, 2, 3})},
		{[]float32{0, 0, 0, 1}, variant.NewColor(mgl32.Vec4{0, 0, 0, 1})},
	}
	for _, tc := range cases {
		got, err := variant.Infer(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.True(t, tc.want.Equal(got), "Infer(%v) = %v", tc.in, got)
	}

	_, err := variant.Infer([]any{1})
	assert.ErrorIs(t, err, variant.ErrConvert)
	_, err = variant.Infer([]any{"a", "b"})
	assert.ErrorIs(t, err, variant.ErrConvert)
	_, err = variant.Infer(map[string]any{"a": 1})
	assert.ErrorIs(t, err, variant.ErrConvert)
}
