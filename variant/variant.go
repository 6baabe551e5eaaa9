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

package variant

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrConvert is returned when a Variant payload cannot be converted to the
// requested Go type.
var ErrConvert = errors.New("variant: cannot convert")

// Path is the payload of a ResourcePath variant.
type Path string

// Option is the payload of a StringOption variant: one selected value out of
// a fixed list of options.
type Option struct {
	Value   string
	Options []string
}

// Variant is a tagged union used for every value that crosses the reflection
// boundary: property get/set, method arguments and method results.
// The zero value is the Nil variant.
type Variant struct {
	t Type
	v any
}

// NewBool returns a Bool variant.
func NewBool(b bool) Variant { return Variant{t: Bool, v: b} }

// NewInt returns an Int variant.
func NewInt(i int64) Variant { return Variant{t: Int, v: i} }

// NewReal returns a Real variant.
func NewReal(r float64) Variant { return Variant{t: Real, v: r} }

// NewString returns a String variant.
func NewString(s string) Variant { return Variant{t: String, v: s} }

// NewVector2 returns a Vector2 variant.
func NewVector2(v mgl32.Vec2) Variant { return Variant{t: Vector2, v: v} }

// NewVector3 returns a Vector3 variant.
func NewVector3(v mgl32.Vec3) Variant { return Variant{t: Vector3, v: v} }

// NewColor returns a Color variant (r, g, b, a in [0,1]).
func NewColor(c mgl32.Vec4) Variant { return Variant{t: Color, v: c} }

// NewObject returns an Object variant. A nil object yields the Nil variant.
func NewObject(obj any) Variant {
	if isNil(obj) {
		return Variant{}
	}
	return Variant{t: Object, v: obj}
}

// NewPath returns a ResourcePath variant.
func NewPath(p string) Variant { return Variant{t: ResourcePath, v: Path(p)} }

// NewOption returns a StringOption variant.
func NewOption(value string, options ...string) Variant {
	return Variant{t: StringOption, v: Option{Value: value, Options: options}}
}

// From wraps an arbitrary Go value. Named numeric and string types map onto
// their underlying tag; anything that is not a scalar is treated as an Object.
func From(x any) Variant {
	switch v := x.(type) {
	case nil:
		return Variant{}
	case Variant:
		return v
	case bool:
		return NewBool(v)
	case int:
		return NewInt(int64(v))
	case int8:
		return NewInt(int64(v))
	case int16:
		return NewInt(int64(v))
	case int32:
		return NewInt(int64(v))
	case int64:
		return NewInt(v)
	case uint:
		return NewInt(int64(v))
	case uint8:
		return NewInt(int64(v))
	case uint16:
		return NewInt(int64(v))
	case uint32:
		return NewInt(int64(v))
	case uint64:
		return NewInt(int64(v))
	case float32:
		return NewReal(float64(v))
	case float64:
		return NewReal(v)
	case string:
		return NewString(v)
	case Path:
		return Variant{t: ResourcePath, v: v}
	case Option:
		return Variant{t: StringOption, v: v}
	case mgl32.Vec2:
		return NewVector2(v)
	case mgl32.Vec3:
		return NewVector3(v)
	case mgl32.Vec4:
		return NewColor(v)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Bool:
		return NewBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return NewReal(rv.Float())
	case reflect.String:
		return NewString(rv.String())
	}
	return NewObject(x)
}

// Type returns the tag.
func (v Variant) Type() Type { return v.t }

// IsNil reports whether v is the Nil variant.
func (v Variant) IsNil() bool { return v.t == Nil }

// Interface returns the raw payload (nil for Nil).
func (v Variant) Interface() any { return v.v }

// Bool returns the payload as a bool. Numbers are true when non-zero.
func (v Variant) Bool() bool {
	switch v.t {
	case Bool:
		return v.v.(bool)
	case Int:
		return v.v.(int64) != 0
	case Real:
		return v.v.(float64) != 0
	case String:
		b, _ := strconv.ParseBool(v.v.(string))
		return b
	}
	return false
}

// Int returns the payload as an int64. Reals are truncated.
func (v Variant) Int() int64 {
	switch v.t {
	case Int:
		return v.v.(int64)
	case Real:
		return int64(v.v.(float64))
	case Bool:
		if v.v.(bool) {
			return 1
		}
	case String:
		i, _ := strconv.ParseInt(v.v.(string), 10, 64)
		return i
	}
	return 0
}

// Real returns the payload as a float64.
func (v Variant) Real() float64 {
	switch v.t {
	case Real:
		return v.v.(float64)
	case Int:
		return float64(v.v.(int64))
	case String:
		f, _ := strconv.ParseFloat(v.v.(string), 64)
		return f
	}
	return 0
}

// Text returns the textual payload of String, ResourcePath and StringOption
// variants, and the formatted value otherwise.
func (v Variant) Text() string {
	switch v.t {
	case Nil:
		return ""
	case String:
		return v.v.(string)
	case ResourcePath:
		return string(v.v.(Path))
	case StringOption:
		return v.v.(Option).Value
	}
	return v.String()
}

// Vector2 returns the Vector2 payload or the zero vector.
func (v Variant) Vector2() mgl32.Vec2 {
	if vv, ok := v.v.(mgl32.Vec2); ok {
		return vv
	}
	return mgl32.Vec2{}
}

// Vector3 returns the Vector3 payload or the zero vector.
func (v Variant) Vector3() mgl32.Vec3 {
	if vv, ok := v.v.(mgl32.Vec3); ok {
		return vv
	}
	return mgl32.Vec3{}
}

// Color returns the Color payload or transparent black.
func (v Variant) Color() mgl32.Vec4 {
	if vv, ok := v.v.(mgl32.Vec4); ok {
		return vv
	}
	return mgl32.Vec4{}
}

// Object returns the Object payload or nil.
func (v Variant) Object() any {
	if v.t != Object {
		return nil
	}
	return v.v
}

// Path returns the ResourcePath payload or "".
func (v Variant) Path() Path {
	if p, ok := v.v.(Path); ok {
		return p
	}
	return ""
}

// Option returns the StringOption payload.
func (v Variant) Option() Option {
	if o, ok := v.v.(Option); ok {
		return o
	}
	return Option{}
}

// Equal reports whether v and o have the same tag and payload. Objects are
// compared by identity.
func (v Variant) Equal(o Variant) bool {
	if v.t != o.t {
		return false
	}
	switch v.t {
	case Nil:
		return true
	case Object:
		return v.v == o.v
	}
	return reflect.DeepEqual(v.v, o.v)
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v.t {
	case Nil:
		return "nil"
	case String:
		return strconv.Quote(v.v.(string))
	case ResourcePath:
		return string(v.v.(Path))
	case StringOption:
		return v.v.(Option).Value
	case Object:
		return fmt.Sprintf("%T(%p)", v.v, v.v)
	}
	return fmt.Sprint(v.v)
}

// To converts the payload into a value assignable to t. It is the inverse of
// From and is used to feed Variant arguments into native Go functions.
func (v Variant) To(t reflect.Type) (reflect.Value, error) {
	if t == variantType {
		return reflect.ValueOf(v), nil
	}
	if v.t == Nil {
		return reflect.Zero(t), nil
	}
	if pv := reflect.ValueOf(v.v); pv.Type().AssignableTo(t) {
		return pv, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(v.Bool()).Convert(t), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.t == Int || v.t == Real || v.t == Bool {
			return reflect.ValueOf(v.Int()).Convert(t), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.t == Int || v.t == Real {
			return reflect.ValueOf(uint64(v.Int())).Convert(t), nil
		}
	case reflect.Float32, reflect.Float64:
		if v.t == Int || v.t == Real {
			return reflect.ValueOf(v.Real()).Convert(t), nil
		}
	case reflect.String:
		if v.t == String || v.t == ResourcePath || v.t == StringOption {
			return reflect.ValueOf(v.Text()).Convert(t), nil
		}
	case reflect.Interface:
		if t.NumMethod() == 0 {
			out := reflect.New(t).Elem()
			out.Set(reflect.ValueOf(v.v))
			return out, nil
		}
	}

	// int -> string conversions yield runes, never what a caller means.
	if pv := reflect.ValueOf(v.v); t.Kind() != reflect.String && pv.Type().ConvertibleTo(t) {
		return pv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w %s to %s", ErrConvert, v.t, t)
}

var variantType = reflect.TypeOf(Variant{})

func isNil(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
