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
	"fmt"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Plain returns a representation of v built only from bool, int64, float64,
// string and []float32, suitable for YAML and TOML encoders. Object
// payloads are returned unchanged; callers that persist object graphs handle
// them before calling Plain.
func (v Variant) Plain() any {
	switch v.t {
	case Nil:
		return nil
	case Vector2:
		vv := v.v.(mgl32.Vec2)
		return []float32{vv[0], vv[1]}
	case Vector3:
		vv := v.v.(mgl32.Vec3)
		return []float32{vv[0], vv[1], vv[2]}
	case Color:
		vv := v.v.(mgl32.Vec4)
		return []float32{vv[0], vv[1], vv[2], vv[3]}
	case ResourcePath, StringOption:
		return v.Text()
	}
	return v.v
}

// FromPlain rebuilds a Variant of type t from a decoded plain value, as
// produced by yaml.v3 or go-toml/v2 decoding into any. Integers may arrive as
// int, int64 or uint64, reals as float64 and vectors as []any.
func FromPlain(t Type, x any) (Variant, error) {
	if x == nil {
		return Variant{}, nil
	}
	switch t {
	case Nil:
		return Variant{}, nil
	case Bool:
		switch b := x.(type) {
		case bool:
			return NewBool(b), nil
		case string:
			pb, err := strconv.ParseBool(b)
			if err != nil {
				return Variant{}, fmt.Errorf("%w %q to Bool: %w", ErrConvert, b, err)
			}
			return NewBool(pb), nil
		}
	case Int:
		return integer(x)
	case Real:
		if f, ok := number(x); ok {
			return NewReal(f), nil
		}
	case String:
		if s, ok := x.(string); ok {
			return NewString(s), nil
		}
	case ResourcePath:
		if s, ok := x.(string); ok {
			return NewPath(s), nil
		}
	case StringOption:
		if s, ok := x.(string); ok {
			return NewOption(s), nil
		}
	case Vector2, Vector3, Color:
		fs, err := floats(x)
		if err != nil {
			return Variant{}, err
		}
		switch {
		case t == Vector2 && len(fs) == 2:
			return NewVector2(mgl32.Vec2{fs[0], fs[1]}), nil
		case t == Vector3 && len(fs) == 3:
			return NewVector3(mgl32.Vec3{fs[0], fs[1], fs[2]}), nil
		case t == Color && len(fs) == 4:
			return NewColor(mgl32.Vec4{fs[0], fs[1], fs[2], fs[3]}), nil
		}
		return Variant{}, fmt.Errorf("%w: %d components for %s", ErrConvert, len(fs), t)
	case Object:
		return NewObject(x), nil
	}
	return Variant{}, fmt.Errorf("%w %T to %s", ErrConvert, x, t)
}

// Infer rebuilds a Variant from a decoded plain value when no declared type is
// known. Numeric lists of two, three or four components become Vector2,
// Vector3 and Color; other lists are rejected.
func Infer(x any) (Variant, error) {
	switch xs := x.(type) {
	case []any, []float32:
		fs, err := floats(xs)
		if err != nil {
			return Variant{}, err
		}
		switch len(fs) {
		case 2:
			return NewVector2(mgl32.Vec2{fs[0], fs[1]}), nil
		case 3:
			return NewVector3(mgl32.Vec3{fs[0], fs[1], fs[2]}), nil
		case 4:
			return NewColor(mgl32.Vec4{fs[0], fs[1], fs[2], fs[3]}), nil
		}
		return Variant{}, fmt.Errorf("%w: %d components", ErrConvert, len(fs))
	case map[string]any:
		return Variant{}, fmt.Errorf("%w %T", ErrConvert, x)
	}
	return From(x), nil
}

// integer keeps integral inputs exact; floats are accepted only when they
// carry no fraction.
func integer(x any) (Variant, error) {
	switch n := x.(type) {
	case int:
		return NewInt(int64(n)), nil
	case int64:
		return NewInt(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return Variant{}, fmt.Errorf("%w: %d overflows Int", ErrConvert, n)
		}
		return NewInt(int64(n)), nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return Variant{}, fmt.Errorf("%w %q to Int: %w", ErrConvert, n, err)
		}
		return NewInt(i), nil
	}
	if f, ok := number(x); ok {
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return Variant{}, fmt.Errorf("%w: %v is not an Int", ErrConvert, f)
		}
		return NewInt(int64(f)), nil
	}
	return Variant{}, fmt.Errorf("%w %T to Int", ErrConvert, x)
}

func number(x any) (float64, bool) {
	switch n := x.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func floats(x any) ([]float32, error) {
	switch xs := x.(type) {
	case []float32:
		return xs, nil
	case []any:
		out := make([]float32, len(xs))
		for i, e := range xs {
			f, ok := number(e)
			if !ok {
				return nil, fmt.Errorf("%w: component %d is %T", ErrConvert, i, e)
			}
			out[i] = float32(f)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w %T to vector", ErrConvert, x)
}
