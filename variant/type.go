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
	"strings"
)

// Type is the tag of a Variant.
//
// The set of tags mirrors the value kinds an editor inspector can show and a
// scene file can persist. Adding new tags is allowed; existing tags MUST NOT
// change their meaning or their textual form, since both are persisted.
type Type int

const (
	// Nil is the tag of the empty Variant.
	Nil Type = iota
	// Bool holds a boolean.
	Bool
	// Int holds a signed integer (int64 payload).
	Int
	// Real holds a floating point number (float64 payload).
	Real
	// String holds text.
	String
	// Vector2 holds an mgl32.Vec2.
	Vector2
	// Vector3 holds an mgl32.Vec3.
	Vector3
	// Color holds an RGBA color as mgl32.Vec4.
	Color
	// Object holds a reference to a live object.
	Object
	// ResourcePath holds a resource path such as "Res://icon.png".
	ResourcePath
	// StringOption holds a selected value out of a fixed option list.
	StringOption
)

var typeNames = [...]string{
	Nil:          "Nil",
	Bool:         "Bool",
	Int:          "Int",
	Real:         "Real",
	String:       "String",
	Vector2:      "Vector2",
	Vector3:      "Vector3",
	Color:        "Color",
	Object:       "Object",
	ResourcePath: "ResourcePath",
	StringOption: "StringOption",
}

// Types returns all known tags in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range typeNames {
		out[i] = Type(i)
	}
	return out
}

// IsValid reports whether t is a known tag.
func (t Type) IsValid() bool {
	return t >= Nil && int(t) < len(typeNames)
}

// String returns the canonical name of t, or "Unknown(<n>)" for
// out-of-range values. It never panics.
func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType parses a tag name, case-insensitively and ignoring surrounding
// whitespace. On failure it returns Nil and a non-nil error.
func ParseType(s string) (Type, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Nil, fmt.Errorf("variant: empty type")
	}
	for i, name := range typeNames {
		if strings.EqualFold(name, trimmed) {
			return Type(i), nil
		}
	}
	return Nil, fmt.Errorf("variant: unknown type %q", s)
}

// MustParseType is like ParseType but panics on invalid input.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// MarshalText implements encoding.TextMarshaler. Unknown tags are rejected
// rather than persisted as "Unknown(...)".
func (t Type) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("variant: cannot marshal unknown type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure *t is left
// unchanged.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
