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
	"testing"

	"github.com/study-game-engines/echo/variant"
)

func TestTypeString(t *testing.T) {
	cases := []struct {
		in   variant.Type
		want string
	}{
		{variant.Nil, "Nil"},
		{variant.Real, "Real"},
		{variant.ResourcePath, "ResourcePath"},
		{variant.StringOption, "StringOption"},
		{variant.Type(-1), "Unknown(-1)"},
		{variant.Type(99), "Unknown(99)"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("Type(%d).String() = %q, want %q", int(c.in), got, c.want)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, tt := range variant.Types() {
		got, err := variant.ParseType(tt.String())
		if err != nil || got != tt {
			t.Fatalf("ParseType(%q) = (%v,%v), want (%v,nil)", tt.String(), got, err, tt)
		}
	}
	if got, err := variant.ParseType("  vector3 "); err != nil || got != variant.Vector3 {
		t.Fatalf("ParseType(vector3) = (%v,%v)", got, err)
	}
	for _, bad := range []string{"", "   ", "Vector4"} {
		if got, err := variant.ParseType(bad); err == nil || got != variant.Nil {
			t.Fatalf("ParseType(%q) = (%v,%v), want (Nil,error)", bad, got, err)
		}
	}
}

func TestTypeText(t *testing.T) {
	b, err := variant.Color.MarshalText()
	if err != nil || string(b) != "Color" {
		t.Fatalf("MarshalText = (%q,%v)", b, err)
	}
	if _, err := variant.Type(42).MarshalText(); err == nil {
		t.Fatal("MarshalText(42): expected error")
	}

	tt := variant.Bool
	if err := tt.UnmarshalText([]byte("nope")); err == nil {
		t.Fatal("UnmarshalText(nope): expected error")
	}
	if tt != variant.Bool {
		t.Fatalf("UnmarshalText failure changed value to %v", tt)
	}
	if err := tt.UnmarshalText([]byte("int")); err != nil || tt != variant.Int {
		t.Fatalf("UnmarshalText(int) = (%v,%v)", tt, err)
	}
}

func TestMustParseTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParseType: expected panic")
		}
	}()
	variant.MustParseType("bogus")
}
