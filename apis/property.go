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

package apis

import (
	"errors"
	"strconv"
	"strings"

	"github.com/study-game-engines/echo/variant"
)

var (
	// ErrNoGetter is returned when reading a property without a bound getter.
	ErrNoGetter = errors.New("echo(apis): property has no getter")
	// ErrReadOnly is returned when writing a property without a bound setter.
	ErrReadOnly = errors.New("echo(apis): property is read-only")
)

// PropertyFlag classifies where a property comes from.
type PropertyFlag int

const (
	// Static properties are registered on the class.
	Static PropertyFlag = 1 << iota
	// Dynamic properties are supplied by a live object at query time.
	Dynamic

	// AllProperties selects both static and dynamic properties.
	AllProperties = Static | Dynamic
)

// HintType identifies the meaning of a Hint.
type HintType int

const (
	// HintCategory groups properties under a label in inspectors.
	HintCategory HintType = iota
	// HintResourceType restricts ResourcePath values, e.g. "*.png|*.jpg".
	HintResourceType
	// HintRange bounds numeric values: "min,max" or "min,max,step".
	HintRange
	// HintOptions lists allowed values: "a|b|c".
	HintOptions
	// HintTooltip is free help text.
	HintTooltip
)

var hintNames = [...]string{"Category", "ResourceType", "Range", "Options", "Tooltip"}

func (h HintType) String() string {
	if h < 0 || int(h) >= len(hintNames) {
		return "Unknown(" + strconv.Itoa(int(h)) + ")"
	}
	return hintNames[h]
}

// Hint is display/validation metadata attached to a registered property.
type Hint struct {
	Type  HintType
	Value string
}

// Range parses a HintRange value.
func (h Hint) Range() (min, max, step float64, ok bool) {
	if h.Type != HintRange {
		return 0, 0, 0, false
	}
	parts := strings.Split(h.Value, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, false
	}
	var vals [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = f
	}
	return vals[0], vals[1], vals[2], true
}

// Options splits a HintOptions or HintResourceType value.
func (h Hint) Options() []string {
	if h.Type != HintOptions && h.Type != HintResourceType {
		return nil
	}
	var out []string
	for _, p := range strings.Split(h.Value, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PropertyInfo describes one property of a class.
type PropertyInfo struct {
	// Name is unique within the declaring class.
	Name string
	// Class is the declaring class name.
	Class string
	// Type is the declared value type.
	Type variant.Type
	// Flag is Static for registered properties, Dynamic otherwise.
	Flag PropertyFlag
	// Getter and Setter are the symbolic accessor names; Setter is empty
	// for read-only properties.
	Getter, Setter string
	// Get and Set are the bound accessors; Set is nil for read-only properties.
	Get, Set MethodBind
	// Hints are appended after registration.
	Hints []Hint
}

// ReadOnly reports whether the property has no setter.
func (pi *PropertyInfo) ReadOnly() bool { return pi.Set == nil }

// Value reads the property from obj through its getter.
func (pi *PropertyInfo) Value(obj Object) (variant.Variant, error) {
	if pi.Get == nil {
		return variant.Variant{}, ErrNoGetter
	}
	return pi.Get.Call(obj, nil)
}

// SetValue writes v to obj through the setter.
func (pi *PropertyInfo) SetValue(obj Object, v variant.Variant) error {
	if pi.Set == nil {
		return ErrReadOnly
	}
	_, err := pi.Set.Call(obj, []variant.Variant{v})
	return err
}

// AddHint appends hints.
func (pi *PropertyInfo) AddHint(hints ...Hint) {
	pi.Hints = append(pi.Hints, hints...)
}

// Hint returns the last hint of type t.
func (pi *PropertyInfo) Hint(t HintType) (Hint, bool) {
	for i := len(pi.Hints) - 1; i >= 0; i-- {
		if pi.Hints[i].Type == t {
			return pi.Hints[i], true
		}
	}
	return Hint{}, false
}
